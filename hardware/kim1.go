// This file is part of GoKIM1.
//
// GoKIM1 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GoKIM1 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GoKIM1.  If not, see <https://www.gnu.org/licenses/>.

package hardware

import (
	"fmt"
	"os"
	"sync"

	"github.com/gokim1/gokim1/curated"
	"github.com/gokim1/gokim1/hardware/cassette"
	"github.com/gokim1/gokim1/hardware/clocks"
	"github.com/gokim1/gokim1/hardware/cpu"
	"github.com/gokim1/gokim1/hardware/display"
	"github.com/gokim1/gokim1/hardware/input"
	"github.com/gokim1/gokim1/hardware/keypad"
	"github.com/gokim1/gokim1/hardware/memory"
	"github.com/gokim1/gokim1/hardware/memory/addresses"
	"github.com/gokim1/gokim1/hardware/memory/memorymap"
	"github.com/gokim1/gokim1/hardware/preferences"
	"github.com/gokim1/gokim1/hardware/riot"
	"github.com/gokim1/gokim1/hardware/scheduler"
	"github.com/gokim1/gokim1/hardware/video"
	"github.com/gokim1/gokim1/random"
)

// KIM1 contains all the sub-systems of the KIM-1.
type KIM1 struct {
	Prefs *preferences.Preferences

	CPU     *cpu.CPU
	Mem     *memory.Memory
	U2      *riot.RIOT
	U3      *riot.RIOT
	Keypad  *keypad.Keypad
	LEDs    *display.LEDs
	Decoder *cassette.Decoder
	Deck    *cassette.Deck
	Video   *video.Video
	Input   *input.Input
	Random  *random.Random

	sched *scheduler.Scheduler

	// receives changes to the LEDs. replugged into the LEDs after a snapshot
	// is restored
	sink display.Sink

	// the last value written to the U2 port B. selects the keypad row and the
	// LED digit
	u2PortB uint8

	// front ends take the critical section to read the state of the
	// emulation while it is running
	crit sync.Mutex

	// run without waiting for real time
	unthrottled bool

	// cycles run beyond the end of the previous quantum
	quantumDebt int

	// position of the next quantum in the second
	quantum int
}

// NewKIM1 creates a new KIM1 and everything associated with the hardware. The
// sink receives changes to the LEDs and can be nil.
func NewKIM1(prefs *preferences.Preferences, sink display.Sink) (*KIM1, error) {
	k := &KIM1{
		Prefs:   prefs,
		sink:    sink,
		LEDs:    display.NewLEDs(sink),
		Decoder: cassette.NewDecoder(),
		Deck:    cassette.NewDeck(),
		Video:   video.NewVideo(video.ParseMode(prefs.VideoMode())),
	}

	k.U2 = riot.NewRIOT("U2", riot.Ports{
		ReadA:  k.readPortA,
		WriteA: k.writePortA,
		ReadB:  k.readPortB,
		WriteB: k.writePortB,
	})
	k.U3 = riot.NewRIOT("U3", riot.Ports{})

	k.Mem = memory.NewMemory(prefs, k.U3, k.U2, k.Video)
	k.CPU = cpu.NewCPU(k.Mem)
	k.Random = random.NewRandom(k)

	k.Keypad = keypad.NewKeypad(keypad.Lines{
		NMI: func(asserted bool) {
			k.CPU.SetLine(cpu.NMI, asserted)
		},
		Reset: func(asserted bool) {
			k.CPU.SetLine(cpu.Reset, asserted)
			if !asserted {
				k.reset()
			}
		},
	})
	k.Input = input.NewInput(k.Keypad, k.Deck)

	// events that fall due on the same cycle are fired in this order
	k.sched = scheduler.NewScheduler(clocks.CPU)
	for _, e := range []struct {
		label string
		rate  int
		fn    func()
	}{
		{"riot", clocks.CPU, k.stepRIOTs},
		{"cassette", clocks.Cassette, k.sampleCassette},
		{"leds", clocks.LED, k.LEDs.Tick},
	} {
		if err := k.sched.Add(e.label, e.rate, e.fn); err != nil {
			return nil, curated.Errorf("kim1: %v", err)
		}
	}

	return k, nil
}

func (k *KIM1) String() string {
	return fmt.Sprintf("%s %s [%s]", k.CPU, addresses.Label(k.CPU.PC()), k.LEDs.Text())
}

// Cycles returns the number of CPU cycles since the KIM1 was created.
func (k *KIM1) Cycles() uint64 {
	return k.CPU.Cycles()
}

// PowerOn initialises RAM and resets the machine.
func (k *KIM1) PowerOn() {
	k.crit.Lock()
	defer k.crit.Unlock()
	k.Mem.Initialise(k.Random)
	k.reset()
}

// Reset emulates the RS key.
func (k *KIM1) Reset() {
	k.crit.Lock()
	defer k.crit.Unlock()
	k.reset()
}

func (k *KIM1) reset() {
	k.u2PortB = 0
	k.Decoder.Reset()
	k.LEDs.Reset()
	k.U2.Reset()
	k.U3.Reset()
	k.Video.Reset()
	k.Video.SetMode(video.ParseMode(k.Prefs.VideoMode()))
	k.CPU.Reset()
}

// LoadMonitor loads the monitor ROM from a file. A 2048 byte file contains
// both 6530 ROMs. A 1024 byte file is the 6530-002 ROM only.
func (k *KIM1) LoadMonitor(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return curated.Errorf("kim1: %v", err)
	}

	origin := memorymap.Origin6530003
	if len(data) == 1024 {
		origin = memorymap.Origin6530002
	}

	k.crit.Lock()
	defer k.crit.Unlock()
	if err := k.Mem.LoadROM(origin, data); err != nil {
		return curated.Errorf("kim1: %v", err)
	}
	return nil
}

// LoadHighROM loads a ROM from a file into the top of memory. A ROM in the
// High ROM area replaces the mirror of the monitor ROM.
func (k *KIM1) LoadHighROM(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return curated.Errorf("kim1: %v", err)
	}

	k.crit.Lock()
	defer k.crit.Unlock()
	if err := k.Mem.LoadROM(uint16(0x10000-len(data)), data); err != nil {
		return curated.Errorf("kim1: %v", err)
	}
	return nil
}

func (k *KIM1) stepRIOTs() {
	k.U3.Step()
	k.U2.Step()
}

func (k *KIM1) sampleCassette() {
	k.Decoder.Sample(k.Deck.Input())
	k.Deck.Tick()
}
