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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gokim1/gokim1/govern"
	"github.com/gokim1/gokim1/hardware/cassette"
	"github.com/gokim1/gokim1/hardware/clocks"
	"github.com/gokim1/gokim1/hardware/cpu"
	"github.com/gokim1/gokim1/hardware/display"
	"github.com/gokim1/gokim1/hardware/input"
	"github.com/gokim1/gokim1/hardware/keypad"
	"github.com/gokim1/gokim1/hardware/preferences"
	"github.com/gokim1/gokim1/hardware/riot"
	"github.com/gokim1/gokim1/hardware/video"
	"github.com/gokim1/gokim1/test"
)

// a monitor ROM of NOPs. the reset vector points to RAM and the interrupt
// vectors point to a loop at the start of the 6530-002
func monitorImage() []uint8 {
	rom := make([]uint8, 2048)
	for i := range rom {
		rom[i] = 0xea
	}

	// JMP $1c00
	rom[0x400] = 0x4c
	rom[0x401] = 0x00
	rom[0x402] = 0x1c

	// NMI, RESET and IRQ vectors
	copy(rom[0x7fa:], []uint8{0x00, 0x1c, 0x00, 0x02, 0x00, 0x1c})

	return rom
}

type mockSink struct {
	calls int
}

func (s *mockSink) SetDigit(idx int, segments uint8) {
	s.calls++
}

func newKIM1(t *testing.T, program []uint8) *KIM1 {
	t.Helper()

	k, err := NewKIM1(preferences.NewDefaults(), &mockSink{})
	test.DemandSuccess(t, err)

	filename := filepath.Join(t.TempDir(), "monitor.rom")
	test.DemandSuccess(t, os.WriteFile(filename, monitorImage(), 0o644))
	test.DemandSuccess(t, k.LoadMonitor(filename))

	k.PowerOn()
	test.DemandEquality(t, k.CPU.PC(), uint16(0x0200))

	if program != nil {
		test.DemandSuccess(t, k.Mem.LoadProgram(0x0200, program))
	}

	return k
}

// writes 0x3f to the leftmost digit and then loops forever
var digitProgram = []uint8{
	0xa9, 0xff, // LDA #$ff
	0x8d, 0x41, 0x17, // STA PADD
	0x8d, 0x43, 0x17, // STA PBDD
	0xa9, 0x09, // LDA #$09
	0x8d, 0x42, 0x17, // STA SBD
	0xa9, 0xbf, // LDA #$bf
	0x8d, 0x40, 0x17, // STA SAD
	0x4c, 0x12, 0x02, // JMP $0212
}

func TestKeypadGlue(t *testing.T) {
	k := newKIM1(t, nil)

	k.writePortB(0x00)
	test.ExpectEquality(t, k.readPortA(), uint8(0x7f))
	k.Keypad.Press(keypad.Key0)
	test.ExpectEquality(t, k.readPortA(), uint8(0x3f))

	// row 1 is not affected by a key in row 0
	k.writePortB(0x02)
	test.ExpectEquality(t, k.readPortA(), uint8(0x7f))

	// no row selected
	k.writePortB(0x08)
	test.ExpectEquality(t, k.readPortA(), uint8(0xff))
}

func TestDisplayGlue(t *testing.T) {
	k := newKIM1(t, nil)

	// the rightmost digit
	k.writePortB(0x13)
	k.writePortA(0x86)
	test.ExpectEquality(t, k.LEDs.Digits[5], uint8(0x06))
	test.ExpectEquality(t, k.LEDs.Ages[5], uint8(15))

	// bit 7 clear
	k.writePortB(0x09)
	k.writePortA(0x06)
	test.ExpectEquality(t, k.LEDs.Digits[0], uint8(0x00))
	test.ExpectEquality(t, k.LEDs.Ages[0], uint8(0))
}

func TestCassetteGlue(t *testing.T) {
	k := newKIM1(t, nil)

	// no tone
	test.ExpectEquality(t, k.readPortB(), uint8(0xff))

	// high tone
	for range 5 {
		k.Decoder.Sample(1.0)
	}
	k.Decoder.Sample(-1.0)
	test.ExpectEquality(t, k.readPortB(), uint8(0x7f))

	// cassette output enabled
	k.U2.Write(riot.PBDD, 0xff)
	k.U2.Write(riot.PB, 0xa0)
	test.ExpectEquality(t, k.readPortB(), uint8(0xff))
	test.ExpectEquality(t, k.u2PortB, uint8(0xa0))
	test.ExpectEquality(t, k.Deck.Level(), float32(-1.0))

	k.U2.Write(riot.PB, 0x20)
	test.ExpectEquality(t, k.Deck.Level(), float32(1.0))
}

func TestReset(t *testing.T) {
	k := newKIM1(t, nil)

	k.writePortB(0x09)
	k.writePortA(0xbf)
	for range 5 {
		k.Decoder.Sample(1.0)
	}
	k.Decoder.Sample(-1.0)
	k.Decoder.Sample(1.0)

	k.CPU.SetRegisters(cpu.Registers{PC: 0x0300, SP: 0xfd})

	k.Reset()
	test.ExpectEquality(t, k.u2PortB, uint8(0))
	test.ExpectEquality(t, k.Decoder.Output(), cassette.LowTone)
	test.ExpectEquality(t, k.Decoder.RunLength(), uint32(0))
	for i := range display.NumDigits {
		test.ExpectEquality(t, k.LEDs.Ages[i], uint8(0))
	}
	test.ExpectEquality(t, k.CPU.PC(), uint16(0x0200))
	test.ExpectSuccess(t, strings.Contains(k.String(), " $0200 "))
}

func TestResetKey(t *testing.T) {
	k := newKIM1(t, []uint8{0xea, 0xea, 0xea})

	k.Step()
	k.Step()
	test.ExpectEquality(t, k.CPU.PC(), uint16(0x0202))

	// the CPU is held while RS is pressed
	k.Keypad.Press(keypad.KeyRS)
	test.ExpectEquality(t, k.Step(), 1)
	test.ExpectEquality(t, k.CPU.PC(), uint16(0x0202))

	k.Keypad.Release(keypad.KeyRS)
	test.ExpectEquality(t, k.CPU.PC(), uint16(0x0200))
}

func TestStopKey(t *testing.T) {
	k := newKIM1(t, []uint8{0xea, 0xea, 0xea})

	k.Keypad.Press(keypad.KeyST)
	test.ExpectEquality(t, k.Step(), 7)
	test.ExpectEquality(t, k.CPU.PC(), uint16(0x1c00))

	// holding the key does not cause another NMI
	k.Step()
	test.ExpectEquality(t, k.CPU.PC(), uint16(0x1c00))
}

func TestSingleStep(t *testing.T) {
	k := newKIM1(t, []uint8{0xea, 0xea, 0xea})

	k.Step()
	test.ExpectEquality(t, k.CPU.PC(), uint16(0x0201))

	k.Keypad.SetSST(true)
	k.Step()
	test.ExpectEquality(t, k.CPU.PC(), uint16(0x0202))

	// NMI taken before the next instruction
	k.Step()
	test.ExpectEquality(t, k.CPU.PC(), uint16(0x1c00))

	// no NMI while in the monitor
	k.Step()
	test.ExpectEquality(t, k.CPU.PC(), uint16(0x1c00))
	k.Step()
	test.ExpectEquality(t, k.CPU.PC(), uint16(0x1c00))
}

func TestLEDDecay(t *testing.T) {
	k := newKIM1(t, digitProgram)

	run := func(cycles uint64) {
		for k.sched.Cycles < cycles {
			k.Step()
		}
	}

	run(100)
	test.ExpectEquality(t, k.LEDs.Digits[0], uint8(0x3f))
	test.ExpectEquality(t, k.LEDs.Ages[0], uint8(15))

	// fifteenth tick is at cycle 250000
	run(260000)
	test.ExpectEquality(t, k.LEDs.Digits[0], uint8(0x3f))
	test.ExpectEquality(t, k.LEDs.Ages[0], uint8(0))

	// sixteenth tick is at cycle 266667
	run(270000)
	test.ExpectEquality(t, k.LEDs.Digits[0], uint8(0x00))
}

func TestVideoWindow(t *testing.T) {
	k := newKIM1(t, nil)

	k.Mem.Write(0x4000, 0x55)
	k.Mem.Write(0x5fff, 0xaa)
	test.ExpectEquality(t, k.Mem.Read(0x4000), uint8(0x55))
	test.ExpectEquality(t, k.Mem.Read(0x5fff), uint8(0xaa))
	test.ExpectEquality(t, k.Video.Buffer[0x1fff], uint8(0xaa))
}

func TestVideoWindowCycleAccurate(t *testing.T) {
	k := newKIM1(t, []uint8{
		0xa9, 0x5a, // LDA #$5A
		0x8d, 0x10, 0x40, // STA $4010
		0xa2, 0x00, // LDX #$00
		0xa9, 0xc0, // LDA #$C0
		0x81, 0x10, // STA ($10,X)
		0x4c, 0x0b, 0x02, // JMP $020B
	})
	k.Mem.Write(0x0010, 0x05)
	k.Mem.Write(0x0011, 0x40)

	test.DemandSuccess(t, k.Prefs.Video.Set("cycleaccurate"))
	k.Reset()
	test.DemandEquality(t, k.Video.Mode(), video.CycleAccurate)

	// ordinary stores reach video RAM at the window offset
	for range 2 {
		k.Step()
	}
	test.ExpectEquality(t, k.Video.Buffer[0x0010], uint8(0x5a))
	test.ExpectEquality(t, k.Mem.Read(0x4010), uint8(0x5a))
	test.ExpectFailure(t, k.Video.Flip)

	// a (zp,X) store is a MADSEL cycle and packs two bits into video RAM
	for range 3 {
		k.Step()
	}
	test.ExpectEquality(t, k.Video.Buffer[0x0001], uint8(0x22))
	test.ExpectEquality(t, k.Video.Buffer[0x0005], uint8(0x00))
}

func TestSnapshot(t *testing.T) {
	k := newKIM1(t, digitProgram)
	for range 20 {
		k.Step()
	}

	state := k.Snapshot()
	test.ExpectEquality(t, state.LEDs.Digits[0], uint8(0x3f))
	test.ExpectEquality(t, state.U2PortB, uint8(0x09))

	k.Reset()
	k.Mem.RAM[0x0200] = 0x00
	k.LEDs.Digits[0] = 0x00

	test.DemandSuccess(t, k.Plumb(state))
	test.ExpectEquality(t, k.u2PortB, uint8(0x09))
	test.ExpectEquality(t, k.Mem.RAM[0x0200], uint8(0xa9))
	test.ExpectEquality(t, k.LEDs.Digits[0], uint8(0x3f))
	test.ExpectEquality(t, k.CPU.PC(), state.Registers.PC)

	// the U2 callbacks are connected to the restored machine
	k.U2.Write(riot.PB, 0x0b)
	test.ExpectEquality(t, k.u2PortB, uint8(0x0b))

	// the snapshot is not changed by the running machine
	k.Mem.RAM[0x0200] = 0x00
	test.ExpectEquality(t, state.RAM[0x0200], uint8(0xa9))

	test.ExpectFailure(t, k.Plumb(nil))
}

func TestRun(t *testing.T) {
	k := newKIM1(t, digitProgram)
	k.SetThrottle(false)

	test.DemandSuccess(t, k.PushEvent(input.Event{Action: input.KeyPress, Key: keypad.Key0}))

	quanta := 0
	err := k.Run(func() (govern.State, error) {
		quanta++
		if quanta >= 3 {
			return govern.Ending, nil
		}
		return govern.Running, nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, quanta, 3)
	test.ExpectSuccess(t, k.Keypad.IsPressed(keypad.Key0))
	// 16666 + 16667 + 16667
	test.ExpectSuccess(t, k.sched.Cycles >= 50000)
	test.ExpectSuccess(t, k.sched.Cycles < 50000+7)

	var digit uint8
	k.BorrowLEDs(func(leds *display.LEDs) {
		digit = leds.Digits[0]
	})
	test.ExpectEquality(t, digit, uint8(0x3f))
}

func TestRunSecond(t *testing.T) {
	k := newKIM1(t, digitProgram)
	k.SetThrottle(false)

	quanta := 0
	err := k.Run(func() (govern.State, error) {
		quanta++
		if quanta >= clocks.LED {
			return govern.Ending, nil
		}
		return govern.Running, nil
	})
	test.ExpectSuccess(t, err)

	// a second of quanta is exactly a second of CPU cycles, less any overrun
	// of the last instruction
	test.ExpectSuccess(t, k.sched.Cycles >= clocks.CPU)
	test.ExpectSuccess(t, k.sched.Cycles < clocks.CPU+7)
}
