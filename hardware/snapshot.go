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
	"io"

	"github.com/bradleyjkemp/memviz"
	"github.com/gokim1/gokim1/curated"
	"github.com/gokim1/gokim1/hardware/cassette"
	"github.com/gokim1/gokim1/hardware/cpu"
	"github.com/gokim1/gokim1/hardware/display"
	"github.com/gokim1/gokim1/hardware/memory/memorymap"
	"github.com/gokim1/gokim1/hardware/riot"
	"github.com/gokim1/gokim1/hardware/video"
)

// State stores the KIM-1 sub-systems. It is produced by the Snapshot()
// function and can be restored with the Plumb() function.
//
// ROMs, the cassette deck and the keypad are not part of the snapshot.
type State struct {
	U2PortB uint8

	Registers cpu.Registers

	RAM       [memorymap.MemtopRAM - memorymap.OriginRAM + 1]uint8
	Expansion [memorymap.MemtopExpansion - memorymap.OriginExpansion + 1]uint8

	U2 *riot.RIOT
	U3 *riot.RIOT

	Decoder *cassette.Decoder
	LEDs    *display.LEDs
	Video   *video.Video

	Phases []int
}

// Snapshot the state of the KIM-1.
func (k *KIM1) Snapshot() *State {
	k.crit.Lock()
	defer k.crit.Unlock()

	return &State{
		U2PortB:   k.u2PortB,
		Registers: k.CPU.Registers(),
		RAM:       k.Mem.RAM,
		Expansion: k.Mem.Expansion,
		U2:        k.U2.Snapshot(),
		U3:        k.U3.Snapshot(),
		Decoder:   k.Decoder.Snapshot(),
		LEDs:      k.LEDs.Snapshot(),
		Video:     k.Video.Snapshot(),
		Phases:    k.sched.Phases(),
	}
}

// Plumb a previously snapshotted state into the KIM-1. The state can be
// plumbed more than once.
func (k *KIM1) Plumb(state *State) error {
	if state == nil {
		return curated.Errorf("kim1: cannot plumb in a nil state")
	}

	k.crit.Lock()
	defer k.crit.Unlock()

	if err := k.sched.SetPhases(state.Phases); err != nil {
		return curated.Errorf("kim1: %v", err)
	}

	k.u2PortB = state.U2PortB
	k.CPU.SetRegisters(state.Registers)
	k.Mem.RAM = state.RAM
	k.Mem.Expansion = state.Expansion

	// the machine must not change the stored state so copies of the
	// sub-systems are plumbed in
	*k.U2 = *state.U2.Snapshot()
	k.U2.Plumb(riot.Ports{
		ReadA:  k.readPortA,
		WriteA: k.writePortA,
		ReadB:  k.readPortB,
		WriteB: k.writePortB,
	})
	*k.U3 = *state.U3.Snapshot()
	*k.Decoder = *state.Decoder.Snapshot()
	*k.Video = *state.Video.Snapshot()
	*k.LEDs = *state.LEDs.Snapshot()
	k.LEDs.Plumb(k.sink)

	return nil
}

// Dump writes a graph of the state in the DOT language.
func (s *State) Dump(w io.Writer) {
	memviz.Map(w, s)
}
