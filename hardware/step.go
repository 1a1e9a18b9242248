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
	"github.com/gokim1/gokim1/hardware/cpu"
)

// monitor returns true if the address is in the 6530-002 ROM, either directly
// or through the mirror at the top of memory. The SST logic does not raise an
// NMI for instructions executed here.
func monitor(address uint16) bool {
	return address&0x1c00 == 0x1c00 && (address < 0x2000 || address >= 0xfc00)
}

// Step executes a single instruction, or services a pending interrupt, and
// advances the rest of the machine by the number of cycles consumed. Returns
// the number of cycles.
func (k *KIM1) Step() int {
	k.crit.Lock()
	defer k.crit.Unlock()
	return k.step()
}

func (k *KIM1) step() int {
	k.CPU.SetLine(cpu.IRQ, k.Prefs.TimerIRQ.Get().(bool) && (k.U2.IRQ() || k.U3.IRQ()))

	executing := k.CPU.Executing()
	pc := k.CPU.PC()

	// the video hardware watches the opcode fetch. bus accesses made by the
	// instruction are assumed to happen on the last cycle of the instruction
	if executing {
		start := k.CPU.Cycles()
		opcode := k.Mem.Peek(pc)
		k.Video.OpcodeFetch(opcode, k.CPU.Line(cpu.IRQ), start)
		k.Video.SetClock(start + uint64(k.CPU.InstructionCycles(opcode)) - 1)
	}

	cycles := k.CPU.Step()
	k.sched.Step(cycles)

	if executing && k.Keypad.SST() && !monitor(pc) {
		k.CPU.TriggerNMI()
	}

	return cycles
}
