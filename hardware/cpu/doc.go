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

// Package cpu wraps the NMOS 6502 interpreter from github.com/beevik/go6502
// with the interrupt and reset lines of the KIM-1.
//
// The interpreter executes instructions and counts cycles. The CPU type in
// this package adds the RESET, NMI and IRQ lines that the interpreter does not
// model.
//
// The CPU requires an implementation of the Bus interface.
//
//	mc := cpu.NewCPU(mem)
//	mc.Reset()
//	for {
//		cycles := mc.Step()
//		...
//	}
//
// RESET and NMI are driven by the keypad. While the RESET line is asserted the
// CPU does nothing but count cycles. When it is released the CPU loads the
// program counter from the reset vector. NMI is edge triggered and is taken
// before the next instruction. IRQ is level triggered and is only taken when
// the interrupt disable flag is clear.
package cpu
