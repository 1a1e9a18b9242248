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

// Package memory implements the address space of the KIM-1 as seen by the
// CPU.
//
//	                  ---- RAM (1K) and Expansion RAM (8K)
//	                 |
//	                 |---- U3 RIOT ---- application ports
//	                 |
//	    CPU ---- * --|---- U2 RIOT ---- keypad, LEDs, cassette
//	                 |
//	                 |---- RIOT RAM (2 x 64 bytes)
//	                 |
//	                 |--<- Monitor ROM (6530-003 and 6530-002)
//	                 |
//	                 |---- Video window
//	                 |
//	                  -<-- High ROM, or a mirror of 0x1000 to 0x1fff
//
// The asterisk indicates that addresses are first decoded by the memorymap
// package. The arrows pointing away from the ROM areas indicate that the CPU
// can only read from them. Writes to ROM are dropped silently.
//
// Reads from addresses that are not decoded return zero and writes to them
// are dropped. Both cases are logged.
//
// An unexpanded KIM-1 only decodes the bottom 13 address lines and so the CPU
// finds the interrupt vectors at the top of the monitor ROM. This is
// emulated when no ROM has been loaded into the High ROM area and the
// hardware.mirror preference is set.
package memory
