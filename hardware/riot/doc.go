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

// Package riot represents the 6530 RIOT (RAM, ROM, I/O, Timer) used twice in
// the KIM-1, as U2 and U3.
//
// The active parts of the RIOT are:
//
//	Timer
//	I/O ports
//	RAM
//
// The timer can be found in the timer package. The two I/O ports are
// connected to the rest of the machine through a set of callbacks, supplied
// with the Ports type. The ROM of each RIOT holds part of the monitor program
// and is handled by the memory package.
//
// Register addresses are decoded from the bottom bits of the address only so
// the caller can pass the full CPU address. Bit 2 selects between the I/O
// registers (clear) and the timer (set).
package riot
