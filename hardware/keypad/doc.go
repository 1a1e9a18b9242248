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

// Package keypad emulates the 23 key keypad and the single step switch of the
// KIM-1.
//
// The keys are arranged in three rows of seven. A row is selected by the
// value on bits 1 to 4 of the U2 port B (through a 74145 decoder) and the
// columns of the selected row are read on bits 0 to 6 of port A. A pressed key
// reads as a zero.
//
// The ST and RS keys are not part of the matrix. They drive the NMI and RESET
// lines of the CPU directly. The SST switch is read by the single step logic.
package keypad
