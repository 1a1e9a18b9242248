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

// Package memorymap describes the address decoding of the KIM-1.
//
// The MapAddress() function should be used to find the area of memory an
// address belongs to and the offset of the address within that area.
//
//	offset, area := memorymap.MapAddress(address)
//
// The 0xf000 to 0xffff range is reported as the HighROM area. Whether that
// area contains a ROM, or whether it mirrors the 0x1000 to 0x1fff range (as an
// unexpanded KIM-1 does) is decided by the memory package.
package memorymap
