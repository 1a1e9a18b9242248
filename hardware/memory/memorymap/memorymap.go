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

package memorymap

// Area represents the different areas of memory
type Area int

func (a Area) String() string {
	switch a {
	case RAM:
		return "RAM"
	case U3:
		return "U3"
	case U2:
		return "U2"
	case RIOTRAM:
		return "RIOT RAM"
	case Monitor:
		return "Monitor"
	case Expansion:
		return "Expansion"
	case Video:
		return "Video"
	case HighROM:
		return "High ROM"
	}

	return "undefined"
}

// The different memory areas in the KIM-1
const (
	Undefined Area = iota
	RAM
	U3
	U2
	RIOTRAM
	Monitor
	Expansion
	Video
	HighROM
)

// The origin and memory top for each area of memory.
const (
	OriginRAM       = uint16(0x0000)
	MemtopRAM       = uint16(0x03ff)
	OriginU3        = uint16(0x1700)
	MemtopU3        = uint16(0x173f)
	OriginU2        = uint16(0x1740)
	MemtopU2        = uint16(0x177f)
	OriginRIOTRAM   = uint16(0x1780)
	MemtopRIOTRAM   = uint16(0x17ff)
	OriginMonitor   = uint16(0x1800)
	MemtopMonitor   = uint16(0x1fff)
	OriginExpansion = uint16(0x2000)
	MemtopExpansion = uint16(0x3fff)
	OriginVideo     = uint16(0x4000)
	MemtopVideo     = uint16(0x5fff)
	OriginHighROM   = uint16(0xf000)
	MemtopHighROM   = uint16(0xffff)
)

// The monitor ROM is made up of two 6530 ROMs.
const (
	Origin6530003 = uint16(0x1800)
	Origin6530002 = uint16(0x1c00)
)

// MirrorBits are the address lines decoded by an unexpanded KIM-1. The
// HighROM area is a mirror of the bottom 8K when no ROM has been loaded
// there.
const MirrorBits = uint16(0x1fff)

// MapAddress returns the area the address belongs to and the offset of the
// address from the origin of that area.
func MapAddress(address uint16) (uint16, Area) {
	switch {
	case address <= MemtopRAM:
		return address - OriginRAM, RAM
	case address >= OriginU3 && address <= MemtopU3:
		return address - OriginU3, U3
	case address >= OriginU2 && address <= MemtopU2:
		return address - OriginU2, U2
	case address >= OriginRIOTRAM && address <= MemtopRIOTRAM:
		return address - OriginRIOTRAM, RIOTRAM
	case address >= OriginMonitor && address <= MemtopMonitor:
		return address - OriginMonitor, Monitor
	case address >= OriginExpansion && address <= MemtopExpansion:
		return address - OriginExpansion, Expansion
	case address >= OriginVideo && address <= MemtopVideo:
		return address - OriginVideo, Video
	case address >= OriginHighROM:
		return address - OriginHighROM, HighROM
	}
	return address, Undefined
}

// IsArea returns true if the address is in the specificied area
func IsArea(address uint16, area Area) bool {
	_, a := MapAddress(address)
	return area == a
}
