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

package memory

import (
	"github.com/gokim1/gokim1/curated"
	"github.com/gokim1/gokim1/hardware/memory/memorymap"
	"github.com/gokim1/gokim1/hardware/preferences"
	"github.com/gokim1/gokim1/hardware/riot"
	"github.com/gokim1/gokim1/logger"
	"github.com/gokim1/gokim1/random"
)

// Sentinal error patterns.
const (
	ROMSizeError      = "memory: ROM does not fit at %04x (%d bytes)"
	UnpokeableAddress = "memory: cannot poke address %04x"
)

// Device is a memory mapped peripheral. The address passed to the functions
// is the offset from the origin of the area the device is mapped to.
type Device interface {
	Read(address uint16) uint8
	Write(address uint16, data uint8)
	Peek(address uint16) uint8
}

// Memory is the address space of the KIM-1.
type Memory struct {
	prefs *preferences.Preferences

	RAM       [memorymap.MemtopRAM - memorymap.OriginRAM + 1]uint8
	Expansion [memorymap.MemtopExpansion - memorymap.OriginExpansion + 1]uint8
	Monitor   [memorymap.MemtopMonitor - memorymap.OriginMonitor + 1]uint8

	// nil if no ROM has been loaded into the High ROM area
	HighROM []uint8

	U3    *riot.RIOT
	U2    *riot.RIOT
	Video Device
}

// NewMemory is the preferred method of initialisation for the Memory type.
// The video device can be nil.
func NewMemory(prefs *preferences.Preferences, u3 *riot.RIOT, u2 *riot.RIOT, video Device) *Memory {
	return &Memory{
		prefs: prefs,
		U3:    u3,
		U2:    u2,
		Video: video,
	}
}

// Initialise RAM as it would be after power on. ROM is not affected.
func (mem *Memory) Initialise(rnd *random.Random) {
	if mem.prefs.RandomState.Get().(bool) && rnd != nil {
		rnd.Fill(mem.RAM[:])
		rnd.Fill(mem.Expansion[:])
		rnd.Fill(mem.U3.RAM[:])
		rnd.Fill(mem.U2.RAM[:])
		return
	}
	clear(mem.RAM[:])
	clear(mem.Expansion[:])
	clear(mem.U3.RAM[:])
	clear(mem.U2.RAM[:])
}

// mirrored returns true if the High ROM area is a mirror of the bottom of
// memory.
func (mem *Memory) mirrored() bool {
	return mem.HighROM == nil && mem.prefs.Mirror.Get().(bool)
}

// Read is an implementation of cpu.Bus.
func (mem *Memory) Read(address uint16) uint8 {
	return mem.read(address, false)
}

// Peek is an implementation of cpu.Bus. It returns the same value as Read()
// but the read has no side effects and is not logged.
func (mem *Memory) Peek(address uint16) uint8 {
	return mem.read(address, true)
}

func (mem *Memory) read(address uint16, peek bool) uint8 {
	offset, area := memorymap.MapAddress(address)

	switch area {
	case memorymap.RAM:
		return mem.RAM[offset]
	case memorymap.U3:
		if peek {
			return mem.U3.Peek(offset)
		}
		return mem.U3.Read(offset)
	case memorymap.U2:
		if peek {
			return mem.U2.Peek(offset)
		}
		return mem.U2.Read(offset)
	case memorymap.RIOTRAM:
		if offset < riot.RAMSize {
			return mem.U3.RAM[offset]
		}
		return mem.U2.RAM[offset-riot.RAMSize]
	case memorymap.Monitor:
		return mem.Monitor[offset]
	case memorymap.Expansion:
		return mem.Expansion[offset]
	case memorymap.Video:
		if mem.Video != nil {
			if peek {
				return mem.Video.Peek(offset)
			}
			return mem.Video.Read(offset)
		}
	case memorymap.HighROM:
		if mem.HighROM != nil {
			return mem.HighROM[offset]
		}
		if mem.mirrored() {
			return mem.read(address&memorymap.MirrorBits, peek)
		}
	}

	if !peek {
		logger.Logf(logger.Allow, "memory", "unmapped read from %04x", address)
	}
	return 0
}

// Write is an implementation of cpu.Bus.
func (mem *Memory) Write(address uint16, data uint8) {
	offset, area := memorymap.MapAddress(address)

	switch area {
	case memorymap.RAM:
		mem.RAM[offset] = data
		return
	case memorymap.U3:
		mem.U3.Write(offset, data)
		return
	case memorymap.U2:
		mem.U2.Write(offset, data)
		return
	case memorymap.RIOTRAM:
		if offset < riot.RAMSize {
			mem.U3.RAM[offset] = data
		} else {
			mem.U2.RAM[offset-riot.RAMSize] = data
		}
		return
	case memorymap.Monitor:
		return
	case memorymap.Expansion:
		mem.Expansion[offset] = data
		return
	case memorymap.Video:
		if mem.Video != nil {
			mem.Video.Write(offset, data)
			return
		}
	case memorymap.HighROM:
		if mem.HighROM != nil {
			return
		}
		if mem.mirrored() {
			mem.Write(address&memorymap.MirrorBits, data)
			return
		}
	}

	logger.Logf(logger.Allow, "memory", "unmapped write to %04x (%02x)", address, data)
}

// Poke writes to RAM or ROM without the restrictions of Write(). Device
// registers and undecoded addresses can not be poked.
func (mem *Memory) Poke(address uint16, data uint8) error {
	offset, area := memorymap.MapAddress(address)

	switch area {
	case memorymap.RAM:
		mem.RAM[offset] = data
	case memorymap.RIOTRAM:
		if offset < riot.RAMSize {
			mem.U3.RAM[offset] = data
		} else {
			mem.U2.RAM[offset-riot.RAMSize] = data
		}
	case memorymap.Monitor:
		mem.Monitor[offset] = data
	case memorymap.Expansion:
		mem.Expansion[offset] = data
	case memorymap.HighROM:
		if mem.HighROM == nil {
			if mem.mirrored() {
				return mem.Poke(address&memorymap.MirrorBits, data)
			}
			return curated.Errorf(UnpokeableAddress, address)
		}
		mem.HighROM[offset] = data
	default:
		return curated.Errorf(UnpokeableAddress, address)
	}

	return nil
}

// LoadROM copies data into one of the ROM areas. The data must fit entirely
// inside the area. The High ROM area is created on the first load.
func (mem *Memory) LoadROM(origin uint16, data []uint8) error {
	end := int(origin) + len(data) - 1

	switch {
	case len(data) == 0:
	case origin >= memorymap.OriginMonitor && end <= int(memorymap.MemtopMonitor):
		copy(mem.Monitor[origin-memorymap.OriginMonitor:], data)
		return nil
	case origin >= memorymap.OriginHighROM && end <= int(memorymap.MemtopHighROM):
		if mem.HighROM == nil {
			mem.HighROM = make([]uint8, int(memorymap.MemtopHighROM-memorymap.OriginHighROM)+1)
		}
		copy(mem.HighROM[origin-memorymap.OriginHighROM:], data)
		return nil
	}

	return curated.Errorf(ROMSizeError, origin, len(data))
}

// LoadProgram pokes data into memory starting at the origin address.
func (mem *Memory) LoadProgram(origin uint16, data []uint8) error {
	if int(origin)+len(data) > 0x10000 {
		return curated.Errorf("memory: program too long (%d bytes at %04x)", len(data), origin)
	}
	for i, d := range data {
		if err := mem.Poke(origin+uint16(i), d); err != nil {
			return err
		}
	}
	return nil
}
