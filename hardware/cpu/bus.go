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

package cpu

// busAdapter presents a Bus as the memory interface required by the 6502
// interpreter.
type busAdapter struct {
	bus Bus
}

func (b *busAdapter) LoadByte(addr uint16) byte {
	return b.bus.Read(addr)
}

func (b *busAdapter) LoadBytes(addr uint16, v []byte) {
	for i := range v {
		v[i] = b.bus.Read(addr + uint16(i))
	}
}

func (b *busAdapter) LoadAddress(addr uint16) uint16 {
	// the high byte of an address never crosses a page boundary
	if addr&0xff == 0xff {
		return uint16(b.bus.Read(addr)) | uint16(b.bus.Read(addr&0xff00))<<8
	}
	return uint16(b.bus.Read(addr)) | uint16(b.bus.Read(addr+1))<<8
}

func (b *busAdapter) StoreByte(addr uint16, v byte) {
	b.bus.Write(addr, v)
}

func (b *busAdapter) StoreBytes(addr uint16, v []byte) {
	for i := range v {
		b.bus.Write(addr+uint16(i), v[i])
	}
}

func (b *busAdapter) StoreAddress(addr uint16, v uint16) {
	b.bus.Write(addr, uint8(v))
	if addr&0xff == 0xff {
		b.bus.Write(addr&0xff00, uint8(v>>8))
	} else {
		b.bus.Write(addr+1, uint8(v>>8))
	}
}
