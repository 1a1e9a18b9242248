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

package addresses

// The interrupt vectors of the 6502. On an unexpanded KIM-1 these are read
// from the top of the monitor ROM through the address mirror.
const (
	NMI   = uint16(0xfffa)
	Reset = uint16(0xfffc)
	IRQ   = uint16(0xfffe)
)

// RIOT registers of the U2 6530. Port A is connected to the keypad columns
// and the LED segments. Port B selects the keypad row or LED digit and
// carries the cassette signals.
const (
	SAD    = uint16(0x1740)
	PADD   = uint16(0x1741)
	SBD    = uint16(0x1742)
	PBDD   = uint16(0x1743)
	CLK1T  = uint16(0x1744)
	CLK8T  = uint16(0x1745)
	CLK64T = uint16(0x1746)
	CLKKT  = uint16(0x1747)
)

// RIOT registers of the U3 6530. Both ports are free for applications.
const (
	U3PAD  = uint16(0x1700)
	U3PADD = uint16(0x1701)
	U3PBD  = uint16(0x1702)
	U3PBDD = uint16(0x1703)
)

// Locations used by the monitor program.
const (
	INH    = uint16(0x00f9)
	POINTL = uint16(0x00fa)
	POINTH = uint16(0x00fb)
	SAL    = uint16(0x17f5)
	SAH    = uint16(0x17f6)
	EAL    = uint16(0x17f7)
	EAH    = uint16(0x17f8)
	ID     = uint16(0x17f9)
	NMIV   = uint16(0x17fa)
	RSTV   = uint16(0x17fc)
	IRQV   = uint16(0x17fe)
)

// Entry points in the monitor ROM.
const (
	DUMPT  = uint16(0x1800)
	LOADT  = uint16(0x1873)
	NMIT   = uint16(0x1c1c)
	RST    = uint16(0x1c22)
	START  = uint16(0x1c4f)
	SCAND  = uint16(0x1f19)
	KEYIN  = uint16(0x1f40)
	GETKEY = uint16(0x1f6a)
)

// Symbols maps the well known addresses to their names.
var Symbols = map[uint16]string{
	NMI:    "NMI",
	Reset:  "RESET",
	IRQ:    "IRQ",
	SAD:    "SAD",
	PADD:   "PADD",
	SBD:    "SBD",
	PBDD:   "PBDD",
	CLK1T:  "CLK1T",
	CLK8T:  "CLK8T",
	CLK64T: "CLK64T",
	CLKKT:  "CLKKT",
	U3PAD:  "PAD",
	U3PADD: "PADD3",
	U3PBD:  "PBD",
	U3PBDD: "PBDD3",
	INH:    "INH",
	POINTL: "POINTL",
	POINTH: "POINTH",
	SAL:    "SAL",
	SAH:    "SAH",
	EAL:    "EAL",
	EAH:    "EAH",
	ID:     "ID",
	NMIV:   "NMIV",
	RSTV:   "RSTV",
	IRQV:   "IRQV",
	DUMPT:  "DUMPT",
	LOADT:  "LOADT",
	NMIT:   "NMIT",
	RST:    "RST",
	START:  "START",
	SCAND:  "SCAND",
	KEYIN:  "KEYIN",
	GETKEY: "GETKEY",
}

// Label returns the name of the address if it has one. Otherwise the address
// is returned as a hex string.
func Label(address uint16) string {
	if s, ok := Symbols[address]; ok {
		return s
	}
	return hex(address)
}

func hex(address uint16) string {
	const digits = "0123456789abcdef"
	return string([]byte{
		'$',
		digits[address>>12],
		digits[(address>>8)&0xf],
		digits[(address>>4)&0xf],
		digits[address&0xf],
	})
}
