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

package keypad

import "strings"

// Key identifies one of the keys on the keypad.
type Key int

// List of valid Key values. The order of the matrix keys is significant.
const (
	Key0 Key = iota
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyAD
	KeyDA
	KeyPlus
	KeyGO
	KeyPC

	// keys outside of the matrix
	KeyST
	KeyRS
	KeySST

	NoKey Key = -1
)

// the number of keys in each row of the matrix
const rowLength = 7

var keyNames = map[Key]string{
	KeyA:    "A",
	KeyB:    "B",
	KeyC:    "C",
	KeyD:    "D",
	KeyE:    "E",
	KeyF:    "F",
	KeyAD:   "AD",
	KeyDA:   "DA",
	KeyPlus: "+",
	KeyGO:   "GO",
	KeyPC:   "PC",
	KeyST:   "ST",
	KeyRS:   "RS",
	KeySST:  "SST",
}

func (k Key) String() string {
	if k >= Key0 && k <= Key9 {
		return string(rune('0' + k))
	}
	if s, ok := keyNames[k]; ok {
		return s
	}
	return "no key"
}

// inMatrix returns the row and the column bit of a matrix key.
func (k Key) inMatrix() (int, uint8, bool) {
	if k < Key0 || k > KeyPC {
		return 0, 0, false
	}
	return int(k) / rowLength, 0x40 >> (int(k) % rowLength), true
}

// ParseKey returns the Key with the name. The comparison is not case
// sensitive. NoKey is returned if the name is not recognised.
func ParseKey(name string) Key {
	name = strings.ToUpper(strings.TrimSpace(name))
	if len(name) == 1 && name[0] >= '0' && name[0] <= '9' {
		return Key(name[0] - '0')
	}
	for k, s := range keyNames {
		if s == name {
			return k
		}
	}
	return NoKey
}
