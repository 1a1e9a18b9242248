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

import (
	"fmt"
	"strings"
)

// The special row is read by nothing in the machine but the bit values are
// the same as the input declarations of the original hardware.
const (
	specialST  = uint8(0x40)
	specialRS  = uint8(0x20)
	specialSST = uint8(0x10)
)

// the value of a row with no keys pressed. bit 7 is not connected
const idleRow = uint8(0x7f)

// Lines are called when the state of the ST and RS keys change. The asserted
// argument is true when the key is pressed.
type Lines struct {
	NMI   func(asserted bool)
	Reset func(asserted bool)
}

// Keypad is the KIM-1 keypad and SST switch.
type Keypad struct {
	lines Lines

	rows    [3]uint8
	special uint8
}

// NewKeypad is the preferred method of initialisation for the Keypad type.
// Both fields of the Lines argument can be nil.
func NewKeypad(lines Lines) *Keypad {
	kp := &Keypad{
		lines: lines,
	}
	for i := range kp.rows {
		kp.rows[i] = idleRow
	}
	kp.special = specialST | specialRS | specialSST
	return kp
}

func (kp *Keypad) String() string {
	var s strings.Builder
	for k := Key0; k <= KeyRS; k++ {
		if kp.IsPressed(k) {
			s.WriteString(fmt.Sprintf("%s ", k))
		}
	}
	if kp.SST() {
		s.WriteString("[SST]")
	}
	return strings.TrimSpace(s.String())
}

// Read returns the value of the row selected by bits 1 to 4 of port B. Rows
// that are not connected to the keypad read as 0xff.
func (kp *Keypad) Read(portB uint8) uint8 {
	row := (portB >> 1) & 0x0f
	if int(row) < len(kp.rows) {
		return kp.rows[row]
	}
	return 0xff
}

// IsPressed returns true if the key is currently pressed. For the SST key it
// returns the position of the switch.
func (kp *Keypad) IsPressed(k Key) bool {
	if row, bit, ok := k.inMatrix(); ok {
		return kp.rows[row]&bit == 0
	}
	switch k {
	case KeyST:
		return kp.special&specialST == 0
	case KeyRS:
		return kp.special&specialRS == 0
	case KeySST:
		return kp.SST()
	}
	return false
}

// Press a key. Pressing the SST key toggles the single step switch.
func (kp *Keypad) Press(k Key) {
	if row, bit, ok := k.inMatrix(); ok {
		kp.rows[row] &^= bit
		return
	}
	switch k {
	case KeyST:
		kp.setSpecial(specialST, true, kp.lines.NMI)
	case KeyRS:
		kp.setSpecial(specialRS, true, kp.lines.Reset)
	case KeySST:
		kp.special ^= specialSST
	}
}

// Release a key. Releasing the SST key has no effect.
func (kp *Keypad) Release(k Key) {
	if row, bit, ok := k.inMatrix(); ok {
		kp.rows[row] |= bit
		return
	}
	switch k {
	case KeyST:
		kp.setSpecial(specialST, false, kp.lines.NMI)
	case KeyRS:
		kp.setSpecial(specialRS, false, kp.lines.Reset)
	}
}

// setSpecial changes the state of a key in the special row and calls the line
// function if the state has changed.
func (kp *Keypad) setSpecial(bit uint8, pressed bool, line func(bool)) {
	if pressed == (kp.special&bit == 0) {
		return
	}
	if pressed {
		kp.special &^= bit
	} else {
		kp.special |= bit
	}
	if line != nil {
		line(pressed)
	}
}

// SST returns true if the single step switch is on.
func (kp *Keypad) SST() bool {
	return kp.special&specialSST == 0
}

// SetSST sets the position of the single step switch.
func (kp *Keypad) SetSST(on bool) {
	if on {
		kp.special &^= specialSST
	} else {
		kp.special |= specialSST
	}
}

// ReleaseAll releases every key. The SST switch is not changed.
func (kp *Keypad) ReleaseAll() {
	for i := range kp.rows {
		kp.rows[i] = idleRow
	}
	kp.setSpecial(specialST, false, kp.lines.NMI)
	kp.setSpecial(specialRS, false, kp.lines.Reset)
}
