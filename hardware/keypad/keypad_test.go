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

package keypad_test

import (
	"testing"

	"github.com/gokim1/gokim1/hardware/keypad"
	"github.com/gokim1/gokim1/test"
)

func TestRowSelect(t *testing.T) {
	kp := keypad.NewKeypad(keypad.Lines{})

	// idle rows
	for row := range uint8(3) {
		test.ExpectEquality(t, kp.Read(row<<1), 0x7f)
	}

	// rows outside of the matrix always read 0xff
	for row := uint8(3); row < 16; row++ {
		test.ExpectEquality(t, kp.Read(row<<1), 0xff, row)
	}

	// bit 0 and bits 5 to 7 of port B are not part of the row select
	test.ExpectEquality(t, kp.Read(0xe1), 0x7f)
	test.ExpectEquality(t, kp.Read(0xe3), 0x7f)
	test.ExpectEquality(t, kp.Read(0xe7), 0xff)
}

func TestMatrix(t *testing.T) {
	kp := keypad.NewKeypad(keypad.Lines{})

	kp.Press(keypad.Key0)
	test.ExpectEquality(t, kp.Read(0x00), 0x3f)
	kp.Press(keypad.Key6)
	test.ExpectEquality(t, kp.Read(0x00), 0x3e)
	kp.Release(keypad.Key0)
	test.ExpectEquality(t, kp.Read(0x00), 0x7e)

	kp.Press(keypad.KeyA)
	test.ExpectEquality(t, kp.Read(0x02), 0x77)

	kp.Press(keypad.KeyPC)
	kp.Press(keypad.KeyE)
	test.ExpectEquality(t, kp.Read(0x04), 0x3e)
	test.ExpectSuccess(t, kp.IsPressed(keypad.KeyPC))
	test.ExpectEquality(t, kp.String(), "6 A E PC")

	// a row that is not connected is unaffected by pressed keys
	test.ExpectEquality(t, kp.Read(0x06), 0xff)

	kp.ReleaseAll()
	test.ExpectEquality(t, kp.Read(0x00), 0x7f)
	test.ExpectEquality(t, kp.Read(0x02), 0x7f)
	test.ExpectEquality(t, kp.Read(0x04), 0x7f)
}

func TestLines(t *testing.T) {
	var nmi, reset []bool

	kp := keypad.NewKeypad(keypad.Lines{
		NMI:   func(asserted bool) { nmi = append(nmi, asserted) },
		Reset: func(asserted bool) { reset = append(reset, asserted) },
	})

	kp.Press(keypad.KeyST)
	kp.Press(keypad.KeyST)
	kp.Release(keypad.KeyST)
	kp.Release(keypad.KeyST)
	test.ExpectEquality(t, len(nmi), 2)
	test.ExpectEquality(t, nmi[0], true)
	test.ExpectEquality(t, nmi[1], false)

	kp.Press(keypad.KeyRS)
	test.ExpectEquality(t, len(reset), 1)
	test.ExpectSuccess(t, reset[0])
	kp.ReleaseAll()
	test.ExpectEquality(t, len(reset), 2)
	test.ExpectFailure(t, reset[1])
	test.ExpectEquality(t, len(nmi), 2)

	// special keys are not part of the matrix
	test.ExpectEquality(t, kp.Read(0x00), 0x7f)
}

func TestSST(t *testing.T) {
	kp := keypad.NewKeypad(keypad.Lines{})
	test.ExpectFailure(t, kp.SST())

	kp.Press(keypad.KeySST)
	kp.Release(keypad.KeySST)
	test.ExpectSuccess(t, kp.SST())
	test.ExpectEquality(t, kp.String(), "[SST]")

	kp.Press(keypad.KeySST)
	test.ExpectFailure(t, kp.SST())

	kp.SetSST(true)
	test.ExpectSuccess(t, kp.IsPressed(keypad.KeySST))
}

func TestParseKey(t *testing.T) {
	test.ExpectEquality(t, keypad.ParseKey("0"), keypad.Key0)
	test.ExpectEquality(t, keypad.ParseKey("9"), keypad.Key9)
	test.ExpectEquality(t, keypad.ParseKey("a"), keypad.KeyA)
	test.ExpectEquality(t, keypad.ParseKey("go"), keypad.KeyGO)
	test.ExpectEquality(t, keypad.ParseKey("+"), keypad.KeyPlus)
	test.ExpectEquality(t, keypad.ParseKey("xyz"), keypad.NoKey)
	test.ExpectEquality(t, keypad.KeyDA.String(), "DA")
	test.ExpectEquality(t, keypad.Key7.String(), "7")
}
