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

package terminal

import (
	"testing"

	"github.com/gokim1/gokim1/hardware/input"
	"github.com/gokim1/gokim1/hardware/keypad"
	"github.com/gokim1/gokim1/test"
)

func TestTranslate(t *testing.T) {
	for b, k := range map[byte]keypad.Key{
		'0':               keypad.Key0,
		'9':               keypad.Key9,
		'a':               keypad.KeyA,
		'F':               keypad.KeyF,
		keyCtrlA:          keypad.KeyAD,
		keyCarriageReturn: keypad.KeyGO,
		'+':               keypad.KeyPlus,
		keyEsc:            keypad.KeyST,
		keyTab:            keypad.KeySST,
	} {
		ev, ok := translate(b)
		test.ExpectSuccess(t, ok, b)
		test.ExpectEquality(t, ev, input.Event{Action: input.KeyPress, Key: k}, b)
	}

	ev, ok := translate('>')
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, ev.Action, input.TapePlay)

	for _, b := range []byte{'g', 'z', keyQuit, ' '} {
		_, ok := translate(b)
		test.ExpectFailure(t, ok, b)
	}
}
