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
	"github.com/gokim1/gokim1/hardware/input"
	"github.com/gokim1/gokim1/hardware/keypad"
)

// list of ASCII codes for non-alphanumeric characters
const (
	keyCtrlA          = 1
	keyCtrlD          = 4
	keyCtrlG          = 7
	keyTab            = 9
	keyLineFeed       = 10
	keyCarriageReturn = 13
	keyCtrlP          = 16
	keyCtrlR          = 18
	keyCtrlT          = 20
	keyEsc            = 27
)

// keyQuit ends the terminal session.
const keyQuit = 'q'

var bindings = map[byte]keypad.Key{
	keyCtrlA:          keypad.KeyAD,
	keyCtrlD:          keypad.KeyDA,
	keyCtrlP:          keypad.KeyPC,
	keyCtrlG:          keypad.KeyGO,
	keyCarriageReturn: keypad.KeyGO,
	keyLineFeed:       keypad.KeyGO,
	'+':               keypad.KeyPlus,
	keyCtrlT:          keypad.KeyST,
	keyEsc:            keypad.KeyST,
	keyCtrlR:          keypad.KeyRS,
	keyTab:            keypad.KeySST,
}

var tapeBindings = map[byte]input.Action{
	'>': input.TapePlay,
	'*': input.TapeRecord,
	'.': input.TapeStop,
	'<': input.TapeRewind,
}

// translate a byte read from the terminal into a key press. Tape events have
// a Key of NoKey.
func translate(b byte) (input.Event, bool) {
	if a, ok := tapeBindings[b]; ok {
		return input.Event{Action: a, Key: keypad.NoKey}, true
	}

	if k, ok := bindings[b]; ok {
		return input.Event{Action: input.KeyPress, Key: k}, true
	}

	switch {
	case b >= '0' && b <= '9':
		return input.Event{Action: input.KeyPress, Key: keypad.Key0 + keypad.Key(b-'0')}, true
	case b >= 'a' && b <= 'f':
		return input.Event{Action: input.KeyPress, Key: keypad.KeyA + keypad.Key(b-'a')}, true
	case b >= 'A' && b <= 'F':
		return input.Event{Action: input.KeyPress, Key: keypad.KeyA + keypad.Key(b-'A')}, true
	}

	return input.Event{}, false
}
