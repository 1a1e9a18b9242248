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

package gui

import (
	"strings"

	"github.com/gokim1/gokim1/hardware/input"
	"github.com/gokim1/gokim1/hardware/keypad"
)

// the host keys for the KIM-1 keys that are not hex digits
var bindings = map[string]keypad.Key{
	"F1":       keypad.KeyAD,
	"F2":       keypad.KeyDA,
	"F3":       keypad.KeyPC,
	"+":        keypad.KeyPlus,
	"=":        keypad.KeyPlus,
	"KEYPAD +": keypad.KeyPlus,
	"RETURN":   keypad.KeyGO,
	"ESCAPE":   keypad.KeyST,
	"F12":      keypad.KeyRS,
	"F11":      keypad.KeySST,
}

// the host keys for the cassette deck. tape events are sent on key down only
var tapeBindings = map[string]input.Action{
	"F5": input.TapePlay,
	"F6": input.TapeRecord,
	"F7": input.TapeStop,
	"F8": input.TapeRewind,
}

// Translate a host key name to an input event. Key names are compared
// without regard to case. Returns false if the key has no binding.
func Translate(name string, down bool) (input.Event, bool) {
	name = strings.ToUpper(name)

	if a, ok := tapeBindings[name]; ok {
		return input.Event{Action: a, Key: keypad.NoKey}, down
	}

	k, ok := bindings[name]
	if !ok {
		// single character hex digits only. the names of the other KIM-1
		// keys are not host key names
		if len(name) != 1 {
			return input.Event{}, false
		}
		k = keypad.ParseKey(name)
		if k == keypad.NoKey {
			return input.Event{}, false
		}
	}

	if down {
		return input.Event{Action: input.KeyPress, Key: k}, true
	}
	return input.Event{Action: input.KeyRelease, Key: k}, true
}
