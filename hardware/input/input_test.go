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

package input_test

import (
	"testing"

	"github.com/gokim1/gokim1/curated"
	"github.com/gokim1/gokim1/hardware/cassette"
	"github.com/gokim1/gokim1/hardware/input"
	"github.com/gokim1/gokim1/hardware/keypad"
	"github.com/gokim1/gokim1/test"
)

func TestPushed(t *testing.T) {
	kp := keypad.NewKeypad(keypad.Lines{})
	deck := cassette.NewDeck()
	inp := input.NewInput(kp, deck)

	test.ExpectSuccess(t, inp.PushEvent(input.Event{Action: input.KeyPress, Key: keypad.Key0}))
	test.ExpectSuccess(t, inp.PushEvent(input.Event{Action: input.KeyPress, Key: keypad.KeyGO}))

	// nothing happens until the queue is handled
	test.ExpectFailure(t, kp.IsPressed(keypad.Key0))

	test.ExpectSuccess(t, inp.HandlePushed())
	test.ExpectSuccess(t, kp.IsPressed(keypad.Key0))
	test.ExpectSuccess(t, kp.IsPressed(keypad.KeyGO))

	test.ExpectSuccess(t, inp.HandleEvent(input.Event{Action: input.KeyRelease, Key: keypad.Key0}))
	test.ExpectFailure(t, kp.IsPressed(keypad.Key0))
}

func TestQueueFull(t *testing.T) {
	inp := input.NewInput(keypad.NewKeypad(keypad.Lines{}), cassette.NewDeck())

	var err error
	for range 100 {
		err = inp.PushEvent(input.Event{Action: input.TapeRewind})
		if err != nil {
			break
		}
	}
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, inp.HandlePushed())
	test.ExpectSuccess(t, inp.PushEvent(input.Event{Action: input.TapeRewind}))
}

func TestTape(t *testing.T) {
	deck := cassette.NewDeck()
	inp := input.NewInput(keypad.NewKeypad(keypad.Lines{}), deck)

	err := inp.HandleEvent(input.Event{Action: input.TapePlay})
	test.ExpectSuccess(t, curated.Has(err, cassette.NoTape))

	test.ExpectSuccess(t, deck.Insert([]float32{1, 1, 1}, 44100))
	test.ExpectSuccess(t, inp.HandleEvent(input.Event{Action: input.TapePlay}))
	test.ExpectEquality(t, deck.State(), cassette.Playing)
	test.ExpectSuccess(t, inp.HandleEvent(input.Event{Action: input.TapeStop}))
	test.ExpectEquality(t, deck.State(), cassette.Stopped)

	test.ExpectEquality(t, input.Event{Action: input.KeyPress, Key: keypad.KeyAD}.String(), "press AD")
	test.ExpectEquality(t, input.Event{Action: input.TapeRecord}.String(), "record")
}

func TestPushedAfterFailure(t *testing.T) {
	kp := keypad.NewKeypad(keypad.Lines{})
	inp := input.NewInput(kp, cassette.NewDeck())

	test.ExpectSuccess(t, inp.HandleEvent(input.Event{Action: input.KeyPress, Key: keypad.Key5}))

	// playing with no tape fails but the release behind it is still handled
	test.ExpectSuccess(t, inp.PushEvent(input.Event{Action: input.TapePlay}))
	test.ExpectSuccess(t, inp.PushEvent(input.Event{Action: input.KeyRelease, Key: keypad.Key5}))
	test.ExpectSuccess(t, inp.PushEvent(input.Event{Action: input.KeyPress, Key: keypad.KeyGO}))

	err := inp.HandlePushed()
	test.ExpectSuccess(t, curated.Has(err, cassette.NoTape))
	test.ExpectFailure(t, kp.IsPressed(keypad.Key5))
	test.ExpectSuccess(t, kp.IsPressed(keypad.KeyGO))

	// the queue is empty
	test.ExpectSuccess(t, inp.HandlePushed())
}
