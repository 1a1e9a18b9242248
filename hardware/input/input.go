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

package input

import (
	"fmt"

	"github.com/gokim1/gokim1/curated"
	"github.com/gokim1/gokim1/hardware/cassette"
	"github.com/gokim1/gokim1/hardware/keypad"
	"github.com/gokim1/gokim1/logger"
)

// Action is the type of an input Event.
type Action int

// List of valid Action values.
const (
	KeyPress Action = iota
	KeyRelease
	TapePlay
	TapeRecord
	TapeStop
	TapeRewind
)

func (a Action) String() string {
	switch a {
	case KeyPress:
		return "press"
	case KeyRelease:
		return "release"
	case TapePlay:
		return "play"
	case TapeRecord:
		return "record"
	case TapeStop:
		return "stop"
	case TapeRewind:
		return "rewind"
	}
	return "unknown action"
}

// Event is a single input event. The Key field is only used by the KeyPress
// and KeyRelease actions.
type Event struct {
	Action Action
	Key    keypad.Key
}

func (ev Event) String() string {
	switch ev.Action {
	case KeyPress, KeyRelease:
		return fmt.Sprintf("%s %s", ev.Action, ev.Key)
	}
	return ev.Action.String()
}

// the number of events that can be queued
const queueLength = 64

// Input handles all input into the KIM-1.
type Input struct {
	keypad *keypad.Keypad
	deck   *cassette.Deck

	// events pushed onto the input queue
	pushed chan Event
}

// NewInput is the preferred method of initialisation for the Input type.
func NewInput(kp *keypad.Keypad, deck *cassette.Deck) *Input {
	return &Input{
		keypad: kp,
		deck:   deck,
		pushed: make(chan Event, queueLength),
	}
}

// PushEvent pushes an Event onto the queue. Will drop the event and return an
// error if queue is full. Safe to call from any goroutine.
func (inp *Input) PushEvent(ev Event) error {
	select {
	case inp.pushed <- ev:
	default:
		return curated.Errorf("input: pushed event queue is full: %v dropped", ev)
	}
	return nil
}

// HandlePushed handles every event in the queue. An event that fails does not
// prevent the events behind it from being handled. The first error is
// returned and any others are logged. It should only be called from the
// emulation goroutine.
func (inp *Input) HandlePushed() error {
	var first error
	for {
		select {
		case ev := <-inp.pushed:
			if err := inp.HandleEvent(ev); err != nil {
				if first == nil {
					first = err
				} else {
					logger.Log(logger.Allow, "input", err)
				}
			}
		default:
			return first
		}
	}
}

// HandleEvent forwards an event to the keypad or the cassette deck.
func (inp *Input) HandleEvent(ev Event) error {
	switch ev.Action {
	case KeyPress:
		inp.keypad.Press(ev.Key)
	case KeyRelease:
		inp.keypad.Release(ev.Key)
	case TapePlay:
		if err := inp.deck.Play(); err != nil {
			return curated.Errorf("input: %v", err)
		}
	case TapeRecord:
		if err := inp.deck.Record(); err != nil {
			return curated.Errorf("input: %v", err)
		}
	case TapeStop:
		inp.deck.Stop()
	case TapeRewind:
		inp.deck.Rewind()
	default:
		return curated.Errorf("input: unknown action (%d)", ev.Action)
	}
	return nil
}
