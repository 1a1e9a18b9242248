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
	"fmt"
	"io"
	"time"

	"github.com/gokim1/gokim1/curated"
	"github.com/gokim1/gokim1/hardware"
	"github.com/gokim1/gokim1/hardware/display"
	"github.com/gokim1/gokim1/hardware/input"
	"github.com/gokim1/gokim1/hardware/keypad"
	"github.com/gokim1/gokim1/logger"
	"github.com/pkg/term"
)

// how long a key is held down after it is typed. the monitor debounces keys
// for several milliseconds
const holdDuration = 100 * time.Millisecond

// how often the LED line is redrawn
const redrawPeriod = 50 * time.Millisecond

// Terminal is the text front end.
type Terminal struct {
	kim    *hardware.KIM1
	tty    *term.Term
	output io.Writer

	// the most recently drawn LED text. the line is only redrawn when it
	// changes
	text string
}

// NewTerminal opens the controlling terminal and puts it into cbreak mode.
// CleanUp() must be called to restore the terminal.
func NewTerminal(kim *hardware.KIM1, output io.Writer) (*Terminal, error) {
	tty, err := term.Open("/dev/tty", term.CBreakMode)
	if err != nil {
		return nil, curated.Errorf("terminal: %v", err)
	}

	return &Terminal{
		kim:    kim,
		tty:    tty,
		output: output,
	}, nil
}

// CleanUp restores the terminal to the mode it was in before NewTerminal().
func (trm *Terminal) CleanUp() {
	_ = trm.tty.Restore()
	_ = trm.tty.Close()
	fmt.Fprintln(trm.output)
}

// Service reads key presses from the terminal and redraws the LEDs until the
// quit key is pressed or the done channel is closed.
func (trm *Terminal) Service(done <-chan struct{}) error {
	keys := make(chan byte, 16)
	readErr := make(chan error, 1)

	// the reader ends when the tty is closed by CleanUp()
	stop := make(chan struct{})
	defer close(stop)

	go readKeys(trm.tty, keys, readErr, stop)

	tck := time.NewTicker(redrawPeriod)
	defer tck.Stop()

	for {
		select {
		case <-done:
			return nil
		case err := <-readErr:
			return curated.Errorf("terminal: %v", err)
		case b := <-keys:
			if b == keyQuit {
				return nil
			}
			trm.press(b)
		case <-tck.C:
			trm.redraw()
		}
	}
}

// readKeys sends every byte read from r to the keys channel until the read
// fails or the stop channel is closed.
func readKeys(r io.Reader, keys chan<- byte, readErr chan<- error, stop <-chan struct{}) {
	b := make([]byte, 1)
	for {
		if _, err := r.Read(b); err != nil {
			readErr <- err
			return
		}
		select {
		case keys <- b[0]:
		case <-stop:
			return
		}
	}
}

func (trm *Terminal) press(b byte) {
	ev, ok := translate(b)
	if !ok {
		return
	}

	if err := trm.kim.PushEvent(ev); err != nil {
		logger.Log(logger.Allow, "terminal", err)
		return
	}

	if ev.Action != input.KeyPress || ev.Key == keypad.KeySST {
		return
	}

	time.AfterFunc(holdDuration, func() {
		err := trm.kim.PushEvent(input.Event{Action: input.KeyRelease, Key: ev.Key})
		if err != nil {
			logger.Log(logger.Allow, "terminal", err)
		}
	})
}

func (trm *Terminal) redraw() {
	var text string
	trm.kim.BorrowLEDs(func(leds *display.LEDs) {
		text = leds.Text()
	})
	if text == trm.text {
		return
	}
	trm.text = text
	fmt.Fprintf(trm.output, "\r [ %s ] ", text)
}
