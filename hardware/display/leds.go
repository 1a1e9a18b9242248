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

package display

import (
	"fmt"
	"strings"
)

// NumDigits is the number of LEDs in the display.
const NumDigits = 6

// the age of a freshly written digit. the digit is blanked on the tick after
// the age reaches zero
const maxAge = 15

// Sink receives changes to the display. A segment value of zero blanks the
// digit.
type Sink interface {
	SetDigit(idx int, segments uint8)
}

// LEDs is the state of the display.
type LEDs struct {
	sink Sink

	Digits [NumDigits]uint8
	Ages   [NumDigits]uint8
}

// NewLEDs is the preferred method of initialisation for the LEDs type. The
// sink can be nil.
func NewLEDs(sink Sink) *LEDs {
	return &LEDs{
		sink: sink,
	}
}

// Snapshot creates a copy of the LEDs in its current state. The sink is not
// copied.
func (leds *LEDs) Snapshot() *LEDs {
	n := *leds
	n.sink = nil
	return &n
}

// Plumb a new sink into the display. Every digit is sent to the new sink.
func (leds *LEDs) Plumb(sink Sink) {
	leds.sink = sink
	for i, d := range leds.Digits {
		leds.setDigit(i, d)
	}
}

func (leds *LEDs) String() string {
	var s strings.Builder
	for i, d := range leds.Digits {
		s.WriteString(fmt.Sprintf("%02x/%d ", d, leds.Ages[i]))
	}
	return strings.TrimSpace(s.String())
}

// Reset the age of every digit. The segment patterns are not changed and
// will be blanked by the next call to Tick().
func (leds *LEDs) Reset() {
	clear(leds.Ages[:])
}

func (leds *LEDs) setDigit(idx int, segments uint8) {
	leds.Digits[idx] = segments
	if leds.sink != nil {
		leds.sink.SetDigit(idx, segments)
	}
}

// Write is called when the U2 port A is written. The portB argument is the
// value last written to port B. Only writes with bit 7 of data set and with
// a row select of 4 to 9 change the display.
func (leds *LEDs) Write(portB uint8, data uint8) {
	idx := int((portB >> 1) & 0x0f)
	if idx < 4 || idx >= 4+NumDigits {
		return
	}
	if data&0x80 == 0x80 {
		leds.setDigit(idx-4, data&0x7f)
		leds.Ages[idx-4] = maxAge
	}
}

// Tick ages every digit and blanks the digits that have not been refreshed.
// It should be called at the rate of clocks.LED.
func (leds *LEDs) Tick() {
	for i := range leds.Ages {
		if leds.Ages[i] > 0 {
			leds.Ages[i]--
		} else {
			leds.setDigit(i, 0)
		}
	}
}

// Lit returns true if the digit is showing a segment pattern.
func (leds *LEDs) Lit(idx int) bool {
	return leds.Digits[idx] != 0
}
