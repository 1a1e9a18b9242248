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

package display_test

import (
	"testing"

	"github.com/gokim1/gokim1/hardware/display"
	"github.com/gokim1/gokim1/test"
)

type mockSink struct {
	digits [display.NumDigits]uint8
	calls  int
}

func (s *mockSink) SetDigit(idx int, segments uint8) {
	s.digits[idx] = segments
	s.calls++
}

// the value of port B that selects the LED digit
func selectDigit(idx int) uint8 {
	return uint8(idx+4) << 1
}

func TestWrite(t *testing.T) {
	sink := &mockSink{}
	leds := display.NewLEDs(sink)

	// bit 7 clear is a no-op
	leds.Write(selectDigit(0), 0x06)
	test.ExpectEquality(t, leds.Digits[0], 0)
	test.ExpectEquality(t, leds.Ages[0], 0)
	test.ExpectEquality(t, sink.calls, 0)

	for i := range display.NumDigits {
		leds.Write(selectDigit(i), 0x80|display.Pattern(uint8(i)))
		test.ExpectEquality(t, leds.Digits[i], display.Pattern(uint8(i)))
		test.ExpectEquality(t, leds.Ages[i], 15)
		test.ExpectEquality(t, sink.digits[i], display.Pattern(uint8(i)))
	}
	test.ExpectEquality(t, leds.Text(), "012345")

	// row select outside of 4 to 9
	for _, row := range []uint8{0, 1, 2, 3, 10, 15} {
		leds.Write(row<<1, 0xff)
	}
	test.ExpectEquality(t, leds.Text(), "012345")
	test.ExpectEquality(t, sink.calls, display.NumDigits)
}

func TestDecay(t *testing.T) {
	sink := &mockSink{}
	leds := display.NewLEDs(sink)

	leds.Write(selectDigit(2), 0x80|display.Pattern(0x0a))

	// lit for fifteen ticks
	for range 15 {
		leds.Tick()
		test.ExpectSuccess(t, leds.Lit(2))
	}
	test.ExpectEquality(t, leds.Ages[2], 0)
	test.ExpectEquality(t, sink.digits[2], display.Pattern(0x0a))

	// blanked on the sixteenth
	leds.Tick()
	test.ExpectFailure(t, leds.Lit(2))
	test.ExpectEquality(t, sink.digits[2], 0)

	// refreshed digits stay lit
	for range 100 {
		leds.Write(selectDigit(2), 0x80|display.Pattern(0x0b))
		leds.Tick()
	}
	test.ExpectEquality(t, leds.Text(), "  B   ")
}

func TestReset(t *testing.T) {
	leds := display.NewLEDs(nil)
	leds.Write(selectDigit(5), 0xff)
	leds.Reset()
	test.ExpectEquality(t, leds.Ages[5], 0)
	leds.Tick()
	test.ExpectFailure(t, leds.Lit(5))
}

func TestSnapshot(t *testing.T) {
	sink := &mockSink{}
	leds := display.NewLEDs(sink)
	leds.Write(selectDigit(1), 0x80|display.Pattern(1))

	snapshot := leds.Snapshot()
	leds.Tick()
	test.ExpectEquality(t, snapshot.Ages[1], 15)
	test.ExpectEquality(t, leds.Ages[1], 14)

	// plumbing sends all digits to the sink
	other := &mockSink{}
	snapshot.Plumb(other)
	test.ExpectEquality(t, other.calls, display.NumDigits)
	test.ExpectEquality(t, other.digits[1], display.Pattern(1))
}

func TestCharacter(t *testing.T) {
	test.ExpectEquality(t, display.Character(0), ' ')
	test.ExpectEquality(t, display.Character(0x3f), '0')
	test.ExpectEquality(t, display.Character(0x71), 'F')
	test.ExpectEquality(t, display.Character(0x40), '?')
}
