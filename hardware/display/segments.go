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

// Segment bits.
const (
	SegmentA = uint8(0x01)
	SegmentB = uint8(0x02)
	SegmentC = uint8(0x04)
	SegmentD = uint8(0x08)
	SegmentE = uint8(0x10)
	SegmentF = uint8(0x20)
	SegmentG = uint8(0x40)
)

// the patterns used by the monitor program for the hex digits
var hexPatterns = [16]uint8{
	0x3f, 0x06, 0x5b, 0x4f, 0x66, 0x6d, 0x7d, 0x07,
	0x7f, 0x6f, 0x77, 0x7c, 0x39, 0x5e, 0x79, 0x71,
}

// Character returns the hex digit shown by the segment pattern. A blank digit
// is a space and a pattern that is not a hex digit is a question mark.
func Character(segments uint8) rune {
	if segments == 0 {
		return ' '
	}
	for i, p := range hexPatterns {
		if p == segments {
			return rune("0123456789ABCDEF"[i])
		}
	}
	return '?'
}

// Pattern returns the segment pattern for the hex digit.
func Pattern(digit uint8) uint8 {
	return hexPatterns[digit&0x0f]
}

// Text returns the display as a string of six characters.
func (leds *LEDs) Text() string {
	s := make([]rune, NumDigits)
	for i, d := range leds.Digits {
		s[i] = Character(d)
	}
	return string(s)
}
