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

// Package display emulates the six seven-segment LEDs of the KIM-1.
//
// The monitor program multiplexes the LEDs. It selects a digit with port B of
// the U2 RIOT and writes the segment pattern to port A. A digit is lit for a
// short time after it is written and the age of each digit is counted down by
// a 60Hz ticker. A digit that is not refreshed is blanked, which is what
// happens while the monitor reads or writes the cassette.
//
// Segment patterns use bit 0 for segment A through to bit 6 for segment G.
package display
