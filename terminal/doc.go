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

// Package terminal is a text front end for the KIM-1. The LED display is
// redrawn on a single line of the terminal and key presses are read from the
// controlling terminal in cbreak mode.
//
// A terminal does not report key releases so each KIM-1 key is released
// a short time after it is pressed. The KIM-1 keys that are not hex digits
// are mapped to control keys:
//
//	Ctrl-A   AD
//	Ctrl-D   DA
//	Ctrl-P   PC
//	Ctrl-G   GO (also Return)
//	+        +
//	Ctrl-T   ST (also Escape)
//	Ctrl-R   RS
//	Tab      SST switch
//
// The cassette deck is controlled with '>' (play), '*' (record), '.' (stop)
// and '<' (rewind). The 'q' key quits.
package terminal
