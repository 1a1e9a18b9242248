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

// Package sdlkim is a graphical front end for the KIM-1 using SDL. It shows
// the six digit LED display above the 320x200 bitmap of the video window,
// translates host key presses into keypad events and plays the cassette
// interface through the host's audio device.
//
// SDL must be serviced from the main thread. The emulation itself should be
// run in another goroutine.
package sdlkim
