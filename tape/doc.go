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

// Package tape loads and saves the audio files used by the cassette deck.
//
// Tapes can be loaded from WAV or MP3 files. Only the first channel of a
// stereo file is used. Recordings are written as 16 bit mono WAV files at the
// sample rate of the cassette interface.
//
// The Analyse() function runs the tone decoder over a tape without the rest
// of the machine. It is useful for checking that a recording will load.
package tape
