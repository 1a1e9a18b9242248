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

// Package cassette emulates the audio cassette interface of the KIM-1.
//
// The Decoder type models the LM565 phase locked loop and the 311 comparator
// that turn the two tones recorded on tape into a logic level on bit 7 of
// the U2 port B. It is sampled at the rate of clocks.Cassette and measures the
// length of each run of positive samples. A short run is the high frequency
// tone.
//
// The Deck type is the tape transport. It plays tape samples into the Decoder
// and records the level written to the U2 port B by the monitor program.
//
//	deck := cassette.NewDeck()
//	deck.Insert(samples, 44100)
//	deck.Play()
//
//	// every 1/44100th of a second
//	decoder.Sample(deck.Input())
//	deck.Tick()
package cassette
