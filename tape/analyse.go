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

package tape

import (
	"fmt"

	"github.com/gokim1/gokim1/hardware/cassette"
)

// Analysis is the result of running the tone decoder over a tape.
type Analysis struct {
	// number of cassette interface periods
	Ticks uint64

	// number of complete cycles of each tone
	HighTones int
	LowTones  int

	// number of changes to the comparator output
	Transitions int
}

func (a Analysis) String() string {
	return fmt.Sprintf("%d ticks: %d high, %d low, %d transitions", a.Ticks, a.HighTones, a.LowTones, a.Transitions)
}

// Analyse plays the tape through a cassette deck and a tone decoder.
func Analyse(tp *Tape) (Analysis, error) {
	var a Analysis

	deck := cassette.NewDeck()
	if err := deck.Insert(tp.Samples, tp.Rate); err != nil {
		return a, err
	}
	if err := deck.Play(); err != nil {
		return a, err
	}

	dec := cassette.NewDecoder()
	out := dec.Output()

	for deck.State() == cassette.Playing {
		v := deck.Input()
		run := dec.RunLength()
		dec.Sample(v)

		// end of a run of high samples
		if v <= 0 && run > 0 {
			if dec.Output() == cassette.HighTone {
				a.HighTones++
			} else {
				a.LowTones++
			}
			if dec.Output() != out {
				out = dec.Output()
				a.Transitions++
			}
		}

		deck.Tick()
		a.Ticks++
	}

	return a, nil
}
