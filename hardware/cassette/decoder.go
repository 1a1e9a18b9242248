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

package cassette

import "fmt"

// HighToneThreshold is the run length, in samples, below which a run of
// positive samples is taken to be the high tone. The value is coupled to the
// sample rate of clocks.Cassette.
const HighToneThreshold = 8

// Comparator output values.
const (
	HighTone = uint8(0x80)
	LowTone  = uint8(0x00)
)

// Decoder turns tape samples into the comparator output read on bit 7 of the
// U2 port B.
type Decoder struct {
	output    uint8
	highCount uint32
}

// NewDecoder is the preferred method of initialisation for the Decoder type.
func NewDecoder() *Decoder {
	return &Decoder{}
}

func (dec *Decoder) String() string {
	return fmt.Sprintf("out=%02x run=%d", dec.output, dec.highCount)
}

// Snapshot creates a copy of the Decoder in its current state.
func (dec *Decoder) Snapshot() *Decoder {
	n := *dec
	return &n
}

// Reset the comparator output and the run length.
func (dec *Decoder) Reset() {
	dec.output = LowTone
	dec.highCount = 0
}

// Sample the tape. The comparator output changes at the end of every run of
// positive samples.
func (dec *Decoder) Sample(v float32) {
	if v <= 0 {
		if dec.highCount != 0 {
			if dec.highCount < HighToneThreshold {
				dec.output = HighTone
			} else {
				dec.output = LowTone
			}
			dec.highCount = 0
		}
		return
	}
	dec.highCount++
}

// Output returns the comparator output. Either HighTone or LowTone.
func (dec *Decoder) Output() uint8 {
	return dec.output
}

// RunLength returns the length of the current run of positive samples.
func (dec *Decoder) RunLength() uint32 {
	return dec.highCount
}
