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

package random_test

import (
	"testing"

	"github.com/gokim1/gokim1/random"
	"github.com/gokim1/gokim1/test"
)

type clock uint64

func (c clock) Cycles() uint64 {
	return uint64(c)
}

func TestRandom(t *testing.T) {
	a := random.NewRandom(clock(1000))
	b := random.NewRandom(clock(1000))
	a.ZeroSeed = true
	b.ZeroSeed = true

	for i := 1; i < 256; i++ {
		test.ExpectEquality(t, a.Intn(i), b.Intn(i))
	}

	var x, y [64]uint8
	a.Reset()
	a.Fill(x[:])
	b.Reset()
	b.Fill(y[:])
	test.ExpectEquality(t, x, y)
}
