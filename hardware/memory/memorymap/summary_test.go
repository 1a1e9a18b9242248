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

package memorymap_test

import (
	"testing"

	"github.com/gokim1/gokim1/hardware/memory/memorymap"
	"github.com/gokim1/gokim1/test"
)

const validMemMap = `0000 -> 03ff	RAM
0400 -> 16ff	undefined
1700 -> 173f	U3
1740 -> 177f	U2
1780 -> 17ff	RIOT RAM
1800 -> 1fff	Monitor
2000 -> 3fff	Expansion
4000 -> 5fff	Video
6000 -> efff	undefined
f000 -> ffff	High ROM
`

func TestMemory(t *testing.T) {
	if memorymap.Summary() != validMemMap {
		t.Fatalf("memory map is invalid")
	}
}

func TestMapAddress(t *testing.T) {
	offset, area := memorymap.MapAddress(0x1745)
	test.ExpectEquality(t, area, memorymap.U2)
	test.ExpectEquality(t, offset, 0x05)

	offset, area = memorymap.MapAddress(0x1c22)
	test.ExpectEquality(t, area, memorymap.Monitor)
	test.ExpectEquality(t, offset, 0x0422)

	offset, area = memorymap.MapAddress(0xfffc)
	test.ExpectEquality(t, area, memorymap.HighROM)
	test.ExpectEquality(t, offset, 0x0ffc)
	test.ExpectEquality(t, 0xfffc&memorymap.MirrorBits, 0x1ffc)

	test.ExpectSuccess(t, memorymap.IsArea(0x4000, memorymap.Video))
	test.ExpectFailure(t, memorymap.IsArea(0x6000, memorymap.Video))
}
