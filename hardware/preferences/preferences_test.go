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

package preferences_test

import (
	"testing"

	"github.com/gokim1/gokim1/hardware/preferences"
	"github.com/gokim1/gokim1/test"
)

func TestDefaults(t *testing.T) {
	p := preferences.NewDefaults()
	test.ExpectEquality(t, p.VideoMode(), preferences.VideoSimplified)
	test.ExpectEquality(t, p.Mirror.Get().(bool), true)
	test.ExpectEquality(t, p.TimerIRQ.Get().(bool), false)

	// no disk so saving is a no-op
	test.ExpectSuccess(t, p.Save())
	test.ExpectSuccess(t, p.Load())
}

func TestVideoMode(t *testing.T) {
	p := preferences.NewDefaults()
	test.ExpectSuccess(t, p.Video.Set("cycleaccurate"))
	test.ExpectEquality(t, p.VideoMode(), preferences.VideoCycleAccurate)

	test.ExpectFailure(t, p.Video.Set("ntsc"))
	test.ExpectEquality(t, p.VideoMode(), preferences.VideoCycleAccurate)

	p.SetDefaults()
	test.ExpectEquality(t, p.VideoMode(), preferences.VideoSimplified)
}
