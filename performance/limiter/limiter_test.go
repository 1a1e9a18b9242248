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

package limiter_test

import (
	"testing"
	"time"

	"github.com/gokim1/gokim1/performance/limiter"
	"github.com/gokim1/gokim1/test"
)

func TestLimiter(t *testing.T) {
	_, err := limiter.NewLimiter(0)
	test.ExpectFailure(t, err)

	lmtr, err := limiter.NewLimiter(100)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, lmtr.Period(), 10*time.Millisecond)

	start := time.Now()
	for range 5 {
		lmtr.Wait()
	}
	test.ExpectSuccess(t, time.Since(start) >= 40*time.Millisecond)
}

func TestHasWaited(t *testing.T) {
	lmtr, err := limiter.NewLimiter(2)
	test.DemandSuccess(t, err)

	// trigger is not ready immediately after creation
	test.ExpectFailure(t, lmtr.HasWaited())
}
