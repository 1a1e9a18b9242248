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

// Package limiter provides a rough and ready way of limiting events to a fixed
// rate.
//
// A new Limiter can be created with (error handling removed for clarity):
//
//	lmtr, _ := limiter.NewLimiter(60)
//
// Operations can then be stalled with the Wait() function. For example:
//
//	for {
//		lmtr.Wait()
//		tickLEDs()
//	}
package limiter

import (
	"fmt"
	"time"
)

// Limiter will trigger a fixed number of times per second. If the caller falls
// behind the missed triggers are dropped rather than queued.
type Limiter struct {
	rate   int
	period time.Duration
	next   time.Time
}

// NewLimiter is the preferred method of initialisation for the Limiter type.
func NewLimiter(rate int) (*Limiter, error) {
	lmtr := &Limiter{}
	if err := lmtr.SetRate(rate); err != nil {
		return nil, err
	}
	return lmtr, nil
}

// SetRate changes the number of triggers per second.
func (lmtr *Limiter) SetRate(rate int) error {
	if rate <= 0 {
		return fmt.Errorf("limiter: rate must be positive (%d)", rate)
	}
	lmtr.rate = rate
	lmtr.period = time.Second / time.Duration(rate)
	lmtr.next = time.Now().Add(lmtr.period)
	return nil
}

// Rate returns the current number of triggers per second.
func (lmtr *Limiter) Rate() int {
	return lmtr.rate
}

// Period returns the duration between triggers.
func (lmtr *Limiter) Period() time.Duration {
	return lmtr.period
}

// Wait will block until the next trigger.
func (lmtr *Limiter) Wait() {
	if d := time.Until(lmtr.next); d > 0 {
		time.Sleep(d)
	}
	lmtr.advance()
}

// HasWaited returns true if the next trigger time has passed, without
// blocking. A true result consumes the trigger.
func (lmtr *Limiter) HasWaited() bool {
	if time.Now().Before(lmtr.next) {
		return false
	}
	lmtr.advance()
	return true
}

func (lmtr *Limiter) advance() {
	lmtr.next = lmtr.next.Add(lmtr.period)

	// drop triggers if we've fallen too far behind
	if now := time.Now(); lmtr.next.Before(now) {
		lmtr.next = now.Add(lmtr.period)
	}
}
