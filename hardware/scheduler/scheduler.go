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

// Package scheduler dispatches periodic events against elapsed CPU cycles.
//
// Each event is given a rate in Hz. The scheduler advances one CPU cycle at a
// time and fires an event whenever the event's accumulated rate passes the
// base rate. Rates that do not divide the base rate are spread evenly so that
// exactly rate events are fired for every base rate cycles.
//
// Events that fall due on the same cycle are fired in the order they were
// added to the scheduler.
package scheduler

import (
	"fmt"
	"strings"
)

// Event is a periodic callback.
type Event struct {
	Label string
	Rate  int

	// accumulator of the event. the event fires when it reaches the base rate
	acc int

	fn func()
}

// Scheduler fires events according to elapsed CPU cycles.
type Scheduler struct {
	base   int
	events []*Event

	// Cycles is the total number of cycles the scheduler has advanced by
	Cycles uint64
}

// NewScheduler is the preferred method of initialisation for the Scheduler
// type. The base argument is the number of cycles per second.
func NewScheduler(base int) *Scheduler {
	return &Scheduler{
		base: base,
	}
}

func (sch *Scheduler) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("cycles=%d", sch.Cycles))
	for _, e := range sch.events {
		s.WriteString(fmt.Sprintf(" %s@%dHz", e.Label, e.Rate))
	}
	return s.String()
}

// Add a new event. The rate must be greater than zero and no greater than the
// base rate of the scheduler.
func (sch *Scheduler) Add(label string, rate int, fn func()) error {
	if rate <= 0 || rate > sch.base {
		return fmt.Errorf("scheduler: rate for %s is out of range (%dHz)", label, rate)
	}
	sch.events = append(sch.events, &Event{
		Label: label,
		Rate:  rate,
		fn:    fn,
	})
	return nil
}

// Step advances the scheduler by the number of cycles, firing events as they
// fall due.
func (sch *Scheduler) Step(cycles int) {
	for range cycles {
		sch.Cycles++
		for _, e := range sch.events {
			e.acc += e.Rate
			if e.acc >= sch.base {
				e.acc -= sch.base
				e.fn()
			}
		}
	}
}

// Reset the phase of every event. The cycle count is not changed.
func (sch *Scheduler) Reset() {
	for _, e := range sch.events {
		e.acc = 0
	}
}

// Phases returns the accumulators of every event, in the order the events
// were added. Used to save the state of the scheduler.
func (sch *Scheduler) Phases() []int {
	p := make([]int, len(sch.events))
	for i, e := range sch.events {
		p[i] = e.acc
	}
	return p
}

// SetPhases restores the accumulators previously returned by Phases(). The
// number of entries must match the number of events.
func (sch *Scheduler) SetPhases(p []int) error {
	if len(p) != len(sch.events) {
		return fmt.Errorf("scheduler: phase count mismatch (%d != %d)", len(p), len(sch.events))
	}
	for i, e := range sch.events {
		e.acc = p[i]
	}
	return nil
}
