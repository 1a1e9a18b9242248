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

// Package timer implements the interval timer of the 6530 RIOT.
//
// The timer is written with a start value. The value decreases once every
// Divider cycles until it passes zero, at which point the interrupt flag is
// raised and the value decreases once every cycle. Reading the timer value
// clears the interrupt flag and restores the divider.
package timer

import (
	"fmt"
)

// Interval indicates how often (in CPU cycles) the timer value decreases.
type Interval int

// List of valid Interval values. The value of the bottom two address bits of
// a timer write selects the interval.
const (
	TIM1T  Interval = 1
	TIM8T  Interval = 8
	TIM64T Interval = 64
	T1024T Interval = 1024
)

var intervals = [4]Interval{TIM1T, TIM8T, TIM64T, T1024T}

func (in Interval) String() string {
	switch in {
	case TIM1T:
		return "TIM1T"
	case TIM8T:
		return "TIM8T"
	case TIM64T:
		return "TIM64T"
	case T1024T:
		return "T1024T"
	}
	return "unknown"
}

// Timer implements the timer part of the 6530 (the T in RIOT).
type Timer struct {
	// the interval value most recently requested by the CPU
	Divider Interval

	// INTIMvalue is the current timer value
	INTIMvalue uint8

	// TicksRemaining is the number of CPU cycles remaining before the value is
	// decreased. once the interrupt flag is set the timer decreases every
	// cycle
	TicksRemaining int

	// the interrupt flag. presented in bit 7 of the flag register
	TIMINT bool

	// whether the interrupt flag drives the IRQ line. set by bit 3 of the
	// address used to write or read the timer
	IRQEnabled bool
}

// NewTimer is the preferred method of initialisation of the Timer type.
func NewTimer() *Timer {
	tmr := &Timer{}
	tmr.Reset()
	return tmr
}

// Reset the timer to its power-on state.
func (tmr *Timer) Reset() {
	tmr.Divider = T1024T
	tmr.INTIMvalue = 0
	tmr.TicksRemaining = int(T1024T)
	tmr.TIMINT = false
	tmr.IRQEnabled = false
}

// Snapshot creates a copy of the Timer in its current state.
func (tmr *Timer) Snapshot() *Timer {
	n := *tmr
	return &n
}

func (tmr *Timer) String() string {
	return fmt.Sprintf("INTIM=%#02x remn=%d intv=%s TIMINT=%v IRQ=%v",
		tmr.INTIMvalue,
		tmr.TicksRemaining,
		tmr.Divider,
		tmr.TIMINT,
		tmr.IRQEnabled,
	)
}

// Write a new start value to the timer. The address selects the interval
// (bits 0 and 1) and whether the interrupt is enabled (bit 3).
func (tmr *Timer) Write(address uint16, data uint8) {
	tmr.Divider = intervals[address&0x03]
	tmr.IRQEnabled = address&0x08 == 0x08
	tmr.INTIMvalue = data
	tmr.TicksRemaining = 0
	tmr.TIMINT = false
}

// Read the timer. With bit 0 of the address clear the timer value is
// returned, the interrupt flag is cleared and the divider is restored. With
// bit 0 set the interrupt flag is returned in bit 7 and there are no side
// effects.
func (tmr *Timer) Read(address uint16) uint8 {
	if address&0x01 == 0x01 {
		return tmr.Peek(address)
	}

	tmr.IRQEnabled = address&0x08 == 0x08
	if tmr.TIMINT {
		tmr.TIMINT = false
		tmr.TicksRemaining = int(tmr.Divider) - 1
	}
	return tmr.INTIMvalue
}

// Peek returns the value that Read() would return without any side effects.
func (tmr *Timer) Peek(address uint16) uint8 {
	if address&0x01 == 0x01 {
		if tmr.TIMINT {
			return 0x80
		}
		return 0x00
	}
	return tmr.INTIMvalue
}

// IRQ returns true if the timer is asserting the interrupt line.
func (tmr *Timer) IRQ() bool {
	return tmr.TIMINT && tmr.IRQEnabled
}

// Step timer forward one cycle.
func (tmr *Timer) Step() {
	tmr.TicksRemaining--
	if tmr.TicksRemaining >= 0 {
		return
	}

	tmr.INTIMvalue--
	if tmr.INTIMvalue == 0xff {
		tmr.TIMINT = true
	}

	if tmr.TIMINT {
		tmr.TicksRemaining = 0
	} else {
		tmr.TicksRemaining = int(tmr.Divider) - 1
	}
}
