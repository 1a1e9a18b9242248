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

// Package clocks defines the constant values that define the speed of the
// main clock of the KIM-1 and the rates of the periodic events that run
// alongside it.
//
// The cassette sample rate is coupled to the tone decoder's run-length
// threshold (see the cassette package) and must not be changed on its own.
package clocks

// CPU is the speed of the 6502 in the KIM-1, in Hz. The machine is driven by
// a 1MHz crystal.
const CPU = 1000000

// Cassette is the rate at which the cassette input is sampled, in Hz.
const Cassette = 44100

// LED is the rate at which the LED digits age, in Hz. It is also the rate at
// which the run loop hands control back to the front end.
const LED = 60

// QuantumCycles is the number of CPU cycles in the nth LED period. The CPU
// clock is not a multiple of the LED rate so periods are either 16666 or
// 16667 cycles long, in a pattern that adds up to CPU cycles every second.
func QuantumCycles(n int) int {
	n %= LED
	return (n+1)*CPU/LED - n*CPU/LED
}
