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

package riot

import (
	"fmt"

	"github.com/gokim1/gokim1/hardware/riot/timer"
)

// List of I/O register offsets, selected by the bottom two bits of the
// address when bit 2 is clear.
const (
	PA   = 0x00
	PADD = 0x01
	PB   = 0x02
	PBDD = 0x03
)

// RAMSize is the number of bytes of RAM in each 6530.
const RAMSize = 64

// RIOT represents a single 6530.
type RIOT struct {
	label string
	ports Ports

	A port
	B port

	Timer *timer.Timer

	RAM [RAMSize]uint8
}

// NewRIOT is the preferred method of initialisation for the RIOT type.
func NewRIOT(label string, ports Ports) *RIOT {
	return &RIOT{
		label: label,
		ports: ports,
		Timer: timer.NewTimer(),
	}
}

// Snapshot creates a copy of the RIOT in its current state. The port
// callbacks are not copied.
func (riot *RIOT) Snapshot() *RIOT {
	n := *riot
	n.ports = Ports{}
	n.Timer = riot.Timer.Snapshot()
	return &n
}

// Plumb a snapshot back into the machine. The RIOT takes the callbacks of the
// instance being replaced.
func (riot *RIOT) Plumb(ports Ports) {
	riot.ports = ports
}

// Label returns the name of the RIOT (eg. "U2").
func (riot *RIOT) Label() string {
	return riot.label
}

func (riot *RIOT) String() string {
	return fmt.Sprintf("%s: PA %s PB %s %s", riot.label, riot.A, riot.B, riot.Timer)
}

// Reset the RIOT. Both ports become inputs and the timer is reset. RAM is not
// changed.
func (riot *RIOT) Reset() {
	riot.A = port{}
	riot.B = port{}
	riot.Timer.Reset()
}

// Read an I/O or timer register.
func (riot *RIOT) Read(address uint16) uint8 {
	if address&0x04 == 0x04 {
		return riot.Timer.Read(address)
	}

	switch address & 0x03 {
	case PA:
		return riot.A.read(riot.ports.ReadA)
	case PADD:
		return riot.A.DDR
	case PB:
		return riot.B.read(riot.ports.ReadB)
	}
	return riot.B.DDR
}

// Peek returns the value of a register without side effects. The input pins
// are still sampled.
func (riot *RIOT) Peek(address uint16) uint8 {
	if address&0x04 == 0x04 {
		return riot.Timer.Peek(address)
	}
	return riot.Read(address)
}

// Write an I/O or timer register. Writes to a port's data register present
// the new value on the port's pins. Writes to a DDR do not.
func (riot *RIOT) Write(address uint16, data uint8) {
	if address&0x04 == 0x04 {
		riot.Timer.Write(address, data)
		return
	}

	switch address & 0x03 {
	case PA:
		riot.A.Out = data
		if riot.ports.WriteA != nil {
			riot.ports.WriteA(riot.A.pins())
		}
	case PADD:
		riot.A.DDR = data
	case PB:
		riot.B.Out = data
		if riot.ports.WriteB != nil {
			riot.ports.WriteB(riot.B.pins())
		}
	case PBDD:
		riot.B.DDR = data
	}
}

// PortBOutput returns the port B output latch as last written by the CPU,
// regardless of the DDR.
func (riot *RIOT) PortBOutput() uint8 {
	return riot.B.Out
}

// IRQ returns true if the RIOT is asserting the interrupt line.
func (riot *RIOT) IRQ() bool {
	return riot.Timer.IRQ()
}

// Step the RIOT forward one CPU cycle.
func (riot *RIOT) Step() {
	riot.Timer.Step()
}
