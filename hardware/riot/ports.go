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

import "fmt"

// Ports connects the RIOT's I/O ports to the machine. Any of the callbacks can
// be nil. A nil read callback means the port's pins float high. A nil write
// callback means the port is not connected.
type Ports struct {
	ReadA  func() uint8
	WriteA func(data uint8)
	ReadB  func() uint8
	WriteB func(data uint8)
}

// port is one of the two 8-bit bidirectional ports.
type port struct {
	// output latch as written by the CPU
	Out uint8

	// data direction register. a set bit is an output
	DDR uint8
}

func (p port) String() string {
	return fmt.Sprintf("out=%#02x ddr=%#02x", p.Out, p.DDR)
}

// read combines the input pins with the output latch. input bits are taken
// from the pins wherever the DDR bit is clear.
func (p port) read(in func() uint8) uint8 {
	pins := uint8(0xff)
	if in != nil {
		pins = in()
	}
	return (pins &^ p.DDR) | (p.Out & p.DDR)
}

// pins returns the value presented on the port's pins. pins that are not
// outputs float high.
func (p port) pins() uint8 {
	return (p.Out & p.DDR) | ^p.DDR
}
