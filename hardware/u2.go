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

package hardware

import "github.com/gokim1/gokim1/hardware/cassette"

// the U2 port B bit that switches port B bit 7 from the cassette input to
// the cassette output
const cassetteOutputEnable = uint8(0x20)

// readPortA reads the keypad row selected by port B.
func (k *KIM1) readPortA() uint8 {
	return k.Keypad.Read(k.u2PortB)
}

// writePortA drives the LED digit selected by port B.
func (k *KIM1) writePortA(data uint8) {
	k.LEDs.Write(k.u2PortB, data)
}

// readPortB returns the cassette input on bit 7. The comparator output is
// inverted.
func (k *KIM1) readPortB() uint8 {
	if k.U2.PortBOutput()&cassetteOutputEnable == cassetteOutputEnable {
		return 0xff
	}
	return 0x7f | (k.Decoder.Output() ^ cassette.HighTone)
}

// writePortB latches the row/digit select and drives the cassette output.
//
// The hardware can raise an interrupt when bit 7 is cleared. This is not
// emulated.
func (k *KIM1) writePortB(data uint8) {
	k.u2PortB = data
	if data&cassetteOutputEnable == cassetteOutputEnable {
		if data&0x80 == 0x80 {
			k.Deck.Output(-1.0)
		} else {
			k.Deck.Output(1.0)
		}
	}
}
