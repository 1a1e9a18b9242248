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

// Package hardware is the base package for the KIM-1 emulation. It and its
// sub-packages contain everything required for a headless emulation.
//
// The KIM1 type is the root of the emulation and contains external references
// to all the KIM-1 sub-systems. From here, the emulation can either be
// started to run continuously (with optional callback to check for
// continuation); or it can be stepped instruction by instruction.
//
// The U2 RIOT is connected to the keypad, the LEDs and the cassette interface
// by the port callbacks in u2.go. Periodic events (the RIOT timers, the
// cassette sampler and the LED decay) are dispatched by a scheduler in virtual
// time, according to the number of cycles taken by each instruction.
//
// Front ends do not touch the emulation directly while it is running. Input
// is pushed onto a queue with PushEvent() and the display is read with
// BorrowLEDs() and Scanout().
package hardware
