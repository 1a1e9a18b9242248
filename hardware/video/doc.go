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

// Package video emulates the bitmap display mapped into the 0x4000 to 0x5fff
// window of the KIM-1.
//
// The display is 320x200 pixels at one bit per pixel. Each line is 40 bytes
// and the most significant bit of each byte is the leftmost pixel. Lines are
// stored bottom to top unless the flip screen latch is set.
//
// There are two modes of operation. In the Simplified mode the window is
// ordinary memory that is shared by the CPU and the scanout. In the
// CycleAccurate mode the address decoding of the original video hardware is
// emulated. That hardware steals video RAM accesses with the MADSEL signal,
// which is raised five cycles after the fetch of an opcode with the low five
// bits equal to 0x01, and packs four 2-bit pixels into each byte. Accesses
// that are not MADSEL cycles reach video RAM directly.
//
// The window is only 8K so the control registers and the 3-bit pixel area of
// the original video hardware, which sit above 0x4000 in its own address
// space, are never decoded.
package video
