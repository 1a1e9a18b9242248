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

package video

import "fmt"

// Dimensions of the display.
const (
	Width        = 320
	Height       = 200
	BytesPerLine = Width / 8
)

// BufferSize is the size of the video RAM.
const BufferSize = 0x2000

// the number of cycles after an opcode fetch that MADSEL is raised
const madselDelay = 5

// Video is the bitmap display and its video RAM.
type Video struct {
	mode Mode

	Buffer [BufferSize]uint8

	// flip screen latch. the OUT0 register that drives it is not decoded in
	// the window so it only changes with a restored snapshot
	Flip bool

	// the CPU cycle of the current bus access
	now uint64

	// the cycle of the opcode fetch that will raise MADSEL
	madselArmed      bool
	MadselLastCycles uint64
}

// NewVideo is the preferred method of initialisation for the Video type.
func NewVideo(mode Mode) *Video {
	return &Video{
		mode: mode,
	}
}

// Snapshot creates a copy of the Video in its current state.
func (vid *Video) Snapshot() *Video {
	n := *vid
	return &n
}

func (vid *Video) String() string {
	return fmt.Sprintf("%s flip=%v madsel=%v@%d", vid.mode, vid.Flip, vid.madselArmed, vid.MadselLastCycles)
}

// Mode returns the current decoding mode.
func (vid *Video) Mode() Mode {
	return vid.mode
}

// SetMode changes the decoding mode. Video RAM is not changed.
func (vid *Video) SetMode(mode Mode) {
	vid.mode = mode
	vid.madselArmed = false
}

// Reset the MADSEL state. Video RAM and the flip screen latch are not
// changed.
func (vid *Video) Reset() {
	vid.madselArmed = false
	vid.MadselLastCycles = 0
}

// OpcodeFetch is called at the start of every instruction. The cycles
// argument is the CPU cycle count of the opcode fetch.
func (vid *Video) OpcodeFetch(opcode uint8, irq bool, cycles uint64) {
	if vid.mode != CycleAccurate {
		return
	}
	if !irq && opcode&0x1f == 0x01 {
		vid.madselArmed = true
		vid.MadselLastCycles = cycles
	}
}

// SetClock sets the CPU cycle count of the next bus access.
func (vid *Video) SetClock(cycles uint64) {
	vid.now = cycles
}

// madsel returns true if the current bus access is a MADSEL cycle. A MADSEL
// cycle disarms the signal until the next qualifying opcode fetch.
func (vid *Video) madsel() bool {
	if !vid.madselArmed {
		return false
	}
	if vid.now-vid.MadselLastCycles == madselDelay {
		vid.madselArmed = false
		return true
	}
	return false
}

// Read is an implementation of memory.Device. The offset is from the start
// of the window.
func (vid *Video) Read(offset uint16) uint8 {
	offset &= BufferSize - 1
	if vid.mode == CycleAccurate && vid.madsel() {
		return vid.readVRAM(offset)
	}
	return vid.Buffer[offset]
}

// Peek is an implementation of memory.Device. It returns the contents of
// video RAM without any decoding.
func (vid *Video) Peek(offset uint16) uint8 {
	return vid.Buffer[offset&(BufferSize-1)]
}

// Write is an implementation of memory.Device. The offset is from the start
// of the window.
func (vid *Video) Write(offset uint16, data uint8) {
	offset &= BufferSize - 1
	if vid.mode == CycleAccurate && vid.madsel() {
		vid.writeVRAM(offset, data)
		return
	}
	vid.Buffer[offset] = data
}

// 2-bit writes take the data from bits 6 and 7
var dataLookup = [4]uint8{0x00, 0x0f, 0xf0, 0xff}

// MADSEL accesses pack four 2-bit pixels into each byte of video RAM
func (vid *Video) writeVRAM(offset uint16, data uint8) {
	vramaddr := offset >> 2
	vramdata := dataLookup[data>>6]
	vrammask := ^uint8(0x11 << (offset & 3))
	vid.Buffer[vramaddr] = (vid.Buffer[vramaddr] & vrammask) | (vramdata &^ vrammask)
}

func (vid *Video) readVRAM(offset uint16) uint8 {
	result := uint8(0xff)

	vramaddr := offset >> 2
	vrammask := uint8(0x11 << (offset & 3))
	vramdata := vid.Buffer[vramaddr] & vrammask
	if vramdata&0xf0 == 0 {
		result &^= 0x80
	}
	if vramdata&0x0f == 0 {
		result &^= 0x40
	}

	return result
}
