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

package sdlkim

import (
	"github.com/gokim1/gokim1/hardware/clocks"

	"github.com/veandco/go-sdl2/sdl"
)

// the precise value is not critical. a long buffer introduces lag, a short
// buffer means QueueAudio() is called too often
const bufferLength = 512

// the amplitude of the tape signal in the unsigned 8 bit sample
const amplitude = 32

// Audio plays the cassette interface through SDL. It implements the
// cassette.AudioMixer interface.
type Audio struct {
	id   sdl.AudioDeviceID
	spec sdl.AudioSpec

	buffer   []uint8
	bufferCt int
}

// NewAudio is the preferred method of initialisation for the Audio Type
func NewAudio() (*Audio, error) {
	aud := &Audio{
		buffer: make([]uint8, bufferLength),
	}

	spec := &sdl.AudioSpec{
		Freq:     clocks.Cassette,
		Format:   sdl.AUDIO_U8,
		Channels: 1,
		Samples:  uint16(bufferLength),
	}

	var err error
	var actualSpec sdl.AudioSpec

	aud.id, err = sdl.OpenAudioDevice("", false, spec, &actualSpec, 0)
	if err != nil {
		return nil, err
	}
	aud.spec = actualSpec

	sdl.PauseAudioDevice(aud.id, false)

	return aud, nil
}

// SetAudio implements the cassette.AudioMixer interface.
func (aud *Audio) SetAudio(level float32) error {
	aud.buffer[aud.bufferCt] = uint8(int(aud.spec.Silence) + int(level*amplitude))
	aud.bufferCt++
	if aud.bufferCt < len(aud.buffer) {
		return nil
	}
	aud.bufferCt = 0

	// drop queued audio if the emulation is running ahead of the device
	if sdl.GetQueuedAudioSize(aud.id) > 4*bufferLength {
		sdl.ClearQueuedAudio(aud.id)
	}

	return sdl.QueueAudio(aud.id, aud.buffer)
}

// Close the audio device.
func (aud *Audio) Close() {
	sdl.CloseAudioDevice(aud.id)
}
