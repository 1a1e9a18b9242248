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

package tape

import (
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/gokim1/gokim1/curated"
	"github.com/gokim1/gokim1/hardware/clocks"
	"github.com/gokim1/gokim1/logger"
)

// WavWriter saves audio data to disk as a WAV file. Audio data is buffered
// in memory in its entirety and written to disk when Close() is called.
//
// It implements the cassette.Recorder and cassette.AudioMixer interfaces.
type WavWriter struct {
	filename string
	buffer   []int
}

// NewWavWriter is the preferred method of initialisation for the WavWriter
// type.
func NewWavWriter(filename string) *WavWriter {
	return &WavWriter{
		filename: filename,
	}
}

// Record implements the cassette.Recorder interface.
func (ww *WavWriter) Record(level float32) error {
	ww.buffer = append(ww.buffer, int(level*32767))
	return nil
}

// SetAudio implements the cassette.AudioMixer interface.
func (ww *WavWriter) SetAudio(level float32) error {
	return ww.Record(level)
}

// Len returns the number of samples written so far.
func (ww *WavWriter) Len() int {
	return len(ww.buffer)
}

// Close writes the buffered audio to disk.
func (ww *WavWriter) Close() (rerr error) {
	f, err := os.Create(ww.filename)
	if err != nil {
		return curated.Errorf("tape: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf("tape: %v", err)
		}
	}()

	// 16 bit mono PCM
	enc := wav.NewEncoder(f, clocks.Cassette, 16, 1, 1)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  clocks.Cassette,
		},
		Data:           ww.buffer,
		SourceBitDepth: 16,
	}

	logger.Logf(logger.Allow, logTag, "writing %d samples to %s", len(ww.buffer), ww.filename)

	if err := enc.Write(buf); err != nil {
		return curated.Errorf("tape: %v", err)
	}
	if err := enc.Close(); err != nil {
		return curated.Errorf("tape: %v", err)
	}

	return nil
}
