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
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-audio/wav"
	"github.com/gokim1/gokim1/curated"
	"github.com/gokim1/gokim1/logger"
	"github.com/hajimehoshi/go-mp3"
)

// Sentinal error patterns.
const (
	UnsupportedFormat = "tape: unsupported format (%s)"
	NoSamples         = "tape: no samples in %s"
)

const logTag = "tape"

// Tape is a mono audio stream. Samples are in the range -1.0 to 1.0.
type Tape struct {
	Filename string
	Samples  []float32
	Rate     int
}

// Duration returns the length of the tape in seconds.
func (tp *Tape) Duration() float64 {
	return float64(len(tp.Samples)) / float64(tp.Rate)
}

// Load a tape from a WAV or MP3 file. The format is decided by the file
// extension.
func Load(filename string) (*Tape, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, curated.Errorf("tape: %v", err)
	}
	defer f.Close()

	tp := &Tape{
		Filename: filename,
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".wav":
		err = tp.loadWAV(f)
	case ".mp3":
		err = tp.loadMP3(f)
	default:
		return nil, curated.Errorf(UnsupportedFormat, filepath.Ext(filename))
	}
	if err != nil {
		return nil, err
	}

	if len(tp.Samples) == 0 || tp.Rate <= 0 {
		return nil, curated.Errorf(NoSamples, filename)
	}

	logger.Logf(logger.Allow, logTag, "%s: %dHz %.02fs", filepath.Base(filename), tp.Rate, tp.Duration())

	return tp, nil
}

func (tp *Tape) loadWAV(r io.ReadSeeker) error {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return curated.Errorf("tape: wav: not a valid wav file")
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return curated.Errorf("tape: wav: %v", err)
	}

	chans := int(dec.NumChans)
	if chans < 1 {
		return curated.Errorf("tape: wav: no channels")
	}

	// full scale of the sample data
	depth := int(dec.BitDepth)
	if depth == 0 {
		depth = 16
	}
	scale := float32(int(1) << (depth - 1))

	// 8 bit PCM is unsigned and centred on 128
	var centre int
	if depth == 8 {
		centre = 128
	}

	// first channel only
	tp.Samples = make([]float32, 0, len(buf.Data)/chans)
	for i := 0; i < len(buf.Data); i += chans {
		tp.Samples = append(tp.Samples, float32(buf.Data[i]-centre)/scale)
	}
	tp.Rate = int(dec.SampleRate)

	return nil
}

func (tp *Tape) loadMP3(r io.Reader) error {
	dec, err := mp3.NewDecoder(r)
	if err != nil {
		return curated.Errorf("tape: mp3: %v", err)
	}

	// the decoded stream is always 16 bit little endian stereo, so one
	// sample is four bytes. only the left channel is kept
	chunk := make([]byte, 4096)
	for {
		n, err := io.ReadFull(dec, chunk)
		for i := 0; i+1 < n; i += 4 {
			v := int16(uint16(chunk[i]) | uint16(chunk[i+1])<<8)
			tp.Samples = append(tp.Samples, float32(v)/32768)
		}
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				break
			}
			return curated.Errorf("tape: mp3: %v", err)
		}
	}
	tp.Rate = dec.SampleRate()

	return nil
}
