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

package tape_test

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/gokim1/gokim1/curated"
	"github.com/gokim1/gokim1/hardware/clocks"
	"github.com/gokim1/gokim1/tape"
	"github.com/gokim1/gokim1/test"
)

func tone(ww *tape.WavWriter, halfPeriod int, cycles int) {
	for range cycles {
		for range halfPeriod {
			_ = ww.Record(1.0)
		}
		for range halfPeriod {
			_ = ww.Record(-1.0)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "tones.wav")

	ww := tape.NewWavWriter(filename)
	tone(ww, 3, 10)
	tone(ww, 9, 10)
	test.ExpectEquality(t, ww.Len(), 240)
	test.DemandSuccess(t, ww.Close())

	tp, err := tape.Load(filename)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, tp.Rate, clocks.Cassette)
	test.DemandEquality(t, len(tp.Samples), 240)
	test.ExpectSuccess(t, tp.Samples[0] > 0.99)
	test.ExpectSuccess(t, tp.Samples[3] < -0.99)

	a, err := tape.Analyse(tp)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, a.Ticks, uint64(240))
	test.ExpectEquality(t, a.HighTones, 10)
	test.ExpectEquality(t, a.LowTones, 10)
	test.ExpectEquality(t, a.Transitions, 2)
}

func TestUnsupported(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "tones.ogg")
	test.DemandSuccess(t, os.WriteFile(filename, []byte{0x00}, 0o644))

	_, err := tape.Load(filename)
	test.ExpectSuccess(t, curated.Is(err, tape.UnsupportedFormat))

	_, err = tape.Load(filepath.Join(t.TempDir(), "missing.wav"))
	test.ExpectFailure(t, err)
}

func TestEmpty(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "empty.wav")
	test.DemandSuccess(t, tape.NewWavWriter(filename).Close())

	_, err := tape.Load(filename)
	test.ExpectFailure(t, err)
}

// write a mono 8 bit PCM WAV file
func write8bit(t *testing.T, filename string, data []uint8) {
	t.Helper()

	var b bytes.Buffer
	le := func(v any) {
		test.DemandSuccess(t, binary.Write(&b, binary.LittleEndian, v))
	}

	b.WriteString("RIFF")
	le(uint32(36 + len(data)))
	b.WriteString("WAVE")
	b.WriteString("fmt ")
	le(uint32(16))
	le(uint16(1)) // PCM
	le(uint16(1)) // channels
	le(uint32(clocks.Cassette))
	le(uint32(clocks.Cassette)) // bytes per second
	le(uint16(1))               // block align
	le(uint16(8))               // bits per sample
	b.WriteString("data")
	le(uint32(len(data)))
	b.Write(data)

	test.DemandSuccess(t, os.WriteFile(filename, b.Bytes(), 0o644))
}

func TestEightBit(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "tones8.wav")

	var data []uint8
	for range 10 {
		data = append(data, 228, 228, 228, 28, 28, 28)
	}
	for range 10 {
		for range 9 {
			data = append(data, 228)
		}
		for range 9 {
			data = append(data, 28)
		}
	}
	write8bit(t, filename, data)

	tp, err := tape.Load(filename)
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(tp.Samples), 240)
	test.ExpectApproximate(t, tp.Samples[0], 0.78125, 0.001)
	test.ExpectApproximate(t, tp.Samples[3], -0.78125, 0.001)

	a, err := tape.Analyse(tp)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, a.HighTones, 10)
	test.ExpectEquality(t, a.LowTones, 10)
	test.ExpectEquality(t, a.Transitions, 2)
}
