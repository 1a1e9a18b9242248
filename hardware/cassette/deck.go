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

package cassette

import (
	"fmt"

	"github.com/gokim1/gokim1/curated"
	"github.com/gokim1/gokim1/hardware/clocks"
	"github.com/gokim1/gokim1/logger"
)

// Sentinal error patterns.
const (
	NoTape     = "cassette: no tape in deck"
	NoRecorder = "cassette: no recorder attached"
)

// State of the tape transport.
type State int

// List of valid State values.
const (
	Stopped State = iota
	Playing
	Recording
)

func (s State) String() string {
	switch s {
	case Stopped:
		return "stopped"
	case Playing:
		return "playing"
	case Recording:
		return "recording"
	}
	return "unknown"
}

// Recorder receives the signal written to tape while the deck is recording.
type Recorder interface {
	Record(level float32) error
}

// AudioMixer receives the signal heard from the deck. The signal is either
// the tape being played or the signal being written by the machine.
type AudioMixer interface {
	SetAudio(level float32) error
}

// Deck is the tape transport of the KIM-1 cassette interface.
type Deck struct {
	state State

	// the tape. position is measured in tape samples
	samples  []float32
	rate     int
	position float64

	// the level last written by the machine
	level float32

	recorder Recorder
	mixers   []AudioMixer

	// the number of ticks the tape has moved while playing or recording
	counter uint64
}

// NewDeck is the preferred method of initialisation for the Deck type.
func NewDeck() *Deck {
	return &Deck{
		rate: clocks.Cassette,
	}
}

func (deck *Deck) String() string {
	return fmt.Sprintf("%s %.1fs/%.1fs", deck.state, deck.Position(), deck.Length())
}

// Insert a tape into the deck. The tape is rewound and the deck stopped.
func (deck *Deck) Insert(samples []float32, rate int) error {
	if rate <= 0 {
		return curated.Errorf("cassette: invalid sample rate (%d)", rate)
	}
	deck.samples = samples
	deck.rate = rate
	deck.Stop()
	deck.Rewind()
	return nil
}

// Eject the tape.
func (deck *Deck) Eject() {
	deck.samples = nil
	deck.Stop()
	deck.Rewind()
}

// AttachRecorder sets the destination for recordings. A nil recorder
// detaches the current recorder.
func (deck *Deck) AttachRecorder(rec Recorder) {
	deck.recorder = rec
	if rec == nil && deck.state == Recording {
		deck.Stop()
	}
}

// AddAudioMixer adds a destination for the deck's audio.
func (deck *Deck) AddAudioMixer(mix AudioMixer) {
	deck.mixers = append(deck.mixers, mix)
}

// Play the tape.
func (deck *Deck) Play() error {
	if deck.samples == nil {
		return curated.Errorf(NoTape)
	}
	deck.state = Playing
	return nil
}

// Record to the attached recorder.
func (deck *Deck) Record() error {
	if deck.recorder == nil {
		return curated.Errorf(NoRecorder)
	}
	deck.state = Recording
	return nil
}

// Stop the tape.
func (deck *Deck) Stop() {
	deck.state = Stopped
}

// Rewind the tape to the beginning.
func (deck *Deck) Rewind() {
	deck.position = 0
	deck.counter = 0
}

// State returns the current state of the transport.
func (deck *Deck) State() State {
	return deck.state
}

// Position returns the position of the tape in seconds.
func (deck *Deck) Position() float64 {
	return deck.position / float64(deck.rate)
}

// Length returns the length of the tape in seconds.
func (deck *Deck) Length() float64 {
	return float64(len(deck.samples)) / float64(deck.rate)
}

// Counter returns the number of ticks since the tape was rewound.
func (deck *Deck) Counter() uint64 {
	return deck.counter
}

// Input returns the current tape sample. Zero if the tape is not playing.
func (deck *Deck) Input() float32 {
	if deck.state != Playing {
		return 0
	}
	p := int(deck.position)
	if p >= len(deck.samples) {
		return 0
	}
	return deck.samples[p]
}

// Output latches the level written by the machine.
func (deck *Deck) Output(level float32) {
	deck.level = level
}

// Level returns the latched output level.
func (deck *Deck) Level() float32 {
	return deck.level
}

// Tick advances the deck by one period of clocks.Cassette.
func (deck *Deck) Tick() {
	audio := deck.level

	switch deck.state {
	case Playing:
		audio = deck.Input()
		deck.counter++
		deck.position += float64(deck.rate) / clocks.Cassette
		if int(deck.position) >= len(deck.samples) {
			deck.Stop()
			logger.Log(logger.Allow, "cassette", "end of tape")
		}
	case Recording:
		deck.counter++
		if err := deck.recorder.Record(deck.level); err != nil {
			deck.Stop()
			logger.Log(logger.Allow, "cassette", err)
		}
	}

	for _, m := range deck.mixers {
		if err := m.SetAudio(audio); err != nil {
			logger.Log(logger.Allow, "cassette", err)
		}
	}
}
