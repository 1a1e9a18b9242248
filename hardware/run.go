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

import (
	"image"

	"github.com/gokim1/gokim1/curated"
	"github.com/gokim1/gokim1/govern"
	"github.com/gokim1/gokim1/hardware/clocks"
	"github.com/gokim1/gokim1/hardware/display"
	"github.com/gokim1/gokim1/hardware/input"
	"github.com/gokim1/gokim1/logger"
	"github.com/gokim1/gokim1/performance/limiter"
)

// SetThrottle controls whether Run() keeps the emulation to real time. An
// unthrottled emulation runs as quickly as possible.
func (k *KIM1) SetThrottle(throttle bool) {
	k.crit.Lock()
	defer k.crit.Unlock()
	k.unthrottled = !throttle
}

// PushEvent queues an input event. The event will be handled by the emulation
// before the next quantum. It is safe to call from any goroutine.
func (k *KIM1) PushEvent(ev input.Event) error {
	return k.Input.PushEvent(ev)
}

// BorrowLEDs gives the function access to the LEDs. The emulation is held
// while the function runs.
func (k *KIM1) BorrowLEDs(f func(*display.LEDs)) {
	k.crit.Lock()
	defer k.crit.Unlock()
	f(k.LEDs)
}

// Scanout draws the video RAM to the image. The emulation is held while the
// image is drawn.
func (k *KIM1) Scanout(img *image.RGBA) {
	k.crit.Lock()
	defer k.crit.Unlock()
	k.Video.Scanout(img)
}

// handlePushed drains the input queue. Errors from the input events are not
// fatal to the emulation.
func (k *KIM1) handlePushed() {
	if err := k.Input.HandlePushed(); err != nil {
		logger.Log(logger.Allow, "kim1", err)
	}
}

// RunQuantum runs the emulation for one LED period of CPU cycles. Cycles run
// beyond the end of the quantum are taken from the next quantum.
func (k *KIM1) RunQuantum() {
	k.crit.Lock()
	defer k.crit.Unlock()

	k.handlePushed()

	target := clocks.QuantumCycles(k.quantum) - k.quantumDebt
	k.quantum = (k.quantum + 1) % clocks.LED

	n := 0
	for n < target {
		n += k.step()
	}
	k.quantumDebt = n - target
}

// idle keeps the display decaying while the emulation is paused.
func (k *KIM1) idle() {
	k.crit.Lock()
	defer k.crit.Unlock()
	k.handlePushed()
	k.LEDs.Tick()
}

// Run sets the emulation running. The continueCheck function is called after
// every quantum and its return value decides what happens next. A nil
// continueCheck runs the emulation forever.
//
// Unless the emulation is unthrottled each quantum takes at least 1/60th of a
// second, the same as the emulated time.
func (k *KIM1) Run(continueCheck func() (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func() (govern.State, error) { return govern.Running, nil }
	}

	lmtr, err := limiter.NewLimiter(clocks.LED)
	if err != nil {
		return curated.Errorf("kim1: %v", err)
	}

	state := govern.Running
	for state != govern.Ending {
		switch state {
		case govern.Running:
			k.RunQuantum()
		case govern.Paused:
			k.idle()
		case govern.Stepping:
			k.crit.Lock()
			k.handlePushed()
			k.step()
			k.crit.Unlock()
		default:
			return curated.Errorf("kim1: unsupported emulation state (%s) in Run() function", state)
		}

		k.crit.Lock()
		throttled := !k.unthrottled
		k.crit.Unlock()

		// paused emulations are always throttled so that the LEDs decay at
		// the correct rate
		if throttled || state == govern.Paused {
			lmtr.Wait()
		}

		state, err = continueCheck()
		if err != nil {
			return err
		}
	}

	return nil
}
