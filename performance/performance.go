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

package performance

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/gokim1/gokim1/govern"
	"github.com/gokim1/gokim1/hardware"
	"github.com/gokim1/gokim1/hardware/clocks"
	"github.com/gokim1/gokim1/hardware/preferences"
)

// sentinal error returned by Run() loop.
var timedOut = errors.New("performance timed out")

// the time allowed for the emulation to settle before measurement begins
const leadTime = 2 * time.Second

// Check the performance of the emulator using the supplied monitor ROM.
//
// Emulation will run for the specified duration and will create a cpu, memory
// profile, a trace (or a combination of those) as defined by the Profile
// argument.
func Check(output io.Writer, profile Profile, monitor string, duration string) error {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	kim, err := hardware.NewKIM1(preferences.NewDefaults(), nil)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	err = kim.LoadMonitor(monitor)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	kim.PowerOn()
	kim.SetThrottle(false)

	var startCycles uint64

	runner := func() error {
		// signals false when the lead time has elapsed and true when the
		// measurement period has finished
		timerChan := make(chan bool, 1)
		time.AfterFunc(leadTime, func() {
			timerChan <- false
			time.AfterFunc(dur, func() {
				timerChan <- true
			})
		})

		return kim.Run(func() (govern.State, error) {
			select {
			case v := <-timerChan:
				if v {
					return govern.Ending, timedOut
				}
				startCycles = kim.Cycles()
			default:
			}
			return govern.Running, nil
		})
	}

	err = RunProfiler(profile, "performance", runner)
	if err != nil && !errors.Is(err, timedOut) {
		return fmt.Errorf("performance: %w", err)
	}

	cycles := kim.Cycles() - startCycles
	mhz, accuracy := CalcMHz(cycles, dur.Seconds())
	fmt.Fprintf(output, "%.2f MHz (%d cycles in %.2f seconds) %.1f%%\n", mhz, cycles, dur.Seconds(), accuracy)

	return nil
}

// CalcMHz calculates the effective clock rate of the emulation for the number
// of cycles run in the number of seconds. The accuracy value is the clock rate
// as a percentage of the clock of the real machine.
func CalcMHz(cycles uint64, seconds float64) (float64, float64) {
	if seconds <= 0 {
		return 0, 0
	}
	hz := float64(cycles) / seconds
	return hz / 1000000, 100 * hz / clocks.CPU
}
