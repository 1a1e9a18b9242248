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

// Package preferences holds the preference values for the emulated hardware.
package preferences

import (
	"fmt"
	"strings"

	"github.com/gokim1/gokim1/curated"
	"github.com/gokim1/gokim1/paths"
	"github.com/gokim1/gokim1/prefs"
)

// List of valid values for the Video preference.
const (
	VideoSimplified    = "SIMPLIFIED"
	VideoCycleAccurate = "CYCLEACCURATE"
)

// Preferences defines and collates all the preference values used by the
// hardware.
type Preferences struct {
	dsk *prefs.Disk

	// the video window strategy. one of the Video* values
	Video prefs.String

	// the RIOT timer interrupt drives the CPU IRQ line. the real machine
	// needs a jumper for this
	TimerIRQ prefs.Bool

	// initialise RAM to random values at power on
	RandomState prefs.Bool

	// when no ROM is loaded at 0xf000, mirror the 0x1000 page there so that
	// the CPU can find the interrupt vectors
	Mirror prefs.Bool
}

func (p *Preferences) String() string {
	if p.dsk == nil {
		return ""
	}
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Values are loaded from the preferences file.
func NewPreferences() (*Preferences, error) {
	p := newPreferences()

	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, fmt.Errorf("preferences: %w", err)
	}

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, fmt.Errorf("preferences: %w", err)
	}

	for k, v := range map[string]any{
		"hardware.video":     &p.Video,
		"hardware.timerirq":  &p.TimerIRQ,
		"hardware.randstate": &p.RandomState,
		"hardware.mirror":    &p.Mirror,
	} {
		var err error
		switch v := v.(type) {
		case *prefs.String:
			err = p.dsk.Add(k, v)
		case *prefs.Bool:
			err = p.dsk.Add(k, v)
		}
		if err != nil {
			return nil, fmt.Errorf("preferences: %w", err)
		}
	}

	err = p.dsk.Load(true)
	if err != nil {
		// ignore missing prefs file errors
		if !curated.Is(err, prefs.NoPrefsFile) {
			return nil, fmt.Errorf("preferences: %w", err)
		}
	}

	return p, nil
}

// NewDefaults returns preferences with the default values that are not
// connected to the preferences file.
func NewDefaults() *Preferences {
	return newPreferences()
}

func newPreferences() *Preferences {
	p := &Preferences{}
	p.Video.SetHookPre(func(v prefs.Value) error {
		switch strings.ToUpper(v.(string)) {
		case VideoSimplified, VideoCycleAccurate:
			return nil
		}
		return fmt.Errorf("preferences: unknown video mode (%v)", v)
	})
	p.SetDefaults()
	return p
}

// SetDefaults reverts all hardware preferences to the default values.
func (p *Preferences) SetDefaults() {
	_ = p.Video.Set(VideoSimplified)
	_ = p.TimerIRQ.Set(false)
	_ = p.RandomState.Set(false)
	_ = p.Mirror.Set(true)
}

// VideoMode returns the normalised value of the Video preference.
func (p *Preferences) VideoMode() string {
	return strings.ToUpper(p.Video.String())
}

// Load current hardware preference from disk.
func (p *Preferences) Load() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Load(false)
}

// Save current hardware preferences to disk.
func (p *Preferences) Save() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Save()
}
