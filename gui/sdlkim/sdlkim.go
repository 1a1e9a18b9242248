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
	"image"

	"github.com/gokim1/gokim1/curated"
	"github.com/gokim1/gokim1/govern"
	"github.com/gokim1/gokim1/hardware"
	"github.com/gokim1/gokim1/hardware/clocks"
	"github.com/gokim1/gokim1/hardware/display"
	"github.com/gokim1/gokim1/hardware/video"
	"github.com/gokim1/gokim1/performance/limiter"

	"github.com/veandco/go-sdl2/sdl"
)

const windowTitle = "GoKIM1"

// logical size of the window. the LED strip is above the bitmap
const (
	ledHeight    = 80
	windowWidth  = video.Width
	windowHeight = ledHeight + video.Height
)

// SdlKIM is a simple SDL implementation of the gui.GUI interface.
type SdlKIM struct {
	kim *hardware.KIM1

	window   *sdl.Window
	renderer *sdl.Renderer

	aud *Audio

	// limit screen updates to a fixed fps
	lmtr *limiter.Limiter

	// the most recent scanout of the video window and the lit pixels in it
	img    *image.RGBA
	points []sdl.Point

	// copy of the LEDs taken every frame
	digits [display.NumDigits]uint8

	state govern.State
}

// NewSdlKIM is the preferred method of initialisation for the SdlKIM type.
func NewSdlKIM(kim *hardware.KIM1, scale float32) (_ *SdlKIM, rerr error) {
	scr := &SdlKIM{
		kim:   kim,
		img:   video.NewImage(),
		state: govern.EmulatorStart,
	}

	var err error

	scr.lmtr, err = limiter.NewLimiter(clocks.LED)
	if err != nil {
		return nil, curated.Errorf("sdlkim: %v", err)
	}

	err = sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO)
	if err != nil {
		return nil, curated.Errorf("sdlkim: %v", err)
	}

	// release whatever has been created if initialisation fails
	defer func() {
		if rerr != nil {
			scr.Destroy()
		}
	}()

	scr.window, err = sdl.CreateWindow(windowTitle,
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		windowWidth, windowHeight,
		uint32(sdl.WINDOW_HIDDEN))
	if err != nil {
		return nil, curated.Errorf("sdlkim: %v", err)
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		return nil, curated.Errorf("sdlkim: %v", err)
	}

	// everything is drawn in logical coordinates and scaled to the window
	err = scr.renderer.SetLogicalSize(windowWidth, windowHeight)
	if err != nil {
		return nil, curated.Errorf("sdlkim: %v", err)
	}

	err = scr.setScale(scale)
	if err != nil {
		return nil, curated.Errorf("sdlkim: %v", err)
	}

	scr.aud, err = NewAudio()
	if err != nil {
		return nil, curated.Errorf("sdlkim: %v", err)
	}
	kim.Deck.AddAudioMixer(scr.aud)

	return scr, nil
}

// Destroy implements the gui.GUI interface.
func (scr *SdlKIM) Destroy() {
	if scr.aud != nil {
		scr.aud.Close()
	}
	if scr.renderer != nil {
		_ = scr.renderer.Destroy()
	}
	if scr.window != nil {
		_ = scr.window.Destroy()
	}
	sdl.Quit()
}

func (scr *SdlKIM) setScale(scale float32) error {
	if scale <= 0 {
		return curated.Errorf("sdlkim: invalid scale (%.1f)", scale)
	}
	scr.window.SetSize(int32(windowWidth*scale), int32(windowHeight*scale))
	return nil
}

func (scr *SdlKIM) showWindow(show bool) {
	if show {
		scr.window.Show()
	} else {
		scr.window.Hide()
	}
}

func (scr *SdlKIM) setState(state govern.State) {
	scr.state = state
	switch state {
	case govern.Paused:
		scr.window.SetTitle(windowTitle + " [paused]")
	default:
		scr.window.SetTitle(windowTitle)
	}
}
