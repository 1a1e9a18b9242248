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
	"github.com/gokim1/gokim1/gui"
	"github.com/gokim1/gokim1/logger"

	"github.com/veandco/go-sdl2/sdl"
)

// Service implements the gui.GUI interface.
//
// MUST ONLY be called from the #mainthread
func (scr *SdlKIM) Service() bool {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			return false

		case *sdl.KeyboardEvent:
			if ev.Repeat != 0 {
				continue
			}
			inp, ok := gui.Translate(sdl.GetKeyName(ev.Keysym.Sym), ev.Type == sdl.KEYDOWN)
			if !ok {
				continue
			}
			if err := scr.kim.PushEvent(inp); err != nil {
				logger.Log(logger.Allow, "sdlkim", err)
			}
		}
	}

	if err := scr.render(); err != nil {
		logger.Log(logger.Allow, "sdlkim", err)
	}

	scr.lmtr.Wait()

	return true
}
