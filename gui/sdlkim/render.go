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
	"github.com/gokim1/gokim1/hardware/display"
	"github.com/gokim1/gokim1/hardware/video"

	"github.com/veandco/go-sdl2/sdl"
)

// geometry of a single LED digit
const (
	digitWidth   = 40
	digitSpacing = 50
	digitLeft    = (windowWidth - digitSpacing*display.NumDigits + digitSpacing - digitWidth) / 2
	digitTop     = 8
	segThickness = 5
)

// the position of each segment relative to the top left of the digit, in
// the order of the segment bits
var segmentRects = [7]sdl.Rect{
	{X: segThickness, Y: 0, W: digitWidth - 2*segThickness, H: segThickness},
	{X: digitWidth - segThickness, Y: segThickness, W: segThickness, H: 25},
	{X: digitWidth - segThickness, Y: 2*segThickness + 25, W: segThickness, H: 25},
	{X: segThickness, Y: 2*segThickness + 50, W: digitWidth - 2*segThickness, H: segThickness},
	{X: 0, Y: 2*segThickness + 25, W: segThickness, H: 25},
	{X: 0, Y: segThickness, W: segThickness, H: 25},
	{X: segThickness, Y: segThickness + 25, W: digitWidth - 2*segThickness, H: segThickness},
}

func (scr *SdlKIM) render() error {
	scr.kim.BorrowLEDs(func(leds *display.LEDs) {
		scr.digits = leds.Digits
	})
	scr.kim.Scanout(scr.img)

	if err := scr.renderer.SetDrawColor(0, 0, 0, 255); err != nil {
		return err
	}
	if err := scr.renderer.Clear(); err != nil {
		return err
	}

	for i, d := range scr.digits {
		if err := scr.drawDigit(i, d); err != nil {
			return err
		}
	}

	if err := scr.drawBitmap(); err != nil {
		return err
	}

	scr.renderer.Present()

	return nil
}

func (scr *SdlKIM) drawDigit(idx int, segments uint8) error {
	x := int32(digitLeft + idx*digitSpacing)
	for s, r := range segmentRects {
		var err error
		if segments&(1<<s) != 0 {
			err = scr.renderer.SetDrawColor(255, 32, 16, 255)
		} else {
			err = scr.renderer.SetDrawColor(40, 8, 4, 255)
		}
		if err != nil {
			return err
		}

		r.X += x
		r.Y += digitTop
		if err := scr.renderer.FillRect(&r); err != nil {
			return err
		}
	}
	return nil
}

// drawBitmap draws the lit pixels of the scanout below the LEDs.
func (scr *SdlKIM) drawBitmap() error {
	scr.points = scr.points[:0]
	for y := range video.Height {
		row := scr.img.Pix[y*scr.img.Stride:]
		for x := range video.Width {
			if row[x*4] != 0 {
				scr.points = append(scr.points, sdl.Point{X: int32(x), Y: int32(y + ledHeight)})
			}
		}
	}
	if len(scr.points) == 0 {
		return nil
	}

	if err := scr.renderer.SetDrawColor(255, 255, 255, 255); err != nil {
		return err
	}
	return scr.renderer.DrawPoints(scr.points)
}
