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

package video

import (
	"image"
	"image/color"
)

// Colours of the display.
var (
	Foreground = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	Background = color.RGBA{A: 0xff}
)

// NewImage returns an image of the correct size for Scanout().
func NewImage() *image.RGBA {
	return image.NewRGBA(image.Rect(0, 0, Width, Height))
}

// Scanout draws video RAM to the image. The image should be at least Width
// by Height pixels.
func (vid *Video) Scanout(img *image.RGBA) {
	for y := range Height {
		effy := Height - 1 - y
		if vid.Flip {
			effy = y
		}
		src := vid.Buffer[effy*BytesPerLine : (effy+1)*BytesPerLine]
		for x, pix := range src {
			for b := range 8 {
				c := Background
				if pix&(0x80>>b) != 0 {
					c = Foreground
				}
				img.SetRGBA(x*8+b, y, c)
			}
		}
	}
}
