// This file is part of Prism.
//
// Prism is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Prism is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Prism.  If not, see <https://www.gnu.org/licenses/>.

package hologram

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// colours used by the debug overlay
var (
	background   = color.RGBA{A: 255}
	hologramArea = color.RGBA{R: 0, G: 157, B: 172, A: 255}
	contextArea  = color.RGBA{R: 173, G: 243, B: 0, A: 255}
	centerArea   = color.RGBA{R: 255, A: 255}
)

// Quadrants returns the four images that make up a hologram. The top quadrant
// is the source scaled to fit a square of mediaLength pixels. The others are
// derived from the top quadrant.
func Quadrants(src image.Image, mediaLength int) (top, bottom, left, right *image.RGBA) {
	top = Thumbnail(src, mediaLength, mediaLength)
	bottom = FlipVertical(top)
	left = FlipVertical(Rotate90(top))
	right = MirrorHorizontal(left)
	return top, bottom, left, right
}

// Compose returns a new image the size of the display with the four quadrants
// of the source image placed around the central square. Pixels not covered by
// a quadrant are opaque black, or the debug overlay if Params.Debug is true.
//
// Quadrants are alpha composited onto the background.
func Compose(src image.Image, p Params) (*image.RGBA, error) {
	l, err := NewLayout(p)
	if err != nil {
		return nil, err
	}

	top, bottom, left, right := Quadrants(src, l.MediaLength)
	pl := l.Place(top.Bounds().Dx(), top.Bounds().Dy())

	canvas := image.NewRGBA(image.Rect(0, 0, l.Width, l.Height))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	if p.Debug {
		drawOverlay(canvas, l)
	}

	draw.Draw(canvas, pl.Top, top, image.Point{}, draw.Over)
	draw.Draw(canvas, pl.Bottom, bottom, image.Point{}, draw.Over)
	draw.Draw(canvas, pl.Left, left, image.Point{}, draw.Over)
	draw.Draw(canvas, pl.Right, right, image.Point{}, draw.Over)

	return canvas, nil
}

// the hologram area is the square on the left of the display and the context
// area is the square immediately to the right of it
func drawOverlay(canvas *image.RGBA, l Layout) {
	h := l.Height
	draw.Draw(canvas, image.Rect(0, 0, h, h), image.NewUniform(hologramArea), image.Point{}, draw.Src)
	draw.Draw(canvas, image.Rect(h, 0, h*2, h), image.NewUniform(contextArea), image.Point{}, draw.Src)
	draw.Draw(canvas, l.Center, image.NewUniform(centerArea), image.Point{}, draw.Src)
}
