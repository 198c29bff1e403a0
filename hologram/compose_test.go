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

package hologram_test

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/jetsetilly/prism/curated"
	"github.com/jetsetilly/prism/hologram"
	"github.com/jetsetilly/prism/test"
)

// every pixel in a gradient image is distinct for small images
func gradient(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: uint8(x ^ y), A: 255})
		}
	}
	return img
}

func uniform(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i] = c.R
		img.Pix[i+1] = c.G
		img.Pix[i+2] = c.B
		img.Pix[i+3] = c.A
	}
	return img
}

func TestComposeDimensions(t *testing.T) {
	out, err := hologram.Compose(gradient(200, 100), manual(1920, 1080, 32))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, out.Bounds(), image.Rect(0, 0, 1920, 1080))

	// uncovered pixels are opaque black
	test.ExpectEquality(t, out.RGBAAt(0, 0), color.RGBA{A: 255})
	test.ExpectEquality(t, out.RGBAAt(1919, 1079), color.RGBA{A: 255})
}

func TestComposeDeterministic(t *testing.T) {
	src := gradient(250, 120)
	p := manual(1280, 720, 24)

	a, err := hologram.Compose(src, p)
	test.DemandSuccess(t, err)
	b, err := hologram.Compose(src, p)
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, bytes.Equal(a.Pix, b.Pix))

	p.Debug = true
	c, err := hologram.Compose(src, p)
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, bytes.Equal(a.Pix, c.Pix))
}

func TestComposeScreenTooSmall(t *testing.T) {
	out, err := hologram.Compose(gradient(10, 10), manual(1920, 1080, 5))
	test.ExpectSuccess(t, curated.Is(err, hologram.ScreenTooSmall))
	test.ExpectSuccess(t, out == nil)
}

func TestComposeQuadrantPositions(t *testing.T) {
	// the source is smaller than the bounding box so is not scaled
	src := gradient(40, 20)
	p := manual(1920, 1080, 32)

	out, err := hologram.Compose(src, p)
	test.DemandSuccess(t, err)

	l, err := hologram.NewLayout(p)
	test.DemandSuccess(t, err)
	pl := l.Place(40, 20)

	// top left pixel of the source appears at the top left of the top
	// quadrant and at the bottom left of the bottom quadrant
	test.ExpectEquality(t, out.RGBAAt(pl.Top.Min.X, pl.Top.Min.Y), src.RGBAAt(0, 0))
	test.ExpectEquality(t, out.RGBAAt(pl.Bottom.Min.X, pl.Bottom.Max.Y-1), src.RGBAAt(0, 0))

	// the left quadrant is the transpose of the top quadrant
	test.ExpectEquality(t, out.RGBAAt(pl.Left.Min.X+5, pl.Left.Min.Y+30), src.RGBAAt(30, 5))

	// the right quadrant mirrors the left quadrant
	test.ExpectEquality(t, out.RGBAAt(pl.Right.Max.X-1-5, pl.Right.Min.Y+30), src.RGBAAt(30, 5))
}

func TestComposeDebugOverlay(t *testing.T) {
	// a transparent source leaves the overlay visible everywhere
	src := uniform(100, 100, color.RGBA{})
	p := manual(1920, 1080, 32)
	p.Debug = true

	out, err := hologram.Compose(src, p)
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, out.RGBAAt(5, 1079), color.RGBA{R: 0, G: 157, B: 172, A: 255})
	test.ExpectEquality(t, out.RGBAAt(1900, 5), color.RGBA{R: 173, G: 243, B: 0, A: 255})
	test.ExpectEquality(t, out.RGBAAt(540, 540), color.RGBA{R: 255, A: 255})

	// beyond the context area
	test.ExpectEquality(t, out.RGBAAt(1919, 1079), color.RGBA{R: 173, G: 243, B: 0, A: 255})
}

func TestComposeAlpha(t *testing.T) {
	// half transparent white over black
	src := uniform(50, 50, color.RGBA{R: 128, G: 128, B: 128, A: 128})
	p := manual(1920, 1080, 32)

	out, err := hologram.Compose(src, p)
	test.DemandSuccess(t, err)

	l, err := hologram.NewLayout(p)
	test.DemandSuccess(t, err)
	pl := l.Place(50, 50)

	c := out.RGBAAt(pl.Top.Min.X+10, pl.Top.Min.Y+10)
	test.ExpectEquality(t, c.R, uint8(128))
	test.ExpectEquality(t, c.A, uint8(255))
}
