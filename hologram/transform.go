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
	"math"

	"golang.org/x/image/draw"
)

// Scaler is the interpolator used by Thumbnail().
var Scaler draw.Scaler = draw.ApproxBiLinear

// ToRGBA returns a copy of the image as an RGBA image with an origin of (0,0).
func ToRGBA(src image.Image) *image.RGBA {
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return dst
}

// Thumbnail scales the image so that it fits inside a box of maxW by maxH
// pixels. Aspect ratio is preserved and the image is never upscaled. The
// returned image is always a new image.
func Thumbnail(src image.Image, maxW, maxH int) *image.RGBA {
	b := src.Bounds()
	w := b.Dx()
	h := b.Dy()

	if w <= 0 || h <= 0 || maxW <= 0 || maxH <= 0 {
		return image.NewRGBA(image.Rectangle{})
	}

	if w <= maxW && h <= maxH {
		return ToRGBA(src)
	}

	scale := math.Min(float64(maxW)/float64(w), float64(maxH)/float64(h))
	nw := min(max(int(math.Round(float64(w)*scale)), 1), maxW)
	nh := min(max(int(math.Round(float64(h)*scale)), 1), maxH)

	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	Scaler.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}

// FlipVertical returns a copy of the image with the rows in reverse order.
func FlipVertical(src *image.RGBA) *image.RGBA {
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	rowLen := b.Dx() * 4

	for y := 0; y < b.Dy(); y++ {
		s := src.PixOffset(b.Min.X, b.Min.Y+y)
		d := dst.PixOffset(0, b.Dy()-1-y)
		copy(dst.Pix[d:d+rowLen], src.Pix[s:s+rowLen])
	}

	return dst
}

// MirrorHorizontal returns a copy of the image with the columns in reverse
// order.
func MirrorHorizontal(src *image.RGBA) *image.RGBA {
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))

	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			s := src.PixOffset(b.Min.X+x, b.Min.Y+y)
			d := dst.PixOffset(b.Dx()-1-x, y)
			copy(dst.Pix[d:d+4], src.Pix[s:s+4])
		}
	}

	return dst
}

// Rotate90 returns a copy of the image rotated by 90 degrees anticlockwise.
// The width of the returned image is the height of the source image and vice
// versa.
func Rotate90(src *image.RGBA) *image.RGBA {
	b := src.Bounds()
	w := b.Dx()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dy(), w))

	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < w; x++ {
			s := src.PixOffset(b.Min.X+x, b.Min.Y+y)
			d := dst.PixOffset(y, w-1-x)
			copy(dst.Pix[d:d+4], src.Pix[s:s+4])
		}
	}

	return dst
}
