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
	"testing"

	"github.com/jetsetilly/prism/hologram"
	"github.com/jetsetilly/prism/test"
)

func TestFlipRoundTrip(t *testing.T) {
	src := gradient(30, 17)

	flipped := hologram.FlipVertical(src)
	test.ExpectFailure(t, bytes.Equal(flipped.Pix, src.Pix))
	test.ExpectSuccess(t, bytes.Equal(hologram.FlipVertical(flipped).Pix, src.Pix))

	mirrored := hologram.MirrorHorizontal(src)
	test.ExpectFailure(t, bytes.Equal(mirrored.Pix, src.Pix))
	test.ExpectSuccess(t, bytes.Equal(hologram.MirrorHorizontal(mirrored).Pix, src.Pix))
}

func TestRotate(t *testing.T) {
	src := gradient(30, 17)

	r := hologram.Rotate90(src)
	test.ExpectEquality(t, r.Bounds(), image.Rect(0, 0, 17, 30))

	// the top right corner of the source is the top left corner after an
	// anticlockwise rotation
	test.ExpectEquality(t, r.RGBAAt(0, 0), src.RGBAAt(29, 0))
	test.ExpectEquality(t, r.RGBAAt(0, 29), src.RGBAAt(0, 0))
	test.ExpectEquality(t, r.RGBAAt(16, 0), src.RGBAAt(29, 16))

	// four rotations is the identity
	r = hologram.Rotate90(hologram.Rotate90(hologram.Rotate90(r)))
	test.ExpectSuccess(t, bytes.Equal(r.Pix, src.Pix))
}

func TestQuadrants(t *testing.T) {
	top, bottom, left, right := hologram.Quadrants(gradient(60, 20), 100)

	test.ExpectEquality(t, top.Bounds(), image.Rect(0, 0, 60, 20))
	test.ExpectEquality(t, bottom.Bounds(), top.Bounds())
	test.ExpectEquality(t, left.Bounds(), image.Rect(0, 0, 20, 60))
	test.ExpectEquality(t, right.Bounds(), left.Bounds())

	test.ExpectSuccess(t, bytes.Equal(hologram.FlipVertical(bottom).Pix, top.Pix))
	test.ExpectSuccess(t, bytes.Equal(hologram.MirrorHorizontal(right).Pix, left.Pix))

	for y := 0; y < 20; y++ {
		for x := 0; x < 60; x++ {
			if left.RGBAAt(y, x) != top.RGBAAt(x, y) {
				t.Fatalf("left quadrant is not the transpose of the top quadrant at %d,%d", x, y)
			}
		}
	}
}

func TestThumbnail(t *testing.T) {
	// never upscaled
	th := hologram.Thumbnail(gradient(100, 50), 404, 404)
	test.ExpectEquality(t, th.Bounds(), image.Rect(0, 0, 100, 50))

	// aspect ratio is preserved when downscaling
	th = hologram.Thumbnail(gradient(800, 400), 404, 404)
	test.ExpectEquality(t, th.Bounds(), image.Rect(0, 0, 404, 202))

	th = hologram.Thumbnail(gradient(300, 900), 200, 200)
	test.ExpectEquality(t, th.Bounds(), image.Rect(0, 0, 67, 200))

	// extreme aspect ratios keep at least one pixel
	th = hologram.Thumbnail(gradient(2000, 1), 100, 100)
	test.ExpectEquality(t, th.Bounds(), image.Rect(0, 0, 100, 1))

	// a copy is always returned
	src := gradient(10, 10)
	th = hologram.Thumbnail(src, 100, 100)
	th.Pix[0] = ^th.Pix[0]
	test.ExpectInequality(t, th.Pix[0], src.Pix[0])

	// an image with a non-zero origin
	sub := gradient(100, 100).SubImage(image.Rect(50, 50, 60, 70))
	th = hologram.Thumbnail(sub, 100, 100)
	test.ExpectEquality(t, th.Bounds(), image.Rect(0, 0, 10, 20))
	test.ExpectEquality(t, th.RGBAAt(0, 0), gradient(100, 100).RGBAAt(50, 50))

	// empty image
	th = hologram.Thumbnail(image.NewRGBA(image.Rectangle{}), 100, 100)
	test.ExpectEquality(t, th.Bounds().Empty(), true)
}
