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

package media_test

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/prism/curated"
	"github.com/jetsetilly/prism/media"
	"github.com/jetsetilly/prism/test"
	"github.com/spakin/netpbm"
	"golang.org/x/image/bmp"
)

func sample() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 8, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 8; x++ {
			img.SetRGBA(x, y, color.RGBA{R: uint8(x * 30), G: uint8(y * 60), B: 10, A: 255})
		}
	}
	return img
}

func encode(t *testing.T, path string, enc func(w io.Writer) error) {
	t.Helper()
	f, err := os.Create(path)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, enc(f))
	test.DemandSuccess(t, f.Close())
}

func expectSample(t *testing.T, img image.Image, tag string) {
	t.Helper()
	test.DemandEquality(t, img.Bounds().Dx(), 8, tag)
	test.DemandEquality(t, img.Bounds().Dy(), 4, tag)
	r, g, b, _ := img.At(3, 2).RGBA()
	test.ExpectEquality(t, r>>8, 90, tag)
	test.ExpectEquality(t, g>>8, 120, tag)
	test.ExpectEquality(t, b>>8, 10, tag)
}

func TestLoadImage(t *testing.T) {
	dir := t.TempDir()

	pth := filepath.Join(dir, "sample.PNG")
	encode(t, pth, func(w io.Writer) error { return png.Encode(w, sample()) })
	img, err := media.LoadImage(pth)
	test.DemandSuccess(t, err)
	expectSample(t, img, "png")

	pth = filepath.Join(dir, "sample.bmp")
	encode(t, pth, func(w io.Writer) error { return bmp.Encode(w, sample()) })
	img, err = media.LoadImage(pth)
	test.DemandSuccess(t, err)
	expectSample(t, img, "bmp")

	pth = filepath.Join(dir, "sample.ppm")
	encode(t, pth, func(w io.Writer) error {
		return netpbm.Encode(w, sample(), &netpbm.EncodeOptions{
			Format:   netpbm.PPM,
			MaxValue: 255,
		})
	})
	img, err = media.LoadImage(pth)
	test.DemandSuccess(t, err)
	expectSample(t, img, "ppm")
}

func TestLoadImageFailure(t *testing.T) {
	dir := t.TempDir()

	_, err := media.LoadImage(filepath.Join(dir, "clip.mp4"))
	test.ExpectSuccess(t, curated.Is(err, media.UnsupportedMedia))

	_, err = media.LoadImage(filepath.Join(dir, "missing.png"))
	test.ExpectFailure(t, err)

	pth := filepath.Join(dir, "corrupt.jpg")
	test.DemandSuccess(t, os.WriteFile(pth, []byte("not a jpeg"), 0o644))
	_, err = media.LoadImage(pth)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.IsAny(err))
}
