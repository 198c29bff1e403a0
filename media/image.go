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

package media

import (
	"bufio"
	"image"
	"os"
	"path/filepath"
	"strings"

	// decoders registered with the image package
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"

	"github.com/jetsetilly/prism/curated"
	"github.com/spakin/netpbm"
)

// LoadImage decodes the image file at path.
func LoadImage(path string) (image.Image, error) {
	if Classify(path) != Image {
		return nil, curated.Errorf(UnsupportedMedia, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, curated.Errorf("media: %v", err)
	}
	defer f.Close()

	r := bufio.NewReader(f)

	var img image.Image

	if strings.EqualFold(filepath.Ext(path), ".ppm") {
		img, err = netpbm.Decode(r, &netpbm.DecodeOptions{
			Target: netpbm.PPM,
			Exact:  false,
		})
	} else {
		img, _, err = image.Decode(r)
	}
	if err != nil {
		return nil, curated.Errorf("media: %s: %v", filepath.Base(path), err)
	}

	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, curated.Errorf("media: %s: empty image", filepath.Base(path))
	}

	return img, nil
}
