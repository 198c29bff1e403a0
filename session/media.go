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

package session

import (
	"image"
	"path/filepath"

	"github.com/jetsetilly/prism/pipeline"
)

// Video is a decoder that can be closed. Close() is only ever called after
// the pipeline reading from the video has been stopped.
type Video interface {
	pipeline.Decoder
	Close() error
}

type mediaKind int

const (
	noMedia mediaKind = iota
	stillMedia
	videoMedia
)

// loaded media. only one of img or vid is used, depending on the kind
type loaded struct {
	kind mediaKind
	path string
	img  image.Image
	vid  Video
}

func (m loaded) String() string {
	if m.kind == noMedia {
		return "none"
	}
	return filepath.Base(m.path)
}
