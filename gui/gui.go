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

package gui

import "image"

// Dimensions of a surface in pixels and in millimetres.
type Dimensions struct {
	Width  int
	Height int

	WidthMM  float64
	HeightMM float64

	// horizontal dots per inch
	DPI float64
}

// Surface is a render surface that frames can be presented to.
//
// Implementations must allow Present(), Clear() and Dimensions() to be called
// from any goroutine. Presented images must not be altered afterwards by the
// caller.
type Surface interface {
	// Present the image. The image will be shown the next time the surface
	// is serviced
	Present(*image.RGBA) error

	// Clear the surface and show the default placeholder
	Clear() error

	// The current dimensions of the surface
	Dimensions() Dimensions
}

// Sentinal error returned if a surface has been destroyed.
const (
	SurfaceDestroyed = "surface destroyed: %s"
)
