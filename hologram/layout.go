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

	"github.com/jetsetilly/prism/curated"
)

// MMPerInch is the number of millimetres in an inch.
const MMPerInch = 25.4

// Sentinal error patterns returned by NewLayout() and Compose().
const (
	InvalidDimensions = "hologram: invalid display dimensions: %dx%d"
	InvalidDPI        = "hologram: invalid display dpi: %.2f"
	InvalidDiagonal   = "hologram: invalid display diagonal: %.2f inches"
	ScreenTooSmall    = "hologram: screen too small: height of %.1fmm must exceed %.1fmm"
)

// Sizing selects how the physical dimensions of the display are found.
type Sizing struct {
	// use the physical size reported by the display
	Auto bool

	// diagonal of the display in inches. only used when Auto is false
	DiagonalInches float64
}

// Physical is the physical size of a display as reported by the display.
type Physical struct {
	WidthMM  float64
	HeightMM float64

	// horizontal dots per inch
	DPI float64
}

// Rig contains the constants of the physical rig.
type Rig struct {
	// side length of the central square in millimetres
	CenterMM float64

	// the top and bottom quadrants are centred horizontally on a span of the
	// display height plus this value
	HorizontalSpan int

	// the left and right quadrants are moved horizontally by this value
	SideBias int
}

// DefaultRig is used when the Rig field of Params is the zero value.
var DefaultRig = Rig{
	CenterMM:       100,
	HorizontalSpan: 600,
	SideBias:       300,
}

// Params are the inputs to NewLayout() and Compose().
type Params struct {
	// display dimensions in pixels
	Width  int
	Height int

	Sizing   Sizing
	Physical Physical

	// the zero value is replaced by DefaultRig
	Rig Rig

	// draw alignment guides underneath the quadrants
	Debug bool
}

// Layout is computed from Params by NewLayout().
type Layout struct {
	Width  int
	Height int
	Rig    Rig

	DotsPerMM float64
	WidthMM   float64
	HeightMM  float64

	// side length in pixels of the central square
	CenterLength int

	// side length in pixels of the bounding box for each quadrant
	MediaLength int

	// location of the central square on the display
	Center image.Rectangle
}

// NewLayout calculates the hologram layout for the display described by
// Params. An error is returned if the display is too small to accommodate the
// central square.
func NewLayout(p Params) (Layout, error) {
	if p.Width <= 0 || p.Height <= 0 {
		return Layout{}, curated.Errorf(InvalidDimensions, p.Width, p.Height)
	}

	l := Layout{
		Width:  p.Width,
		Height: p.Height,
		Rig:    p.Rig,
	}
	if l.Rig == (Rig{}) {
		l.Rig = DefaultRig
	}

	if p.Sizing.Auto {
		if p.Physical.DPI <= 0 {
			return Layout{}, curated.Errorf(InvalidDPI, p.Physical.DPI)
		}
		l.DotsPerMM = p.Physical.DPI / MMPerInch
		l.WidthMM = p.Physical.WidthMM
		l.HeightMM = p.Physical.HeightMM
	} else {
		if p.Sizing.DiagonalInches <= 0 {
			return Layout{}, curated.Errorf(InvalidDiagonal, p.Sizing.DiagonalInches)
		}
		diagonalMM := p.Sizing.DiagonalInches * MMPerInch
		l.DotsPerMM = math.Hypot(float64(p.Width), float64(p.Height)) / diagonalMM
		l.WidthMM = float64(p.Width) / l.DotsPerMM
		l.HeightMM = float64(p.Height) / l.DotsPerMM
	}

	if l.HeightMM <= l.Rig.CenterMM {
		return Layout{}, curated.Errorf(ScreenTooSmall, l.HeightMM, l.Rig.CenterMM)
	}

	// the height of the display is the limiting dimension
	mediaMM := (l.HeightMM - l.Rig.CenterMM) / 2

	l.CenterLength = int(math.Round(l.Rig.CenterMM * l.DotsPerMM))
	l.MediaLength = int(mediaMM * l.DotsPerMM)
	if l.MediaLength <= 0 {
		return Layout{}, curated.Errorf(ScreenTooSmall, l.HeightMM, l.Rig.CenterMM)
	}

	c := int(float64(p.Height-l.CenterLength) / 2)
	l.Center = image.Rect(c, c, c+l.CenterLength, c+l.CenterLength)

	return l, nil
}

// Placement is the location of each quadrant on the display.
type Placement struct {
	Top    image.Rectangle
	Bottom image.Rectangle
	Left   image.Rectangle
	Right  image.Rectangle
}

// Place returns the location of the four quadrants for a top quadrant of the
// given width and height. The left and right quadrants are the top quadrant
// transposed so their width is the height of the top quadrant and vice versa.
//
// Locations may extend beyond the display bounds.
func (l Layout) Place(width, height int) Placement {
	var pl Placement

	span := l.Height + l.Rig.HorizontalSpan

	topX := (span - width) / 2
	topY := int((float64(l.Height-l.CenterLength)/2 - float64(height)) / 2)
	pl.Top = image.Rect(topX, topY, topX+width, topY+height)

	bottomY := l.Height - height - topY
	pl.Bottom = image.Rect(topX, bottomY, topX+width, bottomY+height)

	// left and right quadrants are transposed
	sideW := height
	sideH := width

	sideY := (l.Height - sideH) / 2

	leftX := topY + l.Rig.SideBias
	pl.Left = image.Rect(leftX, sideY, leftX+sideW, sideY+sideH)

	rightX := l.Height - sideW - topY + l.Rig.SideBias
	pl.Right = image.Rect(rightX, sideY, rightX+sideW, sideY+sideH)

	return pl
}
