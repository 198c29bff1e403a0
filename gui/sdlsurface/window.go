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

package sdlsurface

import (
	"image"
	"image/color"
	"sync"

	"github.com/jetsetilly/prism/curated"
	"github.com/jetsetilly/prism/gui"
	"github.com/jetsetilly/prism/hologram"
	"github.com/jetsetilly/prism/logger"
	"github.com/veandco/go-sdl2/sdl"
)

const pixelDepth = 4

// used when the screen does not report a DPI value
const defaultDPI = 96.0

// Window is an SDL window that implements the gui.Surface interface.
type Window struct {
	title      string
	background color.RGBA

	crit sync.Mutex

	// the next image to show. nil if there is no new image
	pending *image.RGBA

	// the window should show the background only
	clear bool

	// cached dimensions of the window. updated by the main thread
	dims gui.Dimensions

	destroyed bool

	// sdl stuff. only accessed by the main thread
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture
	id       uint32

	// dimensions of the texture
	textureW int32
	textureH int32

	// the window needs to be drawn
	dirty bool
}

// #mainthread
func newWindow(title string, bounds sdl.Rect, flags uint32, background color.RGBA) (*Window, error) {
	win := &Window{
		title:      title,
		background: background,
		dirty:      true,
	}

	var err error

	win.window, err = sdl.CreateWindow(title, bounds.X, bounds.Y, bounds.W, bounds.H, flags)
	if err != nil {
		return nil, err
	}

	win.renderer, err = sdl.CreateRenderer(win.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		_ = win.window.Destroy()
		return nil, err
	}

	win.id, err = win.window.GetID()
	if err != nil {
		_ = win.renderer.Destroy()
		_ = win.window.Destroy()
		return nil, err
	}

	win.updateDimensions()

	return win, nil
}

func (win *Window) String() string {
	return win.title
}

// Present implements the gui.Surface interface.
func (win *Window) Present(img *image.RGBA) error {
	win.crit.Lock()
	defer win.crit.Unlock()

	if win.destroyed {
		return curated.Errorf(gui.SurfaceDestroyed, win.title)
	}

	win.pending = img
	win.clear = false

	return nil
}

// Clear implements the gui.Surface interface.
func (win *Window) Clear() error {
	win.crit.Lock()
	defer win.crit.Unlock()

	if win.destroyed {
		return curated.Errorf(gui.SurfaceDestroyed, win.title)
	}

	win.pending = nil
	win.clear = true

	return nil
}

// Dimensions implements the gui.Surface interface.
func (win *Window) Dimensions() gui.Dimensions {
	win.crit.Lock()
	defer win.crit.Unlock()
	return win.dims
}

// returns true if the dimensions have changed.
//
// #mainthread
func (win *Window) updateDimensions() bool {
	w, h, err := win.renderer.GetOutputSize()
	if err != nil {
		logger.Logf(logger.Allow, "sdl", "%s: %v", win.title, err)
		return false
	}

	dpi := defaultDPI
	if idx, err := win.window.GetDisplayIndex(); err == nil {
		if _, hdpi, _, err := sdl.GetDisplayDPI(idx); err == nil && hdpi > 0 {
			dpi = float64(hdpi)
		}
	}

	d := gui.Dimensions{
		Width:    int(w),
		Height:   int(h),
		WidthMM:  float64(w) / dpi * hologram.MMPerInch,
		HeightMM: float64(h) / dpi * hologram.MMPerInch,
		DPI:      dpi,
	}

	win.crit.Lock()
	defer win.crit.Unlock()

	changed := d != win.dims
	win.dims = d
	win.dirty = win.dirty || changed

	return changed
}

// upload any pending image and redraw the window if necessary.
//
// #mainthread
func (win *Window) service() error {
	win.crit.Lock()
	img := win.pending
	clearReq := win.clear
	win.pending = nil
	win.clear = false
	win.crit.Unlock()

	if clearReq {
		win.destroyTexture()
		win.dirty = true
	}

	if img != nil {
		if err := win.upload(img); err != nil {
			return err
		}
		win.dirty = true
	}

	if !win.dirty {
		return nil
	}
	win.dirty = false

	err := win.renderer.SetDrawColor(win.background.R, win.background.G, win.background.B, win.background.A)
	if err != nil {
		return err
	}

	err = win.renderer.Clear()
	if err != nil {
		return err
	}

	if win.texture != nil {
		d := win.Dimensions()
		dst := fit(win.textureW, win.textureH, int32(d.Width), int32(d.Height))
		err = win.renderer.Copy(win.texture, nil, &dst)
		if err != nil {
			return err
		}
	}

	win.renderer.Present()

	return nil
}

// copy image to the texture, creating a new texture if the size of the image
// has changed.
//
// #mainthread
func (win *Window) upload(img *image.RGBA) error {
	b := img.Bounds()
	w := int32(b.Dx())
	h := int32(b.Dy())

	if w <= 0 || h <= 0 {
		win.destroyTexture()
		return nil
	}

	if win.texture == nil || w != win.textureW || h != win.textureH {
		win.destroyTexture()

		var err error
		win.texture, err = win.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888),
			int(sdl.TEXTUREACCESS_STREAMING), w, h)
		if err != nil {
			return err
		}
		win.textureW = w
		win.textureH = h
	}

	pixels, pitch, err := win.texture.Lock(nil)
	if err != nil {
		return err
	}

	rowLen := b.Dx() * pixelDepth
	for y := 0; y < b.Dy(); y++ {
		s := img.PixOffset(b.Min.X, b.Min.Y+y)
		d := y * pitch
		copy(pixels[d:d+rowLen], img.Pix[s:s+rowLen])
	}

	win.texture.Unlock()

	return nil
}

// #mainthread
func (win *Window) destroyTexture() {
	if win.texture == nil {
		return
	}
	_ = win.texture.Destroy()
	win.texture = nil
	win.textureW = 0
	win.textureH = 0
}

// #mainthread
func (win *Window) destroy() error {
	win.crit.Lock()
	win.destroyed = true
	win.pending = nil
	win.crit.Unlock()

	win.destroyTexture()

	if err := win.renderer.Destroy(); err != nil {
		return curated.Errorf("sdl: %s: %v", win.title, err)
	}
	if err := win.window.Destroy(); err != nil {
		return curated.Errorf("sdl: %s: %v", win.title, err)
	}

	return nil
}

// fit returns the largest rectangle with the aspect ratio of the texture that
// fits inside the output, centred in the output.
func fit(textureW, textureH, outputW, outputH int32) sdl.Rect {
	if textureW <= 0 || textureH <= 0 || outputW <= 0 || outputH <= 0 {
		return sdl.Rect{}
	}

	w := outputW
	h := int32(int64(textureH) * int64(outputW) / int64(textureW))
	if h > outputH {
		h = outputH
		w = int32(int64(textureW) * int64(outputH) / int64(textureH))
	}

	return sdl.Rect{
		X: (outputW - w) / 2,
		Y: (outputH - h) / 2,
		W: w,
		H: h,
	}
}
