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
	"image/color"
	"io"
	"runtime"

	"github.com/jetsetilly/prism/assert"
	"github.com/jetsetilly/prism/curated"
	"github.com/jetsetilly/prism/gui"
	"github.com/jetsetilly/prism/logger"
	"github.com/jetsetilly/prism/performance/limiter"
	"github.com/veandco/go-sdl2/sdl"
)

// Config for a new SDL instance.
type Config struct {
	// index of the screen to use for the display window. a negative value
	// means that the second screen is used if there is one
	Screen int

	// open the display window fullscreen. always true if the second screen is
	// being used
	Fullscreen bool

	// initial size of the preview window
	PreviewWidth  int
	PreviewHeight int

	// events are sent to this channel. events are dropped if the channel is
	// full
	Events chan gui.Event

	// the rate at which Service() returns
	ServiceRate int
}

// SDL creates and services the display and preview windows.
type SDL struct {
	cfg Config

	// the goroutine that created the windows
	mainThread assert.Thread

	lmtr *limiter.FpsLimiter

	display *Window
	preview *Window
}

var (
	displayBackground = color.RGBA{A: 255}
	previewBackground = color.RGBA{R: 48, G: 48, B: 48, A: 255}
)

// NewSDL is the preferred method of initialisation for the SDL type.
//
// MUST ONLY be called from the #mainthread
func NewSDL(cfg Config) (*SDL, error) {
	if cfg.PreviewWidth <= 0 || cfg.PreviewHeight <= 0 {
		cfg.PreviewWidth = 400
		cfg.PreviewHeight = 300
	}
	if cfg.ServiceRate <= 0 {
		cfg.ServiceRate = 60
	}

	// the SDL package calls LockOSThread() when it is initialised but we
	// call it here too
	runtime.LockOSThread()

	s := &SDL{
		cfg:        cfg,
		mainThread: assert.CurrentThread(),
	}

	var err error

	s.lmtr, err = limiter.NewFPSLimiter(cfg.ServiceRate)
	if err != nil {
		return nil, curated.Errorf("sdl: %v", err)
	}

	err = sdl.Init(sdl.INIT_VIDEO)
	if err != nil {
		return nil, curated.Errorf("sdl: %v", err)
	}

	sdl.SetHint(sdl.HINT_RENDER_SCALE_QUALITY, "linear")

	// MOUSEMOTION events are of no interest
	sdl.EventState(sdl.MOUSEMOTION, sdl.IGNORE)

	numScreens, err := sdl.GetNumVideoDisplays()
	if err != nil {
		return nil, curated.Errorf("sdl: %v", err)
	}

	screen := cfg.Screen
	fullscreen := cfg.Fullscreen
	if screen < 0 {
		if numScreens >= 2 {
			screen = 1
			fullscreen = true
		} else {
			screen = 0
			logger.Log(logger.Allow, "sdl", "cannot find a second screen. display will be on primary screen")
		}
	}
	if screen >= numScreens {
		return nil, curated.Errorf("sdl: no screen with index %d (%d screens)", screen, numScreens)
	}

	bounds, err := sdl.GetDisplayBounds(screen)
	if err != nil {
		return nil, curated.Errorf("sdl: %v", err)
	}

	flags := uint32(sdl.WINDOW_SHOWN) | uint32(sdl.WINDOW_RESIZABLE)
	if fullscreen {
		flags |= uint32(sdl.WINDOW_FULLSCREEN_DESKTOP)
	} else {
		flags |= uint32(sdl.WINDOW_MAXIMIZED)
	}

	s.display, err = newWindow("Prism - Display", bounds, flags, displayBackground)
	if err != nil {
		s.Destroy(nil)
		return nil, curated.Errorf("sdl: %v", err)
	}

	s.preview, err = newWindow("Prism", sdl.Rect{
		X: int32(sdl.WINDOWPOS_UNDEFINED),
		Y: int32(sdl.WINDOWPOS_UNDEFINED),
		W: int32(cfg.PreviewWidth),
		H: int32(cfg.PreviewHeight),
	}, uint32(sdl.WINDOW_SHOWN)|uint32(sdl.WINDOW_RESIZABLE), previewBackground)
	if err != nil {
		s.Destroy(nil)
		return nil, curated.Errorf("sdl: %v", err)
	}

	d := s.display.Dimensions()
	logger.Logf(logger.Allow, "sdl", "display on screen %d: %dx%d pixels, %.0fx%.0fmm, %.1f dpi",
		screen, d.Width, d.Height, d.WidthMM, d.HeightMM, d.DPI)

	return s, nil
}

// Display returns the display surface.
func (s *SDL) Display() *Window {
	return s.display
}

// Preview returns the preview surface.
func (s *SDL) Preview() *Window {
	return s.preview
}

// Destroy the windows and quit SDL. Errors are written to output, which can
// be nil.
//
// MUST ONLY be called from the #mainthread
func (s *SDL) Destroy(output io.Writer) {
	for _, win := range []*Window{s.preview, s.display} {
		if win == nil {
			continue
		}
		if err := win.destroy(); err != nil && output != nil {
			io.WriteString(output, err.Error())
			io.WriteString(output, "\n")
		}
	}
	if s.lmtr != nil {
		s.lmtr.Stop()
	}
	sdl.Quit()
}

func (s *SDL) windowByID(id uint32) *Window {
	if s.display != nil && s.display.id == id {
		return s.display
	}
	if s.preview != nil && s.preview.id == id {
		return s.preview
	}
	return nil
}

// send event without blocking the main thread
func (s *SDL) send(ev gui.Event) {
	if s.cfg.Events == nil {
		return
	}
	select {
	case s.cfg.Events <- ev:
	default:
		logger.Logf(logger.Allow, "sdl", "event channel full. dropping event %d", ev.ID)
	}
}
