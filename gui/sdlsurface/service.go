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
	"github.com/jetsetilly/prism/assert"
	"github.com/jetsetilly/prism/gui"
	"github.com/jetsetilly/prism/logger"
	"github.com/veandco/go-sdl2/sdl"
)

// Service SDL events and update the windows with any pending images.
//
// MUST ONLY be called from the #mainthread
func (s *SDL) Service() {
	s.mainThread.Check("sdl: Service()")

	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			s.send(gui.Event{ID: gui.EventQuit})

		case *sdl.WindowEvent:
			win := s.windowByID(ev.WindowID)
			if win == nil {
				continue
			}

			switch ev.Event {
			case sdl.WINDOWEVENT_CLOSE:
				s.send(gui.Event{
					ID:   gui.EventWindowClose,
					Data: gui.EventDataWindow{Title: win.title},
				})

			case sdl.WINDOWEVENT_SIZE_CHANGED, sdl.WINDOWEVENT_MOVED:
				// moving a window to another screen can change the DPI
				if win.updateDimensions() {
					s.send(gui.Event{
						ID:   gui.EventWindowResized,
						Data: gui.EventDataWindow{Title: win.title},
					})
				}

			case sdl.WINDOWEVENT_EXPOSED:
				win.dirty = true
			}

		case *sdl.KeyboardEvent:
			if ev.Repeat != 0 {
				continue
			}

			mod := gui.KeyModNone
			if sdl.GetModState()&sdl.KMOD_LALT == sdl.KMOD_LALT ||
				sdl.GetModState()&sdl.KMOD_RALT == sdl.KMOD_RALT {
				mod = gui.KeyModAlt
			} else if sdl.GetModState()&sdl.KMOD_LSHIFT == sdl.KMOD_LSHIFT ||
				sdl.GetModState()&sdl.KMOD_RSHIFT == sdl.KMOD_RSHIFT {
				mod = gui.KeyModShift
			} else if sdl.GetModState()&sdl.KMOD_LCTRL == sdl.KMOD_LCTRL ||
				sdl.GetModState()&sdl.KMOD_RCTRL == sdl.KMOD_RCTRL {
				mod = gui.KeyModCtrl
			}

			s.send(gui.Event{
				ID: gui.EventKeyboard,
				Data: gui.EventDataKeyboard{
					Key:  sdl.GetKeyName(ev.Keysym.Sym),
					Down: ev.Type == sdl.KEYDOWN,
					Mod:  mod,
				},
			})
		}
	}

	for _, win := range []*Window{s.display, s.preview} {
		if err := win.service(); err != nil {
			logger.Logf(logger.Allow, "sdl", "%s: %v", win, err)
		}
	}

	// wait for frame limiter
	s.lmtr.Wait()
}
