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

package playmode_test

import (
	"errors"
	"image"
	"os"
	"slices"
	"strings"
	"testing"

	"github.com/jetsetilly/prism/gui"
	"github.com/jetsetilly/prism/playmode"
	"github.com/jetsetilly/prism/session"
	"github.com/jetsetilly/prism/terminal"
	"github.com/jetsetilly/prism/test"
)

type surface struct {
	presents int
}

func (s *surface) Present(_ *image.RGBA) error {
	s.presents++
	return nil
}

func (s *surface) Clear() error {
	return nil
}

func (s *surface) Dimensions() gui.Dimensions {
	return gui.Dimensions{Width: 960, Height: 540, WidthMM: 508, HeightMM: 285.75, DPI: 48}
}

var files = []string{"a.png", "b.png", "c.png"}

func newSession(t *testing.T) (*session.Session, *surface) {
	t.Helper()

	display := &surface{}
	sess, err := session.NewSession(session.Config{
		Display: display,
		Preview: &surface{},
		LoadImage: func(path string) (image.Image, error) {
			return image.NewRGBA(image.Rect(0, 0, 16, 16)), nil
		},
		OpenVideo: func(path string) (session.Video, error) {
			return nil, errors.New("no video in this test")
		},
		Enumerate: func(path string) ([]string, int, error) {
			idx := slices.Index(files, path)
			if idx == -1 {
				return nil, 0, errors.New("not found")
			}
			return files, idx, nil
		},
	})
	test.DemandSuccess(t, err)

	return sess, display
}

func key(k string) gui.Event {
	return gui.Event{
		ID:   gui.EventKeyboard,
		Data: gui.EventDataKeyboard{Key: k, Down: true},
	}
}

func TestInvalidConfig(t *testing.T) {
	test.ExpectFailure(t, playmode.Play(playmode.Config{}))
}

func TestWindowEvents(t *testing.T) {
	sess, display := newSession(t)
	test.DemandSuccess(t, sess.Open("a.png"))

	events := make(chan gui.Event, 10)
	events <- key("N")
	events <- key("N")
	events <- gui.Event{ID: gui.EventKeyboard, Data: gui.EventDataKeyboard{Key: "P", Down: false}}
	events <- gui.Event{ID: gui.EventWindowResized, Data: gui.EventDataWindow{Title: "display"}}
	events <- key("D")
	events <- gui.Event{ID: gui.EventKeyboard, Data: gui.EventDataKeyboard{Key: "=", Down: true, Mod: gui.KeyModShift}}
	events <- gui.Event{ID: gui.EventWindowClose, Data: gui.EventDataWindow{Title: "display"}}

	var out strings.Builder
	err := playmode.Play(playmode.Config{
		Session:   sess,
		Events:    events,
		Output:    &out,
		Interrupt: make(chan os.Signal),
	})
	test.ExpectSuccess(t, err)

	// key up events are ignored
	_, idx := sess.Files()
	test.ExpectEquality(t, idx, 2)

	test.ExpectSuccess(t, sess.Debug.Load())
	test.ExpectEquality(t, sess.Diagonal.Load(), 33.0)

	// open, next, next, resize, debug and diagonal each present a new
	// composite
	test.ExpectEquality(t, display.presents, 6)

	// playback is stopped when the loop ends
	test.ExpectEquality(t, sess.State(), session.Idle)
	test.ExpectSuccess(t, strings.Contains(out.String(), "c.png"))
}

func TestTerminalInput(t *testing.T) {
	sess, _ := newSession(t)

	inputs := make(chan terminal.Input, 10)
	inputs <- terminal.Input{Line: "  b.png ", IsLine: true}
	inputs <- terminal.Input{Key: terminal.KeyRight}
	inputs <- terminal.Input{Line: "missing.png", IsLine: true}
	inputs <- terminal.Input{Key: 'a'}
	inputs <- terminal.Input{Key: '-'}
	inputs <- terminal.Input{Key: 'q'}

	var out strings.Builder
	err := playmode.Play(playmode.Config{
		Session:   sess,
		Events:    make(chan gui.Event),
		Inputs:    inputs,
		Output:    &out,
		Interrupt: make(chan os.Signal),
	})
	test.ExpectSuccess(t, err)

	// the failed open did not change the file list
	_, idx := sess.Files()
	test.ExpectEquality(t, idx, 2)

	test.ExpectEquality(t, sess.Sizing().Auto, false)
	test.ExpectEquality(t, sess.Diagonal.Load(), 31.0)
	test.ExpectSuccess(t, strings.Contains(out.String(), "missing.png"))
	test.ExpectSuccess(t, strings.Contains(out.String(), "autosize off, diagonal 31\""))
}

func TestDiagonalLimit(t *testing.T) {
	sess, _ := newSession(t)
	test.DemandSuccess(t, sess.Diagonal.Set(session.MaxDiagonal))

	inputs := make(chan terminal.Input, 10)
	inputs <- terminal.Input{Key: '+'}
	inputs <- terminal.Input{Key: 'q'}

	var out strings.Builder
	err := playmode.Play(playmode.Config{
		Session:   sess,
		Events:    make(chan gui.Event),
		Inputs:    inputs,
		Output:    &out,
		Interrupt: make(chan os.Signal),
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, sess.Diagonal.Load(), float64(session.MaxDiagonal))
}

func TestClosedTerminal(t *testing.T) {
	sess, _ := newSession(t)

	inputs := make(chan terminal.Input)
	close(inputs)

	events := make(chan gui.Event, 1)
	events <- gui.Event{ID: gui.EventQuit}

	var out strings.Builder
	err := playmode.Play(playmode.Config{
		Session:   sess,
		Events:    events,
		Inputs:    inputs,
		Output:    &out,
		Interrupt: make(chan os.Signal),
	})
	test.ExpectSuccess(t, err)
}

func TestInterrupt(t *testing.T) {
	sess, _ := newSession(t)

	intChan := make(chan os.Signal, 1)
	intChan <- os.Interrupt

	var out strings.Builder
	err := playmode.Play(playmode.Config{
		Session:   sess,
		Events:    make(chan gui.Event),
		Output:    &out,
		Interrupt: intChan,
	})
	test.ExpectSuccess(t, err)
}
