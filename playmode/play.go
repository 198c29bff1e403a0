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

package playmode

import (
	"fmt"
	"io"
	"math"
	"os"
	"os/signal"
	"strings"

	"github.com/jetsetilly/prism/curated"
	"github.com/jetsetilly/prism/gui"
	"github.com/jetsetilly/prism/logger"
	"github.com/jetsetilly/prism/paths"
	"github.com/jetsetilly/prism/session"
	"github.com/jetsetilly/prism/terminal"
)

// Sentinal error patterns.
const (
	InvalidConfig = "playmode: %v"
)

// Config for Play().
type Config struct {
	Session *session.Session

	// events from the windows. required
	Events <-chan gui.Event

	// input from the terminal. can be nil
	Inputs <-chan terminal.Input

	// feedback for the user. defaults to os.Stdout
	Output io.Writer

	// interrupt signals. if nil then Play() listens for os.Interrupt itself
	Interrupt <-chan os.Signal
}

type playmode struct {
	sess *session.Session
	out  io.Writer
}

// Play runs the control loop until the user quits, a window is closed or the
// program is interrupted. Playback is stopped before Play() returns.
func Play(cfg Config) error {
	if cfg.Session == nil || cfg.Events == nil {
		return curated.Errorf(InvalidConfig, "session and events channel are required")
	}
	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}

	intChan := cfg.Interrupt
	if intChan == nil {
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt)
		defer signal.Stop(c)
		intChan = c
	}

	pl := &playmode{
		sess: cfg.Session,
		out:  cfg.Output,
	}

	// playback must stop before the windows are destroyed
	defer pl.sess.Stop()

	pl.print(Help)

	inputs := cfg.Inputs

	for {
		select {
		case <-intChan:
			logger.Log(logger.Allow, "playmode", "interrupted")
			return nil

		case ev := <-cfg.Events:
			if pl.event(ev) {
				return nil
			}

		case in, ok := <-inputs:
			if !ok {
				// the terminal can no longer be read. carry on with events
				// from the windows only
				inputs = nil
				continue
			}
			if pl.input(in) {
				return nil
			}
		}
	}
}

func (pl *playmode) print(s string, a ...any) {
	fmt.Fprintf(pl.out, s, a...)
	fmt.Fprintln(pl.out)
}

// event returns true if the control loop should end
func (pl *playmode) event(ev gui.Event) bool {
	switch ev.ID {
	case gui.EventQuit:
		return true

	case gui.EventWindowClose:
		logger.Logf(logger.Allow, "playmode", "window closed: %s", ev.Data.(gui.EventDataWindow).Title)
		return true

	case gui.EventWindowResized:
		if err := pl.sess.Refresh(); err != nil {
			pl.report(err)
		}

	case gui.EventKeyboard:
		kb := ev.Data.(gui.EventDataKeyboard)
		if !kb.Down || kb.Mod == gui.KeyModCtrl || kb.Mod == gui.KeyModAlt {
			return false
		}

		// the shift modifier is needed for the plus key on many keyboards
		key := kb.Key
		if kb.Mod == gui.KeyModShift && key == "=" {
			key = "+"
		}

		return pl.perform(KeyAction(key))
	}

	return false
}

// input returns true if the control loop should end
func (pl *playmode) input(in terminal.Input) bool {
	if in.IsLine {
		path := strings.TrimSpace(in.Line)
		if path == "" {
			return false
		}
		if err := pl.sess.Open(path); err != nil {
			pl.report(err)
			return false
		}
		pl.print("%s", pl.sess)
		return false
	}
	return pl.perform(KeyAction(in.Key.String()))
}

// perform returns true if the action is Quit
func (pl *playmode) perform(a Action) bool {
	var err error

	switch a {
	case NoAction:
		return false

	case Quit:
		return true

	case Open:
		pl.print("press o in the terminal to enter a filename")
		return false

	case Clear:
		pl.sess.Clear()

	case Next:
		err = pl.sess.Advance(1)

	case Previous:
		err = pl.sess.Advance(-1)

	case ToggleAutosize:
		err = pl.sess.Autosize.Toggle()

	case Grow:
		err = pl.sess.Diagonal.Set(math.Round(pl.sess.Diagonal.Load()) + 1)

	case Shrink:
		err = pl.sess.Diagonal.Set(math.Round(pl.sess.Diagonal.Load()) - 1)

	case ToggleDebug:
		err = pl.sess.Debug.Toggle()

	case DumpState:
		err = pl.dumpState()
	}

	if err != nil {
		pl.report(err)
		return false
	}

	switch a {
	case ToggleAutosize, Grow, Shrink:
		s := pl.sess.Sizing()
		if s.Auto {
			pl.print("autosize on (diagonal %.0f\" when off)", s.DiagonalInches)
		} else {
			pl.print("autosize off, diagonal %.0f\"", s.DiagonalInches)
		}
	case ToggleDebug:
		pl.print("debug overlay: %v", pl.sess.Debug.Load())
	case DumpState:
	default:
		pl.print("%s", pl.sess)
	}

	return false
}

func (pl *playmode) report(err error) {
	logger.Log(logger.Allow, "playmode", err)
	pl.print("%v", err)
}

func (pl *playmode) dumpState() error {
	fn := paths.UniqueFilename("state", "session.dot")

	f, err := os.Create(fn)
	if err != nil {
		return curated.Errorf("playmode: %v", err)
	}

	pl.sess.DumpState(f)

	if err := f.Close(); err != nil {
		return curated.Errorf("playmode: %v", err)
	}

	pl.print("session state written to %s", fn)
	return nil
}
