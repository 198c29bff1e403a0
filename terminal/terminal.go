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

package terminal

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/jetsetilly/prism/curated"
	"github.com/jetsetilly/prism/logger"
	"github.com/pkg/term"
)

// Sentinal error patterns.
const (
	NotATerminal = "terminal: %v"
)

// the length of time a read of the terminal waits before checking whether
// the terminal is being closed
const readTimeout = 100 * time.Millisecond

// Input from the terminal. If IsLine is true then Line contains the text
// entered after the prompt key was pressed. Otherwise Key is the key that was
// pressed.
type Input struct {
	Key    Key
	Line   string
	IsLine bool
}

func (in Input) String() string {
	if in.IsLine {
		return fmt.Sprintf("line: %q", in.Line)
	}
	return fmt.Sprintf("key: %s", in.Key)
}

// Config for Open().
type Config struct {
	// the device to open. defaults to /dev/tty
	Device string

	// pressing the prompt key starts line input mode. line input mode is
	// disabled if the prompt key is KeyNone
	PromptKey Key
	Prompt    string

	// output for the prompt and for echoing line input. defaults to
	// os.Stdout
	Output io.Writer
}

// Terminal reads keys from the terminal device.
type Terminal struct {
	cfg Config
	tty *term.Term

	inputs chan Input

	// quit is closed to stop the reader goroutine. completed is sent to by
	// the reader goroutine when it ends
	quit      chan bool
	completed chan bool
}

// Open the terminal and start reading keys. The terminal is put into cbreak
// mode until Close() is called.
func Open(cfg Config) (*Terminal, error) {
	if cfg.Device == "" {
		cfg.Device = "/dev/tty"
	}
	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}

	tty, err := term.Open(cfg.Device, term.CBreakMode)
	if err != nil {
		return nil, curated.Errorf(NotATerminal, err)
	}

	err = tty.SetReadTimeout(readTimeout)
	if err != nil {
		_ = tty.Restore()
		_ = tty.Close()
		return nil, curated.Errorf(NotATerminal, err)
	}

	t := &Terminal{
		cfg:       cfg,
		tty:       tty,
		inputs:    make(chan Input, 16),
		quit:      make(chan bool),
		completed: make(chan bool),
	}

	go t.reader()

	return t, nil
}

// Inputs returns the channel on which keys and lines are sent. The channel is
// closed when the terminal can no longer be read.
func (t *Terminal) Inputs() <-chan Input {
	return t.inputs
}

// Close restores the terminal to the mode it was in before Open() was called.
func (t *Terminal) Close() error {
	close(t.quit)
	<-t.completed

	err := t.tty.Restore()
	if cerr := t.tty.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return curated.Errorf(NotATerminal, err)
	}
	return nil
}

func (t *Terminal) reader() {
	defer func() {
		close(t.inputs)
		t.completed <- true
	}()

	p := &processor{
		promptKey: t.cfg.PromptKey,
		prompt:    t.cfg.Prompt,
		line:      lineEditor{echo: t.cfg.Output},
	}

	b := make([]byte, 32)
	for {
		select {
		case <-t.quit:
			return
		default:
		}

		n, err := t.tty.Read(b)
		if err != nil && !errors.Is(err, io.EOF) {
			logger.Log(logger.Allow, "terminal", err)
			return
		}

		// nothing read before the timeout
		if n == 0 {
			continue
		}

		for _, in := range p.process(decode(b[:n])) {
			select {
			case t.inputs <- in:
			case <-t.quit:
				return
			}
		}
	}
}

// processor turns keys into inputs, switching into line input mode when the
// prompt key is seen
type processor struct {
	promptKey Key
	prompt    string

	editing bool
	line    lineEditor
}

func (p *processor) process(keys []Key) []Input {
	var inputs []Input

	for _, k := range keys {
		if !p.editing {
			if k == p.promptKey && k != KeyNone {
				p.editing = true
				p.line.reset()
				p.line.print(p.prompt)
				continue
			}
			inputs = append(inputs, Input{Key: k})
			continue
		}

		switch p.line.edit(k) {
		case lineDone:
			p.editing = false
			inputs = append(inputs, Input{Line: p.line.String(), IsLine: true})
		case lineCancelled:
			p.editing = false
		}
	}

	return inputs
}
