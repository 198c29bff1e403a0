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
	"strings"
	"testing"

	"github.com/jetsetilly/prism/test"
)

func TestDecode(t *testing.T) {
	keys := decode([]byte("np"))
	test.DemandEquality(t, len(keys), 2)
	test.ExpectEquality(t, keys[0], Key('n'))
	test.ExpectEquality(t, keys[1], Key('p'))

	keys = decode([]byte("\x1b[C\x1b[D\x1b[A\x1bOB"))
	test.DemandEquality(t, len(keys), 4)
	test.ExpectEquality(t, keys[0], KeyRight)
	test.ExpectEquality(t, keys[1], KeyLeft)
	test.ExpectEquality(t, keys[2], KeyUp)
	test.ExpectEquality(t, keys[3], KeyDown)

	keys = decode([]byte{byte(KeyEsc)})
	test.DemandEquality(t, len(keys), 1)
	test.ExpectEquality(t, keys[0], KeyEsc)

	// escape followed by an ordinary key
	keys = decode([]byte("\x1bq"))
	test.DemandEquality(t, len(keys), 2)
	test.ExpectEquality(t, keys[0], KeyEsc)
	test.ExpectEquality(t, keys[1], Key('q'))

	// unknown escape sequence is discarded
	keys = decode([]byte("\x1b[Zx"))
	test.DemandEquality(t, len(keys), 1)
	test.ExpectEquality(t, keys[0], Key('x'))

	keys = decode([]byte("é\n"))
	test.DemandEquality(t, len(keys), 2)
	test.ExpectEquality(t, keys[0], Key('é'))
	test.ExpectEquality(t, keys[1], KeyEnter)
}

func TestKeyString(t *testing.T) {
	test.ExpectEquality(t, Key('a').String(), "a")
	test.ExpectEquality(t, KeyEsc.String(), "esc")
	test.ExpectEquality(t, KeyLeft.String(), "left")
	test.ExpectEquality(t, KeyDelete.String(), "backspace")
}

func TestLineEditor(t *testing.T) {
	var echo strings.Builder
	ed := lineEditor{echo: &echo}

	for _, k := range "abd" {
		test.ExpectEquality(t, ed.edit(Key(k)), lineEditing)
	}
	test.ExpectEquality(t, ed.edit(KeyBackspace), lineEditing)
	test.ExpectEquality(t, ed.edit(Key('c')), lineEditing)
	test.ExpectEquality(t, ed.edit(KeyLeft), lineEditing)
	test.ExpectEquality(t, ed.String(), "abc")
	test.ExpectEquality(t, ed.edit(KeyEnter), lineDone)
	test.ExpectEquality(t, echo.String(), "abd\b \bc\r\n")

	// backspace on an empty line does nothing
	ed.reset()
	test.ExpectEquality(t, ed.edit(KeyDelete), lineEditing)
	test.ExpectEquality(t, ed.String(), "")
	test.ExpectEquality(t, ed.edit(KeyEsc), lineCancelled)
}

func TestProcessor(t *testing.T) {
	p := &processor{promptKey: 'o', prompt: "open: "}

	in := p.process(decode([]byte("n")))
	test.DemandEquality(t, len(in), 1)
	test.ExpectEquality(t, in[0], Input{Key: 'n'})

	// keys typed after the prompt key are collected into a line
	in = p.process(decode([]byte("ofoo.png")))
	test.ExpectEquality(t, len(in), 0)
	in = p.process(decode([]byte("\r")))
	test.DemandEquality(t, len(in), 1)
	test.ExpectEquality(t, in[0], Input{Line: "foo.png", IsLine: true})

	// a cancelled line produces no input and the next key is a normal key
	in = p.process(decode([]byte("obar")))
	test.ExpectEquality(t, len(in), 0)
	in = p.process(decode([]byte{byte(KeyEsc)}))
	test.ExpectEquality(t, len(in), 0)
	in = p.process(decode([]byte("q")))
	test.DemandEquality(t, len(in), 1)
	test.ExpectEquality(t, in[0], Input{Key: 'q'})

	// an empty line is still a line
	in = p.process(decode([]byte("o\r")))
	test.DemandEquality(t, len(in), 1)
	test.ExpectEquality(t, in[0], Input{IsLine: true})
}

func TestProcessorWithoutPrompt(t *testing.T) {
	p := &processor{}
	in := p.process(decode([]byte("o")))
	test.DemandEquality(t, len(in), 1)
	test.ExpectEquality(t, in[0], Input{Key: 'o'})
}
