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
	"io"
	"unicode"
)

// result of a key press in line input mode
type lineResult int

const (
	lineEditing lineResult = iota
	lineDone
	lineCancelled
)

// lineEditor collects printable keys until enter or escape is pressed. Only
// appending and backspace are supported.
type lineEditor struct {
	buf []rune

	// echo is written to as the line is edited. can be nil
	echo io.Writer
}

func (ed *lineEditor) print(s string) {
	if ed.echo != nil {
		_, _ = io.WriteString(ed.echo, s)
	}
}

func (ed *lineEditor) edit(k Key) lineResult {
	switch k {
	case KeyEnter:
		ed.print("\r\n")
		return lineDone
	case KeyEsc, KeyInterrupt:
		ed.print("\r\n")
		return lineCancelled
	case KeyBackspace, KeyDelete:
		if len(ed.buf) > 0 {
			ed.buf = ed.buf[:len(ed.buf)-1]
			ed.print("\b \b")
		}
	default:
		if k < KeyUp && unicode.IsPrint(rune(k)) {
			ed.buf = append(ed.buf, rune(k))
			ed.print(string(rune(k)))
		}
	}
	return lineEditing
}

func (ed *lineEditor) String() string {
	return string(ed.buf)
}

func (ed *lineEditor) reset() {
	ed.buf = ed.buf[:0]
}
