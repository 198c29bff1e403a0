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

import "unicode/utf8"

// Key is a single key press. Printable keys are represented by their rune.
type Key rune

// List of non-printable keys.
const (
	KeyNone      Key = 0
	KeyInterrupt Key = 3
	KeyBackspace Key = 8
	KeyEnter     Key = 13
	KeyEsc       Key = 27
	KeyDelete    Key = 127
)

// List of cursor keys. In the unicode private use area so they cannot be
// confused with any printable key.
const (
	KeyUp Key = iota + 0xe000
	KeyDown
	KeyRight
	KeyLeft
)

func (k Key) String() string {
	switch k {
	case KeyNone:
		return "none"
	case KeyInterrupt:
		return "interrupt"
	case KeyBackspace, KeyDelete:
		return "backspace"
	case KeyEnter:
		return "enter"
	case KeyEsc:
		return "esc"
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyRight:
		return "right"
	case KeyLeft:
		return "left"
	}
	return string(rune(k))
}

// decode the bytes from a single read of the terminal. escape sequences for
// the cursor keys arrive in a single read. an escape byte on its own is the
// escape key. unrecognised escape sequences are discarded
func decode(b []byte) []Key {
	var keys []Key

	for len(b) > 0 {
		if b[0] == byte(KeyEsc) {
			if len(b) == 1 {
				keys = append(keys, KeyEsc)
				return keys
			}
			if b[1] == '[' || b[1] == 'O' {
				if len(b) < 3 {
					return keys
				}
				switch b[2] {
				case 'A':
					keys = append(keys, KeyUp)
				case 'B':
					keys = append(keys, KeyDown)
				case 'C':
					keys = append(keys, KeyRight)
				case 'D':
					keys = append(keys, KeyLeft)
				}
				b = b[3:]
				continue
			}
			keys = append(keys, KeyEsc)
			b = b[1:]
			continue
		}

		r, n := utf8.DecodeRune(b)
		b = b[n:]
		if r == utf8.RuneError {
			continue
		}
		if r == '\n' {
			r = rune(KeyEnter)
		}
		keys = append(keys, Key(r))
	}

	return keys
}
