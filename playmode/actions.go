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

import "strings"

// Action is the result of a key press.
type Action int

// List of valid Action values.
const (
	NoAction Action = iota
	Open
	Clear
	Next
	Previous
	ToggleAutosize
	Grow
	Shrink
	ToggleDebug
	DumpState
	Quit
)

func (a Action) String() string {
	switch a {
	case Open:
		return "open"
	case Clear:
		return "clear"
	case Next:
		return "next"
	case Previous:
		return "previous"
	case ToggleAutosize:
		return "autosize"
	case Grow:
		return "diagonal +"
	case Shrink:
		return "diagonal -"
	case ToggleDebug:
		return "debug"
	case DumpState:
		return "dump state"
	case Quit:
		return "quit"
	}
	return "none"
}

// KeyAction returns the action for the named key. Key names can come from
// the terminal or from the SDL windows and are compared case insensitively.
func KeyAction(key string) Action {
	switch strings.ToLower(key) {
	case "o":
		return Open
	case "c":
		return Clear
	case "n", "right":
		return Next
	case "p", "left":
		return Previous
	case "a":
		return ToggleAutosize
	case "+", "=", "keypad +", "up":
		return Grow
	case "-", "keypad -", "down":
		return Shrink
	case "d":
		return ToggleDebug
	case "v":
		return DumpState
	case "q":
		return Quit
	}
	return NoAction
}

// Help is a summary of the keys recognised by KeyAction().
const Help = "o open, c clear, n/p next/previous, a autosize, +/- diagonal, d debug, v dump state, q quit"
