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

package gui

// EventID identifies the type of event.
type EventID int

// list of valid events.
const (
	// the user wants the program to quit
	EventQuit EventID = iota

	// a window has been closed. the data is EventDataWindow
	EventWindowClose

	// a window has changed size. the data is EventDataWindow
	EventWindowResized

	// a key has been pressed or released. the data is EventDataKeyboard
	EventKeyboard
)

// KeyMod identifies the modifier key held down during a keyboard event.
type KeyMod int

// list of valid key modifiers.
const (
	KeyModNone KeyMod = iota
	KeyModShift
	KeyModCtrl
	KeyModAlt
)

// EventData represents the data that is associated with an event.
type EventData interface{}

// Event is the structure that is passed over the event channel.
type Event struct {
	ID   EventID
	Data EventData
}

// EventDataKeyboard is the data that accompanies EventKeyboard events.
type EventDataKeyboard struct {
	Key  string
	Down bool
	Mod  KeyMod
}

// EventDataWindow is the data that accompanies window events.
type EventDataWindow struct {
	Title string
}
