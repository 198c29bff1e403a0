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

// Package prefs holds live preference values. The values are stored in atomic
// values so that they can be read from any goroutine without locking. This is
// important for the video pipeline, which reads the hologram sizing values for
// every frame it produces while the control goroutine may be changing them.
//
// Each type can have a hook function that is called just before and just after
// a new value is set. The session uses the post hook to recompose a still
// image whenever a sizing preference changes.
//
// Values are never written to disk.
package prefs
