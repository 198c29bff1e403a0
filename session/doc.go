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

// Package session owns the currently loaded media and the sizing
// preferences, and moves between the Idle, ShowingImage and PlayingVideo
// states.
//
// A still image is composed once and presented to the display surface. The
// unaltered image is presented to the preview surface. A video is played by
// starting a pipeline, which composes every frame as it is decoded.
//
// Session functions must all be called from the same goroutine. The only
// values that are read by other goroutines are the sizing preferences, which
// are atomic, and the surface dimensions.
//
// Media is always loaded before anything that is currently playing is
// stopped. If the new media cannot be loaded the session is left exactly as
// it was. If it can be loaded then the current pipeline is stopped and its
// video closed, in that order, before the new media is presented.
package session
