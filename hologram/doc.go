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

// Package hologram composes the four mirror image used with a reflective
// pyramid. A source frame is scaled to fit a square bounding box and then
// copied four times around a central square: the top copy as it is, the bottom
// copy flipped vertically, and the left and right copies rotated so that each
// reflection reads upright when viewed through the pyramid.
//
// The size of the bounding box and of the central square depend on the
// physical size of the display. The physical size is either derived from the
// values reported by the display (Auto sizing) or from a user supplied
// diagonal in inches.
//
// Compose() is a pure function. The layout is recomputed on every call and
// nothing is cached; the source frame and the display dimensions usually change
// together.
//
// The Rig type holds the constants that are specific to the physical rig the
// display is mounted in. The default values should be recalibrated against a
// real rig by using the debug overlay.
package hologram
