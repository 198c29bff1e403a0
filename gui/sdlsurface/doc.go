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

// Package sdlsurface implements the gui.Surface interface with SDL windows.
// Two windows are created: the display window, which shows the hologram, and
// the preview window.
//
// SDL requires that all window functions are called from the main thread.
// Frames given to Present() are held until the next call to Service(), which
// must only be called from the main thread. The dimensions of each window are
// also updated by Service() and cached for the Dimensions() function.
//
// The display window is opened fullscreen on the second screen if there is
// one. Otherwise it is opened maximised on the primary screen.
package sdlsurface
