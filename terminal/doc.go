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

// Package terminal reads key presses from the controlling terminal without
// waiting for a newline. The terminal is put into cbreak mode with the
// github.com/pkg/term package and restored when the Terminal is closed.
//
// A key configured as the prompt key switches the terminal into line input
// mode. The completed line is sent as a single Input. Pressing escape while
// in line input mode cancels the line.
package terminal
