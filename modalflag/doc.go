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

// Package modalflag wraps the flag package so that a program can have
// several modes of operation, each with its own set of flags.
//
// Arguments are supplied with NewArgs() and parsed in layers. Each layer
// begins with NewMode(), adds the flags and the sub-modes that are valid at
// that point, and then calls Parse():
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("PLAY", "COMPOSE")
//	if r, err := md.Parse(); r != modalflag.ParseContinue {
//		return err
//	}
//
//	switch md.Mode() {
//	case "COMPOSE":
//		md.NewMode()
//		width := md.AddInt("width", 1920, "display width in pixels")
//		...
//	}
//
// The first sub-mode is the default and is selected when the next argument
// is not a recognised mode. Sub-mode comparisons are case insensitive.
//
// Help is printed to the Output writer when the -help flag is seen, in which
// case Parse() returns ParseHelp.
package modalflag
