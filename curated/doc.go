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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The Is() function checks whether an error was created with a specific
// pattern. The pattern is what differentiates curated errors, so sentinal
// patterns should be stored as a const string, suitably named and commented.
// For example:
//
//	const ScreenTooSmall = "hologram: screen too small: %.1fmm"
//
//	e := curated.Errorf(ScreenTooSmall, 80.0)
//
//	if curated.Is(e, ScreenTooSmall) {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain.
//
//	f := curated.Errorf("session: %v", e)
//
//	if curated.Has(f, ScreenTooSmall) {
//		fmt.Println("true")
//	}
//
// The Error() function implementation for curated errors ensures that the
// error chain is normalised. Specifically, that the chain does not contain
// duplicate adjacent parts. This alleviates the problem of when and how to
// wrap errors. Wrapping "video: %v" around an error that already begins with
// "video: " results in a single "video: " prefix.
//
// For the purposes of this package we think of chains as being composed of
// parts separated by the sub-string ': '. For example:
//
//	part 1: part 2: part 3
//
// Curated errors also implement Unwrap() so that errors.Is() and errors.As()
// from the standard library work through a curated wrapping of a non-curated
// error (an os.PathError for example).
package curated
