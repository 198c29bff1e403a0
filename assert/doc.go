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

// Package assert contains functions for checking that functions with a
// thread affinity are called from the correct goroutine. SDL window functions
// for example must only ever be called from the main thread.
package assert
