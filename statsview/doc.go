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

// Package statsview runs a local HTTP server showing runtime statistics
// while media is playing. Useful for watching the allocation rate of the
// frame pipeline.
//
// The server is only included when the program is built with the statsview
// build tag:
//
//	go build -tags statsview
//
// Statistics are then viewable at localhost:12700/debug/statsview, with the
// standard pprof pages under localhost:12700/debug/pprof/
package statsview
