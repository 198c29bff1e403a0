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

package session

import (
	"io"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/prism/hologram"
)

// snapshot of the session for DumpState()
type snapshot struct {
	State   string
	Current string
	Files   []string
	Index   int

	Sizing hologram.Sizing
	Debug  bool
	Params hologram.Params

	// nil if the layout cannot be calculated for the current display
	Layout *hologram.Layout
	Error  string
}

// DumpState writes a graphviz representation of the session and the current
// hologram layout. Useful when calibrating a rig.
func (s *Session) DumpState(w io.Writer) {
	snap := &snapshot{
		State:   s.state.String(),
		Current: s.media.path,
		Files:   s.files,
		Index:   s.index,
		Sizing:  s.Sizing(),
		Debug:   s.Debug.Load(),
		Params:  s.Params(),
	}

	l, err := hologram.NewLayout(snap.Params)
	if err != nil {
		snap.Error = err.Error()
	} else {
		snap.Layout = &l
	}

	memviz.Map(w, snap)
}
