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

package pipeline

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/jetsetilly/prism/performance"
)

// Stats is a summary of the work done by a Pipeline.
type Stats struct {
	// frames decoded, composed and pushed onto the queue
	Produced int

	// frames presented to the display
	Displayed int

	// frames discarded during shutdown
	Dropped int

	// number of times the producer started again from frame zero
	Resets int

	// frames that could not be composed
	Skipped int

	// time since the pipeline started or the time the pipeline ran for if it
	// has been stopped
	Duration time.Duration

	// the rate at which frames were displayed and how close that is to the
	// target rate as a percentage
	FPS      float64
	Accuracy float64
}

func (s Stats) String() string {
	return fmt.Sprintf("produced %d, displayed %d, dropped %d, resets %d, skipped %d, %.2f fps (%.0f%%)",
		s.Produced, s.Displayed, s.Dropped, s.Resets, s.Skipped, s.FPS, s.Accuracy)
}

type stats struct {
	produced  atomic.Int64
	displayed atomic.Int64
	dropped   atomic.Int64
	resets    atomic.Int64
	skipped   atomic.Int64
}

func (s *stats) snapshot(duration time.Duration, target int) Stats {
	st := Stats{
		Produced:  int(s.produced.Load()),
		Displayed: int(s.displayed.Load()),
		Dropped:   int(s.dropped.Load()),
		Resets:    int(s.resets.Load()),
		Skipped:   int(s.skipped.Load()),
		Duration:  duration,
	}
	st.FPS, st.Accuracy = performance.CalcFPS(st.Displayed, duration, target)
	return st
}
