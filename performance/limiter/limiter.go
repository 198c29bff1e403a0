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

// Package limiter provides a rough and ready way of limiting events to a fixed
// rate.
//
// A new FpsLimiter can be created with (error handling removed for clarity):
//
//	lmtr, _ := limiter.NewFPSLimiter(60)
//
// A loop can then be stalled with the Wait() function. For example:
//
//	for {
//		lmtr.Wait()
//		service()
//	}
package limiter

import (
	"sync/atomic"
	"time"

	"github.com/jetsetilly/prism/curated"
)

// Sentinal error returned by NewFPSLimiter() and SetLimit().
const InvalidRate = "limiter: invalid rate: %d"

// FpsLimiter triggers a fixed number of times per second.
type FpsLimiter struct {
	ticker *time.Ticker

	framesPerSecond atomic.Int64
}

// NewFPSLimiter is the preferred method of initialisation for FpsLimiter type.
func NewFPSLimiter(framesPerSecond int) (*FpsLimiter, error) {
	if framesPerSecond <= 0 {
		return nil, curated.Errorf(InvalidRate, framesPerSecond)
	}

	lmtr := &FpsLimiter{
		ticker: time.NewTicker(time.Second / time.Duration(framesPerSecond)),
	}
	lmtr.framesPerSecond.Store(int64(framesPerSecond))

	return lmtr, nil
}

// SetLimit changes the rate at which the FpsLimiter triggers.
func (lmtr *FpsLimiter) SetLimit(framesPerSecond int) error {
	if framesPerSecond <= 0 {
		return curated.Errorf(InvalidRate, framesPerSecond)
	}
	lmtr.framesPerSecond.Store(int64(framesPerSecond))
	lmtr.ticker.Reset(time.Second / time.Duration(framesPerSecond))
	return nil
}

// Limit returns the current rate.
func (lmtr *FpsLimiter) Limit() int {
	return int(lmtr.framesPerSecond.Load())
}

// Wait blocks until the next trigger. A trigger that happened while nobody
// was waiting is returned immediately.
func (lmtr *FpsLimiter) Wait() {
	<-lmtr.ticker.C
}

// HasWaited returns true if the trigger has happened. It does not block.
func (lmtr *FpsLimiter) HasWaited() bool {
	select {
	case <-lmtr.ticker.C:
		return true
	default:
		return false
	}
}

// Stop the limiter. Wait() will block forever after the limiter has stopped.
func (lmtr *FpsLimiter) Stop() {
	lmtr.ticker.Stop()
}
