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
	"image"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jetsetilly/prism/curated"
	"github.com/jetsetilly/prism/logger"
)

// QueueLength is the default capacity of the frame queue.
const QueueLength = 10

// Sentinal error patterns.
const (
	InvalidConfig = "pipeline: invalid configuration: %s"
)

// Decoder is the source of video frames.
type Decoder interface {
	// the number of frames per second
	FPS() float64

	// the number of frames in the video. can be inaccurate or zero if the
	// number is unknown
	FrameCount() int

	// a new image for the frame with the index i
	Frame(i int) (*image.RGBA, error)
}

// Presenter is the destination for frames.
type Presenter interface {
	Present(*image.RGBA) error
}

// Config is used to start a new Pipeline.
type Config struct {
	Decoder Decoder

	// Compose is called by the producer for every decoded frame. The function
	// should read current parameters on every call
	Compose func(frame *image.RGBA) (*image.RGBA, error)

	// Preview is called by the producer once per second of video. Can be nil
	// if there is no preview surface
	Preview func(frame *image.RGBA) *image.RGBA

	Display        Presenter
	PreviewSurface Presenter

	// capacity of the frame queue. QueueLength is used if the value is zero
	QueueLength int
}

// Pair is the unit of data in the frame queue.
type Pair struct {
	Index   int
	Display *image.RGBA

	// nil if there is no update for the preview surface
	Preview *image.RGBA
}

// State of the pipeline goroutines.
type State int

// List of valid State values.
const (
	Running State = iota
	Stopping
	Stopped
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Stopping:
		return "stopping"
	}
	return "stopped"
}

// Pipeline is created with Start().
type Pipeline struct {
	cfg Config

	fps      int
	interval time.Duration

	// written by Stop() and read by the producer and consumer on every
	// iteration
	state atomic.Value

	queue chan Pair

	producerCompleted chan bool
	consumerCompleted chan bool

	stop  sync.Once
	stats stats

	started time.Time

	// the duration of the pipeline. set once the pipeline has stopped
	elapsed time.Duration
}

// Start a new pipeline with the specified configuration.
func Start(cfg Config) (*Pipeline, error) {
	if cfg.Decoder == nil {
		return nil, curated.Errorf(InvalidConfig, "no decoder")
	}
	if cfg.Compose == nil {
		return nil, curated.Errorf(InvalidConfig, "no compose function")
	}
	if cfg.Display == nil {
		return nil, curated.Errorf(InvalidConfig, "no display")
	}
	if cfg.QueueLength <= 0 {
		cfg.QueueLength = QueueLength
	}

	pl := &Pipeline{
		cfg:               cfg,
		fps:               max(int(cfg.Decoder.FPS()), 1),
		queue:             make(chan Pair, cfg.QueueLength),
		producerCompleted: make(chan bool, 1),
		consumerCompleted: make(chan bool, 1),
		started:           time.Now(),
	}
	pl.interval = time.Second / time.Duration(pl.fps)
	pl.state.Store(Running)

	go pl.producer()
	go pl.consumer()

	logger.Logf(logger.Allow, "pipeline", "started at %d fps", pl.fps)

	return pl, nil
}

// FPS returns the rate at which frames are presented.
func (pl *Pipeline) FPS() int {
	return pl.fps
}

// State returns the current state of the pipeline.
func (pl *Pipeline) State() State {
	return pl.state.Load().(State)
}

func (pl *Pipeline) running() bool {
	return pl.state.Load().(State) == Running
}

// Stop the pipeline. The function blocks until both the producer and the
// consumer have ended. Safe to call more than once.
func (pl *Pipeline) Stop() Stats {
	pl.stop.Do(func() {
		pl.state.Store(Stopping)
		<-pl.producerCompleted
		<-pl.consumerCompleted
		pl.elapsed = time.Since(pl.started)
		pl.state.Store(Stopped)
		logger.Logf(logger.Allow, "pipeline", "stopped: %s", pl.Stats())
	})
	return pl.Stats()
}

// Stats returns the statistics for the pipeline so far.
func (pl *Pipeline) Stats() Stats {
	if pl.State() == Stopped {
		return pl.stats.snapshot(pl.elapsed, pl.fps)
	}
	return pl.stats.snapshot(time.Since(pl.started), pl.fps)
}

func (pl *Pipeline) producer() {
	defer func() {
		// a closed queue is the signal to the consumer that no more frames will
		// be produced
		close(pl.queue)
		pl.producerCompleted <- true
	}()

	count := pl.cfg.Decoder.FrameCount()
	timeout := 2 * pl.interval

	var i int
	var produced int

	for pl.running() {
		idx := i
		if count > 0 {
			idx = i % count
		}

		frame, err := pl.cfg.Decoder.Frame(idx)
		if err != nil {
			pl.stats.resets.Add(1)
			logger.Logf(logger.Allow, "pipeline", "restarting at frame zero: %v", err)

			// the first frame can't be decoded either. wait before trying again
			if idx == 0 {
				time.Sleep(pl.interval)
			}

			i = 0
			continue
		}
		i = idx + 1

		display, err := pl.cfg.Compose(frame)
		if err != nil {
			pl.stats.skipped.Add(1)
			logger.Log(logger.Allow, "pipeline", err)
			time.Sleep(pl.interval)
			continue
		}

		p := Pair{
			Index:   idx,
			Display: display,
		}

		// once per second of video
		if pl.cfg.Preview != nil && produced%pl.fps == 0 {
			p.Preview = pl.cfg.Preview(frame)
		}
		produced++
		pl.stats.produced.Add(1)

		pl.push(p, timeout)
	}
}

// push pair onto queue. a full queue while the pipeline is running means that
// the consumer is slow and the push is tried again. the pair is dropped if the
// pipeline is stopping
func (pl *Pipeline) push(p Pair, timeout time.Duration) {
	for {
		t := time.NewTimer(timeout)
		select {
		case pl.queue <- p:
			t.Stop()
			return
		case <-t.C:
			if !pl.running() {
				pl.stats.dropped.Add(1)
				return
			}
		}
	}
}

func (pl *Pipeline) consumer() {
	defer func() {
		pl.consumerCompleted <- true
	}()

	for p := range pl.queue {
		if !pl.running() {
			pl.stats.dropped.Add(1)
			return
		}

		if err := pl.cfg.Display.Present(p.Display); err != nil {
			logger.Log(logger.Allow, "pipeline", err)
		}

		if p.Preview != nil && pl.cfg.PreviewSurface != nil {
			if err := pl.cfg.PreviewSurface.Present(p.Preview); err != nil {
				logger.Log(logger.Allow, "pipeline", err)
			}
		}

		pl.stats.displayed.Add(1)

		time.Sleep(pl.interval)
	}
}
