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
	"fmt"
	"image"

	"github.com/jetsetilly/prism/curated"
	"github.com/jetsetilly/prism/gui"
	"github.com/jetsetilly/prism/hologram"
	"github.com/jetsetilly/prism/logger"
	"github.com/jetsetilly/prism/media"
	"github.com/jetsetilly/prism/pipeline"
	"github.com/jetsetilly/prism/prefs"
	"github.com/jetsetilly/prism/video"
)

// Sentinal error patterns.
const (
	LoadFailed      = "session: cannot load %s: %v"
	InvalidDiagonal = "session: diagonal must be between %d and %d inches: %v"
)

// The range of diagonal sizes accepted for manual sizing.
const (
	MinDiagonal = 1
	MaxDiagonal = 99
)

// State of the session.
type State int

// List of valid State values.
const (
	Idle State = iota
	ShowingImage
	PlayingVideo
)

func (s State) String() string {
	switch s {
	case ShowingImage:
		return "showing image"
	case PlayingVideo:
		return "playing video"
	}
	return "idle"
}

// Config for a new Session. The OpenVideo, LoadImage and Enumerate fields can
// be left nil, in which case the default implementations are used.
type Config struct {
	Display gui.Surface
	Preview gui.Surface

	OpenVideo func(path string) (Video, error)
	LoadImage func(path string) (image.Image, error)
	Enumerate func(path string) ([]string, int, error)

	Rig hologram.Rig
}

// Session is the only mutator of playback state.
type Session struct {
	cfg Config

	// sizing preferences. read by the pipeline producer on every frame
	Autosize prefs.Bool
	Diagonal prefs.Float
	Debug    prefs.Bool

	state    State
	media    loaded
	pipeline *pipeline.Pipeline

	files []string
	index int

	// suppress preference hooks while more than one preference is being
	// changed
	batch bool
}

// NewSession is the preferred method of initialisation for the Session type.
func NewSession(cfg Config) (*Session, error) {
	if cfg.Display == nil || cfg.Preview == nil {
		return nil, curated.Errorf("session: display and preview surfaces are required")
	}
	if cfg.OpenVideo == nil {
		cfg.OpenVideo = func(path string) (Video, error) {
			return video.Open(path)
		}
	}
	if cfg.LoadImage == nil {
		cfg.LoadImage = media.LoadImage
	}
	if cfg.Enumerate == nil {
		cfg.Enumerate = media.Enumerate
	}

	s := &Session{cfg: cfg}

	_ = s.Autosize.Set(true)
	_ = s.Diagonal.Set(32)
	_ = s.Debug.Set(false)

	s.Autosize.SetHookPre(func(v prefs.Value) error {
		if s.batch {
			return nil
		}
		return s.validate(hologram.Sizing{Auto: v.(bool), DiagonalInches: s.Diagonal.Load()})
	})
	s.Diagonal.SetHookPre(func(v prefs.Value) error {
		if s.batch {
			return nil
		}
		if err := checkDiagonal(v.(float64)); err != nil {
			return err
		}
		return s.validate(hologram.Sizing{Auto: s.Autosize.Load(), DiagonalInches: v.(float64)})
	})

	refresh := func(_ prefs.Value) error {
		if s.batch {
			return nil
		}
		return s.Refresh()
	}
	s.Autosize.SetHookPost(refresh)
	s.Diagonal.SetHookPost(refresh)
	s.Debug.SetHookPost(refresh)

	return s, nil
}

func (s *Session) String() string {
	if s.state == Idle {
		return s.state.String()
	}
	return fmt.Sprintf("%s: %s (%d of %d)", s.state, s.media, s.index+1, len(s.files))
}

// State returns the current state of the session.
func (s *Session) State() State {
	return s.state
}

// Current returns the path of the currently loaded media. Returns the empty
// string if nothing is loaded.
func (s *Session) Current() string {
	return s.media.path
}

// Files returns a copy of the list of media files and the index of the
// current file in that list.
func (s *Session) Files() ([]string, int) {
	return append([]string{}, s.files...), s.index
}

// Sizing returns the current sizing preferences.
func (s *Session) Sizing() hologram.Sizing {
	return hologram.Sizing{
		Auto:           s.Autosize.Load(),
		DiagonalInches: s.Diagonal.Load(),
	}
}

// Params returns the hologram parameters for the display surface using the
// current preferences. Safe to call from any goroutine.
func (s *Session) Params() hologram.Params {
	return s.params(s.Sizing())
}

func (s *Session) params(sizing hologram.Sizing) hologram.Params {
	d := s.cfg.Display.Dimensions()
	return hologram.Params{
		Width:  d.Width,
		Height: d.Height,
		Sizing: sizing,
		Physical: hologram.Physical{
			WidthMM:  d.WidthMM,
			HeightMM: d.HeightMM,
			DPI:      d.DPI,
		},
		Rig:   s.cfg.Rig,
		Debug: s.Debug.Load(),
	}
}

func (s *Session) compose(src image.Image) (*image.RGBA, error) {
	return hologram.Compose(src, s.Params())
}

func (s *Session) preview(src image.Image) *image.RGBA {
	d := s.cfg.Preview.Dimensions()
	return hologram.Thumbnail(src, d.Width, d.Height)
}

// Open a media file and make the other media files in the same directory
// available to Advance().
func (s *Session) Open(path string) error {
	files, index, err := s.cfg.Enumerate(path)
	if err != nil {
		return curated.Errorf(LoadFailed, path, err)
	}

	if err := s.SelectMedia(files[index]); err != nil {
		return err
	}

	s.files = files
	s.index = index

	return nil
}

// SelectMedia loads the media at path and presents it. The session is not
// changed if the media cannot be loaded.
func (s *Session) SelectMedia(path string) error {
	switch media.Classify(path) {
	case media.Image:
		return s.selectImage(path)
	case media.Video:
		return s.selectVideo(path)
	}
	return curated.Errorf(LoadFailed, path, curated.Errorf(media.UnsupportedMedia, path))
}

func (s *Session) selectImage(path string) error {
	img, err := s.cfg.LoadImage(path)
	if err != nil {
		return curated.Errorf(LoadFailed, path, err)
	}

	disp, err := s.compose(img)
	if err != nil {
		return curated.Errorf(LoadFailed, path, err)
	}

	s.stop()

	s.media = loaded{kind: stillMedia, path: path, img: img}
	s.state = ShowingImage

	s.present(disp, s.preview(img))

	logger.Logf(logger.Allow, "session", "%s", s)

	return nil
}

func (s *Session) selectVideo(path string) error {
	vid, err := s.cfg.OpenVideo(path)
	if err != nil {
		return curated.Errorf(LoadFailed, path, err)
	}

	// the pipeline for any video that is currently playing must be stopped
	// before another pipeline is started
	s.stop()

	pl, err := pipeline.Start(pipeline.Config{
		Decoder: vid,
		Compose: func(frame *image.RGBA) (*image.RGBA, error) {
			return s.compose(frame)
		},
		Preview: func(frame *image.RGBA) *image.RGBA {
			return s.preview(frame)
		},
		Display:        s.cfg.Display,
		PreviewSurface: s.cfg.Preview,
	})
	if err != nil {
		_ = vid.Close()
		s.clearSurfaces()
		return curated.Errorf(LoadFailed, path, err)
	}

	s.media = loaded{kind: videoMedia, path: path, vid: vid}
	s.pipeline = pl
	s.state = PlayingVideo

	logger.Logf(logger.Allow, "session", "%s", s)

	return nil
}

// stop any running pipeline and close the video. the pipeline is guaranteed
// to have finished with the video before it is closed
func (s *Session) stop() {
	if s.media.kind == videoMedia {
		if s.pipeline != nil {
			s.pipeline.Stop()
			s.pipeline = nil
		}
		if err := s.media.vid.Close(); err != nil {
			logger.Log(logger.Allow, "session", err)
		}
	}
	s.media = loaded{}
	s.state = Idle
}

// Stop playback of any video and forget the current media. Surfaces are not
// cleared.
func (s *Session) Stop() {
	s.stop()
}

func (s *Session) present(disp *image.RGBA, prev *image.RGBA) {
	if err := s.cfg.Display.Present(disp); err != nil {
		logger.Log(logger.Allow, "session", err)
	}
	if err := s.cfg.Preview.Present(prev); err != nil {
		logger.Log(logger.Allow, "session", err)
	}
}

func (s *Session) clearSurfaces() {
	if err := s.cfg.Display.Clear(); err != nil {
		logger.Log(logger.Allow, "session", err)
	}
	if err := s.cfg.Preview.Clear(); err != nil {
		logger.Log(logger.Allow, "session", err)
	}
}

// Advance moves through the list of media files by step, which can be
// negative, wrapping around at either end of the list. Files that cannot be
// loaded are logged and skipped over. Does nothing if the list is empty.
func (s *Session) Advance(step int) error {
	n := len(s.files)
	if n == 0 {
		return nil
	}

	dir := 1
	if step < 0 {
		dir = -1
	}

	idx := s.index + step
	var err error

	for range n {
		idx = ((idx % n) + n) % n

		err = s.SelectMedia(s.files[idx])
		if err == nil {
			s.index = idx
			return nil
		}
		logger.Log(logger.Allow, "session", err)

		if step == 0 {
			break
		}
		idx += dir
	}

	return err
}

// Refresh composes the current image again. Should be called whenever the
// display surface changes size. Video frames always use current parameters
// and so do not need refreshing.
func (s *Session) Refresh() error {
	if s.state != ShowingImage {
		return nil
	}

	disp, err := s.compose(s.media.img)
	if err != nil {
		return err
	}

	s.present(disp, s.preview(s.media.img))

	return nil
}

func checkDiagonal(d float64) error {
	if d < MinDiagonal || d > MaxDiagonal {
		return curated.Errorf(InvalidDiagonal, MinDiagonal, MaxDiagonal, d)
	}
	return nil
}

// validate the sizing against the current display. nothing needs to be
// validated if there is nothing to show
func (s *Session) validate(sizing hologram.Sizing) error {
	if s.state == Idle {
		return nil
	}
	_, err := hologram.NewLayout(s.params(sizing))
	return err
}

// Resize changes the sizing preferences. The diagonal is ignored if sizing is
// Auto and the value is zero. The current image is composed again with the
// new values and any video playing will use the new values from the next
// frame.
func (s *Session) Resize(sizing hologram.Sizing) error {
	setDiagonal := !sizing.Auto || sizing.DiagonalInches != 0

	if setDiagonal {
		if err := checkDiagonal(sizing.DiagonalInches); err != nil {
			return err
		}
	} else {
		sizing.DiagonalInches = s.Diagonal.Load()
	}

	if err := s.validate(sizing); err != nil {
		return err
	}

	s.batch = true
	_ = s.Autosize.Set(sizing.Auto)
	if setDiagonal {
		_ = s.Diagonal.Set(sizing.DiagonalInches)
	}
	s.batch = false

	logger.Logf(logger.Allow, "session", "sizing: auto=%v diagonal=%.0f", sizing.Auto, s.Diagonal.Load())

	return s.Refresh()
}

// Clear stops any video, forgets the current media and the list of files, and
// clears both surfaces.
func (s *Session) Clear() {
	s.stop()
	s.files = nil
	s.index = 0
	s.clearSurfaces()
	logger.Log(logger.Allow, "session", "cleared")
}
