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

package video

import (
	"errors"
	"fmt"
	"image"
	"io"
	"os/exec"
	"path/filepath"
	"sync"

	"github.com/jetsetilly/prism/curated"
	"github.com/jetsetilly/prism/logger"
)

// Sentinal error patterns.
const (
	NotInstalled  = "video: %s not installed"
	UseAfterClose = "video: %s: used after close"
	EndOfStream   = "video: %s: end of stream at frame %d"
	InvalidFrame  = "video: %s: invalid frame number %d"
)

// FFMPEG decodes a single video file.
type FFMPEG struct {
	crit sync.Mutex

	path string
	meta probe

	closed bool

	// the running ffmpeg command and its stdout
	decoder *exec.Cmd
	pipe    io.ReadCloser

	// the frame that will be read next from the pipe
	next int

	// number of times the decoder process has been started
	starts int
}

// Open probes the video file at path and prepares it for decoding. No ffmpeg
// process is started until the first call to Frame().
func Open(path string) (*FFMPEG, error) {
	if _, err := exec.LookPath("ffmpeg"); err != nil {
		return nil, curated.Errorf(NotInstalled, "ffmpeg")
	}
	if _, err := exec.LookPath("ffprobe"); err != nil {
		return nil, curated.Errorf(NotInstalled, "ffprobe")
	}

	args := append([]string{}, probeArgs...)
	args = append(args, path)

	output, err := exec.Command("ffprobe", args...).Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && len(exitErr.Stderr) > 0 {
			return nil, curated.Errorf("video: %s: %s", filepath.Base(path), string(exitErr.Stderr))
		}
		return nil, curated.Errorf("video: %s: %v", filepath.Base(path), err)
	}

	meta, err := parseProbe(string(output))
	if err != nil {
		return nil, curated.Errorf("video: %s: %v", filepath.Base(path), err)
	}

	logger.Logf(logger.Allow, "video", "%s: %dx%d %.2f fps %d frames", filepath.Base(path),
		meta.width, meta.height, meta.fps, meta.count)

	return &FFMPEG{
		path: path,
		meta: meta,
	}, nil
}

// String implements the fmt.Stringer interface.
func (vid *FFMPEG) String() string {
	return filepath.Base(vid.path)
}

// Width returns the width of each frame.
func (vid *FFMPEG) Width() int {
	return vid.meta.width
}

// Height returns the height of each frame.
func (vid *FFMPEG) Height() int {
	return vid.meta.height
}

// FPS returns the frame rate reported by the video file.
func (vid *FFMPEG) FPS() float64 {
	return vid.meta.fps
}

// FrameCount returns the number of frames reported by the video file. A value
// of zero means that the number of frames is unknown.
func (vid *FFMPEG) FrameCount() int {
	return vid.meta.count
}

// Frame returns the frame with the index i. A new image is returned on every
// call.
func (vid *FFMPEG) Frame(i int) (*image.RGBA, error) {
	vid.crit.Lock()
	defer vid.crit.Unlock()

	if vid.closed {
		return nil, curated.Errorf(UseAfterClose, vid)
	}
	if i < 0 {
		return nil, curated.Errorf(InvalidFrame, vid, i)
	}

	if vid.pipe == nil || i != vid.next {
		if err := vid.start(i); err != nil {
			return nil, err
		}
	}

	img := image.NewRGBA(image.Rect(0, 0, vid.meta.width, vid.meta.height))

	_, err := io.ReadFull(vid.pipe, img.Pix)
	if err != nil {
		vid.stop()
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, curated.Errorf(EndOfStream, vid, i)
		}
		return nil, curated.Errorf("video: %s: %v", vid, err)
	}

	vid.next = i + 1

	return img, nil
}

// start the decoder process so that the next frame read from the pipe is the
// frame with index i. must be called with the critical section locked
func (vid *FFMPEG) start(i int) error {
	vid.stop()

	opts := []string{
		"-v", "error",
		"-noautorotate",
	}

	// input seeking
	if i > 0 {
		opts = append(opts, "-ss", fmt.Sprintf("%.3f", float64(i)/vid.meta.fps))
	}

	opts = append(opts,
		"-i", vid.path,
		"-an",
		"-f", "rawvideo",
		"-pix_fmt", "rgba",
		"-", // stdout pipe created below
	)

	vid.decoder = exec.Command("ffmpeg", opts...)

	var err error
	vid.pipe, err = vid.decoder.StdoutPipe()
	if err != nil {
		vid.decoder = nil
		return curated.Errorf("ffmpeg: %v", err)
	}

	err = vid.decoder.Start()
	if err != nil {
		vid.decoder = nil
		vid.pipe = nil
		return curated.Errorf("ffmpeg: %v", err)
	}

	vid.next = i
	vid.starts++

	if i > 0 {
		logger.Logf(logger.Allow, "video", "%s: seeking to frame %d", vid, i)
	}

	return nil
}

// stop the decoder process. must be called with the critical section locked
func (vid *FFMPEG) stop() {
	if vid.decoder == nil {
		return
	}

	vid.pipe.Close()

	// the process may already have exited at the end of the stream
	_ = vid.decoder.Process.Kill()
	_ = vid.decoder.Wait()

	vid.decoder = nil
	vid.pipe = nil
}

// Close stops any running decoder process. Calls to Frame() after Close()
// will return the UseAfterClose error. It is safe to call Close() more than
// once.
func (vid *FFMPEG) Close() error {
	vid.crit.Lock()
	defer vid.crit.Unlock()

	if vid.closed {
		return nil
	}
	vid.closed = true
	vid.stop()

	logger.Logf(logger.Allow, "video", "%s: closed after %d decoder starts", vid, vid.starts)

	return nil
}
