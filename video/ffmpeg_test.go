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

package video_test

import (
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/prism/curated"
	"github.com/jetsetilly/prism/test"
	"github.com/jetsetilly/prism/video"
)

// creates a short test video. the test is skipped if ffmpeg is not available
func testVideo(t *testing.T) string {
	t.Helper()

	if _, err := exec.LookPath("ffmpeg"); err != nil {
		t.Skip("ffmpeg not installed")
	}
	if _, err := exec.LookPath("ffprobe"); err != nil {
		t.Skip("ffprobe not installed")
	}

	pth := filepath.Join(t.TempDir(), "testsrc.avi")
	cmd := exec.Command("ffmpeg", "-v", "error",
		"-f", "lavfi", "-i", "testsrc=size=32x24:rate=3",
		"-frames:v", "6",
		"-c:v", "mjpeg", "-pix_fmt", "yuvj420p",
		pth)
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Skipf("cannot create test video: %v: %s", err, out)
	}

	return pth
}

func TestFFMPEG(t *testing.T) {
	vid, err := video.Open(testVideo(t))
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, vid.Width(), 32)
	test.ExpectEquality(t, vid.Height(), 24)
	test.ExpectApproximate(t, vid.FPS(), 3.0, 0.01)
	test.ExpectEquality(t, vid.FrameCount(), 6)

	for i := 0; i < 6; i++ {
		img, err := vid.Frame(i)
		test.DemandSuccess(t, err, i)
		test.ExpectEquality(t, img.Bounds().Dx(), 32, i)
		test.ExpectEquality(t, img.Bounds().Dy(), 24, i)
	}

	// reading past the end of the stream
	_, err = vid.Frame(6)
	test.ExpectSuccess(t, curated.Is(err, video.EndOfStream))

	// non-sequential access restarts the decoder
	img, err := vid.Frame(2)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, img.Bounds().Dx(), 32)

	img, err = vid.Frame(0)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, img.Bounds().Dx(), 32)

	_, err = vid.Frame(-1)
	test.ExpectSuccess(t, curated.Is(err, video.InvalidFrame))

	test.ExpectSuccess(t, vid.Close())
	test.ExpectSuccess(t, vid.Close())

	_, err = vid.Frame(1)
	test.ExpectSuccess(t, curated.Is(err, video.UseAfterClose))
}

func TestOpenFailure(t *testing.T) {
	pth := testVideo(t)

	_, err := video.Open(filepath.Join(filepath.Dir(pth), "missing.avi"))
	test.ExpectFailure(t, err)
}
