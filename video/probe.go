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
	"bufio"
	"math"
	"strconv"
	"strings"

	"github.com/jetsetilly/prism/curated"
)

// metadata for the first video stream in a file
type probe struct {
	width  int
	height int
	fps    float64

	// zero if the number of frames is unknown
	count int
}

var probeArgs = []string{
	"-v", "error",
	"-select_streams", "v:0",
	"-show_entries", "stream=width,height,r_frame_rate,nb_frames,duration",
	"-of", "default=noprint_wrappers=1",
}

// parseProbe parses the output of ffprobe when run with probeArgs.
func parseProbe(output string) (probe, error) {
	var p probe
	var duration float64
	var err error

	scanner := bufio.NewScanner(strings.NewReader(output))
	for scanner.Scan() {
		key, value, ok := strings.Cut(strings.TrimSpace(scanner.Text()), "=")
		if !ok {
			continue
		}

		switch key {
		case "width":
			p.width, err = strconv.Atoi(value)
			if err != nil {
				return probe{}, curated.Errorf("ffprobe: width: %v", err)
			}
		case "height":
			p.height, err = strconv.Atoi(value)
			if err != nil {
				return probe{}, curated.Errorf("ffprobe: height: %v", err)
			}
		case "r_frame_rate":
			p.fps, err = parseRate(value)
			if err != nil {
				return probe{}, err
			}
		case "nb_frames":
			// N/A for some containers
			if n, err := strconv.Atoi(value); err == nil {
				p.count = n
			}
		case "duration":
			if d, err := strconv.ParseFloat(value, 64); err == nil {
				duration = d
			}
		}
	}

	if p.width <= 0 || p.height <= 0 {
		return probe{}, curated.Errorf("ffprobe: no video stream")
	}
	if p.fps <= 0 {
		return probe{}, curated.Errorf("ffprobe: no frame rate")
	}

	if p.count <= 0 && duration > 0 {
		p.count = int(math.Round(duration * p.fps))
	}

	return p, nil
}

// parseRate parses a frame rate in the form "30000/1001" or "25".
func parseRate(rate string) (float64, error) {
	num, den, ok := strings.Cut(rate, "/")

	n, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, curated.Errorf("ffprobe: frame rate: %v", err)
	}
	if !ok {
		return n, nil
	}

	d, err := strconv.ParseFloat(den, 64)
	if err != nil {
		return 0, curated.Errorf("ffprobe: frame rate: %v", err)
	}
	if d == 0 {
		return 0, nil
	}

	return n / d, nil
}
