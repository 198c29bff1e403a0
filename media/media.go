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

package media

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jetsetilly/prism/curated"
)

// Sentinal error patterns.
const (
	UnsupportedMedia = "media: unsupported media: %s"
	NotInList        = "media: %s is not in the list of media files"
)

// Kind is the type of media a file contains.
type Kind int

// List of valid Kind values.
const (
	Unsupported Kind = iota
	Image
	Video
)

func (k Kind) String() string {
	switch k {
	case Image:
		return "image"
	case Video:
		return "video"
	}
	return "unsupported"
}

// ImageExtensions is the list of recognised image file extensions.
var ImageExtensions = []string{"bmp", "gif", "jpeg", "jpg", "png", "ppm"}

// VideoExtensions is the list of recognised video file extensions.
var VideoExtensions = []string{"avi", "mkv", "mov", "mp4", "mpg", "mpeg"}

// Classify returns the Kind of media implied by the file's extension.
func Classify(path string) Kind {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	for _, e := range ImageExtensions {
		if ext == e {
			return Image
		}
	}
	for _, e := range VideoExtensions {
		if ext == e {
			return Video
		}
	}
	return Unsupported
}

// Enumerate returns the list of media files in the same directory as path,
// sorted without regard to case, and the index of path in that list.
//
// The file at path must itself be a recognised media file.
func Enumerate(path string) ([]string, int, error) {
	if Classify(path) == Unsupported {
		return nil, -1, curated.Errorf(UnsupportedMedia, path)
	}

	path = filepath.Clean(path)

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		return nil, -1, curated.Errorf("media: %v", err)
	}

	files := make([]string, 0, len(entries))
	for _, d := range entries {
		if d.IsDir() {
			continue
		}
		if Classify(d.Name()) == Unsupported {
			continue
		}
		files = append(files, filepath.Join(filepath.Dir(path), d.Name()))
	}

	Sort(files)

	for i, f := range files {
		if f == path {
			return files, i, nil
		}
	}

	return nil, -1, curated.Errorf(NotInList, path)
}

// Sort orders the list of files without regard to case. Files that differ
// only by case are ordered by a case sensitive comparison.
func Sort(files []string) {
	sort.SliceStable(files, func(i, j int) bool {
		a := strings.ToLower(files[i])
		b := strings.ToLower(files[j])
		if a == b {
			return files[i] < files[j]
		}
		return a < b
	})
}
