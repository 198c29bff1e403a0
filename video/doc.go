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

// Package video decodes video files by running the ffmpeg and ffprobe
// executables. Both must be in the executable path.
//
// Stream metadata is found with ffprobe when the video is opened. Frames are
// read as raw RGBA data from the stdout of an ffmpeg process. Reading frames in
// sequence uses a single ffmpeg process. Reading any other frame restarts the
// process at the timestamp of the requested frame.
//
// The frame count reported by ffprobe is not always accurate. When the end of
// the stream is reached before the reported frame count the EndOfStream error
// is returned.
package video
