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

// Package pipeline keeps decoded and composed video frames flowing to a
// display surface at the frame rate of the video.
//
// A producer goroutine decodes frames in sequence, composes each one, and
// pushes the result into a bounded queue. Once per second of video a preview
// image is also created and pushed alongside the composed frame. A consumer
// goroutine pulls from the queue, presents the frames and then sleeps for the
// duration of one frame.
//
// The frame count reported by the Decoder is not trusted. A failure to decode
// a frame causes the producer to start again from the first frame.
//
// Stop() must be called before the Decoder is closed. Stop() does not return
// until both goroutines have ended, after which the pipeline will never
// access the Decoder again. The Pipeline cannot be restarted.
package pipeline
