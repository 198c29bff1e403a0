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

// Package media classifies files by extension, enumerates the media files in a
// directory and loads still images.
//
// Recognised extensions are matched without regard to case. Images are decoded
// with the standard library for png, jpeg and gif, with golang.org/x/image for
// bmp and with github.com/spakin/netpbm for ppm.
package media
