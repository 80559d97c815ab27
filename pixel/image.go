// Copyright 2025 go-pixel Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package pixel provides a row-major pixel buffer with two pixel formats,
// grayscale and interleaved RGB.
//
// An Image has a fixed shape: width, height and format are set at
// construction and validated against the supplied buffer. Filters in the
// filter subpackage treat images as read-only and allocate fresh outputs;
// Pix exists for external collaborators that need in-place access.
package pixel

// Format identifies the pixel layout of an Image.
//
// The set of formats is closed: every operation matches on it exhaustively,
// and a future format (e.g. RGBA) is a new constant here, not a new type.
type Format int

const (
	// FormatGray stores one intensity byte per pixel.
	FormatGray Format = iota

	// FormatRGB stores three interleaved bytes per pixel, R,G,B order.
	FormatRGB
)

// Channels returns the number of bytes per pixel for the format.
func (f Format) Channels() int {
	if f == FormatRGB {
		return 3
	}
	return 1
}

// String returns a human-readable name for the format.
func (f Format) String() string {
	switch f {
	case FormatGray:
		return "gray"
	case FormatRGB:
		return "rgb"
	default:
		return "unknown"
	}
}

// Image is a fixed-shape pixel buffer. Pixels are stored row by row; for
// FormatRGB the three channel bytes of a pixel are contiguous.
type Image struct {
	format Format
	width  int
	height int
	data   []byte
}

// NewGray creates a grayscale image over data, which must hold exactly
// width*height bytes. Ownership of data transfers to the image. Zero
// dimensions are valid and describe an empty image.
func NewGray(width, height int, data []byte) (*Image, error) {
	return newImage(FormatGray, width, height, data)
}

// NewRGB creates an interleaved RGB image over data, which must hold exactly
// width*height*3 bytes. Ownership of data transfers to the image.
func NewRGB(width, height int, data []byte) (*Image, error) {
	return newImage(FormatRGB, width, height, data)
}

func newImage(format Format, width, height int, data []byte) (*Image, error) {
	if width < 0 || height < 0 {
		return nil, &ShapeError{Format: format, Width: width, Height: height, Len: len(data)}
	}
	if len(data) != width*height*format.Channels() {
		return nil, &ShapeError{Format: format, Width: width, Height: height, Len: len(data)}
	}
	return &Image{
		format: format,
		width:  width,
		height: height,
		data:   data,
	}, nil
}

// Width returns the image width in pixels.
func (im *Image) Width() int {
	return im.width
}

// Height returns the image height in pixels.
func (im *Image) Height() int {
	return im.height
}

// Format returns the pixel format.
func (im *Image) Format() Format {
	return im.format
}

// Data returns the backing buffer. Callers must not modify it; use Pix for
// deliberate in-place edits.
func (im *Image) Data() []byte {
	return im.data
}

// Pix returns the backing buffer for in-place editing. No filter in this
// module writes through Pix; every filter allocates a new output image.
func (im *Image) Pix() []byte {
	return im.data
}

// PixOffset returns the buffer index of the first channel byte of the pixel
// at (x, y).
func (im *Image) PixOffset(x, y int) int {
	return (y*im.width + x) * im.format.Channels()
}

// At returns the channel bytes of the pixel at (x, y): one byte for
// FormatGray, three for FormatRGB. It returns nil when (x, y) is outside the
// image. The slice aliases the backing buffer.
func (im *Image) At(x, y int) []byte {
	if x < 0 || x >= im.width || y < 0 || y >= im.height {
		return nil
	}
	i := im.PixOffset(x, y)
	return im.data[i : i+im.format.Channels()]
}

// Clone creates a deep copy of the image.
func (im *Image) Clone() *Image {
	data := make([]byte, len(im.data))
	copy(data, im.data)
	return &Image{
		format: im.format,
		width:  im.width,
		height: im.height,
		data:   data,
	}
}

// Fill sets every channel byte of the image to value.
func (im *Image) Fill(value byte) {
	for i := range im.data {
		im.data[i] = value
	}
}

// Bounds returns the bounding rectangle of the image.
func (im *Image) Bounds() Rect {
	return Rect{X0: 0, Y0: 0, X1: im.width, Y1: im.height}
}

// Rect defines a rectangular pixel region.
type Rect struct {
	X0, Y0 int // Top-left corner (inclusive)
	X1, Y1 int // Bottom-right corner (exclusive)
}

// Width returns the rectangle width.
func (r Rect) Width() int {
	return r.X1 - r.X0
}

// Height returns the rectangle height.
func (r Rect) Height() int {
	return r.Y1 - r.Y0
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.X1 <= r.X0 || r.Y1 <= r.Y0
}

// Intersect returns the intersection of two rectangles.
func (r Rect) Intersect(other Rect) Rect {
	x0 := max(r.X0, other.X0)
	y0 := max(r.Y0, other.Y0)
	x1 := min(r.X1, other.X1)
	y1 := min(r.Y1, other.Y1)
	return Rect{X0: x0, Y0: y0, X1: x1, Y1: y1}
}
