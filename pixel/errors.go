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

package pixel

import "fmt"

// ShapeError reports a buffer whose length disagrees with the requested
// dimensions, or a negative dimension. It is returned at construction and
// never deferred into a filter.
type ShapeError struct {
	Format Format
	Width  int
	Height int
	Len    int
}

func (e *ShapeError) Error() string {
	if e.Width < 0 || e.Height < 0 {
		return fmt.Sprintf("pixel: negative dimensions %dx%d", e.Width, e.Height)
	}
	return fmt.Sprintf("pixel: %s image %dx%d requires %d bytes, got %d",
		e.Format, e.Width, e.Height, e.Width*e.Height*e.Format.Channels(), e.Len)
}

// FormatError reports a format-specific operation applied to an image of the
// wrong pixel format. Reshaping into the expected format is the caller's
// responsibility; it is never inferred.
type FormatError struct {
	Op   string // operation that rejected the image, e.g. "sobel"
	Want Format
	Got  Format
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("pixel: %s requires a %s image, got %s", e.Op, e.Want, e.Got)
}
