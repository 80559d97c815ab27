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

package filter

import "github.com/ajroetker/go-pixel/pixel"

// Threshold maps every sample of a grayscale image to maxval where the
// sample strictly exceeds thresh, and to zero elsewhere. Any byte values are
// accepted for thresh and maxval. RGB input is a *pixel.FormatError.
func Threshold(img *pixel.Image, thresh, maxval byte) (*pixel.Image, error) {
	if img.Format() != pixel.FormatGray {
		return nil, &pixel.FormatError{Op: "threshold", Want: pixel.FormatGray, Got: img.Format()}
	}

	src := img.Data()
	out := make([]byte, len(src))
	for i, v := range src {
		if v > thresh {
			out[i] = maxval
		}
	}
	return pixel.NewGray(img.Width(), img.Height(), out)
}
