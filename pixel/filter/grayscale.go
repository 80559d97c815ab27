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

// Luma coefficients from ITU-T T.800 Table G.2 (the Rec. 601 weights).
const (
	lumaR = 0.299
	lumaG = 0.587
	lumaB = 0.114
)

// Grayscale converts an RGB image to grayscale using the Rec. 601 luma
// weights, rounding to the nearest byte. A grayscale input is returned as an
// independent copy.
func Grayscale(img *pixel.Image) (*pixel.Image, error) {
	if img.Format() == pixel.FormatGray {
		return img.Clone(), nil
	}

	width, height := img.Width(), img.Height()
	src := img.Data()
	out := make([]byte, width*height)
	for i := range out {
		r := float64(src[i*3])
		g := float64(src[i*3+1])
		b := float64(src[i*3+2])
		out[i] = clampByte(lumaR*r + lumaG*g + lumaB*b + 0.5)
	}
	return pixel.NewGray(width, height, out)
}
