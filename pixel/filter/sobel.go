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

// 3x3 Sobel kernels, row-major, center at index 4.
var (
	sobelX = [9]int{-1, 0, 1, -2, 0, 2, -1, 0, 1}
	sobelY = [9]int{-1, -2, -1, 0, 0, 0, 1, 2, 1}
)

// Sobel computes the gradient magnitude of a grayscale image with the 3x3
// Sobel operator, using the L1 approximation |sx|+|sy| clamped to [0, 255].
// Neighbors outside the image contribute nothing, so magnitudes are biased
// low along the border; callers should treat border pixels as
// lower-confidence. RGB input is a *pixel.FormatError.
func Sobel(img *pixel.Image) (*pixel.Image, error) {
	if img.Format() != pixel.FormatGray {
		return nil, &pixel.FormatError{Op: "sobel", Want: pixel.FormatGray, Got: img.Format()}
	}

	width, height := img.Width(), img.Height()
	src := img.Data()
	out := make([]byte, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var sx, sy int
			for ky := 0; ky < 3; ky++ {
				iy := y + ky - 1
				if iy < 0 || iy >= height {
					continue
				}
				for kx := 0; kx < 3; kx++ {
					ix := x + kx - 1
					if ix < 0 || ix >= width {
						continue
					}
					v := int(src[iy*width+ix])
					sx += v * sobelX[ky*3+kx]
					sy += v * sobelY[ky*3+kx]
				}
			}
			mag := absInt(sx) + absInt(sy)
			if mag > 255 {
				mag = 255
			}
			out[y*width+x] = byte(mag)
		}
	}
	return pixel.NewGray(width, height, out)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
