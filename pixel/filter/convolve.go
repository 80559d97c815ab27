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

// BorderPolicy selects how a 1-D convolution treats kernel taps that fall
// outside the image.
type BorderPolicy int

const (
	// BorderSkip drops out-of-bounds taps without renormalizing the
	// remaining weights. The effective kernel sums to less than one near
	// the border, attenuating output there. Numerically identical to zero
	// padding: a dropped tap and a zero-weighted sample add the same
	// nothing.
	BorderSkip BorderPolicy = iota

	// BorderRenormalize drops out-of-bounds taps and divides by the sum of
	// the in-bounds weights, so a uniform image stays uniform up to
	// rounding.
	BorderRenormalize

	// BorderClamp reads the nearest edge sample for out-of-bounds taps.
	BorderClamp

	// BorderMirror reflects out-of-bounds taps back into the image.
	BorderMirror
)

// String returns a human-readable name for the policy.
func (p BorderPolicy) String() string {
	switch p {
	case BorderSkip:
		return "skip"
	case BorderRenormalize:
		return "renormalize"
	case BorderClamp:
		return "clamp"
	case BorderMirror:
		return "mirror"
	default:
		return "unknown"
	}
}

// convolve1D convolves a grayscale image with a 1-D kernel along rows
// (horizontal) or columns (vertical). The caller has already checked the
// format and the border policy. Each output sample is clamped to [0, 255]
// and truncated before storage.
func convolve1D(img *pixel.Image, kernel []float64, horizontal bool, border BorderPolicy) *pixel.Image {
	width, height := img.Width(), img.Height()
	src := img.Data()
	out := make([]byte, len(src))
	k := len(kernel) / 2
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var acc, weight float64
			for i, w := range kernel {
				ix, iy := x, y
				if horizontal {
					ix = x + i - k
				} else {
					iy = y + i - k
				}
				switch border {
				case BorderClamp:
					ix, iy = clampIndex(ix, width), clampIndex(iy, height)
				case BorderMirror:
					ix, iy = mirrorIndex(ix, width), mirrorIndex(iy, height)
				default:
					if ix < 0 || ix >= width || iy < 0 || iy >= height {
						continue
					}
				}
				acc += float64(src[iy*width+ix]) * w
				weight += w
			}
			if border == BorderRenormalize && weight > 0 {
				acc /= weight
			}
			out[y*width+x] = clampByte(acc)
		}
	}
	res, _ := pixel.NewGray(width, height, out)
	return res
}

// clampByte clamps v to [0, 255] and truncates to a byte.
func clampByte(v float64) byte {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return byte(v)
}

// clampIndex returns i clamped to [0, size-1].
func clampIndex(i, size int) int {
	if i < 0 {
		return 0
	}
	if i >= size {
		return size - 1
	}
	return i
}

// mirrorIndex returns the mirrored index for out-of-bounds coordinates.
// Given bounds [0, size), reflects i about the edges until it lands within
// bounds.
func mirrorIndex(i, size int) int {
	if size <= 0 {
		return 0
	}
	if i < 0 {
		i = -i - 1
	}
	if i >= size {
		period := 2 * size
		i = i % period
		if i >= size {
			i = period - i - 1
		}
	}
	return i
}
