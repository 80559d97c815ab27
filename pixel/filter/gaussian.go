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

import (
	"fmt"
	"math"

	"github.com/ajroetker/go-pixel/pixel"
)

// GaussianKernel builds a normalized 1-D Gaussian kernel with ksize taps:
// exp(-i²/(2σ²)) for i in [-k, k] with k = ksize/2, divided by the sample
// sum so the kernel integrates to one. ksize must be odd and positive and
// sigma strictly positive.
func GaussianKernel(ksize int, sigma float64) ([]float64, error) {
	if ksize < 1 || ksize%2 == 0 {
		return nil, fmt.Errorf("filter: gaussian kernel size %d must be odd and positive", ksize)
	}
	if sigma <= 0 {
		return nil, fmt.Errorf("filter: gaussian sigma %v must be positive", sigma)
	}

	kernel := make([]float64, ksize)
	k := ksize / 2
	var sum float64
	for i := -k; i <= k; i++ {
		v := math.Exp(-float64(i*i) / (2 * sigma * sigma))
		kernel[i+k] = v
		sum += v
	}
	for i := range kernel {
		kernel[i] /= sum
	}
	return kernel, nil
}

// GaussianBlur smooths a grayscale image with a separable Gaussian: one
// horizontal 1-D pass followed by one vertical pass with the same kernel,
// equivalent to the full 2-D convolution at O(2·ksize) per pixel instead of
// O(ksize²).
//
// Borders use BorderSkip: out-of-bounds taps are dropped and the remaining
// weights are not renormalized, so output attenuates toward the edges. Use
// GaussianBlurBorder to pick a different policy. RGB input is a
// *pixel.FormatError.
func GaussianBlur(img *pixel.Image, ksize int, sigma float64) (*pixel.Image, error) {
	return GaussianBlurBorder(img, ksize, sigma, BorderSkip)
}

// GaussianBlurBorder is GaussianBlur with an explicit border policy for both
// convolution passes.
func GaussianBlurBorder(img *pixel.Image, ksize int, sigma float64, border BorderPolicy) (*pixel.Image, error) {
	if img.Format() != pixel.FormatGray {
		return nil, &pixel.FormatError{Op: "gaussian blur", Want: pixel.FormatGray, Got: img.Format()}
	}
	if border < BorderSkip || border > BorderMirror {
		return nil, fmt.Errorf("filter: unknown border policy %d", border)
	}
	kernel, err := GaussianKernel(ksize, sigma)
	if err != nil {
		return nil, err
	}

	tmp := convolve1D(img, kernel, true, border)
	return convolve1D(tmp, kernel, false, border), nil
}
