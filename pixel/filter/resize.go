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

	"github.com/ajroetker/go-pixel/pixel"
)

// Backend selects the execution strategy for a resize operation.
type Backend int

const (
	// BackendCPU is the scalar CPU loop.
	BackendCPU Backend = iota

	// BackendSIMD is a vectorized execution strategy. No resize kernel is
	// implemented for it yet; see Available for the hardware probe.
	BackendSIMD

	// BackendGPU is an accelerated execution strategy. No resize kernel is
	// implemented for it yet.
	BackendGPU
)

// String returns a human-readable name for the backend.
func (b Backend) String() string {
	switch b {
	case BackendCPU:
		return "cpu"
	case BackendSIMD:
		return "simd"
	case BackendGPU:
		return "gpu"
	default:
		return "unknown"
	}
}

// Algorithm selects the sampling strategy for a resize operation.
type Algorithm int

const (
	// Nearest samples the source with a floor-based forward mapping.
	Nearest Algorithm = iota

	// Bilinear interpolates linearly between the four nearest source
	// pixels. Not implemented yet.
	Bilinear

	// Bicubic interpolates cubically over a 4x4 source neighborhood. Not
	// implemented yet.
	Bicubic
)

// String returns a human-readable name for the algorithm.
func (a Algorithm) String() string {
	switch a {
	case Nearest:
		return "nearest"
	case Bilinear:
		return "bilinear"
	case Bicubic:
		return "bicubic"
	default:
		return "unknown"
	}
}

// Capability identifies one cell of the Backend x Algorithm resize matrix.
type Capability struct {
	Backend   Backend
	Algorithm Algorithm
}

type resizeFunc func(img *pixel.Image, newWidth, newHeight int) (*pixel.Image, error)

// resizeKernels maps each implemented capability to its kernel. A new backend
// or algorithm lands as a new entry here; Resize and its callers stay
// untouched.
var resizeKernels = map[Capability]resizeFunc{
	{BackendCPU, Nearest}: resizeNearest,
}

// UnsupportedError reports a well-formed resize request naming a capability
// that has no implementation. It is distinct from *pixel.FormatError: the
// request is valid, the kernel simply does not exist yet, and callers may
// fall back to a supported capability.
type UnsupportedError struct {
	Backend   Backend
	Algorithm Algorithm
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("filter: %s %s resize not implemented", e.Backend, e.Algorithm)
}

// Supported reports whether a resize kernel exists for the combination.
func Supported(b Backend, a Algorithm) bool {
	_, ok := resizeKernels[Capability{Backend: b, Algorithm: a}]
	return ok
}

// Capabilities returns the implemented cells of the resize matrix, ordered by
// backend then algorithm.
func Capabilities() []Capability {
	var caps []Capability
	for b := BackendCPU; b <= BackendGPU; b++ {
		for a := Nearest; a <= Bicubic; a++ {
			if Supported(b, a) {
				caps = append(caps, Capability{Backend: b, Algorithm: a})
			}
		}
	}
	return caps
}

// Resize produces a new image of newWidth x newHeight from img using the
// requested backend and algorithm. Both pixel formats are accepted. Zero
// target dimensions are valid and yield an empty image; negative dimensions
// are a *pixel.ShapeError. An unimplemented (backend, algorithm) pair is an
// *UnsupportedError.
func Resize(img *pixel.Image, newWidth, newHeight int, b Backend, a Algorithm) (*pixel.Image, error) {
	if newWidth < 0 || newHeight < 0 {
		return nil, &pixel.ShapeError{Format: img.Format(), Width: newWidth, Height: newHeight}
	}
	kernel, ok := resizeKernels[Capability{Backend: b, Algorithm: a}]
	if !ok {
		return nil, &UnsupportedError{Backend: b, Algorithm: a}
	}
	return kernel(img, newWidth, newHeight)
}

// resizeNearest maps each destination pixel (x, y) to the source pixel at
// (x*width/newWidth, y*height/newHeight). The floor division replicates or
// drops rows and columns depending on scale direction; it is not a rounded
// nearest-neighbor. The channel-count factor makes the same loop serve both
// formats.
func resizeNearest(img *pixel.Image, newWidth, newHeight int) (*pixel.Image, error) {
	width, height := img.Width(), img.Height()
	if (width == 0 || height == 0) && newWidth > 0 && newHeight > 0 {
		return nil, fmt.Errorf("filter: cannot resize empty %dx%d image to %dx%d",
			width, height, newWidth, newHeight)
	}

	ch := img.Format().Channels()
	src := img.Data()
	dst := make([]byte, newWidth*newHeight*ch)
	for y := 0; y < newHeight; y++ {
		srcY := y * height / newHeight
		for x := 0; x < newWidth; x++ {
			srcX := x * width / newWidth
			si := (srcY*width + srcX) * ch
			di := (y*newWidth + x) * ch
			copy(dst[di:di+ch], src[si:si+ch])
		}
	}
	if img.Format() == pixel.FormatRGB {
		return pixel.NewRGB(newWidth, newHeight, dst)
	}
	return pixel.NewGray(newWidth, newHeight, dst)
}
