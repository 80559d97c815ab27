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

// Package filter implements spatial filters over pixel images: resize with a
// pluggable backend/algorithm matrix, Sobel edge detection, binary
// thresholding, separable Gaussian blur, and grayscale conversion.
//
// Every filter is a pure transform. It reads its input, allocates a fresh
// output image, and returns it; inputs are never mutated and input and output
// never alias. Calls are synchronous and re-entrant, so independent images
// can be processed from independent goroutines without coordination.
//
// Errors come in three classes, all typed and catchable with errors.As:
// *pixel.ShapeError for invalid arguments, *pixel.FormatError when a
// grayscale-only filter receives an RGB image, and *UnsupportedError when a
// resize names a (Backend, Algorithm) pair that has no implementation yet.
package filter
