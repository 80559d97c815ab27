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
	"os"
	"strconv"
)

// hasSIMD records whether this CPU exposes the vector extensions a SIMD
// kernel would target. Set by init() in backend_*.go files.
var hasSIMD bool

// SIMDAvailable reports whether the SIMD backend could execute on this CPU.
// Availability is a hardware property; whether a given resize capability is
// actually implemented is reported by Supported.
func SIMDAvailable() bool {
	if noSIMDEnv() {
		return false
	}
	return hasSIMD
}

// Available reports whether operations dispatched to b could run on this
// machine. BackendCPU is always available; BackendGPU requires a device
// runtime this library does not carry.
func Available(b Backend) bool {
	switch b {
	case BackendCPU:
		return true
	case BackendSIMD:
		return SIMDAvailable()
	default:
		return false
	}
}

// noSIMDEnv checks if the PIXEL_NO_SIMD environment variable is set. When
// set, the SIMD backend reports unavailable regardless of CPU capabilities.
// This is useful for testing and debugging.
func noSIMDEnv() bool {
	val := os.Getenv("PIXEL_NO_SIMD")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}
