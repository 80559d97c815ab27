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

//go:build amd64

package filter

import "golang.org/x/sys/cpu"

func init() {
	// AVX2 is the floor a vectorized pixel kernel would target on x86-64.
	// SSE2 is universal on amd64 but too narrow to pay for the dispatch.
	hasSIMD = cpu.X86.HasAVX2
}
