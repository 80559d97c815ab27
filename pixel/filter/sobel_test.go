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
	"bytes"
	"errors"
	"testing"

	"github.com/ajroetker/go-pixel/pixel"
)

func TestSobel_Uniform(t *testing.T) {
	data := make([]byte, 5*4)
	for i := range data {
		data[i] = 37
	}
	img := mustGray(t, 5, 4, data)

	out, err := Sobel(img)
	if err != nil {
		t.Fatalf("Sobel: %v", err)
	}
	for i, v := range out.Data() {
		if v != 0 {
			t.Fatalf("uniform image has gradient at %d: got %d, want 0", i, v)
		}
	}
}

func TestSobel_CenterEdge(t *testing.T) {
	img := mustGray(t, 3, 3, []byte{
		0, 0, 0,
		0, 255, 255,
		0, 0, 0,
	})

	out, err := Sobel(img)
	if err != nil {
		t.Fatalf("Sobel: %v", err)
	}
	if out.Width() != 3 || out.Height() != 3 {
		t.Errorf("dimensions: got %dx%d, want 3x3", out.Width(), out.Height())
	}
	if center := out.Data()[4]; center <= 200 {
		t.Errorf("center magnitude: got %d, want > 200", center)
	}
}

func TestSobel_HorizontalRamp(t *testing.T) {
	// Single row: only the middle kernel row contributes, and the border
	// skip bias shows in the first column.
	img := mustGray(t, 4, 1, []byte{0, 10, 20, 30})

	out, err := Sobel(img)
	if err != nil {
		t.Fatalf("Sobel: %v", err)
	}
	want := []byte{20, 40, 40, 40}
	if !bytes.Equal(out.Data(), want) {
		t.Errorf("ramp gradient: got %v, want %v", out.Data(), want)
	}
}

func TestSobel_MagnitudeClamped(t *testing.T) {
	img := mustGray(t, 3, 3, []byte{
		0, 0, 255,
		0, 0, 255,
		0, 0, 255,
	})

	out, err := Sobel(img)
	if err != nil {
		t.Fatalf("Sobel: %v", err)
	}
	// sx at the center is 4*255; the L1 magnitude must clamp to 255.
	if out.Data()[4] != 255 {
		t.Errorf("clamped magnitude: got %d, want 255", out.Data()[4])
	}
}

func TestSobel_RGBRejected(t *testing.T) {
	img := mustRGB(t, 1, 1, []byte{1, 2, 3})

	out, err := Sobel(img)
	if out != nil {
		t.Error("Sobel on RGB returned an image")
	}
	var formatErr *pixel.FormatError
	if !errors.As(err, &formatErr) {
		t.Fatalf("got %v, want *pixel.FormatError", err)
	}
	if formatErr.Want != pixel.FormatGray || formatErr.Got != pixel.FormatRGB {
		t.Errorf("error formats: got want=%v got=%v", formatErr.Want, formatErr.Got)
	}
}

func TestSobel_Empty(t *testing.T) {
	img := mustGray(t, 0, 0, nil)
	out, err := Sobel(img)
	if err != nil {
		t.Fatalf("Sobel on empty image: %v", err)
	}
	if len(out.Data()) != 0 {
		t.Errorf("empty input produced %d bytes", len(out.Data()))
	}
}
