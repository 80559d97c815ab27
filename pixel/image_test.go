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

package pixel

import (
	"bytes"
	"errors"
	"testing"
)

func TestNewGray(t *testing.T) {
	data := make([]byte, 4*3)
	for i := range data {
		data[i] = byte(i)
	}
	img, err := NewGray(4, 3, data)
	if err != nil {
		t.Fatalf("NewGray: %v", err)
	}
	if img.Width() != 4 || img.Height() != 3 {
		t.Errorf("dimensions: got %dx%d, want 4x3", img.Width(), img.Height())
	}
	if img.Format() != FormatGray {
		t.Errorf("format: got %v, want %v", img.Format(), FormatGray)
	}
	if !bytes.Equal(img.Data(), data) {
		t.Errorf("data: got %v, want %v", img.Data(), data)
	}
}

func TestNewRGB(t *testing.T) {
	data := []byte{255, 0, 0, 0, 255, 0, 0, 0, 255, 255, 255, 0}
	img, err := NewRGB(2, 2, data)
	if err != nil {
		t.Fatalf("NewRGB: %v", err)
	}
	if img.Width() != 2 || img.Height() != 2 {
		t.Errorf("dimensions: got %dx%d, want 2x2", img.Width(), img.Height())
	}
	if img.Format() != FormatRGB {
		t.Errorf("format: got %v, want %v", img.Format(), FormatRGB)
	}
	if !bytes.Equal(img.Data(), data) {
		t.Errorf("data: got %v, want %v", img.Data(), data)
	}
}

func TestNew_ShapeMismatch(t *testing.T) {
	tests := []struct {
		name          string
		format        Format
		width, height int
		dataLen       int
	}{
		{"gray too short", FormatGray, 4, 3, 11},
		{"gray too long", FormatGray, 4, 3, 13},
		{"gray length for rgb", FormatRGB, 2, 2, 4},
		{"rgb too short", FormatRGB, 2, 2, 11},
		{"negative width", FormatGray, -1, 3, 0},
		{"negative height", FormatRGB, 2, -2, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			data := make([]byte, tc.dataLen)
			var err error
			if tc.format == FormatGray {
				_, err = NewGray(tc.width, tc.height, data)
			} else {
				_, err = NewRGB(tc.width, tc.height, data)
			}
			var shapeErr *ShapeError
			if !errors.As(err, &shapeErr) {
				t.Fatalf("got %v, want *ShapeError", err)
			}
			if shapeErr.Width != tc.width || shapeErr.Height != tc.height {
				t.Errorf("error dimensions: got %dx%d, want %dx%d",
					shapeErr.Width, shapeErr.Height, tc.width, tc.height)
			}
		})
	}
}

func TestNew_ZeroDimensions(t *testing.T) {
	img, err := NewGray(0, 5, nil)
	if err != nil {
		t.Fatalf("NewGray(0, 5, nil): %v", err)
	}
	if img.Width() != 0 || img.Height() != 5 {
		t.Errorf("dimensions: got %dx%d, want 0x5", img.Width(), img.Height())
	}
	if len(img.Data()) != 0 {
		t.Errorf("data length: got %d, want 0", len(img.Data()))
	}

	if _, err := NewRGB(0, 0, []byte{}); err != nil {
		t.Errorf("NewRGB(0, 0, empty): %v", err)
	}
}

func TestPixOffset(t *testing.T) {
	gray, _ := NewGray(4, 3, make([]byte, 12))
	if got := gray.PixOffset(2, 1); got != 6 {
		t.Errorf("gray PixOffset(2, 1): got %d, want 6", got)
	}

	rgb, _ := NewRGB(4, 3, make([]byte, 36))
	if got := rgb.PixOffset(2, 1); got != 18 {
		t.Errorf("rgb PixOffset(2, 1): got %d, want 18", got)
	}
}

func TestAt(t *testing.T) {
	rgb, _ := NewRGB(2, 1, []byte{1, 2, 3, 4, 5, 6})
	px := rgb.At(1, 0)
	if !bytes.Equal(px, []byte{4, 5, 6}) {
		t.Errorf("At(1, 0): got %v, want [4 5 6]", px)
	}
	if rgb.At(2, 0) != nil {
		t.Errorf("At(2, 0): got %v, want nil", rgb.At(2, 0))
	}
	if rgb.At(0, -1) != nil {
		t.Errorf("At(0, -1): got %v, want nil", rgb.At(0, -1))
	}
}

func TestClone_Independent(t *testing.T) {
	img, _ := NewGray(2, 2, []byte{1, 2, 3, 4})
	clone := img.Clone()
	clone.Pix()[0] = 99
	if img.Data()[0] != 1 {
		t.Errorf("clone mutation leaked into original: got %d, want 1", img.Data()[0])
	}
	if clone.Width() != 2 || clone.Height() != 2 {
		t.Errorf("clone dimensions: got %dx%d, want 2x2", clone.Width(), clone.Height())
	}
}

func TestPix_MutatesBuffer(t *testing.T) {
	img, _ := NewGray(2, 1, []byte{10, 20})
	img.Pix()[1] = 30
	if img.Data()[1] != 30 {
		t.Errorf("Pix edit not visible through Data: got %d, want 30", img.Data()[1])
	}
}

func TestFill(t *testing.T) {
	img, _ := NewRGB(2, 1, make([]byte, 6))
	img.Fill(7)
	for i, v := range img.Data() {
		if v != 7 {
			t.Fatalf("Data[%d]: got %d, want 7", i, v)
		}
	}
}

func TestFormatString(t *testing.T) {
	if FormatGray.String() != "gray" || FormatRGB.String() != "rgb" {
		t.Errorf("format names: got %q/%q, want gray/rgb", FormatGray, FormatRGB)
	}
	if FormatGray.Channels() != 1 || FormatRGB.Channels() != 3 {
		t.Errorf("channels: got %d/%d, want 1/3", FormatGray.Channels(), FormatRGB.Channels())
	}
}

func TestRect(t *testing.T) {
	img, _ := NewGray(4, 3, make([]byte, 12))
	b := img.Bounds()
	if b.Width() != 4 || b.Height() != 3 {
		t.Errorf("bounds: got %dx%d, want 4x3", b.Width(), b.Height())
	}
	if b.IsEmpty() {
		t.Error("bounds of 4x3 image reported empty")
	}

	got := b.Intersect(Rect{X0: 2, Y0: 1, X1: 10, Y1: 10})
	want := Rect{X0: 2, Y0: 1, X1: 4, Y1: 3}
	if got != want {
		t.Errorf("Intersect: got %+v, want %+v", got, want)
	}
	if !b.Intersect(Rect{X0: 5, Y0: 0, X1: 6, Y1: 3}).IsEmpty() {
		t.Error("disjoint intersection not empty")
	}
}
