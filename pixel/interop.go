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
	"image"
	"image/color"
)

// FromImage converts a standard library image into an Image. An *image.Gray
// becomes a FormatGray image losslessly; any other source becomes a
// FormatRGB image via NRGBA conversion, dropping alpha. The source is copied,
// never aliased.
func FromImage(src image.Image) *Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()

	if g, ok := src.(*image.Gray); ok {
		data := make([]byte, w*h)
		for y := 0; y < h; y++ {
			row := g.Pix[g.PixOffset(b.Min.X, b.Min.Y+y):]
			copy(data[y*w:(y+1)*w], row[:w])
		}
		im, _ := NewGray(w, h, data)
		return im
	}

	data := make([]byte, w*h*3)
	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(src.At(x, y)).(color.NRGBA)
			data[i] = c.R
			data[i+1] = c.G
			data[i+2] = c.B
			i += 3
		}
	}
	im, _ := NewRGB(w, h, data)
	return im
}

// ToImage converts the image into a standard library image: *image.Gray for
// FormatGray, *image.NRGBA with opaque alpha for FormatRGB. The pixel data is
// copied, never aliased.
func (im *Image) ToImage() image.Image {
	switch im.format {
	case FormatRGB:
		dst := image.NewNRGBA(image.Rect(0, 0, im.width, im.height))
		for p := 0; p < im.width*im.height; p++ {
			si := p * 3
			di := p * 4
			dst.Pix[di] = im.data[si]
			dst.Pix[di+1] = im.data[si+1]
			dst.Pix[di+2] = im.data[si+2]
			dst.Pix[di+3] = 0xff
		}
		return dst
	default:
		dst := image.NewGray(image.Rect(0, 0, im.width, im.height))
		copy(dst.Pix, im.data)
		return dst
	}
}
