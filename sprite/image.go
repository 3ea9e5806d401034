// Copyright (c) 2025 The rcdgen authors
//
// Permission to use, copy, modify, and/or distribute this software for any
// purpose with or without fee is hereby granted.
//
// THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH
// REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY
// AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT,
// INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM
// LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR
// OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR
// PERFORMANCE OF THIS SOFTWARE.
//
// SPDX-License-Identifier: 0BSD

// Package sprite loads PNG sheets and cuts RLE-encoded 8bpp sprites from
// them.
package sprite

import (
	"image"
	"image/png"
	"os"
)

// TransparentIndex is the palette index that renders as fully transparent.
const TransparentIndex = 0

// BitMask selects a named bitmask overlay and positions it on the image.
type BitMask struct {
	XPos int
	YPos int
	Type string
}

// Image is a decoded 8bpp paletted or RGBA PNG with an optional bitmask
// overlay. Pixel access is only meaningful for paletted images.
type Image struct {
	width  int
	height int
	pix    []uint8 // palette indices, row-major; nil for RGBA images
	stride int

	mask  *maskInfo
	maskX int
	maskY int
}

// LoadImage decodes the PNG at path. Paletted images and 8-bit truecolour
// images (with or without alpha) are accepted; other formats are rejected.
// The bit depth of a paletted file is not checked: 1-, 2- and 4-bit files
// load like 8-bit ones, with one palette index per pixel.
func LoadImage(path string, mask *BitMask) (*Image, error) {
	fp, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fp.Close()

	decoded, err := png.Decode(fp)
	if err != nil {
		return nil, errNotPng(path, err)
	}
	return fromDecoded(decoded, mask)
}

// FromPaletted wraps an in-memory paletted image. The pixel data is shared,
// not copied.
func FromPaletted(img *image.Paletted, mask *BitMask) (*Image, error) {
	return fromDecoded(img, mask)
}

func fromDecoded(decoded image.Image, mask *BitMask) (*Image, error) {
	bounds := decoded.Bounds()
	img := &Image{
		width:  bounds.Dx(),
		height: bounds.Dy(),
	}
	switch typed := decoded.(type) {
	case *image.Paletted:
		img.pix = typed.Pix
		img.stride = typed.Stride
	case *image.NRGBA, *image.RGBA:
		// RGBA sheets can be opened and measured, but sprites cannot be
		// cut from them.
	default:
		return nil, errBadImageFormat()
	}

	if mask != nil {
		info, err := getMask(mask.Type)
		if err != nil {
			return nil, err
		}
		img.mask = info
		img.maskX = mask.XPos
		img.maskY = mask.YPos
	}
	return img, nil
}

func (img *Image) Width() int {
	return img.width
}

func (img *Image) Height() int {
	return img.height
}

// Is8bpp reports whether the image carries palette indices.
func (img *Image) Is8bpp() bool {
	return img.pix != nil
}

// maskedOut reports whether the overlay hides the pixel. With a mask set,
// pixels outside the mask rectangle are hidden as well.
func (img *Image) maskedOut(x, y int) bool {
	if img.mask == nil {
		return false
	}
	mx := x - img.maskX
	my := y - img.maskY
	if mx < 0 || mx >= img.mask.width || my < 0 || my >= img.mask.height {
		return true
	}
	stride := (img.mask.width + 7) / 8
	b := img.mask.bits[my*stride+mx/8]
	return b&(1<<(mx&7)) == 0
}

// Pixel returns the palette index at (x, y), honouring the mask overlay.
func (img *Image) Pixel(x, y int) uint8 {
	if img.maskedOut(x, y) {
		return TransparentIndex
	}
	return img.pix[y*img.stride+x]
}

func (img *Image) isTransparent(x, y int) bool {
	return img.Pixel(x, y) == TransparentIndex
}

// isEmpty reports whether all pixels on the line starting at (xpos, ypos)
// and stepping by (dx, dy) are transparent.
func (img *Image) isEmpty(xpos, ypos, dx, dy, length int) bool {
	for length > 0 {
		if !img.isTransparent(xpos, ypos) {
			return false
		}
		xpos += dx
		ypos += dy
		length--
	}
	return true
}
