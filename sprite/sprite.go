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

package sprite

import (
	"encoding/binary"
)

// SpriteImage is one cut sprite: its size, the offset of its logical origin
// to the top-left pixel, and the per-row jump table followed by RLE pixel
// runs. A sprite with no data is empty and is never stored in the output.
type SpriteImage struct {
	Width   uint16
	Height  uint16
	XOffset int16
	YOffset int16

	data []byte
}

func (spr *SpriteImage) IsEmpty() bool {
	return len(spr.data) == 0
}

// Data returns the jump table and RLE runs, or nil for an empty sprite.
func (spr *SpriteImage) Data() []byte {
	return spr.data
}

// CopySprite cuts the rectangle (xpos, ypos, xsize, ysize) out of img. With
// crop set, fully transparent border rows and columns are removed while
// xoffset/yoffset are adjusted so the logical origin stays fixed. A fully
// transparent region becomes an empty sprite.
func (spr *SpriteImage) CopySprite(img *Image, xoffset, yoffset, xpos, ypos, xsize, ysize int, crop bool) error {
	spr.data = nil
	spr.Width = 0
	spr.Height = 0
	spr.XOffset = 0
	spr.YOffset = 0

	if !img.Is8bpp() {
		return errNot8bpp()
	}
	imgWidth := img.Width()
	imgHeight := img.Height()
	switch {
	case xpos < 0 || ypos < 0:
		return errBadSpriteRect("negative starting position")
	case xpos >= imgWidth || ypos >= imgHeight:
		return errBadSpriteRect("starting position beyond image")
	case xsize < 0 || ysize < 0:
		return errBadSpriteRect("negative sprite size")
	case xpos+xsize > imgWidth:
		return errBadSpriteRect("sprite too wide")
	case ypos+ysize > imgHeight:
		return errBadSpriteRect("sprite too high")
	}

	if crop {
		for xsize > 0 && img.isEmpty(xpos, ypos, 0, 1, ysize) {
			xpos++
			xsize--
			xoffset++
		}
		for ysize > 0 && img.isEmpty(xpos, ypos, 1, 0, xsize) {
			ypos++
			ysize--
			yoffset++
		}
		for xsize > 0 && img.isEmpty(xpos+xsize-1, ypos, 0, 1, ysize) {
			xsize--
		}
		for ysize > 0 && img.isEmpty(xpos, ypos+ysize-1, 1, 0, xsize) {
			ysize--
		}
	}

	if xsize == 0 || ysize == 0 {
		return nil
	}

	data := img.encode(xpos, ypos, xsize, ysize)
	if data == nil {
		return nil
	}
	spr.Width = uint16(xsize)
	spr.Height = uint16(ysize)
	spr.XOffset = int16(xoffset)
	spr.YOffset = int16(yoffset)
	spr.data = data
	return nil
}

// encode RLE-encodes the region. Per row: runs of a gap byte (0..127,
// high bit marks the last run of the row) and a count byte, followed by
// count palette indices. Gaps over 127 pixels become pure-gap runs, runs
// over 255 opaque pixels are split. The result starts with a u32 jump table
// holding each row's offset from the start of the data, 0 for fully
// transparent rows. A region without opaque pixels encodes to nil.
func (img *Image) encode(xpos, ypos, width, height int) []byte {
	rowSizes := make([]int, height)
	dataSize := 0
	for y := 0; y < height; y++ {
		length := 0
		lastStored := 0
		for x := 0; x < width; x++ {
			if img.isTransparent(xpos+x, ypos+y) {
				continue
			}
			start := x
			x++
			for x < width && !img.isTransparent(xpos+x, ypos+y) {
				x++
			}
			for lastStored+127 < start {
				length += 2
				lastStored += 127
			}
			for x-start > 255 {
				length += 2 + 255
				start += 255
				lastStored = start
			}
			length += 2 + x - start
			lastStored = x
		}
		rowSizes[y] = length
		dataSize += length
	}
	if dataSize == 0 {
		return nil
	}

	dataSize += 4 * height
	data := make([]byte, 0, dataSize)

	offset := uint32(4 * height)
	for y := 0; y < height; y++ {
		value := uint32(0)
		if rowSizes[y] != 0 {
			value = offset
		}
		data = binary.LittleEndian.AppendUint32(data, value)
		offset += uint32(rowSizes[y])
	}

	for y := 0; y < height; y++ {
		if rowSizes[y] == 0 {
			continue
		}
		lastHeader := -1
		lastStored := 0
		for x := 0; x < width; x++ {
			if img.isTransparent(xpos+x, ypos+y) {
				continue
			}
			start := x
			x++
			for x < width && !img.isTransparent(xpos+x, ypos+y) {
				x++
			}
			for lastStored+127 < start {
				data = append(data, 127, 0)
				lastStored += 127
			}
			for x-start > 255 {
				data = append(data, uint8(start-lastStored), 255)
				for ii := 0; ii < 255; ii++ {
					data = append(data, img.Pixel(xpos+start, ypos+y))
					start++
				}
				lastStored = start
			}
			lastHeader = len(data)
			data = append(data, uint8(start-lastStored), uint8(x-start))
			for x > start {
				data = append(data, img.Pixel(xpos+start, ypos+y))
				start++
			}
			lastStored = x
		}
		data[lastHeader] |= 128
	}
	return data
}
