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

package sprite_test

import (
	"encoding/binary"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/dashdan/rcdgen/internal/testutil"
	"github.com/dashdan/rcdgen/sprite"
)

var testPalette = color.Palette{
	color.RGBA{0, 0, 0, 0},
	color.RGBA{255, 0, 0, 255},
	color.RGBA{0, 255, 0, 255},
	color.RGBA{0, 0, 255, 255},
}

func newPaletted(width, height int) *image.Paletted {
	return image.NewPaletted(image.Rect(0, 0, width, height), testPalette)
}

func wrap(t *testing.T, img *image.Paletted) *sprite.Image {
	t.Helper()
	wrapped, err := sprite.FromPaletted(img, nil)
	testutil.AssertNoError(t, err)
	return wrapped
}

// decodeSprite expands an encoded sprite back into palette indices, with 0
// for transparent pixels.
func decodeSprite(t *testing.T, spr *sprite.SpriteImage) [][]uint8 {
	t.Helper()
	width := int(spr.Width)
	height := int(spr.Height)
	data := spr.Data()

	rows := make([][]uint8, height)
	for y := 0; y < height; y++ {
		rows[y] = make([]uint8, width)
		offset := binary.LittleEndian.Uint32(data[4*y:])
		if offset == 0 {
			continue
		}
		pos := int(offset)
		x := 0
		for {
			gap := data[pos]
			count := int(data[pos+1])
			pos += 2
			x += int(gap & 127)
			for ii := 0; ii < count; ii++ {
				rows[y][x] = data[pos]
				pos++
				x++
			}
			if gap&128 != 0 {
				break
			}
		}
	}
	return rows
}

func TestCopySpriteRoundTrip(t *testing.T) {
	t.Parallel()

	img := newPaletted(8, 4)
	img.SetColorIndex(1, 0, 1)
	img.SetColorIndex(2, 0, 2)
	img.SetColorIndex(7, 1, 3)
	img.SetColorIndex(0, 3, 1)

	var spr sprite.SpriteImage
	err := spr.CopySprite(wrap(t, img), 0, 0, 0, 0, 8, 4, false)
	testutil.AssertNoError(t, err)
	testutil.ExpectFalse(t, spr.IsEmpty())
	testutil.ExpectEq(t, uint16(8), spr.Width)
	testutil.ExpectEq(t, uint16(4), spr.Height)

	rows := decodeSprite(t, &spr)
	for y := 0; y < 4; y++ {
		for x := 0; x < 8; x++ {
			testutil.ExpectEq(t, img.ColorIndexAt(x, y), rows[y][x])
		}
	}
}

func TestCopySpriteEmptyRowJump(t *testing.T) {
	t.Parallel()

	img := newPaletted(4, 3)
	img.SetColorIndex(1, 0, 1)
	img.SetColorIndex(1, 2, 2)

	var spr sprite.SpriteImage
	err := spr.CopySprite(wrap(t, img), 0, 0, 0, 0, 4, 3, false)
	testutil.AssertNoError(t, err)

	data := spr.Data()
	testutil.ExpectEq(t, uint32(12), binary.LittleEndian.Uint32(data[0:]))
	testutil.ExpectEq(t, uint32(0), binary.LittleEndian.Uint32(data[4:]))
	testutil.ExpectEq(t, uint32(15), binary.LittleEndian.Uint32(data[8:]))
}

func TestCopySpriteLongGap(t *testing.T) {
	t.Parallel()

	img := newPaletted(300, 1)
	img.SetColorIndex(299, 0, 1)

	var spr sprite.SpriteImage
	err := spr.CopySprite(wrap(t, img), 0, 0, 0, 0, 300, 1, false)
	testutil.AssertNoError(t, err)

	// 299 transparent pixels need two full 127-gaps before the run.
	data := spr.Data()[4:]
	testutil.ExpectBytesEq(t, []byte{127, 0, 127, 0, 45 | 128, 1, 1}, data)

	rows := decodeSprite(t, &spr)
	testutil.ExpectEq(t, uint8(1), rows[0][299])
	testutil.ExpectEq(t, uint8(0), rows[0][298])
}

func TestCopySpriteLongRun(t *testing.T) {
	t.Parallel()

	img := newPaletted(300, 1)
	for x := 0; x < 300; x++ {
		img.SetColorIndex(x, 0, 2)
	}

	var spr sprite.SpriteImage
	err := spr.CopySprite(wrap(t, img), 0, 0, 0, 0, 300, 1, false)
	testutil.AssertNoError(t, err)

	data := spr.Data()[4:]
	testutil.ExpectEq(t, uint8(0), data[0])
	testutil.ExpectEq(t, uint8(255), data[1])
	testutil.ExpectEq(t, uint8(0|128), data[2+255])
	testutil.ExpectEq(t, uint8(45), data[2+255+1])

	rows := decodeSprite(t, &spr)
	for x := 0; x < 300; x++ {
		testutil.ExpectEq(t, uint8(2), rows[0][x])
	}
}

func TestCopySpriteCrop(t *testing.T) {
	t.Parallel()

	img := newPaletted(10, 10)
	img.SetColorIndex(4, 5, 1)
	img.SetColorIndex(5, 5, 2)

	var spr sprite.SpriteImage
	err := spr.CopySprite(wrap(t, img), -3, -7, 0, 0, 10, 10, true)
	testutil.AssertNoError(t, err)

	testutil.ExpectEq(t, uint16(2), spr.Width)
	testutil.ExpectEq(t, uint16(1), spr.Height)
	testutil.ExpectEq(t, int16(-3+4), spr.XOffset)
	testutil.ExpectEq(t, int16(-7+5), spr.YOffset)
}

func TestCopySpriteFullyTransparentCrop(t *testing.T) {
	t.Parallel()

	img := newPaletted(6, 6)
	var spr sprite.SpriteImage
	err := spr.CopySprite(wrap(t, img), 1, 2, 0, 0, 6, 6, true)
	testutil.AssertNoError(t, err)
	testutil.ExpectTrue(t, spr.IsEmpty())
	testutil.ExpectEq(t, uint16(0), spr.Width)
	testutil.ExpectEq(t, uint16(0), spr.Height)
}

func TestCopySpriteOutOfBounds(t *testing.T) {
	t.Parallel()

	img := newPaletted(8, 8)
	var spr sprite.SpriteImage

	cases := []struct {
		x, y, w, h int
	}{
		{-1, 0, 4, 4},
		{0, -1, 4, 4},
		{8, 0, 1, 1},
		{0, 8, 1, 1},
		{4, 4, 8, 1},
		{4, 4, 1, 8},
		{0, 0, -1, 2},
	}
	for _, tc := range cases {
		err := spr.CopySprite(wrap(t, img), 0, 0, tc.x, tc.y, tc.w, tc.h, false)
		testutil.AssertError(t, err)
	}
}

func TestMaskHidesPixels(t *testing.T) {
	t.Parallel()

	img := newPaletted(64, 64)
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			img.SetColorIndex(x, y, 1)
		}
	}
	masked, err := sprite.FromPaletted(img, &sprite.BitMask{
		XPos: 0, YPos: 0, Type: "voxel64",
	})
	testutil.AssertNoError(t, err)

	// The voxel silhouette keeps the centre and hides the top corners.
	testutil.ExpectEq(t, uint8(1), masked.Pixel(32, 32))
	testutil.ExpectEq(t, uint8(sprite.TransparentIndex), masked.Pixel(0, 0))
	testutil.ExpectEq(t, uint8(sprite.TransparentIndex), masked.Pixel(63, 0))
}

func TestUnknownMask(t *testing.T) {
	t.Parallel()

	img := newPaletted(4, 4)
	_, err := sprite.FromPaletted(img, &sprite.BitMask{Type: "voxel128"})
	testutil.AssertError(t, err)
	testutil.ExpectFalse(t, sprite.KnownMask("voxel128"))
	testutil.ExpectTrue(t, sprite.KnownMask("voxel64"))
}

func TestLoadImage(t *testing.T) {
	t.Parallel()

	img := newPaletted(5, 3)
	img.SetColorIndex(2, 1, 3)
	path := filepath.Join(t.TempDir(), "img.png")
	fp, err := os.Create(path)
	testutil.AssertNoError(t, err)
	testutil.AssertNoError(t, png.Encode(fp, img))
	testutil.AssertNoError(t, fp.Close())

	loaded, err := sprite.LoadImage(path, nil)
	testutil.AssertNoError(t, err)
	testutil.ExpectEq(t, 5, loaded.Width())
	testutil.ExpectEq(t, 3, loaded.Height())
	testutil.ExpectTrue(t, loaded.Is8bpp())
	testutil.ExpectEq(t, uint8(3), loaded.Pixel(2, 1))

	_, err = sprite.LoadImage(filepath.Join(t.TempDir(), "none.png"), nil)
	testutil.AssertError(t, err)
}
