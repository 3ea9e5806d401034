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

package blocks

import (
	"encoding/binary"
	"image"
	"image/color"
	"testing"

	"github.com/dashdan/rcdgen/internal/testutil"
	"github.com/dashdan/rcdgen/rcdfile"
	"github.com/dashdan/rcdgen/sprite"
)

func testSprite(t *testing.T, index uint8) *SpriteBlock {
	t.Helper()
	palette := color.Palette{
		color.RGBA{0, 0, 0, 0},
		color.RGBA{255, 0, 0, 255},
		color.RGBA{0, 255, 0, 255},
	}
	img := image.NewPaletted(image.Rect(0, 0, 2, 2), palette)
	img.SetColorIndex(0, 0, index)
	wrapped, err := sprite.FromPaletted(img, nil)
	testutil.AssertNoError(t, err)

	sb := &SpriteBlock{}
	err = sb.Sprite.CopySprite(wrapped, 0, 0, 0, 0, 2, 2, false)
	testutil.AssertNoError(t, err)
	return sb
}

func TestEmptySpriteWritesNothing(t *testing.T) {
	t.Parallel()

	sb := &SpriteBlock{}
	fw := rcdfile.NewFileWriter()
	ref, err := sb.Write(fw)
	testutil.AssertNoError(t, err)
	testutil.ExpectEq(t, uint32(0), ref)
	testutil.ExpectEq(t, 0, fw.BlockCount())
}

func TestSpriteBlockLayout(t *testing.T) {
	t.Parallel()

	sb := testSprite(t, 1)
	fw := rcdfile.NewFileWriter()
	ref, err := sb.Write(fw)
	testutil.AssertNoError(t, err)
	testutil.ExpectEq(t, uint32(1), ref)

	raw := fw.Bytes()[8:]
	testutil.ExpectBytesEq(t, []byte("8PXL"), raw[0:4])
	testutil.ExpectEq(t, uint32(2), binary.LittleEndian.Uint32(raw[4:]))
	payloadLen := binary.LittleEndian.Uint32(raw[8:])
	testutil.ExpectEq(t, uint32(8+len(sb.Sprite.Data())), payloadLen)
	testutil.ExpectEq(t, uint16(2), binary.LittleEndian.Uint16(raw[12:]))
	testutil.ExpectEq(t, uint16(2), binary.LittleEndian.Uint16(raw[14:]))
}

func TestSpriteDedup(t *testing.T) {
	t.Parallel()

	fw := rcdfile.NewFileWriter()
	first, err := testSprite(t, 1).Write(fw)
	testutil.AssertNoError(t, err)
	same, err := testSprite(t, 1).Write(fw)
	testutil.AssertNoError(t, err)
	other, err := testSprite(t, 2).Write(fw)
	testutil.AssertNoError(t, err)

	testutil.ExpectEq(t, uint32(1), first)
	testutil.ExpectEq(t, uint32(1), same)
	testutil.ExpectEq(t, uint32(2), other)
}

func TestTSELBlockLayout(t *testing.T) {
	t.Parallel()

	blk := &TSELBlock{TileWidth: 64, ZHeight: 16}
	blk.Sprites[0] = testSprite(t, 1)
	for ii := 1; ii < SurfaceCount; ii++ {
		blk.Sprites[ii] = &SpriteBlock{} // empty, written as reference 0
	}

	fw := rcdfile.NewFileWriter()
	ref, err := blk.Write(fw)
	testutil.AssertNoError(t, err)

	// The sprite is block 1, the TSEL block follows it.
	testutil.ExpectEq(t, uint32(2), ref)
	testutil.ExpectEq(t, 2, fw.BlockCount())

	raw := fw.Bytes()
	spriteLen := int(binary.LittleEndian.Uint32(raw[16:]))
	tsel := raw[8+rcdfile.BlockHeaderSize+spriteLen:]
	testutil.ExpectBytesEq(t, []byte("TSEL"), tsel[0:4])
	testutil.ExpectEq(t, uint32(1), binary.LittleEndian.Uint32(tsel[4:]))
	testutil.ExpectEq(t, uint32(2+2+4*SurfaceCount), binary.LittleEndian.Uint32(tsel[8:]))

	payload := tsel[rcdfile.BlockHeaderSize:]
	testutil.ExpectEq(t, uint16(64), binary.LittleEndian.Uint16(payload[0:]))
	testutil.ExpectEq(t, uint16(16), binary.LittleEndian.Uint16(payload[2:]))
	testutil.ExpectEq(t, uint32(1), binary.LittleEndian.Uint32(payload[4:]))
	for ii := 1; ii < SurfaceCount; ii++ {
		testutil.ExpectEq(t, uint32(0), binary.LittleEndian.Uint32(payload[4+4*ii:]))
	}
}

func TestGameBlockDedup(t *testing.T) {
	t.Parallel()

	build := func() *SURFBlock {
		blk := &SURFBlock{SurfType: 17, TileWidth: 64, ZHeight: 16}
		for ii := 0; ii < SurfaceCount; ii++ {
			blk.Sprites[ii] = testSprite(t, 1)
		}
		return blk
	}

	fw := rcdfile.NewFileWriter()
	first, err := build().Write(fw)
	testutil.AssertNoError(t, err)
	second, err := build().Write(fw)
	testutil.AssertNoError(t, err)

	testutil.ExpectEq(t, first, second)
	testutil.ExpectEq(t, 2, fw.BlockCount()) // one sprite + one SURF
}

func TestRecolouringEncode(t *testing.T) {
	t.Parallel()

	rc := Recolouring{Orig: 3, Replace: 0x00ABCDEF}
	testutil.ExpectEq(t, uint32(3<<24|0x00ABCDEF), rc.Encode())

	rc = Recolouring{Orig: 1, Replace: 0xFFFFFFFF}
	testutil.ExpectEq(t, uint32(1<<24|0x00FFFFFF), rc.Encode())

	unset := NoRecolouring()
	testutil.ExpectEq(t, uint32(ColourCount)<<24, unset.Encode())
}

func TestPersonGraphicsRecolourCap(t *testing.T) {
	t.Parallel()

	pg := NewPersonGraphics()
	testutil.ExpectTrue(t, pg.AddRecolour(0, 1))
	testutil.ExpectTrue(t, pg.AddRecolour(1, 2))
	testutil.ExpectTrue(t, pg.AddRecolour(2, 4))
	testutil.ExpectFalse(t, pg.AddRecolour(3, 8))
}

func TestANIMBlockLayout(t *testing.T) {
	t.Parallel()

	blk := &ANIMBlock{PersonType: 8, AnimType: 1}
	blk.Frames = []FrameData{
		{Duration: 300, ChangeX: -1, ChangeY: 2},
		{Duration: 200, ChangeX: 0, ChangeY: 0},
	}

	fw := rcdfile.NewFileWriter()
	_, err := blk.Write(fw)
	testutil.AssertNoError(t, err)

	payload := fw.Bytes()[8+rcdfile.BlockHeaderSize:]
	testutil.ExpectEq(t, uint8(8), payload[0])
	testutil.ExpectEq(t, uint16(1), binary.LittleEndian.Uint16(payload[1:]))
	testutil.ExpectEq(t, uint16(2), binary.LittleEndian.Uint16(payload[3:]))
	testutil.ExpectEq(t, uint16(300), binary.LittleEndian.Uint16(payload[5:]))
	testutil.ExpectEq(t, uint16(0xFFFF), binary.LittleEndian.Uint16(payload[7:]))
	testutil.ExpectEq(t, uint16(2), binary.LittleEndian.Uint16(payload[9:]))
}

func TestGetSubNodeUnsupported(t *testing.T) {
	t.Parallel()

	blk := &TSELBlock{}
	_, err := blk.GetSubNode(0, 1, "n#", 17)
	testutil.AssertError(t, err)

	blockErr, ok := err.(*Error)
	testutil.ExpectTrue(t, ok)
	testutil.ExpectEq(t, 17, blockErr.Line())
	testutil.ExpectMatch(t, `row=0, column=1`, blockErr.Message())
}
