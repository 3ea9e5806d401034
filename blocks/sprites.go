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
	"github.com/dashdan/rcdgen/rcdfile"
	"github.com/dashdan/rcdgen/sprite"
)

// SpriteBlock holds one cut sprite. An empty sprite never becomes a block;
// references to it are written as 0.
type SpriteBlock struct {
	baseBlock

	Sprite sprite.SpriteImage
}

func (sb *SpriteBlock) Write(fw *rcdfile.FileWriter) (uint32, error) {
	if sb.Sprite.IsEmpty() {
		return 0, nil
	}
	data := sb.Sprite.Data()
	var fb rcdfile.FileBlock
	fb.StartSave("8PXL", 2, 8+len(data))
	fb.SaveUint16(sb.Sprite.Width)
	fb.SaveUint16(sb.Sprite.Height)
	fb.SaveInt16(sb.Sprite.XOffset)
	fb.SaveInt16(sb.Sprite.YOffset)
	fb.SaveBytes(data)
	fb.CheckEndSave()
	return fw.AddBlock(&fb), nil
}

// BitMaskBlock is a resolved 'mask' node, consumed as a field of sprite and
// sheet nodes.
type BitMaskBlock struct {
	baseBlock

	Mask sprite.BitMask
}

// SheetBlock cuts many sprites out of one image. The image is decoded on
// the first GetSubNode call and shared by later calls.
type SheetBlock struct {
	baseBlock

	Line    int
	File    string
	XBase   int
	YBase   int
	XStep   int
	YStep   int
	XOffset int
	YOffset int
	Width   int
	Height  int
	Crop    bool
	Mask    *sprite.BitMask

	img *sprite.Image
}

func (sb *SheetBlock) sheet() (*sprite.Image, error) {
	if sb.img != nil {
		return sb.img, nil
	}
	img, err := sprite.LoadImage(sb.File, sb.Mask)
	if err != nil {
		return nil, errImageLoad(sb.File, sb.Line, err)
	}
	sb.img = img
	return img, nil
}

// GetSubNode cuts the sprite for name-table cell (row, col). The source
// rectangle's top-left is (XBase + XStep*col, YBase + YStep*row).
func (sb *SheetBlock) GetSubNode(row, col int, name string, line int) (Block, error) {
	img, err := sb.sheet()
	if err != nil {
		return nil, err
	}
	spr := &SpriteBlock{}
	err = spr.Sprite.CopySprite(
		img,
		sb.XOffset, sb.YOffset,
		sb.XBase+sb.XStep*col, sb.YBase+sb.YStep*row,
		sb.Width, sb.Height,
		sb.Crop,
	)
	if err != nil {
		return nil, errSpriteCut(name, line, err)
	}
	return spr, nil
}
