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
)

// Sprite counts of the GUI blocks.
const (
	BorderSpriteCount    = 9
	CheckableSpriteCount = 6
	SliderSpriteCount    = 4
	ScrollbarSpriteCount = 13
	ArrowSpriteCount     = 4
	SlopeSpriteCount     = 14
)

// GBORBlock holds the nine border sprites of a widget, plus its geometry.
type GBORBlock struct {
	baseBlock

	WidgetType   uint16
	BorderTop    uint8
	BorderLeft   uint8
	BorderRight  uint8
	BorderBottom uint8
	MinWidth     uint8
	MinHeight    uint8
	HStepSize    uint8
	VStepSize    uint8
	Sprites      [BorderSpriteCount]*SpriteBlock
}

func (blk *GBORBlock) Write(fw *rcdfile.FileWriter) (uint32, error) {
	refs, err := writeSpriteRefs(fw, blk.Sprites[:])
	if err != nil {
		return 0, err
	}
	var fb rcdfile.FileBlock
	fb.StartSave("GBOR", 1, 2+8+4*BorderSpriteCount)
	fb.SaveUint16(blk.WidgetType)
	fb.SaveUint8(blk.BorderTop)
	fb.SaveUint8(blk.BorderLeft)
	fb.SaveUint8(blk.BorderRight)
	fb.SaveUint8(blk.BorderBottom)
	fb.SaveUint8(blk.MinWidth)
	fb.SaveUint8(blk.MinHeight)
	fb.SaveUint8(blk.HStepSize)
	fb.SaveUint8(blk.VStepSize)
	for _, ref := range refs {
		fb.SaveUint32(ref)
	}
	fb.CheckEndSave()
	return fw.AddBlock(&fb), nil
}

// GCHKBlock holds the sprites of a checkbox or radio button.
type GCHKBlock struct {
	baseBlock

	WidgetType uint16
	Sprites    [CheckableSpriteCount]*SpriteBlock
}

func (blk *GCHKBlock) Write(fw *rcdfile.FileWriter) (uint32, error) {
	refs, err := writeSpriteRefs(fw, blk.Sprites[:])
	if err != nil {
		return 0, err
	}
	var fb rcdfile.FileBlock
	fb.StartSave("GCHK", 1, 2+4*CheckableSpriteCount)
	fb.SaveUint16(blk.WidgetType)
	for _, ref := range refs {
		fb.SaveUint32(ref)
	}
	fb.CheckEndSave()
	return fw.AddBlock(&fb), nil
}

// GSLIBlock holds the sprites of a slider bar.
type GSLIBlock struct {
	baseBlock

	MinLength  uint8
	StepSize   uint8
	Width      uint8
	WidgetType uint16
	Sprites    [SliderSpriteCount]*SpriteBlock
}

func (blk *GSLIBlock) Write(fw *rcdfile.FileWriter) (uint32, error) {
	refs, err := writeSpriteRefs(fw, blk.Sprites[:])
	if err != nil {
		return 0, err
	}
	var fb rcdfile.FileBlock
	fb.StartSave("GSLI", 1, 3+2+4*SliderSpriteCount)
	fb.SaveUint8(blk.MinLength)
	fb.SaveUint8(blk.StepSize)
	fb.SaveUint8(blk.Width)
	fb.SaveUint16(blk.WidgetType)
	for _, ref := range refs {
		fb.SaveUint32(ref)
	}
	fb.CheckEndSave()
	return fw.AddBlock(&fb), nil
}

// GSCLBlock holds the sprites of a scrollbar.
type GSCLBlock struct {
	baseBlock

	MinLength    uint8
	StepBack     uint8
	MinBarLength uint8
	BarStep      uint8
	WidgetType   uint16
	Sprites      [ScrollbarSpriteCount]*SpriteBlock
}

func (blk *GSCLBlock) Write(fw *rcdfile.FileWriter) (uint32, error) {
	refs, err := writeSpriteRefs(fw, blk.Sprites[:])
	if err != nil {
		return 0, err
	}
	var fb rcdfile.FileBlock
	fb.StartSave("GSCL", 1, 4+2+4*ScrollbarSpriteCount)
	fb.SaveUint8(blk.MinLength)
	fb.SaveUint8(blk.StepBack)
	fb.SaveUint8(blk.MinBarLength)
	fb.SaveUint8(blk.BarStep)
	fb.SaveUint16(blk.WidgetType)
	for _, ref := range refs {
		fb.SaveUint32(ref)
	}
	fb.CheckEndSave()
	return fw.AddBlock(&fb), nil
}

// BDIRBlock holds the four build direction arrow sprites.
type BDIRBlock struct {
	baseBlock

	TileWidth uint16
	Sprites   [ArrowSpriteCount]*SpriteBlock
}

func (blk *BDIRBlock) Write(fw *rcdfile.FileWriter) (uint32, error) {
	refs, err := writeSpriteRefs(fw, blk.Sprites[:])
	if err != nil {
		return 0, err
	}
	var fb rcdfile.FileBlock
	fb.StartSave("BDIR", 1, 2+4*ArrowSpriteCount)
	fb.SaveUint16(blk.TileWidth)
	for _, ref := range refs {
		fb.SaveUint32(ref)
	}
	fb.CheckEndSave()
	return fw.AddBlock(&fb), nil
}

// GSLPBlock holds the track slope selection sprites.
type GSLPBlock struct {
	baseBlock

	Sprites [SlopeSpriteCount]*SpriteBlock
}

func (blk *GSLPBlock) Write(fw *rcdfile.FileWriter) (uint32, error) {
	refs, err := writeSpriteRefs(fw, blk.Sprites[:])
	if err != nil {
		return 0, err
	}
	var fb rcdfile.FileBlock
	fb.StartSave("GSLP", 4, 4*SlopeSpriteCount)
	for _, ref := range refs {
		fb.SaveUint32(ref)
	}
	fb.CheckEndSave()
	return fw.AddBlock(&fb), nil
}
