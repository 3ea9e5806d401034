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

// ShopStringNames are the strings every shop must translate.
var ShopStringNames = []string{
	"name_instance1",
	"name_instance2",
	"name_type",
	"name_item1",
	"name_item2",
}

// SHOPBlock describes one shop type: its four view sprites, recolourings,
// costs, sold items, and texts.
type SHOPBlock struct {
	baseBlock

	TileWidth     uint16
	Height        uint8
	Flags         uint8
	ViewNE        *SpriteBlock
	ViewSE        *SpriteBlock
	ViewSW        *SpriteBlock
	ViewNW        *SpriteBlock
	CostItem1     uint32
	CostItem2     uint32
	CostOwnership uint32
	CostOpened    uint32
	TypeItem1     uint8
	TypeItem2     uint8
	Texts         *Strings

	recolours [MaxRecolours]Recolouring
	count     int
}

func NewSHOPBlock() *SHOPBlock {
	blk := &SHOPBlock{}
	for ii := range blk.recolours {
		blk.recolours[ii] = NoRecolouring()
	}
	return blk
}

// AddRecolour stores a recolouring, reporting false when all slots are
// taken.
func (blk *SHOPBlock) AddRecolour(orig uint8, replace uint32) bool {
	if blk.count >= MaxRecolours {
		return false
	}
	blk.recolours[blk.count] = Recolouring{Orig: orig, Replace: replace}
	blk.count++
	return true
}

func (blk *SHOPBlock) Write(fw *rcdfile.FileWriter) (uint32, error) {
	views := []*SpriteBlock{blk.ViewNE, blk.ViewSE, blk.ViewSW, blk.ViewNW}
	refs, err := writeSpriteRefs(fw, views)
	if err != nil {
		return 0, err
	}
	textRef, err := blk.Texts.Write(fw)
	if err != nil {
		return 0, err
	}

	var fb rcdfile.FileBlock
	fb.StartSave("SHOP", 4, 2+1+1+4*4+4*MaxRecolours+4+4+4+4+1+1+4)
	fb.SaveUint16(blk.TileWidth)
	fb.SaveUint8(blk.Height)
	fb.SaveUint8(blk.Flags)
	for _, ref := range refs {
		fb.SaveUint32(ref)
	}
	for ii := range blk.recolours {
		fb.SaveUint32(blk.recolours[ii].Encode())
	}
	fb.SaveUint32(blk.CostItem1)
	fb.SaveUint32(blk.CostItem2)
	fb.SaveUint32(blk.CostOwnership)
	fb.SaveUint32(blk.CostOpened)
	fb.SaveUint8(blk.TypeItem1)
	fb.SaveUint8(blk.TypeItem2)
	fb.SaveUint32(textRef)
	fb.CheckEndSave()
	return fw.AddBlock(&fb), nil
}
