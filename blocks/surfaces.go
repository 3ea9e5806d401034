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

// Sprite counts of the surface-family blocks.
const (
	SurfaceCount    = 19 // flat, 14 slopes, 4 steep slopes
	FoundationCount = 6
	PathCount       = 51
	PlatformCount   = 14
	SupportCount    = 24
)

// TSELBlock is the tile selection cursor block.
type TSELBlock struct {
	baseBlock

	TileWidth uint16
	ZHeight   uint16
	Sprites   [SurfaceCount]*SpriteBlock
}

func (blk *TSELBlock) Write(fw *rcdfile.FileWriter) (uint32, error) {
	refs, err := writeSpriteRefs(fw, blk.Sprites[:])
	if err != nil {
		return 0, err
	}
	var fb rcdfile.FileBlock
	fb.StartSave("TSEL", 1, 2+2+4*SurfaceCount)
	fb.SaveUint16(blk.TileWidth)
	fb.SaveUint16(blk.ZHeight)
	for _, ref := range refs {
		fb.SaveUint32(ref)
	}
	fb.CheckEndSave()
	return fw.AddBlock(&fb), nil
}

// TCORBlock holds the tile corner selection sprites for all four view
// directions.
type TCORBlock struct {
	baseBlock

	TileWidth uint16
	ZHeight   uint16
	North     [SurfaceCount]*SpriteBlock
	East      [SurfaceCount]*SpriteBlock
	South     [SurfaceCount]*SpriteBlock
	West      [SurfaceCount]*SpriteBlock
}

func (blk *TCORBlock) Write(fw *rcdfile.FileWriter) (uint32, error) {
	edges := [][]*SpriteBlock{
		blk.North[:], blk.East[:], blk.South[:], blk.West[:],
	}
	refs := make([][]uint32, len(edges))
	for ii, edge := range edges {
		edgeRefs, err := writeSpriteRefs(fw, edge)
		if err != nil {
			return 0, err
		}
		refs[ii] = edgeRefs
	}
	var fb rcdfile.FileBlock
	fb.StartSave("TCOR", 1, 2+2+4*4*SurfaceCount)
	fb.SaveUint16(blk.TileWidth)
	fb.SaveUint16(blk.ZHeight)
	for _, edgeRefs := range refs {
		for _, ref := range edgeRefs {
			fb.SaveUint32(ref)
		}
	}
	fb.CheckEndSave()
	return fw.AddBlock(&fb), nil
}

// SURFBlock holds the ground sprites of one surface type.
type SURFBlock struct {
	baseBlock

	SurfType  uint16
	TileWidth uint16
	ZHeight   uint16
	Sprites   [SurfaceCount]*SpriteBlock
}

func (blk *SURFBlock) Write(fw *rcdfile.FileWriter) (uint32, error) {
	refs, err := writeSpriteRefs(fw, blk.Sprites[:])
	if err != nil {
		return 0, err
	}
	var fb rcdfile.FileBlock
	fb.StartSave("SURF", 3, 2+2+2+4*SurfaceCount)
	fb.SaveUint16(blk.SurfType)
	fb.SaveUint16(blk.TileWidth)
	fb.SaveUint16(blk.ZHeight)
	for _, ref := range refs {
		fb.SaveUint32(ref)
	}
	fb.CheckEndSave()
	return fw.AddBlock(&fb), nil
}

// FUNDBlock holds foundation sprites.
type FUNDBlock struct {
	baseBlock

	FoundType uint16
	TileWidth uint16
	ZHeight   uint16
	Sprites   [FoundationCount]*SpriteBlock
}

func (blk *FUNDBlock) Write(fw *rcdfile.FileWriter) (uint32, error) {
	refs, err := writeSpriteRefs(fw, blk.Sprites[:])
	if err != nil {
		return 0, err
	}
	var fb rcdfile.FileBlock
	fb.StartSave("FUND", 1, 2+2+2+4*FoundationCount)
	fb.SaveUint16(blk.FoundType)
	fb.SaveUint16(blk.TileWidth)
	fb.SaveUint16(blk.ZHeight)
	for _, ref := range refs {
		fb.SaveUint32(ref)
	}
	fb.CheckEndSave()
	return fw.AddBlock(&fb), nil
}

// PATHBlock holds the path sprites of one path type, one sprite per
// connectivity pattern.
type PATHBlock struct {
	baseBlock

	PathType  uint16
	TileWidth uint16
	ZHeight   uint16
	Sprites   [PathCount]*SpriteBlock
}

func (blk *PATHBlock) Write(fw *rcdfile.FileWriter) (uint32, error) {
	refs, err := writeSpriteRefs(fw, blk.Sprites[:])
	if err != nil {
		return 0, err
	}
	var fb rcdfile.FileBlock
	fb.StartSave("PATH", 1, 2+2+2+4*PathCount)
	fb.SaveUint16(blk.PathType)
	fb.SaveUint16(blk.TileWidth)
	fb.SaveUint16(blk.ZHeight)
	for _, ref := range refs {
		fb.SaveUint32(ref)
	}
	fb.CheckEndSave()
	return fw.AddBlock(&fb), nil
}

// PLATBlock holds platform sprites.
type PLATBlock struct {
	baseBlock

	TileWidth    uint16
	ZHeight      uint16
	PlatformType uint16
	Sprites      [PlatformCount]*SpriteBlock
}

func (blk *PLATBlock) Write(fw *rcdfile.FileWriter) (uint32, error) {
	refs, err := writeSpriteRefs(fw, blk.Sprites[:])
	if err != nil {
		return 0, err
	}
	var fb rcdfile.FileBlock
	fb.StartSave("PLAT", 2, 2+2+2+4*PlatformCount)
	fb.SaveUint16(blk.TileWidth)
	fb.SaveUint16(blk.ZHeight)
	fb.SaveUint16(blk.PlatformType)
	for _, ref := range refs {
		fb.SaveUint32(ref)
	}
	fb.CheckEndSave()
	return fw.AddBlock(&fb), nil
}

// SUPPBlock holds support sprites.
type SUPPBlock struct {
	baseBlock

	SupportType uint16
	TileWidth   uint16
	ZHeight     uint16
	Sprites     [SupportCount]*SpriteBlock
}

func (blk *SUPPBlock) Write(fw *rcdfile.FileWriter) (uint32, error) {
	refs, err := writeSpriteRefs(fw, blk.Sprites[:])
	if err != nil {
		return 0, err
	}
	var fb rcdfile.FileBlock
	fb.StartSave("SUPP", 1, 2+2+2+4*SupportCount)
	fb.SaveUint16(blk.SupportType)
	fb.SaveUint16(blk.TileWidth)
	fb.SaveUint16(blk.ZHeight)
	for _, ref := range refs {
		fb.SaveUint32(ref)
	}
	fb.CheckEndSave()
	return fw.AddBlock(&fb), nil
}
