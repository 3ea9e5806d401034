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

// ColourCount is the number of recolourable colour ranges.
const ColourCount = 18

// MaxRecolours is the recolouring capacity of person graphics and shops.
const MaxRecolours = 3

// Recolouring remaps one source colour range to a bitset of allowed
// replacement ranges. NoRecolouring() marks an unused slot.
type Recolouring struct {
	baseBlock

	Orig    uint8
	Replace uint32
}

// NoRecolouring is the value of an unused recolouring slot: the source
// range is out of range, so the runtime ignores it.
func NoRecolouring() Recolouring {
	return Recolouring{Orig: ColourCount}
}

// Encode packs the recolouring into its 32-bit wire form.
func (rc *Recolouring) Encode() uint32 {
	return uint32(rc.Orig)<<24 | (rc.Replace & 0x00FFFFFF)
}

// PersonGraphics describes the looks of one person type: up to three
// recolourings applied to the base graphics.
type PersonGraphics struct {
	baseBlock

	PersonType uint8

	recolours [MaxRecolours]Recolouring
	count     int
}

func NewPersonGraphics() *PersonGraphics {
	pg := &PersonGraphics{}
	for ii := range pg.recolours {
		pg.recolours[ii] = NoRecolouring()
	}
	return pg
}

// AddRecolour stores a recolouring, reporting false when all slots are
// taken.
func (pg *PersonGraphics) AddRecolour(orig uint8, replace uint32) bool {
	if pg.count >= MaxRecolours {
		return false
	}
	pg.recolours[pg.count] = Recolouring{Orig: orig, Replace: replace}
	pg.count++
	return true
}

func (pg *PersonGraphics) save(fb *rcdfile.FileBlock) {
	fb.SaveUint8(pg.PersonType)
	for ii := range pg.recolours {
		fb.SaveUint32(pg.recolours[ii].Encode())
	}
}

// FrameData is the timing and movement of one animation frame.
type FrameData struct {
	baseBlock

	Duration uint16
	ChangeX  int16
	ChangeY  int16
}

// PRSGBlock lists the person graphics of all person types.
type PRSGBlock struct {
	baseBlock

	PersonGraphics []*PersonGraphics
}

func (blk *PRSGBlock) Write(fw *rcdfile.FileWriter) (uint32, error) {
	var fb rcdfile.FileBlock
	fb.StartSave("PRSG", 1, 1+13*len(blk.PersonGraphics))
	fb.SaveUint8(uint8(len(blk.PersonGraphics)))
	for _, pg := range blk.PersonGraphics {
		pg.save(&fb)
	}
	fb.CheckEndSave()
	return fw.AddBlock(&fb), nil
}

// ANIMBlock holds the frame timing of one animation.
type ANIMBlock struct {
	baseBlock

	PersonType uint8
	AnimType   uint16
	Frames     []FrameData
}

func (blk *ANIMBlock) Write(fw *rcdfile.FileWriter) (uint32, error) {
	var fb rcdfile.FileBlock
	fb.StartSave("ANIM", 2, 1+2+2+6*len(blk.Frames))
	fb.SaveUint8(blk.PersonType)
	fb.SaveUint16(blk.AnimType)
	fb.SaveUint16(uint16(len(blk.Frames)))
	for ii := range blk.Frames {
		fd := &blk.Frames[ii]
		fb.SaveUint16(fd.Duration)
		fb.SaveInt16(fd.ChangeX)
		fb.SaveInt16(fd.ChangeY)
	}
	fb.CheckEndSave()
	return fw.AddBlock(&fb), nil
}

// ANSPBlock holds the sprites of one animation.
type ANSPBlock struct {
	baseBlock

	TileWidth  uint16
	PersonType uint8
	AnimType   uint16
	Frames     []*SpriteBlock
}

func (blk *ANSPBlock) Write(fw *rcdfile.FileWriter) (uint32, error) {
	refs, err := writeSpriteRefs(fw, blk.Frames)
	if err != nil {
		return 0, err
	}
	var fb rcdfile.FileBlock
	fb.StartSave("ANSP", 1, 2+1+2+2+4*len(refs))
	fb.SaveUint16(blk.TileWidth)
	fb.SaveUint8(blk.PersonType)
	fb.SaveUint16(blk.AnimType)
	fb.SaveUint16(uint16(len(refs)))
	for _, ref := range refs {
		fb.SaveUint32(ref)
	}
	fb.CheckEndSave()
	return fw.AddBlock(&fb), nil
}
