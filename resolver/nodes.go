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

package resolver

import (
	"github.com/dashdan/rcdgen/ast"
	"github.com/dashdan/rcdgen/blocks"
	"github.com/dashdan/rcdgen/sprite"
)

// convertSheet builds a sprite sheet. The image itself is loaded lazily on
// the first name-table access.
func (r *resolver) convertSheet(ng *ast.NodeGroup) (blocks.Block, error) {
	if err := expandNoExpression(ng); err != nil {
		return nil, err
	}
	vals, err := r.prepareValues(ng, true, false, nil)
	if err != nil {
		return nil, err
	}

	sb := &blocks.SheetBlock{Line: ng.Line()}
	fields := []struct {
		name string
		dest *int
	}{
		{"x_base", &sb.XBase},
		{"y_base", &sb.YBase},
		{"x_step", &sb.XStep},
		{"y_step", &sb.YStep},
		{"x_offset", &sb.XOffset},
		{"y_offset", &sb.YOffset},
		{"width", &sb.Width},
		{"height", &sb.Height},
	}
	if sb.File, err = vals.str("file"); err != nil {
		return nil, err
	}
	for _, fld := range fields {
		value, err := vals.number(fld.name, nil)
		if err != nil {
			return nil, err
		}
		*fld.dest = int(value)
	}
	crop, err := vals.optNumber("crop", 1, nil)
	if err != nil {
		return nil, err
	}
	sb.Crop = crop != 0
	if sb.Mask, err = vals.optMask(); err != nil {
		return nil, err
	}

	vals.verifyUsage(r)
	return sb, nil
}

// convertSprite cuts a single sprite out of an image file.
func (r *resolver) convertSprite(ng *ast.NodeGroup) (blocks.Block, error) {
	if err := expandNoExpression(ng); err != nil {
		return nil, err
	}
	vals, err := r.prepareValues(ng, true, false, nil)
	if err != nil {
		return nil, err
	}

	file, err := vals.str("file")
	if err != nil {
		return nil, err
	}
	var xbase, ybase, width, height, xoffset, yoffset int64
	fields := []struct {
		name string
		dest *int64
	}{
		{"x_base", &xbase},
		{"y_base", &ybase},
		{"width", &width},
		{"height", &height},
		{"x_offset", &xoffset},
		{"y_offset", &yoffset},
	}
	for _, fld := range fields {
		if *fld.dest, err = vals.number(fld.name, nil); err != nil {
			return nil, err
		}
	}
	crop, err := vals.optNumber("crop", 1, nil)
	if err != nil {
		return nil, err
	}
	mask, err := vals.optMask()
	if err != nil {
		return nil, err
	}

	vals.verifyUsage(r)

	img, err := sprite.LoadImage(file, mask)
	if err != nil {
		return nil, errSpriteLoadFailed(ng.Name, ng.Line(), err)
	}
	sb := &blocks.SpriteBlock{}
	err = sb.Sprite.CopySprite(
		img,
		int(xoffset), int(yoffset),
		int(xbase), int(ybase),
		int(width), int(height),
		crop != 0,
	)
	if err != nil {
		return nil, errSpriteLoadFailed(ng.Name, ng.Line(), err)
	}
	return sb, nil
}

// convertMask builds a bitmask overlay selection.
func (r *resolver) convertMask(ng *ast.NodeGroup) (blocks.Block, error) {
	if err := expandNoExpression(ng); err != nil {
		return nil, err
	}
	vals, err := r.prepareValues(ng, true, false, nil)
	if err != nil {
		return nil, err
	}

	mb := &blocks.BitMaskBlock{}
	xpos, err := vals.number("x_pos", nil)
	if err != nil {
		return nil, err
	}
	ypos, err := vals.number("y_pos", nil)
	if err != nil {
		return nil, err
	}
	maskType, err := vals.str("type")
	if err != nil {
		return nil, err
	}
	if !sprite.KnownMask(maskType) {
		return nil, errUnknownMask(maskType, ng.Line())
	}
	mb.Mask = sprite.BitMask{
		XPos: int(xpos),
		YPos: int(ypos),
		Type: maskType,
	}

	vals.verifyUsage(r)
	return mb, nil
}

// convertRecolour builds one colour range remapping.
func (r *resolver) convertRecolour(ng *ast.NodeGroup) (blocks.Block, error) {
	if err := expandNoExpression(ng); err != nil {
		return nil, err
	}
	vals, err := r.prepareValues(ng, true, false, colourRangeSymbols)
	if err != nil {
		return nil, err
	}

	orig, err := vals.number("original", colourRangeSymbols)
	if err != nil {
		return nil, err
	}
	replace, err := vals.number("replace", colourRangeSymbols)
	if err != nil {
		return nil, err
	}

	vals.verifyUsage(r)
	return &blocks.Recolouring{
		Orig:    uint8(orig),
		Replace: uint32(replace),
	}, nil
}

// convertPersonGraphics builds the looks of one person type.
func (r *resolver) convertPersonGraphics(ng *ast.NodeGroup) (blocks.Block, error) {
	if err := expandNoExpression(ng); err != nil {
		return nil, err
	}
	vals, err := r.prepareValues(ng, true, true, personGraphicsSymbols)
	if err != nil {
		return nil, err
	}

	pg := blocks.NewPersonGraphics()
	personType, err := vals.number("person_type", personGraphicsSymbols)
	if err != nil {
		return nil, err
	}
	pg.PersonType = uint8(personType)

	for _, vi := range vals.unnamed {
		if vi.used {
			continue
		}
		rc, ok := vi.node.(*blocks.Recolouring)
		if !ok {
			return nil, errNotChildNode("recolour", vi.line)
		}
		if !pg.AddRecolour(rc.Orig, rc.Replace) {
			return nil, errTooManyChildren("recolour", ng.Name, vi.line)
		}
		vi.used = true
	}

	vals.verifyUsage(r)
	return pg, nil
}

// convertFrameData builds the timing of one animation frame.
func (r *resolver) convertFrameData(ng *ast.NodeGroup) (blocks.Block, error) {
	if err := expandNoExpression(ng); err != nil {
		return nil, err
	}
	vals, err := r.prepareValues(ng, true, false, nil)
	if err != nil {
		return nil, err
	}

	duration, err := vals.number("duration", nil)
	if err != nil {
		return nil, err
	}
	changeX, err := vals.number("change_x", nil)
	if err != nil {
		return nil, err
	}
	changeY, err := vals.number("change_y", nil)
	if err != nil {
		return nil, err
	}

	vals.verifyUsage(r)
	return &blocks.FrameData{
		Duration: uint16(duration),
		ChangeX:  int16(changeX),
		ChangeY:  int16(changeY),
	}, nil
}

// convertString builds one translated string.
func (r *resolver) convertString(ng *ast.NodeGroup) (blocks.Block, error) {
	if err := expandNoExpression(ng); err != nil {
		return nil, err
	}
	vals, err := r.prepareValues(ng, true, false, nil)
	if err != nil {
		return nil, err
	}

	name, err := vals.str("name")
	if err != nil {
		return nil, err
	}
	text, err := vals.str("text")
	if err != nil {
		return nil, err
	}
	lang := ""
	if vi := vals.findOptValue("lang"); vi != nil {
		if lang, err = vi.str(vals.nodeName); err != nil {
			return nil, err
		}
	}
	langIndex := blocks.LanguageIndex(lang)
	if langIndex < 0 {
		return nil, errUnknownLanguage(lang, ng.Line())
	}

	vals.verifyUsage(r)
	tn := blocks.NewTextNode(name)
	tn.SetText(langIndex, ng.Line(), text)
	return tn, nil
}

// convertStrings collects string children into one deduplicated set.
func (r *resolver) convertStrings(ng *ast.NodeGroup) (blocks.Block, error) {
	if err := expandNoExpression(ng); err != nil {
		return nil, err
	}
	vals, err := r.prepareValues(ng, false, true, nil)
	if err != nil {
		return nil, err
	}

	st := &blocks.Strings{}
	for _, vi := range vals.unnamed {
		if vi.used {
			continue
		}
		tn, ok := vi.node.(*blocks.TextNode)
		if !ok {
			return nil, errNotChildNode("string", vi.line)
		}
		if err := st.Add(tn); err != nil {
			return nil, err
		}
		vi.used = true
	}

	vals.verifyUsage(r)
	return st, nil
}
