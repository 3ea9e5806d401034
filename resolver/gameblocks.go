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
)

// surfaceSpriteNames are the 19 slope patterns of a ground tile: flat, the
// 14 raised-corner combinations, and the 4 steep slopes.
var surfaceSpriteNames = [blocks.SurfaceCount]string{
	"#", "#n", "#e", "#ne", "#s", "#ns", "#es", "#nes",
	"#w", "#nw", "#ew", "#new", "#sw", "#nsw", "#esw",
	"#N", "#E", "#S", "#W",
}

var foundationSpriteNames = [blocks.FoundationCount]string{
	"se_e0", "se_0s", "se_es", "sw_s0", "sw_0w", "sw_sw",
}

var pathSpriteNames = [blocks.PathCount]string{
	"empty",
	"ne",
	"se",
	"ne_se",
	"ne_se_e",
	"sw",
	"ne_sw",
	"se_sw",
	"se_sw_s",
	"ne_se_sw",
	"ne_se_sw_e",
	"ne_se_sw_s",
	"ne_se_sw_e_s",
	"nw",
	"ne_nw",
	"ne_nw_n",
	"nw_se",
	"ne_nw_se",
	"ne_nw_se_n",
	"ne_nw_se_e",
	"ne_nw_se_n_e",
	"nw_sw",
	"nw_sw_w",
	"ne_nw_sw",
	"ne_nw_sw_n",
	"ne_nw_sw_w",
	"ne_nw_sw_n_w",
	"nw_se_sw",
	"nw_se_sw_s",
	"nw_se_sw_w",
	"nw_se_sw_s_w",
	"ne_nw_se_sw",
	"ne_nw_se_sw_n",
	"ne_nw_se_sw_e",
	"ne_nw_se_sw_n_e",
	"ne_nw_se_sw_s",
	"ne_nw_se_sw_n_s",
	"ne_nw_se_sw_e_s",
	"ne_nw_se_sw_n_e_s",
	"ne_nw_se_sw_w",
	"ne_nw_se_sw_n_w",
	"ne_nw_se_sw_e_w",
	"ne_nw_se_sw_n_e_w",
	"ne_nw_se_sw_s_w",
	"ne_nw_se_sw_n_s_w",
	"ne_nw_se_sw_e_s_w",
	"ne_nw_se_sw_n_e_s_w",
	"ramp_ne",
	"ramp_nw",
	"ramp_se",
	"ramp_sw",
}

var platformSpriteNames = [blocks.PlatformCount]string{
	"ns", "ew",
	"ramp_ne", "ramp_se", "ramp_sw", "ramp_nw",
	"right_ramp_ne", "right_ramp_se", "right_ramp_sw", "right_ramp_nw",
	"left_ramp_ne", "left_ramp_se", "left_ramp_sw", "left_ramp_nw",
}

var supportSpriteNames = [blocks.SupportCount]string{
	"s_ns", "s_ew", "d_ns", "d_ew", "p_ns", "p_ew",
	"n#n", "n#e", "n#ne", "n#s", "n#ns", "n#es", "n#nes",
	"n#w", "n#nw", "n#ew", "n#new", "n#sw", "n#nsw", "n#esw",
	"n#N", "n#E", "n#S", "n#W",
}

var borderSpriteNames = [blocks.BorderSpriteCount]string{
	"top_left", "top_middle", "top_right",
	"left", "middle", "right",
	"bottom_left", "bottom_middle", "bottom_right",
}

var checkableSpriteNames = [blocks.CheckableSpriteCount]string{
	"empty", "filled", "empty_pressed", "filled_pressed",
	"shaded_empty", "shaded_filled",
}

var sliderSpriteNames = [blocks.SliderSpriteCount]string{
	"left", "middle", "right", "slider",
}

var scrollbarSpriteNames = [blocks.ScrollbarSpriteCount]string{
	"left_button", "right_button", "left_pressed", "right_pressed",
	"left_bottom", "middle_bottom", "right_bottom",
	"left_top", "middle_top", "right_top",
	"left_top_pressed", "middle_top_pressed", "right_top_pressed",
}

var slopeSpriteNames = [blocks.SlopeSpriteCount]string{
	"vertical_down", "steep_down", "gentle_down", "level",
	"gentle_up", "steep_up", "vertical_up",
	"wide_left", "normal_left", "tight_left", "no_bend",
	"tight_right", "normal_right", "wide_right",
}

// fillSprites extracts one sprite per name into dest.
func fillSprites(vals *values, names []string, dest []*blocks.SpriteBlock) error {
	for ii, name := range names {
		spr, err := vals.sprite(name)
		if err != nil {
			return err
		}
		dest[ii] = spr
	}
	return nil
}

func (r *resolver) convertTSEL(ng *ast.NodeGroup) (blocks.Block, error) {
	if err := expandNoExpression(ng); err != nil {
		return nil, err
	}
	vals, err := r.prepareValues(ng, true, false, nil)
	if err != nil {
		return nil, err
	}

	blk := &blocks.TSELBlock{}
	tileWidth, err := vals.number("tile_width", nil)
	if err != nil {
		return nil, err
	}
	zHeight, err := vals.number("z_height", nil)
	if err != nil {
		return nil, err
	}
	blk.TileWidth = uint16(tileWidth)
	blk.ZHeight = uint16(zHeight)

	for ii, name := range surfaceSpriteNames {
		if blk.Sprites[ii], err = vals.sprite("n" + name); err != nil {
			return nil, err
		}
	}

	vals.verifyUsage(r)
	return blk, nil
}

func (r *resolver) convertTCOR(ng *ast.NodeGroup) (blocks.Block, error) {
	if err := expandNoExpression(ng); err != nil {
		return nil, err
	}
	vals, err := r.prepareValues(ng, true, false, nil)
	if err != nil {
		return nil, err
	}

	blk := &blocks.TCORBlock{}
	tileWidth, err := vals.number("tile_width", nil)
	if err != nil {
		return nil, err
	}
	zHeight, err := vals.number("z_height", nil)
	if err != nil {
		return nil, err
	}
	blk.TileWidth = uint16(tileWidth)
	blk.ZHeight = uint16(zHeight)

	for ii, name := range surfaceSpriteNames {
		if blk.North[ii], err = vals.sprite("n" + name); err != nil {
			return nil, err
		}
		if blk.East[ii], err = vals.sprite("e" + name); err != nil {
			return nil, err
		}
		if blk.South[ii], err = vals.sprite("s" + name); err != nil {
			return nil, err
		}
		if blk.West[ii], err = vals.sprite("w" + name); err != nil {
			return nil, err
		}
	}

	vals.verifyUsage(r)
	return blk, nil
}

func (r *resolver) convertSURF(ng *ast.NodeGroup) (blocks.Block, error) {
	if err := expandNoExpression(ng); err != nil {
		return nil, err
	}
	vals, err := r.prepareValues(ng, true, false, surfaceTypeSymbols)
	if err != nil {
		return nil, err
	}

	blk := &blocks.SURFBlock{}
	surfType, err := vals.number("surf_type", surfaceTypeSymbols)
	if err != nil {
		return nil, err
	}
	tileWidth, err := vals.number("tile_width", surfaceTypeSymbols)
	if err != nil {
		return nil, err
	}
	zHeight, err := vals.number("z_height", surfaceTypeSymbols)
	if err != nil {
		return nil, err
	}
	blk.SurfType = uint16(surfType)
	blk.TileWidth = uint16(tileWidth)
	blk.ZHeight = uint16(zHeight)

	for ii, name := range surfaceSpriteNames {
		if blk.Sprites[ii], err = vals.sprite("n" + name); err != nil {
			return nil, err
		}
	}

	vals.verifyUsage(r)
	return blk, nil
}

func (r *resolver) convertFUND(ng *ast.NodeGroup) (blocks.Block, error) {
	if err := expandNoExpression(ng); err != nil {
		return nil, err
	}
	vals, err := r.prepareValues(ng, true, false, foundationTypeSymbols)
	if err != nil {
		return nil, err
	}

	blk := &blocks.FUNDBlock{}
	foundType, err := vals.number("found_type", foundationTypeSymbols)
	if err != nil {
		return nil, err
	}
	tileWidth, err := vals.number("tile_width", foundationTypeSymbols)
	if err != nil {
		return nil, err
	}
	zHeight, err := vals.number("z_height", foundationTypeSymbols)
	if err != nil {
		return nil, err
	}
	blk.FoundType = uint16(foundType)
	blk.TileWidth = uint16(tileWidth)
	blk.ZHeight = uint16(zHeight)

	if err := fillSprites(vals, foundationSpriteNames[:], blk.Sprites[:]); err != nil {
		return nil, err
	}

	vals.verifyUsage(r)
	return blk, nil
}

func (r *resolver) convertPATH(ng *ast.NodeGroup) (blocks.Block, error) {
	if err := expandNoExpression(ng); err != nil {
		return nil, err
	}
	vals, err := r.prepareValues(ng, true, false, pathTypeSymbols)
	if err != nil {
		return nil, err
	}

	blk := &blocks.PATHBlock{}
	pathType, err := vals.number("path_type", pathTypeSymbols)
	if err != nil {
		return nil, err
	}
	tileWidth, err := vals.number("tile_width", pathTypeSymbols)
	if err != nil {
		return nil, err
	}
	zHeight, err := vals.number("z_height", pathTypeSymbols)
	if err != nil {
		return nil, err
	}
	blk.PathType = uint16(pathType)
	blk.TileWidth = uint16(tileWidth)
	blk.ZHeight = uint16(zHeight)

	if err := fillSprites(vals, pathSpriteNames[:], blk.Sprites[:]); err != nil {
		return nil, err
	}

	vals.verifyUsage(r)
	return blk, nil
}

func (r *resolver) convertPLAT(ng *ast.NodeGroup) (blocks.Block, error) {
	if err := expandNoExpression(ng); err != nil {
		return nil, err
	}
	vals, err := r.prepareValues(ng, true, false, platformTypeSymbols)
	if err != nil {
		return nil, err
	}

	blk := &blocks.PLATBlock{}
	tileWidth, err := vals.number("tile_width", platformTypeSymbols)
	if err != nil {
		return nil, err
	}
	zHeight, err := vals.number("z_height", platformTypeSymbols)
	if err != nil {
		return nil, err
	}
	platformType, err := vals.number("platform_type", platformTypeSymbols)
	if err != nil {
		return nil, err
	}
	blk.TileWidth = uint16(tileWidth)
	blk.ZHeight = uint16(zHeight)
	blk.PlatformType = uint16(platformType)

	if err := fillSprites(vals, platformSpriteNames[:], blk.Sprites[:]); err != nil {
		return nil, err
	}

	vals.verifyUsage(r)
	return blk, nil
}

func (r *resolver) convertSUPP(ng *ast.NodeGroup) (blocks.Block, error) {
	if err := expandNoExpression(ng); err != nil {
		return nil, err
	}
	vals, err := r.prepareValues(ng, true, false, supportTypeSymbols)
	if err != nil {
		return nil, err
	}

	blk := &blocks.SUPPBlock{}
	supportType, err := vals.number("support_type", supportTypeSymbols)
	if err != nil {
		return nil, err
	}
	tileWidth, err := vals.number("tile_width", supportTypeSymbols)
	if err != nil {
		return nil, err
	}
	zHeight, err := vals.number("z_height", supportTypeSymbols)
	if err != nil {
		return nil, err
	}
	blk.SupportType = uint16(supportType)
	blk.TileWidth = uint16(tileWidth)
	blk.ZHeight = uint16(zHeight)

	if err := fillSprites(vals, supportSpriteNames[:], blk.Sprites[:]); err != nil {
		return nil, err
	}

	vals.verifyUsage(r)
	return blk, nil
}

func (r *resolver) convertPRSG(ng *ast.NodeGroup) (blocks.Block, error) {
	if err := expandNoExpression(ng); err != nil {
		return nil, err
	}
	vals, err := r.prepareValues(ng, false, true, nil)
	if err != nil {
		return nil, err
	}

	blk := &blocks.PRSGBlock{}
	for _, vi := range vals.unnamed {
		if vi.used {
			continue
		}
		pg, ok := vi.node.(*blocks.PersonGraphics)
		if !ok {
			return nil, errNotChildNode("person_graphics", vi.line)
		}
		blk.PersonGraphics = append(blk.PersonGraphics, pg)
		if len(blk.PersonGraphics) > 255 {
			return nil, errTooManyChildren("person graphics", ng.Name, vi.line)
		}
		vi.used = true
	}

	vals.verifyUsage(r)
	return blk, nil
}

func (r *resolver) convertANIM(ng *ast.NodeGroup) (blocks.Block, error) {
	if err := expandNoExpression(ng); err != nil {
		return nil, err
	}
	vals, err := r.prepareValues(ng, true, true, animSymbols)
	if err != nil {
		return nil, err
	}

	blk := &blocks.ANIMBlock{}
	personType, err := vals.number("person_type", animSymbols)
	if err != nil {
		return nil, err
	}
	animType, err := vals.number("anim_type", animSymbols)
	if err != nil {
		return nil, err
	}
	blk.PersonType = uint8(personType)
	blk.AnimType = uint16(animType)

	for _, vi := range vals.unnamed {
		if vi.used {
			continue
		}
		fd, ok := vi.node.(*blocks.FrameData)
		if !ok {
			return nil, errNotChildNode("frame_data", vi.line)
		}
		blk.Frames = append(blk.Frames, *fd)
		if len(blk.Frames) > 0xFFFF {
			return nil, errTooManyChildren("frame", ng.Name, vi.line)
		}
		vi.used = true
	}

	vals.verifyUsage(r)
	return blk, nil
}

func (r *resolver) convertANSP(ng *ast.NodeGroup) (blocks.Block, error) {
	if err := expandNoExpression(ng); err != nil {
		return nil, err
	}
	vals, err := r.prepareValues(ng, true, true, animSymbols)
	if err != nil {
		return nil, err
	}

	blk := &blocks.ANSPBlock{}
	tileWidth, err := vals.number("tile_width", animSymbols)
	if err != nil {
		return nil, err
	}
	personType, err := vals.number("person_type", animSymbols)
	if err != nil {
		return nil, err
	}
	animType, err := vals.number("anim_type", animSymbols)
	if err != nil {
		return nil, err
	}
	blk.TileWidth = uint16(tileWidth)
	blk.PersonType = uint8(personType)
	blk.AnimType = uint16(animType)

	for _, vi := range vals.unnamed {
		if vi.used {
			continue
		}
		sp, ok := vi.node.(*blocks.SpriteBlock)
		if !ok {
			return nil, errNotChildNode("sprite", vi.line)
		}
		blk.Frames = append(blk.Frames, sp)
		vi.node = nil
		if len(blk.Frames) > 0xFFFF {
			return nil, errTooManyChildren("frame", ng.Name, vi.line)
		}
		vi.used = true
	}

	vals.verifyUsage(r)
	return blk, nil
}

func (r *resolver) convertSHOP(ng *ast.NodeGroup) (blocks.Block, error) {
	if err := expandNoExpression(ng); err != nil {
		return nil, err
	}
	vals, err := r.prepareValues(ng, true, true, shopSymbols)
	if err != nil {
		return nil, err
	}

	blk := blocks.NewSHOPBlock()
	tileWidth, err := vals.number("tile_width", shopSymbols)
	if err != nil {
		return nil, err
	}
	height, err := vals.number("height", shopSymbols)
	if err != nil {
		return nil, err
	}
	flags, err := vals.number("flags", shopSymbols)
	if err != nil {
		return nil, err
	}
	blk.TileWidth = uint16(tileWidth)
	blk.Height = uint8(height)
	blk.Flags = uint8(flags)

	if blk.ViewNE, err = vals.sprite("ne"); err != nil {
		return nil, err
	}
	if blk.ViewSE, err = vals.sprite("se"); err != nil {
		return nil, err
	}
	if blk.ViewSW, err = vals.sprite("sw"); err != nil {
		return nil, err
	}
	if blk.ViewNW, err = vals.sprite("nw"); err != nil {
		return nil, err
	}

	costs := []struct {
		name string
		dest *uint32
	}{
		{"cost_item1", &blk.CostItem1},
		{"cost_item2", &blk.CostItem2},
		{"cost_ownership", &blk.CostOwnership},
		{"cost_opened", &blk.CostOpened},
	}
	for _, cost := range costs {
		value, err := vals.number(cost.name, shopSymbols)
		if err != nil {
			return nil, err
		}
		*cost.dest = uint32(value)
	}

	typeItem1, err := vals.number("type_item1", shopSymbols)
	if err != nil {
		return nil, err
	}
	typeItem2, err := vals.number("type_item2", shopSymbols)
	if err != nil {
		return nil, err
	}
	blk.TypeItem1 = uint8(typeItem1)
	blk.TypeItem2 = uint8(typeItem2)

	if blk.Texts, err = vals.stringsNode("texts"); err != nil {
		return nil, err
	}
	if err := blk.Texts.CheckNames(blocks.ShopStringNames); err != nil {
		return nil, err
	}

	for _, vi := range vals.unnamed {
		if vi.used {
			continue
		}
		rc, ok := vi.node.(*blocks.Recolouring)
		if !ok {
			return nil, errNotChildNode("recolour", vi.line)
		}
		if !blk.AddRecolour(rc.Orig, rc.Replace) {
			return nil, errTooManyChildren("recolour", ng.Name, vi.line)
		}
		vi.used = true
	}

	vals.verifyUsage(r)
	return blk, nil
}

func (r *resolver) convertGBOR(ng *ast.NodeGroup) (blocks.Block, error) {
	if err := expandNoExpression(ng); err != nil {
		return nil, err
	}
	vals, err := r.prepareValues(ng, true, false, widgetTypeSymbols)
	if err != nil {
		return nil, err
	}

	blk := &blocks.GBORBlock{}
	widgetType, err := vals.number("widget_type", widgetTypeSymbols)
	if err != nil {
		return nil, err
	}
	blk.WidgetType = uint16(widgetType)

	geometry := []struct {
		name string
		dest *uint8
	}{
		{"border_top", &blk.BorderTop},
		{"border_left", &blk.BorderLeft},
		{"border_right", &blk.BorderRight},
		{"border_bottom", &blk.BorderBottom},
		{"min_width", &blk.MinWidth},
		{"min_height", &blk.MinHeight},
		{"h_stepsize", &blk.HStepSize},
		{"v_stepsize", &blk.VStepSize},
	}
	for _, fld := range geometry {
		value, err := vals.number(fld.name, widgetTypeSymbols)
		if err != nil {
			return nil, err
		}
		*fld.dest = uint8(value)
	}

	if err := fillSprites(vals, borderSpriteNames[:], blk.Sprites[:]); err != nil {
		return nil, err
	}

	vals.verifyUsage(r)
	return blk, nil
}

func (r *resolver) convertGCHK(ng *ast.NodeGroup) (blocks.Block, error) {
	if err := expandNoExpression(ng); err != nil {
		return nil, err
	}
	vals, err := r.prepareValues(ng, true, false, widgetTypeSymbols)
	if err != nil {
		return nil, err
	}

	blk := &blocks.GCHKBlock{}
	widgetType, err := vals.number("widget_type", widgetTypeSymbols)
	if err != nil {
		return nil, err
	}
	blk.WidgetType = uint16(widgetType)

	if err := fillSprites(vals, checkableSpriteNames[:], blk.Sprites[:]); err != nil {
		return nil, err
	}

	vals.verifyUsage(r)
	return blk, nil
}

func (r *resolver) convertGSLI(ng *ast.NodeGroup) (blocks.Block, error) {
	if err := expandNoExpression(ng); err != nil {
		return nil, err
	}
	vals, err := r.prepareValues(ng, true, false, widgetTypeSymbols)
	if err != nil {
		return nil, err
	}

	blk := &blocks.GSLIBlock{}
	minLength, err := vals.number("min_length", widgetTypeSymbols)
	if err != nil {
		return nil, err
	}
	stepSize, err := vals.number("step_size", widgetTypeSymbols)
	if err != nil {
		return nil, err
	}
	width, err := vals.number("width", widgetTypeSymbols)
	if err != nil {
		return nil, err
	}
	widgetType, err := vals.number("widget_type", widgetTypeSymbols)
	if err != nil {
		return nil, err
	}
	blk.MinLength = uint8(minLength)
	blk.StepSize = uint8(stepSize)
	blk.Width = uint8(width)
	blk.WidgetType = uint16(widgetType)

	if err := fillSprites(vals, sliderSpriteNames[:], blk.Sprites[:]); err != nil {
		return nil, err
	}

	vals.verifyUsage(r)
	return blk, nil
}

func (r *resolver) convertGSCL(ng *ast.NodeGroup) (blocks.Block, error) {
	if err := expandNoExpression(ng); err != nil {
		return nil, err
	}
	vals, err := r.prepareValues(ng, true, false, widgetTypeSymbols)
	if err != nil {
		return nil, err
	}

	blk := &blocks.GSCLBlock{}
	fields := []struct {
		name string
		dest *uint8
	}{
		{"min_length", &blk.MinLength},
		{"step_back", &blk.StepBack},
		{"min_bar_length", &blk.MinBarLength},
		{"bar_step", &blk.BarStep},
	}
	for _, fld := range fields {
		value, err := vals.number(fld.name, widgetTypeSymbols)
		if err != nil {
			return nil, err
		}
		*fld.dest = uint8(value)
	}
	widgetType, err := vals.number("widget_type", widgetTypeSymbols)
	if err != nil {
		return nil, err
	}
	blk.WidgetType = uint16(widgetType)

	if err := fillSprites(vals, scrollbarSpriteNames[:], blk.Sprites[:]); err != nil {
		return nil, err
	}

	vals.verifyUsage(r)
	return blk, nil
}

func (r *resolver) convertBDIR(ng *ast.NodeGroup) (blocks.Block, error) {
	if err := expandNoExpression(ng); err != nil {
		return nil, err
	}
	vals, err := r.prepareValues(ng, true, false, nil)
	if err != nil {
		return nil, err
	}

	blk := &blocks.BDIRBlock{}
	tileWidth, err := vals.number("tile_width", nil)
	if err != nil {
		return nil, err
	}
	blk.TileWidth = uint16(tileWidth)

	arrows := [blocks.ArrowSpriteCount]string{"ne", "se", "sw", "nw"}
	if err := fillSprites(vals, arrows[:], blk.Sprites[:]); err != nil {
		return nil, err
	}

	vals.verifyUsage(r)
	return blk, nil
}

func (r *resolver) convertGSLP(ng *ast.NodeGroup) (blocks.Block, error) {
	if err := expandNoExpression(ng); err != nil {
		return nil, err
	}
	vals, err := r.prepareValues(ng, true, false, nil)
	if err != nil {
		return nil, err
	}

	blk := &blocks.GSLPBlock{}
	if err := fillSprites(vals, slopeSpriteNames[:], blk.Sprites[:]); err != nil {
		return nil, err
	}

	vals.verifyUsage(r)
	return blk, nil
}
