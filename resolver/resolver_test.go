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

package resolver_test

import (
	"encoding/binary"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dashdan/rcdgen/internal/testutil"
	"github.com/dashdan/rcdgen/resolver"
	"github.com/dashdan/rcdgen/syntax"
)

var surfaceNames = []string{
	"#", "#n", "#e", "#ne", "#s", "#ns", "#es", "#nes",
	"#w", "#nw", "#ew", "#new", "#sw", "#nsw", "#esw",
	"#N", "#E", "#S", "#W",
}

func writeSheetPNG(t *testing.T, dir string) string {
	t.Helper()
	palette := make(color.Palette, 32)
	palette[0] = color.RGBA{0, 0, 0, 0}
	for ii := 1; ii < 32; ii++ {
		palette[ii] = color.RGBA{uint8(ii * 8), 0, 0, 255}
	}
	img := image.NewPaletted(image.Rect(0, 0, 4*len(surfaceNames), 4), palette)
	for ii := range surfaceNames {
		img.SetColorIndex(4*ii, 0, uint8(ii+1))
	}

	path := filepath.Join(dir, "sheet.png")
	fp, err := os.Create(path)
	testutil.AssertNoError(t, err)
	testutil.AssertNoError(t, png.Encode(fp, img))
	testutil.AssertNoError(t, fp.Close())
	return path
}

func writeTinyPNG(t *testing.T, dir string) string {
	t.Helper()
	palette := color.Palette{
		color.RGBA{0, 0, 0, 0},
		color.RGBA{255, 0, 0, 255},
	}
	img := image.NewPaletted(image.Rect(0, 0, 2, 2), palette)
	img.SetColorIndex(0, 0, 1)

	path := filepath.Join(dir, "tiny.png")
	fp, err := os.Create(path)
	testutil.AssertNoError(t, err)
	testutil.AssertNoError(t, png.Encode(fp, img))
	testutil.AssertNoError(t, fp.Close())
	return path
}

// surfaceSheet builds the name table and sheet node filling all 19 surface
// sprites of one node body.
func surfaceSheet(prefix, file string) string {
	cells := make([]string, len(surfaceNames))
	for ii, name := range surfaceNames {
		cells[ii] = prefix + name
	}
	return fmt.Sprintf(`{%s} : sheet {
	file: %q;
	x_base: 0; y_base: 0;
	x_step: 4; y_step: 4;
	x_offset: 0; y_offset: 0;
	width: 4; height: 4;
	crop: 0;
}`, strings.Join(cells, ", "), file)
}

func spriteNode(file string) string {
	return fmt.Sprintf(`sprite {
	file: %q;
	x_base: 0; y_base: 0;
	width: 2; height: 2;
	x_offset: 0; y_offset: 0;
	crop: 0;
}`, file)
}

func compile(t *testing.T, src string) (*resolver.Result, error) {
	t.Helper()
	root, err := syntax.Parse([]byte(src))
	testutil.AssertNoError(t, err)
	return resolver.Resolve(root)
}

func compileAndWrite(t *testing.T, src string) *resolver.Result {
	t.Helper()
	result, err := compile(t, src)
	testutil.AssertNoError(t, err)
	for _, fn := range result.Files.Files {
		testutil.AssertNoError(t, fn.Write())
	}
	return result
}

// readBlocks splits an RCD file into its length-framed blocks.
func readBlocks(t *testing.T, data []byte) [][]byte {
	t.Helper()
	testutil.ExpectBytesEq(t, []byte{'R', 'C', 'D', 'F', 1, 0, 0, 0}, data[:8])
	var blks [][]byte
	rest := data[8:]
	for len(rest) > 0 {
		length := binary.LittleEndian.Uint32(rest[8:])
		end := 12 + int(length)
		blks = append(blks, rest[:end])
		rest = rest[end:]
	}
	return blks
}

func findBlock(t *testing.T, blks [][]byte, tag string) []byte {
	t.Helper()
	for _, blk := range blks {
		if string(blk[:4]) == tag {
			return blk
		}
	}
	t.Fatalf("no %q block found", tag)
	return nil
}

func TestEmptyFileWrapper(t *testing.T) {
	t.Parallel()

	out := filepath.Join(t.TempDir(), "out.rcd")
	compileAndWrite(t, fmt.Sprintf("file(%q) { }\n", out))

	data, err := os.ReadFile(out)
	testutil.AssertNoError(t, err)
	testutil.ExpectBytesEq(t, []byte{0x52, 0x43, 0x44, 0x46, 0x01, 0x00, 0x00, 0x00}, data)
}

func TestSurfSymbolResolution(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	sheet := writeSheetPNG(t, dir)
	out := filepath.Join(dir, "surf.rcd")

	src := fmt.Sprintf(`
file(%q) {
	SURF {
		surf_type: the_green;
		tile_width: 64;
		z_height: 16;
		%s
	}
}
`, out, surfaceSheet("n", sheet))
	compileAndWrite(t, src)

	data, err := os.ReadFile(out)
	testutil.AssertNoError(t, err)
	blks := readBlocks(t, data)
	testutil.ExpectEq(t, 20, len(blks)) // 19 sprites + SURF

	surf := findBlock(t, blks, "SURF")
	payload := surf[12:]
	testutil.ExpectBytesEq(t, []byte{0x11, 0x00, 0x40, 0x00, 0x10, 0x00}, payload[:6])

	// Sprites were sliced cell by cell, so the references are 1..19 in
	// name-table order.
	for ii := 0; ii < 19; ii++ {
		ref := binary.LittleEndian.Uint32(payload[6+4*ii:])
		testutil.ExpectEq(t, uint32(ii+1), ref)
	}
}

func TestGameBlockDeduplication(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	sheet := writeSheetPNG(t, dir)
	outA := filepath.Join(dir, "a.rcd")
	outB := filepath.Join(dir, "b.rcd")

	tsel := fmt.Sprintf(`TSEL {
	tile_width: 64;
	z_height: 16;
	%s
}`, surfaceSheet("n", sheet))

	src := fmt.Sprintf("file(%q) {\n%s\n%s\n}\nfile(%q) {\n%s\n}\n",
		outA, tsel, tsel, outB, tsel)
	compileAndWrite(t, src)

	dataA, err := os.ReadFile(outA)
	testutil.AssertNoError(t, err)
	dataB, err := os.ReadFile(outB)
	testutil.AssertNoError(t, err)

	// The repeated TSEL block deduplicates inside one file, making both
	// files byte-identical.
	testutil.ExpectBytesEq(t, dataB, dataA)
	blksA := readBlocks(t, dataA)
	testutil.ExpectEq(t, 20, len(blksA))

	count := 0
	for _, blk := range blksA {
		if string(blk[:4]) == "TSEL" {
			count++
		}
	}
	testutil.ExpectEq(t, 1, count)
}

func TestUnaryNegationChain(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	sheet := writeSheetPNG(t, dir)
	out := filepath.Join(dir, "tsel.rcd")

	src := fmt.Sprintf(`
file(%q) {
	TSEL {
		tile_width: -(-64);
		z_height: 16;
		%s
	}
}
`, out, surfaceSheet("n", sheet))
	compileAndWrite(t, src)

	data, err := os.ReadFile(out)
	testutil.AssertNoError(t, err)
	tsel := findBlock(t, readBlocks(t, data), "TSEL")
	testutil.ExpectEq(t, uint16(64), binary.LittleEndian.Uint16(tsel[12:]))
}

func shopSource(t *testing.T, out string, extraStrings string, names []string) string {
	t.Helper()
	tiny := writeTinyPNG(t, filepath.Dir(out))

	var texts strings.Builder
	for _, name := range names {
		fmt.Fprintf(&texts, "\t\t\tstring { name: %q; text: \"txt\"; }\n", name)
	}
	texts.WriteString(extraStrings)

	return fmt.Sprintf(`
file(%q) {
	SHOP {
		tile_width: 64;
		height: 2;
		flags: 0;
		ne: %s
		se: %s
		sw: %s
		nw: %s
		cost_item1: 50;
		cost_item2: 0;
		cost_ownership: 100;
		cost_opened: 10;
		type_item1: drink;
		type_item2: ice_cream;
		texts: strings {
%s		}
		recolour {
			original: grey;
			replace: 12;
		}
	}
}
`, out, spriteNode(tiny), spriteNode(tiny), spriteNode(tiny), spriteNode(tiny), texts.String())
}

var allShopNames = []string{
	"name_instance1", "name_instance2", "name_type",
	"name_item1", "name_item2",
}

func TestShopBlock(t *testing.T) {
	t.Parallel()

	out := filepath.Join(t.TempDir(), "shop.rcd")
	compileAndWrite(t, shopSource(t, out, "", allShopNames))

	data, err := os.ReadFile(out)
	testutil.AssertNoError(t, err)
	blks := readBlocks(t, data)
	shop := findBlock(t, blks, "SHOP")
	findBlock(t, blks, "TEXT")

	payload := shop[12:]
	testutil.ExpectEq(t, uint16(64), binary.LittleEndian.Uint16(payload[0:]))
	testutil.ExpectEq(t, uint8(2), payload[2])
	testutil.ExpectEq(t, uint8(0), payload[3])

	// All four views show the same image, so they share one sprite block.
	spriteRef := binary.LittleEndian.Uint32(payload[4:])
	for ii := 1; ii < 4; ii++ {
		testutil.ExpectEq(t, spriteRef, binary.LittleEndian.Uint32(payload[4+4*ii:]))
	}

	// First recolouring is grey -> bitset 12, the other slots are unused.
	testutil.ExpectEq(t, uint32(0<<24|12), binary.LittleEndian.Uint32(payload[20:]))
	testutil.ExpectEq(t, uint32(18)<<24, binary.LittleEndian.Uint32(payload[24:]))
	testutil.ExpectEq(t, uint32(18)<<24, binary.LittleEndian.Uint32(payload[28:]))

	testutil.ExpectEq(t, uint32(50), binary.LittleEndian.Uint32(payload[32:]))
	testutil.ExpectEq(t, uint32(0), binary.LittleEndian.Uint32(payload[36:]))
	testutil.ExpectEq(t, uint32(100), binary.LittleEndian.Uint32(payload[40:]))
	testutil.ExpectEq(t, uint32(10), binary.LittleEndian.Uint32(payload[44:]))
	testutil.ExpectEq(t, uint8(8), payload[48])
	testutil.ExpectEq(t, uint8(16), payload[49])
	testutil.ExpectTrue(t, binary.LittleEndian.Uint32(payload[50:]) > 0)
}

func TestStringConflict(t *testing.T) {
	t.Parallel()

	out := filepath.Join(t.TempDir(), "shop.rcd")
	conflict := "\t\t\tstring { name: \"buy\"; lang: \"en_GB\"; text: \"X\"; }\n" +
		"\t\t\tstring { name: \"buy\"; lang: \"en_GB\"; text: \"Y\"; }\n"
	src := shopSource(t, out, conflict, allShopNames)

	_, err := compile(t, src)
	testutil.AssertError(t, err)
	testutil.ExpectMatch(t, `"buy"`, err.Error())
	testutil.ExpectMatch(t, `line \d+.*already defined at line \d+`, err.Error())

	// Compilation failed, so no output file was produced.
	_, statErr := os.Stat(out)
	testutil.ExpectTrue(t, os.IsNotExist(statErr))
}

func TestShopMissingRequiredString(t *testing.T) {
	t.Parallel()

	out := filepath.Join(t.TempDir(), "shop.rcd")
	names := allShopNames[:len(allShopNames)-1] // drop name_item2
	_, err := compile(t, shopSource(t, out, "", names))
	testutil.AssertError(t, err)
	testutil.ExpectMatch(t, `"name_item2"`, err.Error())
}

func TestPeopleBlocks(t *testing.T) {
	t.Parallel()

	out := filepath.Join(t.TempDir(), "people.rcd")
	src := fmt.Sprintf(`
file(%q) {
	PRSG {
		person_graphics {
			person_type: pillar;
			recolour {
				original: grey;
				replace: 12;
			}
		}
	}
	ANIM {
		person_type: pillar;
		anim_type: walk_ne;
		frame_data { duration: 300; change_x: -1; change_y: 0; }
		frame_data { duration: 300; change_x: -2; change_y: 1; }
	}
}
`, out)
	compileAndWrite(t, src)

	data, err := os.ReadFile(out)
	testutil.AssertNoError(t, err)
	blks := readBlocks(t, data)

	prsg := findBlock(t, blks, "PRSG")[12:]
	testutil.ExpectEq(t, uint8(1), prsg[0])
	testutil.ExpectEq(t, uint8(8), prsg[1])
	testutil.ExpectEq(t, uint32(0<<24|12), binary.LittleEndian.Uint32(prsg[2:]))
	testutil.ExpectEq(t, uint32(18)<<24, binary.LittleEndian.Uint32(prsg[6:]))

	anim := findBlock(t, blks, "ANIM")[12:]
	testutil.ExpectEq(t, uint8(8), anim[0])
	testutil.ExpectEq(t, uint16(1), binary.LittleEndian.Uint16(anim[1:]))
	testutil.ExpectEq(t, uint16(2), binary.LittleEndian.Uint16(anim[3:]))
	testutil.ExpectEq(t, uint16(300), binary.LittleEndian.Uint16(anim[5:]))
	testutil.ExpectEq(t, uint16(0xFFFF), binary.LittleEndian.Uint16(anim[7:]))
}

func TestResolveErrors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		src     string
		pattern string
		line    int
	}{
		{
			"unknown node",
			"file(\"x.rcd\") {\n\tBOGUS {\n\t}\n}\n",
			"how to check and simplify",
			2,
		},
		{
			"missing file argument",
			"file {\n}\n",
			"No arguments found",
			1,
		},
		{
			"unexpected arguments",
			"file(\"x.rcd\") {\n\tTSEL(1) {\n\t}\n}\n",
			"No arguments expected",
			2,
		},
		{
			"unknown symbol",
			"file(\"x.rcd\") {\n\tTSEL {\n\t\ttile_width: enormous;\n\t}\n}\n",
			`"enormous" is not known`,
			3,
		},
		{
			"missing field",
			"file(\"x.rcd\") {\n\tANIM {\n\t\tperson_type: pillar;\n\t}\n}\n",
			`Cannot find a value for field "anim_type"`,
			2,
		},
		{
			"field not a number",
			"file(\"x.rcd\") {\n\tANIM {\n\t\tperson_type: pillar;\n\t\tanim_type: \"text\";\n\t}\n}\n",
			`"anim_type".*not a numeric value`,
			4,
		},
		{
			"expression at top level",
			"x: 1;\n",
			"Only node groups",
			1,
		},
		{
			"non game block in file",
			"file(\"x.rcd\") {\n\tframe_data {\n\t\tduration: 1;\n\t\tchange_x: 0;\n\t\tchange_y: 0;\n\t}\n}\n",
			"Only game blocks",
			2,
		},
		{
			"wrong child type",
			"file(\"x.rcd\") {\n\tPRSG {\n\t\tframe_data {\n\t\t\tduration: 1;\n\t\t\tchange_x: 0;\n\t\t\tchange_y: 0;\n\t\t}\n\t}\n}\n",
			`not a "person_graphics" node`,
			3,
		},
		{
			"name table on plain node",
			"file(\"x.rcd\") {\n\tANIM {\n\t\tperson_type: pillar;\n\t\tanim_type: walk_ne;\n\t\t{a, b} : frame_data {\n\t\t\tduration: 1;\n\t\t\tchange_x: 0;\n\t\t\tchange_y: 0;\n\t\t}\n\t}\n}\n",
			"Cannot assign sub node",
			5,
		},
		{
			"unknown language",
			"file(\"x.rcd\") {\n\tSHOP {\n\t\ttexts: strings {\n\t\t\tstring { name: \"a\"; lang: \"xx_XX\"; text: \"b\"; }\n\t\t}\n\t}\n}\n",
			`Language "xx_XX" is not known`,
			4,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := compile(t, tc.src)
			testutil.AssertError(t, err)
			testutil.ExpectMatch(t, tc.pattern, err.Error())
			lineErr, ok := err.(interface{ Line() int })
			testutil.ExpectTrue(t, ok)
			testutil.ExpectEq(t, tc.line, lineErr.Line())
		})
	}
}

func TestUnusedValueWarning(t *testing.T) {
	t.Parallel()

	out := filepath.Join(t.TempDir(), "p.rcd")
	src := fmt.Sprintf(`
file(%q) {
	PRSG {
		person_graphics {
			person_type: pillar;
		}
	}
	ANIM {
		person_type: pillar;
		anim_type: walk_ne;
		mystery_field: 7;
	}
}
`, out)
	result, err := compile(t, src)
	testutil.AssertNoError(t, err)
	testutil.ExpectEq(t, 1, len(result.Warnings))
	testutil.ExpectMatch(t, `"mystery_field" was not used`, result.Warnings[0].Message())
	testutil.ExpectEq(t, 11, result.Warnings[0].Line())
}

func TestSpriteMissingImage(t *testing.T) {
	t.Parallel()

	src := "file(\"x.rcd\") {\n\tANSP {\n\t\ttile_width: 64;\n\t\tperson_type: pillar;\n\t\tanim_type: walk_ne;\n\t\t" +
		spriteNode("/nonexistent/missing.png") + "\n\t}\n}\n"
	_, err := compile(t, src)
	testutil.AssertError(t, err)
	testutil.ExpectMatch(t, "Loading of the sprite", err.Error())
}
