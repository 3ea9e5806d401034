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
)

// Symbol environments of the node schemas. Each schema supplies its own
// table; there is no global scope.

var surfaceTypeSymbols = []ast.Symbol{
	{Name: "reserved", Value: 0},
	{Name: "the_green", Value: 17},
	{Name: "short_grass", Value: 18},
	{Name: "medium_grass", Value: 19},
	{Name: "long_grass", Value: 20},
	{Name: "sand", Value: 32},
	{Name: "cursor", Value: 48},
}

var foundationTypeSymbols = []ast.Symbol{
	{Name: "reserved", Value: 0},
	{Name: "ground", Value: 16},
	{Name: "wood", Value: 32},
	{Name: "brick", Value: 48},
}

var pathTypeSymbols = []ast.Symbol{
	{Name: "concrete", Value: 16},
}

var platformTypeSymbols = []ast.Symbol{
	{Name: "wood", Value: 16},
}

var supportTypeSymbols = []ast.Symbol{
	{Name: "wood", Value: 16},
}

// Colour range ids, in palette order.
var colourRangeSymbols = []ast.Symbol{
	{Name: "grey", Value: 0},
	{Name: "green_brown", Value: 1},
	{Name: "brown", Value: 2},
	{Name: "yellow", Value: 3},
	{Name: "dark_red", Value: 4},
	{Name: "dark_green", Value: 5},
	{Name: "light_green", Value: 6},
	{Name: "green", Value: 7},
	{Name: "light_red", Value: 8},
	{Name: "dark_blue", Value: 9},
	{Name: "blue", Value: 10},
	{Name: "light_blue", Value: 11},
	{Name: "purple", Value: 12},
	{Name: "red", Value: 13},
	{Name: "orange", Value: 14},
	{Name: "sea_green", Value: 15},
	{Name: "pink", Value: 16},
	{Name: "beige", Value: 17},
}

var personTypeSymbols = []ast.Symbol{
	{Name: "pillar", Value: 8},
	{Name: "earth", Value: 16},
}

var animTypeSymbols = []ast.Symbol{
	{Name: "walk_ne", Value: 1},
	{Name: "walk_se", Value: 2},
	{Name: "walk_sw", Value: 3},
	{Name: "walk_nw", Value: 4},
}

var itemTypeSymbols = []ast.Symbol{
	{Name: "drink", Value: 8},
	{Name: "ice_cream", Value: 16},
	{Name: "non_salt_food", Value: 24},
	{Name: "salt_food", Value: 32},
	{Name: "umbrella", Value: 40},
	{Name: "park_map", Value: 48},
}

var widgetTypeSymbols = []ast.Symbol{
	{Name: "panel", Value: 16},
	{Name: "titlebar", Value: 32},
	{Name: "button", Value: 48},
	{Name: "pressed_button", Value: 49},
	{Name: "rounded_button", Value: 52},
	{Name: "checkbox", Value: 96},
	{Name: "radio_button", Value: 112},
	{Name: "hor_slider", Value: 128},
	{Name: "vert_slider", Value: 144},
	{Name: "hor_scrollbar", Value: 160},
	{Name: "vert_scrollbar", Value: 176},
}

// concat builds the combined environment of schemas that accept several
// symbol groups.
func concat(tables ...[]ast.Symbol) []ast.Symbol {
	var out []ast.Symbol
	for _, table := range tables {
		out = append(out, table...)
	}
	return out
}

var personGraphicsSymbols = concat(personTypeSymbols, colourRangeSymbols)
var animSymbols = concat(personTypeSymbols, animTypeSymbols)
var shopSymbols = concat(itemTypeSymbols)
