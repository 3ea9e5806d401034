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

// valueInfo is one collected named or unnamed value: either an evaluated
// expression or a resolved block.
type valueInfo struct {
	name string
	line int
	used bool
	expr ast.Expression
	node blocks.Block
}

func (vi *valueInfo) number(nodeName string, symbols []ast.Symbol) (int64, error) {
	if vi.expr == nil {
		return 0, errFieldNotNumber(vi.name, nodeName, vi.line)
	}
	if nl, ok := vi.expr.(*ast.NumberLiteral); ok {
		return nl.Value, nil
	}
	result, err := vi.expr.Evaluate(symbols)
	if err != nil {
		return 0, err
	}
	nl, ok := result.(*ast.NumberLiteral)
	if !ok {
		return 0, errFieldNotNumber(vi.name, nodeName, vi.line)
	}
	return nl.Value, nil
}

func (vi *valueInfo) str(nodeName string) (string, error) {
	if vi.expr == nil {
		return "", errFieldNotString(vi.name, nodeName, vi.line)
	}
	if sl, ok := vi.expr.(*ast.StringLiteral); ok {
		return sl.Text, nil
	}
	result, err := vi.expr.Evaluate(nil)
	if err != nil {
		return "", err
	}
	sl, ok := result.(*ast.StringLiteral)
	if !ok {
		return "", errFieldNotString(vi.name, nodeName, vi.line)
	}
	return sl.Text, nil
}

// sprite takes the sprite block out of the value. The slot is emptied, so
// extracting the same sprite twice fails.
func (vi *valueInfo) sprite(nodeName string) (*blocks.SpriteBlock, error) {
	if sb, ok := vi.node.(*blocks.SpriteBlock); ok {
		vi.node = nil
		return sb, nil
	}
	return nil, errFieldNotSprite(vi.name, nodeName, vi.line)
}

func (vi *valueInfo) stringsNode(nodeName string) (*blocks.Strings, error) {
	if st, ok := vi.node.(*blocks.Strings); ok {
		vi.node = nil
		return st, nil
	}
	return nil, errFieldNotStrings(vi.name, nodeName, vi.line)
}

func (vi *valueInfo) maskNode(nodeName string) (*sprite.BitMask, error) {
	if mb, ok := vi.node.(*blocks.BitMaskBlock); ok {
		vi.node = nil
		return &mb.Mask, nil
	}
	return nil, errFieldNotMask(vi.name, nodeName, vi.line)
}

// values holds the collected body of one node, ready for access by field
// name.
type values struct {
	nodeName string
	nodeLine int

	named   []*valueInfo
	unnamed []*valueInfo
}

// prepareValues collects the body of ng. Named expression values are
// evaluated immediately with the schema's symbol table; node groups are
// resolved recursively; name tables are splayed into one named entry per
// valid cell.
func (r *resolver) prepareValues(ng *ast.NodeGroup, allowNamed, allowUnnamed bool, symbols []ast.Symbol) (*values, error) {
	vals := &values{
		nodeName: ng.Name,
		nodeLine: ng.Line(),
	}

	for _, nv := range ng.Values.Values {
		if nv.Name == nil {
			if !allowUnnamed {
				return nil, errValueShouldHaveName(nv.Group.Line())
			}
			vi := &valueInfo{name: "???", line: nv.Group.Line()}
			switch group := nv.Group.(type) {
			case *ast.NodeGroup:
				node, err := r.convert(group)
				if err != nil {
					return nil, err
				}
				vi.node = node
			case *ast.ExpressionGroup:
				expr, err := group.Expr.Evaluate(symbols)
				if err != nil {
					return nil, err
				}
				vi.expr = expr
			}
			vals.unnamed = append(vals.unnamed, vi)
			continue
		}

		if !allowNamed {
			return nil, errValueShouldNotHaveName(nv.Group.Line())
		}

		switch group := nv.Group.(type) {
		case *ast.NodeGroup:
			node, err := r.convert(group)
			if err != nil {
				return nil, err
			}
			switch name := nv.Name.(type) {
			case *ast.SingleName:
				vals.named = append(vals.named, &valueInfo{
					name: name.Name,
					line: name.Line(),
					node: node,
				})
			case *ast.NameTable:
				if err := vals.assignNames(node, name); err != nil {
					return nil, err
				}
			}
		case *ast.ExpressionGroup:
			name, ok := nv.Name.(*ast.SingleName)
			if !ok {
				return nil, errExprSingleName(nv.Name.Line())
			}
			expr, err := group.Expr.Evaluate(symbols)
			if err != nil {
				return nil, err
			}
			vals.named = append(vals.named, &valueInfo{
				name: name.Name,
				line: name.Line(),
				expr: expr,
			})
		}
	}
	return vals, nil
}

// assignNames splays node into one named entry per valid cell of the name
// table, row-major.
func (vals *values) assignNames(node blocks.Block, nt *ast.NameTable) error {
	for row, nameRow := range nt.Rows {
		for col := range nameRow.Identifiers {
			il := &nameRow.Identifiers[col]
			if !il.IsValid() {
				continue
			}
			sub, err := node.GetSubNode(row, col, il.Name, il.LineNo)
			if err != nil {
				return err
			}
			vals.named = append(vals.named, &valueInfo{
				name: il.Name,
				line: il.LineNo,
				node: sub,
			})
		}
	}
	return nil
}

// findValue returns the first unused named value with the given field name
// and marks it used.
func (vals *values) findValue(fldName string) (*valueInfo, error) {
	for _, vi := range vals.named {
		if !vi.used && vi.name == fldName {
			vi.used = true
			return vi, nil
		}
	}
	return nil, errFieldMissing(fldName, vals.nodeName, vals.nodeLine)
}

// findOptValue is findValue for optional fields: absence is not an error.
func (vals *values) findOptValue(fldName string) *valueInfo {
	for _, vi := range vals.named {
		if !vi.used && vi.name == fldName {
			vi.used = true
			return vi
		}
	}
	return nil
}

func (vals *values) number(fldName string, symbols []ast.Symbol) (int64, error) {
	vi, err := vals.findValue(fldName)
	if err != nil {
		return 0, err
	}
	return vi.number(vals.nodeName, symbols)
}

func (vals *values) optNumber(fldName string, fallback int64, symbols []ast.Symbol) (int64, error) {
	vi := vals.findOptValue(fldName)
	if vi == nil {
		return fallback, nil
	}
	return vi.number(vals.nodeName, symbols)
}

func (vals *values) str(fldName string) (string, error) {
	vi, err := vals.findValue(fldName)
	if err != nil {
		return "", err
	}
	return vi.str(vals.nodeName)
}

func (vals *values) sprite(fldName string) (*blocks.SpriteBlock, error) {
	vi, err := vals.findValue(fldName)
	if err != nil {
		return nil, err
	}
	return vi.sprite(vals.nodeName)
}

func (vals *values) stringsNode(fldName string) (*blocks.Strings, error) {
	vi, err := vals.findValue(fldName)
	if err != nil {
		return nil, err
	}
	return vi.stringsNode(vals.nodeName)
}

func (vals *values) optMask() (*sprite.BitMask, error) {
	vi := vals.findOptValue("mask")
	if vi == nil {
		return nil, nil
	}
	return vi.maskNode(vals.nodeName)
}

// verifyUsage warns about values that no field consumed.
func (vals *values) verifyUsage(r *resolver) {
	for _, vi := range vals.unnamed {
		if !vi.used {
			r.warn(warnUnusedUnnamed(vals.nodeName, vi.line))
		}
	}
	for _, vi := range vals.named {
		if !vi.used {
			r.warn(warnUnusedNamed(vi.name, vals.nodeName, vi.line))
		}
	}
}
