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

// Package resolver walks the parsed tree and builds the typed block tree:
// it validates node schemas, evaluates expressions against per-schema
// symbol environments, loads referenced images, and splays name tables
// into sub-sprites. The first semantic error aborts resolution; unused
// values only produce warnings.
package resolver

import (
	"github.com/dashdan/rcdgen/ast"
	"github.com/dashdan/rcdgen/blocks"
)

// Result is a successfully resolved tree plus any warnings found on the
// way.
type Result struct {
	Files    *blocks.FileNodeList
	Warnings []*Warning
}

// Resolve consumes the root named-value list and builds the file nodes.
func Resolve(root *ast.NamedValueList) (*Result, error) {
	r := &resolver{}
	files := &blocks.FileNodeList{}
	for _, nv := range root.Values {
		if nv.Name != nil {
			r.warn(warnUnexpectedName(nv.Name.Line()))
		}
		ng, ok := nv.Group.(*ast.NodeGroup)
		if !ok {
			return nil, errOnlyNodeGroups(nv.Group.Line())
		}
		node, err := r.convert(ng)
		if err != nil {
			return nil, err
		}
		fn, ok := node.(*blocks.FileNode)
		if !ok {
			return nil, errNotFileNode(ng.Line())
		}
		files.Files = append(files.Files, fn)
	}
	return &Result{Files: files, Warnings: r.warnings}, nil
}

type resolver struct {
	warnings []*Warning
}

func (r *resolver) warn(w *Warning) {
	r.warnings = append(r.warnings, w)
}

// convert dispatches a node group to its builder by tag.
func (r *resolver) convert(ng *ast.NodeGroup) (blocks.Block, error) {
	switch ng.Name {
	case "file":
		return r.convertFile(ng)
	case "sheet":
		return r.convertSheet(ng)
	case "sprite":
		return r.convertSprite(ng)
	case "mask":
		return r.convertMask(ng)
	case "recolour":
		return r.convertRecolour(ng)
	case "person_graphics":
		return r.convertPersonGraphics(ng)
	case "frame_data":
		return r.convertFrameData(ng)
	case "string":
		return r.convertString(ng)
	case "strings":
		return r.convertStrings(ng)

	case "TSEL":
		return r.convertTSEL(ng)
	case "TCOR":
		return r.convertTCOR(ng)
	case "SURF":
		return r.convertSURF(ng)
	case "FUND":
		return r.convertFUND(ng)
	case "PATH":
		return r.convertPATH(ng)
	case "PLAT":
		return r.convertPLAT(ng)
	case "SUPP":
		return r.convertSUPP(ng)
	case "PRSG":
		return r.convertPRSG(ng)
	case "ANIM":
		return r.convertANIM(ng)
	case "ANSP":
		return r.convertANSP(ng)
	case "SHOP":
		return r.convertSHOP(ng)
	case "GBOR":
		return r.convertGBOR(ng)
	case "GCHK":
		return r.convertGCHK(ng)
	case "GSLI":
		return r.convertGSLI(ng)
	case "GSCL":
		return r.convertGSCL(ng)
	case "BDIR":
		return r.convertBDIR(ng)
	case "GSLP":
		return r.convertGSLP(ng)
	}
	return nil, errUnknownNode(ng.Name, ng.Line())
}

// expandExpressions checks the positional argument count of a node.
func expandExpressions(ng *ast.NodeGroup, expected int) ([]ast.Expression, error) {
	if len(ng.Exprs) == 0 {
		if expected == 0 {
			return nil, nil
		}
		return nil, errNoArguments(ng.Name, expected, ng.Line())
	}
	if len(ng.Exprs) != expected {
		return nil, errArgumentCount(ng.Name, len(ng.Exprs), expected, ng.Line())
	}
	return ng.Exprs, nil
}

func expandNoExpression(ng *ast.NodeGroup) error {
	if len(ng.Exprs) == 0 {
		return nil
	}
	return errNoArgumentsExpected(ng.Name, len(ng.Exprs), ng.Line())
}

// getString evaluates a positional argument to a string.
func getString(expr ast.Expression, index int, node string) (string, error) {
	if sl, ok := expr.(*ast.StringLiteral); ok {
		return sl.Text, nil
	}
	result, err := expr.Evaluate(nil)
	if err != nil {
		return "", err
	}
	sl, ok := result.(*ast.StringLiteral)
	if !ok {
		return "", errArgNotString(index, node, expr.Line())
	}
	return sl.Text, nil
}

// convertFile builds a 'file' node: one string argument naming the output
// file, and a body of game blocks.
func (r *resolver) convertFile(ng *ast.NodeGroup) (blocks.Block, error) {
	args, err := expandExpressions(ng, 1)
	if err != nil {
		return nil, err
	}
	fileName, err := getString(args[0], 0, "file")
	if err != nil {
		return nil, err
	}

	fn := &blocks.FileNode{FileName: fileName}
	for _, nv := range ng.Values.Values {
		if nv.Name != nil {
			r.warn(warnUnexpectedName(nv.Name.Line()))
		}
		child, ok := nv.Group.(*ast.NodeGroup)
		if !ok {
			return nil, errOnlyNodeGroups(nv.Group.Line())
		}
		node, err := r.convert(child)
		if err != nil {
			return nil, err
		}
		gb, ok := node.(blocks.GameBlock)
		if !ok {
			return nil, errNotGameBlock(nv.Group.Line())
		}
		fn.Blocks = append(fn.Blocks, gb)
	}
	return fn, nil
}
