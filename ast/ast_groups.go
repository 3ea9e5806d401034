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

package ast

// Group is the value side of a named value: either a node group
// TAG(args){ body } or a single expression.
type Group interface {
	Line() int
}

type NodeGroup struct {
	line   int
	Name   string
	Exprs  []Expression
	Values *NamedValueList
}

func NewNodeGroup(line int, name string, exprs []Expression, values *NamedValueList) *NodeGroup {
	if values == nil {
		values = &NamedValueList{}
	}
	return &NodeGroup{line: line, Name: name, Exprs: exprs, Values: values}
}

func (ng *NodeGroup) Line() int {
	return ng.line
}

type ExpressionGroup struct {
	Expr Expression
}

func (eg *ExpressionGroup) Line() int {
	return eg.Expr.Line()
}

// NamedValue pairs an optional name with a group.
type NamedValue struct {
	Name  Name // may be nil
	Group Group
}

type NamedValueList struct {
	Values []*NamedValue
}
