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

// Name labels the value part of a named value. It is either a SingleName or
// a NameTable.
type Name interface {
	Line() int
	NameCount() int
}

type SingleName struct {
	line int
	Name string
}

func NewSingleName(line int, name string) *SingleName {
	return &SingleName{line: line, Name: name}
}

func (sn *SingleName) Line() int {
	return sn.line
}

func (sn *SingleName) NameCount() int {
	return 1
}

// IdentifierLine is one cell of a name table.
type IdentifierLine struct {
	LineNo int
	Name   string
}

// IsValid reports whether the cell names a sub-node. Empty cells and cells
// starting with '_' are placeholders and are skipped.
func (il *IdentifierLine) IsValid() bool {
	return il.Name != "" && il.Name[0] != '_'
}

type NameRow struct {
	Identifiers []IdentifierLine
}

func (nr *NameRow) Line() int {
	if len(nr.Identifiers) > 0 {
		return nr.Identifiers[0].LineNo
	}
	return 0
}

func (nr *NameRow) NameCount() int {
	count := 0
	for ii := range nr.Identifiers {
		if nr.Identifiers[ii].IsValid() {
			count++
		}
	}
	return count
}

// NameTable is a rectangular grid of identifiers. Pairing it with a value
// splays that value into sub-values addressed by (row, column, name).
type NameTable struct {
	Rows []*NameRow
}

func (nt *NameTable) Line() int {
	for _, row := range nt.Rows {
		if line := row.Line(); line > 0 {
			return line
		}
	}
	return 0
}

func (nt *NameTable) NameCount() int {
	count := 0
	for _, row := range nt.Rows {
		count += row.NameCount()
	}
	return count
}
