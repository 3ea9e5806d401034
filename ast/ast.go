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

// Package ast holds the declaration tree produced by the parser: expressions,
// value labels, groups, and named values. Expressions are immutable once
// built; Evaluate always returns a fresh literal.
package ast

// A Symbol binds an identifier to a numeric value inside one node schema.
type Symbol struct {
	Name  string
	Value int64
}

// Lookup scans the table for name. Nested tables are not supported; a schema
// supplies its entire environment in one slice.
func Lookup(symbols []Symbol, name string) (int64, bool) {
	for _, sym := range symbols {
		if sym.Name == name {
			return sym.Value, true
		}
	}
	return 0, false
}

type Expression interface {
	Line() int

	// Evaluate reduces the expression to a literal using the given symbol
	// environment. The receiver is never modified.
	Evaluate(symbols []Symbol) (Expression, error)
}

type NumberLiteral struct {
	line  int
	Value int64
}

func NewNumberLiteral(line int, value int64) *NumberLiteral {
	return &NumberLiteral{line: line, Value: value}
}

func (n *NumberLiteral) Line() int {
	return n.line
}

func (n *NumberLiteral) Evaluate(symbols []Symbol) (Expression, error) {
	return &NumberLiteral{line: n.line, Value: n.Value}, nil
}

type StringLiteral struct {
	line int
	Text string
}

func NewStringLiteral(line int, text string) *StringLiteral {
	return &StringLiteral{line: line, Text: text}
}

func (s *StringLiteral) Line() int {
	return s.line
}

func (s *StringLiteral) Evaluate(symbols []Symbol) (Expression, error) {
	return &StringLiteral{line: s.line, Text: s.Text}, nil
}

type IdentifierLiteral struct {
	line int
	Name string
}

func NewIdentifierLiteral(line int, name string) *IdentifierLiteral {
	return &IdentifierLiteral{line: line, Name: name}
}

func (id *IdentifierLiteral) Line() int {
	return id.line
}

func (id *IdentifierLiteral) Evaluate(symbols []Symbol) (Expression, error) {
	if value, ok := Lookup(symbols, id.Name); ok {
		return &NumberLiteral{line: id.line, Value: value}, nil
	}
	return nil, errUnknownIdentifier(id.Name, id.line)
}

// UnaryMinus negates its child expression. It is the only unary operator.
type UnaryMinus struct {
	line  int
	Child Expression
}

func NewUnaryMinus(line int, child Expression) *UnaryMinus {
	return &UnaryMinus{line: line, Child: child}
}

func (u *UnaryMinus) Line() int {
	return u.line
}

func (u *UnaryMinus) Evaluate(symbols []Symbol) (Expression, error) {
	result, err := u.Child.Evaluate(symbols)
	if err != nil {
		return nil, err
	}
	if number, ok := result.(*NumberLiteral); ok {
		number.Value = -number.Value
		return number, nil
	}
	return nil, errCannotNegate(u.line)
}
