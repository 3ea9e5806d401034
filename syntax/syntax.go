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

// Package syntax tokenizes and parses RCD source files into the ast tree.
//
// The grammar, informally:
//
//	file        := named-value*
//	named-value := [ name ':' ] group
//	name        := IDENT | '{' name-row ('|' name-row)* '}'
//	name-row    := cell (',' cell)*
//	group       := IDENT [ '(' expr-list ')' ] '{' named-value* '}'
//	             | expr ';'
//	expr        := '-' expr | '(' expr ')' | NUMBER | STRING | IDENT
//
// Every token carries its 1-based source line for diagnostics.
package syntax

import (
	"os"
	"strconv"

	"github.com/dashdan/rcdgen/ast"
)

// Parse parses a whole source buffer and returns the root named-value list.
func Parse(src []byte) (*ast.NamedValueList, error) {
	p := &parser{tokens: NewTokens(src)}
	return p.parseValues(T_EOF)
}

// ParseFile reads and parses the file at path.
func ParseFile(path string) (*ast.NamedValueList, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(src)
}

type parser struct {
	tokens *Tokens
	peeked []Token
}

func (p *parser) peek(ii int) (*Token, error) {
	for len(p.peeked) <= ii {
		var token Token
		if err := p.tokens.Next(&token); err != nil {
			return nil, err
		}
		p.peeked = append(p.peeked, token)
	}
	return &p.peeked[ii], nil
}

func (p *parser) next() (Token, error) {
	token, err := p.peek(0)
	if err != nil {
		return Token{}, err
	}
	p.peeked = p.peeked[1:]
	return *token, nil
}

func (p *parser) expect(kind TokenKind) (Token, error) {
	token, err := p.next()
	if err != nil {
		return Token{}, err
	}
	if token.Kind != kind {
		return Token{}, errExpectedToken(kind, &token)
	}
	return token, nil
}

// parseValues parses named values until the given terminator is seen. The
// terminator itself is consumed.
func (p *parser) parseValues(until TokenKind) (*ast.NamedValueList, error) {
	list := &ast.NamedValueList{}
	for {
		token, err := p.peek(0)
		if err != nil {
			return nil, err
		}
		if token.Kind == until {
			_, err := p.next()
			return list, err
		}
		if token.Kind == T_EOF {
			return nil, errExpectedToken(until, token)
		}
		value, err := p.parseNamedValue()
		if err != nil {
			return nil, err
		}
		list.Values = append(list.Values, value)
	}
}

func (p *parser) parseNamedValue() (*ast.NamedValue, error) {
	token, err := p.peek(0)
	if err != nil {
		return nil, err
	}

	var name ast.Name
	switch token.Kind {
	case T_OPEN_CURL:
		name, err = p.parseNameTable()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(T_COLON); err != nil {
			return nil, err
		}
	case T_IDENT:
		after, err := p.peek(1)
		if err != nil {
			return nil, err
		}
		if after.Kind == T_COLON {
			ident, _ := p.next()
			p.next()
			name = ast.NewSingleName(ident.Line, ident.Text)
		}
	}

	group, err := p.parseGroup()
	if err != nil {
		return nil, err
	}
	return &ast.NamedValue{Name: name, Group: group}, nil
}

func (p *parser) parseGroup() (ast.Group, error) {
	token, err := p.peek(0)
	if err != nil {
		return nil, err
	}
	if token.Kind == T_IDENT {
		after, err := p.peek(1)
		if err != nil {
			return nil, err
		}
		if after.Kind == T_OPEN_PAREN || after.Kind == T_OPEN_CURL {
			return p.parseNodeGroup()
		}
	}

	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(T_SEMICOLON); err != nil {
		return nil, err
	}
	return &ast.ExpressionGroup{Expr: expr}, nil
}

func (p *parser) parseNodeGroup() (*ast.NodeGroup, error) {
	tag, err := p.expect(T_IDENT)
	if err != nil {
		return nil, err
	}

	var exprs []ast.Expression
	token, err := p.peek(0)
	if err != nil {
		return nil, err
	}
	if token.Kind == T_OPEN_PAREN {
		p.next()
		closer, err := p.peek(0)
		if err != nil {
			return nil, err
		}
		for closer.Kind != T_CLOSE_PAREN {
			expr, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			exprs = append(exprs, expr)
			closer, err = p.peek(0)
			if err != nil {
				return nil, err
			}
			if closer.Kind == T_COMMA {
				p.next()
				closer, err = p.peek(0)
				if err != nil {
					return nil, err
				}
			}
		}
		p.next()
	}

	if _, err := p.expect(T_OPEN_CURL); err != nil {
		return nil, err
	}
	values, err := p.parseValues(T_CLOSE_CURL)
	if err != nil {
		return nil, err
	}
	return ast.NewNodeGroup(tag.Line, tag.Text, exprs, values), nil
}

func (p *parser) parseExpression() (ast.Expression, error) {
	token, err := p.next()
	if err != nil {
		return nil, err
	}
	switch token.Kind {
	case T_MINUS:
		child, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		return ast.NewUnaryMinus(token.Line, child), nil
	case T_NUMBER:
		value, err := strconv.ParseInt(token.Text, 10, 64)
		if err != nil {
			return nil, errNumberOverflow(token.Text, token.Line)
		}
		return ast.NewNumberLiteral(token.Line, value), nil
	case T_STRING:
		return ast.NewStringLiteral(token.Line, token.Text), nil
	case T_IDENT:
		return ast.NewIdentifierLiteral(token.Line, token.Text), nil
	case T_OPEN_PAREN:
		inner, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(T_CLOSE_PAREN); err != nil {
			return nil, err
		}
		return inner, nil
	default:
		return nil, errExpectedExpression(&token)
	}
}

func (p *parser) parseNameTable() (*ast.NameTable, error) {
	if _, err := p.expect(T_OPEN_CURL); err != nil {
		return nil, err
	}

	table := &ast.NameTable{}
	row := &ast.NameRow{}
	for {
		token, err := p.peek(0)
		if err != nil {
			return nil, err
		}
		cell := ast.IdentifierLine{LineNo: token.Line}
		if token.Kind == T_IDENT {
			cell.Name = token.Text
			p.next()
			token, err = p.peek(0)
			if err != nil {
				return nil, err
			}
		}
		row.Identifiers = append(row.Identifiers, cell)

		switch token.Kind {
		case T_COMMA:
			p.next()
		case T_PIPE:
			p.next()
			table.Rows = append(table.Rows, row)
			row = &ast.NameRow{}
		case T_CLOSE_CURL:
			p.next()
			table.Rows = append(table.Rows, row)
			return table, nil
		default:
			return nil, errExpectedToken(T_CLOSE_CURL, token)
		}
	}
}
