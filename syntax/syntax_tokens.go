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

package syntax

import (
	"fmt"
)

type TokenKind uint8

const (
	T_EOF TokenKind = iota

	T_IDENT
	T_NUMBER
	T_STRING

	T_MINUS
	T_COLON
	T_SEMICOLON
	T_COMMA
	T_PIPE

	T_OPEN_PAREN
	T_CLOSE_PAREN
	T_OPEN_CURL
	T_CLOSE_CURL
)

func (k TokenKind) String() string {
	switch k {
	case T_EOF:
		return "EOF"
	case T_IDENT:
		return "IDENT"
	case T_NUMBER:
		return "NUMBER"
	case T_STRING:
		return "STRING"
	case T_MINUS:
		return "MINUS"
	case T_COLON:
		return "COLON"
	case T_SEMICOLON:
		return "SEMICOLON"
	case T_COMMA:
		return "COMMA"
	case T_PIPE:
		return "PIPE"
	case T_OPEN_PAREN:
		return "OPEN_PAREN"
	case T_CLOSE_PAREN:
		return "CLOSE_PAREN"
	case T_OPEN_CURL:
		return "OPEN_CURL"
	case T_CLOSE_CURL:
		return "CLOSE_CURL"
	default:
		return fmt.Sprintf("TokenKind(%d)", uint8(k))
	}
}

type Token struct {
	Kind TokenKind
	Text string // identifier name, decoded string text, or number digits
	Line int    // 1-based source line
}

type Tokens struct {
	src  []byte
	line int
}

func NewTokens(src []byte) *Tokens {
	return &Tokens{
		src:  src,
		line: 1,
	}
}

func (t *Tokens) Next(token *Token) error {
	t.skipBlank()
	if len(t.src) == 0 {
		*token = Token{Kind: T_EOF, Line: t.line}
		return nil
	}

	c := t.src[0]
	var kind TokenKind
	switch c {
	case '-':
		kind = T_MINUS
		goto len1
	case ':':
		kind = T_COLON
		goto len1
	case ';':
		kind = T_SEMICOLON
		goto len1
	case ',':
		kind = T_COMMA
		goto len1
	case '|':
		kind = T_PIPE
		goto len1
	case '(':
		kind = T_OPEN_PAREN
		goto len1
	case ')':
		kind = T_CLOSE_PAREN
		goto len1
	case '{':
		kind = T_OPEN_CURL
		goto len1
	case '}':
		kind = T_CLOSE_CURL
		goto len1
	case '"':
		return t.nextString(token)
	}

	if c >= '0' && c <= '9' {
		return t.nextNumber(token)
	}
	if isIdentStart(c) {
		t.nextIdent(token)
		return nil
	}
	return errUnexpectedCharacter(c, t.line)

len1:
	*token = Token{Kind: kind, Line: t.line}
	t.src = t.src[1:]
	return nil
}

// skipBlank consumes whitespace and '//' comments, counting newlines.
func (t *Tokens) skipBlank() {
	for len(t.src) > 0 {
		c := t.src[0]
		if c == ' ' || c == '\t' || c == '\r' {
			t.src = t.src[1:]
			continue
		}
		if c == '\n' {
			t.line++
			t.src = t.src[1:]
			continue
		}
		if c == '/' && len(t.src) > 1 && t.src[1] == '/' {
			ii := 2
			for ii < len(t.src) && t.src[ii] != '\n' {
				ii++
			}
			t.src = t.src[ii:]
			continue
		}
		return
	}
}

func (t *Tokens) nextIdent(token *Token) {
	ii := 1
	for ii < len(t.src) && isIdentPart(t.src[ii]) {
		ii++
	}
	*token = Token{
		Kind: T_IDENT,
		Text: string(t.src[:ii]),
		Line: t.line,
	}
	t.src = t.src[ii:]
}

func (t *Tokens) nextNumber(token *Token) error {
	ii := 1
	for ii < len(t.src) && t.src[ii] >= '0' && t.src[ii] <= '9' {
		ii++
	}
	if ii < len(t.src) && isIdentStart(t.src[ii]) {
		return errMalformedNumber(string(t.src[:ii+1]), t.line)
	}
	*token = Token{
		Kind: T_NUMBER,
		Text: string(t.src[:ii]),
		Line: t.line,
	}
	t.src = t.src[ii:]
	return nil
}

func (t *Tokens) nextString(token *Token) error {
	startLine := t.line
	var text []byte
	ii := 1
	for {
		if ii >= len(t.src) {
			return errUnterminatedString(startLine)
		}
		c := t.src[ii]
		if c == '"' {
			ii++
			break
		}
		if c == '\n' {
			return errUnterminatedString(startLine)
		}
		if c == '\\' {
			if ii+1 >= len(t.src) {
				return errUnterminatedString(startLine)
			}
			switch t.src[ii+1] {
			case 'n':
				text = append(text, '\n')
			case 't':
				text = append(text, '\t')
			case '"':
				text = append(text, '"')
			case '\\':
				text = append(text, '\\')
			default:
				return errBadEscape(t.src[ii+1], t.line)
			}
			ii += 2
			continue
		}
		text = append(text, c)
		ii++
	}
	*token = Token{
		Kind: T_STRING,
		Text: string(text),
		Line: startLine,
	}
	t.src = t.src[ii:]
	return nil
}

func isIdentStart(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') || c == '_' || c == '#'
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}
