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

// Error is a tokenize or parse failure at a known source line.
type Error struct {
	code    uint32
	message string
	line    int
}

var _ error = (*Error)(nil)

func (err *Error) Error() string {
	return fmt.Sprintf("Syntax error at line %d: %s", err.line, err.message)
}

func (err *Error) Code() uint32 {
	return err.code
}

func (err *Error) Message() string {
	return err.message
}

func (err *Error) Line() int {
	return err.line
}

func errUnexpectedCharacter(c byte, line int) error {
	return &Error{
		code:    2000,
		message: fmt.Sprintf("Unexpected character %q", rune(c)),
		line:    line,
	}
}

func errMalformedNumber(text string, line int) error {
	return &Error{
		code:    2001,
		message: fmt.Sprintf("Malformed number %q", text),
		line:    line,
	}
}

func errUnterminatedString(line int) error {
	return &Error{
		code:    2002,
		message: "String literal is not terminated",
		line:    line,
	}
}

func errBadEscape(c byte, line int) error {
	return &Error{
		code:    2003,
		message: fmt.Sprintf("Unknown escape sequence '\\%c' in string literal", c),
		line:    line,
	}
}

func errNumberOverflow(text string, line int) error {
	return &Error{
		code:    2004,
		message: fmt.Sprintf("Number %q does not fit in 64 bits", text),
		line:    line,
	}
}

func errExpectedToken(want TokenKind, got *Token) error {
	return &Error{
		code:    2005,
		message: fmt.Sprintf("Expected %v, found %v", want, got.Kind),
		line:    got.Line,
	}
}

func errExpectedExpression(got *Token) error {
	return &Error{
		code:    2006,
		message: fmt.Sprintf("Expected an expression, found %v", got.Kind),
		line:    got.Line,
	}
}
