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

package blocks

import (
	"fmt"
)

// Error is a block construction or emission failure. Line is the source
// line of the triggering declaration, or 0 when none is known.
type Error struct {
	code    uint32
	message string
	line    int
}

var _ error = (*Error)(nil)

func (err *Error) Error() string {
	if err.line > 0 {
		return fmt.Sprintf("Error at line %d: %s", err.line, err.message)
	}
	return fmt.Sprintf("Error: %s", err.message)
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

func errNoSubNodes(row, col int, name string, line int) error {
	return &Error{
		code: 5000,
		message: fmt.Sprintf(
			"Cannot assign sub node (row=%d, column=%d) to variable %q",
			row, col, name,
		),
		line: line,
	}
}

func errImageLoad(file string, line int, cause error) error {
	return &Error{
		code:    5001,
		message: fmt.Sprintf("Loading of image %q failed: %v", file, cause),
		line:    line,
	}
}

func errSpriteCut(name string, line int, cause error) error {
	return &Error{
		code:    5002,
		message: fmt.Sprintf("Loading of the sprite for %q failed: %v", name, cause),
		line:    line,
	}
}

func errUnknownLanguage(code string, line int) error {
	return &Error{
		code:    5003,
		message: fmt.Sprintf("Language %q is not known", code),
		line:    line,
	}
}

func errTextConflict(name, lang string, line, prevLine int) error {
	return &Error{
		code: 5004,
		message: fmt.Sprintf(
			"Text for string %q in language %q is already defined at line %d",
			name, lang, prevLine,
		),
		line: line,
	}
}

func errMissingString(name string) error {
	return &Error{
		code:    5005,
		message: fmt.Sprintf("Required string %q is not defined", name),
		line:    0,
	}
}

func errMissingDefaultText(name string, line int) error {
	return &Error{
		code:    5006,
		message: fmt.Sprintf("String %q has no default-language text", name),
		line:    line,
	}
}
