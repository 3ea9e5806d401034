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
	"fmt"
)

// Error is a semantic error. Resolution stops at the first one.
type Error struct {
	code    uint32
	message string
	line    int
}

var _ error = (*Error)(nil)

func (err *Error) Error() string {
	return fmt.Sprintf("Error at line %d: %s", err.line, err.message)
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

func errUnknownNode(name string, line int) error {
	return &Error{
		code:    3000,
		message: fmt.Sprintf("Do not know how to check and simplify node %q", name),
		line:    line,
	}
}

func errNoArguments(node string, expected, line int) error {
	return &Error{
		code: 3001,
		message: fmt.Sprintf(
			"No arguments found for node %q (expected %d)", node, expected,
		),
		line: line,
	}
}

func errArgumentCount(node string, found, expected, line int) error {
	return &Error{
		code: 3002,
		message: fmt.Sprintf(
			"Found %d arguments for node %q, expected %d", found, node, expected,
		),
		line: line,
	}
}

func errNoArgumentsExpected(node string, found, line int) error {
	return &Error{
		code: 3003,
		message: fmt.Sprintf(
			"No arguments expected for node %q (found %d)", node, found,
		),
		line: line,
	}
}

func errArgNotString(index int, node string, line int) error {
	return &Error{
		code: 3004,
		message: fmt.Sprintf(
			"Expression parameter %d of node %q is not a string", index+1, node,
		),
		line: line,
	}
}

func errValueShouldHaveName(line int) error {
	return &Error{
		code:    3005,
		message: "Value should have a name",
		line:    line,
	}
}

func errValueShouldNotHaveName(line int) error {
	return &Error{
		code:    3006,
		message: "Value should not have a name",
		line:    line,
	}
}

func errExprSingleName(line int) error {
	return &Error{
		code:    3007,
		message: "Expression must have a single name",
		line:    line,
	}
}

func errOnlyNodeGroups(line int) error {
	return &Error{
		code:    3008,
		message: "Only node groups may be added",
		line:    line,
	}
}

func errNotGameBlock(line int) error {
	return &Error{
		code:    3009,
		message: "Only game blocks can be added to a \"file\" node",
		line:    line,
	}
}

func errNotFileNode(line int) error {
	return &Error{
		code:    3010,
		message: "Node is not a file node",
		line:    line,
	}
}

func errFieldMissing(fld, node string, line int) error {
	return &Error{
		code: 3011,
		message: fmt.Sprintf(
			"Cannot find a value for field %q in node %q", fld, node,
		),
		line: line,
	}
}

func errFieldNotNumber(fld, node string, line int) error {
	return &Error{
		code: 3012,
		message: fmt.Sprintf(
			"Field %q of node %q is not a numeric value", fld, node,
		),
		line: line,
	}
}

func errFieldNotString(fld, node string, line int) error {
	return &Error{
		code: 3013,
		message: fmt.Sprintf(
			"Field %q of node %q is not a string value", fld, node,
		),
		line: line,
	}
}

func errFieldNotSprite(fld, node string, line int) error {
	return &Error{
		code: 3014,
		message: fmt.Sprintf(
			"Field %q of node %q is not a sprite node", fld, node,
		),
		line: line,
	}
}

func errFieldNotStrings(fld, node string, line int) error {
	return &Error{
		code: 3015,
		message: fmt.Sprintf(
			"Field %q of node %q is not a strings node", fld, node,
		),
		line: line,
	}
}

func errFieldNotMask(fld, node string, line int) error {
	return &Error{
		code: 3016,
		message: fmt.Sprintf(
			"Field %q of node %q is not a mask node", fld, node,
		),
		line: line,
	}
}

func errNotChildNode(kind string, line int) error {
	return &Error{
		code:    3017,
		message: fmt.Sprintf("Node is not a %q node", kind),
		line:    line,
	}
}

func errTooManyChildren(kind, node string, line int) error {
	return &Error{
		code:    3018,
		message: fmt.Sprintf("Too many %s nodes in a %q block", kind, node),
		line:    line,
	}
}

func errSpriteLoadFailed(name string, line int, cause error) error {
	return &Error{
		code: 3019,
		message: fmt.Sprintf(
			"Loading of the sprite for %q failed: %v", name, cause,
		),
		line: line,
	}
}

func errUnknownLanguage(code string, line int) error {
	return &Error{
		code:    3020,
		message: fmt.Sprintf("Language %q is not known", code),
		line:    line,
	}
}

func errUnknownMask(name string, line int) error {
	return &Error{
		code:    3021,
		message: fmt.Sprintf("Cannot find a bitmask named %q", name),
		line:    line,
	}
}
