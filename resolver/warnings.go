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

// Warning is a non-fatal diagnostic. Warnings never change the exit code.
type Warning struct {
	code    uint32
	message string
	line    int
}

func (w *Warning) String() string {
	return fmt.Sprintf("Warning at line %d: %s", w.line, w.message)
}

func (w *Warning) Code() uint32 {
	return w.code
}

func (w *Warning) Message() string {
	return w.message
}

func (w *Warning) Line() int {
	return w.line
}

func warnUnexpectedName(line int) *Warning {
	return &Warning{
		code:    4000,
		message: "Unexpected name encountered, ignoring",
		line:    line,
	}
}

func warnUnusedNamed(name, node string, line int) *Warning {
	return &Warning{
		code:    4001,
		message: fmt.Sprintf("Named value %q was not used in node %q", name, node),
		line:    line,
	}
}

func warnUnusedUnnamed(node string, line int) *Warning {
	return &Warning{
		code:    4002,
		message: fmt.Sprintf("Unnamed value in node %q was not used", node),
		line:    line,
	}
}
