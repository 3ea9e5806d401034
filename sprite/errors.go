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

package sprite

import (
	"fmt"
)

func errNotPng(path string, err error) error {
	return fmt.Errorf("cannot decode %q as a PNG image: %w", path, err)
}

func errBadImageFormat() error {
	return fmt.Errorf("incorrect type of image (expected an 8bpp paletted image or RGBA)")
}

func errUnknownMask(name string) error {
	return fmt.Errorf("cannot find a bitmask named %q", name)
}

func errNot8bpp() error {
	return fmt.Errorf("sprites can only be cut from an 8bpp paletted image")
}

func errBadSpriteRect(reason string) error {
	return fmt.Errorf("sprite rectangle is invalid: %s", reason)
}
