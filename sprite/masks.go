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

// maskInfo is an XBM-style bitmap: rows padded to whole bytes, bit ii of a
// byte covering pixel x = 8*byte + ii. Bit 1 keeps the pixel, bit 0 hides
// it.
type maskInfo struct {
	width  int
	height int
	bits   []byte
	name   string
}

const voxelMaskSize = 64

// voxel64 is the silhouette of one voxel at 64px tile width: the 64x32 top
// diamond extruded 32 rows down.
var voxel64 = makeVoxelMask()

var masks = []*maskInfo{
	voxel64,
}

// KnownMask reports whether a bitmask with the given name exists.
func KnownMask(name string) bool {
	_, err := getMask(name)
	return err == nil
}

func getMask(name string) (*maskInfo, error) {
	for _, mask := range masks {
		if mask.name == name {
			return mask, nil
		}
	}
	return nil, errUnknownMask(name)
}

func makeVoxelMask() *maskInfo {
	stride := voxelMaskSize / 8
	bits := make([]byte, stride*voxelMaskSize)
	for x := 0; x < voxelMaskSize; x++ {
		dx := 2*x - 63
		if dx < 0 {
			dx = -dx
		}
		top := -1
		for y := 0; y < 32; y++ {
			dy := 2*y - 31
			if dy < 0 {
				dy = -dy
			}
			if dx+2*dy <= 65 {
				top = y
				break
			}
		}
		if top < 0 {
			continue
		}
		bottom := (31 - top) + 32
		for y := top; y <= bottom; y++ {
			bits[y*stride+x/8] |= 1 << (x & 7)
		}
	}
	return &maskInfo{
		width:  voxelMaskSize,
		height: voxelMaskSize,
		bits:   bits,
		name:   "voxel64",
	}
}
