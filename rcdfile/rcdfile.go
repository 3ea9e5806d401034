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

// Package rcdfile writes RCD containers: the RCDF file header followed by
// length-framed, tagged blocks. Blocks are interned by exact byte content;
// the writer assigns 1-based block numbers in first-occurrence order.
package rcdfile

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"
)

// Magic is the RCD container signature, followed by FileVersion as a
// little-endian u32.
const (
	Magic       = "RCDF"
	FileVersion = 1

	// BlockHeaderSize covers the 4-byte tag, u32 version and u32 length.
	BlockHeaderSize = 12
)

// FileBlock is one block being assembled: a fixed-size buffer and a write
// cursor. StartSave sizes the buffer; the Save calls must then fill it
// exactly.
type FileBlock struct {
	data      []byte
	saveIndex int
}

// StartSave writes the block header and allocates room for dataLength
// payload bytes.
func (fb *FileBlock) StartSave(blkName string, version uint32, dataLength int) {
	if len(blkName) != 4 {
		panic(fmt.Sprintf("rcdfile: block tag %q is not 4 bytes", blkName))
	}
	fb.data = make([]byte, BlockHeaderSize+dataLength)
	fb.saveIndex = 0
	fb.SaveBytes([]byte(blkName))
	fb.SaveUint32(version)
	fb.SaveUint32(uint32(dataLength))
}

func (fb *FileBlock) SaveUint8(d uint8) {
	fb.data[fb.saveIndex] = d
	fb.saveIndex++
}

func (fb *FileBlock) SaveUint16(d uint16) {
	binary.LittleEndian.PutUint16(fb.data[fb.saveIndex:], d)
	fb.saveIndex += 2
}

func (fb *FileBlock) SaveUint32(d uint32) {
	binary.LittleEndian.PutUint32(fb.data[fb.saveIndex:], d)
	fb.saveIndex += 4
}

func (fb *FileBlock) SaveInt16(d int16) {
	fb.SaveUint16(uint16(d))
}

func (fb *FileBlock) SaveBytes(d []byte) {
	copy(fb.data[fb.saveIndex:], d)
	fb.saveIndex += len(d)
}

// CheckEndSave panics if the cursor does not sit at the end of the buffer.
// A mismatch means a block computed its size wrongly.
func (fb *FileBlock) CheckEndSave() {
	if fb.saveIndex != len(fb.data) {
		panic(fmt.Sprintf(
			"rcdfile: block %q saved %d of %d bytes",
			fb.data[:4], fb.saveIndex, len(fb.data),
		))
	}
}

// FileWriter collects the blocks of one RCD file.
type FileWriter struct {
	blocks []*FileBlock
}

func NewFileWriter() *FileWriter {
	return &FileWriter{}
}

// AddBlock interns blk and returns its 1-based block number. A block whose
// bytes match an earlier block is discarded and the earlier number is
// returned.
func (fw *FileWriter) AddBlock(blk *FileBlock) uint32 {
	for ii, have := range fw.blocks {
		if bytes.Equal(have.data, blk.data) {
			return uint32(ii) + 1
		}
	}
	fw.blocks = append(fw.blocks, blk)
	return uint32(len(fw.blocks))
}

// BlockCount returns the number of interned blocks.
func (fw *FileWriter) BlockCount() int {
	return len(fw.blocks)
}

// Bytes returns the entire file content: header plus all blocks in
// insertion order.
func (fw *FileWriter) Bytes() []byte {
	size := 8
	for _, blk := range fw.blocks {
		size += len(blk.data)
	}
	out := make([]byte, 0, size)
	out = append(out, Magic...)
	out = binary.LittleEndian.AppendUint32(out, FileVersion)
	for _, blk := range fw.blocks {
		out = append(out, blk.data...)
	}
	return out
}

// WriteFile writes the RCD container to path.
func (fw *FileWriter) WriteFile(path string) error {
	fp, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o666)
	if err != nil {
		return err
	}
	_, writeErr := fp.Write(fw.Bytes())
	closeErr := fp.Close()
	if writeErr != nil {
		return writeErr
	}
	return closeErr
}
