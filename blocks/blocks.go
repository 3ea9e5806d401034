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

// Package blocks holds the typed, resolved block tree of an RCD file. Each
// block kind knows its own binary layout; writing a block registers its
// children first so child block numbers are known when the parent payload
// is built.
package blocks

import (
	"github.com/dashdan/rcdgen/rcdfile"
)

// Block is a resolved node. Most blocks do not support sub-node retrieval;
// SheetBlock overrides it to cut sprites for name-table cells.
type Block interface {
	GetSubNode(row, col int, name string, line int) (Block, error)
}

// GameBlock is a block that can appear at the top level of an RCD file.
// Write registers the block (and its children) with the writer and returns
// the assigned block number.
type GameBlock interface {
	Block
	Write(fw *rcdfile.FileWriter) (uint32, error)
}

// baseBlock supplies the default, failing GetSubNode.
type baseBlock struct{}

func (baseBlock) GetSubNode(row, col int, name string, line int) (Block, error) {
	return nil, errNoSubNodes(row, col, name, line)
}

// FileNode is one output file and the game blocks stored in it.
type FileNode struct {
	baseBlock

	FileName string
	Blocks   []GameBlock
}

// Write emits all game blocks into a fresh writer and saves the container
// to the node's file name.
func (fn *FileNode) Write() error {
	fw := rcdfile.NewFileWriter()
	for _, blk := range fn.Blocks {
		if _, err := blk.Write(fw); err != nil {
			return err
		}
	}
	return fw.WriteFile(fn.FileName)
}

// FileNodeList is the root of the resolved tree.
type FileNodeList struct {
	Files []*FileNode
}

// writeSpriteRefs writes each sprite and returns the block numbers, 0 for
// empty or absent sprites.
func writeSpriteRefs(fw *rcdfile.FileWriter, sprites []*SpriteBlock) ([]uint32, error) {
	refs := make([]uint32, len(sprites))
	for ii, spr := range sprites {
		if spr == nil {
			continue
		}
		ref, err := spr.Write(fw)
		if err != nil {
			return nil, err
		}
		refs[ii] = ref
	}
	return refs, nil
}
