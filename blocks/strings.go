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
	"sort"

	"github.com/dashdan/rcdgen/rcdfile"
)

// Languages supported by the game. Index 0 is the default language with the
// empty code; every string must define it.
var Languages = [...]string{"", "en_GB", "nl_NL"}

const LanguageCount = len(Languages)

// LanguageIndex returns the index of a language code, or -1 when the code
// is not known.
func LanguageIndex(code string) int {
	for ii, have := range Languages {
		if have == code {
			return ii
		}
	}
	return -1
}

// TextNode is one named string with its translations. A slot with a
// negative line has no translation.
type TextNode struct {
	baseBlock

	Name string

	lines [LanguageCount]int
	texts [LanguageCount]string
}

func NewTextNode(name string) *TextNode {
	tn := &TextNode{Name: name}
	for ii := range tn.lines {
		tn.lines[ii] = -1
	}
	return tn
}

// SetText stores the text of one language and remembers its source line.
func (tn *TextNode) SetText(lang int, line int, text string) {
	tn.lines[lang] = line
	tn.texts[lang] = text
}

// Text returns the text of one language, and whether it is defined.
func (tn *TextNode) Text(lang int) (string, bool) {
	return tn.texts[lang], tn.lines[lang] >= 0
}

func (tn *TextNode) hasDefault() bool {
	return tn.lines[0] >= 0
}

// merge copies the defined translations of other into tn. Both sides
// defining the same language is a conflict.
func (tn *TextNode) merge(other *TextNode) error {
	for lang := 0; lang < LanguageCount; lang++ {
		if other.lines[lang] < 0 {
			continue
		}
		if tn.lines[lang] >= 0 {
			return errTextConflict(
				tn.Name, Languages[lang], other.lines[lang], tn.lines[lang],
			)
		}
		tn.lines[lang] = other.lines[lang]
		tn.texts[lang] = other.texts[lang]
	}
	return nil
}

// EncodedSize returns the byte count of this record in a TEXT block,
// including the record's own length field.
func (tn *TextNode) EncodedSize() int {
	size := 2 + 1 + len(tn.Name) + 1
	for lang := 0; lang < LanguageCount; lang++ {
		if tn.lines[lang] < 0 {
			continue
		}
		size += 2 + 1 + len(Languages[lang]) + 1 + len(tn.texts[lang]) + 1
	}
	return size
}

// save writes the record. Translated languages come first in index order;
// the default language is always last.
func (tn *TextNode) save(fb *rcdfile.FileBlock) {
	fb.SaveUint16(uint16(tn.EncodedSize()))
	fb.SaveUint8(uint8(len(tn.Name) + 1))
	fb.SaveBytes([]byte(tn.Name))
	fb.SaveUint8(0)

	order := make([]int, 0, LanguageCount)
	for lang := 1; lang < LanguageCount; lang++ {
		order = append(order, lang)
	}
	order = append(order, 0)
	for _, lang := range order {
		if tn.lines[lang] < 0 {
			continue
		}
		code := Languages[lang]
		text := tn.texts[lang]
		fb.SaveUint16(uint16(2 + 1 + len(code) + 1 + len(text) + 1))
		fb.SaveUint8(uint8(len(code) + 1))
		fb.SaveBytes([]byte(code))
		fb.SaveUint8(0)
		fb.SaveBytes([]byte(text))
		fb.SaveUint8(0)
	}
}

// Strings is a set of text nodes, at most one per name, kept sorted by name
// so emission order is deterministic.
type Strings struct {
	baseBlock

	texts []*TextNode
}

// Add inserts a text node, merging translations when the name already
// exists.
func (s *Strings) Add(tn *TextNode) error {
	ii := sort.Search(len(s.texts), func(ii int) bool {
		return s.texts[ii].Name >= tn.Name
	})
	if ii < len(s.texts) && s.texts[ii].Name == tn.Name {
		return s.texts[ii].merge(tn)
	}
	s.texts = append(s.texts, nil)
	copy(s.texts[ii+1:], s.texts[ii:])
	s.texts[ii] = tn
	return nil
}

// Get returns the text node with the given name, or nil.
func (s *Strings) Get(name string) *TextNode {
	ii := sort.Search(len(s.texts), func(ii int) bool {
		return s.texts[ii].Name >= name
	})
	if ii < len(s.texts) && s.texts[ii].Name == name {
		return s.texts[ii]
	}
	return nil
}

// CheckNames verifies that every required name is defined and carries a
// default-language text.
func (s *Strings) CheckNames(names []string) error {
	for _, name := range names {
		tn := s.Get(name)
		if tn == nil {
			return errMissingString(name)
		}
		if !tn.hasDefault() {
			return errMissingDefaultText(name, tn.firstLine())
		}
	}
	return nil
}

func (tn *TextNode) firstLine() int {
	for _, line := range tn.lines {
		if line >= 0 {
			return line
		}
	}
	return 0
}

// Write emits the TEXT block holding all records in name order.
func (s *Strings) Write(fw *rcdfile.FileWriter) (uint32, error) {
	size := 0
	for _, tn := range s.texts {
		if !tn.hasDefault() {
			return 0, errMissingDefaultText(tn.Name, tn.firstLine())
		}
		size += tn.EncodedSize()
	}
	var fb rcdfile.FileBlock
	fb.StartSave("TEXT", 1, size)
	for _, tn := range s.texts {
		tn.save(&fb)
	}
	fb.CheckEndSave()
	return fw.AddBlock(&fb), nil
}
