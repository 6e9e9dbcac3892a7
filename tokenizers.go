// seehuhn.de/go/hexdump - render byte streams as hex dumps
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package hexdump

import (
	"bufio"
	"cmp"
	"io"

	"golang.org/x/exp/slices"
)

// ReaderTokenizer is a [Tokenizer] which returns the bytes of an
// [io.Reader], without any annotations.
type ReaderTokenizer struct {
	r io.ByteReader
}

var _ Tokenizer = (*ReaderTokenizer)(nil)

// NewReaderTokenizer returns a Tokenizer which reads from r.
func NewReaderTokenizer(r io.Reader) *ReaderTokenizer {
	return &ReaderTokenizer{r: byteReader(r)}
}

// GetToken implements the [Tokenizer] interface.
func (t *ReaderTokenizer) GetToken(tok Token) (Fragment, error) {
	if tok != Next {
		return Fragment{}, nil
	}
	return readFragment(t.r)
}

// Mark attaches a label to a position in the data.
type Mark struct {
	Offset int64
	Label  string
}

// MarkTokenizer is a [Tokenizer] which reads bytes from an [io.Reader] and
// inserts labels in front of selected bytes.
type MarkTokenizer struct {
	// LineStart and LineEnd, if non-empty, are inserted at the start and at
	// the end of every line.
	LineStart string
	LineEnd   string

	r     io.ByteReader
	marks []Mark
	pos   int64
}

var _ Tokenizer = (*MarkTokenizer)(nil)

// NewMarkTokenizer returns a Tokenizer which reads from r and inserts the
// label of every mark before the byte at the mark's offset.  If several
// marks have the same offset, their labels are concatenated in the order
// given.  Marks at offsets beyond the end of the data are ignored.
func NewMarkTokenizer(r io.Reader, marks []Mark) *MarkTokenizer {
	sorted := slices.Clone(marks)
	slices.SortStableFunc(sorted, func(a, b Mark) int {
		return cmp.Compare(a.Offset, b.Offset)
	})
	// drop marks which can never be reached
	sorted = slices.DeleteFunc(sorted, func(m Mark) bool {
		return m.Offset < 0
	})
	return &MarkTokenizer{
		r:     byteReader(r),
		marks: sorted,
	}
}

// GetToken implements the [Tokenizer] interface.
func (t *MarkTokenizer) GetToken(tok Token) (Fragment, error) {
	switch tok {
	case BlockStart:
		return Fragment{Prefix: t.LineStart}, nil
	case BlockEnd:
		return Fragment{Prefix: t.LineEnd}, nil
	}

	frag, err := readFragment(t.r)
	if err != nil || !frag.HasByte {
		return frag, err
	}

	var label string
	for len(t.marks) > 0 && t.marks[0].Offset <= t.pos {
		if t.marks[0].Offset == t.pos {
			label += t.marks[0].Label
		}
		t.marks = t.marks[1:]
	}
	frag.Prefix = label
	t.pos++
	return frag, nil
}

func readFragment(r io.ByteReader) (Fragment, error) {
	c, err := r.ReadByte()
	if err == io.EOF {
		return Fragment{}, nil
	} else if err != nil {
		return Fragment{}, err
	}
	return Fragment{Byte: c, HasByte: true}, nil
}

func byteReader(r io.Reader) io.ByteReader {
	if br, ok := r.(io.ByteReader); ok {
		return br
	}
	return bufio.NewReader(r)
}
