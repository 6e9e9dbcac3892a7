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

// Package sfntmarks labels the tables of an sfnt font file in a hex dump.
//
// The table directory of TrueType and OpenType fonts gives the offset of
// every table in the file.  [Marks] turns this into [hexdump.Mark] values,
// so that the start of each table is visible in the dump:
//
//	000000:  <dir>0001 0000  0002 0080 ...
package sfntmarks

import (
	"cmp"
	"io"
	"strings"

	"golang.org/x/exp/slices"
	"seehuhn.de/go/sfnt/header"

	"seehuhn.de/go/hexdump"
)

// DirLabel is the label used for the table directory at the start of the
// file.
const DirLabel = "<dir>"

// Marks reads the table directory of an sfnt font file and returns one mark
// for the directory and one for every table.  Table marks are labelled with
// the table name in angle brackets, with trailing spaces removed, e.g.
// "<head>" or "<CFF>".  The marks are sorted by offset.
func Marks(r io.ReaderAt) ([]hexdump.Mark, error) {
	info, err := header.Read(r)
	if err != nil {
		return nil, err
	}

	type table struct {
		name   string
		offset int64
	}
	tables := make([]table, 0, len(info.Toc))
	for name, rec := range info.Toc {
		tables = append(tables, table{name: name, offset: int64(rec.Offset)})
	}
	slices.SortFunc(tables, func(a, b table) int {
		if c := cmp.Compare(a.offset, b.offset); c != 0 {
			return c
		}
		return strings.Compare(a.name, b.name)
	})

	marks := make([]hexdump.Mark, 0, len(tables)+1)
	marks = append(marks, hexdump.Mark{Offset: 0, Label: DirLabel})
	for _, t := range tables {
		marks = append(marks, hexdump.Mark{
			Offset: t.offset,
			Label:  "<" + strings.TrimRight(t.name, " ") + ">",
		})
	}
	return marks, nil
}

// NewTokenizer returns a tokenizer which dumps the first size bytes of r,
// with the start of every table labelled as described for [Marks].
func NewTokenizer(r io.ReaderAt, size int64) (*hexdump.MarkTokenizer, error) {
	marks, err := Marks(r)
	if err != nil {
		return nil, err
	}
	return hexdump.NewMarkTokenizer(io.NewSectionReader(r, 0, size), marks), nil
}
