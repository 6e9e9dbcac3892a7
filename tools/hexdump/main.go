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

// Hexdump shows the data read from standard input as a hex dump.
//
// If standard output is a terminal, the number of bytes per line is chosen
// to fit the terminal width.  Font files in sfnt format (TrueType and
// OpenType) are recognised, and the start of every table is marked.
package main

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"seehuhn.de/go/hexdump"
	"seehuhn.de/go/hexdump/sfntmarks"
)

const (
	minLineSize = 8
	maxLineSize = 32
)

func main() {
	err := run(os.Stdin, os.Stdout)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(in io.Reader, out *os.File) error {
	data, err := io.ReadAll(in)
	if err != nil {
		return err
	}

	f := hexdump.DefaultFormat()
	fd := int(out.Fd())
	if term.IsTerminal(fd) {
		cols, _, err := term.GetSize(fd)
		if err == nil {
			f, err = formatForWidth(cols)
			if err != nil {
				return err
			}
		}
	}

	w := bufio.NewWriter(out)
	var src hexdump.LineSource
	r := bytes.NewReader(data)
	if tok, err := sfntmarks.NewTokenizer(r, int64(len(data))); err == nil {
		src = hexdump.NewTokenLines(tok, f)
	} else {
		src = hexdump.NewLines(r, f)
	}
	err = hexdump.WriteLines(w, src, f)
	if err != nil {
		return err
	}
	return w.Flush()
}

// formatForWidth returns the default format, with the largest line size
// (a multiple of 8) for which a line fits into the given number of columns.
func formatForWidth(cols int) (*hexdump.Format, error) {
	def := hexdump.DefaultFormat()
	best := def
	for size := minLineSize; size <= maxLineSize; size += 8 {
		f, err := hexdump.NewFormat(size, def.Pack(), def.ASCIINone(), def.ASCII(), def.Gaps())
		if err != nil {
			return nil, err
		}
		if f.LineWidth() > cols && size > minLineSize {
			break
		}
		best = f
	}
	return best, nil
}
