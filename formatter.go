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
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/width"
)

// FormatLine renders a line as text, without a trailing newline.
//
// The result consists of the offset as (at least) six hex digits, a colon,
// the hex column padded to [Format.HexWidth], and the ASCII column if
// enabled.  Without ASCII column, the padding of the hex column is kept.
// Leading and trailing white space of l.Hex is removed before padding, so
// that all lines of a dump have the same layout.
func (f *Format) FormatLine(l Line) string {
	return string(f.AppendLine(nil, l))
}

// AppendLine appends the text of a line to dst and returns the extended
// buffer.  See [Format.FormatLine] for the layout.
func (f *Format) AppendLine(dst []byte, l Line) []byte {
	const offsetDigits = 6

	off := strconv.FormatInt(l.Offset, 16)
	for i := len(off); i < offsetDigits; i++ {
		dst = append(dst, '0')
	}
	dst = append(dst, off...)
	dst = append(dst, ':')
	dst = appendSpaces(dst, f.gaps[0])

	hex := strings.TrimSpace(l.Hex)
	dst = append(dst, hex...)
	dst = appendSpaces(dst, f.hexWidth-displayWidth(hex))

	if !f.ascii || !l.HasASCII {
		return dst
	}

	dst = appendSpaces(dst, f.gaps[1])
	dst = append(dst, l.ASCII...)
	return dst
}

func appendSpaces(dst []byte, n int) []byte {
	for i := 0; i < n; i++ {
		dst = append(dst, ' ')
	}
	return dst
}

// displayWidth returns the number of terminal columns needed to show s.
func displayWidth(s string) int {
	w := 0
	for len(s) > 0 {
		r, size := utf8.DecodeRuneInString(s)
		s = s[size:]
		w += runeWidth(r)
	}
	return w
}

func runeWidth(r rune) int {
	if r < utf8.RuneSelf {
		return 1
	}
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	default:
		return 1
	}
}
