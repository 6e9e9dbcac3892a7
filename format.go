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
	"fmt"
	"math"
	"unicode"

	"golang.org/x/exp/slices"
)

// Format describes the layout of a hex dump.
//
// A Format is immutable once constructed.  Use [NewFormat] or
// [DefaultFormat] to obtain one.
type Format struct {
	size      int
	pack      []int
	asciiNone rune
	ascii     bool
	gaps      [2]int

	hexWidth int
}

// NewFormat returns a new Format.
//
// The arguments are:
//   - size: the number of bytes per line, must be positive.
//   - pack: grouping periods.  After every pack[k] bytes, a space is inserted
//     into the hex column.  Each entry counts independently, so that one
//     position can receive more than one space.  Zero entries are ignored.
//   - asciiNone: the character shown in the ASCII column for bytes outside
//     the printable range 32-126.
//   - ascii: whether to produce the ASCII column.
//   - gaps: the number of spaces between the offset and the hex column, and
//     between the hex column and the ASCII column.
func NewFormat(size int, pack []int, asciiNone rune, ascii bool, gaps [2]int) (*Format, error) {
	if size <= 0 {
		return nil, &InvalidFormatError{
			Field:  "size",
			Reason: fmt.Sprintf("must be positive, not %d", size),
		}
	}
	for _, p := range pack {
		if p < 0 {
			return nil, &InvalidFormatError{
				Field:  "pack",
				Reason: fmt.Sprintf("negative grouping period %d", p),
			}
		}
	}
	for i, g := range gaps {
		if g < 0 {
			return nil, &InvalidFormatError{
				Field:  fmt.Sprintf("gaps[%d]", i),
				Reason: fmt.Sprintf("must be non-negative, not %d", g),
			}
		}
	}
	if !unicode.IsPrint(asciiNone) || runeWidth(asciiNone) != 1 {
		return nil, &InvalidFormatError{
			Field:  "asciiNone",
			Reason: fmt.Sprintf("%q is not a printable single-column character", asciiNone),
		}
	}

	hw, ok := hexWidth(size, pack)
	if !ok {
		return nil, &InvalidFormatError{
			Field:  "size",
			Reason: fmt.Sprintf("%d is too large", size),
		}
	}
	if _, ok := lineWidth(size, hw, ascii, gaps); !ok {
		return nil, &InvalidFormatError{
			Field:  "gaps",
			Reason: fmt.Sprintf("%v is too large", gaps),
		}
	}

	f := &Format{
		size:      size,
		pack:      slices.Clone(pack),
		asciiNone: asciiNone,
		ascii:     ascii,
		gaps:      gaps,
		hexWidth:  hw,
	}
	return f, nil
}

// DefaultFormat returns the default layout: 16 bytes per line, grouping
// periods 2, 4 and 8, unprintable bytes shown as '.', ASCII column enabled,
// and gaps of two spaces.
func DefaultFormat() *Format {
	f, err := NewFormat(16, []int{2, 4, 8}, '.', true, [2]int{2, 2})
	if err != nil {
		panic(err) // unreachable
	}
	return f
}

// orDefault returns f, or the default format if f is nil.
func orDefault(f *Format) *Format {
	if f == nil {
		return DefaultFormat()
	}
	return f
}

// hexWidth computes the width of the hex column for a full line.
// A line of size bytes has size-1 internal positions where a separator can
// occur, trailing separators are trimmed before output.
// The second return value is false if the width does not fit into an int.
func hexWidth(size int, pack []int) (int, bool) {
	w, ok := addWidth(size, size)
	for _, p := range pack {
		if p == 0 {
			continue
		}
		var ok2 bool
		w, ok2 = addWidth(w, (size-1)/p)
		ok = ok && ok2
	}
	return w, ok
}

// lineWidth computes the width of a formatted line for offsets below
// 0x1000000.  The second return value is false on overflow.
func lineWidth(size, hexWidth int, ascii bool, gaps [2]int) (int, bool) {
	w, ok := addWidth(6+1, gaps[0])
	if !ok {
		return 0, false
	}
	w, ok = addWidth(w, hexWidth)
	if !ok || !ascii {
		return w, ok
	}
	w, ok = addWidth(w, gaps[1])
	if !ok {
		return 0, false
	}
	return addWidth(w, size)
}

// addWidth adds two non-negative widths.
func addWidth(a, b int) (int, bool) {
	if a > math.MaxInt-b {
		return 0, false
	}
	return a + b, true
}

// Size returns the number of bytes per line.
func (f *Format) Size() int {
	return f.size
}

// Pack returns a copy of the grouping periods.
func (f *Format) Pack() []int {
	return slices.Clone(f.pack)
}

// ASCIINone returns the substitute character for unprintable bytes.
func (f *Format) ASCIINone() rune {
	return f.asciiNone
}

// ASCII reports whether the ASCII column is enabled.
func (f *Format) ASCII() bool {
	return f.ascii
}

// Gaps returns the spacing before and after the hex column.
func (f *Format) Gaps() [2]int {
	return f.gaps
}

// HexWidth returns the width of the hex column, in characters.
// This is the same for all lines, including a short last line.
func (f *Format) HexWidth() int {
	return f.hexWidth
}

// LineWidth returns the display width of a formatted line holding a full
// set of bytes, for offsets below 0x1000000.
func (f *Format) LineWidth() int {
	w, _ := lineWidth(f.size, f.hexWidth, f.ascii, f.gaps)
	return w
}

func isPrintable(b byte) bool {
	return b >= 32 && b < 127
}
