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
	"io"
	"iter"
	"strings"
)

// Line is one line of a hex dump, before formatting.
type Line struct {
	// Offset is the position of the first byte of the line in the input.
	Offset int64

	// Hex holds the bytes of the line in hexadecimal.  This may contain
	// separator spaces, including trailing ones.
	Hex string

	// ASCII holds the printable representation of the bytes.
	// This is only set if HasASCII is true.
	ASCII    string
	HasASCII bool
}

// LineSource is implemented by the line producers in this package.
type LineSource interface {
	// Next returns the next line.  At the end of the data, io.EOF is
	// returned.
	Next() (Line, error)
}

// Lines produces the lines of a hex dump from an [io.Reader].
//
// Lines reads the input once, from start to end.  It cannot be restarted.
// A Lines object must not be used concurrently from more than one goroutine.
type Lines struct {
	r      io.ByteReader
	format *Format
	offset int64
	pos    int64
	err    error

	counters []int
}

var _ LineSource = (*Lines)(nil)

// NewLines returns a line producer which reads from r.
// If f is nil, [DefaultFormat] is used.
func NewLines(r io.Reader, f *Format) *Lines {
	f = orDefault(f)
	return &Lines{
		r:        byteReader(r),
		format:   f,
		counters: make([]int, len(f.pack)),
	}
}

// Next returns the next line of the dump.
//
// Once all data has been consumed, io.EOF is returned.  If the underlying
// reader fails, a [*ReadError] is returned.  In both cases, all subsequent
// calls return the same error.
func (l *Lines) Next() (Line, error) {
	if l.err != nil {
		return Line{}, l.err
	}

	f := l.format
	hex := make([]byte, 0, min(f.hexWidth, maxInitialCap))
	var ascii strings.Builder
	if f.ascii {
		ascii.Grow(min(f.size, maxInitialCap))
	}
	clear(l.counters)

	n := 0
	for n < f.size {
		c, err := l.r.ReadByte()
		if err == io.EOF {
			break
		} else if err != nil {
			l.err = &ReadError{Offset: l.pos, Err: err}
			return Line{}, l.err
		}
		n++
		l.pos++

		hex = appendHexByte(hex, c)
		for k, p := range f.pack {
			if p == 0 {
				continue
			}
			l.counters[k]++
			if l.counters[k] == p {
				hex = append(hex, ' ')
				l.counters[k] = 0
			}
		}

		if f.ascii {
			ascii.WriteRune(f.asciiChar(c))
		}
	}

	if n == 0 {
		l.err = io.EOF
		return Line{}, l.err
	}

	line := Line{
		Offset:   l.offset,
		Hex:      string(hex),
		ASCII:    ascii.String(),
		HasASCII: f.ascii,
	}
	l.offset += int64(f.size)
	return line, nil
}

// All returns an iterator over the remaining lines.
// Iteration stops at the end of the data.  If an error occurs, it is
// yielded together with a zero Line as the final element.
func (l *Lines) All() iter.Seq2[Line, error] {
	return allLines(l)
}

func allLines(src LineSource) iter.Seq2[Line, error] {
	return func(yield func(Line, error) bool) {
		for {
			line, err := src.Next()
			if err == io.EOF {
				return
			} else if err != nil {
				yield(Line{}, err)
				return
			}
			if !yield(line, nil) {
				return
			}
		}
	}
}

const hexDigits = "0123456789abcdef"

// maxInitialCap limits the space reserved for the text of a line in advance.
// Lines of very large formats grow their buffers as bytes arrive.
const maxInitialCap = 256

func appendHexByte(buf []byte, c byte) []byte {
	return append(buf, hexDigits[c>>4], hexDigits[c&15])
}

func (f *Format) asciiChar(c byte) rune {
	if isPrintable(c) {
		return rune(c)
	}
	return f.asciiNone
}
