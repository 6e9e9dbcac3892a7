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
	"strconv"
	"strings"
)

// Token identifies a position within a line, for which a [Tokenizer] is
// asked to supply output.
type Token int

// These are the positions a [TokenLines] producer asks for.
const (
	// BlockStart is requested once at the start of every line.
	BlockStart Token = iota

	// Next is requested for every byte of a line.
	Next

	// BlockEnd is requested once at the end of every line.
	BlockEnd
)

func (t Token) String() string {
	switch t {
	case BlockStart:
		return "BlockStart"
	case Next:
		return "Next"
	case BlockEnd:
		return "BlockEnd"
	default:
		return "Token(" + strconv.Itoa(int(t)) + ")"
	}
}

// Fragment is the answer of a [Tokenizer] to a Token request.
type Fragment struct {
	// Prefix is inserted into the hex column and into the ASCII column,
	// before the byte (if any).
	Prefix string

	// Byte is the next byte of data.  This is only used for [Next] requests,
	// and only if HasByte is true.
	Byte    byte
	HasByte bool
}

// Tokenizer supplies data and annotations to a [TokenLines] producer.
//
// For a [Next] request, a Fragment without byte signals the end of the data.
// The producer will not request further bytes afterwards.  A non-nil error
// aborts the dump.
//
// Tokenizers are stateful and are called many times for each line.  They
// need not be safe for concurrent use.
type Tokenizer interface {
	GetToken(t Token) (Fragment, error)
}

// TokenLines produces the lines of a hex dump from a [Tokenizer].
//
// In contrast to [Lines], the grouping periods of the Format are not applied.
// Any separation between bytes must be supplied by the Tokenizer, as
// prefix text.
type TokenLines struct {
	tok    Tokenizer
	format *Format
	offset int64
	pos    int64
	err    error
}

var _ LineSource = (*TokenLines)(nil)

// NewTokenLines returns a line producer which obtains its data from t.
// If f is nil, [DefaultFormat] is used.
func NewTokenLines(t Tokenizer, f *Format) *TokenLines {
	return &TokenLines{
		tok:    t,
		format: orDefault(f),
	}
}

// Next returns the next line of the dump.
//
// Once the Tokenizer has signalled the end of data, io.EOF is returned and
// the Tokenizer is not consulted again.  If the Tokenizer returns an error,
// this is wrapped in a [*ReadError].  All subsequent calls return the same
// error.
func (l *TokenLines) Next() (Line, error) {
	if l.err != nil {
		return Line{}, l.err
	}

	f := l.format
	var hex, ascii strings.Builder
	hex.Grow(min(2*f.size, maxInitialCap))
	if f.ascii {
		ascii.Grow(min(f.size, maxInitialCap))
	}
	addPrefix := func(prefix string) {
		if prefix == "" {
			return
		}
		hex.WriteString(prefix)
		if f.ascii {
			ascii.WriteString(prefix)
		}
	}

	frag, err := l.tok.GetToken(BlockStart)
	if err != nil {
		return Line{}, l.fail(err)
	}
	addPrefix(frag.Prefix)

	n := 0
	ended := false
	for n < f.size {
		frag, err := l.tok.GetToken(Next)
		if err != nil {
			return Line{}, l.fail(err)
		}
		if !frag.HasByte {
			ended = true
			break
		}
		n++
		l.pos++

		addPrefix(frag.Prefix)
		c := frag.Byte
		hex.WriteByte(hexDigits[c>>4])
		hex.WriteByte(hexDigits[c&15])
		if f.ascii {
			ascii.WriteRune(f.asciiChar(c))
		}
	}

	frag, err = l.tok.GetToken(BlockEnd)
	if err != nil {
		return Line{}, l.fail(err)
	}
	addPrefix(frag.Prefix)

	if ended {
		l.err = io.EOF
	}
	if n == 0 {
		l.err = io.EOF
		return Line{}, l.err
	}

	line := Line{
		Offset:   l.offset,
		Hex:      hex.String(),
		ASCII:    ascii.String(),
		HasASCII: f.ascii,
	}
	l.offset += int64(f.size)
	return line, nil
}

func (l *TokenLines) fail(err error) error {
	l.err = &ReadError{Offset: l.pos, Err: err}
	return l.err
}

// All returns an iterator over the remaining lines.
// Iteration stops at the end of the data.  If an error occurs, it is
// yielded together with a zero Line as the final element.
func (l *TokenLines) All() iter.Seq2[Line, error] {
	return allLines(l)
}
