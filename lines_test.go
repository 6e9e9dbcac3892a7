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
	"bytes"
	"encoding/hex"
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/google/go-cmp/cmp"
)

func collect(t *testing.T, src LineSource) []Line {
	t.Helper()
	var res []Line
	for {
		line, err := src.Next()
		if err == io.EOF {
			return res
		} else if err != nil {
			t.Fatal(err)
		}
		res = append(res, line)
	}
}

func mustFormat(t testing.TB, size int, pack []int, asciiNone rune, ascii bool) *Format {
	t.Helper()
	f, err := NewFormat(size, pack, asciiNone, ascii, [2]int{2, 2})
	if err != nil {
		t.Fatal(err)
	}
	return f
}

func TestLinesGrouping(t *testing.T) {
	cases := []struct {
		name string
		in   []byte
		f    *Format
		want []Line
	}{
		{
			name: "compound separators",
			in:   []byte{0, 1, 2, 3, 4, 5, 6, 7},
			f:    mustFormat(t, 8, []int{2, 4}, '.', true),
			want: []Line{
				{Offset: 0, Hex: "0001 0203  0405 0607  ", ASCII: "........", HasASCII: true},
			},
		},
		{
			name: "zero period ignored",
			in:   []byte{0, 1, 2, 3, 4},
			f:    mustFormat(t, 4, []int{1, 2, 0}, '.', true),
			want: []Line{
				{Offset: 0, Hex: "00 01  02 03  ", ASCII: "....", HasASCII: true},
				{Offset: 4, Hex: "04 ", ASCII: ".", HasASCII: true},
			},
		},
		{
			name: "printable range",
			in:   []byte{'A', 0x00, 0x7f, '~', ' ', 0x1f, 0xff},
			f:    mustFormat(t, 3, nil, '#', true),
			want: []Line{
				{Offset: 0, Hex: "41007f", ASCII: "A##", HasASCII: true},
				{Offset: 3, Hex: "7e201f", ASCII: "~ #", HasASCII: true},
				{Offset: 6, Hex: "ff", ASCII: "#", HasASCII: true},
			},
		},
		{
			name: "no ASCII",
			in:   []byte("hello"),
			f:    mustFormat(t, 4, []int{2}, '.', false),
			want: []Line{
				{Offset: 0, Hex: "6865 6c6c "},
				{Offset: 4, Hex: "6f"},
			},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := collect(t, NewLines(bytes.NewReader(c.in), c.f))
			if d := cmp.Diff(c.want, got); d != "" {
				t.Errorf("unexpected lines (-want +got):\n%s", d)
			}
		})
	}
}

func TestLinesEmpty(t *testing.T) {
	l := NewLines(strings.NewReader(""), nil)
	for i := 0; i < 3; i++ {
		_, err := l.Next()
		if err != io.EOF {
			t.Fatalf("call %d: expected io.EOF, got %v", i, err)
		}
	}
}

func TestLinesStickyEOF(t *testing.T) {
	l := NewLines(strings.NewReader("abc"), nil)
	_, err := l.Next()
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		_, err := l.Next()
		if err != io.EOF {
			t.Fatalf("expected io.EOF, got %v", err)
		}
	}
}

func TestLinesReadError(t *testing.T) {
	errBroken := errors.New("broken")
	r := io.MultiReader(strings.NewReader("0123456789"), iotest.ErrReader(errBroken))
	f := mustFormat(t, 4, nil, '.', true)
	l := NewLines(r, f)

	for i := 0; i < 2; i++ {
		_, err := l.Next()
		if err != nil {
			t.Fatal(err)
		}
	}
	_, err := l.Next()
	var readErr *ReadError
	if !errors.As(err, &readErr) {
		t.Fatalf("expected *ReadError, got %v", err)
	}
	if readErr.Offset != 10 || !errors.Is(err, errBroken) {
		t.Errorf("unexpected error %v", err)
	}

	// the error is not mistaken for end of data on later calls
	_, err2 := l.Next()
	if err2 != err {
		t.Errorf("expected the same error again, got %v", err2)
	}
}

func TestLinesSmallReads(t *testing.T) {
	data := []byte(cargoToml)
	f := DefaultFormat()
	want := collect(t, NewLines(bytes.NewReader(data), f))
	got := collect(t, NewLines(iotest.OneByteReader(bytes.NewReader(data)), f))
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("results depend on read size (-want +got):\n%s", d)
	}
	got = collect(t, NewLines(iotest.DataErrReader(bytes.NewReader(data)), f))
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("results depend on EOF handling (-want +got):\n%s", d)
	}
}

func TestLinesAll(t *testing.T) {
	data := bytes.Repeat([]byte{0xAA}, 100)
	l := NewLines(bytes.NewReader(data), nil)

	var offsets []int64
	for line, err := range l.All() {
		if err != nil {
			t.Fatal(err)
		}
		offsets = append(offsets, line.Offset)
		if len(offsets) == 3 {
			break
		}
	}
	if d := cmp.Diff([]int64{0, 16, 32}, offsets); d != "" {
		t.Errorf("wrong offsets (-want +got):\n%s", d)
	}

	// iteration continues where it stopped
	line, err := l.Next()
	if err != nil {
		t.Fatal(err)
	}
	if line.Offset != 48 {
		t.Errorf("wrong offset %d", line.Offset)
	}
}

func TestLinesAllError(t *testing.T) {
	errBroken := errors.New("broken")
	l := NewLines(iotest.ErrReader(errBroken), nil)

	n := 0
	for _, err := range l.All() {
		n++
		if !errors.Is(err, errBroken) {
			t.Errorf("unexpected error %v", err)
		}
	}
	if n != 1 {
		t.Errorf("expected one element, got %d", n)
	}
}

// checkLines verifies that the lines cover data, with offsets advancing by
// the line size and hex text decoding to the original bytes.
func checkLines(t *testing.T, data []byte, lines []Line, size int) {
	t.Helper()

	var all []byte
	for i, line := range lines {
		if line.Offset != int64(i*size) {
			t.Fatalf("line %d: offset %d, want %d", i, line.Offset, i*size)
		}
		raw, err := hex.DecodeString(strings.ReplaceAll(line.Hex, " ", ""))
		if err != nil {
			t.Fatalf("line %d: %v", i, err)
		}
		if len(raw) == 0 || len(raw) > size {
			t.Fatalf("line %d: %d bytes", i, len(raw))
		}
		if i < len(lines)-1 && len(raw) != size {
			t.Fatalf("line %d: short line before the end", i)
		}
		all = append(all, raw...)
	}
	if !bytes.Equal(all, data) {
		t.Errorf("decoded %x, want %x", all, data)
	}
}

func FuzzLines(f *testing.F) {
	f.Add([]byte(""), 16, 2, 4)
	f.Add([]byte(cargoToml), 16, 2, 4)
	f.Add([]byte{0, 1, 2, 3, 255}, 1, 0, 1)
	f.Add([]byte("The quick brown fox jumps over the lazy dog"), 18, 3, 6)

	f.Fuzz(func(t *testing.T, data []byte, size, p1, p2 int) {
		if size < 1 || size > 64 || p1 < 0 || p2 < 0 || p1 > 64 || p2 > 64 {
			return
		}
		format, err := NewFormat(size, []int{p1, p2}, '.', true, [2]int{1, 1})
		if err != nil {
			t.Fatal(err)
		}

		lines := collect(t, NewLines(bytes.NewReader(data), format))
		checkLines(t, data, lines, size)

		for _, line := range lines {
			text := format.FormatLine(line)
			if len(text) != format.LineWidth()-size+len(line.ASCII) {
				t.Errorf("wrong length %d for %q", len(text), text)
			}
		}
	})
}

func BenchmarkLines(b *testing.B) {
	data := make([]byte, 4096)
	for i := range data {
		data[i] = byte(7 * i)
	}
	format := DefaultFormat()

	b.ResetTimer()
	b.SetBytes(int64(len(data)))
	for i := 0; i < b.N; i++ {
		l := NewLines(bytes.NewReader(data), format)
		for {
			_, err := l.Next()
			if err != nil {
				break
			}
		}
	}
}
