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
	"io"
)

// WriteLines formats all lines from src and writes them to w, each line
// followed by a newline character.
// If f is nil, [DefaultFormat] is used.  f should be the format src was
// created with.
func WriteLines(w io.Writer, src LineSource, f *Format) error {
	f = orDefault(f)

	var buf []byte
	for {
		line, err := src.Next()
		if err == io.EOF {
			return nil
		} else if err != nil {
			return err
		}

		buf = f.AppendLine(buf[:0], line)
		buf = append(buf, '\n')
		_, err = w.Write(buf)
		if err != nil {
			return err
		}
	}
}

// String formats all lines from src and returns the result as one string,
// with a newline after every line.
// If an error occurs, the empty string is returned together with the error.
func String(src LineSource, f *Format) (string, error) {
	buf := &bytes.Buffer{}
	err := WriteLines(buf, src, f)
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Dump returns the hex dump of all data from r.
// If f is nil, [DefaultFormat] is used.
func Dump(r io.Reader, f *Format) (string, error) {
	f = orDefault(f)
	return String(NewLines(r, f), f)
}

// DumpTokens returns the hex dump of all data supplied by t.
// If f is nil, [DefaultFormat] is used.
func DumpTokens(t Tokenizer, f *Format) (string, error) {
	f = orDefault(f)
	return String(NewTokenLines(t, f), f)
}

// DumpTo writes the hex dump of all data from r to w.
// If f is nil, [DefaultFormat] is used.
func DumpTo(w io.Writer, r io.Reader, f *Format) error {
	f = orDefault(f)
	return WriteLines(w, NewLines(r, f), f)
}
