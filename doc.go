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

// Package hexdump renders byte streams as xxd-style hex dumps.
//
// Every line of a dump consists of the offset of the first byte, the bytes in
// hexadecimal, grouped by spaces, and an optional ASCII column:
//
//	000000:  5b70 6163  6b61 6765   5d0a 6e61  6d65 203d  [package].name =
//
// The layout is described by a [Format].  Lines are produced lazily, either
// from an [io.Reader] by [Lines], or from a [Tokenizer] by [TokenLines].  A
// Tokenizer supplies the bytes together with optional prefix text, which is
// inserted at the start of a line, before individual bytes, or at the end of
// a line.  This can be used to mark structure inside the dumped data.
//
// A complete dump can be obtained as a string:
//
//	s, err := hexdump.Dump(r, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Print(s)
//
// A nil *Format selects the default layout, see [DefaultFormat].
package hexdump
