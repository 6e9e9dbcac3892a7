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
)

// InvalidFormatError indicates that a Format could not be constructed
// because one of its fields has an invalid value.
type InvalidFormatError struct {
	Field  string
	Reason string
}

func (err *InvalidFormatError) Error() string {
	return "invalid hex dump format: " + err.Field + " " + err.Reason
}

// ReadError indicates that the data source of a line producer failed.
// Offset is the position of the byte which could not be read.
type ReadError struct {
	Offset int64
	Err    error
}

func (err *ReadError) Error() string {
	msg := "cannot read data at offset " + strconv.FormatInt(err.Offset, 10)
	if err.Err != nil {
		msg += ": " + err.Err.Error()
	}
	return msg
}

func (err *ReadError) Unwrap() error {
	return err.Err
}
