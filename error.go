// seehuhn.de/go/paper - a library for looking up paper sizes
// Copyright (C) 2025  Jochen Voss <voss@seehuhn.de>
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

package paper

import (
	"errors"
	"strconv"
)

// Possible causes for a SpecError.
var (
	// ErrMalformedSpec indicates a specification line with fewer than
	// three fields.
	ErrMalformedSpec = errors.New("malformed paper specification")

	// ErrInvalidNumber indicates a width or height which cannot be
	// parsed as a non-negative number.
	ErrInvalidNumber = errors.New("invalid paper dimension")

	// ErrUnknownUnit indicates a unit name not listed in the unit
	// table.
	ErrUnknownUnit = errors.New("unknown unit")
)

// SpecError indicates that a paper specification file could not be
// read.  No catalog is available when a SpecError is returned.
type SpecError struct {
	// Path is the name of the specification file, if known.
	Path string

	// Line is the 1-based number of the offending line, or 0 if the
	// error concerns the file as a whole.
	Line int

	// Err is the underlying error.
	Err error
}

func (err *SpecError) Error() string {
	msg := "invalid paper specification"
	if err.Path != "" {
		msg = err.Path
	}
	if err.Line > 0 {
		msg += ":" + strconv.Itoa(err.Line)
	}
	if err.Err != nil {
		msg += ": " + err.Err.Error()
	}
	return msg
}

func (err *SpecError) Unwrap() error {
	return err.Err
}
