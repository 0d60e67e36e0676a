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
	"bufio"
	"io"
	"strings"
)

// A lineScanner reads content lines from a text file, skipping blank
// lines and comments.  A comment is any line whose first non-blank
// character is a hash.
type lineScanner struct {
	s    *bufio.Scanner
	line int
}

func newLineScanner(r io.Reader) *lineScanner {
	return &lineScanner{s: bufio.NewScanner(r)}
}

// Next returns the whitespace-separated tokens of the next content
// line, together with the 1-based line number.  At the end of input,
// Next returns nil; Err tells whether this was caused by a read error.
func (s *lineScanner) Next() ([]string, int) {
	for s.s.Scan() {
		s.line++
		text := strings.TrimSpace(s.s.Text())
		if text == "" || text[0] == '#' {
			continue
		}
		return strings.Fields(text), s.line
	}
	return nil, 0
}

// Err returns the first error encountered while reading.
func (s *lineScanner) Err() error {
	return s.s.Err()
}
