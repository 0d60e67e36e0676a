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

import "fmt"

// Paper describes a single paper size.  Paper values are created when
// a [Catalog] is built and are immutable afterwards.
type Paper struct {
	// Name is the name of the paper size, e.g. "a4" or "letter".
	// Lookup by name is case-insensitive, but Name preserves the
	// spelling used in the specification file.
	Name string

	// Width and Height are the page dimensions in PostScript points
	// (1/72 inch).  Both are non-negative.
	Width, Height float64
}

func (p *Paper) String() string {
	return fmt.Sprintf("%s: %gx%g pt", p.Name, p.Width, p.Height)
}
