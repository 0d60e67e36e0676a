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
	"fmt"
	"io"
	"iter"
	"math"
	"os"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/exp/maps"
)

// A Catalog is a collection of paper sizes, indexed by name.  Once
// built, a Catalog is immutable and all queries are pure reads.
type Catalog struct {
	papers map[string]*Paper // keyed by the lower-cased name
	keys   []string          // sorted keys of papers
}

// ReadFile builds a catalog from the specification file at the given
// path.  If the file cannot be opened or contains an invalid line, no
// catalog is returned and the error is of type [*SpecError].
func ReadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &SpecError{Path: path, Err: err}
	}
	defer f.Close()

	c, err := Read(f)
	if err != nil {
		var specErr *SpecError
		if errors.As(err, &specErr) {
			specErr.Path = path
		}
		return nil, err
	}
	return c, nil
}

// Read builds a catalog from specification file contents.  Each
// content line must have the form "<name> <width> <height> [<unit>]";
// tokens after the unit are ignored.  If the same name (compared
// case-insensitively) occurs more than once, the last occurrence wins.
//
// On error, no catalog is returned.
func Read(r io.Reader) (*Catalog, error) {
	papers := make(map[string]*Paper)

	s := newLineScanner(r)
	for {
		tokens, line := s.Next()
		if tokens == nil {
			break
		}
		if len(tokens) < 3 {
			return nil, &SpecError{Line: line, Err: ErrMalformedSpec}
		}

		width, err := parseDimension(tokens[1])
		if err != nil {
			return nil, &SpecError{Line: line, Err: err}
		}
		height, err := parseDimension(tokens[2])
		if err != nil {
			return nil, &SpecError{Line: line, Err: err}
		}

		if len(tokens) > 3 {
			factor, ok := UnitFactor(tokens[3])
			if !ok {
				err := fmt.Errorf("%w %q", ErrUnknownUnit, tokens[3])
				return nil, &SpecError{Line: line, Err: err}
			}
			// The unit table gives inches per unit, dimensions are
			// stored in points.
			width *= factor * ptPerInch
			height *= factor * ptPerInch
		}

		name := tokens[0]
		papers[strings.ToLower(name)] = &Paper{
			Name:   name,
			Width:  width,
			Height: height,
		}
	}
	if err := s.Err(); err != nil {
		return nil, &SpecError{Err: err}
	}

	keys := maps.Keys(papers)
	slices.Sort(keys)
	return &Catalog{papers: papers, keys: keys}, nil
}

func parseDimension(s string) (float64, error) {
	x, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(x) || math.IsInf(x, 0) || x < 0 {
		return 0, fmt.Errorf("%w %q", ErrInvalidNumber, s)
	}
	return x, nil
}

// Len returns the number of paper sizes in the catalog.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.papers)
}

// Get returns the paper size with the given name, or nil if the
// catalog contains no such size.  Names are compared
// case-insensitively.
func (c *Catalog) Get(name string) *Paper {
	if c == nil {
		return nil
	}
	return c.papers[strings.ToLower(name)]
}

// FindSize returns a paper size with exactly the given dimensions in
// points, or nil if there is none.  Since the comparison is exact
// floating-point equality, FindSize is only reliable for dimensions
// obtained from the same catalog.  If several paper sizes share the
// same dimensions, it is unspecified which one is returned.
func (c *Catalog) FindSize(width, height float64) *Paper {
	if c == nil {
		return nil
	}
	for _, key := range c.keys {
		p := c.papers[key]
		if p.Width == width && p.Height == height {
			return p
		}
	}
	return nil
}

// All yields all paper sizes in the catalog.  The order is arbitrary
// but does not change for the lifetime of the catalog.  The returned
// sequence can be iterated any number of times.
func (c *Catalog) All() iter.Seq[*Paper] {
	return func(yield func(*Paper) bool) {
		if c == nil {
			return
		}
		for _, key := range c.keys {
			if !yield(c.papers[key]) {
				return
			}
		}
	}
}

// Names returns the names of all paper sizes, in the catalog's
// iteration order.
func (c *Catalog) Names() []string {
	if c == nil {
		return nil
	}
	names := make([]string, len(c.keys))
	for i, key := range c.keys {
		names[i] = c.papers[key].Name
	}
	return names
}
