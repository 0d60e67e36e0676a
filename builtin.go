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
	"bytes"
	_ "embed"
	"sync"
)

//go:embed paperspecs
var builtinSpecs []byte

var (
	defaultCatalog *Catalog
	defaultOnce    sync.Once
)

// Default returns the catalog of paper sizes for the local system.
// It is built from the specification file at [DefaultSpecPath] if that
// file is usable, and from a compiled-in table of standard sizes
// otherwise.  The catalog is built on first use and shared between
// all callers.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := ReadFile(DefaultSpecPath)
		if err != nil {
			c, err = Read(bytes.NewReader(builtinSpecs))
			if err != nil {
				panic("paper: built-in specification is invalid: " + err.Error())
			}
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// Builtin returns a catalog built from the compiled-in table of
// standard paper sizes, ignoring any specification file installed on
// the system.
func Builtin() (*Catalog, error) {
	return Read(bytes.NewReader(builtinSpecs))
}
