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

// Package paper provides lookup of standard paper sizes and resolution
// of the system's default paper size.
//
// All dimensions are given in PostScript points (1/72 inch).
//
// # Catalogs
//
// A [Catalog] is an immutable collection of named paper sizes, built
// from a specification file:
//
//	catalog, err := paper.ReadFile("/etc/paperspecs")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	a4 := catalog.Get("A4")
//
// Specification files contain one paper size per line, in the form
//
//	<name> <width> <height> [<unit>]
//
// where <unit> is one of "in", "ft", "pt", "m", "dm", "cm" or "mm"
// (points if omitted).  Blank lines and lines whose first non-blank
// character is "#" are ignored.  [Default] returns a catalog for the
// local system, falling back to a compiled-in table of standard sizes
// when no specification file is installed.
//
// # Default Paper Size
//
// A [Resolver] determines the name of the paper size the user wants,
// consulting in order the PAPERSIZE environment variable, the paper
// configuration file (/etc/papersize, overridable via PAPERCONF), the
// physical page size of the current locale, and finally a compiled-in
// fallback:
//
//	r := paper.NewResolver(catalog)
//	name := r.DefaultName()
//
// [Resolver.SystemName] works the same way but ignores the locale and
// normalizes the result to the catalog's spelling of the name.
package paper
