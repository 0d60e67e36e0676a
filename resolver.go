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
	"os"

	"seehuhn.de/go/paper/locale"
)

// Environment variables consulted by a [Resolver].
const (
	// SizeEnv names the paper size directly and overrides all other
	// sources.
	SizeEnv = "PAPERSIZE"

	// ConfigEnv overrides the location of the paper configuration
	// file.
	ConfigEnv = "PAPERCONF"
)

// Compiled-in defaults.  These can be changed at build time using the
// linker's -X flag.
var (
	// DefaultSpecPath is the location of the paper specification file.
	DefaultSpecPath = "/etc/paperspecs"

	// DefaultConfigPath is the location of the paper configuration
	// file, used unless ConfigEnv is set.
	DefaultConfigPath = "/etc/papersize"

	// FallbackName is the paper name returned when no other source
	// yields one.
	FallbackName = "a4"
)

// A Resolver determines the name of the user's preferred paper size.
// The zero value resolves against an empty catalog using the real
// process environment; use [NewResolver] to also enable the locale
// lookup.
type Resolver struct {
	// Catalog is used to match locale page sizes and to canonicalize
	// names.  A nil Catalog behaves like an empty one.
	Catalog *Catalog

	// ConfigPath overrides DefaultConfigPath when non-empty.  The
	// ConfigEnv environment variable takes precedence over both.
	ConfigPath string

	// Fallback overrides FallbackName when non-empty.
	Fallback string

	// Getenv is used to read environment variables.  If nil,
	// os.Getenv is used.
	Getenv func(key string) string

	// PageSize reports the physical page size of the current locale
	// in points.  If nil, no locale information is available.
	PageSize func() (width, height float64, ok bool)
}

// NewResolver returns a Resolver which reads the process environment
// and the page size of the current locale.
func NewResolver(c *Catalog) *Resolver {
	return &Resolver{
		Catalog:  c,
		Getenv:   os.Getenv,
		PageSize: locale.PageSize,
	}
}

// DefaultName returns the name of the user's preferred paper size.
//
// The sources consulted are, in order: the SizeEnv environment
// variable (returned verbatim, without checking the catalog), the
// first token of the paper configuration file, the paper size of the
// current locale (matched against the catalog in whole millimeters),
// and finally the compiled-in fallback name.  DefaultName always
// returns a name; failures of individual sources are silently
// skipped.
func (r *Resolver) DefaultName() string {
	if name := r.getenv(SizeEnv); name != "" {
		return name
	}
	if name := r.configName(); name != "" {
		return name
	}
	if r.PageSize != nil {
		if width, height, ok := r.PageSize(); ok {
			wMM := toMM(width)
			hMM := toMM(height)
			for p := range r.Catalog.All() {
				if toMM(p.Width) == wMM && toMM(p.Height) == hMM {
					return p.Name
				}
			}
		}
	}
	return r.fallback()
}

// SystemName returns the name of the paper size configured for the
// system, ignoring the locale: the SizeEnv environment variable, the
// paper configuration file, or the compiled-in fallback, in this
// order.  If the resulting name is found in the catalog, it is
// normalized to the catalog's spelling; otherwise it is returned
// unchanged.  SystemName always returns a name.
func (r *Resolver) SystemName() string {
	name := r.getenv(SizeEnv)
	if name == "" {
		name = r.configName()
	}
	if name == "" {
		name = r.fallback()
	}
	if p := r.Catalog.Get(name); p != nil {
		return p.Name
	}
	return name
}

func (r *Resolver) getenv(key string) string {
	if r.Getenv != nil {
		return r.Getenv(key)
	}
	return os.Getenv(key)
}

func (r *Resolver) fallback() string {
	if r.Fallback != "" {
		return r.Fallback
	}
	return FallbackName
}

// configFile returns the location of the paper configuration file.
func (r *Resolver) configFile() string {
	if path := r.getenv(ConfigEnv); path != "" {
		return path
	}
	if r.ConfigPath != "" {
		return r.ConfigPath
	}
	return DefaultConfigPath
}

// configName reads the paper name from the configuration file.  A
// missing or unreadable file yields the empty string; read errors are
// not reported.
func (r *Resolver) configName() string {
	f, err := os.Open(r.configFile())
	if err != nil {
		return ""
	}
	defer f.Close()

	tokens, _ := newLineScanner(f).Next()
	if tokens == nil {
		return ""
	}
	return tokens[0]
}
