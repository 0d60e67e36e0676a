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

// Package locale determines the physical page size customary for the
// current locale.
//
// On GNU systems this information lives in the LC_PAPER category of
// the locale database.  Go cannot reach the locale database without
// cgo, so this package instead parses the locale name from the
// environment and maps the country to its customary paper size:
// "letter" in the United States, Canada and parts of Latin America and
// Asia, ISO A4 everywhere else.
package locale

import (
	"os"
	"strings"

	"golang.org/x/text/language"
)

// Page dimensions in PostScript points.
const (
	a4Width      = 210 * 72 / 25.4
	a4Height     = 297 * 72 / 25.4
	letterWidth  = 8.5 * 72
	letterHeight = 11 * 72
)

// letterRegions lists the countries which use US letter paper.
// All other countries are assumed to use A4.
var letterRegions = map[string]bool{
	"US": true, // United States
	"CA": true, // Canada
	"MX": true, // Mexico
	"BO": true, // Bolivia
	"CL": true, // Chile
	"CO": true, // Colombia
	"CR": true, // Costa Rica
	"DO": true, // Dominican Republic
	"GT": true, // Guatemala
	"NI": true, // Nicaragua
	"PA": true, // Panama
	"PH": true, // Philippines
	"PR": true, // Puerto Rico
	"SV": true, // El Salvador
	"VE": true, // Venezuela
}

// PageSize returns the physical page size of the current locale, in
// PostScript points.  The locale is taken from the LC_ALL, LC_PAPER
// and LANG environment variables, in this order.  The last return
// value is false if no locale is configured, or if the locale name
// cannot be interpreted.
func PageSize() (width, height float64, ok bool) {
	for _, key := range []string{"LC_ALL", "LC_PAPER", "LANG"} {
		if name := os.Getenv(key); name != "" {
			return pageSizeForName(name)
		}
	}
	return 0, 0, false
}

func pageSizeForName(name string) (width, height float64, ok bool) {
	// strip the modifier and codeset, e.g. "de_DE.UTF-8@euro"
	if i := strings.IndexByte(name, '@'); i >= 0 {
		name = name[:i]
	}
	if i := strings.IndexByte(name, '.'); i >= 0 {
		name = name[:i]
	}
	if name == "" || name == "C" || name == "POSIX" {
		return 0, 0, false
	}

	tag, err := language.Parse(strings.ReplaceAll(name, "_", "-"))
	if err != nil {
		return 0, 0, false
	}
	return PageSizeFor(tag)
}

// PageSizeFor returns the physical page size customary in the
// language tag's region, in PostScript points.  If the tag names no
// region, one is inferred from the language where possible.  The last
// return value is false if no country can be determined.
func PageSizeFor(tag language.Tag) (width, height float64, ok bool) {
	region, conf := tag.Region()
	if conf == language.No || !region.IsCountry() {
		return 0, 0, false
	}
	if letterRegions[region.String()] {
		return letterWidth, letterHeight, true
	}
	return a4Width, a4Height, true
}
