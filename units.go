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

import "strings"

// Conversion factors between PostScript points and common units.
const (
	ptPerInch = 72.0
	mmPerInch = 25.4
)

// units maps unit names to the number of inches per unit.
var units = map[string]float64{
	"in": 1,
	"ft": 12,
	"pt": 1 / ptPerInch,
	"m":  100 / 2.54,
	"dm": 10 / 2.54,
	"cm": 1 / 2.54,
	"mm": 0.1 / 2.54,
}

// UnitFactor returns the conversion factor from the given unit into
// inches.  Unit names are compared case-insensitively.  The second
// return value is false if the unit is not known.
func UnitFactor(unit string) (float64, bool) {
	factor, ok := units[strings.ToLower(unit)]
	return factor, ok
}

// toMM converts a length in PostScript points to the nearest whole
// millimeter.  Locale databases store page sizes in millimeters, so
// comparisons with locale data use this rounding.
func toMM(pt float64) int {
	return int(pt*mmPerInch/ptPerInch + 0.5)
}
