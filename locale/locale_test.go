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

package locale

import (
	"testing"

	"golang.org/x/text/language"
)

func TestPageSizeFor(t *testing.T) {
	cases := []struct {
		tag    string
		width  float64
		height float64
		ok     bool
	}{
		{"en-US", letterWidth, letterHeight, true},
		{"en-CA", letterWidth, letterHeight, true},
		{"es-MX", letterWidth, letterHeight, true},
		{"fil-PH", letterWidth, letterHeight, true},
		{"de-DE", a4Width, a4Height, true},
		{"en-GB", a4Width, a4Height, true},
		{"pt-BR", a4Width, a4Height, true},
		{"ja-JP", a4Width, a4Height, true},

		// without an explicit region, one is inferred from the
		// language
		{"en", letterWidth, letterHeight, true},
		{"de", a4Width, a4Height, true},

		{"und", 0, 0, false},
	}
	for _, test := range cases {
		tag := language.MustParse(test.tag)
		width, height, ok := PageSizeFor(tag)
		if ok != test.ok || width != test.width || height != test.height {
			t.Errorf("PageSizeFor(%q) = %g, %g, %t, want %g, %g, %t",
				test.tag, width, height, ok,
				test.width, test.height, test.ok)
		}
	}
}

func TestPageSize(t *testing.T) {
	cases := []struct {
		name   string
		lcAll  string
		paper  string
		lang   string
		width  float64
		height float64
		ok     bool
	}{
		{"unset", "", "", "", 0, 0, false},
		{"C locale", "", "", "C", 0, 0, false},
		{"POSIX locale", "POSIX", "", "de_DE.UTF-8", 0, 0, false},
		{"LANG", "", "", "de_DE.UTF-8", a4Width, a4Height, true},
		{"LC_PAPER", "", "en_US.UTF-8", "de_DE.UTF-8", letterWidth, letterHeight, true},
		{"LC_ALL wins", "de_DE.UTF-8", "en_US.UTF-8", "", a4Width, a4Height, true},
		{"modifier", "", "", "de_DE.UTF-8@euro", a4Width, a4Height, true},
		{"garbage", "not a locale!", "", "", 0, 0, false},
	}
	for _, test := range cases {
		t.Run(test.name, func(t *testing.T) {
			t.Setenv("LC_ALL", test.lcAll)
			t.Setenv("LC_PAPER", test.paper)
			t.Setenv("LANG", test.lang)

			width, height, ok := PageSize()
			if ok != test.ok || width != test.width || height != test.height {
				t.Errorf("PageSize() = %g, %g, %t, want %g, %g, %t",
					width, height, ok,
					test.width, test.height, test.ok)
			}
		})
	}
}
