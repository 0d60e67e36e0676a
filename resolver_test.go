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
	"path/filepath"
	"strings"
	"testing"
)

func testCatalog(t *testing.T) *Catalog {
	t.Helper()
	spec := `
A4 210 297 mm
Letter 8.5 11 in
legal 8.5 14 in
`
	c, err := Read(strings.NewReader(spec))
	if err != nil {
		t.Fatal(err)
	}
	return c
}

// fakeEnv returns a Getenv function reading from a map instead of the
// process environment.
func fakeEnv(env map[string]string) func(string) string {
	return func(key string) string { return env[key] }
}

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "papersize")
	if err := os.WriteFile(path, []byte(contents), 0o666); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultNameEnv(t *testing.T) {
	// the paper size variable wins over everything else
	config := writeConfig(t, "a4\n")
	r := &Resolver{
		Catalog:    testCatalog(t),
		ConfigPath: config,
		Getenv:     fakeEnv(map[string]string{SizeEnv: "Legal"}),
		PageSize: func() (float64, float64, bool) {
			return 595.2756, 841.8898, true
		},
	}
	if got := r.DefaultName(); got != "Legal" {
		t.Errorf("DefaultName() = %q, want %q", got, "Legal")
	}
}

func TestDefaultNameConfigFile(t *testing.T) {
	config := writeConfig(t, "# the default paper size\n\na4\n")
	r := &Resolver{
		Catalog:    testCatalog(t),
		ConfigPath: config,
		Getenv:     fakeEnv(nil),
	}
	if got := r.DefaultName(); got != "a4" {
		t.Errorf("DefaultName() = %q, want %q", got, "a4")
	}

	// extra tokens after the name are ignored
	config2 := writeConfig(t, "letter extra tokens\n")
	r.ConfigPath = config2
	if got := r.DefaultName(); got != "letter" {
		t.Errorf("DefaultName() = %q, want %q", got, "letter")
	}
}

func TestConfigEnvOverride(t *testing.T) {
	config := writeConfig(t, "a4\n")
	override := writeConfig(t, "legal\n")
	r := &Resolver{
		Catalog:    testCatalog(t),
		ConfigPath: config,
		Getenv:     fakeEnv(map[string]string{ConfigEnv: override}),
	}
	if got := r.DefaultName(); got != "legal" {
		t.Errorf("DefaultName() = %q, want %q", got, "legal")
	}
}

func TestDefaultNameLocale(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "no-such-file")
	r := &Resolver{
		Catalog:    testCatalog(t),
		ConfigPath: missing,
		Getenv:     fakeEnv(nil),
		PageSize: func() (float64, float64, bool) {
			return 8.5 * 72, 11 * 72, true
		},
	}
	if got := r.DefaultName(); got != "Letter" {
		t.Errorf("DefaultName() = %q, want %q", got, "Letter")
	}

	// locale dimensions are matched in whole millimeters, so small
	// rounding differences do not matter
	r.PageSize = func() (float64, float64, bool) {
		return 595.44, 841.68, true // 210x297 mm, roughly
	}
	if got := r.DefaultName(); got != "A4" {
		t.Errorf("DefaultName() = %q, want %q", got, "A4")
	}

	// an unavailable locale facility falls through to the fallback
	r.PageSize = func() (float64, float64, bool) {
		return 0, 0, false
	}
	if got := r.DefaultName(); got != FallbackName {
		t.Errorf("DefaultName() = %q, want %q", got, FallbackName)
	}

	// so does a page size which matches no catalog entry
	r.PageSize = func() (float64, float64, bool) {
		return 100, 100, true
	}
	if got := r.DefaultName(); got != FallbackName {
		t.Errorf("DefaultName() = %q, want %q", got, FallbackName)
	}
}

func TestDefaultNameFallback(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "no-such-file")
	r := &Resolver{
		Catalog:    testCatalog(t),
		ConfigPath: missing,
		Getenv:     fakeEnv(nil),
	}
	if got := r.DefaultName(); got != FallbackName {
		t.Errorf("DefaultName() = %q, want %q", got, FallbackName)
	}

	r.Fallback = "letter"
	if got := r.DefaultName(); got != "letter" {
		t.Errorf("DefaultName() = %q, want %q", got, "letter")
	}
}

func TestSystemName(t *testing.T) {
	c := testCatalog(t)
	missing := filepath.Join(t.TempDir(), "no-such-file")

	cases := []struct {
		name   string
		env    map[string]string
		config string
		want   string
	}{
		// names found in the catalog are normalized to the
		// catalog's spelling
		{"config casing", nil, "a4\n", "A4"},
		{"env casing", map[string]string{SizeEnv: "letter"}, "", "Letter"},
		// unknown names are passed through unchanged
		{"unknown name", map[string]string{SizeEnv: "A2"}, "", "A2"},
		{"unknown config", nil, "Foolscap\n", "Foolscap"},
		// empty sources fall through
		{"env beats config", map[string]string{SizeEnv: "legal"}, "a4\n", "legal"},
		{"fallback", nil, "", "A4"},
	}
	for _, test := range cases {
		t.Run(test.name, func(t *testing.T) {
			configPath := missing
			if test.config != "" {
				configPath = writeConfig(t, test.config)
			}
			r := &Resolver{
				Catalog:    c,
				ConfigPath: configPath,
				Getenv:     fakeEnv(test.env),
			}
			if got := r.SystemName(); got != test.want {
				t.Errorf("SystemName() = %q, want %q", got, test.want)
			}
		})
	}
}

func TestSystemNameIgnoresLocale(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "no-such-file")
	r := &Resolver{
		Catalog:    testCatalog(t),
		ConfigPath: missing,
		Getenv:     fakeEnv(nil),
		PageSize: func() (float64, float64, bool) {
			return 8.5 * 72, 11 * 72, true
		},
	}
	if got := r.SystemName(); got != "A4" {
		t.Errorf("SystemName() = %q, want %q", got, "A4")
	}
}
