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

// Paperconf prints the names and dimensions of paper sizes.
//
// Usage:
//
//	paperconf [options] [name]
//
// Without arguments, paperconf prints the name of the paper size
// configured for the system.  With a name argument, it reports on
// that paper size instead.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"seehuhn.de/go/paper"
)

func main() {
	all := flag.Bool("a", false, "report on all known paper sizes")
	useDefault := flag.Bool("d", false, "use the default paper size, taking the locale into account")
	showName := flag.Bool("n", false, "print the paper name")
	showSize := flag.Bool("s", false, "print the paper width and height")
	showWidth := flag.Bool("w", false, "print the paper width")
	showHeight := flag.Bool("h", false, "print the paper height")
	unit := flag.String("u", "pt", "unit for dimensions (in, ft, pt, m, dm, cm, mm)")
	specFile := flag.String("f", "", "use the given specification file instead of the system one")
	flag.Parse()

	if flag.NArg() > 1 || (*all && flag.NArg() > 0) {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] [name]\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}

	factor, ok := paper.UnitFactor(*unit)
	if !ok {
		fmt.Fprintf(os.Stderr, "%s: unknown unit %q\n", os.Args[0], *unit)
		os.Exit(1)
	}
	perPoint := 1 / (factor * 72)

	catalog := paper.Default()
	if *specFile != "" {
		var err error
		catalog, err = paper.ReadFile(*specFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", os.Args[0], err)
			os.Exit(1)
		}
	}

	show := func(p *paper.Paper) {
		var fields []string
		if *showName || !(*showSize || *showWidth || *showHeight) {
			fields = append(fields, p.Name)
		}
		if *showSize || *showWidth {
			fields = append(fields, fmt.Sprintf("%g", p.Width*perPoint))
		}
		if *showSize || *showHeight {
			fields = append(fields, fmt.Sprintf("%g", p.Height*perPoint))
		}
		fmt.Println(strings.Join(fields, " "))
	}

	if *all {
		for p := range catalog.All() {
			show(p)
		}
		return
	}

	name := flag.Arg(0)
	if name == "" {
		r := paper.NewResolver(catalog)
		if *useDefault {
			name = r.DefaultName()
		} else {
			name = r.SystemName()
		}
	}
	p := catalog.Get(name)
	if p == nil {
		fmt.Fprintf(os.Stderr, "%s: unknown paper size %q\n", os.Args[0], name)
		os.Exit(1)
	}
	show(p)
}
