// This file is part of GopherNX.
//
// GopherNX is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherNX is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherNX.  If not, see <https://www.gnu.org/licenses/>.

// The gophernx tool synthesizes system archives from the command line. It
// is a development aid: the emulator proper calls the systemarchive package
// directly.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jetsetilly/gophernx/logger"
	"github.com/jetsetilly/gophernx/romfs"
	"github.com/jetsetilly/gophernx/systemarchive"
	"github.com/jetsetilly/gophernx/version"
	"github.com/jetsetilly/gophernx/vfs"
)

var (
	extractFlag = flag.Bool("x", false, "write the RomFS image to the output directory")
	listFlag    = flag.Bool("l", false, "list the contents of the archive")
	vizFlag     = flag.Bool("viz", false, "write the directory tree as a dot graph to stdout")
	filtersFlag = flag.Bool("filters", false, "inflate any compiled word filters in the archive")
	outputDir   = flag.String("o", ".", "output directory")
	logFlag     = flag.Bool("log", false, "echo log entries to stderr")
	versionFlag = flag.Bool("v", false, "print version and exit")
)

// titles are given on the command line either as a full 64bit identifier or
// as a name from the catalog
func resolveTitle(arg string) (uint64, error) {
	if title, err := strconv.ParseUint(strings.TrimPrefix(arg, "0x"), 16, 64); err == nil {
		return title, nil
	}

	for title := systemarchive.TitleBase; title < systemarchive.TitleBase+systemarchive.TitleCount; title++ {
		if name, ok := systemarchive.Name(title); ok && strings.EqualFold(name, arg) {
			return title, nil
		}
	}

	return 0, fmt.Errorf("unrecognised title: %s", arg)
}

func catalogListing() string {
	s := strings.Builder{}
	for title := systemarchive.TitleBase; title < systemarchive.TitleBase+systemarchive.TitleCount; title++ {
		name, _ := systemarchive.Name(title)
		s.WriteString(fmt.Sprintf("  %016x  %s\n", title, name))
	}
	return s.String()
}

// the bad word archives carry compiled word filters as gzip streams. show
// what each one inflates to
func inflateFilters(d vfs.Dir) {
	for _, f := range d.Files() {
		if !strings.HasPrefix(f.Name(), "ac_") {
			continue
		}
		b, err := systemarchive.WordFilterPayload(f.Data())
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", f.Name(), err)
			continue
		}
		fmt.Printf("%s: %d bytes compiled word list\n", f.Name(), len(b))
	}
}

func main() {
	flag.Parse()

	if *versionFlag {
		vrsn, revision, _ := version.Version()
		fmt.Printf("%s %s\n", version.ApplicationName, vrsn)
		if revision != "" {
			fmt.Println(revision)
		}
		return
	}

	if *logFlag {
		logger.SetEcho(os.Stderr, true)
	}

	args := flag.Args()
	if len(args) < 1 {
		fmt.Println("usage: gophernx [options] <title id or name>")
		fmt.Println("options:")
		flag.PrintDefaults()
		fmt.Println("titles:")
		fmt.Print(catalogListing())
		os.Exit(1)
	}

	title, err := resolveTitle(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	f, ok := systemarchive.Synthesize(title)
	if !ok {
		name, _ := systemarchive.Name(title)
		if name == "" {
			name = "not a system archive"
		}
		fmt.Fprintf(os.Stderr, "no archive for %016x (%s)\n", title, name)
		os.Exit(1)
	}

	if *listFlag || *vizFlag || *filtersFlag {
		d, err := romfs.Open(f)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		if *listFlag {
			fmt.Print(d.String())
		}
		if *vizFlag {
			vfs.Visualise(os.Stdout, d)
		}
		if *filtersFlag {
			inflateFilters(d)
		}
	}

	if *extractFlag {
		path := filepath.Join(*outputDir, fmt.Sprintf("%016x.romfs", title))
		if err := os.WriteFile(path, f.Data(), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		fmt.Printf("%s (%d bytes)\n", path, f.Size())
	}
}
