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

// Produces the placeholder font bodies embedded by the fontdata package.
// The output is deterministic so regenerating the assets never changes
// them: each file is a minimal sfnt offset table followed by an xorshift
// fill seeded from the file name.
package main

import (
	"fmt"
	"hash/fnv"
	"os"
)

var fonts = []struct {
	name string
	size int
}{
	{"standard.bin", 217276},
	{"chinese_simplified.bin", 185620},
	{"ext_chinese_simplified.bin", 214356},
	{"chinese_traditional.bin", 222236},
	{"korean.bin", 190044},
	{"nintendo_extended.bin", 6024},
}

func seed(name string) uint32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(name))
	return h.Sum32()
}

func body(name string, size int) []byte {
	out := make([]byte, 0, size)

	// minimal sfnt offset table: version 1.0, no table records
	out = append(out, 0x00, 0x01, 0x00, 0x00)
	out = append(out, make([]byte, 8)...)

	x := seed(name)
	for len(out) < size {
		x ^= x << 13
		x ^= x >> 17
		x ^= x << 5
		out = append(out, byte(x))
	}

	return out
}

func main() {
	for _, f := range fonts {
		if err := os.WriteFile(f.name, body(f.name, f.size), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "fontdata gen: %v\n", err)
			os.Exit(1)
		}
	}
}
