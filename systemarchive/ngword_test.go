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

package systemarchive_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/jetsetilly/gophernx/systemarchive"
	"github.com/jetsetilly/gophernx/test"
)

// the word list as it appears in the archive. UTF-16BE with a byte order
// mark, one regular expression per line
var wordList = []byte{
	0xfe, 0xff,
	0x00, '^', 0x00, 'v', 0x00, 'e', 0x00, 'r', 0x00, 'y',
	0x00, 'b', 0x00, 'a', 0x00, 'd', 0x00, 'w', 0x00, 'o',
	0x00, 'r', 0x00, 'd', 0x00, '$', 0x00, '\n',
}

func TestNgWord(t *testing.T) {
	d := synthesize(t, 0x0100000000000806)

	// sixteen numbered lists, the common list and the version stamp
	test.ExpectEquality(t, d.NumEntries(), 18)

	common, ok := d.File("common.txt")
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, string(common.Data()), string(wordList))

	for i := 0; i < 16; i++ {
		f, ok := d.File(fmt.Sprintf("%d.txt", i))
		test.DemandSuccess(t, ok)
		test.ExpectEquality(t, string(f.Data()), string(wordList))
	}

	version, ok := d.File("version.dat")
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, string(version.Data()), "\x00\x00\x00\x20")
}

func TestNgWord2(t *testing.T) {
	d := synthesize(t, 0x0100000000000823)

	// sixteen numbered filters in three categories, three common filters
	// and the version stamp
	test.ExpectEquality(t, d.NumEntries(), 52)

	for i := 0; i < 16; i++ {
		for _, category := range []string{"b1", "b2", "not_b"} {
			f, ok := d.File(fmt.Sprintf("ac_%d_%s_nx", i, category))
			test.DemandSuccess(t, ok)
			test.ExpectEquality(t, f.Size(), 44)
		}
	}

	for _, name := range []string{"ac_common_b1_nx", "ac_common_b2_nx", "ac_common_not_b_nx"} {
		f, ok := d.File(name)
		test.DemandSuccess(t, ok)
		test.ExpectEquality(t, f.Size(), 44)
	}

	version, ok := d.File("version.dat")
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, string(version.Data()), "\x00\x00\x00\x1a")
}

func TestWordFilterPayload(t *testing.T) {
	d := synthesize(t, 0x0100000000000823)

	// every compiled filter in the archive inflates to an empty word list
	for _, f := range d.Files() {
		if !strings.HasPrefix(f.Name(), "ac_") {
			continue
		}
		b, err := systemarchive.WordFilterPayload(f.Data())
		test.DemandSuccess(t, err)
		test.ExpectEquality(t, len(b), 0)
	}

	// anything that is not a gzip stream is rejected
	_, err := systemarchive.WordFilterPayload([]byte("not a filter"))
	test.ExpectFailure(t, err)
}
