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

package systemarchive

import (
	"bytes"
	"fmt"
	"io"

	"github.com/jetsetilly/gophernx/curated"
	"github.com/jetsetilly/gophernx/vfs"

	"github.com/klauspost/compress/gzip"
	"golang.org/x/text/encoding/unicode"
)

// the first bad word archive carries plain text files, one regular
// expression per line. ours names a single word that no guest software will
// ever encounter. the guest parser expects UTF-16BE with a byte order mark
var badWordTxt []byte

func init() {
	enc := unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewEncoder()
	b, err := enc.Bytes([]byte("^verybadword$\n"))
	if err != nil {
		panic(fmt.Sprintf("systemarchive: bad word list: %v", err))
	}
	badWordTxt = b
}

// version stamps for the two bad word archives. big-endian
var (
	badWordVersion1 = []byte{0x00, 0x00, 0x00, 0x20}
	badWordVersion2 = []byte{0x00, 0x00, 0x00, 0x1a}
)

// the second bad word archive carries compiled word filters: gzip streams
// that inflate to the filter body. this one inflates to nothing at all, a
// filter that matches no word
var compiledWordFilter = []byte{
	0x1f, 0x8b, 0x08, 0x08, 0x00, 0x00, 0x00, 0x00, 0x00, 0x03,
	'a', 'c', '_', 'c', 'o', 'm', 'm', 'o', 'n', '_',
	'e', 'm', 'p', 't', 'y', '_', 'l', 'i', 's', 't', 0x00,
	0x01, 0x00, 0x00, 0xff, 0xff,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
}

// WordFilterPayload inflates a compiled word filter of the kind carried by
// the second bad word archive. Guest software treats the result as a
// compiled word list; the filters this package supplies inflate to nothing
// at all, so nothing is ever filtered
func WordFilterPayload(filter []byte) ([]byte, error) {
	r, err := gzip.NewReader(bytes.NewReader(filter))
	if err != nil {
		return nil, curated.Errorf("ngword: %v", err)
	}
	defer r.Close()

	b, err := io.ReadAll(r)
	if err != nil {
		return nil, curated.Errorf("ngword: %v", err)
	}
	return b, nil
}

func ngWord1() (vfs.Dir, error) {
	d := vfs.NewDir(rootName)

	// sixteen numbered lists plus the common list. the guest's loader reads
	// all seventeen
	for i := 0; i < 16; i++ {
		if err := d.AddFile(vfs.NewFile(fmt.Sprintf("%d.txt", i), badWordTxt)); err != nil {
			return vfs.Dir{}, err
		}
	}

	err := addFiles(&d,
		vfs.NewFile("common.txt", badWordTxt),
		vfs.NewFile("version.dat", badWordVersion1),
	)
	return d, err
}

func ngWord2() (vfs.Dir, error) {
	d := vfs.NewDir(rootName)

	for i := 0; i < 16; i++ {
		for _, category := range []string{"b1", "b2", "not_b"} {
			name := fmt.Sprintf("ac_%d_%s_nx", i, category)
			if err := d.AddFile(vfs.NewFile(name, compiledWordFilter)); err != nil {
				return vfs.Dir{}, err
			}
		}
	}

	err := addFiles(&d,
		vfs.NewFile("ac_common_b1_nx", compiledWordFilter),
		vfs.NewFile("ac_common_b2_nx", compiledWordFilter),
		vfs.NewFile("ac_common_not_b_nx", compiledWordFilter),
		vfs.NewFile("version.dat", badWordVersion2),
	)
	return d, err
}
