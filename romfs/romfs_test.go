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

package romfs_test

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/jetsetilly/gophernx/romfs"
	"github.com/jetsetilly/gophernx/test"
	"github.com/jetsetilly/gophernx/vfs"
)

func testTree(t *testing.T) vfs.Dir {
	t.Helper()

	zone := vfs.NewDir("zoneinfo")
	test.DemandSuccess(t, zone.AddFile(vfs.NewFile("UTC", bytes.Repeat([]byte{0x54}, 54))))

	etc := vfs.NewDir("Etc")
	test.DemandSuccess(t, etc.AddFile(vfs.NewFile("GMT", bytes.Repeat([]byte{0x47}, 54))))
	test.DemandSuccess(t, zone.AddDir(etc))

	d := vfs.NewDir("data")
	test.DemandSuccess(t, d.AddFile(vfs.NewFile("version.txt", []byte("2021a\n"))))
	test.DemandSuccess(t, d.AddFile(vfs.NewFile("empty.dat", nil)))
	test.DemandSuccess(t, d.AddDir(zone))

	return d
}

func TestRoundTrip(t *testing.T) {
	d := testTree(t)

	f, err := romfs.Pack(d)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, f.Name(), "data")

	e, err := romfs.Open(f)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, d.Equals(e))
}

func TestImageLayout(t *testing.T) {
	f, err := romfs.Pack(testTree(t))
	test.DemandSuccess(t, err)

	image := f.Data()

	// the first header field is the header length
	test.ExpectEquality(t, binary.LittleEndian.Uint64(image), 0x50)

	// the file data region always begins at 0x200
	test.ExpectEquality(t, binary.LittleEndian.Uint64(image[0x48:]), 0x200)

	// the first file in the data region is the first file added during the
	// tree walk, and files are aligned to 0x10 within the region
	test.ExpectSuccess(t, bytes.Equal(image[0x200:0x200+6], []byte("2021a\n")))
	test.ExpectSuccess(t, bytes.Equal(image[0x210:0x210+54], bytes.Repeat([]byte{0x54}, 54)))
}

func TestDeterminism(t *testing.T) {
	a, err := romfs.Pack(testTree(t))
	test.DemandSuccess(t, err)
	b, err := romfs.Pack(testTree(t))
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, a.Equals(b))
}

func TestEmptyDir(t *testing.T) {
	f, err := romfs.Pack(vfs.NewDir("data"))
	test.DemandSuccess(t, err)

	e, err := romfs.Open(f)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, e.NumEntries(), 0)
}

func TestOpenRejections(t *testing.T) {
	var err error

	// too short
	_, err = romfs.Open(vfs.NewFile("data", []byte{0x50}))
	test.ExpectFailure(t, err)

	// long enough but not an image
	_, err = romfs.Open(vfs.NewFile("data", bytes.Repeat([]byte{0xff}, 0x200)))
	test.ExpectFailure(t, err)
}
