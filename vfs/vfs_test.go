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

package vfs_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gophernx/test"
	"github.com/jetsetilly/gophernx/vfs"
)

func TestFile(t *testing.T) {
	f := vfs.NewFile("version.dat", []byte{0x00, 0x00, 0x00, 0x20})
	test.ExpectEquality(t, f.Name(), "version.dat")
	test.ExpectEquality(t, f.Size(), 4)
	test.ExpectEquality(t, f.String(), "version.dat [4 bytes]")

	// equality is over name and contents
	test.ExpectSuccess(t, f.Equals(vfs.NewFile("version.dat", []byte{0x00, 0x00, 0x00, 0x20})))
	test.ExpectSuccess(t, !f.Equals(vfs.NewFile("version.dat", []byte{0x00, 0x00, 0x00, 0x1a})))
	test.ExpectSuccess(t, !f.Equals(vfs.NewFile("other.dat", []byte{0x00, 0x00, 0x00, 0x20})))
}

func TestDirOrdering(t *testing.T) {
	var err error

	d := vfs.NewDir("data")

	// insertion order is deliberately not name order
	err = d.AddFile(vfs.NewFile("b.txt", []byte("b")))
	test.ExpectSuccess(t, err)
	err = d.AddFile(vfs.NewFile("a.txt", []byte("a")))
	test.ExpectSuccess(t, err)
	err = d.AddFile(vfs.NewFile("c.txt", []byte("c")))
	test.ExpectSuccess(t, err)

	files := d.Files()
	test.DemandEquality(t, len(files), 3)
	test.ExpectEquality(t, files[0].Name(), "a.txt")
	test.ExpectEquality(t, files[1].Name(), "b.txt")
	test.ExpectEquality(t, files[2].Name(), "c.txt")

	// the same content added in a different order builds an equal directory
	e := vfs.NewDir("data")
	_ = e.AddFile(vfs.NewFile("c.txt", []byte("c")))
	_ = e.AddFile(vfs.NewFile("a.txt", []byte("a")))
	_ = e.AddFile(vfs.NewFile("b.txt", []byte("b")))
	test.ExpectSuccess(t, d.Equals(e))
}

func TestDirUniqueNames(t *testing.T) {
	var err error

	d := vfs.NewDir("data")
	err = d.AddFile(vfs.NewFile("common.txt", []byte("x")))
	test.ExpectSuccess(t, err)

	// a second file with the same name is rejected
	err = d.AddFile(vfs.NewFile("common.txt", []byte("y")))
	test.ExpectFailure(t, err)

	// names are unique across files and subdirectories
	err = d.AddDir(vfs.NewDir("common.txt"))
	test.ExpectFailure(t, err)

	err = d.AddDir(vfs.NewDir("zoneinfo"))
	test.ExpectSuccess(t, err)
	err = d.AddFile(vfs.NewFile("zoneinfo", []byte("z")))
	test.ExpectFailure(t, err)

	// the rejected additions have not changed the directory
	test.ExpectEquality(t, d.NumEntries(), 2)
}

func TestDirLookup(t *testing.T) {
	d := vfs.NewDir("data")
	_ = d.AddFile(vfs.NewFile("ShapeHigh.dat", []byte{0x01}))
	sub := vfs.NewDir("zoneinfo")
	_ = sub.AddFile(vfs.NewFile("UTC", []byte{0x02}))
	_ = d.AddDir(sub)

	f, ok := d.File("ShapeHigh.dat")
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, f.Size(), 1)

	_, ok = d.File("ShapeLow.dat")
	test.ExpectSuccess(t, !ok)

	z, ok := d.Dir("zoneinfo")
	test.DemandSuccess(t, ok)
	_, ok = z.File("UTC")
	test.ExpectSuccess(t, ok)

	_, ok = d.Dir("ShapeHigh.dat")
	test.ExpectSuccess(t, !ok)
}

func TestVisualise(t *testing.T) {
	d := vfs.NewDir("data")
	_ = d.AddFile(vfs.NewFile("common.txt", []byte("x")))
	sub := vfs.NewDir("zoneinfo")
	_ = sub.AddFile(vfs.NewFile("UTC", []byte{0x02}))
	_ = d.AddDir(sub)

	s := &strings.Builder{}
	vfs.Visualise(s, d)
	test.ExpectSuccess(t, strings.Contains(s.String(), "digraph"))
	test.ExpectSuccess(t, strings.Contains(s.String(), "data/"))
}
