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

package vfs

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/jetsetilly/gophernx/curated"
)

// error patterns for the vfs package
const (
	DuplicateName = "vfs: duplicate name in directory %s: %s"
)

// File is a named run of bytes. Once a File has been handed outside of the
// package that built it, it is to be treated as immutable
type File struct {
	name string
	data []byte
}

// NewFile is the preferred method of initialisation for the File type
func NewFile(name string, data []byte) File {
	return File{
		name: name,
		data: data,
	}
}

// Name of the file
func (f File) Name() string {
	return f.name
}

// Size of the file contents in bytes
func (f File) Size() int {
	return len(f.data)
}

// Data returns the file contents. The returned slice must not be modified
func (f File) Data() []byte {
	return f.data
}

func (f File) String() string {
	return fmt.Sprintf("%s [%d bytes]", f.name, len(f.data))
}

// Equals is true if the two files have the same name and the same contents
func (f File) Equals(other File) bool {
	return f.name == other.name && bytes.Equal(f.data, other.data)
}

// Dir is a named, finite tree of files and subdirectories. A Dir is built
// bottom-up with the AddFile() and AddDir() functions and, like the File
// type, is to be treated as immutable once it has been handed outside of the
// package that built it.
//
// Names within a Dir are unique. Children are kept sorted by name so that
// two directories built from the same content in any insertion order are
// indistinguishable
type Dir struct {
	name  string
	files []File
	dirs  []Dir
}

// NewDir is the preferred method of initialisation for the Dir type
func NewDir(name string) Dir {
	return Dir{name: name}
}

// Name of the directory
func (d Dir) Name() string {
	return d.name
}

// taken is true if the name is already used by a file or subdirectory
func (d Dir) taken(name string) bool {
	_, ok := d.File(name)
	if !ok {
		_, ok = d.Dir(name)
	}
	return ok
}

// AddFile adds a file to the directory. Construction time only
func (d *Dir) AddFile(f File) error {
	if d.taken(f.name) {
		return curated.Errorf(DuplicateName, d.name, f.name)
	}
	i := sort.Search(len(d.files), func(i int) bool {
		return d.files[i].name >= f.name
	})
	d.files = append(d.files, File{})
	copy(d.files[i+1:], d.files[i:])
	d.files[i] = f
	return nil
}

// AddDir adds a subdirectory to the directory. Construction time only
func (d *Dir) AddDir(sub Dir) error {
	if d.taken(sub.name) {
		return curated.Errorf(DuplicateName, d.name, sub.name)
	}
	i := sort.Search(len(d.dirs), func(i int) bool {
		return d.dirs[i].name >= sub.name
	})
	d.dirs = append(d.dirs, Dir{})
	copy(d.dirs[i+1:], d.dirs[i:])
	d.dirs[i] = sub
	return nil
}

// Files in the directory, sorted by name. The returned slice must not be
// modified
func (d Dir) Files() []File {
	return d.files
}

// Dirs lists the subdirectories, sorted by name. The returned slice must not
// be modified
func (d Dir) Dirs() []Dir {
	return d.dirs
}

// File returns the named file in the directory
func (d Dir) File(name string) (File, bool) {
	i := sort.Search(len(d.files), func(i int) bool {
		return d.files[i].name >= name
	})
	if i < len(d.files) && d.files[i].name == name {
		return d.files[i], true
	}
	return File{}, false
}

// Dir returns the named subdirectory
func (d Dir) Dir(name string) (Dir, bool) {
	i := sort.Search(len(d.dirs), func(i int) bool {
		return d.dirs[i].name >= name
	})
	if i < len(d.dirs) && d.dirs[i].name == name {
		return d.dirs[i], true
	}
	return Dir{}, false
}

// NumEntries returns the number of immediate children, files and
// subdirectories both
func (d Dir) NumEntries() int {
	return len(d.files) + len(d.dirs)
}

// Equals is true if the two directories have the same name and structurally
// equal children
func (d Dir) Equals(other Dir) bool {
	if d.name != other.name {
		return false
	}
	if len(d.files) != len(other.files) || len(d.dirs) != len(other.dirs) {
		return false
	}
	for i := range d.files {
		if !d.files[i].Equals(other.files[i]) {
			return false
		}
	}
	for i := range d.dirs {
		if !d.dirs[i].Equals(other.dirs[i]) {
			return false
		}
	}
	return true
}

// String returns a flat listing of the full tree. Intended for error
// messages and log entries
func (d Dir) String() string {
	s := strings.Builder{}
	d.list(&s, "")
	return strings.TrimSuffix(s.String(), "\n")
}

func (d Dir) list(s *strings.Builder, prefix string) {
	prefix += d.name + "/"
	if d.NumEntries() == 0 {
		s.WriteString(prefix + "\n")
		return
	}
	for _, f := range d.files {
		s.WriteString(fmt.Sprintf("%s%s\n", prefix, f.String()))
	}
	for _, sub := range d.dirs {
		sub.list(s, prefix)
	}
}
