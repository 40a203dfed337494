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
	"io"

	"github.com/bradleyjkemp/memviz"
)

// node mirrors the Dir tree with exported fields, which is what memviz
// requires
type node struct {
	Name  string
	Files []string
	Dirs  []*node
}

func mirror(d Dir) *node {
	n := &node{Name: d.name + "/"}
	for _, f := range d.files {
		n.Files = append(n.Files, f.String())
	}
	for _, sub := range d.dirs {
		n.Dirs = append(n.Dirs, mirror(sub))
	}
	return n
}

// Visualise writes a graphviz (dot) rendering of the directory tree to the
// io.Writer. Useful when checking what a content supplier has built
func Visualise(output io.Writer, d Dir) {
	memviz.Map(output, mirror(d))
}
