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

package romfs

import (
	"encoding/binary"
	"strings"

	"github.com/jetsetilly/gophernx/curated"
	"github.com/jetsetilly/gophernx/vfs"
)

type dirEntry struct {
	name      string
	offset    uint32
	parent    uint32
	sibling   uint32
	child     uint32
	firstFile uint32
	hashNext  uint32
}

type fileEntry struct {
	name       string
	offset     uint32
	parent     uint32
	sibling    uint32
	dataOffset uint64
	data       []byte
	hashNext   uint32
}

type packer struct {
	dirs  []*dirEntry
	files []*fileEntry

	dirTableLen  uint32
	fileTableLen uint32
	dataLen      uint64
}

func (p *packer) addDir(name string) *dirEntry {
	e := &dirEntry{
		name:      name,
		offset:    p.dirTableLen,
		sibling:   invalidEntry,
		child:     invalidEntry,
		firstFile: invalidEntry,
		hashNext:  invalidEntry,
	}
	p.dirTableLen += dirEntrySize + align32(uint32(len(name)), 4)
	p.dirs = append(p.dirs, e)
	return e
}

func (p *packer) addFile(name string, data []byte) *fileEntry {
	p.dataLen = align(p.dataLen, fileAlignment)
	e := &fileEntry{
		name:       name,
		offset:     p.fileTableLen,
		sibling:    invalidEntry,
		dataOffset: p.dataLen,
		data:       data,
		hashNext:   invalidEntry,
	}
	p.fileTableLen += fileEntrySize + align32(uint32(len(name)), 4)
	p.dataLen += uint64(len(data))
	p.files = append(p.files, e)
	return e
}

func checkName(name string) error {
	if name == "" {
		return curated.Errorf("empty entry name")
	}
	if strings.ContainsRune(name, '/') {
		return curated.Errorf("entry name contains a path separator: %s", name)
	}
	return nil
}

// walk adds the contents of d to the packer. entry is the metadata entry
// that has already been created for d
func (p *packer) walk(d vfs.Dir, entry *dirEntry) error {
	var prevFile *fileEntry
	for _, f := range d.Files() {
		if err := checkName(f.Name()); err != nil {
			return err
		}
		fe := p.addFile(f.Name(), f.Data())
		fe.parent = entry.offset
		if prevFile == nil {
			entry.firstFile = fe.offset
		} else {
			prevFile.sibling = fe.offset
		}
		prevFile = fe
	}

	// immediate subdirectories are added before any of their contents so
	// that sibling entries are adjacent in the metadata table
	children := make([]*dirEntry, 0, len(d.Dirs()))
	var prevDir *dirEntry
	for _, sub := range d.Dirs() {
		if err := checkName(sub.Name()); err != nil {
			return err
		}
		de := p.addDir(sub.Name())
		de.parent = entry.offset
		if prevDir == nil {
			entry.child = de.offset
		} else {
			prevDir.sibling = de.offset
		}
		prevDir = de
		children = append(children, de)
	}

	for i, sub := range d.Dirs() {
		if err := p.walk(sub, children[i]); err != nil {
			return err
		}
	}

	return nil
}

// Pack serialises the directory tree into a RomFS image. The name of the
// returned file is the name of the directory
func Pack(d vfs.Dir) (vfs.File, error) {
	p := &packer{}

	// the root entry. its name is always empty and it is its own parent
	root := p.addDir("")

	if err := p.walk(d, root); err != nil {
		return vfs.File{}, curated.Errorf(PackingError, err)
	}

	// build the hash chains. later entries are inserted at the head of
	// their bucket
	dirBuckets := make([]uint32, hashTableCount(len(p.dirs)))
	for i := range dirBuckets {
		dirBuckets[i] = invalidEntry
	}
	for _, e := range p.dirs {
		h := pathHash(e.parent, e.name) % uint32(len(dirBuckets))
		e.hashNext = dirBuckets[h]
		dirBuckets[h] = e.offset
	}

	fileBuckets := make([]uint32, hashTableCount(len(p.files)))
	for i := range fileBuckets {
		fileBuckets[i] = invalidEntry
	}
	for _, e := range p.files {
		h := pathHash(e.parent, e.name) % uint32(len(fileBuckets))
		e.hashNext = fileBuckets[h]
		fileBuckets[h] = e.offset
	}

	// the metadata tables follow the file data region
	dirHashOff := align(dataOffset+p.dataLen, 4)
	dirHashLen := uint64(len(dirBuckets) * 4)
	dirTableOff := dirHashOff + dirHashLen
	fileHashOff := dirTableOff + uint64(p.dirTableLen)
	fileHashLen := uint64(len(fileBuckets) * 4)
	fileTableOff := fileHashOff + fileHashLen

	image := make([]byte, fileTableOff+uint64(p.fileTableLen))

	// header
	hdr := []uint64{
		headerSize,
		dirHashOff, dirHashLen,
		dirTableOff, uint64(p.dirTableLen),
		fileHashOff, fileHashLen,
		fileTableOff, uint64(p.fileTableLen),
		dataOffset,
	}
	for i, v := range hdr {
		binary.LittleEndian.PutUint64(image[i*8:], v)
	}

	// file data region
	for _, e := range p.files {
		copy(image[dataOffset+e.dataOffset:], e.data)
	}

	// hash tables
	for i, v := range dirBuckets {
		binary.LittleEndian.PutUint32(image[dirHashOff+uint64(i*4):], v)
	}
	for i, v := range fileBuckets {
		binary.LittleEndian.PutUint32(image[fileHashOff+uint64(i*4):], v)
	}

	// metadata tables
	for _, e := range p.dirs {
		o := dirTableOff + uint64(e.offset)
		binary.LittleEndian.PutUint32(image[o:], e.parent)
		binary.LittleEndian.PutUint32(image[o+0x04:], e.sibling)
		binary.LittleEndian.PutUint32(image[o+0x08:], e.child)
		binary.LittleEndian.PutUint32(image[o+0x0c:], e.firstFile)
		binary.LittleEndian.PutUint32(image[o+0x10:], e.hashNext)
		binary.LittleEndian.PutUint32(image[o+0x14:], uint32(len(e.name)))
		copy(image[o+dirEntrySize:], e.name)
	}
	for _, e := range p.files {
		o := fileTableOff + uint64(e.offset)
		binary.LittleEndian.PutUint32(image[o:], e.parent)
		binary.LittleEndian.PutUint32(image[o+0x04:], e.sibling)
		binary.LittleEndian.PutUint64(image[o+0x08:], e.dataOffset)
		binary.LittleEndian.PutUint64(image[o+0x10:], uint64(len(e.data)))
		binary.LittleEndian.PutUint32(image[o+0x18:], e.hashNext)
		binary.LittleEndian.PutUint32(image[o+0x1c:], uint32(len(e.name)))
		copy(image[o+fileEntrySize:], e.name)
	}

	return vfs.NewFile(d.Name(), image), nil
}
