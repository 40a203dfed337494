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

	"github.com/jetsetilly/gophernx/curated"
	"github.com/jetsetilly/gophernx/vfs"
)

type unpacker struct {
	dirTable  []byte
	fileTable []byte
	data      []byte

	// the number of entries rebuilt so far. a corrupt image with a cycle in
	// its sibling or child chains would otherwise walk forever
	count    int
	maxCount int
}

func section(image []byte, offset uint64, length uint64) ([]byte, error) {
	end := offset + length
	if end < offset || end > uint64(len(image)) {
		return nil, curated.Errorf(CorruptImage, curated.Errorf("section out of range"))
	}
	return image[offset:end], nil
}

// Open rebuilds the directory tree from a RomFS image. It is the inverse of
// Pack(). The root of the returned tree takes the name of the image file
//
// The hash tables in the image are not needed for the rebuild and are not
// touched.
func Open(f vfs.File) (vfs.Dir, error) {
	image := f.Data()
	if len(image) < headerSize || binary.LittleEndian.Uint64(image) != headerSize {
		return vfs.Dir{}, curated.Errorf(NotAnImage)
	}

	dirTable, err := section(image, binary.LittleEndian.Uint64(image[0x18:]), binary.LittleEndian.Uint64(image[0x20:]))
	if err != nil {
		return vfs.Dir{}, err
	}
	fileTable, err := section(image, binary.LittleEndian.Uint64(image[0x38:]), binary.LittleEndian.Uint64(image[0x40:]))
	if err != nil {
		return vfs.Dir{}, err
	}
	dataOff := binary.LittleEndian.Uint64(image[0x48:])
	if dataOff > uint64(len(image)) {
		return vfs.Dir{}, curated.Errorf(CorruptImage, curated.Errorf("data region out of range"))
	}

	u := &unpacker{
		dirTable:  dirTable,
		fileTable: fileTable,
		data:      image[dataOff:],
		maxCount:  len(dirTable)/dirEntrySize + len(fileTable)/fileEntrySize + 1,
	}

	root, _, err := u.dir(0)
	if err != nil {
		return vfs.Dir{}, err
	}

	// the root entry has an empty name. name the tree after the image file
	// instead
	d := vfs.NewDir(f.Name())
	for _, file := range root.Files() {
		_ = d.AddFile(file)
	}
	for _, sub := range root.Dirs() {
		_ = d.AddDir(sub)
	}
	return d, nil
}

func (u *unpacker) step() error {
	u.count++
	if u.count > u.maxCount {
		return curated.Errorf(CorruptImage, curated.Errorf("cycle in metadata"))
	}
	return nil
}

// entryName reads the name that follows the fixed portion of a metadata
// entry
func entryName(table []byte, offset uint32, fixed uint32, length uint32) (string, error) {
	start := uint64(offset) + uint64(fixed)
	end := start + uint64(length)
	if end < start || end > uint64(len(table)) {
		return "", curated.Errorf(CorruptImage, curated.Errorf("entry name out of range"))
	}
	return string(table[start:end]), nil
}

// dir rebuilds the directory whose metadata entry is at the given offset in
// the directory table. it returns the rebuilt directory and the offset of
// the next sibling
func (u *unpacker) dir(offset uint32) (vfs.Dir, uint32, error) {
	if err := u.step(); err != nil {
		return vfs.Dir{}, 0, err
	}
	if uint64(offset)+dirEntrySize > uint64(len(u.dirTable)) {
		return vfs.Dir{}, 0, curated.Errorf(CorruptImage, curated.Errorf("directory entry out of range"))
	}

	sibling := binary.LittleEndian.Uint32(u.dirTable[offset+0x04:])
	child := binary.LittleEndian.Uint32(u.dirTable[offset+0x08:])
	firstFile := binary.LittleEndian.Uint32(u.dirTable[offset+0x0c:])
	nameLen := binary.LittleEndian.Uint32(u.dirTable[offset+0x14:])

	name, err := entryName(u.dirTable, offset, dirEntrySize, nameLen)
	if err != nil {
		return vfs.Dir{}, 0, err
	}

	d := vfs.NewDir(name)

	for fo := firstFile; fo != invalidEntry; {
		var f vfs.File
		f, fo, err = u.file(fo)
		if err != nil {
			return vfs.Dir{}, 0, err
		}
		if err = d.AddFile(f); err != nil {
			return vfs.Dir{}, 0, curated.Errorf(CorruptImage, err)
		}
	}

	for do := child; do != invalidEntry; {
		var sub vfs.Dir
		sub, do, err = u.dir(do)
		if err != nil {
			return vfs.Dir{}, 0, err
		}
		if err = d.AddDir(sub); err != nil {
			return vfs.Dir{}, 0, curated.Errorf(CorruptImage, err)
		}
	}

	return d, sibling, nil
}

// file rebuilds the file whose metadata entry is at the given offset in the
// file table. it returns the rebuilt file and the offset of the next sibling
func (u *unpacker) file(offset uint32) (vfs.File, uint32, error) {
	if err := u.step(); err != nil {
		return vfs.File{}, 0, err
	}
	if uint64(offset)+fileEntrySize > uint64(len(u.fileTable)) {
		return vfs.File{}, 0, curated.Errorf(CorruptImage, curated.Errorf("file entry out of range"))
	}

	sibling := binary.LittleEndian.Uint32(u.fileTable[offset+0x04:])
	dataOffset := binary.LittleEndian.Uint64(u.fileTable[offset+0x08:])
	size := binary.LittleEndian.Uint64(u.fileTable[offset+0x10:])
	nameLen := binary.LittleEndian.Uint32(u.fileTable[offset+0x1c:])

	name, err := entryName(u.fileTable, offset, fileEntrySize, nameLen)
	if err != nil {
		return vfs.File{}, 0, err
	}

	data, err := section(u.data, dataOffset, size)
	if err != nil {
		return vfs.File{}, 0, err
	}

	return vfs.NewFile(name, data), sibling, nil
}
