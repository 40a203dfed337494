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

// Package romfs converts between the vfs tree representation of an archive
// and the guest-visible RomFS image. Pack() serialises a vfs.Dir into a
// single vfs.File holding the image; Open() is the inverse and is what the
// filesystem layer uses to mount an image.
//
// An image is laid out as: a fixed-size header of offsets and sizes; the
// file data region, beginning at a fixed offset and with every file aligned
// within it; then the directory hash table, directory metadata table, file
// hash table and file metadata table.
//
// Directory and file metadata entries are identified by their byte offset
// into their respective tables. Sibling entries are linked through each
// entry's sibling field and each directory points at its first child
// directory and first child file. The hash tables exist so the guest can
// find an entry by path without walking the sibling lists: each bucket heads
// a chain linked through the entries' hashNext fields.
package romfs

// error patterns for the romfs package
const (
	PackingError = "romfs: %v"
	NotAnImage   = "romfs: not a romfs image"
	CorruptImage = "romfs: corrupt image: %v"
)

const (
	// length of the image header: ten 64-bit fields
	headerSize = 0x50

	// the file data region always begins at this offset, directly after the
	// header padding
	dataOffset = 0x200

	// alignment of each file within the data region
	fileAlignment = 0x10

	// marks the end of a sibling or hash chain and an absent first child
	invalidEntry = uint32(0xffffffff)

	// seed for the path hash
	hashSeed = uint32(123456789)

	// fixed portion of a metadata entry. the entry name, padded to a
	// multiple of four, follows
	dirEntrySize  = 0x18
	fileEntrySize = 0x20
)

// hash of an entry name in the context of its parent directory. the parent
// is identified by the byte offset of its metadata entry
func pathHash(parent uint32, name string) uint32 {
	h := parent ^ hashSeed
	for i := 0; i < len(name); i++ {
		h = h>>5 | h<<27
		h ^= uint32(name[i])
	}
	return h
}

// number of buckets in a hash table covering n entries. coprime with the
// small primes so that the modulo spreads clustered hashes
func hashTableCount(n int) int {
	if n < 3 {
		return 3
	}
	if n < 19 {
		return n | 1
	}
	for n%2 == 0 || n%3 == 0 || n%5 == 0 || n%7 == 0 || n%11 == 0 || n%13 == 0 || n%17 == 0 {
		n++
	}
	return n
}

func align(v uint64, n uint64) uint64 {
	return (v + n - 1) &^ (n - 1)
}

func align32(v uint32, n uint32) uint32 {
	return (v + n - 1) &^ (n - 1)
}
