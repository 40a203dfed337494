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

// Package bfttf packs raw TTF data into the console's BFTTF container. The
// container is the TTF body obfuscated as a stream of 32-bit little-endian
// words, preceded by an 8-byte header.
//
// Each word is XORed with a rolling key. The first header word carries the
// key (combined with the magic number) so the decrypting side needs no
// shared secret; the second header word carries the total container length.
//
// The one property everything else relies on is that Decrypt() is the exact
// inverse of Pack():
//
//	Decrypt(Pack(x)) == x
//
// for any x whose length is a whole number of words.
package bfttf

import (
	"encoding/binary"
	"math/bits"

	"github.com/jetsetilly/gophernx/curated"
)

// error patterns for the bfttf package
const (
	NotAContainer = "bfttf: data is not a bfttf container"
)

const (
	// the word the guest expects to see once the first header word has been
	// XORed with the key
	magic uint32 = 0x36f81a1e

	// the key used for the first word of the stream. every subsequent word
	// uses the previous key rotated left by one bit
	keySeed uint32 = 0x06186249

	// length in bytes of the container header. two 32-bit words
	HeaderSize = 8
)

// the rolling key schedule. data independent, so trivially invertible
func next(key uint32) uint32 {
	return bits.RotateLeft32(key, 1)
}

// Pack wraps raw TTF data in a BFTTF container. The length of the result is
// always len(raw)+HeaderSize.
//
// The length of the raw data must be a multiple of four. It is a programmer
// error for it not to be (every font body this project embeds satisfies the
// requirement) and the function will panic
func Pack(raw []byte) []byte {
	if len(raw)%4 != 0 {
		panic("bfttf: font body is not a whole number of 32-bit words")
	}

	out := make([]byte, len(raw)+HeaderSize)

	key := keySeed
	binary.LittleEndian.PutUint32(out, magic^key)
	key = next(key)
	binary.LittleEndian.PutUint32(out[4:], uint32(len(out))^key)

	for i := 0; i < len(raw); i += 4 {
		key = next(key)
		w := binary.LittleEndian.Uint32(raw[i:])
		binary.LittleEndian.PutUint32(out[HeaderSize+i:], w^key)
	}

	return out
}

// Decrypt recovers the raw TTF data from a BFTTF container. The key is
// recovered from the container header, making the function the inverse of
// Pack() without any further information
func Decrypt(data []byte) ([]byte, error) {
	if len(data) < HeaderSize || len(data)%4 != 0 {
		return nil, curated.Errorf(NotAContainer)
	}

	key := binary.LittleEndian.Uint32(data) ^ magic
	key = next(key)

	// the second header word carries the total container length
	if binary.LittleEndian.Uint32(data[4:])^key != uint32(len(data)) {
		return nil, curated.Errorf(NotAContainer)
	}

	raw := make([]byte, len(data)-HeaderSize)
	for i := 0; i < len(raw); i += 4 {
		key = next(key)
		w := binary.LittleEndian.Uint32(data[HeaderSize+i:])
		binary.LittleEndian.PutUint32(raw[i:], w^key)
	}

	return raw, nil
}
