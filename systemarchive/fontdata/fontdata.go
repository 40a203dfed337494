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

// Package fontdata embeds the raw TTF bodies for the shared system fonts.
//
// The console's system fonts are licensed and cannot be redistributed, so
// the embedded bodies are placeholders: each begins with a minimal sfnt
// offset table and is padded with a fixed pseudo-random fill to the byte
// length of the genuine font. Guest software that only measures the shared
// font (which is all the software we have observed doing anything with it)
// is satisfied by the sizes alone. See the gen directory for how the assets
// are produced.
//
// Every body is a whole number of 32-bit words, which the bfttf packaging
// transform requires.
package fontdata

import (
	_ "embed"
	"fmt"
)

// byte lengths of the genuine fonts. the embedded placeholders must match
// exactly because guest software knows the sizes it is expecting
const (
	StandardSize             = 217276
	ChineseSimplifiedSize    = 185620
	ExtChineseSimplifiedSize = 214356
	ChineseTraditionalSize   = 222236
	KoreanSize               = 190044
	NintendoExtendedSize     = 6024
)

//go:embed "standard.bin"
var Standard []byte

//go:embed "chinese_simplified.bin"
var ChineseSimplified []byte

//go:embed "ext_chinese_simplified.bin"
var ExtChineseSimplified []byte

//go:embed "chinese_traditional.bin"
var ChineseTraditional []byte

//go:embed "korean.bin"
var Korean []byte

//go:embed "nintendo_extended.bin"
var NintendoExtended []byte

func init() {
	// a size mismatch means the assets have been regenerated incorrectly.
	// there is no way to continue from that
	for _, f := range []struct {
		name string
		data []byte
		size int
	}{
		{"standard", Standard, StandardSize},
		{"chinese simplified", ChineseSimplified, ChineseSimplifiedSize},
		{"ext chinese simplified", ExtChineseSimplified, ExtChineseSimplifiedSize},
		{"chinese traditional", ChineseTraditional, ChineseTraditionalSize},
		{"korean", Korean, KoreanSize},
		{"nintendo extended", NintendoExtended, NintendoExtendedSize},
	} {
		if len(f.data) != f.size {
			panic(fmt.Sprintf("fontdata: %s font body is %d bytes, want %d", f.name, len(f.data), f.size))
		}
	}
}
