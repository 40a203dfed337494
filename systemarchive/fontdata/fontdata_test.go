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

package fontdata_test

import (
	"bytes"
	"testing"

	"github.com/jetsetilly/gophernx/systemarchive/fontdata"
	"github.com/jetsetilly/gophernx/test"
)

func TestBodies(t *testing.T) {
	// sfnt version 1.0
	sfnt := []byte{0x00, 0x01, 0x00, 0x00}

	for _, f := range []struct {
		data []byte
		size int
	}{
		{fontdata.Standard, fontdata.StandardSize},
		{fontdata.ChineseSimplified, fontdata.ChineseSimplifiedSize},
		{fontdata.ExtChineseSimplified, fontdata.ExtChineseSimplifiedSize},
		{fontdata.ChineseTraditional, fontdata.ChineseTraditionalSize},
		{fontdata.Korean, fontdata.KoreanSize},
		{fontdata.NintendoExtended, fontdata.NintendoExtendedSize},
	} {
		test.ExpectEquality(t, len(f.data), f.size)

		// a whole number of 32-bit words. the bfttf transform requires it
		test.ExpectEquality(t, f.size%4, 0)

		test.ExpectSuccess(t, bytes.HasPrefix(f.data, sfnt))
	}
}
