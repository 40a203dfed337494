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

package systemarchive

import (
	"github.com/jetsetilly/gophernx/vfs"
)

// the firmware version the synthesized SystemVersion archive reports to the
// guest. guest software is happy with anything recent enough for its own
// requirements
const (
	versionMajor  = 12
	versionMinor  = 1
	versionMicro  = 0
	revisionMajor = 5
	revisionMinor = 0

	platformString = "NX"
	versionHash    = "69103fcb2004dace877bf64f7c3c6584b6d68f28"
	displayVersion = "12.1.0"
	displayTitle   = "NintendoSDK Firmware for NX 12.1.0-5.0"
)

// the version record is a single file of fixed layout: version and revision
// numbers, then four fixed-width zero-padded strings
func systemVersion() (vfs.Dir, error) {
	record := make([]byte, 0x100)
	record[0x00] = versionMajor
	record[0x01] = versionMinor
	record[0x02] = versionMicro
	record[0x04] = revisionMajor
	record[0x05] = revisionMinor
	copy(record[0x08:0x28], platformString)
	copy(record[0x28:0x68], versionHash)
	copy(record[0x68:0x80], displayVersion)
	copy(record[0x80:0x100], displayTitle)

	d := vfs.NewDir(rootName)
	err := d.AddFile(vfs.NewFile("file", record))
	return d, err
}
