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
	"bytes"
	"encoding/binary"

	"github.com/jetsetilly/gophernx/vfs"
)

// version of the time zone database we claim to be carrying
const tzdbVersion = "2021a"

// tzif assembles a minimal version 1 TZif record: no transitions and a
// single standard-time type at a fixed offset from UTC
func tzif(utoff int32, designation string) []byte {
	buf := &bytes.Buffer{}

	buf.WriteString("TZif")
	buf.WriteByte(0x00)
	buf.Write(make([]byte, 15))

	// header counts: isutcnt, isstdcnt, leapcnt, timecnt, typecnt, charcnt
	for _, count := range []uint32{0, 0, 0, 0, 1, uint32(len(designation) + 1)} {
		_ = binary.Write(buf, binary.BigEndian, count)
	}

	// the single time type
	_ = binary.Write(buf, binary.BigEndian, utoff)
	buf.WriteByte(0x00) // not dst
	buf.WriteByte(0x00) // designation index

	buf.WriteString(designation)
	buf.WriteByte(0x00)

	return buf.Bytes()
}

// the real archive carries the complete zoneinfo database. we carry just
// enough of its shape for the guest's time services to resolve a device
// location of UTC
func timeZoneBinary() (vfs.Dir, error) {
	etc := vfs.NewDir("Etc")
	if err := etc.AddFile(vfs.NewFile("GMT", tzif(0, "GMT"))); err != nil {
		return vfs.Dir{}, err
	}

	zone := vfs.NewDir("zoneinfo")
	if err := zone.AddFile(vfs.NewFile("UTC", tzif(0, "UTC"))); err != nil {
		return vfs.Dir{}, err
	}
	if err := zone.AddDir(etc); err != nil {
		return vfs.Dir{}, err
	}

	d := vfs.NewDir(rootName)
	err := addFiles(&d,
		vfs.NewFile("version.txt", []byte(tzdbVersion+"\n")),
		vfs.NewFile("binaryList.txt", []byte("Etc/GMT\nUTC\n")),
	)
	if err != nil {
		return vfs.Dir{}, err
	}
	if err := d.AddDir(zone); err != nil {
		return vfs.Dir{}, err
	}
	return d, nil
}
