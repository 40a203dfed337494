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

// placeholder records for the Mii model loader. sixteen bytes: a four byte
// tag, version one, then zero padding. NFTR stands in for texture data and
// NFSR for shape data
var (
	nftrRecord = []byte{'N', 'F', 'T', 'R', 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}
	nfsrRecord = []byte{'N', 'F', 'S', 'R', 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}
)

func miiModel() (vfs.Dir, error) {
	d := vfs.NewDir(rootName)
	err := addFiles(&d,
		vfs.NewFile("NXTextureLowLinear.dat", nftrRecord),
		vfs.NewFile("NXTextureLowSRGB.dat", nftrRecord),
		vfs.NewFile("NXTextureMidLinear.dat", nftrRecord),
		vfs.NewFile("NXTextureMidSRGB.dat", nftrRecord),
		vfs.NewFile("ShapeHigh.dat", nfsrRecord),
		vfs.NewFile("ShapeMid.dat", nfsrRecord),
	)
	return d, err
}
