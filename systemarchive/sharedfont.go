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
	"github.com/jetsetilly/gophernx/bfttf"
	"github.com/jetsetilly/gophernx/systemarchive/fontdata"
	"github.com/jetsetilly/gophernx/vfs"
)

// the font archives each carry one or two bfttf containers. file names are
// fixed: the guest's loader opens them by name

func packFont(name string, body []byte) vfs.File {
	return vfs.NewFile(name, bfttf.Pack(body))
}

func fontNintendoExtension() (vfs.Dir, error) {
	d := vfs.NewDir(rootName)
	err := addFiles(&d,
		packFont("nintendo_ext_003.bfttf", fontdata.NintendoExtended),
		packFont("nintendo_ext2_003.bfttf", fontdata.NintendoExtended),
	)
	return d, err
}

func fontStandard() (vfs.Dir, error) {
	d := vfs.NewDir(rootName)
	err := d.AddFile(packFont("nintendo_udsg-r_std_003.bfttf", fontdata.Standard))
	return d, err
}

func fontKorean() (vfs.Dir, error) {
	d := vfs.NewDir(rootName)
	err := d.AddFile(packFont("nintendo_udsg-r_ko_003.bfttf", fontdata.Korean))
	return d, err
}

func fontChineseTraditional() (vfs.Dir, error) {
	d := vfs.NewDir(rootName)
	err := d.AddFile(packFont("nintendo_udjxh-db_zh-tw_003.bfttf", fontdata.ChineseTraditional))
	return d, err
}

func fontChineseSimple() (vfs.Dir, error) {
	d := vfs.NewDir(rootName)
	err := addFiles(&d,
		packFont("nintendo_udsg-r_org_zh-cn_003.bfttf", fontdata.ChineseSimplified),
		packFont("nintendo_udsg-r_ext_zh-cn_003.bfttf", fontdata.ExtChineseSimplified),
	)
	return d, err
}
