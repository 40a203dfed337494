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
	"github.com/jetsetilly/gophernx/logger"
	"github.com/jetsetilly/gophernx/romfs"
	"github.com/jetsetilly/gophernx/vfs"
)

// tag to use for all log entries made by the package
const logTag = "system archive"

// addFiles is a convenience for suppliers that add more than one file at a
// time
func addFiles(d *vfs.Dir, files ...vfs.File) error {
	for _, f := range files {
		if err := d.AddFile(f); err != nil {
			return err
		}
	}
	return nil
}

// Synthesize builds the system archive with the given title identifier and
// returns it as a single file holding the RomFS image.
//
// The returned flag is false if the title is not a system archive at all,
// if the archive has no content supplier, or if anything downstream of the
// supplier fails. The distinction only matters to the log; callers treat
// all three the same way
func Synthesize(title uint64) (vfs.File, bool) {
	if title < TitleBase || title >= TitleBase+TitleCount {
		return vfs.File{}, false
	}

	desc := catalog[title-TitleBase]
	logger.Logf(logger.Allow, logTag, "open %s (%016x)", desc.name, desc.title)

	if desc.supply == nil {
		return vfs.File{}, false
	}

	d, err := desc.supply()
	if err != nil {
		logger.Logf(logger.Allow, logTag, "%s: %v", desc.name, err)
		return vfs.File{}, false
	}
	if d.NumEntries() == 0 {
		logger.Logf(logger.Allow, logTag, "%s: nothing to synthesize", desc.name)
		return vfs.File{}, false
	}

	f, err := romfs.Pack(d)
	if err != nil {
		logger.Logf(logger.Allow, logTag, "%s: %v", desc.name, err)
		return vfs.File{}, false
	}

	logger.Logf(logger.Allow, logTag, "%s synthesized (%d bytes)", desc.name, f.Size())
	return f, true
}
