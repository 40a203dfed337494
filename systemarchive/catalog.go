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
	"fmt"

	"github.com/jetsetilly/gophernx/vfs"
)

// system archives occupy a contiguous range of title identifiers
const (
	TitleBase  uint64 = 0x0100000000000800
	TitleCount uint64 = 0x28
)

// every archive root carries the same name. the guest's loader expects it
const rootName = "data"

// a supplier builds the content tree for one archive. suppliers are pure:
// the same supplier always produces a byte-identical tree
type supplier func() (vfs.Dir, error)

type descriptor struct {
	title  uint64
	name   string
	supply supplier
}

// the catalog is data, not dispatch logic: adding a supplier for an archive
// is a change to this table only. entries are indexed by title-TitleBase
var catalog = [TitleCount]descriptor{
	{0x0100000000000800, "CertStore", nil},
	{0x0100000000000801, "ErrorMessage", nil},
	{0x0100000000000802, "MiiModel", miiModel},
	{0x0100000000000803, "BrowserDll", nil},
	{0x0100000000000804, "Help", nil},
	{0x0100000000000805, "SharedFont", nil},
	{0x0100000000000806, "NgWord", ngWord1},
	{0x0100000000000807, "SsidList", nil},
	{0x0100000000000808, "Dictionary", nil},
	{0x0100000000000809, "SystemVersion", systemVersion},
	{0x010000000000080a, "AvatarImage", nil},
	{0x010000000000080b, "LocalNews", nil},
	{0x010000000000080c, "Eula", nil},
	{0x010000000000080d, "UrlBlackList", nil},
	{0x010000000000080e, "TimeZoneBinary", timeZoneBinary},
	{0x010000000000080f, "CertStoreCruiser", nil},
	{0x0100000000000810, "FontNintendoExtension", fontNintendoExtension},
	{0x0100000000000811, "FontStandard", fontStandard},
	{0x0100000000000812, "FontKorean", fontKorean},
	{0x0100000000000813, "FontChineseTraditional", fontChineseTraditional},
	{0x0100000000000814, "FontChineseSimple", fontChineseSimple},
	{0x0100000000000815, "FontBfcpx", nil},
	{0x0100000000000816, "SystemUpdate", nil},
	{0x0100000000000817, "reserved", nil},
	{0x0100000000000818, "FirmwareDebugSettings", nil},
	{0x0100000000000819, "BootImagePackage", nil},
	{0x010000000000081a, "BootImagePackageSafe", nil},
	{0x010000000000081b, "BootImagePackageExFat", nil},
	{0x010000000000081c, "BootImagePackageExFatSafe", nil},
	{0x010000000000081d, "FatalMessage", nil},
	{0x010000000000081e, "ControllerIcon", nil},
	{0x010000000000081f, "PlatformConfigIcosa", nil},
	{0x0100000000000820, "PlatformConfigCopper", nil},
	{0x0100000000000821, "PlatformConfigHoag", nil},
	{0x0100000000000822, "ControllerFirmware", nil},
	{0x0100000000000823, "NgWord2", ngWord2},
	{0x0100000000000824, "PlatformConfigIcosaMariko", nil},
	{0x0100000000000825, "ApplicationBlackList", nil},
	{0x0100000000000826, "RebootlessSystemUpdateVersion", nil},
	{0x0100000000000827, "ContentActionTable", nil},
}

func init() {
	// the table must be exhaustive over the title range and in title order.
	// anything else is a programmer error
	for i := range catalog {
		if catalog[i].title != TitleBase+uint64(i) {
			panic(fmt.Sprintf("systemarchive: catalog entry %d is out of order", i))
		}
		if catalog[i].name == "" {
			panic(fmt.Sprintf("systemarchive: catalog entry %d has no name", i))
		}
	}
}

// Name of the archive with the given title identifier. The second return
// value is false if the title is not a system archive
func Name(title uint64) (string, bool) {
	if title < TitleBase || title >= TitleBase+TitleCount {
		return "", false
	}
	return catalog[title-TitleBase].name, true
}
