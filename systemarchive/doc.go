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

// Package systemarchive synthesizes the read-only system archives that
// guest software expects to find in the console's flash. We have no
// firmware to read them from, so each archive is built from static data the
// moment it is asked for and packed into a RomFS image that the filesystem
// layer can mount like any other.
//
// The Synthesize() function is the only entry point. The catalog of the
// forty archive titles is fixed; titles we know about but cannot usefully
// fabricate are present in the catalog without a content supplier and
// synthesize to nothing.
//
// Every supplier is a pure function. Calling Synthesize() twice with the
// same title produces byte-identical images, and concurrent calls are safe
// because nothing here is mutable after package initialisation.
package systemarchive
