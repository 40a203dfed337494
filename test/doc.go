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

// Package test contains helper functions to remove common boilerplate to
// make testing easier.
//
// The Expect functions record a test error and allow the test to continue.
// The Demand functions end the test immediately on failure. Use a Demand
// when continuing the test would cause a panic or would produce results
// that can't be reasoned about.
//
// ExpectSuccess and ExpectFailure accept a bool, an error, or nil. For an
// error value, nil is interpreted as success. This matches how errors are
// commonly returned and tested for in the rest of the project.
package test
