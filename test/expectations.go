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

package test

import (
	"testing"
)

// ExpectEquality is used to test equality between one value and another
func ExpectEquality[T comparable](t *testing.T, value T, expectedValue T) bool {
	t.Helper()
	if value != expectedValue {
		t.Errorf("equality test of type %T failed: '%v' does not equal '%v')", value, value, expectedValue)
		return false
	}
	return true
}

// DemandEquality is used to test equality between one value and another. The
// test will end if the test fails
func DemandEquality[T comparable](t *testing.T, value T, expectedValue T) {
	t.Helper()
	if value != expectedValue {
		t.Fatalf("equality test of type %T failed: '%v' does not equal '%v')", value, value, expectedValue)
	}
}

// ExpectInequality is used to test inequality between one value and another.
// In other words, the test does not want to succeed if the values are equal
func ExpectInequality[T comparable](t *testing.T, value T, expectedValue T) bool {
	t.Helper()
	if value == expectedValue {
		t.Errorf("inequality test of type %T failed: '%v' does equal '%v')", value, value, expectedValue)
		return false
	}
	return true
}

// succeed tests argument v for a success condition suitable for its type
func succeed(v any) (bool, bool) {
	switch v := v.(type) {
	case bool:
		return v, true
	case error:
		return v == nil, true
	case nil:
		return true, true
	}
	return false, false
}

// ExpectSuccess tests argument v for a success condition suitable for its
// type. Supported types are bool, error and nil. A nil value is considered a
// success
func ExpectSuccess(t *testing.T, v any) bool {
	t.Helper()

	b, ok := succeed(v)
	if !ok {
		t.Fatalf("unsupported type (%T) for ExpectSuccess()", v)
		return false
	}
	if !b {
		t.Errorf("expected success (%T)", v)
	}
	return b
}

// ExpectFailure tests argument v for a failure condition suitable for its
// type. Supported types are bool, error and nil. A nil value is considered a
// success and will therefore fail the expectation
func ExpectFailure(t *testing.T, v any) bool {
	t.Helper()

	b, ok := succeed(v)
	if !ok {
		t.Fatalf("unsupported type (%T) for ExpectFailure()", v)
		return false
	}
	if b {
		t.Errorf("expected failure (%T)", v)
	}
	return !b
}

// DemandSuccess is the same as ExpectSuccess except that the test will end
// if the expectation is not met
func DemandSuccess(t *testing.T, v any) {
	t.Helper()

	b, ok := succeed(v)
	if !ok {
		t.Fatalf("unsupported type (%T) for DemandSuccess()", v)
	}
	if !b {
		t.Fatalf("demanded success (%T)", v)
	}
}

// DemandFailure is the same as ExpectFailure except that the test will end
// if the expectation is not met
func DemandFailure(t *testing.T, v any) {
	t.Helper()

	b, ok := succeed(v)
	if !ok {
		t.Fatalf("unsupported type (%T) for DemandFailure()", v)
	}
	if b {
		t.Fatalf("demanded failure (%T)", v)
	}
}
