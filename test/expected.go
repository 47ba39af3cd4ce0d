// This file is part of nesemu.
//
// nesemu is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// nesemu is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with nesemu.  If not, see <https://www.gnu.org/licenses/>.

package test

import (
	"fmt"
	"strings"
	"testing"
)

// id returns a prefix for failure messages built from the optional tags
// given to the Expect and Demand functions
func id(tags ...any) string {
	if len(tags) == 0 {
		return ""
	}
	s := make([]string, len(tags))
	for i := range tags {
		s[i] = fmt.Sprintf("%v", tags[i])
	}
	return fmt.Sprintf("[%s] ", strings.Join(s, " "))
}

// expect returns true if v is a success value for its type. nil counts as
// success because a nil error is how functions indicate no error
func expect(t *testing.T, v any) bool {
	t.Helper()

	switch v := v.(type) {
	case bool:
		return v
	case error:
		return v == nil
	case nil:
		return true
	default:
		t.Fatalf("unsupported type (%T) for expectation testing", v)
	}

	return false
}

// ExpectEquality is used to test equality between one value and another.
func ExpectEquality[T comparable](t *testing.T, v T, expectedValue T, tags ...any) bool {
	t.Helper()
	if v != expectedValue {
		t.Errorf("%sequality test of type %T failed: '%v' does not equal '%v'", id(tags...), v, v, expectedValue)
		return false
	}
	return true
}

// ExpectInequality is used to test inequality between one value and another.
func ExpectInequality[T comparable](t *testing.T, v T, expectedValue T, tags ...any) bool {
	t.Helper()
	if v == expectedValue {
		t.Errorf("%sinequality test of type %T failed: '%v' does equal '%v'", id(tags...), v, v, expectedValue)
		return false
	}
	return true
}

// ExpectFailure tests argument v for a failure condition suitable for it's
// type. Currently supported types:
//
//	bool -> bool == false
//	error -> error != nil
//
// If type is nil then the test will fail.
func ExpectFailure(t *testing.T, v any, tags ...any) bool {
	t.Helper()
	if expect(t, v) {
		t.Errorf("%sexpected failure (%T)", id(tags...), v)
		return false
	}
	return true
}

// ExpectSuccess tests argument v for a success condition suitable for it's
// type. Currently supported types:
//
//	bool -> bool == true
//	error -> error == nil
//
// If type is nil then the test will succeed.
func ExpectSuccess(t *testing.T, v any, tags ...any) bool {
	t.Helper()
	if !expect(t, v) {
		if err, ok := v.(error); ok {
			t.Errorf("%sexpected success (error: %v)", id(tags...), err)
		} else {
			t.Errorf("%sexpected success (%T)", id(tags...), v)
		}
		return false
	}
	return true
}
