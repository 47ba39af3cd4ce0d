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

package test_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/nesemu/nesemu/test"
)

func TestExpectFailure(t *testing.T) {
	test.ExpectFailure(t, false)
	test.ExpectFailure(t, errors.New("test"))
}

func TestExpectSuccess(t *testing.T) {
	test.ExpectSuccess(t, true)
	var err error
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, nil)
}

func TestExpectEquality(t *testing.T) {
	test.ExpectEquality(t, 10, 5+5)
	test.ExpectEquality(t, true, !false)
	test.ExpectEquality(t, uint16(0x1234), 0x1234)
}

func TestExpectInequality(t *testing.T) {
	test.ExpectInequality(t, 11, 5+5)
	test.ExpectInequality(t, true, false)
}

func TestCompareWriter(t *testing.T) {
	w := &test.CompareWriter{}
	fmt.Fprintln(w, "hello")
	fmt.Fprintln(w, "world")
	test.ExpectSuccess(t, w.Compare("hello\nworld\n"))
	test.ExpectSuccess(t, w.Contains("wor"))
	test.DemandEquality(t, len(w.Lines()), 2)
	test.ExpectEquality(t, w.Lines()[1], "world")

	w.Clear()
	test.ExpectEquality(t, w.String(), "")
	test.ExpectEquality(t, len(w.Lines()), 0)
}
