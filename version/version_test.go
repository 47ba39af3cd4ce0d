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

package version_test

import (
	"strings"
	"testing"

	"github.com/nesemu/nesemu/test"
	"github.com/nesemu/nesemu/version"
)

func TestVersion(t *testing.T) {
	v, r, release := version.Version()
	test.ExpectInequality(t, v, "")
	test.ExpectInequality(t, r, "")

	// test binaries are never linked with a version number
	test.ExpectFailure(t, release)

	s := version.String()
	test.ExpectSuccess(t, strings.HasPrefix(s, version.ApplicationName+" "))
	test.ExpectSuccess(t, strings.HasSuffix(s, ")"))
}
