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

package modalflag

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nesemu/nesemu/curated"
)

// Address is a flag.Value for 16 bit addresses. The value is in hexadecimal
// and can be prefixed with $ or 0x.
type Address struct {
	Value uint16

	// the flag was set on the command line
	Changed bool
}

func (a *Address) String() string {
	if a == nil {
		return ""
	}
	return fmt.Sprintf("$%04x", a.Value)
}

// Set implements the flag.Value interface.
func (a *Address) Set(s string) error {
	t := strings.TrimPrefix(s, "$")
	t = strings.TrimPrefix(strings.ToLower(t), "0x")

	v, err := strconv.ParseUint(t, 16, 16)
	if err != nil {
		return curated.Errorf("not a 16 bit hexadecimal address (%s)", s)
	}

	a.Value = uint16(v)
	a.Changed = true

	return nil
}
