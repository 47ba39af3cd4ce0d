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

package commandline

import (
	"strconv"
	"strings"

	"github.com/nesemu/nesemu/curated"
)

// Sentinal errors returned by the number parsing functions.
const (
	NotHex    = "not a hexadecimal value (%s)"
	NotNumber = "not a decimal number (%s)"
	TooLarge  = "value too large (%s)"
)

// trimHexPrefix removes the optional $ or 0x prefix.
func trimHexPrefix(s string) string {
	s = strings.TrimPrefix(s, "$")
	if len(s) > 2 && (s[:2] == "0x" || s[:2] == "0X") {
		s = s[2:]
	}
	return s
}

func parseHex(s string, bits int) (uint64, error) {
	t := trimHexPrefix(s)
	if t == "" {
		return 0, curated.Errorf(NotHex, s)
	}
	v, err := strconv.ParseUint(t, 16, 64)
	if err != nil {
		return 0, curated.Errorf(NotHex, s)
	}
	if v >= 1<<bits {
		return 0, curated.Errorf(TooLarge, s)
	}
	return v, nil
}

// ParseAddress parses a 16 bit hexadecimal value, with an optional $ or 0x
// prefix.
func ParseAddress(s string) (uint16, error) {
	v, err := parseHex(s, 16)
	return uint16(v), err
}

// ParseValue parses an 8 bit hexadecimal value, with an optional $ or 0x
// prefix.
func ParseValue(s string) (uint8, error) {
	v, err := parseHex(s, 8)
	return uint8(v), err
}

// ParseNumber parses a decimal number.
func ParseNumber(s string) (int, error) {
	v, err := strconv.ParseUint(s, 10, 31)
	if err != nil {
		return 0, curated.Errorf(NotNumber, s)
	}
	return int(v), nil
}
