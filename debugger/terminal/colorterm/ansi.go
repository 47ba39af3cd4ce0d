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

//go:build unix

package colorterm

import "fmt"

// ansi colours.
const (
	red     = 1
	green   = 2
	yellow  = 3
	blue    = 4
	magenta = 5
	cyan    = 6
	white   = 7
)

func pen(colour int, bright bool) string {
	if bright {
		return fmt.Sprintf("\033[%d;1m", 30+colour)
	}
	return fmt.Sprintf("\033[%dm", 30+colour)
}

var (
	normalPen = "\033[0m"
	clearLine = "\033[2K"
	boldPen   = "\033[1m"

	cursorStore   = "\0337"
	cursorRestore = "\0338"
)

func cursorMove(n int) string {
	switch {
	case n > 0:
		return fmt.Sprintf("\033[%dC", n)
	case n < 0:
		return fmt.Sprintf("\033[%dD", -n)
	}
	return ""
}
