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

package main

import (
	"os"

	"github.com/nesemu/nesemu/debugger/terminal"
	"github.com/nesemu/nesemu/debugger/terminal/colorterm"
	"github.com/nesemu/nesemu/debugger/terminal/plainterm"
	"golang.org/x/term"
)

// selectTerminal returns the colour terminal if stdin and stdout are both
// terminals. Otherwise the plain terminal is used.
func selectTerminal(plain bool) terminal.Terminal {
	if !plain && term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd())) {
		return colorterm.NewColorTerminal()
	}
	return plainterm.NewPlainTerminal(nil, nil)
}
