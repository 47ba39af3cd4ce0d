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

//go:build !unix

package main

import (
	"github.com/nesemu/nesemu/debugger/terminal"
	"github.com/nesemu/nesemu/debugger/terminal/plainterm"
)

// selectTerminal returns the plain terminal. The colour terminal is only
// available on unix systems.
func selectTerminal(_ bool) terminal.Terminal {
	return plainterm.NewPlainTerminal(nil, nil)
}
