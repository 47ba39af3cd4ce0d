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

import (
	"strings"

	"github.com/nesemu/nesemu/debugger/terminal"
)

// TermPrintLine implements the terminal.Terminal interface.
func (ct *ColorTerminal) TermPrintLine(style terminal.Style, s string) {
	if ct.silenced && style != terminal.StyleError {
		return
	}

	// input has already been echoed as it was typed
	if style == terminal.StyleEcho {
		return
	}

	ct.EasyTerm.TermPrint("\r")

	switch style {
	case terminal.StyleHelp:
		ct.EasyTerm.TermPrint(pen(white, false))
	case terminal.StyleFeedback:
		ct.EasyTerm.TermPrint(pen(white, false))
	case terminal.StyleCPUStep:
		ct.EasyTerm.TermPrint(pen(yellow, true))
	case terminal.StyleInstrument:
		ct.EasyTerm.TermPrint(pen(cyan, true))
	case terminal.StyleLog:
		ct.EasyTerm.TermPrint(pen(magenta, false))
	case terminal.StyleError:
		ct.EasyTerm.TermPrint(pen(red, true))
		ct.EasyTerm.TermPrint("* ")
	}

	// long lines are truncated to the width of the terminal
	if ct.Geometry.Cols > 0 && len(s) > ct.Geometry.Cols && !strings.Contains(s, "\n") {
		s = s[:ct.Geometry.Cols]
	}

	ct.EasyTerm.TermPrint(s)
	ct.EasyTerm.TermPrint(normalPen)
	ct.EasyTerm.TermPrint("\n")
}
