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

// Package colorterm implements the Terminal interface for the monitor. It
// supports colour output, input history and tab completion.
package colorterm

import (
	"bufio"
	"os"

	"github.com/nesemu/nesemu/debugger/terminal/colorterm/easyterm"
	"github.com/nesemu/nesemu/debugger/terminal"
)

// ColorTerminal implements the terminal.Terminal interface for a posix
// terminal with ANSI colour support.
type ColorTerminal struct {
	easyterm.EasyTerm

	reader         *bufio.Reader
	commandHistory []string
	tabCompletion  terminal.TabCompletion

	silenced bool
}

// NewColorTerminal is the preferred method of initialisation for the
// ColorTerminal type.
func NewColorTerminal() *ColorTerminal {
	return &ColorTerminal{}
}

// RegisterTabCompletion implements the terminal.Terminal interface.
func (ct *ColorTerminal) RegisterTabCompletion(tc terminal.TabCompletion) {
	ct.tabCompletion = tc
}

// Initialise implements the terminal.Terminal interface.
func (ct *ColorTerminal) Initialise() error {
	err := ct.EasyTerm.Initialise(os.Stdin, os.Stdout)
	if err != nil {
		return err
	}

	ct.commandHistory = make([]string, 0)
	ct.reader = bufio.NewReader(os.Stdin)

	return nil
}

// CleanUp implements the terminal.Terminal interface.
func (ct *ColorTerminal) CleanUp() {
	ct.EasyTerm.TermPrint("\r")
	_ = ct.Flush()
	ct.EasyTerm.CleanUp()
}

// IsInteractive implements the terminal.Terminal interface.
func (ct *ColorTerminal) IsInteractive() bool {
	return true
}

// Silence implements the terminal.Terminal interface.
func (ct *ColorTerminal) Silence(silenced bool) {
	ct.silenced = silenced
}
