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

// Package plainterm implements the Terminal interface for the monitor. It's
// as simple as simple can be and offers no special features.
package plainterm

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/nesemu/nesemu/debugger/terminal"
	"golang.org/x/term"
)

// PlainTerminal is the default, most basic terminal interface. It keeps the
// terminal in whatever mode it started, probably cooked mode. As such, it
// offers only rudimentary editing facility and little control over output.
type PlainTerminal struct {
	input      *bufio.Reader
	output     io.Writer
	realInput  bool
	realOutput bool
	silenced   bool
}

// NewPlainTerminal creates a terminal that reads from input and writes to
// output. If input or output is nil then stdin or stdout is used.
func NewPlainTerminal(input io.Reader, output io.Writer) *PlainTerminal {
	if input == nil {
		input = os.Stdin
	}
	if output == nil {
		output = os.Stdout
	}

	pt := &PlainTerminal{
		input:  bufio.NewReader(input),
		output: output,
	}

	if f, ok := input.(*os.File); ok {
		pt.realInput = term.IsTerminal(int(f.Fd()))
	}
	if f, ok := output.(*os.File); ok {
		pt.realOutput = term.IsTerminal(int(f.Fd()))
	}

	return pt
}

// Initialise implements the terminal.Terminal interface.
func (pt *PlainTerminal) Initialise() error {
	return nil
}

// CleanUp implements the terminal.Terminal interface.
func (pt *PlainTerminal) CleanUp() {
}

// RegisterTabCompletion implements the terminal.Terminal interface.
func (pt *PlainTerminal) RegisterTabCompletion(_ terminal.TabCompletion) {
}

// Silence implements the terminal.Terminal interface.
func (pt *PlainTerminal) Silence(silenced bool) {
	pt.silenced = silenced
}

// IsInteractive implements the terminal.Terminal interface.
func (pt *PlainTerminal) IsInteractive() bool {
	return pt.realInput && pt.realOutput
}

// TermPrintLine implements the terminal.Terminal interface.
func (pt *PlainTerminal) TermPrintLine(style terminal.Style, s string) {
	if pt.silenced && style != terminal.StyleError {
		return
	}

	// we don't need to echo user input for this type of terminal
	if style == terminal.StyleEcho {
		return
	}

	if style == terminal.StyleError {
		s = fmt.Sprintf("* %s", s)
	}

	fmt.Fprintln(pt.output, s)
}

// TermRead implements the terminal.Terminal interface.
func (pt *PlainTerminal) TermRead(prompt terminal.Prompt) (string, error) {
	// insert prompt into output stream
	if pt.realInput {
		fmt.Fprint(pt.output, prompt.String())
	}

	s, err := pt.input.ReadString('\n')
	if err != nil {
		// final line of input without a line terminator
		if err == io.EOF && s != "" {
			return strings.TrimRight(s, "\r\n"), nil
		}
		return "", err
	}

	return strings.TrimRight(s, "\r\n"), nil
}
