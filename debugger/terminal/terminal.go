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

package terminal

import "strings"

// Sentinal errors returned by TermRead().
const (
	UserInterrupt = "user interrupt"
	UserAbort     = "user abort"
)

// Terminal defines the operations required by the monitor's command line
// interface.
type Terminal interface {
	// Initialise the terminal. not all terminal implementations will need to
	// do anything.
	Initialise() error

	// Restore the terminal to its original state, if possible.
	CleanUp()

	// TermPrintLine prints a single line of output in the specified style.
	// The line should not contain a trailing newline.
	TermPrintLine(Style, string)

	// TermRead returns the next line of input. the returned string does not
	// include the line terminator. io.EOF is returned when there is no more
	// input.
	TermRead(Prompt) (string, error)

	// IsInteractive should return true for implementations that require user
	// interaction.
	IsInteractive() bool

	// Register a tab completion implementation to use with the terminal. Not
	// all implementations need to respond meaningfully to this.
	RegisterTabCompletion(TabCompletion)

	// Silence all output except error messages.
	Silence(silenced bool)
}

// TabCompletion defines the operations required for tab completion. An
// implementation can be found in the commandline sub-package.
type TabCompletion interface {
	Complete(input string) string
	Reset()
}

// Style is used to identify the category of text being sent to the
// Terminal.TermPrintLine() function. The terminal implementation can
// interpret this how it sees fit.
type Style int

// List of terminal styles.
const (
	// the echo of user input
	StyleEcho Style = iota

	// information from the help command
	StyleHelp

	// information as a result of a command
	StyleFeedback

	// disassembly output of the instruction just executed
	StyleCPUStep

	// information about the state of the machine
	StyleInstrument

	// entries from the log
	StyleLog

	// error messages. should be displayed even when the terminal is silenced
	StyleError
)

// Prompt specifies the prompt text.
type Prompt struct {
	Content string

	// the machine is stopped because of a breakpoint or a jammed CPU
	Halted bool
}

// String returns the prompt with "standard" decoration.
func (p Prompt) String() string {
	s := strings.Builder{}
	s.WriteString("[ ")
	s.WriteString(strings.TrimSpace(p.Content))
	s.WriteString(" ]")
	if p.Halted {
		s.WriteString(" !> ")
	} else {
		s.WriteString(" >> ")
	}
	return s.String()
}
