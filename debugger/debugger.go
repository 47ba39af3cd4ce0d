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

package debugger

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/nesemu/nesemu/curated"
	"github.com/nesemu/nesemu/debugger/script"
	"github.com/nesemu/nesemu/debugger/terminal"
	"github.com/nesemu/nesemu/debugger/terminal/commandline"
	"github.com/nesemu/nesemu/disassembly"
	"github.com/nesemu/nesemu/hardware"
	"github.com/nesemu/nesemu/rewind"
)

// size of the rewind history and the number of steps between snapshots.
const (
	RewindEntries   = 100
	RewindFrequency = 100
)

// Debugger is the basic debugging frontend for the emulation.
type Debugger struct {
	m    *hardware.Machine
	term terminal.Terminal

	cmds          *commandline.Commands
	tabCompletion *commandline.TabCompletion

	rewind      *rewind.Rewind
	breakpoints *breakpoints

	// created on first use of the SCRIPT command
	scr *script.Script

	// the machine has stopped because of a breakpoint or a jammed CPU
	halted bool

	// the QUIT command has been issued
	quit bool

	// ctrl-c while the machine is running
	userInterrupt chan os.Signal
}

// NewDebugger creates and initialises everything required for a new
// debugging session. Use the Start() method to actually begin the session.
func NewDebugger(m *hardware.Machine, term terminal.Terminal) (*Debugger, error) {
	var err error

	dbg := &Debugger{
		m:             m,
		term:          term,
		breakpoints:   newBreakpoints(),
		userInterrupt: make(chan os.Signal, 1),
	}

	dbg.cmds, err = parseCommandTemplate()
	if err != nil {
		return nil, curated.Errorf("debugger: %v", err)
	}
	dbg.tabCompletion = commandline.NewTabCompletion(dbg.cmds)

	dbg.rewind, err = rewind.NewRewind(m, RewindEntries, RewindFrequency)
	if err != nil {
		return nil, curated.Errorf("debugger: %v", err)
	}

	return dbg, nil
}

// Start the main debugger sequence. The initScript is run before the first
// prompt is shown. Start() returns when the QUIT command is issued, when
// the terminal reaches the end of its input or when ctrl-c is pressed at the
// prompt.
func (dbg *Debugger) Start(initScript string) error {
	err := dbg.term.Initialise()
	if err != nil {
		return curated.Errorf("debugger: %v", err)
	}
	defer dbg.term.CleanUp()

	dbg.term.RegisterTabCompletion(dbg.tabCompletion)

	signal.Notify(dbg.userInterrupt, os.Interrupt)
	defer signal.Stop(dbg.userInterrupt)

	defer func() {
		if dbg.scr != nil {
			dbg.scr.Close()
			dbg.scr = nil
		}
	}()

	if initScript != "" {
		err = dbg.runScript(initScript)
		if err != nil {
			dbg.term.TermPrintLine(terminal.StyleError, err.Error())
		}
	}

	for !dbg.quit {
		input, err := dbg.term.TermRead(dbg.prompt())
		if err != nil {
			if err == io.EOF || curated.Is(err, terminal.UserInterrupt) {
				return nil
			}
			return curated.Errorf("debugger: %v", err)
		}

		dbg.term.TermPrintLine(terminal.StyleEcho, input)

		err = dbg.Command(input)
		if err != nil {
			dbg.term.TermPrintLine(terminal.StyleError, err.Error())
		}
	}

	return nil
}

// prompt shows the address and disassembly of the next instruction.
func (dbg *Debugger) prompt() terminal.Prompt {
	e := disassembly.Decode(dbg.m.Mem, dbg.m.CPU.PC.Address())
	return terminal.Prompt{
		Content: e.String(),
		Halted:  dbg.halted,
	}
}

func (dbg *Debugger) printLine(style terminal.Style, format string, args ...any) {
	dbg.term.TermPrintLine(style, fmt.Sprintf(format, args...))
}

// write multi-line output to the terminal, one line at a time.
func (dbg *Debugger) printLines(style terminal.Style, s string) {
	for _, l := range strings.Split(strings.TrimRight(s, "\n"), "\n") {
		dbg.term.TermPrintLine(style, l)
	}
}

func (dbg *Debugger) runScript(filename string) error {
	if dbg.scr == nil {
		dbg.scr = script.NewScript(dbg.m, dbg.term, dbg)
	}
	return dbg.scr.RunFile(filename)
}

// Command parses and runs a single line of input. It implements the
// script.Commander interface.
func (dbg *Debugger) Command(input string) error {
	tokens := commandline.TokeniseInput(input)
	if tokens.Len() == 0 {
		return nil
	}

	err := dbg.cmds.ValidateTokens(tokens)
	if err != nil {
		return err
	}

	return dbg.processTokens(tokens)
}
