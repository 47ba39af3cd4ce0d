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
	"github.com/nesemu/nesemu/debugger/terminal/commandline"
)

// debugger keywords.
const (
	cmdBreak  = "BREAK"
	cmdStep   = "STEP"
	cmdRun    = "RUN"
	cmdRegs   = "REGS"
	cmdStack  = "STACK"
	cmdMem    = "MEM"
	cmdDisasm = "DISASM"
	cmdGrep   = "GREP"
	cmdPoke   = "POKE"
	cmdReset  = "RESET"
	cmdNMI    = "NMI"
	cmdIRQ    = "IRQ"
	cmdSave   = "SAVE"
	cmdLoad   = "LOAD"
	cmdRewind = "REWIND"
	cmdMemviz = "MEMVIZ"
	cmdScript = "SCRIPT"
	cmdLog    = "LOG"
	cmdQuit   = "QUIT"
	cmdHelp   = "HELP"
)

var commandTemplate = []string{
	cmdBreak + " [%A|CLEAR]",
	cmdStep + " [%N]",
	cmdRun,
	cmdRegs,
	cmdStack,
	cmdMem + " %A [%N]",
	cmdDisasm + " [%A] [%N]",
	cmdGrep + " %S [%A] [%A]",
	cmdPoke + " %A %V",
	cmdReset,
	cmdNMI,
	cmdIRQ + " (ON|OFF)",
	cmdSave + " %S",
	cmdLoad + " %S",
	cmdRewind + " [%N]",
	cmdMemviz + " %S",
	cmdScript + " %S",
	cmdLog + " [%N|CLEAR]",
	cmdQuit,
}

var helps = map[string]string{
	cmdBreak:  "Toggle a breakpoint at the address. With no argument the list of breakpoints is shown.\nCLEAR removes all breakpoints.",
	cmdStep:   "Step the machine by the number of instructions (default 1). Interrupt sequences count\nas one step. Stepping stops early if a breakpoint is reached.",
	cmdRun:    "Run the machine until a breakpoint is reached, the CPU jams or ctrl-c is pressed.",
	cmdRegs:   "Show the CPU registers and the state of the interrupt lines.",
	cmdStack:  "Show the top of the stack and the address an RTS instruction would return to.",
	cmdMem:    "Show memory from the address. The number of bytes defaults to 16.",
	cmdDisasm: "Disassemble from the address (default PC). The number of instructions defaults to 10.",
	cmdGrep:   "Search the disassembly for the string. The search range defaults to $8000 to $ffff.",
	cmdPoke:   "Write the value to the address. Memory writes by the monitor have no side effects.",
	cmdReset:  "Reset the machine. The rewind history is cleared.",
	cmdNMI:    "Request a non-maskable interrupt. It will be serviced on the next step.",
	cmdIRQ:    "Assert or release the IRQ line.",
	cmdSave:   "Save the machine state to a file.",
	cmdLoad:   "Load a machine state from a file previously created with SAVE. The rewind history\nis cleared.",
	cmdRewind: "Restore the machine state from the rewind history. REWIND 0 restores the most recent\nentry. With no argument the state of the rewind history is shown.",
	cmdMemviz: "Write a graphviz representation of the CPU to a file.",
	cmdScript: "Run a Lua script.",
	cmdLog:    "Show the most recent log entries (default 10). CLEAR empties the log.",
	cmdQuit:   "Exit the monitor.",
	cmdHelp:   "Lists commands and provides help for individual commands.",
}

func parseCommandTemplate() (*commandline.Commands, error) {
	cmds, err := commandline.ParseCommandTemplate(commandTemplate)
	if err != nil {
		return nil, err
	}
	err = cmds.AddHelp(cmdHelp, helps)
	if err != nil {
		return nil, err
	}
	return cmds, nil
}
