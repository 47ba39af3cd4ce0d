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
	"os"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/nesemu/nesemu/curated"
	"github.com/nesemu/nesemu/debugger/govern"
	"github.com/nesemu/nesemu/debugger/terminal"
	"github.com/nesemu/nesemu/debugger/terminal/commandline"
	"github.com/nesemu/nesemu/disassembly"
	"github.com/nesemu/nesemu/hardware"
	"github.com/nesemu/nesemu/hardware/cpu/execution"
	"github.com/nesemu/nesemu/logger"
)

// default argument values.
const (
	defaultMemBytes     = 16
	defaultDisasmCount  = 10
	defaultLogEntries   = 10
	defaultGrepStart    = 0x8000
	defaultGrepEnd      = 0xffff
	memBytesPerLine     = 16
	stackPreviewEntries = 8
)

// the tokens have been validated so the errors from the parsing functions
// can be ignored.
func getAddress(tokens *commandline.Tokens) (uint16, bool) {
	s, ok := tokens.Get()
	if !ok {
		return 0, false
	}
	a, err := commandline.ParseAddress(s)
	if err != nil {
		tokens.Unget()
		return 0, false
	}
	return a, true
}

func getNumber(tokens *commandline.Tokens, def int) int {
	s, ok := tokens.Get()
	if !ok {
		return def
	}
	n, err := commandline.ParseNumber(s)
	if err != nil {
		tokens.Unget()
		return def
	}
	return n
}

func (dbg *Debugger) processTokens(tokens *commandline.Tokens) error {
	command, _ := tokens.Get()
	command = strings.ToUpper(command)

	switch command {
	case cmdHelp:
		keyword, ok := tokens.Get()
		if ok {
			dbg.printLines(terminal.StyleHelp, dbg.cmds.Help(keyword))
		} else {
			dbg.printLines(terminal.StyleHelp, dbg.cmds.HelpOverview())
		}

	case cmdQuit:
		dbg.quit = true

	case cmdBreak:
		arg, ok := tokens.Peek()
		if !ok {
			dbg.printLines(terminal.StyleFeedback, dbg.breakpoints.String())
			return nil
		}

		if strings.ToUpper(arg) == "CLEAR" {
			dbg.breakpoints.clear()
			dbg.printLine(terminal.StyleFeedback, "breakpoints cleared")
			return nil
		}

		address, _ := getAddress(tokens)
		if dbg.breakpoints.toggle(address) {
			dbg.printLine(terminal.StyleFeedback, "breakpoint added at $%04x", address)
		} else {
			dbg.printLine(terminal.StyleFeedback, "breakpoint removed from $%04x", address)
		}

	case cmdStep:
		return dbg.step(getNumber(tokens, 1))

	case cmdRun:
		return dbg.run()

	case cmdRegs:
		dbg.printRegisters()

	case cmdStack:
		dbg.printStack()

	case cmdMem:
		address, _ := getAddress(tokens)
		dbg.printMemory(address, getNumber(tokens, defaultMemBytes))

	case cmdDisasm:
		address, ok := getAddress(tokens)
		if !ok {
			address = dbg.m.CPU.PC.Address()
		}
		dsm := disassembly.FromAddress(dbg.m.Mem, address, getNumber(tokens, defaultDisasmCount))
		return dbg.writeDisassembly(func(w *strings.Builder) error {
			return dsm.Write(w, disassembly.WriteAttr{ByteCode: true, Cycles: true, Notes: true})
		})

	case cmdGrep:
		search, _ := tokens.Get()
		start, ok := getAddress(tokens)
		if !ok {
			start = defaultGrepStart
		}
		end, ok := getAddress(tokens)
		if !ok {
			end = defaultGrepEnd
		}
		if end < start {
			return curated.Errorf("GREP: end address is before start address")
		}
		dsm := disassembly.FromMemory(dbg.m.Mem, start, end)
		return dbg.writeDisassembly(func(w *strings.Builder) error {
			return dsm.Grep(w, disassembly.GrepAll, search, false)
		})

	case cmdPoke:
		address, _ := getAddress(tokens)
		s, _ := tokens.Get()
		v, _ := commandline.ParseValue(s)
		dbg.m.Mem.Poke(address, v)
		dbg.printLine(terminal.StyleFeedback, "$%04x = $%02x", address, dbg.m.Mem.Peek(address))

	case cmdReset:
		dbg.m.Reset()
		dbg.rewind.Reset()
		dbg.halted = false
		dbg.printRegisters()

	case cmdNMI:
		dbg.m.RequestNMI()
		dbg.printLine(terminal.StyleFeedback, "NMI requested")

	case cmdIRQ:
		arg, _ := tokens.Get()
		asserted := strings.ToUpper(arg) == "ON"
		dbg.m.RequestIRQ(asserted)
		if asserted {
			dbg.printLine(terminal.StyleFeedback, "IRQ line asserted")
		} else {
			dbg.printLine(terminal.StyleFeedback, "IRQ line released")
		}

	case cmdSave:
		filename, _ := tokens.Get()
		data, err := dbg.m.Snapshot().MarshalBinary()
		if err != nil {
			return curated.Errorf("SAVE: %v", err)
		}
		err = os.WriteFile(filename, data, 0o644)
		if err != nil {
			return curated.Errorf("SAVE: %v", err)
		}
		logger.Logf(logger.Allow, "monitor", "state saved to %s", filename)
		dbg.printLine(terminal.StyleFeedback, "state saved to %s", filename)

	case cmdLoad:
		filename, _ := tokens.Get()
		data, err := os.ReadFile(filename)
		if err != nil {
			return curated.Errorf("LOAD: %v", err)
		}

		// a snapshot of the current machine provides the CPU and memory bus
		// for the loaded state
		state := dbg.m.Snapshot()
		err = state.UnmarshalBinary(data)
		if err != nil {
			return curated.Errorf("LOAD: %v", err)
		}
		dbg.m.Plumb(state)
		dbg.rewind.Reset()
		dbg.halted = false

		logger.Logf(logger.Allow, "monitor", "state loaded from %s", filename)
		dbg.printRegisters()

	case cmdRewind:
		if _, ok := tokens.Peek(); !ok {
			dbg.printLine(terminal.StyleFeedback, "rewind: %s", dbg.rewind)
			return nil
		}
		err := dbg.rewind.Back(getNumber(tokens, 0))
		if err != nil {
			return err
		}
		dbg.halted = false
		dbg.printRegisters()

	case cmdMemviz:
		filename, _ := tokens.Get()
		f, err := os.Create(filename)
		if err != nil {
			return curated.Errorf("MEMVIZ: %v", err)
		}

		// the memory bus is not part of the graph
		mc := dbg.m.CPU.Snapshot()
		mc.Plumb(nil)
		memviz.Map(f, mc)

		err = f.Close()
		if err != nil {
			return curated.Errorf("MEMVIZ: %v", err)
		}
		dbg.printLine(terminal.StyleFeedback, "cpu graph written to %s", filename)

	case cmdScript:
		filename, _ := tokens.Get()
		return dbg.runScript(filename)

	case cmdLog:
		arg, ok := tokens.Peek()
		if ok && strings.ToUpper(arg) == "CLEAR" {
			logger.Clear()
			return nil
		}
		w := &strings.Builder{}
		logger.Tail(w, getNumber(tokens, defaultLogEntries))
		if w.Len() > 0 {
			dbg.printLines(terminal.StyleLog, w.String())
		}

	default:
		return curated.Errorf("%s is not yet implemented", command)
	}

	return nil
}

func (dbg *Debugger) writeDisassembly(write func(w *strings.Builder) error) error {
	w := &strings.Builder{}
	err := write(w)
	if err != nil {
		return err
	}
	if w.Len() > 0 {
		dbg.printLines(terminal.StyleFeedback, w.String())
	}
	return nil
}

func (dbg *Debugger) printRegisters() {
	mc := dbg.m.CPU
	dbg.printLine(terminal.StyleInstrument, "%s", mc)

	reset, nmi, irq := mc.Pending()
	s := fmt.Sprintf("cycles=%d steps=%d", mc.Cycles, dbg.m.Steps)
	if reset {
		s = fmt.Sprintf("%s reset", s)
	}
	if nmi {
		s = fmt.Sprintf("%s nmi", s)
	}
	if irq {
		s = fmt.Sprintf("%s irq", s)
	}
	if mc.Jammed {
		s = fmt.Sprintf("%s jammed", s)
	}
	dbg.printLine(terminal.StyleInstrument, "%s", s)
}

func (dbg *Debugger) printStack() {
	mc := dbg.m.CPU
	sp := mc.SP.Value()

	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("SP=$%02x", sp))
	for i := 1; i <= stackPreviewEntries; i++ {
		a := 0x0100 | uint16(sp+uint8(i))
		s.WriteString(fmt.Sprintf(" %02x", dbg.m.Mem.Peek(a)))
	}
	dbg.printLine(terminal.StyleInstrument, "%s", s.String())

	if rts, ok := mc.PredictRTS(); ok {
		dbg.printLine(terminal.StyleInstrument, "RTS will return to $%04x", rts)
	}
}

func (dbg *Debugger) printMemory(address uint16, n int) {
	s := strings.Builder{}
	for i := 0; i < n; i++ {
		a := address + uint16(i)
		if i%memBytesPerLine == 0 {
			if i > 0 {
				dbg.printLine(terminal.StyleInstrument, "%s", s.String())
				s.Reset()
			}
			s.WriteString(fmt.Sprintf("$%04x ", a))
		}
		s.WriteString(fmt.Sprintf(" %02x", dbg.m.Mem.Peek(a)))
	}
	if s.Len() > 0 {
		dbg.printLine(terminal.StyleInstrument, "%s", s.String())
	}
}

// the trace of the next instruction to be executed.
func (dbg *Debugger) printTrace() {
	e := disassembly.Decode(dbg.m.Mem, dbg.m.CPU.PC.Address())
	dbg.term.TermPrintLine(terminal.StyleCPUStep, e.Trace(dbg.m.CPU))
}

func (dbg *Debugger) jammed() bool {
	if !dbg.m.CPU.Jammed {
		return false
	}
	dbg.halted = true
	dbg.printLine(terminal.StyleFeedback, "CPU jammed at $%04x. RESET to continue", dbg.m.CPU.LastResult.Address)
	return true
}

// step the machine n times. stepping stops early if a breakpoint is reached.
func (dbg *Debugger) step(n int) error {
	dbg.halted = false

	for i := range n {
		if dbg.jammed() {
			return nil
		}

		// the trace is prepared before the instruction is executed
		e := disassembly.Decode(dbg.m.Mem, dbg.m.CPU.PC.Address())
		trace := e.Trace(dbg.m.CPU)

		_, err := dbg.m.Step()
		if err != nil {
			return err
		}
		dbg.rewind.Check()

		if intr := dbg.m.CPU.LastResult.Interrupt; intr != execution.NoInterrupt {
			dbg.printLine(terminal.StyleCPUStep, "%s to $%04x", intr, dbg.m.CPU.PC.Address())
		} else {
			dbg.term.TermPrintLine(terminal.StyleCPUStep, trace)
		}

		if dbg.jammed() {
			return nil
		}

		if i < n-1 && dbg.breakpoints.check(dbg.m.CPU.PC.Address()) {
			dbg.halted = true
			dbg.printLine(terminal.StyleFeedback, "breakpoint at $%04x", dbg.m.CPU.PC.Address())
			return nil
		}
	}

	return nil
}

// run the machine until a breakpoint is reached, the CPU jams or the user
// interrupts with ctrl-c.
func (dbg *Debugger) run() error {
	dbg.halted = false

	if dbg.jammed() {
		return nil
	}

	// discard any interrupt received before RUN
	select {
	case <-dbg.userInterrupt:
	default:
	}

	var reason string
	var brake int

	err := dbg.m.Run(func() (govern.State, error) {
		dbg.rewind.Check()

		if dbg.m.CPU.Jammed {
			return govern.Ending, nil
		}

		if dbg.breakpoints.check(dbg.m.CPU.PC.Address()) {
			reason = fmt.Sprintf("breakpoint at $%04x", dbg.m.CPU.PC.Address())
			return govern.Ending, nil
		}

		brake++
		if brake >= hardware.PerformanceBrake {
			brake = 0
			select {
			case <-dbg.userInterrupt:
				reason = "interrupted"
				return govern.Ending, nil
			default:
			}
		}

		return govern.Running, nil
	})
	if err != nil {
		return err
	}

	if dbg.jammed() {
		return nil
	}

	dbg.halted = true
	dbg.printLine(terminal.StyleFeedback, "%s", reason)
	dbg.printTrace()

	return nil
}
