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

package script

import (
	"strings"

	"github.com/nesemu/nesemu/curated"
	"github.com/nesemu/nesemu/debugger/terminal"
	"github.com/nesemu/nesemu/hardware"
	"github.com/nesemu/nesemu/logger"
	lua "github.com/yuin/gopher-lua"
)

// Sentinal errors.
const (
	ScriptError  = "script: %v"
	UnknownReg   = "unknown register (%s)"
	NoCommander  = "monitor commands are not available"
	AddressRange = "address out of range"
	ValueRange   = "value out of range"
)

// Commander is implemented by the monitor. It allows a script to run monitor
// commands without the script package depending on the monitor.
type Commander interface {
	Command(input string) error
}

// Script is a Lua interpreter with access to the machine.
type Script struct {
	L    *lua.LState
	m    *hardware.Machine
	term terminal.Terminal
	cmdr Commander
}

// NewScript is the preferred method of initialisation for the Script type.
// The Commander argument can be nil, in which case the cmd() function will
// raise an error.
func NewScript(m *hardware.Machine, term terminal.Terminal, cmdr Commander) *Script {
	scr := &Script{
		L:    lua.NewState(),
		m:    m,
		term: term,
		cmdr: cmdr,
	}

	scr.L.SetGlobal("print", scr.L.NewFunction(scr.print))
	scr.L.SetGlobal("step", scr.L.NewFunction(scr.step))
	scr.L.SetGlobal("peek", scr.L.NewFunction(scr.peek))
	scr.L.SetGlobal("poke", scr.L.NewFunction(scr.poke))
	scr.L.SetGlobal("reg", scr.L.NewFunction(scr.reg))
	scr.L.SetGlobal("nmi", scr.L.NewFunction(scr.nmi))
	scr.L.SetGlobal("irq", scr.L.NewFunction(scr.irq))
	scr.L.SetGlobal("reset", scr.L.NewFunction(scr.reset))
	scr.L.SetGlobal("log", scr.L.NewFunction(scr.log))
	scr.L.SetGlobal("cmd", scr.L.NewFunction(scr.cmd))

	return scr
}

// Close the interpreter. The Script instance should not be used after Close()
// has been called.
func (scr *Script) Close() {
	scr.L.Close()
}

// RunFile loads and runs the named Lua file.
func (scr *Script) RunFile(filename string) error {
	logger.Logf(logger.Allow, "script", "running %s", filename)
	if err := scr.L.DoFile(filename); err != nil {
		return curated.Errorf(ScriptError, err)
	}
	return nil
}

// RunString runs the Lua source code.
func (scr *Script) RunString(source string) error {
	if err := scr.L.DoString(source); err != nil {
		return curated.Errorf(ScriptError, err)
	}
	return nil
}

func (scr *Script) print(L *lua.LState) int {
	s := make([]string, L.GetTop())
	for i := range s {
		s[i] = L.ToStringMeta(L.Get(i + 1)).String()
	}
	scr.term.TermPrintLine(terminal.StyleFeedback, strings.Join(s, "\t"))
	return 0
}

func (scr *Script) step(L *lua.LState) int {
	n := L.OptInt(1, 1)

	var total int
	for range n {
		cycles, err := scr.m.Step()
		if err != nil {
			L.RaiseError("%v", err)
			return 0
		}
		total += cycles
	}

	L.Push(lua.LNumber(total))
	return 1
}

func checkAddress(L *lua.LState, n int) uint16 {
	v := L.CheckInt(n)
	if v < 0 || v > 0xffff {
		L.ArgError(n, AddressRange)
	}
	return uint16(v)
}

func (scr *Script) peek(L *lua.LState) int {
	address := checkAddress(L, 1)
	L.Push(lua.LNumber(scr.m.Mem.Peek(address)))
	return 1
}

func (scr *Script) poke(L *lua.LState) int {
	address := checkAddress(L, 1)
	v := L.CheckInt(2)
	if v < 0 || v > 0xff {
		L.ArgError(2, ValueRange)
	}
	scr.m.Mem.Poke(address, uint8(v))
	return 0
}

func (scr *Script) reg(L *lua.LState) int {
	name := L.CheckString(1)

	// the CPU instance can change when a state is plumbed in so it is
	// always accessed through the machine
	mc := scr.m.CPU

	var v lua.LNumber
	switch strings.ToLower(name) {
	case "a":
		v = lua.LNumber(mc.A.Value())
	case "x":
		v = lua.LNumber(mc.X.Value())
	case "y":
		v = lua.LNumber(mc.Y.Value())
	case "sp":
		v = lua.LNumber(mc.SP.Value())
	case "p":
		v = lua.LNumber(mc.Status.Value())
	case "pc":
		v = lua.LNumber(mc.PC.Address())
	case "cycles":
		v = lua.LNumber(mc.Cycles)
	default:
		L.ArgError(1, curated.Errorf(UnknownReg, name).Error())
		return 0
	}

	L.Push(v)
	return 1
}

func (scr *Script) nmi(L *lua.LState) int {
	scr.m.RequestNMI()
	return 0
}

func (scr *Script) irq(L *lua.LState) int {
	scr.m.RequestIRQ(L.ToBool(1))
	return 0
}

func (scr *Script) reset(L *lua.LState) int {
	scr.m.Reset()
	return 0
}

func (scr *Script) log(L *lua.LState) int {
	logger.Log(logger.Allow, "script", L.CheckString(1))
	return 0
}

func (scr *Script) cmd(L *lua.LState) int {
	input := L.CheckString(1)
	if scr.cmdr == nil {
		L.RaiseError(NoCommander)
		return 0
	}
	if err := scr.cmdr.Command(input); err != nil {
		L.RaiseError("%v", err)
	}
	return 0
}
