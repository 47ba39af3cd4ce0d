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

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/nesemu/nesemu/curated"
	"github.com/nesemu/nesemu/debugger"
	"github.com/nesemu/nesemu/debugger/govern"
	"github.com/nesemu/nesemu/disassembly"
	"github.com/nesemu/nesemu/hardware"
	"github.com/nesemu/nesemu/hardware/clocks"
	"github.com/nesemu/nesemu/hardware/memory"
	"github.com/nesemu/nesemu/hardware/memory/cpubus"
	"github.com/nesemu/nesemu/logger"
	"github.com/nesemu/nesemu/modalflag"
	"github.com/nesemu/nesemu/statsview"
	"github.com/nesemu/nesemu/version"
)

// exit values.
const (
	exitParseError = 2
	exitModeError  = 10
)

// default load address of the program. the start of cartridge space.
const defaultOrigin = 0x8000

// NTSC picture unit dots in one frame.
const dotsPerFrame = 341 * 262

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.AddSubModes("RUN", "TRACE", "DISASM", "DEBUG", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return
	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(exitParseError)
	}

	switch md.Mode() {
	case "RUN":
		err = run(md, false)
	case "TRACE":
		err = run(md, true)
	case "DISASM":
		err = disasm(md)
	case "DEBUG":
		err = debug(md)
	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		logger.Logf(logger.Allow, "nesemu", "%v", err)
		fmt.Printf("* error in %s mode: %s\n", md, err)
		os.Exit(exitModeError)
	}
}

// loadProgram creates a new machine with the program attached at the origin
// address. The program is placed in a device that extends to the top of
// memory so that the interrupt vectors are always present. If the entry
// address has been set the reset vector is changed to point to it.
func loadProgram(filename string, origin *modalflag.Address, entry *modalflag.Address) (*hardware.Machine, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, curated.Errorf("loading program: %v", err)
	}

	size := 0x10000 - int(origin.Value)
	if len(data) == 0 {
		return nil, curated.Errorf("loading program: %s is empty", filename)
	}
	if len(data) > size {
		return nil, curated.Errorf("loading program: %s is too large (%d bytes) for origin %s", filename, len(data), origin)
	}

	image := make([]uint8, size)
	copy(image, data)

	m := hardware.NewMachine()
	dev, err := memory.NewFlatDevice(origin.Value, image, false)
	if err != nil {
		return nil, curated.Errorf("loading program: %v", err)
	}
	err = m.Mem.Attach(dev.Origin(), dev.Memtop(), filename, dev)
	if err != nil {
		return nil, curated.Errorf("loading program: %v", err)
	}

	if entry != nil && entry.Changed {
		m.Mem.Poke(cpubus.Reset, uint8(entry.Value))
		m.Mem.Poke(cpubus.Reset+1, uint8(entry.Value>>8))
	}

	m.PowerOn()
	logger.Logf(logger.Allow, "nesemu", "loaded %s (%d bytes) at %s", filename, len(data), origin)

	return m, nil
}

func programArg(md *modalflag.Modes) (string, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return "", curated.Errorf("program file required for %s mode", md)
	case 1:
		return md.GetArg(0), nil
	}
	return "", curated.Errorf("too many arguments for %s mode", md)
}

// dotCounter stands in for the picture unit. it is clocked by the machine
// at the picture unit rate.
type dotCounter struct {
	dots uint64
}

func (c *dotCounter) Step() {
	c.dots++
}

func run(md *modalflag.Modes, trace bool) error {
	md.NewMode()

	origin := md.AddAddress("origin", defaultOrigin, "load address of the program")
	entry := md.AddAddress("entry", 0, "override the reset vector")
	cycles := md.AddUint64("cycles", 0, "number of CPU cycles to run for. zero runs until the CPU jams")
	echoLog := md.AddBool("log", false, "echo log to stderr")

	var sv *bool
	if statsview.Available() {
		sv = md.AddBool("statsview", false, "run stats server")
	}

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	filename, err := programArg(md)
	if err != nil {
		return err
	}

	if *echoLog {
		logger.SetEcho(os.Stderr)
	}

	if sv != nil && *sv {
		statsview.Launch(md.Output)
	}

	m, err := loadProgram(filename, origin, entry)
	if err != nil {
		return err
	}

	ppu := &dotCounter{}
	m.AttachClocked(ppu, clocks.NTSC_PPU)

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)

	printTrace := func() {
		e := disassembly.Decode(m.Mem, m.CPU.PC.Address())
		fmt.Fprintln(md.Output, e.Trace(m.CPU))
	}
	if trace {
		printTrace()
	}

	var interrupted bool
	var brake int

	continueCheck := func() (govern.State, error) {
		if m.CPU.Jammed {
			return govern.Ending, nil
		}

		if trace {
			printTrace()
		}

		brake++
		if brake >= hardware.PerformanceBrake {
			brake = 0
			select {
			case <-intChan:
				interrupted = true
				return govern.Ending, nil
			default:
			}
		}

		return govern.Running, nil
	}

	startTime := time.Now()

	if *cycles > 0 {
		err = m.RunForCycles(*cycles, continueCheck)
	} else {
		err = m.Run(continueCheck)
	}
	if err != nil {
		return err
	}

	elapsed := time.Since(startTime)

	switch {
	case m.CPU.Jammed:
		fmt.Fprintf(md.Output, "CPU jammed at $%04x\n", m.CPU.LastResult.Address)
	case interrupted:
		fmt.Fprintf(md.Output, "interrupted at $%04x\n", m.CPU.PC.Address())
	}

	if !trace {
		reportSpeed(md.Output, m, ppu, elapsed)
	}

	return nil
}

func reportSpeed(output io.Writer, m *hardware.Machine, ppu *dotCounter, elapsed time.Duration) {
	fmt.Fprintf(output, "%d cycles (%d instructions, %d frames) in %v\n",
		m.CPU.Cycles, m.Steps, ppu.dots/dotsPerFrame, elapsed.Round(time.Millisecond))

	if elapsed.Seconds() > 0 {
		mhz := float64(m.CPU.Cycles) / elapsed.Seconds() / 1000000
		fmt.Fprintf(output, "%.3f MHz (%.1f%% of NTSC speed)\n", mhz, mhz/clocks.NTSC*100)
	}
}

func disasm(md *modalflag.Modes) error {
	md.NewMode()

	origin := md.AddAddress("origin", defaultOrigin, "load address of the program")
	start := md.AddAddress("start", defaultOrigin, "first address to disassemble")
	count := md.AddInt("count", 0, "number of instructions to disassemble. zero disassembles to the top of memory")
	bytecode := md.AddBool("bytecode", false, "include bytecode in disassembly")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	filename, err := programArg(md)
	if err != nil {
		return err
	}

	m, err := loadProgram(filename, origin, nil)
	if err != nil {
		return err
	}

	var dsm *disassembly.Disassembly
	if *count > 0 {
		dsm = disassembly.FromAddress(m.Mem, start.Value, *count)
	} else {
		dsm = disassembly.FromMemory(m.Mem, start.Value, 0xffff)
	}

	return dsm.Write(md.Output, disassembly.WriteAttr{
		ByteCode: *bytecode,
		Cycles:   true,
		Notes:    true,
	})
}

func debug(md *modalflag.Modes) error {
	md.NewMode()

	origin := md.AddAddress("origin", defaultOrigin, "load address of the program")
	entry := md.AddAddress("entry", 0, "override the reset vector")
	initScript := md.AddString("script", "", "lua script to run before the first prompt")
	plain := md.AddBool("plain", false, "use the plain terminal")
	echoLog := md.AddBool("log", false, "echo log to stderr")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	filename, err := programArg(md)
	if err != nil {
		return err
	}

	if *echoLog {
		logger.SetEcho(os.Stderr)
	}

	m, err := loadProgram(filename, origin, entry)
	if err != nil {
		return err
	}

	dbg, err := debugger.NewDebugger(m, selectTerminal(*plain))
	if err != nil {
		return err
	}

	return dbg.Start(*initScript)
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()
	revision := md.AddBool("revision", false, "display revision information")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	v, r, _ := version.Version()
	fmt.Fprintln(md.Output, version.ApplicationName, v)
	if *revision {
		fmt.Fprintln(md.Output, r)
	}

	return nil
}
