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

package cpu

import (
	"fmt"

	"github.com/nesemu/nesemu/hardware/cpu/execution"
	"github.com/nesemu/nesemu/hardware/cpu/instructions"
	"github.com/nesemu/nesemu/hardware/cpu/registers"
	"github.com/nesemu/nesemu/hardware/memory/cpubus"
	"github.com/nesemu/nesemu/logger"
)

// Power-on values of the registers.
const (
	PowerOnSP     = uint8(0xfd)
	PowerOnStatus = uint8(0x34)
)

// CPU implements the 2A03 as found in the NES. Register logic is implemented
// by the Register type in the registers sub-package.
type CPU struct {
	PC     registers.ProgramCounter
	A      registers.Register
	X      registers.Register
	Y      registers.Register
	SP     registers.StackPointer
	Status registers.StatusRegister

	mem cpubus.Memory

	// last result. updated by every call to Step()
	LastResult execution.Result

	// the state of the interrupt sequencer. always Running between calls to
	// Step()
	State SequencerState

	// pending interrupt requests. reset and NMI are edge triggered and are
	// cleared when they are serviced. the IRQ line is level triggered and
	// remains asserted until it is released by the device that asserted it
	resetPending bool
	nmiPending   bool
	irqAsserted  bool

	// the cpu has encountered a STP instruction and will do nothing until it
	// is reset
	Jammed bool

	// total number of cycles consumed since the CPU was created
	Cycles uint64
}

// NewCPU is the preferred method of initialisation for the CPU structure. The
// registers are set to the power-on values. The program counter is not
// loaded until Reset() is called or until a reset is requested and
// serviced.
func NewCPU(mem cpubus.Memory) *CPU {
	mc := &CPU{
		mem:    mem,
		PC:     registers.NewProgramCounter(0),
		A:      registers.NewRegister(0, "A"),
		X:      registers.NewRegister(0, "X"),
		Y:      registers.NewRegister(0, "Y"),
		SP:     registers.NewStackPointer(PowerOnSP),
		Status: registers.NewStatusRegister(),
	}
	mc.Status.Load(PowerOnStatus)
	return mc
}

// Snapshot creates a copy of the CPU in its current state.
func (mc *CPU) Snapshot() *CPU {
	n := *mc
	return &n
}

// Plumb a new memory bus into the CPU.
func (mc *CPU) Plumb(mem cpubus.Memory) {
	mc.mem = mem
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s=%s %s=%s %s=%s %s=%s %s=%s %s=%s",
		mc.PC.Label(), mc.PC, mc.A.Label(), mc.A,
		mc.X.Label(), mc.X, mc.Y.Label(), mc.Y,
		mc.SP.Label(), mc.SP, mc.Status.Label(), mc.Status)
}

// Reset the CPU immediately. The registers are set to their power-on values
// and the program counter is loaded from the reset vector. Any pending NMI
// is discarded.
//
// Reset() is intended for use by the surrounding system when the machine is
// first switched on. While the machine is running RequestReset() should be
// used instead so that the reset happens on an instruction boundary.
func (mc *CPU) Reset() {
	mc.LastResult.Reset()
	mc.reset()
}

func (mc *CPU) reset() {
	mc.A.Load(0)
	mc.X.Load(0)
	mc.Y.Load(0)
	mc.SP.Load(PowerOnSP)
	mc.Status.Load(PowerOnStatus)
	mc.LoadPCIndirect(cpubus.Reset)

	mc.resetPending = false
	mc.nmiPending = false

	if mc.Jammed {
		logger.Logf(logger.Allow, "cpu", "unjammed by reset")
		mc.Jammed = false
	}
}

// HasReset checks whether the CPU has recently been reset.
func (mc *CPU) HasReset() bool {
	return mc.LastResult.Interrupt == execution.Reset || (mc.LastResult.Address == 0 && mc.LastResult.Defn == nil)
}

// LoadPCIndirect loads the contents of indirectAddress into the PC.
func (mc *CPU) LoadPCIndirect(indirectAddress uint16) {
	mc.PC.Load(mc.read16Bit(indirectAddress))
}

// LoadPC loads directAddress into the PC.
func (mc *CPU) LoadPC(directAddress uint16) {
	mc.PC.Load(directAddress)
}

// Step the CPU forward by one instruction or, if an interrupt is pending, by
// one interrupt sequence. Returns the number of cycles consumed.
//
// The error return is only ever non-nil if the CPU has encountered an opcode
// that it does not know how to execute. This is a fatal error.
func (mc *CPU) Step() (int, error) {
	mc.LastResult.Reset()
	mc.LastResult.Address = mc.PC.Address()

	cycles, err := mc.step()
	mc.LastResult.Cycles = cycles
	mc.LastResult.Final = true
	mc.Cycles += uint64(cycles)

	return cycles, err
}

func (mc *CPU) step() (int, error) {
	if mc.resetPending {
		return mc.serviceReset(), nil
	}

	if mc.Jammed {
		mc.LastResult.Jammed = true
		return 1, nil
	}

	if mc.nmiPending {
		return mc.serviceNMI(), nil
	}

	if mc.irqAsserted && !mc.Status.InterruptDisable {
		return mc.serviceIRQ(), nil
	}

	opcode := mc.read8BitPC()
	defn := instructions.Lookup(opcode)
	mc.LastResult.Defn = defn

	operand, pageCrossed := mc.resolve(defn)

	return mc.execute(defn, operand, pageCrossed)
}

// adhoc interface exposing the Peek() function to the CPU
type predictRTS interface {
	Peek(address uint16) uint8
}

// PredictRTS returns the PC address that would result if RTS was run at the
// current moment.
func (mc *CPU) PredictRTS() (uint16, bool) {
	predict, ok := mc.mem.(predictRTS)
	if !ok {
		return 0, false
	}

	sp := mc.SP
	lo := predict.Peek(sp.Pull())
	hi := predict.Peek(sp.Pull())

	return ((uint16(hi) << 8) | uint16(lo)) + 1, true
}
