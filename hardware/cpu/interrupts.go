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
	"github.com/nesemu/nesemu/hardware/cpu/execution"
	"github.com/nesemu/nesemu/hardware/memory/cpubus"
	"github.com/nesemu/nesemu/logger"
)

// SequencerState is the state of the interrupt sequencer.
type SequencerState int

// List of sequencer states. The sequencer is only ever in a servicing state
// during a call to Step().
const (
	Running SequencerState = iota
	ServicingReset
	ServicingNMI
	ServicingIRQ
	ServicingBRK
)

func (s SequencerState) String() string {
	switch s {
	case Running:
		return "running"
	case ServicingReset:
		return "servicing reset"
	case ServicingNMI:
		return "servicing NMI"
	case ServicingIRQ:
		return "servicing IRQ"
	case ServicingBRK:
		return "servicing BRK"
	}
	return "unknown sequencer state"
}

// RequestReset asks the CPU to reset at the next instruction boundary. A
// reset takes precedence over every other interrupt.
func (mc *CPU) RequestReset() {
	mc.resetPending = true
}

// RequestNMI signals an edge on the NMI line. The NMI will be serviced at
// the next instruction boundary regardless of the interrupt disable flag.
// Only one NMI can be pending at a time.
func (mc *CPU) RequestNMI() {
	mc.nmiPending = true
}

// RequestIRQ sets the level of the IRQ line. The IRQ will be serviced at
// every instruction boundary for as long as the line is asserted and the
// interrupt disable flag is clear.
func (mc *CPU) RequestIRQ(asserted bool) {
	mc.irqAsserted = asserted
}

// Pending returns the state of the interrupt lines.
func (mc *CPU) Pending() (reset bool, nmi bool, irq bool) {
	return mc.resetPending, mc.nmiPending, mc.irqAsserted
}

// interrupt pushes the program counter and status register to the stack and
// loads the program counter from the vector. the break bit in the pushed
// status is only set for the BRK instruction.
func (mc *CPU) interrupt(vector uint16, brk bool) {
	mc.pushPC(mc.PC.Address())
	mc.push(mc.Status.Push(brk))
	mc.Status.InterruptDisable = true
	mc.LoadPCIndirect(vector)
}

func (mc *CPU) serviceReset() int {
	mc.State = ServicingReset
	defer func() { mc.State = Running }()

	mc.reset()
	mc.LastResult.Interrupt = execution.Reset
	logger.Logf(logger.Allow, "cpu", "reset to %04x", mc.PC.Address())

	return execution.InterruptCycles
}

func (mc *CPU) serviceNMI() int {
	mc.State = ServicingNMI
	defer func() { mc.State = Running }()

	mc.nmiPending = false
	mc.interrupt(cpubus.NMI, false)
	mc.LastResult.Interrupt = execution.NMI

	return execution.InterruptCycles
}

func (mc *CPU) serviceIRQ() int {
	mc.State = ServicingIRQ
	defer func() { mc.State = Running }()

	mc.interrupt(cpubus.IRQ, false)
	mc.LastResult.Interrupt = execution.IRQ

	return execution.InterruptCycles
}

// serviceBRK is called by the BRK instruction. the cycle cost is accounted
// for by the instruction definition.
func (mc *CPU) serviceBRK() {
	mc.State = ServicingBRK
	defer func() { mc.State = Running }()

	// the byte after the BRK opcode is skipped. the return address pushed to
	// the stack is the address of the opcode plus two
	_ = mc.read8BitPC()

	mc.interrupt(cpubus.BRK, true)
}
