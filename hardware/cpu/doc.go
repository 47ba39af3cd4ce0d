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

// Package cpu emulates the 2A03 CPU found in the NES. The 2A03 is a 6502
// without the decimal mode arithmetic. The decimal mode flag can be set and
// cleared but it has no effect on ADC and SBC.
//
// The CPU is stepped one instruction at a time with the Step() function:
//
//	mc := cpu.NewCPU(mem)
//	mc.Reset()
//	for {
//		cycles, err := mc.Step()
//		if err != nil {
//			return err
//		}
//		// clock other devices by cycles
//	}
//
// The number of cycles consumed by the instruction is returned by Step().
// The surrounding system uses the cycle count to keep the other devices in
// step with the CPU. Details of the instruction just executed are in the
// LastResult field.
//
// Interrupts are requested with RequestReset(), RequestNMI() and
// RequestIRQ(). Requests are acted upon at the start of the next call to
// Step(), in which case Step() performs the interrupt sequence rather than
// an instruction. The order of precedence is reset, then NMI, then IRQ. An
// IRQ is ignored while the interrupt disable flag is set.
//
// All 256 opcodes are implemented, including the undocumented opcodes. The
// STP opcodes halt the CPU until it is reset. Step() returns one cycle for
// every call while the CPU is jammed.
//
// A small number of undocumented opcodes have results that depend on
// analogue effects in the hardware. These are marked as Unstable in the
// instruction table. The CPU implements the most commonly documented
// behaviour for these opcodes.
package cpu
