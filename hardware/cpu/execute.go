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
	"github.com/nesemu/nesemu/curated"
	"github.com/nesemu/nesemu/hardware/cpu/execution"
	"github.com/nesemu/nesemu/hardware/cpu/instructions"
	"github.com/nesemu/nesemu/hardware/cpu/registers"
	"github.com/nesemu/nesemu/logger"
)

// UnimplementedInstruction is returned by Step() when the decoded operator
// has no implementation. This should never happen and indicates that the
// instruction table and the CPU are out of step with one another.
const UnimplementedInstruction = "cpu: unimplemented instruction (%s) at (%#04x)"

// unstable opcodes combine the accumulator with this value. real hardware
// varies between chips and with temperature
const unstableMagic = uint8(0xee)

// load reads the operand value. for an address operand this is a read of
// memory
func (mc *CPU) load(op Operand) uint8 {
	switch op.Kind {
	case OperandImmediate:
		return op.Value
	case OperandAccumulator:
		return mc.A.Value()
	case OperandAddress:
		return mc.read8Bit(op.Address)
	}
	return 0
}

// store writes value to the operand. for an address operand this is a single
// write to memory
func (mc *CPU) store(op Operand, value uint8) {
	switch op.Kind {
	case OperandAccumulator:
		mc.A.Load(value)
	case OperandAddress:
		mc.mem.Write(op.Address, value)
	}
}

// setZN sets the zero and sign flags according to the value.
func (mc *CPU) setZN(value uint8) {
	mc.Status.Zero = value == 0
	mc.Status.Sign = value&0x80 == 0x80
}

func (mc *CPU) adc(value uint8) {
	mc.Status.Carry, mc.Status.Overflow = mc.A.Add(value, mc.Status.Carry)
	mc.Status.Zero = mc.A.IsZero()
	mc.Status.Sign = mc.A.IsNegative()
}

func (mc *CPU) sbc(value uint8) {
	mc.Status.Carry, mc.Status.Overflow = mc.A.Subtract(value, mc.Status.Carry)
	mc.Status.Zero = mc.A.IsZero()
	mc.Status.Sign = mc.A.IsNegative()
}

// compare subtracts value from the register without storing the result.
func (mc *CPU) compare(r registers.Register, value uint8) {
	mc.Status.Carry, _ = r.Subtract(value, true)
	mc.Status.Zero = r.IsZero()
	mc.Status.Sign = r.IsNegative()
}

// branch moves the program counter to the target address if flag is true.
// returns the number of additional cycles consumed.
func (mc *CPU) branch(flag bool, op Operand, pageCrossed bool) int {
	if !flag {
		return 0
	}

	mc.LastResult.BranchSuccess = true
	mc.PC.Load(op.Address)

	if pageCrossed {
		mc.LastResult.PageFault = true
		return 2
	}
	return 1
}

// unstableStore is the value stored by the SH* family of instructions. The
// value is ANDed with the high byte of the base address plus one. if the
// indexing crossed a page then the high byte of the effective address is
// replaced with the stored value
func (mc *CPU) unstableStore(op Operand, value uint8, pageCrossed bool) {
	value &= uint8(op.Base>>8) + 1
	address := op.Address
	if pageCrossed {
		address = (uint16(value) << 8) | (address & 0x00ff)
	}
	mc.mem.Write(address, value)
	mc.LastResult.CPUBug = execution.UnstableResultBug
}

// execute performs the operation of the instruction on the operand. returns
// the number of cycles consumed by the instruction.
func (mc *CPU) execute(defn *instructions.Definition, op Operand, pageCrossed bool) (int, error) {
	cycles := defn.Cycles

	if defn.PageSensitive && pageCrossed {
		mc.LastResult.PageFault = true
		cycles++
	}

	switch defn.Operator {
	case instructions.NOP:
		// some undocumented NOPs read memory. the value is ignored
		if op.Kind == OperandAddress {
			_ = mc.load(op)
		}

	case instructions.CLI:
		mc.Status.InterruptDisable = false

	case instructions.SEI:
		mc.Status.InterruptDisable = true

	case instructions.CLC:
		mc.Status.Carry = false

	case instructions.SEC:
		mc.Status.Carry = true

	case instructions.CLD:
		mc.Status.DecimalMode = false

	case instructions.SED:
		mc.Status.DecimalMode = true

	case instructions.CLV:
		mc.Status.Overflow = false

	case instructions.PHA:
		mc.push(mc.A.Value())

	case instructions.PLA:
		mc.A.Load(mc.pull())
		mc.setZN(mc.A.Value())

	case instructions.PHP:
		mc.push(mc.Status.Push(true))

	case instructions.PLP:
		mc.Status.Pull(mc.pull())

	case instructions.TXA:
		mc.A.Load(mc.X.Value())
		mc.setZN(mc.A.Value())

	case instructions.TAX:
		mc.X.Load(mc.A.Value())
		mc.setZN(mc.X.Value())

	case instructions.TAY:
		mc.Y.Load(mc.A.Value())
		mc.setZN(mc.Y.Value())

	case instructions.TYA:
		mc.A.Load(mc.Y.Value())
		mc.setZN(mc.A.Value())

	case instructions.TSX:
		mc.X.Load(mc.SP.Value())
		mc.setZN(mc.X.Value())

	case instructions.TXS:
		// TXS does not affect the status register
		mc.SP.Load(mc.X.Value())

	case instructions.EOR:
		mc.A.EOR(mc.load(op))
		mc.setZN(mc.A.Value())

	case instructions.ORA:
		mc.A.ORA(mc.load(op))
		mc.setZN(mc.A.Value())

	case instructions.AND:
		mc.A.AND(mc.load(op))
		mc.setZN(mc.A.Value())

	case instructions.LDA:
		mc.A.Load(mc.load(op))
		mc.setZN(mc.A.Value())

	case instructions.LDX:
		mc.X.Load(mc.load(op))
		mc.setZN(mc.X.Value())

	case instructions.LDY:
		mc.Y.Load(mc.load(op))
		mc.setZN(mc.Y.Value())

	case instructions.STA:
		mc.store(op, mc.A.Value())

	case instructions.STX:
		mc.store(op, mc.X.Value())

	case instructions.STY:
		mc.store(op, mc.Y.Value())

	case instructions.INX:
		mc.X.Add(1, false)
		mc.setZN(mc.X.Value())

	case instructions.INY:
		mc.Y.Add(1, false)
		mc.setZN(mc.Y.Value())

	case instructions.DEX:
		mc.X.Subtract(1, true)
		mc.setZN(mc.X.Value())

	case instructions.DEY:
		mc.Y.Subtract(1, true)
		mc.setZN(mc.Y.Value())

	case instructions.ASL:
		r := registers.NewAnonRegister(mc.load(op))
		mc.Status.Carry = r.ASL()
		mc.setZN(r.Value())
		mc.store(op, r.Value())

	case instructions.LSR:
		r := registers.NewAnonRegister(mc.load(op))
		mc.Status.Carry = r.LSR()
		mc.setZN(r.Value())
		mc.store(op, r.Value())

	case instructions.ROL:
		r := registers.NewAnonRegister(mc.load(op))
		mc.Status.Carry = r.ROL(mc.Status.Carry)
		mc.setZN(r.Value())
		mc.store(op, r.Value())

	case instructions.ROR:
		r := registers.NewAnonRegister(mc.load(op))
		mc.Status.Carry = r.ROR(mc.Status.Carry)
		mc.setZN(r.Value())
		mc.store(op, r.Value())

	case instructions.INC:
		r := registers.NewAnonRegister(mc.load(op))
		r.Add(1, false)
		mc.setZN(r.Value())
		mc.store(op, r.Value())

	case instructions.DEC:
		r := registers.NewAnonRegister(mc.load(op))
		r.Subtract(1, true)
		mc.setZN(r.Value())
		mc.store(op, r.Value())

	case instructions.ADC:
		mc.adc(mc.load(op))

	case instructions.SBC:
		mc.sbc(mc.load(op))

	case instructions.CMP:
		mc.compare(mc.A, mc.load(op))

	case instructions.CPX:
		mc.compare(mc.X, mc.load(op))

	case instructions.CPY:
		mc.compare(mc.Y, mc.load(op))

	case instructions.BIT:
		v := mc.load(op)
		mc.Status.Zero = mc.A.Value()&v == 0
		mc.Status.Sign = v&0x80 == 0x80
		mc.Status.Overflow = v&0x40 == 0x40

	case instructions.JMP:
		mc.PC.Load(op.Address)

	case instructions.BCC:
		cycles += mc.branch(!mc.Status.Carry, op, pageCrossed)

	case instructions.BCS:
		cycles += mc.branch(mc.Status.Carry, op, pageCrossed)

	case instructions.BEQ:
		cycles += mc.branch(mc.Status.Zero, op, pageCrossed)

	case instructions.BMI:
		cycles += mc.branch(mc.Status.Sign, op, pageCrossed)

	case instructions.BNE:
		cycles += mc.branch(!mc.Status.Zero, op, pageCrossed)

	case instructions.BPL:
		cycles += mc.branch(!mc.Status.Sign, op, pageCrossed)

	case instructions.BVC:
		cycles += mc.branch(!mc.Status.Overflow, op, pageCrossed)

	case instructions.BVS:
		cycles += mc.branch(mc.Status.Overflow, op, pageCrossed)

	case instructions.JSR:
		// the address pushed is the address of the last byte of the JSR
		// instruction. RTS adds one to the pulled address
		mc.pushPC(mc.PC.Address() - 1)
		mc.PC.Load(op.Address)

	case instructions.RTS:
		mc.PC.Load(mc.pullPC())
		mc.PC.Add(1)

	case instructions.BRK:
		mc.serviceBRK()

	case instructions.RTI:
		mc.Status.Pull(mc.pull())
		mc.PC.Load(mc.pullPC())

	// undocumented instructions

	case instructions.SLO:
		r := registers.NewAnonRegister(mc.load(op))
		mc.Status.Carry = r.ASL()
		mc.store(op, r.Value())
		mc.A.ORA(r.Value())
		mc.setZN(mc.A.Value())

	case instructions.RLA:
		r := registers.NewAnonRegister(mc.load(op))
		mc.Status.Carry = r.ROL(mc.Status.Carry)
		mc.store(op, r.Value())
		mc.A.AND(r.Value())
		mc.setZN(mc.A.Value())

	case instructions.SRE:
		r := registers.NewAnonRegister(mc.load(op))
		mc.Status.Carry = r.LSR()
		mc.store(op, r.Value())
		mc.A.EOR(r.Value())
		mc.setZN(mc.A.Value())

	case instructions.RRA:
		r := registers.NewAnonRegister(mc.load(op))
		mc.Status.Carry = r.ROR(mc.Status.Carry)
		mc.store(op, r.Value())
		mc.adc(r.Value())

	case instructions.DCP:
		r := registers.NewAnonRegister(mc.load(op))
		r.Subtract(1, true)
		mc.store(op, r.Value())
		mc.compare(mc.A, r.Value())

	case instructions.ISC:
		r := registers.NewAnonRegister(mc.load(op))
		r.Add(1, false)
		mc.store(op, r.Value())
		mc.sbc(r.Value())

	case instructions.SAX:
		mc.store(op, mc.A.Value()&mc.X.Value())

	case instructions.LAX:
		v := mc.load(op)
		if defn.Unstable {
			// LAX immediate is also known as LXA
			v &= mc.A.Value() | unstableMagic
			mc.LastResult.CPUBug = execution.UnstableResultBug
		}
		mc.A.Load(v)
		mc.X.Load(v)
		mc.setZN(v)

	case instructions.LAS:
		v := mc.load(op) & mc.SP.Value()
		mc.A.Load(v)
		mc.X.Load(v)
		mc.SP.Load(v)
		mc.setZN(v)

	case instructions.ANC:
		mc.A.AND(mc.load(op))
		mc.setZN(mc.A.Value())
		mc.Status.Carry = mc.Status.Sign

	case instructions.ALR:
		mc.A.AND(mc.load(op))
		mc.Status.Carry = mc.A.LSR()
		mc.setZN(mc.A.Value())

	case instructions.ARR:
		mc.A.AND(mc.load(op))
		mc.A.ROR(mc.Status.Carry)
		mc.setZN(mc.A.Value())

		// carry and overflow are taken from bits 6 and 5 of the result
		bit6 := mc.A.Value()&0x40 == 0x40
		bit5 := mc.A.Value()&0x20 == 0x20
		mc.Status.Carry = bit6
		mc.Status.Overflow = bit6 != bit5

	case instructions.AXS:
		r := registers.NewAnonRegister(mc.A.Value() & mc.X.Value())
		mc.Status.Carry, _ = r.Subtract(mc.load(op), true)
		mc.X.Load(r.Value())
		mc.setZN(mc.X.Value())

	case instructions.XAA:
		mc.A.Load((mc.A.Value() | unstableMagic) & mc.X.Value() & mc.load(op))
		mc.setZN(mc.A.Value())
		mc.LastResult.CPUBug = execution.UnstableResultBug

	case instructions.AHX:
		mc.unstableStore(op, mc.A.Value()&mc.X.Value(), pageCrossed)

	case instructions.SHX:
		mc.unstableStore(op, mc.X.Value(), pageCrossed)

	case instructions.SHY:
		mc.unstableStore(op, mc.Y.Value(), pageCrossed)

	case instructions.TAS:
		mc.SP.Load(mc.A.Value() & mc.X.Value())
		mc.unstableStore(op, mc.SP.Value(), pageCrossed)

	case instructions.STP:
		mc.Jammed = true
		logger.Logf(logger.Allow, "cpu", "jammed by STP (%#02x) at %#04x", defn.OpCode, mc.LastResult.Address)

	default:
		return cycles, curated.Errorf(UnimplementedInstruction, defn.Operator, mc.LastResult.Address)
	}

	return cycles, nil
}
