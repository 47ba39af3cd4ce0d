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
	"github.com/nesemu/nesemu/hardware/cpu/instructions"
)

// read8Bit reads a byte from memory.
func (mc *CPU) read8Bit(address uint16) uint8 {
	return mc.mem.Read(address)
}

// read16Bit reads a little endian word from memory. there is no page
// wrapping.
func (mc *CPU) read16Bit(address uint16) uint16 {
	lo := mc.mem.Read(address)
	hi := mc.mem.Read(address + 1)
	return (uint16(hi) << 8) | uint16(lo)
}

// read16BitZeroPage reads a little endian word from the zero page. the high
// byte wraps around to the start of the zero page.
func (mc *CPU) read16BitZeroPage(address uint8) uint16 {
	lo := mc.mem.Read(uint16(address))
	hi := mc.mem.Read(uint16(address + 1))
	return (uint16(hi) << 8) | uint16(lo)
}

// read8BitPC reads the byte at the program counter and advances the program
// counter.
func (mc *CPU) read8BitPC() uint8 {
	v := mc.mem.Read(mc.PC.Address())
	mc.PC.Add(1)
	mc.LastResult.ByteCount++
	return v
}

// read16BitPC reads the little endian word at the program counter and
// advances the program counter.
func (mc *CPU) read16BitPC() uint16 {
	lo := mc.read8BitPC()
	hi := mc.read8BitPC()
	return (uint16(hi) << 8) | uint16(lo)
}

// resolve reads the bytes that follow the opcode and produces the operand for
// the instruction. also returns whether indexing (or a branch) caused the
// effective address to be on a different page.
func (mc *CPU) resolve(defn *instructions.Definition) (Operand, bool) {
	var op Operand
	var pageCrossed bool

	switch defn.AddressingMode {
	case instructions.Implied:
		op.Kind = OperandNone

	case instructions.Accumulator:
		op.Kind = OperandAccumulator

	case instructions.Immediate:
		op.Kind = OperandImmediate
		op.Value = mc.read8BitPC()
		mc.LastResult.InstructionData = uint16(op.Value)

	case instructions.Relative:
		offset := mc.read8BitPC()
		mc.LastResult.InstructionData = uint16(offset)

		// the offset is relative to the address of the instruction following
		// the branch
		op.Kind = OperandAddress
		op.Base = mc.PC.Address()
		op.Address = op.Base + uint16(int16(int8(offset)))
		pageCrossed = op.Address&0xff00 != op.Base&0xff00

	case instructions.Absolute:
		op.Kind = OperandAddress
		op.Address = mc.read16BitPC()
		mc.LastResult.InstructionData = op.Address

	case instructions.ZeroPage:
		op.Kind = OperandAddress
		op.Address = uint16(mc.read8BitPC())
		mc.LastResult.InstructionData = op.Address

	case instructions.Indirect:
		// indirect addressing is only used by JMP
		ptr := mc.read16BitPC()
		mc.LastResult.InstructionData = ptr

		// the 6502 does not carry the increment of the pointer into the high
		// byte. if the pointer is at the end of a page then the high byte of
		// the target is read from the start of the same page
		lo := mc.read8Bit(ptr)
		hi := mc.read8Bit((ptr & 0xff00) | uint16(uint8(ptr)+1))
		if ptr&0x00ff == 0x00ff {
			mc.LastResult.CPUBug = execution.JmpIndirectAddressingBug
		}

		op.Kind = OperandAddress
		op.Base = ptr
		op.Address = (uint16(hi) << 8) | uint16(lo)

	case instructions.IndexedIndirect:
		b := mc.read8BitPC()
		mc.LastResult.InstructionData = uint16(b)

		// index and pointer both wrap around the zero page
		ptr := b + mc.X.Value()
		if ptr < b || ptr == 0xff {
			mc.LastResult.CPUBug = execution.IndexedIndirectWrapBug
		}

		op.Kind = OperandAddress
		op.Base = uint16(ptr)
		op.Address = mc.read16BitZeroPage(ptr)

	case instructions.IndirectIndexed:
		b := mc.read8BitPC()
		mc.LastResult.InstructionData = uint16(b)
		if b == 0xff {
			mc.LastResult.CPUBug = execution.IndirectIndexedWrapBug
		}

		op.Kind = OperandAddress
		op.Base = mc.read16BitZeroPage(b)
		op.Address = op.Base + mc.Y.Address()
		pageCrossed = op.Address&0xff00 != op.Base&0xff00

	case instructions.AbsoluteIndexedX:
		op.Kind = OperandAddress
		op.Base = mc.read16BitPC()
		op.Address = op.Base + mc.X.Address()
		pageCrossed = op.Address&0xff00 != op.Base&0xff00
		mc.LastResult.InstructionData = op.Base

	case instructions.AbsoluteIndexedY:
		op.Kind = OperandAddress
		op.Base = mc.read16BitPC()
		op.Address = op.Base + mc.Y.Address()
		pageCrossed = op.Address&0xff00 != op.Base&0xff00
		mc.LastResult.InstructionData = op.Base

	case instructions.ZeroPageIndexedX:
		b := mc.read8BitPC()
		mc.LastResult.InstructionData = uint16(b)

		// the indexed address never leaves the zero page
		a := b + mc.X.Value()
		if a < b {
			mc.LastResult.CPUBug = execution.ZeroPageIndexBug
		}

		op.Kind = OperandAddress
		op.Base = uint16(b)
		op.Address = uint16(a)

	case instructions.ZeroPageIndexedY:
		b := mc.read8BitPC()
		mc.LastResult.InstructionData = uint16(b)

		a := b + mc.Y.Value()
		if a < b {
			mc.LastResult.CPUBug = execution.ZeroPageIndexBug
		}

		op.Kind = OperandAddress
		op.Base = uint16(b)
		op.Address = uint16(a)
	}

	return op, pageCrossed
}
