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

package disassembly

import (
	"fmt"
	"strings"

	"github.com/nesemu/nesemu/hardware/cpu/instructions"
	"github.com/nesemu/nesemu/hardware/cpu/registers"
	"github.com/nesemu/nesemu/hardware/memory/cpubus"
)

// Entry is a single disassembled instruction. The string fields are
// formatted ready for display.
type Entry struct {
	// the address of the opcode
	Addr uint16

	Defn *instructions.Definition

	// the opcode and the operand bytes that follow it
	Data []uint8

	Address  string
	Bytecode string
	Operator string
	Operand  string
	Cycles   string
	Notes    string
}

// Decode the instruction at the address. Memory is read with Peek() so
// decoding has no effect on the emulation.
func Decode(mem cpubus.Peeker, address uint16) *Entry {
	defn := instructions.Lookup(mem.Peek(address))

	e := &Entry{
		Addr: address,
		Defn: defn,
		Data: make([]uint8, defn.Bytes),
	}

	for i := range e.Data {
		e.Data[i] = mem.Peek(address + uint16(i))
	}

	e.Address = fmt.Sprintf("$%04x", address)

	b := make([]string, len(e.Data))
	for i, v := range e.Data {
		b[i] = fmt.Sprintf("%02x", v)
	}
	e.Bytecode = strings.Join(b, " ")

	e.Operator = defn.Operator.String()
	e.Operand = e.formatOperand()

	if defn.PageSensitive {
		e.Cycles = fmt.Sprintf("%d*", defn.Cycles)
	} else {
		e.Cycles = fmt.Sprintf("%d", defn.Cycles)
	}

	switch {
	case defn.Unstable:
		e.Notes = "unstable"
	case defn.Undocumented:
		e.Notes = "undocumented"
	}

	return e
}

// Next returns the address of the instruction following the entry.
func (e *Entry) Next() uint16 {
	return e.Addr + uint16(len(e.Data))
}

// data returns the operand as a 16 bit value. single byte operands are
// returned as is.
func (e *Entry) data() uint16 {
	switch len(e.Data) {
	case 2:
		return uint16(e.Data[1])
	case 3:
		return (uint16(e.Data[2]) << 8) | uint16(e.Data[1])
	}
	return 0
}

func (e *Entry) formatOperand() string {
	// BRK has a padding byte that is not an operand
	if e.Defn.Operator == instructions.BRK {
		return ""
	}

	switch e.Defn.AddressingMode {
	case instructions.Implied:
		return ""
	case instructions.Accumulator:
		return "A"
	case instructions.Immediate:
		return fmt.Sprintf("#$%02x", e.data())
	case instructions.Relative:
		return fmt.Sprintf("$%04x", absoluteBranchDestination(e.Addr, e.data()))
	case instructions.Absolute:
		return fmt.Sprintf("$%04x", e.data())
	case instructions.ZeroPage:
		return fmt.Sprintf("$%02x", e.data())
	case instructions.Indirect:
		return fmt.Sprintf("($%04x)", e.data())
	case instructions.IndexedIndirect:
		return fmt.Sprintf("($%02x,X)", e.data())
	case instructions.IndirectIndexed:
		return fmt.Sprintf("($%02x),Y", e.data())
	case instructions.AbsoluteIndexedX:
		return fmt.Sprintf("$%04x,X", e.data())
	case instructions.AbsoluteIndexedY:
		return fmt.Sprintf("$%04x,Y", e.data())
	case instructions.ZeroPageIndexedX:
		return fmt.Sprintf("$%02x,X", e.data())
	case instructions.ZeroPageIndexedY:
		return fmt.Sprintf("$%02x,Y", e.data())
	}

	return ""
}

// absolute branch destination returns the branch operand as the address of the
// branched PC, rather than an offset value.
func absoluteBranchDestination(addr uint16, operand uint16) uint16 {
	// create a mock register with the instruction's address as the initial value
	pc := registers.NewProgramCounter(addr)

	// all 6502 branch instructions are 2 bytes in length
	pc.Add(2)

	// sign extend the 8 bit offset
	if operand&0x0080 == 0x0080 {
		operand |= 0xff00
	}

	pc.Add(operand)

	return pc.Address()
}

// String returns a very basic representation of an Entry. Provided for
// convenience.
func (e *Entry) String() string {
	if e.Operand == "" {
		return fmt.Sprintf("%s %s", e.Address, e.Operator)
	}
	return fmt.Sprintf("%s %s %s", e.Address, e.Operator, e.Operand)
}
