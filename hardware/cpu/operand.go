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

import "fmt"

// OperandKind identifies what an Operand refers to.
type OperandKind int

// List of operand kinds.
const (
	OperandNone OperandKind = iota
	OperandAddress
	OperandImmediate
	OperandAccumulator
)

// Operand is the result of resolving the addressing mode of an instruction.
// It is created fresh for every instruction and is consumed by the execution
// of that instruction.
type Operand struct {
	Kind OperandKind

	// the effective address for OperandAddress. for branch instructions this
	// is the branch target
	Address uint16

	// the address before indexing was applied. only meaningful for the
	// indexed addressing modes
	Base uint16

	// the fetched value for OperandImmediate
	Value uint8
}

func (op Operand) String() string {
	switch op.Kind {
	case OperandAddress:
		return fmt.Sprintf("$%04x", op.Address)
	case OperandImmediate:
		return fmt.Sprintf("#$%02x", op.Value)
	case OperandAccumulator:
		return "A"
	}
	return ""
}
