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

package instructions

import "fmt"

// Definition defines each instruction in the instruction set; one per opcode.
type Definition struct {
	OpCode         uint8
	Operator       Operator
	Bytes          int
	Cycles         int
	AddressingMode AddressingMode
	PageSensitive  bool
	Effect         Category

	// the opcode is not part of the documented instruction set
	Undocumented bool

	// the result of the instruction depends on analogue effects in the
	// hardware. the emulation implements the commonly documented behaviour
	Unstable bool
}

// String returns a single instruction definition as a string.
func (defn Definition) String() string {
	return fmt.Sprintf("%02x %s +%dbytes (%d cycles) [mode=%s pagesens=%t effect=%s]",
		defn.OpCode, defn.Operator, defn.Bytes, defn.Cycles, defn.AddressingMode, defn.PageSensitive, defn.Effect)
}

// IsBranch returns true if instruction is a branch instruction.
func (defn Definition) IsBranch() bool {
	return defn.AddressingMode == Relative && defn.Effect == Flow
}

// Lookup returns the definition for the opcode. Every opcode has a
// definition so Lookup never fails.
func Lookup(opcode uint8) *Definition {
	return &table[opcode]
}

// GetDefinitions returns a copy of the entire instruction table, indexed by
// opcode.
func GetDefinitions() [256]Definition {
	return table
}
