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

package instructions_test

import (
	"fmt"
	"testing"

	"github.com/nesemu/nesemu/hardware/cpu/instructions"
	"github.com/nesemu/nesemu/test"
)

func TestCompleteness(t *testing.T) {
	defs := instructions.GetDefinitions()

	for i := range defs {
		tag := fmt.Sprintf("%#02x", i)
		d := defs[i]

		test.ExpectEquality(t, int(d.OpCode), i, tag)
		test.ExpectInequality(t, d.Operator.String(), "???", tag)
		test.ExpectEquality(t, d.Cycles > 0, true, tag)

		// BRK is followed by a padding byte that is skipped over
		if d.Operator == instructions.BRK {
			test.ExpectEquality(t, d.Bytes, 2, tag)
		} else {
			test.ExpectEquality(t, d.Bytes, 1+d.AddressingMode.OperandBytes(), tag)
		}

		test.ExpectEquality(t, instructions.Lookup(uint8(i)).OpCode, uint8(i), tag)
	}
}

func TestDocumentedInstructionSet(t *testing.T) {
	defs := instructions.GetDefinitions()

	documented := 0
	for _, d := range defs {
		if !d.Undocumented {
			documented++
			test.ExpectEquality(t, d.Unstable, false, d.OpCode)
			test.ExpectEquality(t, d.Operator < instructions.AHX, true, d.OpCode)
		}
	}

	// 151 documented opcodes in the 6502 instruction set
	test.ExpectEquality(t, documented, 151)
}

func TestUnstableOpcodes(t *testing.T) {
	unstable := map[uint8]bool{0x8b: true, 0xab: true, 0x93: true, 0x9f: true, 0x9b: true, 0x9c: true, 0x9e: true}
	for _, d := range instructions.GetDefinitions() {
		test.ExpectEquality(t, d.Unstable, unstable[d.OpCode], d.OpCode)
	}
}

func TestPageSensitivity(t *testing.T) {
	for _, d := range instructions.GetDefinitions() {
		switch d.Effect {
		case instructions.Write, instructions.Modify:
			test.ExpectEquality(t, d.PageSensitive, false, d.OpCode)
		}

		if d.PageSensitive {
			switch d.AddressingMode {
			case instructions.AbsoluteIndexedX, instructions.AbsoluteIndexedY, instructions.IndirectIndexed:
			default:
				t.Errorf("page sensitive opcode (%#02x) with mode that can not cross a page (%s)", d.OpCode, d.AddressingMode)
			}
		}

		if d.IsBranch() {
			test.ExpectEquality(t, d.Operator.IsBranch(), true, d.OpCode)
			test.ExpectEquality(t, d.Cycles, 2, d.OpCode)
		}
	}
}

func TestSpotChecks(t *testing.T) {
	d := instructions.Lookup(0x6c)
	test.ExpectEquality(t, d.Operator, instructions.JMP)
	test.ExpectEquality(t, d.AddressingMode, instructions.Indirect)
	test.ExpectEquality(t, d.Cycles, 5)

	d = instructions.Lookup(0xb1)
	test.ExpectEquality(t, d.Operator, instructions.LDA)
	test.ExpectEquality(t, d.AddressingMode, instructions.IndirectIndexed)
	test.ExpectEquality(t, d.PageSensitive, true)
	test.ExpectEquality(t, d.Cycles, 5)

	d = instructions.Lookup(0x96)
	test.ExpectEquality(t, d.Operator, instructions.STX)
	test.ExpectEquality(t, d.AddressingMode, instructions.ZeroPageIndexedY)

	d = instructions.Lookup(0x0a)
	test.ExpectEquality(t, d.Operator, instructions.ASL)
	test.ExpectEquality(t, d.AddressingMode, instructions.Accumulator)

	d = instructions.Lookup(0xeb)
	test.ExpectEquality(t, d.Operator, instructions.SBC)
	test.ExpectEquality(t, d.Undocumented, true)

	d = instructions.Lookup(0xdb)
	test.ExpectEquality(t, d.Operator, instructions.DCP)
	test.ExpectEquality(t, d.Cycles, 7)

	d = instructions.Lookup(0x02)
	test.ExpectEquality(t, d.Operator, instructions.STP)
	test.ExpectEquality(t, d.Effect, instructions.Flow)
}

func TestOperatorNames(t *testing.T) {
	test.ExpectEquality(t, instructions.ADC.String(), "ADC")
	test.ExpectEquality(t, instructions.TYA.String(), "TYA")
	test.ExpectEquality(t, instructions.AHX.String(), "AHX")
	test.ExpectEquality(t, instructions.XAA.String(), "XAA")
	test.ExpectEquality(t, instructions.NumOperators.String(), "???")
}
