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

package cpu_test

import (
	"testing"

	"github.com/nesemu/nesemu/hardware/cpu"
	"github.com/nesemu/nesemu/hardware/cpu/execution"
	"github.com/nesemu/nesemu/hardware/cpu/instructions"
	rtest "github.com/nesemu/nesemu/hardware/cpu/registers/test"
	"github.com/nesemu/nesemu/test"
)

// origin of test programs. the reset vector of the mock memory points here
const origin = uint16(0x8000)

type mockMem struct {
	internal []uint8
	writes   int
}

func newMockMem() *mockMem {
	mem := &mockMem{
		internal: make([]uint8, 0x10000),
	}
	mem.internal[0xfffc] = uint8(origin & 0xff)
	mem.internal[0xfffd] = uint8(origin >> 8)
	return mem
}

func (mem *mockMem) putInstructions(address uint16, bytes ...uint8) uint16 {
	for i, b := range bytes {
		mem.internal[address+uint16(i)] = b
	}
	return address + uint16(len(bytes))
}

func (mem *mockMem) assert(t *testing.T, address uint16, value uint8) {
	t.Helper()
	if mem.internal[address] != value {
		t.Errorf("memory assertion failed (%#02x - wanted %#02x at address %04x)", mem.internal[address], value, address)
	}
}

func (mem *mockMem) setVector(address uint16, vector uint16) {
	mem.internal[address] = uint8(vector)
	mem.internal[address+1] = uint8(vector >> 8)
}

func (mem *mockMem) Read(address uint16) uint8 {
	return mem.internal[address]
}

func (mem *mockMem) Write(address uint16, data uint8) {
	mem.writes++
	mem.internal[address] = data
}

func (mem *mockMem) Peek(address uint16) uint8 {
	return mem.internal[address]
}

func newCPU() (*cpu.CPU, *mockMem) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.Reset()
	return mc, mem
}

// step the CPU and check that the result is consistent with the instruction
// definition
func step(t *testing.T, mc *cpu.CPU) int {
	t.Helper()
	cycles, err := mc.Step()
	if err != nil {
		t.Fatal(err)
	}
	err = mc.LastResult.IsValid()
	if err != nil {
		t.Fatal(err)
	}
	if mc.Status.Value()&0x20 != 0x20 {
		t.Fatalf("unused bit of the status register is not set")
	}
	return cycles
}

func TestPowerOn(t *testing.T) {
	mc, _ := newCPU()
	rtest.EquateRegisters(t, mc.PC, int(origin))
	rtest.EquateRegisters(t, mc.SP, 0xfd)
	rtest.EquateRegisters(t, mc.Status, 0x34)
	rtest.EquateRegisters(t, mc.A, 0)
	rtest.EquateRegisters(t, mc.X, 0)
	rtest.EquateRegisters(t, mc.Y, 0)
	test.ExpectEquality(t, mc.HasReset(), true)
}

func TestStatusInstructions(t *testing.T) {
	mc, mem := newCPU()

	// SEC; CLC; CLI; SEI; SED; CLD; CLV
	pc := mem.putInstructions(origin, 0x38, 0x18, 0x58, 0x78, 0xf8, 0xd8, 0xb8)
	step(t, mc) // SEC
	rtest.EquateStatus(t, mc.Status, "nv-BdIzC")
	step(t, mc) // CLC
	rtest.EquateStatus(t, mc.Status, "nv-BdIzc")
	step(t, mc) // CLI
	rtest.EquateStatus(t, mc.Status, "nv-Bdizc")
	step(t, mc) // SEI
	rtest.EquateStatus(t, mc.Status, "nv-BdIzc")
	step(t, mc) // SED
	rtest.EquateStatus(t, mc.Status, "nv-BDIzc")
	step(t, mc) // CLD
	rtest.EquateStatus(t, mc.Status, "nv-BdIzc")
	mc.Status.Overflow = true
	step(t, mc) // CLV
	rtest.EquateStatus(t, mc.Status, "nv-BdIzc")

	// PHP; PLP
	mem.putInstructions(pc, 0x08, 0x28)
	step(t, mc) // PHP
	rtest.EquateRegisters(t, mc.SP, 0xfc)

	// pushed status has the break and unused bits set
	mem.assert(t, 0x01fd, 0x34)

	// mangle status register
	mc.Status.Sign = true
	mc.Status.Overflow = true

	// restore status register. the break bit is not restored
	step(t, mc) // PLP
	rtest.EquateRegisters(t, mc.SP, 0xfd)
	rtest.EquateStatus(t, mc.Status, "nv-bdIzc")
}

func TestArithmetic(t *testing.T) {
	mc, mem := newCPU()

	// LDA #$7f; CLC; ADC #$01
	pc := mem.putInstructions(origin, 0xa9, 0x7f, 0x18, 0x69, 0x01)
	step(t, mc)
	step(t, mc)
	step(t, mc)
	rtest.EquateRegisters(t, mc.A, 0x80)
	rtest.EquateStatus(t, mc.Status, "NV-BdIzc")

	// SEC; SBC #$01
	pc = mem.putInstructions(pc, 0x38, 0xe9, 0x01)
	step(t, mc)
	step(t, mc)
	rtest.EquateRegisters(t, mc.A, 0x7f)
	rtest.EquateStatus(t, mc.Status, "nV-BdIzC")

	// decimal mode has no effect. SED; CLC; LDA #$09; ADC #$01
	pc = mem.putInstructions(pc, 0xf8, 0x18, 0xa9, 0x09, 0x69, 0x01)
	step(t, mc)
	step(t, mc)
	step(t, mc)
	step(t, mc)
	rtest.EquateRegisters(t, mc.A, 0x0a)

	// SBC with borrow. CLC; LDA #$00; SBC #$00
	mem.putInstructions(pc, 0x18, 0xa9, 0x00, 0xe9, 0x00)
	step(t, mc)
	step(t, mc)
	step(t, mc)
	rtest.EquateRegisters(t, mc.A, 0xff)
	rtest.EquateStatus(t, mc.Status, "Nv-BDIzc")
}

func TestCompare(t *testing.T) {
	mc, mem := newCPU()

	// LDA #$40; CMP #$40; CMP #$41; CMP #$3f
	mem.putInstructions(origin, 0xa9, 0x40, 0xc9, 0x40, 0xc9, 0x41, 0xc9, 0x3f)
	step(t, mc)
	step(t, mc)
	rtest.EquateStatus(t, mc.Status, "nv-BdIZC")
	step(t, mc)
	rtest.EquateStatus(t, mc.Status, "Nv-BdIzc")
	step(t, mc)
	rtest.EquateStatus(t, mc.Status, "nv-BdIzC")

	// compare does not change the register
	rtest.EquateRegisters(t, mc.A, 0x40)

	// LDX #$10; CPX $20 (contains $20); LDY #$ff; CPY #$ff
	mem.internal[0x20] = 0x20
	mem.putInstructions(mc.PC.Address(), 0xa2, 0x10, 0xe4, 0x20, 0xa0, 0xff, 0xc0, 0xff)
	step(t, mc)
	step(t, mc)
	rtest.EquateStatus(t, mc.Status, "Nv-BdIzc")
	step(t, mc)
	step(t, mc)
	rtest.EquateStatus(t, mc.Status, "nv-BdIZC")
}

func TestBitwiseAndShifts(t *testing.T) {
	mc, mem := newCPU()

	// ORA #$ff; EOR #$f0; AND #$01
	pc := mem.putInstructions(origin, 0x09, 0xff, 0x49, 0xf0, 0x29, 0x01)
	step(t, mc)
	rtest.EquateRegisters(t, mc.A, 0xff)
	step(t, mc)
	rtest.EquateRegisters(t, mc.A, 0x0f)
	step(t, mc)
	rtest.EquateRegisters(t, mc.A, 0x01)

	// ASL A; ASL A; ... LSR A; ROR A; ROL A
	pc = mem.putInstructions(pc, 0x0a, 0x4a, 0x4a, 0x6a, 0x2a)
	step(t, mc) // ASL
	rtest.EquateRegisters(t, mc.A, 0x02)
	step(t, mc) // LSR
	rtest.EquateRegisters(t, mc.A, 0x01)
	step(t, mc) // LSR
	rtest.EquateRegisters(t, mc.A, 0x00)
	rtest.EquateStatus(t, mc.Status, "nv-BdIZC")
	step(t, mc) // ROR
	rtest.EquateRegisters(t, mc.A, 0x80)
	rtest.EquateStatus(t, mc.Status, "Nv-BdIzc")
	step(t, mc) // ROL
	rtest.EquateRegisters(t, mc.A, 0x00)
	rtest.EquateStatus(t, mc.Status, "nv-BdIZC")

	// BIT $10 (contains $c0)
	mem.internal[0x10] = 0xc0
	mem.putInstructions(pc, 0x24, 0x10)
	step(t, mc)
	rtest.EquateStatus(t, mc.Status, "NV-BdIZC")
}

func TestReadModifyWrite(t *testing.T) {
	mc, mem := newCPU()

	// INC $10; DEC $11; ASL $12; ROR $13
	mem.internal[0x10] = 0xff
	mem.internal[0x11] = 0x00
	mem.internal[0x12] = 0x81
	mem.internal[0x13] = 0x01
	mem.putInstructions(origin, 0xe6, 0x10, 0xc6, 0x11, 0x06, 0x12, 0x66, 0x13)

	for i := 0; i < 4; i++ {
		mem.writes = 0
		test.ExpectEquality(t, step(t, mc), 5)

		// read-modify-write instructions write exactly once
		test.ExpectEquality(t, mem.writes, 1)
	}

	mem.assert(t, 0x10, 0x00)
	mem.assert(t, 0x11, 0xff)
	mem.assert(t, 0x12, 0x02)
	mem.assert(t, 0x13, 0x80)
}

func TestLoadStore(t *testing.T) {
	mc, mem := newCPU()

	// LDA #$11; LDX #$22; LDY #$33; STA $00; STX $01; STY $02
	mem.putInstructions(origin, 0xa9, 0x11, 0xa2, 0x22, 0xa0, 0x33, 0x85, 0x00, 0x86, 0x01, 0x84, 0x02)
	for i := 0; i < 6; i++ {
		step(t, mc)
	}
	mem.assert(t, 0x00, 0x11)
	mem.assert(t, 0x01, 0x22)
	mem.assert(t, 0x02, 0x33)

	// load of zero sets zero flag but does not touch carry or overflow
	mc.Status.Carry = true
	mc.Status.Overflow = true
	mem.putInstructions(mc.PC.Address(), 0xa9, 0x00)
	step(t, mc)
	rtest.EquateStatus(t, mc.Status, "nV-BdIZC")

	// transfers: TAX; TAY; TSX; TXS
	mc.A.Load(0x80)
	mem.putInstructions(mc.PC.Address(), 0xaa, 0xa8, 0xba, 0x9a)
	step(t, mc)
	rtest.EquateRegisters(t, mc.X, 0x80)
	step(t, mc)
	rtest.EquateRegisters(t, mc.Y, 0x80)
	step(t, mc)
	rtest.EquateRegisters(t, mc.X, 0xfd)
	mc.X.Load(0x00)
	step(t, mc)
	rtest.EquateRegisters(t, mc.SP, 0x00)

	// TXS does not affect flags
	rtest.EquateStatus(t, mc.Status, "NV-BdIzC")
}

func TestZeroPageIndexWrap(t *testing.T) {
	mc, mem := newCPU()

	// LDX #$02; LDA $ff,X
	mem.internal[0x0001] = 0x42
	mem.internal[0x0101] = 0x99
	mem.putInstructions(origin, 0xa2, 0x02, 0xb5, 0xff)
	step(t, mc)
	test.ExpectEquality(t, step(t, mc), 4)
	rtest.EquateRegisters(t, mc.A, 0x42)
	test.ExpectEquality(t, mc.LastResult.CPUBug, execution.ZeroPageIndexBug)

	// LDY #$10; STX $f8,Y
	mem.putInstructions(mc.PC.Address(), 0xa0, 0x10, 0x96, 0xf8)
	step(t, mc)
	step(t, mc)
	mem.assert(t, 0x0008, 0x02)
}

func TestIndirectJumpBug(t *testing.T) {
	mc, mem := newCPU()

	// JMP ($02ff)
	mem.internal[0x02ff] = 0x34
	mem.internal[0x0200] = 0x12
	mem.internal[0x0300] = 0x56
	mem.putInstructions(origin, 0x6c, 0xff, 0x02)
	test.ExpectEquality(t, step(t, mc), 5)
	rtest.EquateRegisters(t, mc.PC, 0x1234)
	test.ExpectEquality(t, mc.LastResult.CPUBug, execution.JmpIndirectAddressingBug)

	// no bug when the pointer is not at the end of a page
	mem.internal[0x0310] = 0x00
	mem.internal[0x0311] = 0x90
	mem.putInstructions(0x1234, 0x6c, 0x10, 0x03)
	step(t, mc)
	rtest.EquateRegisters(t, mc.PC, 0x9000)
	test.ExpectEquality(t, mc.LastResult.CPUBug, execution.NoBug)
}

func TestIndexedIndirect(t *testing.T) {
	mc, mem := newCPU()

	// LDX #$ff; LDA ($80,X)
	mem.internal[0x007f] = 0x00
	mem.internal[0x0080] = 0x30
	mem.internal[0x017f] = 0x55
	mem.internal[0x3000] = 0xab
	mem.putInstructions(origin, 0xa2, 0xff, 0xa1, 0x80)
	step(t, mc)
	test.ExpectEquality(t, step(t, mc), 6)
	rtest.EquateRegisters(t, mc.A, 0xab)

	// LDX #$00; LDA ($ff,X). high byte of pointer is read from $00
	mem.internal[0x00ff] = 0x10
	mem.internal[0x0000] = 0x30
	mem.internal[0x3010] = 0xcd
	mem.putInstructions(mc.PC.Address(), 0xa2, 0x00, 0xa1, 0xff)
	step(t, mc)
	step(t, mc)
	rtest.EquateRegisters(t, mc.A, 0xcd)
}

func TestIndirectIndexed(t *testing.T) {
	mc, mem := newCPU()

	// LDY #$01; LDA ($10),Y. no page crossing
	mem.internal[0x0010] = 0x00
	mem.internal[0x0011] = 0x20
	mem.internal[0x2001] = 0x77
	mem.putInstructions(origin, 0xa0, 0x01, 0xb1, 0x10)
	step(t, mc)
	test.ExpectEquality(t, step(t, mc), 5)
	rtest.EquateRegisters(t, mc.A, 0x77)

	// LDA ($12),Y. page crossing costs one cycle
	mem.internal[0x0012] = 0xff
	mem.internal[0x0013] = 0x20
	mem.internal[0x2100] = 0x88
	mem.putInstructions(mc.PC.Address(), 0xb1, 0x12)
	test.ExpectEquality(t, step(t, mc), 6)
	rtest.EquateRegisters(t, mc.A, 0x88)
	test.ExpectEquality(t, mc.LastResult.PageFault, true)

	// STA ($12),Y. write instructions are never page sensitive
	mem.putInstructions(mc.PC.Address(), 0x91, 0x12)
	test.ExpectEquality(t, step(t, mc), 6)
	mem.assert(t, 0x2100, 0x88)

	// LDA ($ff),Y. pointer high byte wraps around the zero page
	mem.internal[0x00ff] = 0x00
	mem.internal[0x0000] = 0x40
	mem.internal[0x4001] = 0x66
	mem.putInstructions(mc.PC.Address(), 0xb1, 0xff)
	step(t, mc)
	rtest.EquateRegisters(t, mc.A, 0x66)
}

func TestAbsoluteIndexed(t *testing.T) {
	mc, mem := newCPU()

	// LDX #$01; LDA $20fe,X; LDA $20ff,X
	mem.internal[0x20ff] = 0x01
	mem.internal[0x2100] = 0x02
	mem.putInstructions(origin, 0xa2, 0x01, 0xbd, 0xfe, 0x20, 0xbd, 0xff, 0x20)
	step(t, mc)
	test.ExpectEquality(t, step(t, mc), 4)
	rtest.EquateRegisters(t, mc.A, 0x01)
	test.ExpectEquality(t, step(t, mc), 5)
	rtest.EquateRegisters(t, mc.A, 0x02)

	// STA $20ff,X
	mem.putInstructions(mc.PC.Address(), 0x9d, 0xff, 0x20)
	test.ExpectEquality(t, step(t, mc), 5)

	// INC $20ff,X
	mem.putInstructions(mc.PC.Address(), 0xfe, 0xff, 0x20)
	test.ExpectEquality(t, step(t, mc), 7)
	mem.assert(t, 0x2100, 0x03)

	// address wraps around the top of memory
	mem.internal[0x0000] = 0x5a
	mem.putInstructions(mc.PC.Address(), 0xbd, 0xff, 0xff)
	test.ExpectEquality(t, step(t, mc), 5)
	rtest.EquateRegisters(t, mc.A, 0x5a)
}

func TestBranches(t *testing.T) {
	mc, mem := newCPU()

	// BNE not taken (zero flag is set)
	mc.Status.Zero = true
	mem.putInstructions(origin, 0xd0, 0x10)
	test.ExpectEquality(t, step(t, mc), 2)
	rtest.EquateRegisters(t, mc.PC, 0x8002)
	test.ExpectEquality(t, mc.LastResult.BranchSuccess, false)

	// BEQ taken, same page
	mem.putInstructions(0x8002, 0xf0, 0x10)
	test.ExpectEquality(t, step(t, mc), 3)
	rtest.EquateRegisters(t, mc.PC, 0x8014)
	test.ExpectEquality(t, mc.LastResult.BranchSuccess, true)

	// BEQ taken backwards
	mem.putInstructions(0x8014, 0xf0, 0xfc)
	test.ExpectEquality(t, step(t, mc), 3)
	rtest.EquateRegisters(t, mc.PC, 0x8012)

	// BEQ taken, crossing a page. the page of the target is compared with the
	// page of the instruction following the branch
	mc.PC.Load(0x80f0)
	mem.putInstructions(0x80f0, 0xf0, 0x20)
	test.ExpectEquality(t, step(t, mc), 4)
	rtest.EquateRegisters(t, mc.PC, 0x8112)

	// backwards across a page
	mc.PC.Load(0x8100)
	mem.putInstructions(0x8100, 0xf0, 0xf0)
	test.ExpectEquality(t, step(t, mc), 4)
	rtest.EquateRegisters(t, mc.PC, 0x80f2)

	// the other branch instructions
	type branch struct {
		opcode uint8
		setup  func()
	}
	branches := []branch{
		{0x10, func() { mc.Status.Sign = false }},
		{0x30, func() { mc.Status.Sign = true }},
		{0x50, func() { mc.Status.Overflow = false }},
		{0x70, func() { mc.Status.Overflow = true }},
		{0x90, func() { mc.Status.Carry = false }},
		{0xb0, func() { mc.Status.Carry = true }},
	}
	for _, b := range branches {
		mc.PC.Load(0x9000)
		mem.putInstructions(0x9000, b.opcode, 0x02)
		b.setup()
		test.ExpectEquality(t, step(t, mc), 3, b.opcode)
		rtest.EquateRegisters(t, mc.PC, 0x9004)
	}
}

func TestStack(t *testing.T) {
	mc, mem := newCPU()

	// LDA #$99; PHA; LDA #$00; PLA
	mem.putInstructions(origin, 0xa9, 0x99, 0x48, 0xa9, 0x00, 0x68)
	step(t, mc)
	test.ExpectEquality(t, step(t, mc), 3)
	rtest.EquateRegisters(t, mc.SP, 0xfc)
	mem.assert(t, 0x01fd, 0x99)
	step(t, mc)
	rtest.EquateRegisters(t, mc.A, 0x00)
	test.ExpectEquality(t, step(t, mc), 4)
	rtest.EquateRegisters(t, mc.A, 0x99)
	rtest.EquateRegisters(t, mc.SP, 0xfd)
	rtest.EquateStatus(t, mc.Status, "Nv-BdIzc")

	// stack pointer wraps within the stack page
	mc.SP.Load(0x00)
	mem.putInstructions(mc.PC.Address(), 0x48, 0x68)
	step(t, mc)
	mem.assert(t, 0x0100, 0x99)
	rtest.EquateRegisters(t, mc.SP, 0xff)
	step(t, mc)
	rtest.EquateRegisters(t, mc.SP, 0x00)
}

func TestSubroutine(t *testing.T) {
	mc, mem := newCPU()

	// JSR $9000
	mem.putInstructions(origin, 0x20, 0x00, 0x90)
	test.ExpectEquality(t, step(t, mc), 6)
	rtest.EquateRegisters(t, mc.PC, 0x9000)
	rtest.EquateRegisters(t, mc.SP, 0xfb)

	// return address is the address of the last byte of the JSR, high byte
	// pushed first
	mem.assert(t, 0x01fd, 0x80)
	mem.assert(t, 0x01fc, 0x02)

	rts, ok := mc.PredictRTS()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, rts, 0x8003)

	// RTS
	mem.putInstructions(0x9000, 0x60)
	test.ExpectEquality(t, step(t, mc), 6)
	rtest.EquateRegisters(t, mc.PC, 0x8003)
	rtest.EquateRegisters(t, mc.SP, 0xfd)
}

func TestBRK(t *testing.T) {
	mc, mem := newCPU()
	mem.setVector(0xfffe, 0xa000)

	// CLI; BRK; padding
	mem.putInstructions(origin, 0x58, 0x00, 0xff)
	step(t, mc)
	test.ExpectEquality(t, step(t, mc), 7)
	rtest.EquateRegisters(t, mc.PC, 0xa000)
	test.ExpectEquality(t, mc.Status.InterruptDisable, true)

	// return address skips the padding byte
	mem.assert(t, 0x01fd, 0x80)
	mem.assert(t, 0x01fc, 0x03)

	// pushed status has break bit set
	mem.assert(t, 0x01fb, 0x30)

	// RTI
	mem.putInstructions(0xa000, 0x40)
	test.ExpectEquality(t, step(t, mc), 6)
	rtest.EquateRegisters(t, mc.PC, 0x8003)
	rtest.EquateRegisters(t, mc.SP, 0xfd)
	test.ExpectEquality(t, mc.Status.InterruptDisable, false)
}

func TestNMI(t *testing.T) {
	mc, mem := newCPU()
	mem.setVector(0xfffa, 0xb000)

	// CLI; SEC; NOP
	mem.putInstructions(origin, 0x58, 0x38, 0xea)
	step(t, mc)
	step(t, mc)

	mc.RequestNMI()
	test.ExpectEquality(t, step(t, mc), 7)
	test.ExpectEquality(t, mc.LastResult.Interrupt, execution.NMI)
	rtest.EquateRegisters(t, mc.PC, 0xb000)
	test.ExpectEquality(t, mc.Status.InterruptDisable, true)

	// pushed status does not have break bit set
	mem.assert(t, 0x01fd, 0x80)
	mem.assert(t, 0x01fc, 0x02)
	mem.assert(t, 0x01fb, 0x21)

	// NMI is edge triggered. it is not serviced a second time
	mem.putInstructions(0xb000, 0x40)
	step(t, mc)
	test.ExpectEquality(t, mc.LastResult.Interrupt, execution.NoInterrupt)
	rtest.EquateRegisters(t, mc.PC, 0x8002)

	// status is restored except for the break flag, which is never restored
	rtest.EquateStatus(t, mc.Status, "nv-bdizC")

	// NMI is serviced even if interrupts are disabled
	mc.Status.InterruptDisable = true
	mc.RequestNMI()
	step(t, mc)
	test.ExpectEquality(t, mc.LastResult.Interrupt, execution.NMI)
}

func TestIRQ(t *testing.T) {
	mc, mem := newCPU()
	mem.setVector(0xfffe, 0xc000)

	// NOP; CLI; NOP
	mem.putInstructions(origin, 0xea, 0x58, 0xea)

	// interrupts are disabled at power-on so the IRQ is not serviced
	mc.RequestIRQ(true)
	step(t, mc)
	test.ExpectEquality(t, mc.LastResult.Interrupt, execution.NoInterrupt)
	step(t, mc) // CLI

	test.ExpectEquality(t, step(t, mc), 7)
	test.ExpectEquality(t, mc.LastResult.Interrupt, execution.IRQ)
	rtest.EquateRegisters(t, mc.PC, 0xc000)
	mem.assert(t, 0x01fb, 0x20)

	// line is still asserted but the interrupt disable flag is now set.
	// CLI at the start of the handler causes the IRQ to be serviced again
	mem.putInstructions(0xc000, 0x58, 0x40)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.LastResult.Interrupt, execution.IRQ)

	// releasing the line means the handler runs to completion
	mc.RequestIRQ(false)
	step(t, mc) // CLI
	step(t, mc) // RTI
	rtest.EquateRegisters(t, mc.PC, 0xc001)
}

func TestReset(t *testing.T) {
	mc, mem := newCPU()

	// LDA #$10; LDX #$20
	mem.putInstructions(origin, 0xa9, 0x10, 0xa2, 0x20)
	step(t, mc)
	step(t, mc)

	// reset takes precedence over NMI and discards it
	mc.RequestNMI()
	mc.RequestReset()
	test.ExpectEquality(t, step(t, mc), 7)
	test.ExpectEquality(t, mc.LastResult.Interrupt, execution.Reset)
	test.ExpectEquality(t, mc.HasReset(), true)
	rtest.EquateRegisters(t, mc.PC, int(origin))
	rtest.EquateRegisters(t, mc.A, 0)
	rtest.EquateRegisters(t, mc.X, 0)
	rtest.EquateRegisters(t, mc.SP, 0xfd)
	rtest.EquateRegisters(t, mc.Status, 0x34)

	reset, nmi, _ := mc.Pending()
	test.ExpectEquality(t, reset, false)
	test.ExpectEquality(t, nmi, false)

	step(t, mc)
	test.ExpectEquality(t, mc.LastResult.Interrupt, execution.NoInterrupt)
	test.ExpectEquality(t, mc.State, cpu.Running)
}

func TestJam(t *testing.T) {
	mc, mem := newCPU()

	// STP
	mem.putInstructions(origin, 0x02)
	step(t, mc)
	test.ExpectEquality(t, mc.Jammed, true)

	// jammed CPU consumes one cycle per step and ignores NMI
	mc.RequestNMI()
	for i := 0; i < 3; i++ {
		test.ExpectEquality(t, step(t, mc), 1)
		test.ExpectEquality(t, mc.LastResult.Jammed, true)
	}
	rtest.EquateRegisters(t, mc.PC, 0x8001)

	// reset unjams the CPU
	mc.RequestReset()
	step(t, mc)
	test.ExpectEquality(t, mc.Jammed, false)
	rtest.EquateRegisters(t, mc.PC, int(origin))
}

func TestSerialisation(t *testing.T) {
	mc, mem := newCPU()

	mem.putInstructions(origin, 0xa9, 0x10, 0xa2, 0x20, 0xa0, 0x30)
	step(t, mc)
	step(t, mc)
	step(t, mc)
	mc.RequestIRQ(true)

	data, err := mc.MarshalBinary()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(data), cpu.StateSize)

	mc2 := cpu.NewCPU(mem)
	test.DemandSuccess(t, mc2.UnmarshalBinary(data))
	test.ExpectEquality(t, mc2.String(), mc.String())
	test.ExpectEquality(t, mc2.Cycles, mc.Cycles)

	_, _, irq := mc2.Pending()
	test.ExpectEquality(t, irq, true)

	test.ExpectFailure(t, mc2.UnmarshalBinary(data[:4]))
}

func TestSnapshot(t *testing.T) {
	mc, mem := newCPU()
	mem.putInstructions(origin, 0xa9, 0x10, 0xa9, 0x20)
	step(t, mc)

	s := mc.Snapshot()
	step(t, mc)
	rtest.EquateRegisters(t, mc.A, 0x20)
	rtest.EquateRegisters(t, s.A, 0x10)
	rtest.EquateRegisters(t, s.PC, 0x8002)
}

func TestUndocumented(t *testing.T) {
	mc, mem := newCPU()

	// LAX $10
	mem.internal[0x10] = 0x8f
	mem.putInstructions(origin, 0xa7, 0x10)
	step(t, mc)
	rtest.EquateRegisters(t, mc.A, 0x8f)
	rtest.EquateRegisters(t, mc.X, 0x8f)
	rtest.EquateStatus(t, mc.Status, "Nv-BdIzc")

	// SAX $11
	mc.A.Load(0xf0)
	mc.X.Load(0x3c)
	mem.putInstructions(mc.PC.Address(), 0x87, 0x11)
	step(t, mc)
	mem.assert(t, 0x11, 0x30)

	// DCP $12
	mem.internal[0x12] = 0x41
	mc.A.Load(0x40)
	mem.putInstructions(mc.PC.Address(), 0xc7, 0x12)
	step(t, mc)
	mem.assert(t, 0x12, 0x40)
	rtest.EquateStatus(t, mc.Status, "nv-BdIZC")

	// ISC $13
	mem.internal[0x13] = 0x00
	mc.A.Load(0x05)
	mc.Status.Carry = true
	mem.putInstructions(mc.PC.Address(), 0xe7, 0x13)
	step(t, mc)
	mem.assert(t, 0x13, 0x01)
	rtest.EquateRegisters(t, mc.A, 0x04)

	// SLO $14
	mem.internal[0x14] = 0x81
	mc.A.Load(0x00)
	mem.putInstructions(mc.PC.Address(), 0x07, 0x14)
	step(t, mc)
	mem.assert(t, 0x14, 0x02)
	rtest.EquateRegisters(t, mc.A, 0x02)
	test.ExpectEquality(t, mc.Status.Carry, true)

	// ANC #$80
	mc.A.Load(0xff)
	mc.Status.Carry = false
	mem.putInstructions(mc.PC.Address(), 0x0b, 0x80)
	step(t, mc)
	rtest.EquateRegisters(t, mc.A, 0x80)
	rtest.EquateStatus(t, mc.Status, "Nv-BdIzC")

	// ALR #$03
	mc.A.Load(0xff)
	mem.putInstructions(mc.PC.Address(), 0x4b, 0x03)
	step(t, mc)
	rtest.EquateRegisters(t, mc.A, 0x01)
	test.ExpectEquality(t, mc.Status.Carry, true)

	// AXS #$01
	mc.A.Load(0x0f)
	mc.X.Load(0x03)
	mem.putInstructions(mc.PC.Address(), 0xcb, 0x01)
	step(t, mc)
	rtest.EquateRegisters(t, mc.X, 0x02)
	test.ExpectEquality(t, mc.Status.Carry, true)

	// XAA #$ff
	mc.A.Load(0x11)
	mc.X.Load(0x0f)
	mem.putInstructions(mc.PC.Address(), 0x8b, 0xff)
	step(t, mc)
	rtest.EquateRegisters(t, mc.A, 0x0f)
	test.ExpectEquality(t, mc.LastResult.CPUBug, execution.UnstableResultBug)

	// LAS $2000,Y
	mem.internal[0x2000] = 0xf3
	mc.Y.Load(0x00)
	mc.SP.Load(0x3f)
	mem.putInstructions(mc.PC.Address(), 0xbb, 0x00, 0x20)
	step(t, mc)
	rtest.EquateRegisters(t, mc.A, 0x33)
	rtest.EquateRegisters(t, mc.X, 0x33)
	rtest.EquateRegisters(t, mc.SP, 0x33)

	// undocumented NOPs consume operand bytes but do nothing else
	mc.A.Load(0x55)
	mem.putInstructions(mc.PC.Address(), 0x04, 0x10, 0x1c, 0x00, 0x20, 0x80, 0xff)
	step(t, mc)
	step(t, mc)
	step(t, mc)
	rtest.EquateRegisters(t, mc.A, 0x55)

	// composite effects. the memory operand of the zero page instructions is
	// at $20
	composites := []struct {
		name     string
		code     []uint8
		a, x     uint8
		carry    bool
		mem      uint8
		wantMem  uint8
		wantA    uint8
		wantX    uint8
		wantC    bool
		wantV    bool
		unstable bool
	}{
		// ROL then AND
		{name: "RLA", code: []uint8{0x27, 0x20}, a: 0xff, mem: 0x81, wantMem: 0x02, wantA: 0x02, wantC: true},
		{name: "RLA carry in", code: []uint8{0x27, 0x20}, a: 0x0f, carry: true, mem: 0x04, wantMem: 0x09, wantA: 0x09},

		// LSR then EOR
		{name: "SRE", code: []uint8{0x47, 0x20}, a: 0x0f, mem: 0x03, wantMem: 0x01, wantA: 0x0e, wantC: true},

		// ROR then ADC. the carry out of the rotate is the carry into the add
		{name: "RRA", code: []uint8{0x67, 0x20}, a: 0x10, mem: 0x01, wantMem: 0x00, wantA: 0x11},
		{name: "RRA carry in", code: []uint8{0x67, 0x20}, a: 0x00, carry: true, mem: 0x02, wantMem: 0x81, wantA: 0x81},
		{name: "RRA overflow", code: []uint8{0x67, 0x20}, a: 0x7f, mem: 0x02, wantMem: 0x01, wantA: 0x80, wantV: true},

		// AND then ROR. carry is bit 6 and overflow is bit 6 xor bit 5
		{name: "ARR", code: []uint8{0x6b, 0xff}, a: 0xc0, carry: true, wantA: 0xe0, wantC: true},
		{name: "ARR overflow", code: []uint8{0x6b, 0x7f}, a: 0xff, wantA: 0x3f, wantV: true},
		{name: "ARR carry and overflow", code: []uint8{0x6b, 0x80}, a: 0xff, carry: true, wantA: 0xc0, wantC: true, wantV: true},

		// LAX immediate loads (A | $ee) & operand into A and X
		{name: "LXA", code: []uint8{0xab, 0x0f}, a: 0x00, x: 0x55, wantA: 0x0e, wantX: 0x0e, unstable: true},
		{name: "LXA all bits", code: []uint8{0xab, 0xff}, a: 0x11, wantA: 0xff, wantX: 0xff, unstable: true},
	}

	for _, c := range composites {
		mc, mem := newCPU()
		mc.A.Load(c.a)
		mc.X.Load(c.x)
		mc.Status.Carry = c.carry
		mc.Status.Overflow = false
		mem.internal[0x20] = c.mem
		mem.putInstructions(origin, c.code...)
		step(t, mc)

		test.ExpectEquality(t, mem.internal[0x20], c.wantMem, c.name)
		test.ExpectEquality(t, mc.A.Value(), c.wantA, c.name)
		if c.unstable {
			test.ExpectEquality(t, mc.X.Value(), c.wantX, c.name)
			test.ExpectEquality(t, mc.LastResult.CPUBug, execution.UnstableResultBug, c.name)
		}
		test.ExpectEquality(t, mc.Status.Carry, c.wantC, c.name)
		test.ExpectEquality(t, mc.Status.Overflow, c.wantV, c.name)
		test.ExpectEquality(t, mc.Status.Zero, c.wantA == 0, c.name)
		test.ExpectEquality(t, mc.Status.Sign, c.wantA&0x80 == 0x80, c.name)
	}
}

func TestUnstableStore(t *testing.T) {
	mc, mem := newCPU()

	// SHX $3000,Y. no page crossing
	mc.X.Load(0x0f)
	mc.Y.Load(0x01)
	mem.putInstructions(origin, 0x9e, 0x00, 0x30)
	test.ExpectEquality(t, step(t, mc), 5)
	mem.assert(t, 0x3001, 0x01)
	test.ExpectEquality(t, mc.LastResult.CPUBug, execution.UnstableResultBug)

	// SHX $30ff,Y. the page crossing corrupts the high byte of the address
	mem.putInstructions(mc.PC.Address(), 0x9e, 0xff, 0x30)
	test.ExpectEquality(t, step(t, mc), 5)
	mem.assert(t, 0x0100, 0x01)
	mem.assert(t, 0x3100, 0x00)

	// the stored value is ANDed with the high byte of the base address plus one
	stores := []struct {
		name    string
		code    []uint8
		a, x, y uint8
		address uint16
		value   uint8
		sp      uint8
	}{
		{name: "AHX absolute", code: []uint8{0x9f, 0x00, 0x30}, a: 0xff, x: 0x33, y: 0x02, address: 0x3002, value: 0x31},
		{name: "AHX indirect", code: []uint8{0x93, 0x40}, a: 0x0f, x: 0xff, y: 0x05, address: 0x3005, value: 0x01},
		{name: "SHY", code: []uint8{0x9c, 0x00, 0x30}, x: 0x01, y: 0xf7, address: 0x3001, value: 0x31},
		{name: "SHY page crossed", code: []uint8{0x9c, 0xff, 0x30}, x: 0x01, y: 0x0f, address: 0x0100, value: 0x01},

		// TAS also loads the stack pointer with A & X
		{name: "TAS", code: []uint8{0x9b, 0x00, 0x30}, a: 0xf3, x: 0x3f, y: 0x01, address: 0x3001, value: 0x31, sp: 0x33},
		{name: "TAS page crossed", code: []uint8{0x9b, 0xff, 0x30}, a: 0xff, x: 0x0f, y: 0x01, address: 0x0100, value: 0x01, sp: 0x0f},
	}

	for _, c := range stores {
		mc, mem := newCPU()
		mem.setVector(0x40, 0x3000)
		mc.A.Load(c.a)
		mc.X.Load(c.x)
		mc.Y.Load(c.y)
		sp := mc.SP.Value()
		mem.putInstructions(origin, c.code...)
		step(t, mc)

		test.ExpectEquality(t, mem.internal[c.address], c.value, c.name)
		test.ExpectEquality(t, mem.writes, 1, c.name)
		test.ExpectEquality(t, mc.LastResult.CPUBug, execution.UnstableResultBug, c.name)
		if c.code[0] == 0x9b {
			test.ExpectEquality(t, mc.SP.Value(), c.sp, c.name)
		} else {
			test.ExpectEquality(t, mc.SP.Value(), sp, c.name)
		}
	}
}

// every opcode must decode and execute without error and with a result
// consistent with the instruction table
func TestAllOpcodes(t *testing.T) {
	for opcode := 0; opcode <= 0xff; opcode++ {
		mc, mem := newCPU()
		mem.putInstructions(origin, uint8(opcode), 0x00, 0x00)

		cycles, err := mc.Step()
		if err != nil {
			t.Fatalf("opcode %#02x: %v", opcode, err)
		}

		err = mc.LastResult.IsValid()
		if err != nil {
			t.Errorf("opcode %#02x: %v", opcode, err)
		}

		defn := instructions.Lookup(uint8(opcode))
		test.ExpectEquality(t, mc.LastResult.Defn, defn, opcode)
		test.ExpectEquality(t, cycles >= defn.Cycles, true, opcode)
		test.ExpectEquality(t, mc.Status.Value()&0x20, uint8(0x20), opcode)
	}
}
