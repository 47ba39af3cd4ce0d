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

package registers

import (
	"fmt"
)

// Register is an 8 bit register. The CPU's accumulator, index registers and
// stack pointer are all of this type.
type Register struct {
	value uint8
	label string
}

// NewRegister is the preferred method of initialisation for Register.
func NewRegister(val uint8, label string) Register {
	return Register{
		value: val,
		label: label,
	}
}

// NewAnonRegister initialises a new register without a name. Useful as a
// scratch register for instructions that operate on memory.
func NewAnonRegister(val uint8) Register {
	return NewRegister(val, "")
}

func (r Register) String() string {
	return fmt.Sprintf("%02x", r.value)
}

// Label returns the name of the register.
func (r Register) Label() string {
	return r.label
}

// Value returns the current value of the register.
func (r Register) Value() uint8 {
	return r.value
}

// Address returns the current value of the register /as a uint16/. this is
// useful when you want to use the register value in an address context.
//
// for example, the X register is added to a base address in the indexed
// addressing modes
func (r Register) Address() uint16 {
	return uint16(r.value)
}

// IsNegative checks the sign bit of the register.
func (r Register) IsNegative() bool {
	return r.value&0x80 == 0x80
}

// IsZero checks if register is zero.
func (r Register) IsZero() bool {
	return r.value == 0
}

// IsBitV returns the state of the second MSB.
func (r Register) IsBitV() bool {
	return r.value&0x40 == 0x40
}

// Load value into register.
func (r *Register) Load(val uint8) {
	r.value = val
}

// Add value to register. Returns carry and overflow states.
func (r *Register) Add(val uint8, carry bool) (rcarry bool, overflow bool) {
	v := uint16(r.value) + uint16(val)
	if carry {
		v++
	}

	// overflow is set if the sign of both operands is the same and the sign of
	// the result is different
	overflow = ((uint8(v) ^ r.value) & (uint8(v) ^ val) & 0x80) != 0

	r.value = uint8(v)
	return v > 0xff, overflow
}

// Subtract value from register. Returns carry and overflow states.
//
// Note that carry flag is opposite of what you might expect when subtracting
// on the 6502. A set carry flag means that nothing was borrowed.
func (r *Register) Subtract(val uint8, carry bool) (rcarry bool, overflow bool) {
	return r.Add(^val, carry)
}

// AND value with register.
func (r *Register) AND(val uint8) {
	r.value &= val
}

// ASL (arithmetic shift left) shifts register one bit to the left. Returns
// the most significant bit as it was before the shift. If we think of the
// ASL operation as a multiply by two then the return value is the carry bit.
func (r *Register) ASL() bool {
	carry := r.value&0x80 == 0x80
	r.value <<= 1
	return carry
}

// EOR (exclusive or) value with register.
func (r *Register) EOR(val uint8) {
	r.value ^= val
}

// LSR (logical shift right) shifts register one bit to the right. the least
// significant bit as it was before the shift. If we think of the ASL
// operation as a division by two then the return value is the carry bit.
func (r *Register) LSR() bool {
	carry := r.value&0x01 == 0x01
	r.value >>= 1
	return carry
}

// ORA (non-exclusive or) value with register.
func (r *Register) ORA(val uint8) {
	r.value |= val
}

// ROL rotates register 1 bit to the left. Returns new carry status.
func (r *Register) ROL(carry bool) bool {
	rcarry := r.value&0x80 == 0x80
	r.value <<= 1
	if carry {
		r.value |= 0x01
	}
	return rcarry
}

// ROR rotates register 1 bit to the right. Returns new carry status.
func (r *Register) ROR(carry bool) bool {
	rcarry := r.value&0x01 == 0x01
	r.value >>= 1
	if carry {
		r.value |= 0x80
	}
	return rcarry
}
