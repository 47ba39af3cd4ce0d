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
	"strings"
)

// bit masks for the status register.
const (
	MaskCarry            = uint8(0x01)
	MaskZero             = uint8(0x02)
	MaskInterruptDisable = uint8(0x04)
	MaskDecimalMode      = uint8(0x08)
	MaskBreak            = uint8(0x10)
	MaskUnused           = uint8(0x20)
	MaskOverflow         = uint8(0x40)
	MaskSign             = uint8(0x80)
)

// StatusRegister is the special purpose register that stores the flags of the CPU.
//
// The Break flag doesn't exist as a latch in the real hardware. it only
// exists in copies of the status register that have been pushed onto the
// stack. it is kept here so that the power-on value of the register is
// reported accurately.
type StatusRegister struct {
	Sign             bool
	Overflow         bool
	Break            bool
	DecimalMode      bool
	InterruptDisable bool
	Zero             bool
	Carry            bool
}

// NewStatusRegister is the preferred method of initialisation for the status
// register.
func NewStatusRegister() StatusRegister {
	return StatusRegister{}
}

// Label returns the canonical name for the status register.
func (sr StatusRegister) Label() string {
	return "P"
}

func (sr StatusRegister) String() string {
	s := strings.Builder{}

	if sr.Sign {
		s.WriteRune('N')
	} else {
		s.WriteRune('n')
	}
	if sr.Overflow {
		s.WriteRune('V')
	} else {
		s.WriteRune('v')
	}

	s.WriteRune('-')

	if sr.Break {
		s.WriteRune('B')
	} else {
		s.WriteRune('b')
	}
	if sr.DecimalMode {
		s.WriteRune('D')
	} else {
		s.WriteRune('d')
	}
	if sr.InterruptDisable {
		s.WriteRune('I')
	} else {
		s.WriteRune('i')
	}
	if sr.Zero {
		s.WriteRune('Z')
	} else {
		s.WriteRune('z')
	}
	if sr.Carry {
		s.WriteRune('C')
	} else {
		s.WriteRune('c')
	}

	return s.String()
}

// Reset status flags to the power-on state.
func (sr *StatusRegister) Reset() {
	sr.Load(0x34)
}

// Value converts the StatusRegister struct into a value suitable for pushing
// onto the stack. The unused bit is always set.
func (sr StatusRegister) Value() uint8 {
	var v uint8

	if sr.Sign {
		v |= MaskSign
	}
	if sr.Overflow {
		v |= MaskOverflow
	}
	if sr.Break {
		v |= MaskBreak
	}
	if sr.DecimalMode {
		v |= MaskDecimalMode
	}
	if sr.InterruptDisable {
		v |= MaskInterruptDisable
	}
	if sr.Zero {
		v |= MaskZero
	}
	if sr.Carry {
		v |= MaskCarry
	}

	return v | MaskUnused
}

// Load converts an 8 bit integer to the StatusRegister struct receiver. The
// unused bit is ignored.
func (sr *StatusRegister) Load(v uint8) {
	sr.Sign = v&MaskSign == MaskSign
	sr.Overflow = v&MaskOverflow == MaskOverflow
	sr.Break = v&MaskBreak == MaskBreak
	sr.DecimalMode = v&MaskDecimalMode == MaskDecimalMode
	sr.InterruptDisable = v&MaskInterruptDisable == MaskInterruptDisable
	sr.Zero = v&MaskZero == MaskZero
	sr.Carry = v&MaskCarry == MaskCarry
}

// Pull is used when the status register is loaded from the stack by the PLP
// and RTI instructions. The break bit in the pulled value is ignored and the
// break flag is cleared.
func (sr *StatusRegister) Pull(v uint8) {
	sr.Load(v &^ MaskBreak)
}

// Push returns the value of the status register as it should be written to
// the stack. The break bit is set if the push is by the PHP or BRK
// instructions and clear if the push is caused by a hardware interrupt.
func (sr StatusRegister) Push(brk bool) uint8 {
	v := sr.Value() &^ MaskBreak
	if brk {
		v |= MaskBreak
	}
	return v
}
