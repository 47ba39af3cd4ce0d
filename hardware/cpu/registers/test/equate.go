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

// Package test contains functions useful for testing CPU registers.
package test

import (
	"testing"

	"github.com/nesemu/nesemu/hardware/cpu/registers"
)

// EquateRegisters is used to test equality between a register and an
// expected value. The register can be any of the register types in the
// registers package.
func EquateRegisters(t *testing.T, value any, expectedValue int) {
	t.Helper()

	switch r := value.(type) {
	case registers.Register:
		if int(r.Value()) != expectedValue {
			t.Errorf("register %s: %#02x does not equal %#02x", r.Label(), r.Value(), expectedValue)
		}
	case *registers.Register:
		EquateRegisters(t, *r, expectedValue)
	case registers.StackPointer:
		if int(r.Value()) != expectedValue {
			t.Errorf("register SP: %#02x does not equal %#02x", r.Value(), expectedValue)
		}
	case *registers.StackPointer:
		EquateRegisters(t, *r, expectedValue)
	case registers.ProgramCounter:
		if int(r.Address()) != expectedValue {
			t.Errorf("register PC: %#04x does not equal %#04x", r.Address(), expectedValue)
		}
	case *registers.ProgramCounter:
		EquateRegisters(t, *r, expectedValue)
	case registers.StatusRegister:
		if int(r.Value()) != expectedValue {
			t.Errorf("register P: %#02x does not equal %#02x", r.Value(), expectedValue)
		}
	case *registers.StatusRegister:
		EquateRegisters(t, *r, expectedValue)
	default:
		t.Fatalf("unsupported register type (%T)", value)
	}
}

// EquateStatus compares the status register against a string of flags in the
// format returned by the StatusRegister.String() function. For example:
//
//	rtest.EquateStatus(t, mc.Status, "nv-bdiZC")
func EquateStatus(t *testing.T, sr registers.StatusRegister, expectedFlags string) {
	t.Helper()
	if sr.String() != expectedFlags {
		t.Errorf("status register: %s does not equal %s", sr.String(), expectedFlags)
	}
}
