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

package execution

import (
	"github.com/nesemu/nesemu/curated"
)

// InterruptCycles is the number of cycles consumed by the reset, NMI and IRQ
// sequences.
const InterruptCycles = 7

// Sentinal errors returned by IsValid().
const (
	NotFinalised     = "execution: result not finalised"
	UnexpectedPage   = "execution: unexpected page fault for opcode %#02x"
	UnexpectedBytes  = "execution: unexpected number of bytes read during decode of %#02x (%d instead of %d)"
	UnexpectedCycles = "execution: number of cycles wrong for %s (%d instead of %d)"
)

// IsValid checks whether the instance of Result contains information
// consistent with the instruction definition.
func (r Result) IsValid() error {
	if !r.Final {
		return curated.Errorf(NotFinalised)
	}

	if r.Jammed {
		if r.Cycles != 1 {
			return curated.Errorf(UnexpectedCycles, "jammed CPU", r.Cycles, 1)
		}
		return nil
	}

	if r.Interrupt != NoInterrupt {
		if r.Cycles != InterruptCycles {
			return curated.Errorf(UnexpectedCycles, r.Interrupt, r.Cycles, InterruptCycles)
		}
		return nil
	}

	if r.Defn == nil {
		return curated.Errorf(NotFinalised)
	}

	if !r.Defn.PageSensitive && !r.Defn.IsBranch() && r.PageFault {
		return curated.Errorf(UnexpectedPage, r.Defn.OpCode)
	}

	if r.ByteCount != r.Defn.Bytes {
		return curated.Errorf(UnexpectedBytes, r.Defn.OpCode, r.ByteCount, r.Defn.Bytes)
	}

	expected := r.Defn.Cycles
	if r.Defn.IsBranch() {
		if r.BranchSuccess {
			expected++
			if r.PageFault {
				expected++
			}
		}
	} else if r.Defn.PageSensitive && r.PageFault {
		expected++
	}

	if r.Cycles != expected {
		return curated.Errorf(UnexpectedCycles, r.Defn.Operator, r.Cycles, expected)
	}

	return nil
}
