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
	"github.com/nesemu/nesemu/hardware/cpu/instructions"
)

// Interrupt identifies the interrupt sequence, if any, that was performed
// instead of an instruction.
type Interrupt int

// List of interrupt sequences. BRK is not in this list because it is an
// instruction and is recorded in the Defn field of the Result.
const (
	NoInterrupt Interrupt = iota
	Reset
	NMI
	IRQ
)

func (i Interrupt) String() string {
	switch i {
	case Reset:
		return "RESET"
	case NMI:
		return "NMI"
	case IRQ:
		return "IRQ"
	}
	return ""
}

// Result records the state/result of each instruction executed on the CPU.
// Including the address it was read from, a reference to the instruction
// definition, and other execution details.
//
// The Result type is filled in once per call to CPU.Step(). It describes the
// instruction or interrupt sequence that the step performed.
type Result struct {
	// the address at which the instruction began
	Address uint16

	// a reference to the instruction definition. nil if the step performed an
	// interrupt sequence or if the CPU is jammed
	Defn *instructions.Definition

	// the number of bytes read during instruction decode. should equal
	// Defn.Bytes when the result is Final
	ByteCount int

	// instruction data is the actual instruction data. so, for example, in
	// the case of ROL <$1F this field contains the value 0x001f
	InstructionData uint16

	// the number of cycles consumed by the step
	Cycles int

	// whether a known buggy code path (in the emulated CPU) was triggered
	CPUBug Bug

	// whether this data has been finalised
	Final bool

	// whether an extra cycle was required because of page traversal
	PageFault bool

	// whether branch instruction test passed (ie. branched)
	BranchSuccess bool

	// the interrupt sequence performed by the step
	Interrupt Interrupt

	// the CPU has been halted by a STP instruction and is waiting for reset
	Jammed bool
}

// Reset nullifies all members of the Result instance.
func (r *Result) Reset() {
	*r = Result{}
}
