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

package execution_test

import (
	"testing"

	"github.com/nesemu/nesemu/curated"
	"github.com/nesemu/nesemu/hardware/cpu/execution"
	"github.com/nesemu/nesemu/hardware/cpu/instructions"
	"github.com/nesemu/nesemu/test"
)

func TestValidity(t *testing.T) {
	var r execution.Result

	test.ExpectSuccess(t, curated.Is(r.IsValid(), execution.NotFinalised))

	// LDA abs,X
	r = execution.Result{Defn: instructions.Lookup(0xbd), ByteCount: 3, Cycles: 4, Final: true}
	test.ExpectSuccess(t, r.IsValid())
	r.PageFault = true
	test.ExpectSuccess(t, curated.Is(r.IsValid(), execution.UnexpectedCycles))
	r.Cycles = 5
	test.ExpectSuccess(t, r.IsValid())
	r.ByteCount = 2
	test.ExpectSuccess(t, curated.Is(r.IsValid(), execution.UnexpectedBytes))

	// STA abs,X is never page sensitive
	r = execution.Result{Defn: instructions.Lookup(0x9d), ByteCount: 3, Cycles: 5, Final: true, PageFault: true}
	test.ExpectSuccess(t, curated.Is(r.IsValid(), execution.UnexpectedPage))

	// BNE
	r = execution.Result{Defn: instructions.Lookup(0xd0), ByteCount: 2, Cycles: 2, Final: true}
	test.ExpectSuccess(t, r.IsValid())
	r.BranchSuccess = true
	r.Cycles = 3
	test.ExpectSuccess(t, r.IsValid())
	r.PageFault = true
	test.ExpectFailure(t, r.IsValid())
	r.Cycles = 4
	test.ExpectSuccess(t, r.IsValid())
}

func TestInterruptValidity(t *testing.T) {
	r := execution.Result{Interrupt: execution.NMI, Cycles: 7, Final: true}
	test.ExpectSuccess(t, r.IsValid())
	r.Cycles = 6
	test.ExpectFailure(t, r.IsValid())

	r = execution.Result{Jammed: true, Cycles: 1, Final: true}
	test.ExpectSuccess(t, r.IsValid())
}
