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

package debugger

import (
	"fmt"
	"slices"
	"strings"
)

// breakpoints is a set of addresses at which the RUN and STEP commands will
// halt. a breakpoint is matched against the program counter at an
// instruction boundary.
type breakpoints struct {
	addresses map[uint16]bool
}

func newBreakpoints() *breakpoints {
	return &breakpoints{
		addresses: make(map[uint16]bool),
	}
}

func (bp *breakpoints) String() string {
	if len(bp.addresses) == 0 {
		return "no breakpoints"
	}
	s := strings.Builder{}
	for i, a := range bp.list() {
		if i > 0 {
			s.WriteString("\n")
		}
		s.WriteString(fmt.Sprintf("%d: $%04x", i, a))
	}
	return s.String()
}

// toggle breakpoint at address. returns true if the breakpoint has been
// added and false if it has been removed.
func (bp *breakpoints) toggle(address uint16) bool {
	if bp.addresses[address] {
		delete(bp.addresses, address)
		return false
	}
	bp.addresses[address] = true
	return true
}

func (bp *breakpoints) clear() {
	clear(bp.addresses)
}

// list of addresses in ascending order.
func (bp *breakpoints) list() []uint16 {
	l := make([]uint16, 0, len(bp.addresses))
	for a := range bp.addresses {
		l = append(l, a)
	}
	slices.Sort(l)
	return l
}

func (bp *breakpoints) check(address uint16) bool {
	return bp.addresses[address]
}
