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

// StackPage is the page of memory that the stack occupies.
const StackPage = uint16(0x0100)

// StackPointer is an 8 bit register that indexes into the stack page. It is
// otherwise identical to the Register type and can be loaded and
// transferred to/from the X register as normal.
type StackPointer struct {
	Register
}

// NewStackPointer is the preferred method of initialisation for StackPointer.
func NewStackPointer(val uint8) StackPointer {
	return StackPointer{Register: NewRegister(val, "SP")}
}

// Address returns the location in the stack page pointed to by the stack
// pointer.
func (sp StackPointer) Address() uint16 {
	return StackPage | uint16(sp.value)
}

// Push returns the address that a pushed value should be written to and
// moves the stack pointer down by one. The stack pointer wraps within the
// stack page.
func (sp *StackPointer) Push() uint16 {
	a := sp.Address()
	sp.value--
	return a
}

// Pull moves the stack pointer up by one and returns the address that the
// pulled value should be read from.
func (sp *StackPointer) Pull() uint16 {
	sp.value++
	return sp.Address()
}
