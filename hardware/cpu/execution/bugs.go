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

// Bug describes a quirk of the 6502 addressing logic that was triggered
// during the execution of an instruction. The quirks are emulated faithfully
// but it is useful to know when they have happened.
type Bug string

// List of 6502 bugs.
const (
	NoBug                    Bug = ""
	JmpIndirectAddressingBug Bug = "indirect jump page bug"
	IndexedIndirectWrapBug   Bug = "indexed indirect zero page wrap"
	IndirectIndexedWrapBug   Bug = "indirect indexed zero page wrap"
	ZeroPageIndexBug         Bug = "zero page index wrap"
	UnstableResultBug        Bug = "unstable opcode"
)
