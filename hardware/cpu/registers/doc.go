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

// Package registers implements the three types of registers found in the
// 2A03: the 8 bit general purpose registers (A, X and Y), the 16 bit program
// counter and the status register. The stack pointer is an 8 bit register
// with additional methods for addressing the stack page.
//
// The 8 bit registers implement the ALU operations used by the CPU's
// instruction set. The register itself does not update the status register.
// Setting of flags is done directly by the CPU. For instance, we might have
// this sequence of function calls:
//
//	a.Load(10)
//	a.Subtract(11, true)
//	sr.Zero = a.IsZero()
//
// In this case, the zero flag in the status register will be false.
//
// The program counter by comparison is 16 bits wide and defines only the load
// and add operations.
package registers
