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

// Package disassembly turns the contents of memory into a human readable
// listing of 6502 instructions.
//
// Disassembly is performed by a linear sweep of a range of memory. Every
// byte is assumed to be the start of an instruction unless it is consumed by
// the instruction that precedes it. Memory is read with the Peek() function
// so disassembly never has side effects on the emulation.
//
// Single instructions can be decoded with the Decode() function. The Trace()
// function of the resulting Entry produces a line in the format used by the
// well known nestest log, suitable for comparing the emulation with other
// emulators.
package disassembly
