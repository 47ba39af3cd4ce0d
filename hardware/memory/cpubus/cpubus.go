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

// Package cpubus defines the interface between the CPU and the memory system
// of the console. It also defines the location of the interrupt vectors.
package cpubus

// Memory defines the operations for the memory system when accessed from the
// CPU. The Memory type in the memory package implements this interface and
// maps the read/write address to the correct device, meaning that CPU access
// need not care which part of memory it is writing to.
//
// There is no error return. An address that is not claimed by any device
// results in the open bus value being returned.
type Memory interface {
	Read(address uint16) uint8
	Write(address uint16, data uint8)
}

// Peeker is implemented by memory that can be read without side effects. A
// Peek() should never change the state of the emulation. It is used by the
// disassembly and debugging tools.
type Peeker interface {
	Peek(address uint16) uint8
}

// Poker is implemented by memory that can be written to by debugging tools.
// A Poke() does not disturb any bus state that a Write() would.
type Poker interface {
	Poke(address uint16, data uint8)
}

// The addresses of the three interrupt vectors. Each vector is a little
// endian 16 bit address.
const (
	NMI   = uint16(0xfffa)
	Reset = uint16(0xfffc)
	IRQ   = uint16(0xfffe)
)

// BRK shares the IRQ vector.
const BRK = IRQ
