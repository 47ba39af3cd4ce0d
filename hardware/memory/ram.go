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

package memory

import (
	"encoding/hex"

	"github.com/nesemu/nesemu/hardware/memory/memorymap"
)

// RAM represents the 2KiB of internal RAM in the console.
type RAM struct {
	RAM []uint8
}

// NewRAM is the preferred method of initialisation for the RAM memory area.
func NewRAM() *RAM {
	return &RAM{
		RAM: make([]uint8, memorymap.SizeRAM),
	}
}

// Snapshot creates a copy of RAM in its current state.
func (ram *RAM) Snapshot() *RAM {
	n := *ram
	n.RAM = make([]uint8, len(ram.RAM))
	copy(n.RAM, ram.RAM)
	return &n
}

// Reset contents of RAM.
func (ram *RAM) Reset() {
	clear(ram.RAM)
}

func (ram RAM) String() string {
	return hex.Dump(ram.RAM)
}

// Read from RAM. The address can be any address in the RAM area. Mirrors are
// handled automatically.
func (ram RAM) Read(address uint16) uint8 {
	return ram.RAM[address&memorymap.MaskRAM]
}

// Write to RAM. The address can be any address in the RAM area. Mirrors are
// handled automatically.
func (ram *RAM) Write(address uint16, data uint8) {
	ram.RAM[address&memorymap.MaskRAM] = data
}
