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

// Package memorymap describes the layout of the 16 bit address space as seen
// by the CPU. Only the internal RAM is emulated by the memory package, the
// other areas are owned by devices that are attached to the memory bus.
package memorymap

import (
	"fmt"
	"strings"
)

// Area represents the different areas of memory.
type Area int

// The different memory areas in the console.
const (
	Undefined Area = iota
	RAM
	PPU
	IO
	Cartridge
)

func (a Area) String() string {
	switch a {
	case RAM:
		return "RAM"
	case PPU:
		return "PPU"
	case IO:
		return "APU/IO"
	case Cartridge:
		return "Cartridge"
	}
	return "undefined"
}

// The origin and memory top for each area of memory. Checking which area an
// address falls within and forcing the address into the normalised range is
// handled by the MapAddress() function.
const (
	OriginRAM  = uint16(0x0000)
	MemtopRAM  = uint16(0x1fff)
	OriginPPU  = uint16(0x2000)
	MemtopPPU  = uint16(0x3fff)
	OriginIO   = uint16(0x4000)
	MemtopIO   = uint16(0x401f)
	OriginCart = uint16(0x4020)
	MemtopCart = uint16(0xffff)
)

// The internal RAM is 2KiB but it appears four times in the RAM area. The
// mask drags any address in the RAM area to the primary mirror.
const (
	SizeRAM = 0x0800
	MaskRAM = uint16(SizeRAM - 1)
)

// The PPU registers are eight bytes mirrored throughout the PPU area.
const MaskPPU = uint16(0x0007)

// ZeroPage is the last address of the zero page.
const ZeroPage = uint16(0x00ff)

// MapAddress returns the area that the address falls in. Addresses in the
// RAM area are normalised to the primary mirror. Addresses in other areas
// are returned unchanged because the device that owns that area is
// responsible for how it decodes the address.
func MapAddress(address uint16) (uint16, Area) {
	switch {
	case address <= MemtopRAM:
		return address & MaskRAM, RAM
	case address <= MemtopPPU:
		return address, PPU
	case address <= MemtopIO:
		return address, IO
	}
	return address, Cartridge
}

// IsArea returns true if the address is in the specificied area.
func IsArea(address uint16, area Area) bool {
	_, a := MapAddress(address)
	return area == a
}

// Summary returns a single multiline string detailing all the areas in memory.
func Summary() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%04x -> %04x\t%s (mirror mask %04x)\n", OriginRAM, MemtopRAM, RAM, MaskRAM))
	s.WriteString(fmt.Sprintf("%04x -> %04x\t%s\n", OriginPPU, MemtopPPU, PPU))
	s.WriteString(fmt.Sprintf("%04x -> %04x\t%s\n", OriginIO, MemtopIO, IO))
	s.WriteString(fmt.Sprintf("%04x -> %04x\t%s\n", OriginCart, MemtopCart, Cartridge))
	return s.String()
}
