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

// Package memory implements the memory bus as seen by the CPU. The only
// memory owned by the bus is the 2KiB of internal RAM, which is mirrored four
// times between 0x0000 and 0x1fff. Every other address is forwarded to the
// device that has been attached to that range with Attach().
//
// Reading an address that no device responds to returns the open bus value.
// That is, the last value that was driven onto the data bus by a read or a
// write. Writing to such an address has no effect. Neither case is an
// error.
//
// The memorymap package describes the areas of the address space. The
// cpubus package defines the interfaces that the CPU uses to access memory.
package memory
