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

// Package hardware is the base package for the NES emulation. It and its
// sub-packages contain everything required for a headless emulation of the
// console's CPU and memory bus.
//
// The Machine type is the entry point for the emulation. It owns the CPU and
// the memory bus and drives other clocked devices in step with the CPU:
//
//	m := hardware.NewMachine()
//	err := m.Mem.Attach(0x8000, 0xffff, "program", dev)
//	m.AttachClocked(ppu, clocks.NTSC_PPU)
//	m.Reset()
//	err = m.Run(continueCheck)
//
// The state of the machine can be captured with Snapshot() and restored
// with Plumb(). A State can also be serialised with MarshalBinary(). Attached
// devices are not part of the state.
package hardware
