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

package cpu

// push writes the value to the stack and then decrements the stack pointer.
func (mc *CPU) push(value uint8) {
	mc.mem.Write(mc.SP.Push(), value)
}

// pull increments the stack pointer and then reads the value from the stack.
func (mc *CPU) pull() uint8 {
	return mc.mem.Read(mc.SP.Pull())
}

// pushPC pushes the high byte of the address followed by the low byte.
func (mc *CPU) pushPC(address uint16) {
	mc.push(uint8(address >> 8))
	mc.push(uint8(address))
}

// pullPC is the inverse of pushPC.
func (mc *CPU) pullPC() uint16 {
	lo := mc.pull()
	hi := mc.pull()
	return (uint16(hi) << 8) | uint16(lo)
}
