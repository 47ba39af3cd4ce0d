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

// Package script adds Lua scripting to the monitor. Scripts can step the
// machine, inspect and alter memory and registers, raise interrupts, and
// issue monitor commands.
//
// The following functions are available to a script:
//
//	step([n])		step the machine n times (default 1). returns the number of cycles
//	peek(addr)		read memory without side effects
//	poke(addr, v)		write memory without side effects
//	reg(name)		value of the named register (a, x, y, sp, p, pc or cycles)
//	nmi()			request an NMI
//	irq(bool)		set the level of the IRQ line
//	reset()			reset the machine immediately
//	log(msg)		add an entry to the log
//	cmd(input)		run a monitor command
//
// The print() function writes to the monitor's terminal.
package script
