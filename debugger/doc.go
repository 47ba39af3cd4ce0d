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

// Package debugger implements a machine monitor for the emulated CPU. The
// monitor accepts commands from a terminal.Terminal implementation and
// controls a hardware.Machine instance.
//
// Commands are case-insensitive. Addresses and values are in hexadecimal
// and can be prefixed with $ or 0x. Counts are in decimal. The HELP command
// lists the available commands.
//
// The monitor can also be driven by a Lua script. See the script
// sub-package for details.
package debugger
