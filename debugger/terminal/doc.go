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

// Package terminal defines the operations required for command-line
// interaction with the monitor.
//
// For flexibility, terminal interaction happens through the Terminal
// interface. There are two implementations of this interface: the
// PlainTerminal and the ColorTerminal, found respectively in the plainterm
// and colorterm sub-packages.
//
// Note that history is not handled by this package. The ColorTerminal keeps
// its own history of input.
//
// Input is tokenised and tab completed with the commandline sub-package.
package terminal
