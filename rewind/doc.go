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

// Package rewind keeps a history of machine states so that the emulation can
// be wound back to an earlier point.
//
// A snapshot of the machine is taken every N calls to Check(). The oldest
// snapshots are forgotten once the history is full. Snapshots are only ever
// taken at instruction boundaries.
package rewind
