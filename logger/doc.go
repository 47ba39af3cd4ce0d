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

// Package logger is the central log for the emulator. Entries are made up of
// a tag and a detail string, for example:
//
//	logger.Logf(logger.Allow, "cpu", "jammed by STP at %#04x", pc)
//
// The log is bounded and repeated entries are collapsed into one. The log can
// be echoed to an io.Writer as entries are added with SetEcho().
package logger
