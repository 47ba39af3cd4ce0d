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

package logger

// Permission is checked by every call to Log() and Logf(). An emulation
// component that is being run silently, for example while a machine state is
// being replayed, can refuse the log entry by returning false.
type Permission interface {
	AllowLogging() bool
}

type allowAlways struct{}

func (allowAlways) AllowLogging() bool {
	return true
}

// Allow can be used by callers that have no reason to suppress logging.
var Allow Permission = allowAlways{}
