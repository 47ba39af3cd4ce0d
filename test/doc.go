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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The Expect functions report a test error and return false if the
// expectation is not met. The Demand functions are the same except that a
// failure is fatal to the test.
//
// It is worth describing how ExpectFailure() and ExpectSuccess() handle the
// nil type because it is not obvious. The nil type is considered a success.
// This is because of how errors usually work (nil to indicate no error).
//
// The optional tags argument to all the Expect and Demand functions is
// prepended to the failure message. This is useful when testing in a loop.
//
// The CompareWriter type implements the io.Writer interface and should be
// used to capture output.
package test
