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

// Package curated is a helper package for the plain Go language error type.
// Curated errors are created with the Errorf() function. It is similar to the
// Errorf() function in the fmt package but the formatting pattern is kept
// so that it can be tested for later.
//
// Patterns are usually declared as exported constants by the package that
// returns the error. For example, the cpu package declares:
//
//	const UnimplementedInstruction = "cpu: unimplemented instruction (%#02x) at (%#04x)"
//
// and a caller can test for the error with:
//
//	if curated.Is(err, cpu.UnimplementedInstruction) {
//		...
//	}
//
// The Has() function is similar but tests the entire error chain. A chain is
// formed when a curated error is one of the values given to another call of
// Errorf():
//
//	err = curated.Errorf("machine: %v", err)
//
// In this example, curated.Is(err, cpu.UnimplementedInstruction) is false but
// curated.Has(err, cpu.UnimplementedInstruction) is true.
//
// The Error() function implementation for curated errors ensures that the
// error chain is normalised. Specifically, that adjacent duplicate parts are
// removed. A part of an error message is the text between the ": " sequence.
//
// IsAny() returns true if the error is a curated error of any pattern. It is
// a useful way of telling errors generated by the emulation from errors
// generated by the environment (eg. a missing file).
package curated
