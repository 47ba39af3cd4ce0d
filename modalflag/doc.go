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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// Unlike flag.FlagSet, the arguments are given to NewArgs() and Parse() is
// called with no arguments. This allows the same argument list to be parsed
// in layers, one layer per mode:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "DEBUG")
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		cycles := md.AddUint64("cycles", 0, "number of cycles to run for")
//		...
//	}
//
// The first sub-mode is the default mode and is selected if the next
// argument is not one of the sub-modes. Sub-mode comparisons are case
// insensitive.
//
// Once the arguments for a mode have been parsed, non-flag arguments can be
// retrieved with the RemainingArgs() or GetArg() function.
//
// Help is requested in the usual way with the -help or -h flag. The help
// message lists the flags and the sub-modes for the current mode and is
// written to the Output field of the Modes type.
package modalflag
