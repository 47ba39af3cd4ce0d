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

// Package version reports the build version of the emulator. The number is
// set by the linker for release builds, for example:
//
//	go build -ldflags "-X github.com/nesemu/nesemu/version.number=v0.1.0"
//
// Builds without a number fall back to the VCS information recorded by the
// Go toolchain.
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is used when referring to the application.
const ApplicationName = "nesemu"

// set by the linker
var number string

var (
	version  string
	revision string
)

// Version returns the version string, the revision string and whether this is
// a numbered release.
func Version() (string, string, bool) {
	return version, revision, number != "" && version == number
}

// String returns a single line summary suitable for printing.
func String() string {
	v, r, release := Version()
	if release {
		return fmt.Sprintf("%s %s", ApplicationName, v)
	}
	return fmt.Sprintf("%s %s (%s)", ApplicationName, v, r)
}

func init() {
	var vcs bool
	var modified bool

	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				revision = s.Value
			case "vcs.modified":
				modified = s.Value == "true"
			}
		}
	}

	switch {
	case revision == "":
		revision = "no revision information"
	case modified:
		revision += "+dirty"
	}

	switch {
	case number != "":
		version = number
	case vcs:
		version = "unreleased"
	default:
		version = "local"
	}
}
