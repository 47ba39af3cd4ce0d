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

package modalflag

import (
	"fmt"
	"io"
	"strings"
)

// helpWriter collects the output of the flag package so that it can be
// amended with mode information before being printed.
type helpWriter struct {
	buffer strings.Builder
}

// Write implements the io.Writer interface.
func (hw *helpWriter) Write(p []byte) (int, error) {
	return hw.buffer.Write(p)
}

func (hw *helpWriter) help(output io.Writer, path string, subModes []string, additionalHelp string) {
	if output == nil {
		return
	}

	// the flag package output begins with a "Usage:" banner line
	banner, flags, _ := strings.Cut(hw.buffer.String(), "\n")

	if flags == "" && len(subModes) == 0 && additionalHelp == "" {
		if path == "" {
			fmt.Fprintln(output, "No help available")
		} else {
			fmt.Fprintf(output, "No help available for %s\n", path)
		}
		return
	}

	if path == "" {
		fmt.Fprintln(output, banner)
	} else {
		fmt.Fprintf(output, "%s for %s mode\n", banner, path)
	}

	io.WriteString(output, flags)

	if len(subModes) > 0 {
		if flags != "" {
			fmt.Fprintln(output)
		}
		fmt.Fprintf(output, "  available sub-modes: %s\n", strings.Join(subModes, ", "))
		fmt.Fprintf(output, "    default: %s\n", subModes[0])
	}

	if additionalHelp != "" {
		fmt.Fprintf(output, "\n%s\n", additionalHelp)
	}
}
