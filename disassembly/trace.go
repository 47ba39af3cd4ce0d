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

package disassembly

import (
	"fmt"
	"strings"

	"github.com/nesemu/nesemu/hardware/cpu"
)

// Trace returns the entry as a single line in the nestest log format. The
// register values are taken from the CPU, which should not yet have executed
// the instruction. For example:
//
//	C000  4C F5 C5  JMP $C5F5                       A:00 X:00 Y:00 P:24 SP:FD CYC:7
//
// Undocumented instructions are marked with an asterisk before the operator.
func (e *Entry) Trace(mc *cpu.CPU) string {
	b := make([]string, len(e.Data))
	for i, v := range e.Data {
		b[i] = fmt.Sprintf("%02X", v)
	}

	marker := " "
	if e.Defn.Undocumented {
		marker = "*"
	}

	instruction := e.Operator
	if e.Operand != "" {
		instruction = fmt.Sprintf("%s %s", e.Operator, strings.ToUpper(e.Operand))
	}

	return fmt.Sprintf("%04X  %-8s %s%-31s A:%02X X:%02X Y:%02X P:%02X SP:%02X CYC:%d",
		e.Addr, strings.Join(b, " "), marker, instruction,
		mc.A.Value(), mc.X.Value(), mc.Y.Value(), mc.Status.Value(), mc.SP.Value(),
		mc.Cycles)
}
