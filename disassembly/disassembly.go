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
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/nesemu/nesemu/hardware/memory/cpubus"
)

// Disassembly is a linear listing of instructions in a range of memory.
type Disassembly struct {
	Entries []*Entry

	// index into Entries by address
	index map[uint16]int

	fields fields
}

// FromMemory disassembles memory from start to end inclusive. The final
// instruction may extend beyond the end address. Disassembly stops if the
// address wraps around the top of memory.
func FromMemory(mem cpubus.Peeker, start uint16, end uint16) *Disassembly {
	dsm := &Disassembly{
		index: make(map[uint16]int),
	}

	address := start
	for address <= end {
		e := Decode(mem, address)
		dsm.add(e)

		next := e.Next()
		if next <= address {
			break
		}
		address = next
	}

	return dsm
}

// FromAddress disassembles count instructions starting at address. Unlike
// FromMemory() the disassembly will wrap around the top of memory.
func FromAddress(mem cpubus.Peeker, address uint16, count int) *Disassembly {
	dsm := &Disassembly{
		index: make(map[uint16]int),
	}

	for range count {
		e := Decode(mem, address)
		dsm.add(e)
		address = e.Next()
	}

	return dsm
}

func (dsm *Disassembly) add(e *Entry) {
	dsm.index[e.Addr] = len(dsm.Entries)
	dsm.Entries = append(dsm.Entries, e)
	dsm.fields.update(e)
}

// Find the entry that starts at the address. Returns false if no entry
// starts at the address. This can happen if the address is in the middle of
// an instruction.
func (dsm *Disassembly) Find(address uint16) (*Entry, bool) {
	i, ok := dsm.index[address]
	if !ok {
		return nil, false
	}
	return dsm.Entries[i], true
}

// WriteAttr controls what is printed by the Write*() functions.
type WriteAttr struct {
	ByteCode bool
	Cycles   bool
	Notes    bool
}

// Write the entire disassembly to io.Writer.
func (dsm *Disassembly) Write(output io.Writer, attr WriteAttr) error {
	for _, e := range dsm.Entries {
		if err := dsm.WriteLine(output, attr, e); err != nil {
			return err
		}
	}
	return nil
}

// WriteLine writes a single entry to io.Writer.
func (dsm *Disassembly) WriteLine(output io.Writer, attr WriteAttr, e *Entry) error {
	b := &bytes.Buffer{}

	b.WriteString(dsm.GetField(FldAddress, e))
	b.WriteString(" ")

	if attr.ByteCode {
		b.WriteString(dsm.GetField(FldBytecode, e))
		b.WriteString(" ")
	}

	b.WriteString(dsm.GetField(FldOperator, e))
	b.WriteString(" ")
	b.WriteString(dsm.GetField(FldOperand, e))

	if attr.Cycles {
		b.WriteString(" ")
		b.WriteString(dsm.GetField(FldCycles, e))
	}

	if attr.Notes && e.Notes != "" {
		b.WriteString(" ")
		b.WriteString(dsm.GetField(FldNotes, e))
	}

	s := strings.TrimRight(b.String(), " ")
	_, err := fmt.Fprintln(output, s)
	return err
}

// GrepScope limits the scope of the search.
type GrepScope int

// List of available scopes.
const (
	GrepOperator GrepScope = iota
	GrepOperand
	GrepAll
)

// Grep searches the disassembly for the specified search string. Matching
// lines are written to output.
func (dsm *Disassembly) Grep(output io.Writer, scope GrepScope, search string, caseSensitive bool) error {
	var s string

	if !caseSensitive {
		search = strings.ToUpper(search)
	}

	for _, e := range dsm.Entries {
		line := &bytes.Buffer{}
		err := dsm.WriteLine(line, WriteAttr{}, e)
		if err != nil {
			return err
		}

		// limit scope of grep to the correct entry field
		switch scope {
		case GrepOperator:
			s = e.Operator
		case GrepOperand:
			s = e.Operand
		case GrepAll:
			s = line.String()
		}

		if !caseSensitive {
			s = strings.ToUpper(s)
		}

		if strings.Contains(s, search) {
			_, err = output.Write(line.Bytes())
			if err != nil {
				return err
			}
		}
	}

	return nil
}
