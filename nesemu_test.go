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

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nesemu/nesemu/modalflag"
	"github.com/nesemu/nesemu/test"
)

// 8000 LDA #$01
// 8002 STA $00
// 8004 INC $00
// 8006 JMP $8004
var program = []uint8{0xa9, 0x01, 0x85, 0x00, 0xe6, 0x00, 0x4c, 0x04, 0x80}

func writeProgram(t *testing.T, data []uint8) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), "program.bin")
	test.DemandSuccess(t, os.WriteFile(fn, data, 0o600))
	return fn
}

func newModes(w *test.CompareWriter, args ...string) *modalflag.Modes {
	md := &modalflag.Modes{Output: w}
	md.NewArgs(args)
	return md
}

func TestLoadProgram(t *testing.T) {
	fn := writeProgram(t, program)

	origin := &modalflag.Address{Value: 0xc000}
	entry := &modalflag.Address{Value: 0xc000, Changed: true}
	m, err := loadProgram(fn, origin, entry)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, m.CPU.PC.Address(), 0xc000)
	test.ExpectEquality(t, m.Mem.Peek(0xc000), 0xa9)
	test.ExpectEquality(t, m.Mem.Peek(0xfffd), 0xc0)

	// without an entry point the reset vector is taken from the program
	_, err = loadProgram(fn, origin, nil)
	test.ExpectSuccess(t, err)

	// program doesn't fit
	_, err = loadProgram(fn, &modalflag.Address{Value: 0xfffc}, nil)
	test.ExpectFailure(t, err)

	// devices cannot be attached to the RAM area
	_, err = loadProgram(fn, &modalflag.Address{Value: 0x0000}, nil)
	test.ExpectFailure(t, err)

	_, err = loadProgram(writeProgram(t, nil), origin, nil)
	test.ExpectFailure(t, err)

	_, err = loadProgram(filepath.Join(t.TempDir(), "missing.bin"), origin, nil)
	test.ExpectFailure(t, err)
}

func TestRun(t *testing.T) {
	w := &test.CompareWriter{}
	fn := writeProgram(t, program)

	err := run(newModes(w, "-entry", "8000", "-cycles", "1000", fn), false)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.HasPrefix(w.String(), "100"))
	test.ExpectSuccess(t, w.Contains("of NTSC speed"))

	w.Clear()
	err = run(newModes(w), false)
	test.ExpectFailure(t, err)

	err = run(newModes(w, fn, fn), false)
	test.ExpectFailure(t, err)
}

func TestRunJam(t *testing.T) {
	w := &test.CompareWriter{}
	fn := writeProgram(t, []uint8{0xea, 0x02})

	err := run(newModes(w, "-entry", "$8000", fn), false)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, w.Lines()[0], "CPU jammed at $8001")
}

func TestTrace(t *testing.T) {
	w := &test.CompareWriter{}
	fn := writeProgram(t, program)

	err := run(newModes(w, "-entry", "8000", "-cycles", "10", fn), true)
	test.DemandSuccess(t, err)

	lines := w.Lines()
	test.DemandEquality(t, len(lines), 3)
	test.ExpectSuccess(t, strings.HasPrefix(lines[0], "8000  A9 01     LDA #$01"))
	test.ExpectSuccess(t, strings.HasSuffix(lines[0], "CYC:0"))
	test.ExpectSuccess(t, strings.HasPrefix(lines[1], "8002  85 00     STA $00"))
	test.ExpectSuccess(t, strings.HasSuffix(lines[1], "A:01 X:00 Y:00 P:34 SP:FD CYC:2"))
	test.ExpectSuccess(t, strings.HasSuffix(lines[2], "CYC:5"))
}

func TestDisasm(t *testing.T) {
	w := &test.CompareWriter{}
	fn := writeProgram(t, program)

	err := disasm(newModes(w, "-count", "4", "-bytecode", fn))
	test.DemandSuccess(t, err)

	lines := w.Lines()
	test.DemandEquality(t, len(lines), 4)
	test.ExpectSuccess(t, strings.HasPrefix(lines[0], "$8000 a9 01"))
	test.ExpectSuccess(t, strings.Contains(lines[3], "JMP $8004"))

	// disassemble to the top of memory
	w.Clear()
	err = disasm(newModes(w, "-start", "fff8", fn))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(w.Lines()), 4)
}

func TestVersion(t *testing.T) {
	w := &test.CompareWriter{}
	test.DemandSuccess(t, showVersion(newModes(w)))
	test.DemandEquality(t, len(w.Lines()), 1)
	test.ExpectSuccess(t, strings.HasPrefix(w.Lines()[0], "nesemu "))

	w.Clear()
	test.DemandSuccess(t, showVersion(newModes(w, "-revision")))
	test.ExpectEquality(t, len(w.Lines()), 2)
}
