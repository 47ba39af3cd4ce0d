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

package memorymap_test

import (
	"testing"

	"github.com/nesemu/nesemu/hardware/memory/memorymap"
	"github.com/nesemu/nesemu/test"
)

func TestMapAddress(t *testing.T) {
	var ma uint16
	var area memorymap.Area

	// RAM is mirrored every 2KiB
	for _, a := range []uint16{0x0123, 0x0923, 0x1123, 0x1923} {
		ma, area = memorymap.MapAddress(a)
		test.ExpectEquality(t, ma, 0x0123, a)
		test.ExpectEquality(t, area, memorymap.RAM, a)
	}

	ma, area = memorymap.MapAddress(0x1fff)
	test.ExpectEquality(t, ma, 0x07ff)
	test.ExpectEquality(t, area, memorymap.RAM)

	// other areas are unchanged
	ma, area = memorymap.MapAddress(0x2008)
	test.ExpectEquality(t, ma, 0x2008)
	test.ExpectEquality(t, area, memorymap.PPU)

	ma, area = memorymap.MapAddress(0x4016)
	test.ExpectEquality(t, ma, 0x4016)
	test.ExpectEquality(t, area, memorymap.IO)

	ma, area = memorymap.MapAddress(0x4020)
	test.ExpectEquality(t, ma, 0x4020)
	test.ExpectEquality(t, area, memorymap.Cartridge)

	test.ExpectSuccess(t, memorymap.IsArea(0xffff, memorymap.Cartridge))
	test.ExpectFailure(t, memorymap.IsArea(0x3fff, memorymap.Cartridge))
}
