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

package memory_test

import (
	"testing"

	"github.com/nesemu/nesemu/curated"
	"github.com/nesemu/nesemu/hardware/memory"
	"github.com/nesemu/nesemu/test"
)

// register is a device with a read side effect
type register struct {
	value uint8
	reads int
}

func (r *register) Read(_ uint16) uint8 {
	r.reads++
	return r.value
}

func (r *register) Write(_ uint16, data uint8) {
	r.value = data
}

func TestRAMMirrors(t *testing.T) {
	mem := memory.NewMemory()

	mem.Write(0x0001, 0x42)
	test.ExpectEquality(t, mem.Read(0x0001), 0x42)
	test.ExpectEquality(t, mem.Read(0x0801), 0x42)
	test.ExpectEquality(t, mem.Read(0x1001), 0x42)
	test.ExpectEquality(t, mem.Read(0x1801), 0x42)

	mem.Write(0x1fff, 0x99)
	test.ExpectEquality(t, mem.Read(0x07ff), 0x99)
	test.ExpectEquality(t, mem.RAM.RAM[0x07ff], 0x99)
}

func TestOpenBus(t *testing.T) {
	mem := memory.NewMemory()

	// nothing is attached to the PPU area so reads return the last value on
	// the data bus
	mem.Write(0x0010, 0x5a)
	test.ExpectEquality(t, mem.Read(0x2002), 0x5a)

	mem.Write(0x0010, 0x00)
	mem.Read(0x0010)
	test.ExpectEquality(t, mem.Read(0x8000), 0x00)

	// writes to unmapped areas are harmless but still drive the data bus
	mem.Write(0x4000, 0x77)
	test.ExpectEquality(t, mem.OpenBus(), 0x77)
	test.ExpectEquality(t, mem.Read(0x5000), 0x77)
}

func TestDevices(t *testing.T) {
	mem := memory.NewMemory()

	rom, err := memory.NewFlatDevice(0x8000, []uint8{0x01, 0x02, 0x03, 0x04}, false)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, mem.Attach(0x8000, 0x8003, "rom", rom))

	test.ExpectEquality(t, mem.Read(0x8002), 0x03)

	// read-only device ignores writes but the debugger can poke it
	mem.Write(0x8002, 0xff)
	test.ExpectEquality(t, mem.Read(0x8002), 0x03)
	mem.Poke(0x8002, 0xff)
	test.ExpectEquality(t, mem.Read(0x8002), 0xff)

	// attachment errors
	err = mem.Attach(0x8003, 0x9000, "overlap", rom)
	test.ExpectSuccess(t, curated.Is(err, memory.AttachOverlap))
	err = mem.Attach(0x1000, 0x2000, "ram", rom)
	test.ExpectSuccess(t, curated.Is(err, memory.AttachRAM))
	err = mem.Attach(0x3000, 0x2000, "range", rom)
	test.ExpectSuccess(t, curated.Is(err, memory.AttachRange))

	// a device without a Peek() function is not read by Peek()
	reg := &register{value: 0x10}
	test.DemandSuccess(t, mem.Attach(0x2000, 0x3fff, "ppu", reg))
	test.ExpectEquality(t, mem.Read(0x2002), 0x10)
	test.ExpectEquality(t, reg.reads, 1)
	mem.Write(0x0000, 0x33)
	test.ExpectEquality(t, mem.Peek(0x2002), 0x33)
	test.ExpectEquality(t, reg.reads, 1)

	mem.Write(0x2001, 0x20)
	test.ExpectEquality(t, reg.value, 0x20)

	mem.Detach()
	test.ExpectEquality(t, mem.Read(0x8000), 0x20)
}

func TestSnapshot(t *testing.T) {
	mem := memory.NewMemory()
	mem.Write(0x0100, 0x01)

	s := mem.Snapshot()
	mem.Write(0x0100, 0x02)
	test.ExpectEquality(t, s.RAM.RAM[0x0100], 0x01)
	test.ExpectEquality(t, mem.Read(0x0100), 0x02)

	mem.Plumb(s)
	test.ExpectEquality(t, mem.Peek(0x0100), 0x01)
	test.ExpectEquality(t, mem.OpenBus(), 0x01)
}

func TestFlatDevice(t *testing.T) {
	_, err := memory.NewFlatDevice(0x8000, nil, false)
	test.ExpectSuccess(t, curated.Is(err, memory.FlatDeviceEmpty))
	_, err = memory.NewFlatDevice(0x8000, []uint8{}, true)
	test.ExpectSuccess(t, curated.Is(err, memory.FlatDeviceEmpty))

	// the device must not extend past the top of memory
	_, err = memory.NewFlatDevice(0xfffe, []uint8{0x01, 0x02, 0x03}, false)
	test.ExpectSuccess(t, curated.Is(err, memory.FlatDeviceSize))

	dev, err := memory.NewFlatDevice(0xfffe, []uint8{0x01, 0x02}, true)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, dev.Origin(), 0xfffe)
	test.ExpectEquality(t, dev.Memtop(), 0xffff)
	test.ExpectEquality(t, dev.Read(0xffff), 0x02)
	dev.Write(0xfffe, 0x10)
	test.ExpectEquality(t, dev.Peek(0xfffe), 0x10)

	// the data is copied
	data := []uint8{0xaa}
	dev, err = memory.NewFlatDevice(0x6000, data, false)
	test.DemandSuccess(t, err)
	data[0] = 0x00
	test.ExpectEquality(t, dev.Read(0x6000), 0xaa)
}
