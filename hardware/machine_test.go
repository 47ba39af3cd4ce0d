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

package hardware_test

import (
	"testing"

	"github.com/nesemu/nesemu/curated"
	"github.com/nesemu/nesemu/debugger/govern"
	"github.com/nesemu/nesemu/hardware"
	"github.com/nesemu/nesemu/hardware/cpu/execution"
	"github.com/nesemu/nesemu/hardware/memory"
	"github.com/nesemu/nesemu/test"
)

// program loaded at 0x8000
//
//	8000 LDA #$01
//	8002 STA $00
//	8004 INC $00
//	8006 JMP $8004
//
//	9000 LDA #$ff
//	9002 RTI
func newMachine(t *testing.T) *hardware.Machine {
	t.Helper()

	data := make([]uint8, 0x8000)
	copy(data, []uint8{0xa9, 0x01, 0x85, 0x00, 0xe6, 0x00, 0x4c, 0x04, 0x80})
	copy(data[0x1000:], []uint8{0xa9, 0xff, 0x40})

	// NMI and reset vectors
	copy(data[0x7ffa:], []uint8{0x00, 0x90, 0x00, 0x80})

	m := hardware.NewMachine()
	dev, err := memory.NewFlatDevice(0x8000, data, false)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, m.Mem.Attach(dev.Origin(), dev.Memtop(), "program", dev))
	m.PowerOn()

	return m
}

type counter struct {
	ticks int
}

func (c *counter) Step() {
	c.ticks++
}

// raises an NMI after a number of ticks
type nmiSource struct {
	m     *hardware.Machine
	ticks int
	after int
}

func (s *nmiSource) Step() {
	s.ticks++
	if s.ticks == s.after {
		s.m.RequestNMI()
	}
}

func TestStep(t *testing.T) {
	m := newMachine(t)
	test.ExpectEquality(t, m.CPU.PC.Address(), 0x8000)

	c := &counter{}
	m.AttachClocked(c, 3)

	cycles, err := m.Step()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cycles, 2)
	test.ExpectEquality(t, c.ticks, 6)

	cycles, err = m.Step()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cycles, 3)
	test.ExpectEquality(t, c.ticks, 15)
	test.ExpectEquality(t, m.Mem.Peek(0x0000), 0x01)

	test.ExpectEquality(t, m.Steps, 2)
}

func TestClockedInterrupt(t *testing.T) {
	m := newMachine(t)
	src := &nmiSource{m: m, after: 10}
	m.AttachClocked(src, 1)

	// LDA, STA and INC take ten cycles between them
	for range 3 {
		_, err := m.Step()
		test.DemandSuccess(t, err)
	}

	_, err := m.Step()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, m.CPU.LastResult.Interrupt, execution.NMI)
	test.ExpectEquality(t, m.CPU.PC.Address(), 0x9000)

	// LDA #$ff; RTI
	_, err = m.Step()
	test.DemandSuccess(t, err)
	_, err = m.Step()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, m.CPU.PC.Address(), 0x8006)
	test.ExpectEquality(t, m.CPU.A.Value(), 0xff)
}

func TestRun(t *testing.T) {
	m := newMachine(t)

	err := m.Run(func() (govern.State, error) {
		if m.Mem.Peek(0x0000) == 0x05 {
			return govern.Ending, nil
		}
		return govern.Running, nil
	})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, m.Mem.Peek(0x0000), 0x05)

	start := m.CPU.Cycles
	err = m.RunForCycles(100, nil)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, m.CPU.Cycles >= start+100)
	test.ExpectSuccess(t, m.CPU.Cycles < start+100+7)

	err = m.Run(func() (govern.State, error) {
		return govern.Rewinding, nil
	})
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, hardware.UnsupportedState))
}

func TestSnapshot(t *testing.T) {
	m := newMachine(t)

	for range 4 {
		_, err := m.Step()
		test.DemandSuccess(t, err)
	}

	s := m.Snapshot()
	pc := m.CPU.PC.Address()
	v := m.Mem.Peek(0x0000)

	for range 10 {
		_, err := m.Step()
		test.DemandSuccess(t, err)
	}
	test.ExpectInequality(t, m.Mem.Peek(0x0000), v)

	// the snapshot is not changed by the running machine
	test.ExpectEquality(t, s.CPU.PC.Address(), pc)
	test.ExpectEquality(t, s.Mem.RAM.RAM[0], v)

	m.Plumb(s)
	test.ExpectEquality(t, m.CPU.PC.Address(), pc)
	test.ExpectEquality(t, m.Mem.Peek(0x0000), v)

	// the attached program is still present after plumbing
	_, err := m.Step()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, m.CPU.LastResult.Defn.Operator.String(), "INC")

	// the machine is not changed by the running snapshot
	test.ExpectEquality(t, s.CPU.PC.Address(), pc)
}

func TestSerialisation(t *testing.T) {
	m := newMachine(t)
	for range 5 {
		_, err := m.Step()
		test.DemandSuccess(t, err)
	}
	m.RequestIRQ(true)
	m.Mem.Poke(0x0700, 0xaa)

	data, err := m.Snapshot().MarshalBinary()
	test.DemandSuccess(t, err)

	m2 := newMachine(t)
	s := m2.Snapshot()
	test.DemandSuccess(t, s.UnmarshalBinary(data))
	m2.Plumb(s)

	test.ExpectEquality(t, m2.CPU.String(), m.CPU.String())
	test.ExpectEquality(t, m2.CPU.Cycles, m.CPU.Cycles)
	test.ExpectEquality(t, m2.Mem.Peek(0x0000), m.Mem.Peek(0x0000))
	test.ExpectEquality(t, m2.Mem.Peek(0x0700), 0xaa)

	// mirrored RAM
	test.ExpectEquality(t, m2.Mem.Peek(0x1f00), 0xaa)

	_, _, irq := m2.CPU.Pending()
	test.ExpectSuccess(t, irq)

	// both machines continue identically
	_, err = m.Step()
	test.DemandSuccess(t, err)
	_, err = m2.Step()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, m2.CPU.String(), m.CPU.String())

	// corrupted data
	bad := append([]byte{}, data...)
	bad[4] = hardware.StateVersion + 1
	err = s.UnmarshalBinary(bad)
	test.ExpectSuccess(t, curated.Is(err, hardware.StateVersionMismatch))

	err = s.UnmarshalBinary([]byte("GARBAGE"))
	test.ExpectSuccess(t, curated.Is(err, hardware.StateMagic))

	err = s.UnmarshalBinary(data[:100])
	test.ExpectSuccess(t, curated.Is(err, hardware.StateLength))
}
