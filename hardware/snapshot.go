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

package hardware

import (
	"bytes"

	"github.com/nesemu/nesemu/curated"
	"github.com/nesemu/nesemu/hardware/cpu"
	"github.com/nesemu/nesemu/hardware/memory"
	"github.com/nesemu/nesemu/hardware/memory/memorymap"
)

// Sentinal errors returned by State.UnmarshalBinary().
const (
	StateVersionMismatch = "state: version mismatch (%d instead of %d)"
	StateMagic           = "state: not a saved state"
	StateLength          = "state: wrong length (%d bytes instead of %d)"
)

var stateMagic = []byte("NESM")

// StateVersion is incremented whenever the serialised format changes.
const StateVersion = 1

// layout of the serialised state
const (
	stateHeader = 6
	stateLength = stateHeader + cpu.StateSize + memorymap.SizeRAM
)

// State stores the machine sub-systems. It is produced by the Snapshot()
// function and can be restored with the Plumb() function.
//
// Note in particular that attached devices are not part of the snapshot.
type State struct {
	CPU *cpu.CPU
	Mem *memory.Memory
}

// Snapshot creates a copy of a previously snapshotted machine State.
func (s *State) Snapshot() *State {
	return &State{
		CPU: s.CPU.Snapshot(),
		Mem: s.Mem.Snapshot(),
	}
}

// Snapshot the state of the machine.
func (m *Machine) Snapshot() *State {
	return &State{
		CPU: m.CPU.Snapshot(),
		Mem: m.Mem.Snapshot(),
	}
}

// Plumb a previously snapshotted state into the machine.
func (m *Machine) Plumb(state *State) {
	if state == nil {
		panic("machine: cannot plumb in a nil state")
	}

	// take another snapshot of the CPU before plumbing. the machine must not
	// change what is stored in the State
	m.CPU = state.CPU.Snapshot()
	m.CPU.Plumb(m.Mem)

	// the memory bus keeps its attached devices. only RAM and the bus
	// latches are restored
	m.Mem.Plumb(state.Mem)
}

// MarshalBinary implements the encoding.BinaryMarshaler interface. The
// serialised state is the register file, the interrupt lines, the open bus
// value and the internal RAM.
func (s *State) MarshalBinary() ([]byte, error) {
	c, err := s.CPU.MarshalBinary()
	if err != nil {
		return nil, err
	}

	b := &bytes.Buffer{}
	b.Grow(stateLength)
	b.Write(stateMagic)
	b.WriteByte(StateVersion)
	b.WriteByte(s.Mem.OpenBus())
	b.Write(c)
	b.Write(s.Mem.RAM.RAM)

	return b.Bytes(), nil
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface. The
// State must have been created with a memory bus and a CPU. For example, by
// a previous call to Machine.Snapshot().
func (s *State) UnmarshalBinary(data []byte) error {
	if len(data) < stateHeader || !bytes.Equal(data[:len(stateMagic)], stateMagic) {
		return curated.Errorf(StateMagic)
	}

	if data[4] != StateVersion {
		return curated.Errorf(StateVersionMismatch, data[4], StateVersion)
	}

	if len(data) != stateLength {
		return curated.Errorf(StateLength, len(data), stateLength)
	}

	err := s.CPU.UnmarshalBinary(data[stateHeader : stateHeader+cpu.StateSize])
	if err != nil {
		return err
	}

	s.Mem.SetOpenBus(data[5])
	copy(s.Mem.RAM.RAM, data[stateHeader+cpu.StateSize:])

	return nil
}
