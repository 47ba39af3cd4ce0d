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

package cpu

import (
	"encoding/binary"

	"github.com/nesemu/nesemu/curated"
)

// StateSize is the number of bytes in the serialised register file.
const StateSize = 16

// StateLength is returned by UnmarshalBinary() if the data is not the
// expected length.
const StateLength = "cpu: serialised state is the wrong length (%d bytes instead of %d)"

// bits in the flags byte of the serialised state
const (
	stateResetPending = 1 << iota
	stateNMIPending
	stateIRQAsserted
	stateJammed
)

// MarshalBinary implements the encoding.BinaryMarshaler interface. The
// serialised state is the register file, the state of the interrupt lines
// and the cycle count.
//
// Layout: PC (2 bytes, little endian), A, X, Y, SP, P, flags, cycles (8
// bytes, little endian).
func (mc *CPU) MarshalBinary() ([]byte, error) {
	b := make([]byte, StateSize)
	binary.LittleEndian.PutUint16(b[0:], mc.PC.Address())
	b[2] = mc.A.Value()
	b[3] = mc.X.Value()
	b[4] = mc.Y.Value()
	b[5] = mc.SP.Value()
	b[6] = mc.Status.Value()

	var flags uint8
	if mc.resetPending {
		flags |= stateResetPending
	}
	if mc.nmiPending {
		flags |= stateNMIPending
	}
	if mc.irqAsserted {
		flags |= stateIRQAsserted
	}
	if mc.Jammed {
		flags |= stateJammed
	}
	b[7] = flags

	binary.LittleEndian.PutUint64(b[8:], mc.Cycles)

	return b, nil
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface.
func (mc *CPU) UnmarshalBinary(data []byte) error {
	if len(data) != StateSize {
		return curated.Errorf(StateLength, len(data), StateSize)
	}

	mc.PC.Load(binary.LittleEndian.Uint16(data[0:]))
	mc.A.Load(data[2])
	mc.X.Load(data[3])
	mc.Y.Load(data[4])
	mc.SP.Load(data[5])
	mc.Status.Load(data[6])

	flags := data[7]
	mc.resetPending = flags&stateResetPending == stateResetPending
	mc.nmiPending = flags&stateNMIPending == stateNMIPending
	mc.irqAsserted = flags&stateIRQAsserted == stateIRQAsserted
	mc.Jammed = flags&stateJammed == stateJammed

	mc.Cycles = binary.LittleEndian.Uint64(data[8:])

	mc.LastResult.Reset()
	mc.State = Running

	return nil
}
