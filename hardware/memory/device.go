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

package memory

import (
	"fmt"

	"github.com/nesemu/nesemu/curated"
)

// Sentinal errors returned by NewFlatDevice().
const (
	FlatDeviceEmpty = "flat device: no data"
	FlatDeviceSize  = "flat device: %d bytes at origin %04x extends past the top of memory"
)

// Device is implemented by anything that can be attached to the memory bus.
// The address given to Read() and Write() is the address as it was presented
// on the bus. The device is responsible for its own address decoding.
//
// A device that can be read without side effects should also implement the
// cpubus.Peeker interface. A device that can be written to by the debugger
// should implement the cpubus.Poker interface.
type Device interface {
	Read(address uint16) uint8
	Write(address uint16, data uint8)
}

// FlatDevice is a simple block of memory that can be attached to the memory
// bus. It can be either read-only or writable.
//
// It is useful for testing and for running programs that are not packaged in
// a cartridge format.
type FlatDevice struct {
	origin   uint16
	data     []uint8
	writable bool
}

// NewFlatDevice is the preferred method of initialisation for the FlatDevice
// type. The size of the device is the length of data. The data is copied.
//
// The data must not be empty and must fit between the origin and the top of
// memory.
func NewFlatDevice(origin uint16, data []uint8, writable bool) (*FlatDevice, error) {
	if len(data) == 0 {
		return nil, curated.Errorf(FlatDeviceEmpty)
	}
	if int(origin)+len(data) > 0x10000 {
		return nil, curated.Errorf(FlatDeviceSize, len(data), origin)
	}

	dev := &FlatDevice{
		origin:   origin,
		data:     make([]uint8, len(data)),
		writable: writable,
	}
	copy(dev.data, data)
	return dev, nil
}

func (dev *FlatDevice) String() string {
	if dev.writable {
		return fmt.Sprintf("flat RAM (%d bytes)", len(dev.data))
	}
	return fmt.Sprintf("flat ROM (%d bytes)", len(dev.data))
}

// Origin returns the first address of the device.
func (dev *FlatDevice) Origin() uint16 {
	return dev.origin
}

// Memtop returns the last address of the device.
func (dev *FlatDevice) Memtop() uint16 {
	return dev.origin + uint16(len(dev.data)-1)
}

// Read implements the Device interface.
func (dev *FlatDevice) Read(address uint16) uint8 {
	return dev.data[int(address-dev.origin)%len(dev.data)]
}

// Write implements the Device interface. Writes to a read-only device are
// ignored.
func (dev *FlatDevice) Write(address uint16, data uint8) {
	if dev.writable {
		dev.data[int(address-dev.origin)%len(dev.data)] = data
	}
}

// Peek implements the cpubus.Peeker interface.
func (dev *FlatDevice) Peek(address uint16) uint8 {
	return dev.Read(address)
}

// Poke implements the cpubus.Poker interface. Unlike Write(), a Poke() will
// change the contents of a read-only device.
func (dev *FlatDevice) Poke(address uint16, data uint8) {
	dev.data[int(address-dev.origin)%len(dev.data)] = data
}
