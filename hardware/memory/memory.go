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
	"strings"

	"github.com/nesemu/nesemu/curated"
	"github.com/nesemu/nesemu/hardware/memory/cpubus"
	"github.com/nesemu/nesemu/hardware/memory/memorymap"
	"github.com/nesemu/nesemu/logger"
)

// Sentinal errors returned by Attach().
const (
	AttachOverlap = "memory: cannot attach %s (%04x to %04x): overlaps %s"
	AttachRAM     = "memory: cannot attach %s (%04x to %04x): overlaps internal RAM"
	AttachRange   = "memory: cannot attach %s: origin (%04x) is after memtop (%04x)"
)

type attachment struct {
	label  string
	origin uint16
	memtop uint16
	dev    Device
}

// Memory is the memory bus of the console. It owns the internal RAM and
// routes all other addresses to the attached devices.
//
// Memory implements the cpubus.Memory, cpubus.Peeker and cpubus.Poker
// interfaces.
type Memory struct {
	RAM *RAM

	devices []attachment

	// the last value driven onto the data bus. returned by reads of addresses
	// that no device responds to
	openBus uint8

	// the most recent address accessed by Read() or Write()
	LastAccessAddress uint16
	LastAccessWrite   bool

	// addresses that have already been reported as unmapped. the log would
	// otherwise be flooded by programs that poll an unattached register
	unmapped map[uint16]bool
}

// NewMemory is the preferred method of initialisation for the Memory type.
func NewMemory() *Memory {
	return &Memory{
		RAM:      NewRAM(),
		unmapped: make(map[uint16]bool),
	}
}

func (mem *Memory) String() string {
	s := strings.Builder{}
	s.WriteString(memorymap.Summary())
	for _, a := range mem.devices {
		s.WriteString(fmt.Sprintf("%04x -> %04x\t%s", a.origin, a.memtop, a.label))
		if st, ok := a.dev.(fmt.Stringer); ok {
			s.WriteString(fmt.Sprintf(" [%s]", st))
		}
		s.WriteString("\n")
	}
	return s.String()
}

// Attach a device to the memory bus. The device will receive all reads and
// writes for addresses between origin and memtop inclusive. The RAM area
// cannot be claimed by a device and devices cannot overlap.
func (mem *Memory) Attach(origin uint16, memtop uint16, label string, dev Device) error {
	if origin > memtop {
		return curated.Errorf(AttachRange, label, origin, memtop)
	}
	if origin <= memorymap.MemtopRAM {
		return curated.Errorf(AttachRAM, label, origin, memtop)
	}
	for _, a := range mem.devices {
		if origin <= a.memtop && memtop >= a.origin {
			return curated.Errorf(AttachOverlap, label, origin, memtop, a.label)
		}
	}

	mem.devices = append(mem.devices, attachment{
		label:  label,
		origin: origin,
		memtop: memtop,
		dev:    dev,
	})

	return nil
}

// Detach all devices from the memory bus.
func (mem *Memory) Detach() {
	mem.devices = mem.devices[:0]
}

// Reset clears the internal RAM and the open bus value. Devices are not
// affected.
func (mem *Memory) Reset() {
	mem.RAM.Reset()
	mem.openBus = 0
	mem.LastAccessAddress = 0
	mem.LastAccessWrite = false
}

func (mem *Memory) device(address uint16) *attachment {
	for i := range mem.devices {
		if address >= mem.devices[i].origin && address <= mem.devices[i].memtop {
			return &mem.devices[i]
		}
	}
	return nil
}

// Read implements the cpubus.Memory interface.
func (mem *Memory) Read(address uint16) uint8 {
	mem.LastAccessAddress = address
	mem.LastAccessWrite = false

	ma, area := memorymap.MapAddress(address)
	if area == memorymap.RAM {
		mem.openBus = mem.RAM.Read(ma)
		return mem.openBus
	}

	if a := mem.device(address); a != nil {
		mem.openBus = a.dev.Read(address)
		return mem.openBus
	}

	return mem.openBus
}

// Write implements the cpubus.Memory interface.
func (mem *Memory) Write(address uint16, data uint8) {
	mem.LastAccessAddress = address
	mem.LastAccessWrite = true
	mem.openBus = data

	ma, area := memorymap.MapAddress(address)
	if area == memorymap.RAM {
		mem.RAM.Write(ma, data)
		return
	}

	if a := mem.device(address); a != nil {
		a.dev.Write(address, data)
		return
	}

	if !mem.unmapped[address] {
		mem.unmapped[address] = true
		logger.Logf(logger.Allow, "memory", "write to unmapped address %04x (%s)", address, area)
	}
}

// Peek implements the cpubus.Peeker interface. Devices that do not implement
// the Peeker interface return the current open bus value.
func (mem *Memory) Peek(address uint16) uint8 {
	ma, area := memorymap.MapAddress(address)
	if area == memorymap.RAM {
		return mem.RAM.Read(ma)
	}

	if a := mem.device(address); a != nil {
		if p, ok := a.dev.(cpubus.Peeker); ok {
			return p.Peek(address)
		}
	}

	return mem.openBus
}

// Poke implements the cpubus.Poker interface. Pokes to devices that do not
// implement the Poker interface are ignored.
func (mem *Memory) Poke(address uint16, data uint8) {
	ma, area := memorymap.MapAddress(address)
	if area == memorymap.RAM {
		mem.RAM.Write(ma, data)
		return
	}

	if a := mem.device(address); a != nil {
		if p, ok := a.dev.(cpubus.Poker); ok {
			p.Poke(address, data)
		}
	}
}

// OpenBus returns the last value driven onto the data bus.
func (mem *Memory) OpenBus() uint8 {
	return mem.openBus
}

// Snapshot creates a copy of the memory bus in its current state. The
// internal RAM is copied but the attached devices are not. Device state is
// owned by the devices themselves.
func (mem *Memory) Snapshot() *Memory {
	n := *mem
	n.RAM = mem.RAM.Snapshot()
	n.devices = nil
	n.unmapped = make(map[uint16]bool)
	return &n
}

// Plumb the state of a snapshot into the memory bus. The attached devices
// are not changed.
func (mem *Memory) Plumb(state *Memory) {
	copy(mem.RAM.RAM, state.RAM.RAM)
	mem.openBus = state.openBus
	mem.LastAccessAddress = state.LastAccessAddress
	mem.LastAccessWrite = state.LastAccessWrite
}

// SetOpenBus sets the open bus value. Used when restoring serialised state.
func (mem *Memory) SetOpenBus(data uint8) {
	mem.openBus = data
}
