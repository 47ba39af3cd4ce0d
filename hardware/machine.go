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
	"github.com/nesemu/nesemu/hardware/cpu"
	"github.com/nesemu/nesemu/hardware/memory"
	"github.com/nesemu/nesemu/logger"
)

// Clocked is implemented by devices that need to be kept in step with the
// CPU. Step() is called once per tick of the device's clock.
type Clocked interface {
	Step()
}

type clocked struct {
	dev   Clocked
	ratio int
}

// Machine is the NES console as seen from the CPU. It contains the CPU and
// the memory bus, and the list of devices that are clocked by the CPU.
type Machine struct {
	CPU *cpu.CPU
	Mem *memory.Memory

	clocked []clocked

	// number of calls to Step() since the machine was created. interrupt
	// sequences are counted as steps
	Steps uint64
}

// NewMachine creates a new Machine and everything associated with the
// hardware. The CPU is not reset and so the program counter is not loaded
// from the reset vector. Call Reset() once the program has been attached to
// the memory bus.
func NewMachine() *Machine {
	m := &Machine{
		Mem: memory.NewMemory(),
	}
	m.CPU = cpu.NewCPU(m.Mem)
	return m
}

// AttachClocked adds a device to the list of clocked devices. The device
// will be stepped ratio times for every CPU cycle.
func (m *Machine) AttachClocked(dev Clocked, ratio int) {
	m.clocked = append(m.clocked, clocked{dev: dev, ratio: ratio})
}

// Reset the machine as if the reset button had been pressed. Memory is not
// cleared.
func (m *Machine) Reset() {
	m.CPU.Reset()
	logger.Logf(logger.Allow, "machine", "reset to %04x", m.CPU.PC.Address())
}

// PowerOn resets the machine and clears internal RAM.
func (m *Machine) PowerOn() {
	m.Mem.Reset()
	m.Reset()
}

// Step the machine forward by one CPU instruction, or by one interrupt
// sequence. The clocked devices are stepped after the CPU. Returns the number
// of CPU cycles consumed.
func (m *Machine) Step() (int, error) {
	cycles, err := m.CPU.Step()
	if err != nil {
		return cycles, err
	}

	for _, c := range m.clocked {
		for i := 0; i < cycles*c.ratio; i++ {
			c.dev.Step()
		}
	}

	m.Steps++

	return cycles, nil
}

// RequestReset forwards the request to the CPU.
func (m *Machine) RequestReset() {
	m.CPU.RequestReset()
}

// RequestNMI forwards the request to the CPU.
func (m *Machine) RequestNMI() {
	m.CPU.RequestNMI()
}

// RequestIRQ forwards the request to the CPU.
func (m *Machine) RequestIRQ(asserted bool) {
	m.CPU.RequestIRQ(asserted)
}
