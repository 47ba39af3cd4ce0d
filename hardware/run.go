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
	"github.com/nesemu/nesemu/curated"
	"github.com/nesemu/nesemu/debugger/govern"
)

// UnsupportedState is returned by Run() if the continue check function
// returns a state that Run() doesn't know how to handle.
const UnsupportedState = "machine: unsupported emulation state (%s) in Run() function"

// While the continueCheck() function only runs at the end of a CPU
// instruction it can still be expensive to do a full continue check every
// time.
//
// The PerformanceBrake is a standard value that can be used to filter out
// expensive code paths within a continueCheck() implementation. For example:
//
//	performanceFilter++
//	if performanceFilter >= hardware.PerformanceBrake {
//		performanceFilter = 0
//		if end_condition == true {
//			return govern.Ending, nil
//		}
//	}
//	return govern.Running, nil
const PerformanceBrake = 100

// Run sets the emulation running as quickly as possible. The continueCheck
// function is called after every instruction and the emulation continues
// until it returns the Ending state or an error. A nil continueCheck runs
// the emulation until the CPU fails.
//
// The Paused state causes Run() to call continueCheck() again without
// stepping the machine.
func (m *Machine) Run(continueCheck func() (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func() (govern.State, error) { return govern.Running, nil }
	}

	var err error

	state := govern.Running

	for state != govern.Ending {
		switch state {
		case govern.Running, govern.Stepping:
			_, err = m.Step()
			if err != nil {
				return err
			}
		case govern.Paused:
		default:
			return curated.Errorf(UnsupportedState, state)
		}

		state, err = continueCheck()
		if err != nil {
			return err
		}
	}

	return nil
}

// RunForCycles runs the emulation until at least the specified number of
// CPU cycles have been consumed, or until the continueCheck function returns
// the Ending state. The continueCheck function can be nil.
func (m *Machine) RunForCycles(cycles uint64, continueCheck func() (govern.State, error)) error {
	target := m.CPU.Cycles + cycles

	return m.Run(func() (govern.State, error) {
		if m.CPU.Cycles >= target {
			return govern.Ending, nil
		}
		if continueCheck != nil {
			return continueCheck()
		}
		return govern.Running, nil
	})
}
