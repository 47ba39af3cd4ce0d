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

package rewind

import (
	"fmt"

	"github.com/nesemu/nesemu/curated"
	"github.com/nesemu/nesemu/hardware"
	"github.com/nesemu/nesemu/logger"
)

// Sentinal errors.
const (
	RewindRange  = "rewind: cannot go back %d entries (%d available)"
	RewindConfig = "rewind: %s must be at least one (%d)"
)

// Rewind contains a history of machine states for the emulation.
type Rewind struct {
	m *hardware.Machine

	// circular array of snapshotted entries
	entries []*hardware.State
	start   int
	count   int

	// a snapshot is taken every frequency calls to Check()
	frequency int
	counter   int
}

// NewRewind is the preferred method of initialisation for the Rewind type.
// The history holds at most maxEntries states.
func NewRewind(m *hardware.Machine, maxEntries int, frequency int) (*Rewind, error) {
	if maxEntries < 1 {
		return nil, curated.Errorf(RewindConfig, "maximum entries", maxEntries)
	}
	if frequency < 1 {
		return nil, curated.Errorf(RewindConfig, "frequency", frequency)
	}

	r := &Rewind{
		m:         m,
		entries:   make([]*hardware.State, maxEntries),
		frequency: frequency,
	}
	r.Reset()

	return r, nil
}

func (r *Rewind) String() string {
	return fmt.Sprintf("%d of %d entries (every %d steps)", r.count, len(r.entries), r.frequency)
}

// Reset removes all entries and takes a snapshot of the machine. It should be
// called whenever the machine is reset or a new program is loaded.
func (r *Rewind) Reset() {
	clear(r.entries)
	r.start = 0
	r.count = 0
	r.counter = 0
	r.append(r.m.Snapshot())
}

// Check should be called after every step of the machine. A snapshot is
// taken if enough steps have passed since the previous snapshot.
func (r *Rewind) Check() {
	r.counter++
	if r.counter < r.frequency {
		return
	}
	r.counter = 0
	r.append(r.m.Snapshot())
}

func (r *Rewind) append(s *hardware.State) {
	if r.count < len(r.entries) {
		r.entries[(r.start+r.count)%len(r.entries)] = s
		r.count++
		return
	}

	// history is full. the oldest entry is forgotten
	r.entries[r.start] = s
	r.start = (r.start + 1) % len(r.entries)
}

// Len returns the number of entries in the history.
func (r *Rewind) Len() int {
	return r.count
}

// get entry i where zero is the oldest entry
func (r *Rewind) get(i int) *hardware.State {
	return r.entries[(r.start+i)%len(r.entries)]
}

// Latest returns the most recent state in the history.
func (r *Rewind) Latest() *hardware.State {
	return r.get(r.count - 1)
}

// Back plumbs in the state n entries before the latest entry. Back(0)
// restores the latest entry. Entries more recent than the restored entry are
// removed from the history.
func (r *Rewind) Back(n int) error {
	if n < 0 || n >= r.count {
		return curated.Errorf(RewindRange, n, r.count-1)
	}

	idx := r.count - 1 - n
	s := r.get(idx)
	r.m.Plumb(s)

	for i := idx + 1; i < r.count; i++ {
		r.entries[(r.start+i)%len(r.entries)] = nil
	}
	r.count = idx + 1
	r.counter = 0

	logger.Logf(logger.Allow, "rewind", "rewound to %04x (%d entries back)", s.CPU.PC.Address(), n)

	return nil
}
