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

// Package clocks defines the constant values that define the speed of the main
// clock in the NES console.
//
// The CPU clock is derived from the master clock by a divider that differs
// between television systems. The picture unit runs from the same master
// clock and so runs a fixed number of dots for every CPU cycle.
package clocks

// CPU clock speeds in MHz.
const (
	NTSC  = 1.789773
	PAL   = 1.662607
	Dendy = 1.773448
)

// Number of picture unit dots per CPU cycle. PAL is not a whole number and
// is handled by the picture unit itself.
const (
	NTSC_PPU  = 3
	Dendy_PPU = 3
	PAL_PPU   = 3.2
)
