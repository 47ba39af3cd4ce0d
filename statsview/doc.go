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

// Package statsview is an optional package that offers a local HTTP server
// with runtime statistics of the emulator. It is only functional when the
// program is built with the statsview build constraint:
//
//	go build -tags statsview
//
// The graphical statistics are provided by "github.com/go-echarts/statsview"
// and after launch will be viewable at:
//
//	localhost:12602/debug/statsview
//
// The standard Go pprof statistics are available at:
//
//	localhost:12602/debug/pprof/
//
// Without the build constraint, Available() returns false and Launch() does
// nothing.
package statsview
