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

//go:build statsview

package statsview

import (
	"fmt"
	"io"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/nesemu/nesemu/logger"
)

// Address of the statistics server.
const Address = "localhost:12602"

const url = "/debug/statsview"

// Launch a new goroutine running the statsview server. The address of the
// server is written to output.
func Launch(output io.Writer) {
	viewer.SetConfiguration(viewer.WithAddr(Address))

	go func() {
		mgr := statsview.New()
		mgr.Start()
	}()

	logger.Logf(logger.Allow, "statsview", "launched at %s%s", Address, url)
	fmt.Fprintf(output, "stats server available at %s%s\n", Address, url)
}

// Available returns true if a statsview is available to launch.
func Available() bool {
	return true
}
