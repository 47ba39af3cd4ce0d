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

//go:build unix

// Package easyterm is a wrapper for "github.com/pkg/term/termios". it provides
// some features not present in the third-party package, such as terminal
// geometry, and wraps termios methods in functions with friendlier names.
package easyterm

import (
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// TermGeometry contains the dimensions of a terminal in characters.
type TermGeometry struct {
	Rows int
	Cols int
}

// EasyTerm is the main container for posix terminals. usually embedded in
// other struct types.
type EasyTerm struct {
	input  *os.File
	output *os.File

	Geometry TermGeometry

	canAttr    unix.Termios
	cbreakAttr unix.Termios

	// sig/ack channels to control signal handler
	terminateHandlerSig chan bool
	terminateHandlerAck chan bool

	// public functions that are called from the signal handler are prefaced
	// with:
	//		et.mu.Lock()
	//		defer et.mu.Unlock()
	mu sync.Mutex
}

// Initialise the fields in the EasyTerm struct.
func (et *EasyTerm) Initialise(inputFile *os.File, outputFile *os.File) error {
	if inputFile == nil {
		return fmt.Errorf("easyterm: requires an input file")
	}
	if outputFile == nil {
		return fmt.Errorf("easyterm: requires an output file")
	}

	et.input = inputFile
	et.output = outputFile

	// prepare the attributes for the different terminal modes we'll be using
	if err := termios.Tcgetattr(et.input.Fd(), &et.canAttr); err != nil {
		return fmt.Errorf("easyterm: %w", err)
	}
	et.cbreakAttr = et.canAttr
	termios.Cfmakecbreak(&et.cbreakAttr)

	_ = et.UpdateGeometry()

	// set up sig/ack channels for signal handler
	et.terminateHandlerSig = make(chan bool)
	et.terminateHandlerAck = make(chan bool)

	go func() {
		sigwinch := make(chan os.Signal, 1)
		signal.Notify(sigwinch, syscall.SIGWINCH)
		defer func() {
			signal.Stop(sigwinch)
			et.terminateHandlerAck <- true
		}()

		for {
			select {
			case <-sigwinch:
				_ = et.UpdateGeometry()
			case <-et.terminateHandlerSig:
				return
			}
		}
	}()

	return nil
}

// CleanUp closes resources created in the Initialise() function and returns
// the terminal to canonical mode.
func (et *EasyTerm) CleanUp() {
	et.CanonicalMode()
	et.terminateHandlerSig <- true
	<-et.terminateHandlerAck
}

// TermPrint writes the string to the output file.
func (et *EasyTerm) TermPrint(s string) {
	_, _ = et.output.WriteString(s)
}

// UpdateGeometry gets the current dimensions of the output terminal.
func (et *EasyTerm) UpdateGeometry() error {
	et.mu.Lock()
	defer et.mu.Unlock()

	cols, rows, err := term.GetSize(int(et.output.Fd()))
	if err != nil {
		return fmt.Errorf("easyterm: error updating terminal geometry: %w", err)
	}
	et.Geometry.Cols = cols
	et.Geometry.Rows = rows

	return nil
}

// CanonicalMode puts terminal into normal, everyday canonical mode.
func (et *EasyTerm) CanonicalMode() {
	_ = termios.Tcsetattr(et.input.Fd(), termios.TCSANOW, &et.canAttr)
}

// CBreakMode puts terminal into cbreak mode. Input is available one key at
// a time and is not echoed. Signals are still generated by the terminal.
func (et *EasyTerm) CBreakMode() {
	_ = termios.Tcsetattr(et.input.Fd(), termios.TCSANOW, &et.cbreakAttr)
}

// Flush makes sure the terminal's input buffer is empty.
func (et *EasyTerm) Flush() error {
	return termios.Tcflush(et.input.Fd(), termios.TCIFLUSH)
}
