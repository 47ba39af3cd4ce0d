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

package colorterm

import (
	"io"
	"unicode"

	"github.com/nesemu/nesemu/curated"
	"github.com/nesemu/nesemu/debugger/terminal/colorterm/easyterm"
	"github.com/nesemu/nesemu/debugger/terminal"
)

// TermRead implements the terminal.Terminal interface.
func (ct *ColorTerminal) TermRead(prompt terminal.Prompt) (string, error) {
	if ct.silenced {
		return "", nil
	}

	ct.EasyTerm.CBreakMode()
	defer ct.EasyTerm.CanonicalMode()

	input := []rune{}
	cursor := 0
	history := len(ct.commandHistory)

	// the latest input is kept while scrolling through history. we don't want
	// to lose what has been typed if the user wants to resume where they
	// left off
	var buffInput []rune

	p := prompt.String()
	p = boldPen + p + normalPen
	if prompt.Halted {
		p = pen(red, true) + prompt.String() + normalPen
	}

	for {
		// redraw the line and place the cursor
		ct.EasyTerm.TermPrint("\r" + clearLine + p + string(input))
		ct.EasyTerm.TermPrint(cursorMove(cursor - len(input)))

		r, _, err := ct.reader.ReadRune()
		if err != nil {
			return "", err
		}

		if r != easyterm.KeyTab && ct.tabCompletion != nil {
			ct.tabCompletion.Reset()
		}

		switch r {
		case easyterm.KeyTab:
			if ct.tabCompletion != nil {
				s := ct.tabCompletion.Complete(string(input[:cursor]))
				input = append([]rune(s), input[cursor:]...)
				cursor = len([]rune(s))
			}

		case easyterm.KeyCtrlC:
			ct.EasyTerm.TermPrint("\n")
			return "", curated.Errorf(terminal.UserInterrupt)

		case easyterm.KeyCtrlD:
			if len(input) == 0 {
				ct.EasyTerm.TermPrint("\n")
				return "", io.EOF
			}

		case easyterm.KeyCarriageReturn, easyterm.KeyLineFeed:
			s := string(input)

			// add to history if input is not the same as the last history
			// entry
			if s != "" {
				if len(ct.commandHistory) == 0 || ct.commandHistory[len(ct.commandHistory)-1] != s {
					ct.commandHistory = append(ct.commandHistory, s)
				}
			}

			ct.EasyTerm.TermPrint("\n")
			return s, nil

		case easyterm.KeyEsc:
			r, _, err := ct.reader.ReadRune()
			if err != nil {
				return "", err
			}
			if r != easyterm.EscCursor {
				continue
			}

			r, _, err = ct.reader.ReadRune()
			if err != nil {
				return "", err
			}

			switch r {
			case easyterm.CursorUp:
				if history > 0 {
					if history == len(ct.commandHistory) {
						buffInput = append(buffInput[:0], input...)
					}
					history--
					input = []rune(ct.commandHistory[history])
					cursor = len(input)
				}
			case easyterm.CursorDown:
				if history < len(ct.commandHistory)-1 {
					history++
					input = []rune(ct.commandHistory[history])
					cursor = len(input)
				} else if history == len(ct.commandHistory)-1 {
					history++
					input = append([]rune{}, buffInput...)
					cursor = len(input)
				}
			case easyterm.CursorForward:
				if cursor < len(input) {
					cursor++
				}
			case easyterm.CursorBackward:
				if cursor > 0 {
					cursor--
				}
			}

		case easyterm.KeyBackspace:
			if cursor > 0 {
				input = append(input[:cursor-1], input[cursor:]...)
				cursor--
				history = len(ct.commandHistory)
			}

		default:
			if unicode.IsPrint(r) {
				input = append(input[:cursor], append([]rune{r}, input[cursor:]...)...)
				cursor++
				history = len(ct.commandHistory)
			}
		}
	}
}
