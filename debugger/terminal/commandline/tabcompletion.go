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

package commandline

import (
	"strings"
)

// TabCompletion keeps track of the most recent tab completion attempt.
type TabCompletion struct {
	cmds *Commands

	matches []string
	match   int

	// the string that was last returned by Complete(). if the next call to
	// Complete() is with the same string then the next match is returned
	prefix         string
	lastCompletion string
}

// NewTabCompletion initialises a new TabCompletion instance.
func NewTabCompletion(cmds *Commands) *TabCompletion {
	return &TabCompletion{cmds: cmds}
}

// Complete transforms the input such that the last word in the input is
// expanded to meet the closest match allowed by the template. Subsequent
// calls to Complete() without an intervening call to Reset() will cycle
// through the original available options.
func (tc *TabCompletion) Complete(input string) string {
	// cycle through the matches found by the previous call
	if len(tc.matches) > 0 && input == tc.lastCompletion {
		tc.match = (tc.match + 1) % len(tc.matches)
		tc.lastCompletion = tc.prefix + tc.matches[tc.match] + " "
		return tc.lastCompletion
	}

	tc.Reset()

	tokens := strings.Fields(input)
	if len(tokens) == 0 {
		return input
	}

	// the token being completed. if the input ends with a space then we're
	// completing a new token
	var partial string
	position := len(tokens)
	if !strings.HasSuffix(input, " ") {
		position--
		partial = strings.ToUpper(tokens[position])
	}

	if position == 0 {
		for _, c := range tc.cmds.cmds {
			if strings.HasPrefix(c.keyword, partial) {
				tc.matches = append(tc.matches, c.keyword)
			}
		}
	} else {
		c, ok := tc.cmds.index[strings.ToUpper(tokens[0])]
		if !ok || position-1 >= len(c.args) {
			return input
		}
		for _, o := range c.args[position-1].options {
			if !isPlaceholder(o) && strings.HasPrefix(o, partial) {
				tc.matches = append(tc.matches, o)
			}
		}
	}

	if len(tc.matches) == 0 {
		return input
	}

	tc.prefix = ""
	if position > 0 {
		tc.prefix = strings.Join(tokens[:position], " ") + " "
	}
	tc.lastCompletion = tc.prefix + tc.matches[0] + " "

	return tc.lastCompletion
}

// Reset is used to clear an outstanding completion session.
func (tc *TabCompletion) Reset() {
	tc.matches = tc.matches[:0]
	tc.match = 0
	tc.prefix = ""
	tc.lastCompletion = ""
}
