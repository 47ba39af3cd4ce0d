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

// Tokens represents tokenised input. This can be used to walk through the
// input string (using Get()) for eas(ier) parsing.
type Tokens struct {
	input []string
	curr  int
}

// TokeniseInput creates and returns a new Tokens instance. Leading and
// trailing whitespace is ignored as is whitespace between tokens.
func TokeniseInput(input string) *Tokens {
	return &Tokens{input: strings.Fields(input)}
}

// String representation of tokens.
func (tk *Tokens) String() string {
	return strings.Join(tk.input, " ")
}

// Reset begins the token traversal process from the beginning.
func (tk *Tokens) Reset() {
	tk.curr = 0
}

// Remainder returns the remaining tokens as a string.
func (tk *Tokens) Remainder() string {
	return strings.Join(tk.input[tk.curr:], " ")
}

// Remaining returns the number of remaining tokens.
func (tk *Tokens) Remaining() int {
	return len(tk.input) - tk.curr
}

// Len returns the number of tokens.
func (tk *Tokens) Len() int {
	return len(tk.input)
}

// Get returns the next token in the list, and a success boolean - if the end
// of the token list has been reached, the function returns false instead of
// true.
func (tk *Tokens) Get() (string, bool) {
	if tk.curr >= len(tk.input) {
		return "", false
	}
	tk.curr++
	return tk.input[tk.curr-1], true
}

// Unget walks backwards in the token list.
func (tk *Tokens) Unget() {
	if tk.curr > 0 {
		tk.curr--
	}
}

// Peek returns the next token in the list (without advancing the list), and
// a success boolean - if the end of the token list has been reached, the
// function returns false instead of true.
func (tk *Tokens) Peek() (string, bool) {
	if tk.curr >= len(tk.input) {
		return "", false
	}
	return tk.input[tk.curr], true
}
