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

	"github.com/nesemu/nesemu/curated"
)

// Validate input string against command defintions.
func (cmds Commands) Validate(input string) error {
	return cmds.ValidateTokens(TokeniseInput(input))
}

// ValidateTokens like Validate, but works on tokens rather than an input
// string. The tokens are reset before the function returns.
func (cmds Commands) ValidateTokens(tokens *Tokens) error {
	defer tokens.Reset()

	kw, ok := tokens.Get()
	if !ok {
		return nil
	}
	kw = strings.ToUpper(kw)

	c, ok := cmds.index[kw]
	if !ok {
		return curated.Errorf("unrecognised command (%s)", kw)
	}

	for _, a := range c.args {
		tok, ok := tokens.Get()
		if !ok {
			if a.optional {
				return nil
			}
			return curated.Errorf("%s requires more arguments", kw)
		}

		if !a.matches(tok) {
			if kw == cmds.helpCommand {
				return curated.Errorf("no help for %s", strings.ToUpper(tok))
			}
			return curated.Errorf("unrecognised argument (%s) for %s", tok, kw)
		}
	}

	if tokens.Remaining() > 0 {
		arg, _ := tokens.Get()
		return curated.Errorf("unrecognised argument (%s) for %s", arg, kw)
	}

	return nil
}

// matches returns true if the token is acceptable for the argument.
func (a argument) matches(tok string) bool {
	for _, o := range a.options {
		switch o {
		case PlaceholderAddress:
			if _, err := ParseAddress(tok); err == nil {
				return true
			}
		case PlaceholderValue:
			if _, err := ParseValue(tok); err == nil {
				return true
			}
		case PlaceholderNumber:
			if _, err := ParseNumber(tok); err == nil {
				return true
			}
		case PlaceholderString:
			return true
		default:
			if strings.ToUpper(tok) == o {
				return true
			}
		}
	}
	return false
}
