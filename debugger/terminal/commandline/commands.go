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
	"fmt"
	"strings"

	"github.com/nesemu/nesemu/curated"
)

// List of placeholders that can be used in a command template.
const (
	PlaceholderAddress = "%A"
	PlaceholderValue   = "%V"
	PlaceholderNumber  = "%N"
	PlaceholderString  = "%S"
)

func isPlaceholder(s string) bool {
	switch s {
	case PlaceholderAddress, PlaceholderValue, PlaceholderNumber, PlaceholderString:
		return true
	}
	return false
}

// argument is a single argument position in a command template.
type argument struct {
	options  []string
	optional bool
}

func (a argument) String() string {
	s := strings.Join(a.options, "|")
	if a.optional {
		return fmt.Sprintf("[%s]", s)
	}
	if len(a.options) > 1 {
		return fmt.Sprintf("(%s)", s)
	}
	return s
}

// command is the parsed form of a single line of the command template.
type command struct {
	keyword string
	args    []argument
}

func (c command) String() string {
	s := strings.Builder{}
	s.WriteString(c.keyword)
	for _, a := range c.args {
		s.WriteString(" ")
		s.WriteString(a.String())
	}
	return s.String()
}

// Commands is the result of parsing a command template.
type Commands struct {
	index map[string]*command
	cmds  []*command

	helpCommand string
	helps       map[string]string
}

// ParseCommandTemplate turns a list of command definitions into a Commands
// instance. See the package documentation for the template syntax.
func ParseCommandTemplate(template []string) (*Commands, error) {
	cmds := &Commands{
		index: make(map[string]*command),
	}

	for i, defn := range template {
		c, err := parseDefinition(defn)
		if err != nil {
			return nil, curated.Errorf("parser: line %d: %v", i+1, err)
		}
		if _, ok := cmds.index[c.keyword]; ok {
			return nil, curated.Errorf("parser: line %d: %s: already defined", i+1, c.keyword)
		}
		cmds.index[c.keyword] = c
		cmds.cmds = append(cmds.cmds, c)
	}

	return cmds, nil
}

func parseDefinition(defn string) (*command, error) {
	fields := strings.Fields(defn)
	if len(fields) == 0 {
		return nil, curated.Errorf("empty definition")
	}

	c := &command{
		keyword: strings.ToUpper(fields[0]),
	}
	if isPlaceholder(c.keyword) || strings.ContainsAny(c.keyword, "[]()|") {
		return nil, curated.Errorf("%s: command must be a keyword", fields[0])
	}

	for _, f := range fields[1:] {
		a := argument{}

		switch {
		case strings.HasPrefix(f, "[") && strings.HasSuffix(f, "]"):
			a.optional = true
			f = f[1 : len(f)-1]
		case strings.HasPrefix(f, "(") && strings.HasSuffix(f, ")"):
			f = f[1 : len(f)-1]
		}

		if f == "" || strings.ContainsAny(f, "[]()") {
			return nil, curated.Errorf("%s: badly formed argument", c.keyword)
		}

		if !a.optional && len(c.args) > 0 && c.args[len(c.args)-1].optional {
			return nil, curated.Errorf("%s: required argument follows optional argument", c.keyword)
		}

		for _, o := range strings.Split(f, "|") {
			if o == "" {
				return nil, curated.Errorf("%s: empty option", c.keyword)
			}
			if strings.HasPrefix(o, "%") {
				o = strings.ToUpper(o)
				if !isPlaceholder(o) {
					return nil, curated.Errorf("%s: unknown placeholder (%s)", c.keyword, o)
				}
			} else {
				o = strings.ToUpper(o)
			}
			a.options = append(a.options, o)
		}

		c.args = append(c.args, a)
	}

	return c, nil
}

// String returns the normalised command template.
func (cmds Commands) String() string {
	s := strings.Builder{}
	for _, c := range cmds.cmds {
		s.WriteString(c.String())
		s.WriteString("\n")
	}
	return strings.TrimRight(s.String(), "\n")
}

// Keywords returns the list of command keywords in the order they were
// defined.
func (cmds Commands) Keywords() []string {
	k := make([]string, 0, len(cmds.cmds))
	for _, c := range cmds.cmds {
		k = append(k, c.keyword)
	}
	return k
}

// AddHelp adds a "help" command to an already prepared Commands type. It uses
// the keywords of the Commands instance as the optional argument of the
// helpCommand.
func (cmds *Commands) AddHelp(helpCommand string, helps map[string]string) error {
	helpCommand = strings.ToUpper(helpCommand)

	if _, ok := cmds.index[helpCommand]; ok {
		return curated.Errorf("%s: already defined", helpCommand)
	}

	cmds.helps = helps
	cmds.helpCommand = helpCommand

	// the help command is itself a valid argument for the help command
	opts := append(cmds.Keywords(), helpCommand)

	c := &command{
		keyword: helpCommand,
		args:    []argument{{options: opts, optional: true}},
	}
	cmds.index[c.keyword] = c
	cmds.cmds = append(cmds.cmds, c)

	return nil
}

// HelpOverview returns a columnised list of all commands.
func (cmds Commands) HelpOverview() string {
	longest := 0
	for _, c := range cmds.cmds {
		if len(c.keyword) > longest {
			longest = len(c.keyword)
		}
	}

	cols := 80 / (longest + 3)
	colFmt := fmt.Sprintf("%%%ds", longest+3)

	s := strings.Builder{}
	for i, c := range cmds.cmds {
		s.WriteString(fmt.Sprintf(colFmt, c.keyword))
		if i%cols == cols-1 {
			s.WriteString("\n")
		}
	}
	return strings.TrimRight(s.String(), "\n")
}

// Help returns the help (and usage for the command).
func (cmds Commands) Help(keyword string) string {
	keyword = strings.ToUpper(keyword)

	s := strings.Builder{}

	if helpTxt, ok := cmds.helps[keyword]; !ok {
		s.WriteString(fmt.Sprintf("no help for %s", keyword))
	} else {
		s.WriteString(helpTxt)
		if c, ok := cmds.index[keyword]; ok {
			s.WriteString("\n\n  Usage: ")
			s.WriteString(c.String())
		}
	}

	return s.String()
}
