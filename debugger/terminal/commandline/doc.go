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

// Package commandline facilitates parsing of command line input. Given a
// command template, it can be used to tokenise and validate user input. It
// also functions as a tab-completion engine, implementing the
// terminal.TabCompletion interface.
//
// The Commands type is the base product of the package. To create an instance
// of Commands, use ParseCommandTemplate() with a suitable template. An example
// template would be:
//
//	template := []string {
//		"LIST",
//		"PEEK %A [%N]",
//		"IRQ (ON|OFF)",
//	}
//
// Each command is a keyword followed by zero or more arguments. An argument in
// parentheses is required and an argument in square brackets is optional.
// Optional arguments can only be followed by other optional arguments. The
// options for an argument are separated by the pipe symbol. An option is
// either a literal keyword or one of the following placeholders:
//
//	%A	a 16 bit address in hexadecimal. can be prefixed with $ or 0x
//	%V	an 8 bit value in hexadecimal. can be prefixed with $ or 0x
//	%N	a decimal number
//	%S	any string
//
// A single option does not need to be enclosed in parentheses.
//
// Once parsed, the resulting Commands instance can be used to validate input.
//
//	cmds, _ := ParseCommandTemplate(template)
//	toks := TokeniseInput("peek 8000")
//	err := cmds.ValidateTokens(toks)
//
// Note that all validation is case-insensitive. Once validated, the Get()
// function of the Tokens type can be used to retrieve arguments, safe in the
// knowledge that they are of the expected form.
//
// The TabCompletion type is used to transform input such that it more closely
// resembles a valid command according to the supplied template. Given a number
// of options to use for the completion, the first option will be returned
// first followed by the second, third, etc. on subsequent calls to Complete().
// A tab completion session can be terminated with a call to Reset().
package commandline
