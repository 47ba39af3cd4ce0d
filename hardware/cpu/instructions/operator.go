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

package instructions

// Operator identifies the operation performed by an instruction. Several
// opcodes share the same operator, differing only in addressing mode.
type Operator int

// List of operators. The documented instruction set comes first.
const (
	ADC Operator = iota
	AND
	ASL
	BCC
	BCS
	BEQ
	BIT
	BMI
	BNE
	BPL
	BRK
	BVC
	BVS
	CLC
	CLD
	CLI
	CLV
	CMP
	CPX
	CPY
	DEC
	DEX
	DEY
	EOR
	INC
	INX
	INY
	JMP
	JSR
	LDA
	LDX
	LDY
	LSR
	NOP
	ORA
	PHA
	PHP
	PLA
	PLP
	ROL
	ROR
	RTI
	RTS
	SBC
	SEC
	SED
	SEI
	STA
	STX
	STY
	TAX
	TAY
	TSX
	TXA
	TXS
	TYA

	// undocumented operators
	AHX
	ALR
	ANC
	ARR
	AXS
	DCP
	ISC
	LAS
	LAX
	RLA
	RRA
	SAX
	SHX
	SHY
	SLO
	SRE
	STP
	TAS
	XAA

	// NumOperators is the number of operators in the list. it is not a valid
	// operator.
	NumOperators
)

var operatorNames = [NumOperators]string{
	"ADC", "AND", "ASL", "BCC", "BCS", "BEQ", "BIT", "BMI", "BNE", "BPL", "BRK",
	"BVC", "BVS", "CLC", "CLD", "CLI", "CLV", "CMP", "CPX", "CPY", "DEC", "DEX",
	"DEY", "EOR", "INC", "INX", "INY", "JMP", "JSR", "LDA", "LDX", "LDY", "LSR",
	"NOP", "ORA", "PHA", "PHP", "PLA", "PLP", "ROL", "ROR", "RTI", "RTS", "SBC",
	"SEC", "SED", "SEI", "STA", "STX", "STY", "TAX", "TAY", "TSX", "TXA", "TXS",
	"TYA",
	"AHX", "ALR", "ANC", "ARR", "AXS", "DCP", "ISC", "LAS", "LAX", "RLA", "RRA",
	"SAX", "SHX", "SHY", "SLO", "SRE", "STP", "TAS", "XAA",
}

func (o Operator) String() string {
	if o < 0 || o >= NumOperators {
		return "???"
	}
	return operatorNames[o]
}

// IsBranch returns true if the operator is one of the conditional branch
// instructions.
func (o Operator) IsBranch() bool {
	switch o {
	case BCC, BCS, BEQ, BMI, BNE, BPL, BVC, BVS:
		return true
	}
	return false
}
