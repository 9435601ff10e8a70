// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package assembler

import (
	"strings"

	"github.com/ezrec/brookshear/isa"
)

// Instruction is a decoded and validated source line.
type Instruction struct {
	Line      string         // Normalized source line.
	Operation *isa.Operation // Matched catalog entry.
	Operands  []uint8        // Operand values, nil for operations without operands.
}

// Decode matches a normalized line against the instruction catalog,
// returning the operation and the unparsed operand text.
//
// A zero operand mnemonic may stand alone. Every other line needs a
// space between the mnemonic and its operands.
func Decode(line string) (op *isa.Operation, operands string, err error) {
	op, ok := isa.Lookup(line)
	if ok && op.Arity() == 0 {
		return
	}

	mnemonic, operands, found := strings.Cut(line, MNEMONIC_SYMBOL)
	op, ok = isa.Lookup(mnemonic)
	switch {
	case !ok:
		op = nil
		err = ErrMnemonicUnknown(mnemonic)
	case !found:
		err = ErrOperandsMissing(op.Mnemonic)
		op = nil
	}

	return
}

// Parse decodes and validates a normalized line.
func Parse(line string) (ins Instruction, err error) {
	op, operands, err := Decode(line)
	if err != nil {
		return
	}

	ins, err = Validate(op, operands)
	ins.Line = line

	return
}
