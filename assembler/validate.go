// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package assembler

import (
	"errors"
	"strconv"
	"strings"

	"github.com/ezrec/brookshear/isa"
)

// Validate parses the operand text for an operation. Operands are
// comma separated bare hex numbers, each within the range of its kind.
//
// Operations without operands accept any operand text.
func Validate(op *isa.Operation, operands string) (ins Instruction, err error) {
	ins.Operation = op

	if op.Arity() == 0 {
		return
	}

	words := strings.Split(operands, DELIMITER_SYMBOL)
	if len(words) != op.Arity() {
		err = ErrOperandCount{Mnemonic: op.Mnemonic, Expected: op.Arity(), Actual: len(words)}
		return
	}

	values := make([]uint64, len(words))
	for n, word := range words {
		word = strings.TrimSpace(word)
		values[n], err = strconv.ParseUint(word, 16, 64)
		switch {
		case err == nil:
		case errors.Is(err, strconv.ErrRange):
			// Saturated at the maximum; reported by the range check.
			err = nil
		default:
			err = ErrOperandSyntax(word)
			return
		}
	}

	ins.Operands = make([]uint8, len(values))
	for n, value := range values {
		kind := op.Inputs[n]
		if value > uint64(kind.Max()) {
			err = ErrOperandRange{Kind: kind, Value: value}
			ins.Operands = nil
			return
		}
		ins.Operands[n] = uint8(value)
	}

	return
}
