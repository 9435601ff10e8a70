// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package assembler

import (
	"fmt"
	"strings"

	"github.com/ezrec/brookshear/isa"
)

// Encode renders a validated instruction as lowercase hex: the opcode
// digit, then each output slot of the operation in order.
func Encode(ins Instruction) string {
	op := ins.Operation

	var code strings.Builder
	code.Grow(isa.INSTRUCTION_WIDTH)

	fmt.Fprintf(&code, "%x", op.Opcode())
	for _, slot := range op.Outputs {
		if slot.IsZero() {
			code.WriteByte('0')
			continue
		}
		kind := op.Inputs[slot.Index()]
		fmt.Fprintf(&code, "%0*x", kind.Width(), ins.Operands[slot.Index()])
	}

	return code.String()
}

// Assemble translates a single raw source line. An empty code with no
// error means the line holds nothing to encode.
func Assemble(raw string) (code string, err error) {
	line := Normalize(raw)
	if len(line) == 0 {
		return
	}

	ins, err := Parse(line)
	if err != nil {
		return
	}

	code = Encode(ins)
	return
}
