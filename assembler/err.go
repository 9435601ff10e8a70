package assembler

import (
	"github.com/ezrec/brookshear/isa"
	"github.com/ezrec/brookshear/translate"
)

var f = translate.From

// ErrMnemonicUnknown is a line that does not start with a known mnemonic.
type ErrMnemonicUnknown string

func (err ErrMnemonicUnknown) Error() string {
	return f("unknown mnemonic %q", string(err))
}

func (err ErrMnemonicUnknown) Is(target error) (ok bool) {
	_, ok = target.(ErrMnemonicUnknown)
	return
}

// ErrOperandsMissing is a known mnemonic with no separating space.
type ErrOperandsMissing isa.Mnemonic

func (err ErrOperandsMissing) Error() string {
	return f("mnemonic %v needs an operand list", isa.Mnemonic(err))
}

// Is matches ErrMnemonicUnknown as well, since a missing operand list
// is reported as an unknown instruction.
func (err ErrOperandsMissing) Is(target error) (ok bool) {
	switch target.(type) {
	case ErrOperandsMissing, ErrMnemonicUnknown:
		ok = true
	}
	return
}

// ErrOperandCount is an operand list of the wrong length.
type ErrOperandCount struct {
	Mnemonic isa.Mnemonic
	Expected int
	Actual   int
}

func (err ErrOperandCount) Error() string {
	return f("%v expects %d operands, got %d", err.Mnemonic, err.Expected, err.Actual)
}

func (err ErrOperandCount) Is(target error) (ok bool) {
	_, ok = target.(ErrOperandCount)
	return
}

// ErrOperandSyntax is an operand that is not a hexadecimal number.
type ErrOperandSyntax string

func (err ErrOperandSyntax) Error() string {
	return f("operand %q is not hexadecimal", string(err))
}

func (err ErrOperandSyntax) Is(target error) (ok bool) {
	_, ok = target.(ErrOperandSyntax)
	return
}

// ErrOperandRange is an operand too large for its kind.
type ErrOperandRange struct {
	Kind  isa.OperandKind
	Value uint64
}

func (err ErrOperandRange) Error() string {
	return f("%v operand 0x%x exceeds maximum 0x%x", err.Kind, err.Value, err.Kind.Max())
}

func (err ErrOperandRange) Is(target error) (ok bool) {
	_, ok = target.(ErrOperandRange)
	return
}

// ErrExpression is a $(...) span that did not evaluate to an integer.
type ErrExpression string

func (err ErrExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

func (err ErrExpression) Is(target error) (ok bool) {
	_, ok = target.(ErrExpression)
	return
}

// ErrSyntax locates a line error in the source.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

// ErrFailed is a program with at least one failed line.
type ErrFailed int

func (err ErrFailed) Error() string {
	return f("program has %d failed lines", int(err))
}
