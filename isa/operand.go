// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package isa

// OperandKind classifies the legal range and rendered width of an operand.
type OperandKind int

//go:generate go tool stringer -linecomment -type=OperandKind
const (
	KIND_ZERO     = OperandKind(0) // zero
	KIND_REGISTER = OperandKind(1) // register
	KIND_NIBBLE   = OperandKind(2) // nibble
	KIND_ADDRESS  = OperandKind(3) // address
)

// Max returns the inclusive maximum value of the operand kind.
func (kind OperandKind) Max() uint8 {
	switch kind {
	case KIND_REGISTER, KIND_NIBBLE:
		return 0xf
	case KIND_ADDRESS:
		return 0xff
	default:
		return 0x0
	}
}

// Width returns the number of hex digits the operand kind encodes to.
func (kind OperandKind) Width() int {
	if kind == KIND_ADDRESS {
		return 2
	}
	return 1
}

// Slot is one entry of an operation's output layout: either a literal
// zero nibble, or the index of an input operand.
type Slot int

// SLOT_ZERO emits a literal zero nibble.
const SLOT_ZERO = Slot(-1)

// Arg returns the slot for input operand n.
func Arg(n int) Slot {
	return Slot(n)
}

// IsZero returns true for the literal zero slot.
func (slot Slot) IsZero() bool {
	return slot < 0
}

// Index returns the input operand index of the slot.
func (slot Slot) Index() int {
	return int(slot)
}
