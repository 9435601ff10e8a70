// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package isa

import (
	"iter"
	"slices"
	"strings"
)

// Mnemonic names an operation. Its value is the operation's opcode.
type Mnemonic int

//go:generate go tool stringer -linecomment -type=Mnemonic
const (
	OP_LOAD         = Mnemonic(0x1) // LOAD
	OP_LOADI        = Mnemonic(0x2) // LOADI
	OP_STORE        = Mnemonic(0x3) // STORE
	OP_MOVE         = Mnemonic(0x4) // MOVE
	OP_ADD          = Mnemonic(0x5) // ADD
	OP_ADD_FLOAT    = Mnemonic(0x6) // ADD_FLOAT
	OP_OR           = Mnemonic(0x7) // OR
	OP_AND          = Mnemonic(0x8) // AND
	OP_XOR          = Mnemonic(0x9) // XOR
	OP_ROTATE_RIGHT = Mnemonic(0xa) // ROTATE_RIGHT
	OP_JUMP         = Mnemonic(0xb) // JUMP
	OP_HALT         = Mnemonic(0xc) // HALT
)

// INSTRUCTION_WIDTH is the number of hex digits in an encoded instruction.
const INSTRUCTION_WIDTH = 4

// Operation describes how one mnemonic is encoded.
type Operation struct {
	Mnemonic Mnemonic      // Mnemonic, and opcode.
	Inputs   []OperandKind // Kinds of the source operands, in source order.
	Outputs  []Slot        // Layout of the nibbles after the opcode.
}

// Opcode returns the 4-bit opcode.
func (op *Operation) Opcode() uint8 {
	return uint8(op.Mnemonic) & 0xf
}

// Name returns the canonical mnemonic text.
func (op *Operation) Name() string {
	return op.Mnemonic.String()
}

// Arity returns the number of source operands.
func (op *Operation) Arity() int {
	return len(op.Inputs)
}

// Width returns the number of hex digits the operation encodes to.
func (op *Operation) Width() (width int) {
	width = 1
	for _, slot := range op.Outputs {
		if slot.IsZero() {
			width++
		} else {
			width += op.Inputs[slot.Index()].Width()
		}
	}
	return
}

// catalog is indexed by opcode. Entries never share slices.
var catalog = [...]Operation{
	{OP_LOAD, []OperandKind{KIND_REGISTER, KIND_ADDRESS}, []Slot{Arg(0), Arg(1)}},
	{OP_LOADI, []OperandKind{KIND_REGISTER, KIND_ADDRESS}, []Slot{Arg(0), Arg(1)}},
	{OP_STORE, []OperandKind{KIND_ADDRESS, KIND_REGISTER}, []Slot{Arg(1), Arg(0)}},
	{OP_MOVE, []OperandKind{KIND_REGISTER, KIND_REGISTER}, []Slot{SLOT_ZERO, Arg(1), Arg(0)}},
	{OP_ADD, []OperandKind{KIND_REGISTER, KIND_REGISTER, KIND_REGISTER}, []Slot{Arg(0), Arg(1), Arg(2)}},
	{OP_ADD_FLOAT, []OperandKind{KIND_REGISTER, KIND_REGISTER, KIND_REGISTER}, []Slot{Arg(0), Arg(1), Arg(2)}},
	{OP_OR, []OperandKind{KIND_REGISTER, KIND_REGISTER, KIND_REGISTER}, []Slot{Arg(0), Arg(1), Arg(2)}},
	{OP_AND, []OperandKind{KIND_REGISTER, KIND_REGISTER, KIND_REGISTER}, []Slot{Arg(0), Arg(1), Arg(2)}},
	{OP_XOR, []OperandKind{KIND_REGISTER, KIND_REGISTER, KIND_REGISTER}, []Slot{Arg(0), Arg(1), Arg(2)}},
	{OP_ROTATE_RIGHT, []OperandKind{KIND_REGISTER, KIND_NIBBLE}, []Slot{Arg(0), SLOT_ZERO, Arg(1)}},
	{OP_JUMP, []OperandKind{KIND_ADDRESS, KIND_REGISTER}, []Slot{Arg(1), Arg(0)}},
	{OP_HALT, nil, []Slot{SLOT_ZERO, SLOT_ZERO, SLOT_ZERO}},
}

// nameMap maps canonical mnemonic text to catalog indexes.
var nameMap = func() map[string]int {
	names := make(map[string]int, len(catalog))
	for n := range catalog {
		names[catalog[n].Name()] = n
	}
	return names
}()

// clone copies an operation, so callers can not alter the catalog.
func (op *Operation) clone() *Operation {
	return &Operation{
		Mnemonic: op.Mnemonic,
		Inputs:   slices.Clone(op.Inputs),
		Outputs:  slices.Clone(op.Outputs),
	}
}

// Canonical folds a mnemonic token to its catalog spelling.
// Hyphenated aliases ("ROTATE-RIGHT") become underscored.
func Canonical(token string) string {
	return strings.ToUpper(strings.ReplaceAll(token, "-", "_"))
}

// Lookup finds the operation for a mnemonic token.
// The result is a copy owned by the caller.
func Lookup(token string) (op *Operation, ok bool) {
	n, ok := nameMap[Canonical(token)]
	if ok {
		op = catalog[n].clone()
	}
	return
}

// Operations iterates over copies of the catalog in opcode order.
func Operations() iter.Seq[*Operation] {
	return func(yield func(op *Operation) bool) {
		for n := range catalog {
			if !yield(catalog[n].clone()) {
				return
			}
		}
	}
}
