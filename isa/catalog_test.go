package isa

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOperandKind(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(uint8(0x0), KIND_ZERO.Max())
	assert.Equal(uint8(0xf), KIND_REGISTER.Max())
	assert.Equal(uint8(0xf), KIND_NIBBLE.Max())
	assert.Equal(uint8(0xff), KIND_ADDRESS.Max())

	assert.Equal(1, KIND_REGISTER.Width())
	assert.Equal(1, KIND_NIBBLE.Width())
	assert.Equal(2, KIND_ADDRESS.Width())

	assert.Equal("address", KIND_ADDRESS.String())
	assert.Equal("OperandKind(9)", OperandKind(9).String())
}

func TestCatalog(t *testing.T) {
	assert := assert.New(t)

	count := 0
	for op := range Operations() {
		count++
		assert.Equal(uint8(count), op.Opcode(), op.Name())
		assert.Equal(INSTRUCTION_WIDTH, op.Width(), op.Name())
		assert.Equal(3, len(op.Outputs)+countAddress(op), op.Name())
		for _, slot := range op.Outputs {
			if !slot.IsZero() {
				assert.Less(slot.Index(), op.Arity(), op.Name())
			}
		}
	}
	assert.Equal(12, count)
}

func countAddress(op *Operation) (count int) {
	for _, slot := range op.Outputs {
		if !slot.IsZero() && op.Inputs[slot.Index()] == KIND_ADDRESS {
			count++
		}
	}
	return
}

func TestLookup(t *testing.T) {
	assert := assert.New(t)

	table := map[string]Mnemonic{
		"LOAD":         OP_LOAD,
		"load":         OP_LOAD,
		"LoadI":        OP_LOADI,
		"STORE":        OP_STORE,
		"MOVE":         OP_MOVE,
		"ADD":          OP_ADD,
		"ADD_FLOAT":    OP_ADD_FLOAT,
		"add-float":    OP_ADD_FLOAT,
		"OR":           OP_OR,
		"AND":          OP_AND,
		"XOR":          OP_XOR,
		"ROTATE_RIGHT": OP_ROTATE_RIGHT,
		"ROTATE-RIGHT": OP_ROTATE_RIGHT,
		"JUMP":         OP_JUMP,
		"HALT":         OP_HALT,
	}

	for token, mnemonic := range table {
		op, ok := Lookup(token)
		if assert.True(ok, token) {
			assert.Equal(mnemonic, op.Mnemonic, token)
		}
	}

	for _, token := range []string{"", "FOO", "LOADX", "ADD FLOAT", "HALT "} {
		_, ok := Lookup(token)
		assert.False(ok, token)
	}
}

func TestOperation(t *testing.T) {
	assert := assert.New(t)

	op, ok := Lookup("ROTATE-RIGHT")
	assert.True(ok)
	assert.Equal("ROTATE_RIGHT", op.Name())
	assert.Equal(uint8(0xa), op.Opcode())
	assert.Equal(2, op.Arity())
	assert.Equal([]Slot{Arg(0), SLOT_ZERO, Arg(1)}, op.Outputs)

	op, ok = Lookup("HALT")
	assert.True(ok)
	assert.Equal(0, op.Arity())
	assert.Equal(4, op.Width())

	assert.Equal("Mnemonic(0)", Mnemonic(0).String())
	assert.Equal("HALT", OP_HALT.String())
}

func TestLookupCopy(t *testing.T) {
	assert := assert.New(t)

	store, ok := Lookup("STORE")
	assert.True(ok)
	store.Mnemonic = OP_HALT
	store.Inputs[0] = KIND_ZERO
	store.Outputs[0] = Arg(0)

	store, ok = Lookup("STORE")
	assert.True(ok)
	assert.Equal(OP_STORE, store.Mnemonic)
	assert.Equal([]OperandKind{KIND_ADDRESS, KIND_REGISTER}, store.Inputs)
	assert.Equal([]Slot{Arg(1), Arg(0)}, store.Outputs)

	jump, ok := Lookup("JUMP")
	assert.True(ok)
	assert.Equal([]Slot{Arg(1), Arg(0)}, jump.Outputs)

	for op := range Operations() {
		op.Outputs[0] = SLOT_ZERO
		op.Inputs = nil
	}
	for op := range Operations() {
		assert.Equal(INSTRUCTION_WIDTH, op.Width(), op.Name())
	}

	add, _ := Lookup("ADD")
	add.Outputs[2] = Arg(0)
	xor, _ := Lookup("XOR")
	assert.Equal([]Slot{Arg(0), Arg(1), Arg(2)}, xor.Outputs)
}
