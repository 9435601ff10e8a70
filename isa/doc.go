// Package isa describes the instruction set of the Brookshear machine.
//
// The Brookshear machine is a teaching computer with sixteen 8-bit
// registers, 256 bytes of memory, and fixed 16-bit instructions. Every
// instruction is a 4-bit opcode followed by three nibbles of operands,
// where an 8-bit memory address occupies two of those nibbles.
//
// The instruction catalog is built once and never mutated, so it may be
// shared freely between goroutines.
package isa
