// Package assembler translates Brookshear machine assembly into the
// hex string format accepted by the brookshear-emu viewer.
//
// Each source line passes through four independent stages: Normalize,
// Decode, Validate and Encode. The Translator runs them over a whole
// program, emitting a 4 digit code per instruction, or the [ERR] marker
// for a line that failed any stage. A failed line never stops the
// translation of the lines after it.
//
// Optionally, $(...) compile-time expressions are expanded in operand
// lists before decoding.
package assembler
