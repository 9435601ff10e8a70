// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package assembler

import (
	"strings"
)

const (
	COMMENT_SYMBOL   = ";" // Starts a comment running to end of line.
	DELIMITER_SYMBOL = "," // Separates operands.
	MNEMONIC_SYMBOL  = " " // Separates the mnemonic from its operands.
)

// stripLine trims whitespace and removes any comment.
func stripLine(raw string) string {
	line := strings.TrimSpace(raw)
	if n := strings.Index(line, COMMENT_SYMBOL); n >= 0 {
		line = line[:n]
	}
	return line
}

// Normalize prepares a raw source line for decoding: surrounding
// whitespace and comments are removed, and the rest is upper-cased.
// An empty result means there is nothing to encode.
func Normalize(raw string) string {
	return strings.ToUpper(stripLine(raw))
}
