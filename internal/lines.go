package internal

import (
	"iter"
	"strings"
)

// LINE_TERMINATOR separates source lines.
const LINE_TERMINATOR = "\n"

// Lines iterates over the lines of text, numbered from 1.
// A trailing carriage return is left on the line for the caller to trim.
func Lines(text string) iter.Seq2[int, string] {
	return func(yield func(lineno int, line string) bool) {
		lineno := 0
		for line := range strings.SplitSeq(text, LINE_TERMINATOR) {
			lineno++
			if !yield(lineno, line) {
				return // Stop if the consumer stops
			}
		}
	}
}
