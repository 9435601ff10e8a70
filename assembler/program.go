package assembler

import (
	"encoding/hex"
	"iter"
	"strings"
)

const (
	ERROR_MARKER = "[ERR]"                                         // Output in place of a failed line.
	VIEWER_URL   = "http://joeledstrom.github.io/brookshear-emu/#" // Prefix of the emulator viewer link.
)

// Line is one translated source line.
type Line struct {
	LineNo      int
	Source      string
	Instruction Instruction // Valid only when Err is nil.
	Code        string
	Err         error
}

// Output returns the line's contribution to the program output.
func (line *Line) Output() string {
	if line.Err != nil {
		return ERROR_MARKER
	}
	return line.Code
}

// Program is the result of a single translation run.
// Lines with nothing to encode are not recorded.
type Program struct {
	Lines []Line
}

// String concatenates the output of every line.
func (prog *Program) String() string {
	var out strings.Builder
	for n := range prog.Lines {
		out.WriteString(prog.Lines[n].Output())
	}
	return out.String()
}

// Codes iterates over the successfully encoded lines.
func (prog *Program) Codes() iter.Seq2[int, string] {
	return func(yield func(lineno int, code string) bool) {
		for _, line := range prog.Lines {
			if line.Err != nil {
				continue
			}
			if !yield(line.LineNo, line.Code) {
				return
			}
		}
	}
}

// Errors iterates over the diagnostics of the failed lines.
func (prog *Program) Errors() iter.Seq[error] {
	return func(yield func(err error) bool) {
		for _, line := range prog.Lines {
			if line.Err == nil {
				continue
			}
			if !yield(&ErrSyntax{LineNo: line.LineNo, Line: line.Source, Err: line.Err}) {
				return
			}
		}
	}
}

// Failed returns the number of failed lines.
func (prog *Program) Failed() (count int) {
	for range prog.Errors() {
		count++
	}
	return
}

// Binary returns the machine code of a program without failed lines.
func (prog *Program) Binary() (bins []byte, err error) {
	if failed := prog.Failed(); failed != 0 {
		err = ErrFailed(failed)
		return
	}

	var code strings.Builder
	for _, word := range prog.Codes() {
		code.WriteString(word)
	}

	bins, err = hex.DecodeString(code.String())
	return
}

// URL returns a brookshear-emu link that loads the program.
func (prog *Program) URL() string {
	return VIEWER_URL + prog.String()
}
