// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package assembler

import (
	"io"
	"log"
	"strings"

	"github.com/ezrec/brookshear/internal"
)

// Translator is a line-by-line assembler for the Brookshear machine.
// It keeps the result of the most recent translation.
//
// A Translator is not safe for concurrent use.
type Translator struct {
	Verbose     bool // If set, verbosely logs the translation.
	Expressions bool // If set, expands $(...) expressions in source lines.

	predefine map[string]int64 // Names visible to expressions.
	program   *Program         // Most recent translation, nil before the first.
}

// Predefine defines a new expression constant or redefines an existing one.
func (tr *Translator) Predefine(name string, value int64) {
	if tr.predefine == nil {
		tr.predefine = map[string]int64{name: value}
	} else {
		tr.predefine[name] = value
	}
}

// LastResult returns the output of the most recent translation.
// It returns false if nothing has been translated yet.
func (tr *Translator) LastResult() (output string, ok bool) {
	if tr.program == nil {
		return
	}
	return tr.program.String(), true
}

// Program returns the most recent translation, or nil.
func (tr *Translator) Program() *Program {
	return tr.program
}

// Translate assembles a whole source text, replacing any previous result.
// Failed lines appear as ERROR_MARKER in the output.
func (tr *Translator) Translate(source string) string {
	prog := &Program{}

	for lineno, raw := range internal.Lines(source) {
		line, ok := tr.translateLine(lineno, raw)
		if !ok {
			continue
		}
		prog.Lines = append(prog.Lines, line)
	}

	tr.program = prog
	output, _ := tr.LastResult()

	return output
}

// TranslateReader reads an entire source text and translates it.
// The only errors returned are from reading the input.
func (tr *Translator) TranslateReader(input io.Reader) (output string, err error) {
	var source strings.Builder
	_, err = io.Copy(&source, input)
	if err != nil {
		return
	}

	output = tr.Translate(source.String())
	return
}

// translateLine runs a raw line through the pipeline. It returns false
// if the line has nothing to encode.
func (tr *Translator) translateLine(lineno int, raw string) (line Line, ok bool) {
	if tr.Verbose {
		log.Printf("%v: %v\n", lineno, raw)
	}

	line = Line{LineNo: lineno, Source: raw}
	defer func() {
		if !ok {
			return
		}
		if line.Err != nil {
			if tr.Verbose {
				log.Printf("%v", &ErrSyntax{LineNo: lineno, Line: raw, Err: line.Err})
			}
			return
		}
		if tr.Verbose {
			log.Printf("%v: %v %v => %v\n", lineno, line.Instruction.Operation.Name(), line.Instruction.Operands, line.Code)
		}
	}()

	text := stripLine(raw)
	if len(text) == 0 {
		return
	}
	ok = true

	if tr.Expressions {
		text, line.Err = tr.expand(text)
		if line.Err != nil {
			return
		}
	}

	line.Instruction, line.Err = Parse(strings.ToUpper(text))
	if line.Err != nil {
		return
	}

	line.Code = Encode(line.Instruction)
	return
}
