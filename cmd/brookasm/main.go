// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/k0kubun/pp/v3"
	"github.com/tebeka/atexit"
	"golang.org/x/text/language"

	"github.com/ezrec/brookshear/assembler"
	"github.com/ezrec/brookshear/isa"
	"github.com/ezrec/brookshear/translate"
)

// errDefine is a malformed -D argument.
type errDefine string

func (err errDefine) Error() string {
	return translate.From("expected NAME=VALUE, got %q", string(err))
}

// define parses a NAME=VALUE predefine into the translator.
func define(tr *assembler.Translator, arg string) error {
	name, value, ok := strings.Cut(arg, "=")
	if !ok || len(name) == 0 {
		return errDefine(arg)
	}
	v64, err := strconv.ParseInt(value, 0, 64)
	if err != nil {
		return err
	}
	tr.Predefine(name, v64)
	return nil
}

func fatalf(format string, args ...any) {
	log.Printf(format, args...)
	atexit.Exit(1)
}

func main() {
	var source string
	var output string
	var lang string
	var url bool
	var list bool
	var dump bool

	tr := &assembler.Translator{}

	flag.StringVar(&source, "c", "-", "Source file to translate")
	flag.StringVar(&output, "o", "-", "Output file")
	flag.StringVar(&lang, "lang", "", "Language of diagnostics (default from locale)")
	flag.BoolVar(&url, "u", false, "Write a brookshear-emu link instead of the bare code")
	flag.BoolVar(&list, "l", false, "List the instruction set and exit")
	flag.BoolVar(&dump, "p", false, "Pretty print the translated program to stderr")
	flag.BoolVar(&tr.Verbose, "v", false, "Verbose mode")
	flag.BoolVar(&tr.Expressions, "x", false, "Expand $(...) expressions")
	flag.Func("D", "Predefine NAME=VALUE for $(...) expressions", func(arg string) error {
		return define(tr, arg)
	})

	flag.Parse()

	if flag.NArg() != 0 {
		fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	if len(lang) != 0 {
		tag, err := language.Parse(lang)
		if err != nil {
			fatalf("%v: %v", lang, err)
		}
		translate.SetLanguage(tag)
	}

	if list {
		for op := range isa.Operations() {
			fmt.Printf("%-12v %x %v\n", op.Name(), op.Opcode(), op.Inputs)
		}
		atexit.Exit(0)
	}

	var inf io.Reader = os.Stdin
	if source != "-" {
		file, err := os.Open(source)
		if err != nil {
			fatalf("%v: %v", source, err)
		}
		atexit.Register(func() { file.Close() })
		inf = file
	}

	var ouf io.Writer = os.Stdout
	if output != "-" {
		file, err := os.Create(output)
		if err != nil {
			fatalf("%v: %v", output, err)
		}
		atexit.Register(func() { file.Close() })
		ouf = file
	}

	code, err := tr.TranslateReader(inf)
	if err != nil {
		fatalf("%v: %v", source, err)
	}

	prog := tr.Program()
	if url {
		code = prog.URL()
	}
	fmt.Fprintln(ouf, code)

	if dump {
		pp.Fprintln(os.Stderr, prog)
	}

	for err := range prog.Errors() {
		log.Printf("%v: %v", source, err)
	}

	if failed := prog.Failed(); failed != 0 {
		fatalf("%v: %v", source, assembler.ErrFailed(failed))
	}

	atexit.Exit(0)
}
