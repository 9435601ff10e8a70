package assembler

import (
	"bytes"
	"errors"
	"log"
	"os"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"

	"github.com/ezrec/brookshear/isa"
	"github.com/ezrec/brookshear/translate"
)

func TestTranslator(t *testing.T) {
	assert := assert.New(t)

	tr := &Translator{}

	output, ok := tr.LastResult()
	assert.False(ok)
	assert.Equal("", output)
	assert.Nil(tr.Program())

	table := map[string]string{
		"LOAD 1,2A":                "112a",
		"HALT":                     "c000",
		"ADD 1,2,3":                "5123",
		"LOAD 1,2A,3":              "[ERR]",
		"FOO 1,2":                  "[ERR]",
		";just a comment\nHALT":    "c000",
		"":                         "",
		"\n\n   \n; only comments": "",
	}

	for source, expected := range table {
		assert.Equal(expected, tr.Translate(source), source)
		output, ok = tr.LastResult()
		assert.True(ok, source)
		assert.Equal(expected, output, source)
	}
}

func TestTranslatorProgram(t *testing.T) {
	assert := assert.New(t)

	tr := &Translator{}

	program := []string{
		"; add two numbers",
		"LOAD 1,2A",
		"FOO 1,2",
		"",
		"add 3,1,2 ; sum",
		"LOAD 1,2A,3",
		"rotate-right 3,4",
		"halt",
	}

	output := tr.Translate(strings.Join(program, "\n"))
	assert.Equal("112a[ERR]5312[ERR]a304c000", output)

	prog := tr.Program()
	if !assert.NotNil(prog) {
		return
	}
	assert.Equal(6, len(prog.Lines))
	assert.Equal(2, prog.Lines[0].LineNo)
	assert.Equal("LOAD 1,2A", prog.Lines[0].Source)
	assert.Equal("112a", prog.Lines[0].Output())
	assert.Equal(ERROR_MARKER, prog.Lines[1].Output())

	var linenos []int
	for err := range prog.Errors() {
		var syntax *ErrSyntax
		if assert.True(errors.As(err, &syntax)) {
			linenos = append(linenos, syntax.LineNo)
		}
	}
	assert.Equal([]int{3, 6}, linenos)
	assert.Equal(2, prog.Failed())

	errs := []error{}
	for err := range prog.Errors() {
		errs = append(errs, errors.Unwrap(err))
	}
	assert.ErrorIs(errs[0], ErrMnemonicUnknown(""))
	assert.ErrorIs(errs[1], ErrOperandCount{})
}

func TestTranslatorReplace(t *testing.T) {
	assert := assert.New(t)

	tr := &Translator{}

	tr.Translate("LOAD 1,2A\nHALT")
	first := tr.Program()

	assert.Equal("c000", tr.Translate("HALT"))
	output, ok := tr.LastResult()
	assert.True(ok)
	assert.Equal("c000", output)

	// The earlier program is untouched.
	assert.Equal("112ac000", first.String())
	assert.NotSame(first, tr.Program())
}

func TestTranslatorCarriageReturn(t *testing.T) {
	assert := assert.New(t)

	tr := &Translator{}
	assert.Equal("112ac000", tr.Translate("LOAD 1,2A\r\nHALT\r\n"))
}

func TestTranslateReader(t *testing.T) {
	assert := assert.New(t)

	tr := &Translator{}

	output, err := tr.TranslateReader(strings.NewReader("MOVE 1,2\nJUMP 2A,1"))
	assert.NoError(err)
	assert.Equal("4021b12a", output)

	_, err = tr.TranslateReader(iotest.ErrReader(errors.New("broken")))
	assert.Error(err)

	// A failed read keeps the previous result.
	output, ok := tr.LastResult()
	assert.True(ok)
	assert.Equal("4021b12a", output)
}

func TestTranslatorVerbose(t *testing.T) {
	assert := assert.New(t)

	translate.SetLanguage(language.AmericanEnglish)

	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)
	flags := log.Flags()
	log.SetFlags(0)
	defer log.SetFlags(flags)

	tr := &Translator{Verbose: true}
	tr.Translate("LOAD 1,2A\nFOO 1,2")

	text := buf.String()
	assert.Contains(text, "1: LOAD 1,2A")
	assert.Contains(text, "=> 112a")
	assert.Contains(text, "line 2 'FOO 1,2'")
}

func TestTranslatorCatalogUnchanged(t *testing.T) {
	assert := assert.New(t)

	store, _ := isa.Lookup("STORE")
	store.Outputs[0] = isa.Arg(0)

	tr := &Translator{}
	assert.Equal("312ab12a", tr.Translate("STORE 2A,1\nJUMP 2A,1"))
}
