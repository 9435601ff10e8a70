// Package translate localizes diagnostics for the host locale.
package translate

import (
	"log"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer *message.Printer

// german is the catalog for the course the assembler was written for.
var german = map[string]string{
	"unknown mnemonic %q":                  "unbekannte Mnemonik %q",
	"mnemonic %v needs an operand list":    "Mnemonik %v erwartet eine Operandenliste",
	"%v expects %d operands, got %d":       "%v erwartet %d Operanden, erhalten %d",
	"operand %q is not hexadecimal":        "Operand %q ist nicht hexadezimal",
	"%v operand 0x%x exceeds maximum 0x%x": "%v-Operand 0x%x überschreitet Maximum 0x%x",
	"$(%v) is not a valid expression":      "$(%v) ist kein gültiger Ausdruck",
	"line %d '%v' %v":                      "Zeile %d '%v' %v",
	"program has %d failed lines":          "Programm hat %d fehlerhafte Zeilen",
	"expected NAME=VALUE, got %q":          "erwartet NAME=WERT, erhalten %q",
}

// supported languages, the first being the fallback.
var supported = []language.Tag{language.AmericanEnglish, language.German}

var matcher = language.NewMatcher(supported)

func init() {
	for key, msg := range german {
		if err := message.SetString(language.German, key, msg); err != nil {
			log.Printf("brookshear: catalog: %v", err)
		}
	}

	Detect()
}

// Match returns the supported language closest to a list of BCP 47 locales.
func Match(locales ...string) language.Tag {
	if len(locales) == 0 {
		return supported[0]
	}
	_, index := language.MatchStrings(matcher, locales...)
	return supported[index]
}

// Detect selects the language for From() from the host locale.
func Detect() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("brookshear: locale: %v", err)
	}

	SetLanguage(Match(locales...))
}

// SetLanguage selects the language for subsequent From() calls.
func SetLanguage(tag language.Tag) {
	printer = message.NewPrinter(tag)
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}

// In translates an en-US Sprintf() format into a specific language.
func In(tag language.Tag, key message.Reference, args ...any) string {
	return message.NewPrinter(tag).Sprintf(key, args...)
}
