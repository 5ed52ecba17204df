// Package louis adapts the external braille translation table tool
// (liblouis) behind a small interface so renderers can translate prose to
// braille and tests can substitute a deterministic translator.
//
// The tool keeps process-wide state (table search path); configure it once
// at startup via Configure and pair with Close at shutdown.
package louis

import (
	"fmt"
	"os/exec"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'mathtext.louis'.
func tracer() tracing.Trace {
	return tracing.Select("mathtext.louis")
}

// UEBGrade1Table is the translation table for uncontracted (grade 1) UEB.
const UEBGrade1Table = "en-ueb-g1.ctb"

// MaxBufferSize is the translation tool's internal string buffer size; a
// single translation request cannot exceed it.
const MaxBufferSize = 512

// Translator converts print text into ASCII braille.
type Translator interface {
	TranslateString(s string) (string, error)
}

// Error reports a failed translation.
type Error struct {
	Text string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("braille translation of %q failed: %v", e.Text, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

var dataPath string

// Configure records the directory searched for translation tables.
// Call once at startup.
func Configure(path string) {
	dataPath = path
}

// Close releases process-wide translator state. Call at shutdown.
func Close() {
	dataPath = ""
}

// Default returns the lou_translate-backed translator when the tool is
// installed, and the builtin fallback otherwise.
func Default() Translator {
	if _, err := exec.LookPath("lou_translate"); err == nil {
		return &CommandTranslator{Table: UEBGrade1Table}
	}
	tracer().Infof("lou_translate not found; using builtin grade 1 table")
	return &BuiltinTranslator{}
}
