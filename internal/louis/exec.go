package louis

import (
	"bytes"
	"os"
	"os/exec"
	"strings"
)

// CommandTranslator drives the lou_translate tool, one invocation per
// translation request.
type CommandTranslator struct {
	// Table is the translation table list handed to the tool.
	Table string
}

// TranslateString runs a forward translation of s.
func (t *CommandTranslator) TranslateString(s string) (string, error) {
	if len(s) >= MaxBufferSize {
		return "", &Error{Text: s, Err: errTooLong}
	}

	table := t.Table
	if table == "" {
		table = UEBGrade1Table
	}

	cmd := exec.Command("lou_translate", "--forward", table)
	cmd.Stdin = strings.NewReader(s)
	if dataPath != "" {
		cmd.Env = append(os.Environ(), "LOUIS_TABLEPATH="+dataPath)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	tracer().Debugf("sending %d chars to louis using table '%s': {%s}", len(s), table, s)
	if err := cmd.Run(); err != nil {
		return "", &Error{Text: s, Err: err}
	}

	return strings.TrimRight(stdout.String(), "\n"), nil
}
