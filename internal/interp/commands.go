package interp

import (
	"strings"

	"mathtext/internal/document"
	"mathtext/internal/util"
)

// interpretCommand recognizes a directive at the start of a line:
// $$[command-name] [options]. A leading + or - after $$ becomes a "true"
// or "false" first parameter.
func (in *Interpreter) interpretCommand(src string, i *int) (document.Vector, bool, error) {
	if !strings.HasPrefix(src[*i:], "$$") {
		return nil, false, nil
	}

	pos := *i + 2
	var name strings.Builder
	var params strings.Builder

	if pos < len(src) {
		switch src[pos] {
		case '+':
			params.WriteString("true ")
			pos++
		case '-':
			params.WriteString("false ")
			pos++
		}
	}

	for pos < len(src) && util.IsAlpha(src[pos]) {
		name.WriteByte(src[pos])
		pos++
	}

	for pos < len(src) {
		params.WriteByte(src[pos])
		pos++
	}

	commandName := name.String()
	commandParameters := strings.TrimSpace(params.String())

	if !in.IsCommand(commandName) {
		return nil, false, in.errorf(UnknownCommand, "'%s'", commandName)
	}
	tracer().Debugf("found command: %s // %s", commandName, commandParameters)

	*i = pos
	return document.Vector{
		&document.Command{Name: commandName, Parameters: commandParameters},
	}, true, nil
}
