package source

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// maxIncludeDepth bounds #include nesting.
const maxIncludeDepth = 5

// File holds the logical lines of a source document, in reading order,
// with all #include directives already expanded.
type File struct {
	lines []Line
}

// Lines returns the loaded logical lines.
func (f *File) Lines() []Line {
	return f.lines
}

// LoadFile reads and ingests the named file, expanding #include directives
// recursively (at most 5 levels deep).
func (f *File) LoadFile(path string) error {
	return f.loadFile(path, 0)
}

// LoadBuffer ingests source text from memory, tagging lines with a
// placeholder filename.
func (f *File) LoadBuffer(buffer, filename string) error {
	if filename == "" {
		filename = "(buffer)"
	}
	return f.ingest(filename, normalize(buffer), 0)
}

func (f *File) loadFile(path string, depth int) error {
	contents, err := os.ReadFile(path)
	if err != nil {
		return &FileError{Path: path, Op: "open", Err: err}
	}
	tracer().Debugf("loaded %s (%d bytes)", path, len(contents))
	return f.ingest(path, normalize(string(contents)), depth)
}

// normalize strips carriage returns so CRLF input behaves like LF input.
func normalize(buffer string) string {
	return strings.ReplaceAll(buffer, "\r", "")
}

func (f *File) ingest(filename, buffer string, depth int) error {
	lineNumber := 0
	continuedFrom := 0
	var curLine strings.Builder

	for i := 0; i < len(buffer); {
		lineNumber++

		eol := strings.IndexByte(buffer[i:], '\n')
		var temp string
		if eol < 0 {
			temp = buffer[i:]
			i = len(buffer)
		} else {
			temp = buffer[i : i+eol]
			i += eol + 1
		}

		// Trailing whitespace is meaningless; leading whitespace may
		// matter (e.g. verbatim sections) and is preserved.
		temp = strings.TrimRight(temp, " \t")

		// Continuation lines: a trailing backslash splices this line
		// with the next one.
		if len(temp) > 1 && temp[len(temp)-1] == '\\' {
			if continuedFrom == 0 {
				continuedFrom = lineNumber
			}
			curLine.WriteString(temp[:len(temp)-1])
			continue
		}

		// Include directives appear at the left margin:
		// #include <filename>
		if strings.HasPrefix(temp, "#include ") {
			if depth+1 > maxIncludeDepth {
				return &ParseError{
					Path: filename,
					Line: lineNumber,
					Msg:  "you cannot nest #included files more than five levels deep",
				}
			}

			includeName := strings.TrimSpace(temp[len("#include "):])
			if err := f.loadFile(includeName, depth+1); err != nil {
				return decorateIncludeError(err, filename, lineNumber)
			}
			continue
		}

		curLine.WriteString(temp)
		if continuedFrom == 0 {
			continuedFrom = lineNumber
		}

		f.lines = append(f.lines, Line{
			Filename: filename,
			Line1:    continuedFrom,
			Line2:    lineNumber,
			Content:  curLine.String(),
		})
		curLine.Reset()
		continuedFrom = 0
	}

	return nil
}

// decorateIncludeError records the chain of including files on an error
// bubbling up from a nested load, so the user can find the directive that
// pulled the bad file in.
func decorateIncludeError(err error, filename string, lineNumber int) error {
	chain := fmt.Sprintf(" (included by %q at line %d)", filename, lineNumber)

	var fe *FileError
	if errors.As(err, &fe) {
		fe.Path += chain
		return err
	}
	var pe *ParseError
	if errors.As(err, &pe) {
		pe.Path += chain
		return err
	}
	return err
}
