package interp

import (
	"regexp"
	"strings"

	"mathtext/internal/document"
)

// Accepted item number formats, tried in order:
// "1. " "a. " "1) " "a) " "(1) " "(a) "
var itemNumberPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^(\d{1,4}\.\s+)`),
	regexp.MustCompile(`^([A-Za-z]\.\s+)`),
	regexp.MustCompile(`^(\d{1,4}\)\s+)`),
	regexp.MustCompile(`^([A-Za-z]\)\s+)`),
	regexp.MustCompile(`^(\(\d{1,4}\)\s+)`),
	regexp.MustCompile(`^(\([A-Za-z]\)\s+)`),
}

// interpretItemNumber recognizes question/exercise numbers at the start of
// a line. They are kept as a special text block so renderers can set them
// apart.
func (in *Interpreter) interpretItemNumber(src string, i *int) (document.Vector, bool, error) {
	// Item numbers will not be longer than 10 characters.
	searchStr := src[*i:]
	if len(searchStr) > 10 {
		searchStr = searchStr[:10]
	}

	for _, pattern := range itemNumberPatterns {
		m := pattern.FindStringSubmatch(searchStr)
		if m == nil {
			continue
		}

		itemNumber := strings.TrimSpace(m[1])
		tracer().Debugf("added item number '%s'", itemNumber)

		*i += len(m[0])
		return document.Vector{&document.ItemNumber{Text: itemNumber}}, true, nil
	}

	return nil, false, nil
}
