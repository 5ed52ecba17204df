package ueb

import (
	"strings"

	"mathtext/internal/util"
)

// wordwrap is the second pass over the fully rendered braille: it strips
// the block indicators and wrap markers and, when a line width is
// configured, breaks lines at the best recorded wrap point.
func (r *Renderer) wordwrap(rendered string) string {
	if r.maxLineLength == 0 {
		rendered = strings.ReplaceAll(rendered, mathBlockBegin, "")
		rendered = strings.ReplaceAll(rendered, textBlockBegin, "")
		return stripWrappingIndicators(rendered)
	}

	var output strings.Builder
	isInTextBlock := false

	pos := 0
	for pos < len(rendered) {
		var curLine string
		if eol := strings.IndexByte(rendered[pos:], '\n'); eol < 0 {
			curLine = rendered[pos:]
			pos = len(rendered)
		} else {
			curLine = rendered[pos : pos+eol]
			pos += eol + 1
		}

		output.WriteString(r.wrapLine(curLine, &isInTextBlock))
		output.WriteString("\n")
	}

	return output.String()
}

// wrapLine wraps a single rendered line, walking it character by
// character, recording the most recent wrap point of each priority, and
// breaking whenever the output reaches the configured width.
func (r *Renderer) wrapLine(curLine string, isInTextBlock *bool) string {
	var lastBreakPosition [3]int
	var curOutputLine []byte
	curOutputLineLength := 0
	i := 0

	if strings.HasPrefix(curLine, mathBlockBegin) {
		*isInTextBlock = false
		i = len(mathBlockBegin)
	} else if strings.HasPrefix(curLine, textBlockBegin) {
		*isInTextBlock = true
		i = len(textBlockBegin)
	}

	for i < len(curLine) {
		if piece := curLine[i:]; len(piece) >= wrapIndicatorLen {
			switch piece[:wrapIndicatorLen] {
			case wrapPri1:
				lastBreakPosition[0] = len(curOutputLine)
				i += wrapIndicatorLen
				continue
			case wrapPri2:
				lastBreakPosition[1] = len(curOutputLine)
				i += wrapIndicatorLen
				continue
			case wrapPri3:
				lastBreakPosition[2] = len(curOutputLine)
				i += wrapIndicatorLen
				continue
			}
		}

		curOutputLine = append(curOutputLine, curLine[i])
		curOutputLineLength++
		i++

		if curOutputLineLength < r.maxLineLength {
			continue
		}

		// Look for a priority 1 break point within the last 20% of the
		// line, then priority 2, then 3; widen the lookback up to 50%
		// of the line, and failing all that just break right here.
		breakpoint := 0
		for lookback := r.maxLineLength / 5; breakpoint == 0 && lookback < r.maxLineLength/2; lookback++ {
			lookbackStart := len(curOutputLine) - lookback
			for priority := 0; priority < 3 && breakpoint == 0; priority++ {
				if lastBreakPosition[priority] != 0 && lastBreakPosition[priority] >= lookbackStart {
					breakpoint = lastBreakPosition[priority]
				}
			}
		}
		if breakpoint == 0 {
			breakpoint = len(curOutputLine)
		}

		postBreakLength := len(curOutputLine) - breakpoint

		// Delete whitespace on either side of the break.
		for breakpoint > 0 && util.IsSpace(curOutputLine[breakpoint-1]) {
			breakpoint--
			curOutputLine = append(curOutputLine[:breakpoint], curOutputLine[breakpoint+1:]...)
		}
		for breakpoint < len(curOutputLine) && util.IsSpace(curOutputLine[breakpoint]) {
			curOutputLine = append(curOutputLine[:breakpoint], curOutputLine[breakpoint+1:]...)
		}

		continuation := "\n"
		if !*isInTextBlock {
			continuation = "\n  " // 2 cell runover indentation
		}

		curOutputLine = append(curOutputLine[:breakpoint],
			append([]byte(continuation), curOutputLine[breakpoint:]...)...)
		curOutputLineLength = postBreakLength + len(continuation) - 1

		lastBreakPosition = [3]int{}
	}

	return string(curOutputLine)
}
