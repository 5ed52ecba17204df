package interp

import (
	"strings"

	"mathtext/internal/util"
)

// defaultItemTerminators end an extractItem scan.
const defaultItemTerminators = ",+/*=<>()[]{} ~@#"

// extractItem copies the next "item" from src: everything up to the next
// terminator. A semicolon also terminates the item and is consumed without
// appearing in the output. Items may begin with a minus sign, but a minus
// anywhere past the first character terminates the item.
func extractItem(src string, i *int, terminators string) (string, bool) {
	currentTerminators := terminators
	pos := *i

	for pos < len(src) && util.IsSpace(src[pos]) {
		pos++
	}
	start := pos

	var target strings.Builder
	for ; pos < len(src); pos++ {
		if src[pos] == ';' {
			pos++
			break
		}

		// Other terminators are not consumed; they wind up in the
		// remaining output.
		if util.IsOneOf(src[pos], currentTerminators) {
			break
		}

		if pos == start {
			currentTerminators += "-"
		}

		target.WriteByte(src[pos])
	}

	*i = pos

	result := strings.TrimSpace(target.String())
	return result, result != ""
}

// extractGroup copies the next group of symbols bounded by groupOpen and
// groupClose, honoring nested same-delimiter groups. With retainDelims the
// delimiters are kept in the result. Returns false when the group never
// closes (the cursor is left at the end of the scan).
func extractGroup(src string, i *int, groupOpen, groupClose string, retainDelims bool) (string, bool) {
	nesting := 0
	foundTerminator := false
	pos := *i

	for pos < len(src) && util.IsSpace(src[pos]) {
		pos++
	}

	if !strings.HasPrefix(src[pos:], groupOpen) {
		return "", false
	}
	pos += len(groupOpen)

	var target strings.Builder
	if retainDelims {
		target.WriteString(groupOpen)
	}

	for ; pos < len(src); pos++ {
		if strings.HasPrefix(src[pos:], groupOpen) {
			nesting++
		} else if strings.HasPrefix(src[pos:], groupClose) {
			if nesting == 0 {
				foundTerminator = true
				pos += len(groupClose)
				break
			}
			nesting--
		}

		target.WriteByte(src[pos])
	}

	*i = pos
	if !foundTerminator {
		return target.String(), false
	}

	if retainDelims {
		target.WriteString(groupClose)
	}
	return target.String(), true
}

// extractToDelimiter copies up to the next delim. If the scan starts with
// an open paren, the whole parenthesized group is taken regardless of
// whether it contains the delimiter.
func extractToDelimiter(src string, i *int, delim string) (string, bool) {
	pos := *i

	for pos < len(src) && util.IsSpace(src[pos]) {
		pos++
	}

	if pos < len(src) && src[pos] == '(' {
		target, ok := extractGroup(src, &pos, "(", ")", false)
		if !ok {
			return target, false
		}

		// Expect the delimiter just after the group.
		if !strings.HasPrefix(src[pos:], delim) {
			return target, false
		}
		pos += len(delim)

		*i = pos
		return target, true
	}

	foundTerminator := false
	var target strings.Builder
	for ; pos < len(src); pos++ {
		if strings.HasPrefix(src[pos:], delim) {
			pos += len(delim)
			foundTerminator = true
			break
		}
		target.WriteByte(src[pos])
	}

	*i = pos
	return target.String(), foundTerminator
}
