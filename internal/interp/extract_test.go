package interp

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractItem(t *testing.T) {
	tests := []struct {
		src      string
		expected string
		rest     string
	}{
		{"2y", "2y", ""},
		{"2+y", "2", "+y"},
		{"y;+1", "y", "+1"},
		{"-3x", "-3x", ""},
		{"x-y", "x", "-y"},
		{"  padded,rest", "padded", ",rest"},
	}

	for _, test := range tests {
		i := 0
		item, ok := extractItem(test.src, &i, defaultItemTerminators)
		assert.True(t, ok, "src: %s", test.src)
		assert.Equal(t, test.expected, item, "src: %s", test.src)
		assert.Equal(t, test.rest, test.src[i:], "src: %s", test.src)
	}

	i := 0
	_, ok := extractItem("", &i, defaultItemTerminators)
	assert.False(t, ok)
}

func TestExtractGroupBalanced(t *testing.T) {
	tests := []struct {
		src      string
		expected string
	}{
		{"(a)", "a"},
		{"(a(b)c)", "a(b)c"},
		{"((a)(b))", "(a)(b)"},
		{"(a(b(c)))", "a(b(c))"},
	}

	for _, test := range tests {
		i := 0
		contents, ok := extractGroup(test.src, &i, "(", ")", false)
		assert.True(t, ok, "src: %s", test.src)
		assert.Equal(t, test.expected, contents, "src: %s", test.src)
		assert.Equal(t, len(test.src), i, "src: %s", test.src)

		// Balanced: equal open and close counts inside the extraction.
		assert.Equal(t,
			strings.Count(contents, "("), strings.Count(contents, ")"),
			"src: %s", test.src)
	}

	i := 0
	_, ok := extractGroup("(never closed", &i, "(", ")", false)
	assert.False(t, ok)
}

func TestExtractGroupRetainsDelimiters(t *testing.T) {
	i := 0
	contents, ok := extractGroup("@1~2#x", &i, "@", "#", true)
	assert.True(t, ok)
	assert.Equal(t, "@1~2#", contents)
	assert.Equal(t, "x", "@1~2#x"[i:])
}

func TestExtractToDelimiter(t *testing.T) {
	i := 0
	out, ok := extractToDelimiter("1,10)", &i, ",")
	assert.True(t, ok)
	assert.Equal(t, "1", out)

	// A leading paren group swallows internal delimiters.
	i = 0
	out, ok = extractToDelimiter("(i,j),n)", &i, ",")
	assert.True(t, ok)
	assert.Equal(t, "i,j", out)
	assert.Equal(t, "n)", "(i,j),n)"[i:])

	i = 0
	_, ok = extractToDelimiter("no delimiter", &i, ",")
	assert.False(t, ok)
}
