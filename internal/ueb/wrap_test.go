package ueb

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mathtext/internal/document"
	"mathtext/internal/interp"
	"mathtext/internal/render"
	"mathtext/internal/source"
)

func interpretDoc(t *testing.T, input string) *document.Document {
	t.Helper()

	var src source.File
	require.NoError(t, src.LoadBuffer(input, ""))

	var doc document.Document
	interpreter := interp.New(&src, &doc)
	interpreter.RegisterCommands(CommandList())
	require.NoError(t, interpreter.Interpret())
	return &doc
}

func TestWrappingConfiguration(t *testing.T) {
	r := newTestRenderer()
	assert.False(t, r.IsWrappingEnabled())

	r.EnableLineWrapping(30)
	assert.True(t, r.IsWrappingEnabled())

	r.DisableLineWrapping()
	assert.False(t, r.IsWrappingEnabled())
}

func TestWrapMarkersNeverReachOutput(t *testing.T) {
	doc := interpretDoc(t, "100+200 = 300*400")

	wrapped := newTestRenderer()
	wrapped.EnableLineWrapping(40)
	out, err := wrapped.RenderDocument(doc)
	require.NoError(t, err)

	assert.NotContains(t, out, "<|@")
}

// The wrap pass must preserve content character for character, modulo
// inserted newlines and continuation indents.
func TestWrapPreservesContent(t *testing.T) {
	input := "1000000*2000000*3000000*4000000*5000000"
	doc := interpretDoc(t, input)

	plain := newTestRenderer()
	unwrapped, err := plain.RenderDocument(doc)
	require.NoError(t, err)

	wrapped := newTestRenderer()
	wrapped.EnableLineWrapping(20)
	out, err := wrapped.RenderDocument(doc)
	require.NoError(t, err)

	// Remove the continuation breaks; what remains must be the
	// unwrapped rendering.
	restored := strings.ReplaceAll(out, "\n  ", "")
	assert.Equal(t, strings.TrimRight(unwrapped, "\n"),
		strings.TrimRight(restored, "\n"))

	// And every emitted line fits the width.
	for _, line := range strings.Split(strings.TrimRight(out, "\n"), "\n") {
		assert.LessOrEqual(t, len(line), 20, "line too long: %q", line)
	}
}

func TestWrapBreaksAtOperators(t *testing.T) {
	doc := interpretDoc(t, "1000000*2000000*3000000")

	wrapped := newTestRenderer()
	wrapped.EnableLineWrapping(20)
	out, err := wrapped.RenderDocument(doc)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Greater(t, len(lines), 1)

	// Continuation lines carry the 2-cell runover indent and start at a
	// recorded break point (before an operator).
	for _, line := range lines[1:] {
		assert.True(t, strings.HasPrefix(line, "  "), "missing indent: %q", line)
		assert.True(t, strings.HasPrefix(strings.TrimPrefix(line, "  "), `"8`),
			"continuation does not start at an operator: %q", line)
	}
}

func TestWrapTextBlockHasNoIndent(t *testing.T) {
	input := "&&\n" +
		"the quick brown fox jumps over the lazy dog again and again and again"
	doc := interpretDoc(t, input)

	wrapped := newTestRenderer()
	wrapped.EnableLineWrapping(20)
	out, err := wrapped.RenderDocument(doc)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Greater(t, len(lines), 1)
	for _, line := range lines {
		assert.False(t, strings.HasPrefix(line, " "), "unexpected indent: %q", line)
		assert.LessOrEqual(t, len(line), 20)
	}
}

func TestBlockMarkersStrippedWhenWrappingDisabled(t *testing.T) {
	doc := interpretDoc(t, "&&\nhello\n$$\nx")

	out, err := newTestRenderer().RenderDocument(doc)
	require.NoError(t, err)

	assert.Equal(t, "hello\nx\n", out)
}

// Rendering is pure over immutable input: walking the same document twice
// produces identical output.
func TestRenderIsRepeatable(t *testing.T) {
	doc := interpretDoc(t, "x^2 + @1~2# = _/9")

	first, err := newTestRenderer().RenderDocument(doc)
	require.NoError(t, err)
	second, err := newTestRenderer().RenderDocument(doc)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestUnknownElementIsRenderError(t *testing.T) {
	_, err := render.Element(newTestRenderer(), nil)
	var re *render.Error
	assert.ErrorAs(t, err, &re)
}
