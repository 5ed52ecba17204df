package source

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadBufferSplitsLines(t *testing.T) {
	var f File
	require.NoError(t, f.LoadBuffer("one\ntwo\nthree\n", ""))

	lines := f.Lines()
	require.Len(t, lines, 3)
	assert.Equal(t, "one", lines[0].Content)
	assert.Equal(t, "two", lines[1].Content)
	assert.Equal(t, "three", lines[2].Content)
	assert.Equal(t, 2, lines[1].Line1)
	assert.Equal(t, 2, lines[1].Line2)
	assert.Equal(t, "(buffer)", lines[0].Filename)
}

func TestLoadBufferToleratesCRLF(t *testing.T) {
	var f File
	require.NoError(t, f.LoadBuffer("one\r\ntwo\r\n", "in.mtx"))

	lines := f.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, "one", lines[0].Content)
	assert.Equal(t, "two", lines[1].Content)
}

func TestLoadBufferTrimsTrailingWhitespaceOnly(t *testing.T) {
	var f File
	require.NoError(t, f.LoadBuffer("  indented   \n", ""))

	require.Len(t, f.Lines(), 1)
	assert.Equal(t, "  indented", f.Lines()[0].Content)
}

func TestContinuationLinesAreSpliced(t *testing.T) {
	var f File
	require.NoError(t, f.LoadBuffer("x + \\\ny + \\\nz\nplain\n", ""))

	lines := f.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, "x + y + z", lines[0].Content)
	assert.Equal(t, 1, lines[0].Line1)
	assert.Equal(t, 3, lines[0].Line2)
	assert.Equal(t, "plain", lines[1].Content)
	assert.Equal(t, 4, lines[1].Line1)
}

func TestLoadFileMissingIsFileError(t *testing.T) {
	var f File
	err := f.LoadFile(filepath.Join(t.TempDir(), "no-such-file.mtx"))

	var fe *FileError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, "open", fe.Op)
}

func writeFile(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func TestIncludeExpandsInPlace(t *testing.T) {
	dir := t.TempDir()
	inc := writeFile(t, dir, "defs.mtx", "a = 1\n")
	main := writeFile(t, dir, "main.mtx", fmt.Sprintf("before\n#include %s\nafter\n", inc))

	var f File
	require.NoError(t, f.LoadFile(main))

	lines := f.Lines()
	require.Len(t, lines, 3)
	assert.Equal(t, "before", lines[0].Content)
	assert.Equal(t, "a = 1", lines[1].Content)
	assert.Equal(t, inc, lines[1].Filename)
	assert.Equal(t, "after", lines[2].Content)
}

func TestIncludeDepthLimit(t *testing.T) {
	dir := t.TempDir()

	// Six nested include directives: the innermost one exceeds the
	// five-level limit.
	writeFile(t, dir, "f6.mtx", "leaf\n")
	for i := 5; i >= 1; i-- {
		writeFile(t, dir, fmt.Sprintf("f%d.mtx", i),
			fmt.Sprintf("#include %s\n", filepath.Join(dir, fmt.Sprintf("f%d.mtx", i+1))))
	}
	main := writeFile(t, dir, "main.mtx", fmt.Sprintf("#include %s\n", filepath.Join(dir, "f1.mtx")))

	var f File
	err := f.LoadFile(main)

	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Contains(t, pe.Path, "f5.mtx")
	assert.Contains(t, pe.Path, "included by")
}

func TestIncludeErrorNamesIncludingFile(t *testing.T) {
	dir := t.TempDir()
	main := writeFile(t, dir, "main.mtx", "#include missing.mtx\n")

	var f File
	err := f.LoadFile(main)

	var fe *FileError
	require.True(t, errors.As(err, &fe))
	assert.Contains(t, fe.Path, "missing.mtx")
	assert.Contains(t, fe.Path, fmt.Sprintf("included by %q at line 1", main))
}
