package buffer

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBufferFromString(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		lines int
	}{
		{"empty", "", 0},
		{"single no newline", "hello", 1},
		{"trailing newline", "a\nb\n", 2},
		{"crlf", "a\r\nb\r\nc", 3},
		{"blank lines kept", "a\n\nb\n", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := NewBufferFromString(tt.text)
			assert.Equal(t, tt.lines, buf.LineCount())
			assert.Equal(t, tt.lines, buf.Current())
		})
	}
}

func TestBufferText(t *testing.T) {
	buf := NewBufferFromString("a\nb")
	assert.Equal(t, "a\nb\n", buf.Text())

	crlf := NewBufferFromString("a\nb", WithCRLF())
	assert.Equal(t, "a\r\nb\r\n", crlf.Text())

	assert.Equal(t, "", NewBuffer().Text())
}

func TestBufferAddLines(t *testing.T) {
	buf := NewBufferFromString("one\nfour\n")

	require.NoError(t, buf.AddLines(1, []string{"two", "three"}))
	assert.Equal(t, "one\ntwo\nthree\nfour\n", buf.Text())
	assert.Equal(t, 3, buf.Current())

	require.NoError(t, buf.AddLines(0, []string{"zero"}))
	first, err := buf.Line(1)
	require.NoError(t, err)
	assert.Equal(t, "zero", first)
	assert.Equal(t, 1, buf.Current())

	err = buf.AddLines(9, []string{"x"})
	assert.ErrorIs(t, err, ErrLineOutOfRange)
}

func TestBufferAddNoLinesIsNoop(t *testing.T) {
	buf := NewBufferFromString("a\n")
	rev := buf.Revision()
	require.NoError(t, buf.AddLines(1, nil))
	assert.Equal(t, rev, buf.Revision())
}

func TestBufferDeleteLines(t *testing.T) {
	buf := NewBufferFromString("1\n2\n3\n4\n")

	removed, err := buf.DeleteLines(2, 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"2", "3"}, removed)
	assert.Equal(t, "1\n4\n", buf.Text())
	assert.Equal(t, 2, buf.Current())

	removed, err = buf.DeleteLines(2, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"4"}, removed)
	assert.Equal(t, 1, buf.Current())

	_, err = buf.DeleteLines(1, 1)
	require.NoError(t, err)
	assert.True(t, buf.IsEmpty())
	assert.Zero(t, buf.Current())
}

func TestBufferDeleteLinesErrors(t *testing.T) {
	buf := NewBufferFromString("1\n2\n")

	_, err := buf.DeleteLines(2, 1)
	assert.ErrorIs(t, err, ErrRangeInvalid)
	_, err = buf.DeleteLines(0, 1)
	assert.ErrorIs(t, err, ErrLineOutOfRange)
	_, err = buf.DeleteLines(1, 3)
	assert.ErrorIs(t, err, ErrLineOutOfRange)
	assert.Equal(t, 2, buf.LineCount())
}

func TestBufferReplaceLine(t *testing.T) {
	buf := NewBufferFromString("a\nb\nc\n")

	old, err := buf.ReplaceLine(2, "B")
	require.NoError(t, err)
	assert.Equal(t, "b", old)
	assert.Equal(t, "a\nB\nc\n", buf.Text())
	assert.Equal(t, 2, buf.Current())

	_, err = buf.ReplaceLine(4, "x")
	assert.ErrorIs(t, err, ErrLineOutOfRange)
}

func TestBufferLinesCopy(t *testing.T) {
	buf := NewBufferFromString("a\nb\nc\n")

	lines, err := buf.Lines(1, 2)
	require.NoError(t, err)
	lines[0] = "changed"

	first, _ := buf.Line(1)
	assert.Equal(t, "a", first)
}

func TestBufferSetCurrent(t *testing.T) {
	buf := NewBufferFromString("a\nb\n")
	require.NoError(t, buf.SetCurrent(1))
	assert.Equal(t, 1, buf.Current())

	assert.ErrorIs(t, buf.SetCurrent(0), ErrLineOutOfRange)
	assert.ErrorIs(t, buf.SetCurrent(3), ErrLineOutOfRange)

	assert.NoError(t, NewBuffer().SetCurrent(0))
}

func TestBufferRevisionChangesOnEdit(t *testing.T) {
	buf := NewBufferFromString("a\n")
	rev := buf.Revision()

	require.NoError(t, buf.AddLines(1, []string{"b"}))
	assert.Greater(t, buf.Revision(), rev)

	rev = buf.Revision()
	buf.Clear()
	assert.Greater(t, buf.Revision(), rev)
	assert.True(t, buf.IsEmpty())
}

func TestDetectLineEnding(t *testing.T) {
	tests := []struct {
		text string
		want LineEnding
	}{
		{"", LineEndingLF},
		{"a\nb\n", LineEndingLF},
		{"a\r\nb\r\n", LineEndingCRLF},
		{"a\rb\r", LineEndingCR},
		{"a\r\nb\nc\r\n", LineEndingCRLF},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DetectLineEnding(tt.text), "%q", tt.text)
	}
}

func TestReadLines(t *testing.T) {
	fsys := fstest.MapFS{
		"notes.txt": {Data: []byte("héllo\nworld\n")},
	}

	lines, stats, err := ReadLines(fsys, "notes.txt")
	require.NoError(t, err)
	assert.Equal(t, []string{"héllo", "world"}, lines)
	assert.Equal(t, FileStats{Lines: 2, Chars: 10}, stats)
	assert.Equal(t, "2L, 10C", stats.String())

	_, _, err = ReadLines(fsys, "missing.txt")
	assert.Error(t, err)
}
