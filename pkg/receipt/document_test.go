package receipt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatTwoColumnFlushRight(t *testing.T) {
	line := FormatTwoColumn("TOTAL", "$12.99", 48)
	assert.Len(t, line, 48)
	assert.True(t, strings.HasPrefix(line, "TOTAL"))
	assert.True(t, strings.HasSuffix(line, "$12.99"))
}

func TestFormatTwoColumnTruncatesLongLeft(t *testing.T) {
	left := strings.Repeat("x", 60)
	line := FormatTwoColumn(left, "$1.00", 48)

	// right column still ends at the last character
	assert.True(t, strings.HasSuffix(line, "$1.00"))
	assert.Contains(t, line, "...")
	assert.Len(t, line, 48)

	// truncation leaves width-len(right)-4 characters plus the ellipsis
	assert.True(t, strings.HasPrefix(line, strings.Repeat("x", 48-5-4)+"..."))
}

func TestFormatTwoColumnExactFit(t *testing.T) {
	// left exactly fills the space minus the single separating space
	left := strings.Repeat("a", 48-6-1)
	line := FormatTwoColumn(left, "$12.99", 48)
	assert.Equal(t, left+" $12.99", line)
	assert.Len(t, line, 48)
}

func TestFormatTwoColumnTinyWidth(t *testing.T) {
	// pathological width never panics and keeps the right text intact
	line := FormatTwoColumn("something long", "$999.99", 8)
	assert.True(t, strings.HasSuffix(line, "$999.99"))
}

func TestLineTruncates(t *testing.T) {
	d := NewDocument(10)
	d.Line("abcdefghijKLMNO")
	assert.Equal(t, "abcdefghij\n", d.String())
}

func TestCenter(t *testing.T) {
	d := NewDocument(10)
	d.Center("abcd")
	assert.Equal(t, "   abcd\n", d.String())
}

func TestCenterMultiLine(t *testing.T) {
	d := NewDocument(10)
	d.Center("ab\ncd")
	lines := strings.Split(strings.TrimRight(d.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "    ab", lines[0])
	assert.Equal(t, "    cd", lines[1])
}

func TestSeparatorAndBlank(t *testing.T) {
	d := NewDocument(5)
	d.Separator('=').Blank().Linef("n=%d", 7)
	assert.Equal(t, "=====\n\nn=7\n", d.String())
}

func TestNewDocumentDefaultsWidth(t *testing.T) {
	d := NewDocument(0)
	assert.Equal(t, DefaultWidth, d.Width())
}
