package receipt

import (
	"fmt"
	"strings"
)

// DefaultWidth is the character width of an 80mm thermal receipt
const DefaultWidth = 48

// Document builds a fixed-width plain-text receipt. It knows nothing
// about printers or files; callers hand the finished text to whatever
// consumes it.
type Document struct {
	buf   strings.Builder
	width int
}

// NewDocument creates a document with the given character width.
// Common widths: 32 for 58mm paper, 48 for 80mm paper.
func NewDocument(width int) *Document {
	if width <= 0 {
		width = DefaultWidth
	}
	return &Document{width: width}
}

// Width returns the configured character width
func (d *Document) Width() int {
	return d.width
}

// Line writes one line, truncated to the document width
func (d *Document) Line(s string) *Document {
	if len(s) > d.width {
		s = s[:d.width]
	}
	d.buf.WriteString(s)
	d.buf.WriteByte('\n')
	return d
}

// Linef writes one formatted line, truncated to the document width
func (d *Document) Linef(format string, args ...interface{}) *Document {
	return d.Line(fmt.Sprintf(format, args...))
}

// Center writes s centered within the width. Multi-line input is
// centered line by line.
func (d *Document) Center(s string) *Document {
	for _, line := range strings.Split(s, "\n") {
		if len(line) >= d.width {
			d.Line(line)
			continue
		}
		pad := (d.width - len(line)) / 2
		d.Line(strings.Repeat(" ", pad) + line)
	}
	return d
}

// TwoColumn writes left-aligned and right-aligned text on one line. The
// right text always ends at the exact rightmost column; if the left text
// would collide with it, the left text is truncated and suffixed with an
// ellipsis.
func (d *Document) TwoColumn(left, right string) *Document {
	d.buf.WriteString(FormatTwoColumn(left, right, d.width))
	d.buf.WriteByte('\n')
	return d
}

// Separator writes a full-width run of char
func (d *Document) Separator(char byte) *Document {
	return d.Line(strings.Repeat(string(char), d.width))
}

// Blank writes an empty line
func (d *Document) Blank() *Document {
	d.buf.WriteByte('\n')
	return d
}

// String returns the accumulated receipt text
func (d *Document) String() string {
	return d.buf.String()
}

// FormatTwoColumn lays out left and right text in width columns, with
// right flush against the last column. Left text that would overlap is
// cut to width-len(right)-4 characters and suffixed with "...".
func FormatTwoColumn(left, right string, width int) string {
	available := width - len(right)
	if len(left) > available-1 {
		cut := available - 4
		if cut < 0 {
			cut = 0
		}
		left = left[:cut] + "..."
	}
	spaces := width - len(left) - len(right)
	if spaces < 1 {
		spaces = 1
	}
	return left + strings.Repeat(" ", spaces) + right
}
