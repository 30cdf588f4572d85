package dxf

import (
	"io"
	"strings"
)

// Pair is one group code followed by its value.
type Pair struct {
	Code  string
	Value string
}

// ReadLines reads r fully and returns its lines with surrounding whitespace
// removed. CRLF, CR and LF all end a line and a line may be of any length.
// Bytes that are not valid UTF-8 are dropped.
func ReadLines(r io.Reader) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	text := strings.ToValidUTF8(string(data), "")
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil, nil
	}

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return lines, nil
}

// Cursor walks a line sequence two lines at a time: the line at an even
// offset from the start is a group code, the next line is its value.
// A trailing unpaired line is never returned.
type Cursor struct {
	lines []string
	pos   int // index of the current pair's code line
}

// NewCursor returns a cursor positioned on the first pair.
func NewCursor(lines []string) *Cursor {
	return &Cursor{lines: lines}
}

// Done reports whether no complete pair remains.
func (c *Cursor) Done() bool {
	return c.pos+1 >= len(c.lines)
}

// Current returns the pair under the cursor.
func (c *Cursor) Current() (Pair, bool) {
	return c.Peek(0)
}

// Peek returns the pair k pairs ahead of the current one without moving.
func (c *Cursor) Peek(k int) (Pair, bool) {
	i := c.pos + 2*k
	if i < 0 || i+1 >= len(c.lines) {
		return Pair{}, false
	}
	return Pair{Code: c.lines[i], Value: c.lines[i+1]}, true
}

// Next moves to the following pair.
func (c *Cursor) Next() {
	c.Advance(1)
}

// Advance moves n pairs forward.
func (c *Cursor) Advance(n int) {
	c.pos += 2 * n
}

// Line returns the zero-based line index of the current group code.
func (c *Cursor) Line() int {
	return c.pos
}
