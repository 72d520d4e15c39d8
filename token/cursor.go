package token

import (
	"bytes"
	"unicode/utf8"
)

// Cursor reads a buffered input front to back. A cursor belongs to exactly
// one parse call and is discarded when that call returns.
type Cursor struct {
	d   []byte
	i   int
	doc *PosDoc
}

func NewCursor(d []byte) *Cursor {
	return &Cursor{d: d, doc: NewPosDoc(d)}
}

func (c *Cursor) EOF() bool {
	return c.i >= len(c.d)
}

func (c *Cursor) Offset() int {
	return c.i
}

func (c *Cursor) Len() int {
	return len(c.d)
}

// Peek returns the next byte without consuming it.
func (c *Cursor) Peek() (byte, bool) {
	if c.i >= len(c.d) {
		return 0, false
	}
	return c.d[c.i], true
}

// PeekRune decodes the next rune without consuming it. Invalid UTF-8 yields
// ErrBadUTF8.
func (c *Cursor) PeekRune() (rune, int, error) {
	if c.i >= len(c.d) {
		return 0, 0, ErrUnterminated
	}
	r, sz := utf8.DecodeRune(c.d[c.i:])
	if r == utf8.RuneError && sz <= 1 {
		return r, sz, ErrBadUTF8
	}
	return r, sz, nil
}

func (c *Cursor) Next() (byte, bool) {
	b, ok := c.Peek()
	if ok {
		c.i++
	}
	return b, ok
}

func (c *Cursor) Advance(n int) {
	c.i = min(c.i+n, len(c.d))
}

func (c *Cursor) HasPrefix(p string) bool {
	return bytes.HasPrefix(c.d[c.i:], []byte(p))
}

// Rest returns the unconsumed input. The slice aliases the input.
func (c *Cursor) Rest() []byte {
	return c.d[c.i:]
}

// Slice returns input bytes between two offsets.
func (c *Cursor) Slice(from, to int) []byte {
	return c.d[max(0, from):min(to, len(c.d))]
}

func (c *Cursor) Pos() *Pos {
	return c.doc.Pos(c.i)
}

func (c *Cursor) PosAt(off int) *Pos {
	return c.doc.Pos(off)
}

// SkipSpace consumes JSON insignificant whitespace: space, tab, CR and LF.
func (c *Cursor) SkipSpace() {
	for c.i < len(c.d) {
		switch c.d[c.i] {
		case ' ', '\t', '\r', '\n':
			c.i++
		default:
			return
		}
	}
}

// RecordSep reports the length of a CSV record separator at the cursor: 2
// for CRLF, 1 for a lone LF or CR, 0 otherwise.
func (c *Cursor) RecordSep() int {
	if c.i >= len(c.d) {
		return 0
	}
	switch c.d[c.i] {
	case '\n':
		return 1
	case '\r':
		if c.i+1 < len(c.d) && c.d[c.i+1] == '\n' {
			return 2
		}
		return 1
	}
	return 0
}

// Fragment returns up to n bytes of input starting at off, cut at a rune
// boundary, for error messages.
func (c *Cursor) Fragment(off, n int) string {
	if off >= len(c.d) {
		return ""
	}
	end := min(off+n, len(c.d))
	for end > off && end < len(c.d) && !utf8.RuneStart(c.d[end]) {
		end--
	}
	return string(c.d[off:end])
}
