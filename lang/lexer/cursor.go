// Copyright 2025 The go-phprs Authors
// This file is part of go-phprs.
//
// go-phprs is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

package lexer

import "unicode/utf8"

// EOF is the sentinel returned by Prev before any rune has been consumed.
// It is not a valid rune, so it can never collide with source content the
// way a NUL sentinel would.
const EOF rune = -1

// Cursor reads a source buffer one rune at a time while tracking the number
// of bytes consumed. Lookahead never moves the cursor; only Next and the
// EatWhile variants do. The invariant Offset() == len(src) - len(remaining)
// holds at all times.
type Cursor struct {
	buf  string
	off  int  // byte offset of the next unconsumed rune
	prev rune // most recently consumed rune, EOF before any
}

// NewCursor creates a cursor positioned at the start of src.
func NewCursor(src string) *Cursor {
	return &Cursor{buf: src, prev: EOF}
}

// Next consumes and returns the next rune. ok is false once the input is
// exhausted, in which case the cursor is unchanged.
func (c *Cursor) Next() (rune, bool) {
	if c.off >= len(c.buf) {
		return EOF, false
	}
	r, w := utf8.DecodeRuneInString(c.buf[c.off:])
	c.off += w
	c.prev = r
	return r, true
}

// First returns the next rune without consuming it.
func (c *Cursor) First() (rune, error) { return c.Nth(0) }

// Second returns the rune after the next one without consuming anything.
func (c *Cursor) Second() (rune, error) { return c.Nth(1) }

// Nth returns the rune n positions ahead of the cursor without consuming
// anything. It returns ErrUnexpectedEOF when fewer than n+1 runes remain
// rather than a sentinel, so callers can tell "no more input" apart from any
// byte the source may actually contain.
func (c *Cursor) Nth(n int) (rune, error) {
	off := c.off
	for {
		if off >= len(c.buf) {
			return EOF, ErrUnexpectedEOF
		}
		r, w := utf8.DecodeRuneInString(c.buf[off:])
		if n == 0 {
			return r, nil
		}
		n--
		off += w
	}
}

// EatWhile consumes runes while pred holds and returns the consumed text.
// Zero matches yield the empty string.
func (c *Cursor) EatWhile(pred func(rune) bool) string {
	return c.EatWhileCursor(func(_ *Cursor, r rune) bool { return pred(r) })
}

// EatWhileCursor is EatWhile with a predicate that also receives the cursor,
// so it can look ahead before deciding whether to stop. Block comments use
// this to consume a '*' and still inspect the rune after it.
func (c *Cursor) EatWhileCursor(pred func(*Cursor, rune) bool) string {
	start := c.off
	for {
		r, err := c.First()
		if err != nil || !pred(c, r) {
			break
		}
		c.Next()
	}
	return c.buf[start:c.off]
}

// AtEnd reports whether any input remains.
func (c *Cursor) AtEnd() bool { return c.off >= len(c.buf) }

// Offset returns the number of bytes consumed so far.
func (c *Cursor) Offset() int { return c.off }

// Prev returns the most recently consumed rune, or EOF before any.
func (c *Cursor) Prev() rune { return c.prev }
