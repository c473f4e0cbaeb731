// Copyright 2025 The go-phprs Authors
// This file is part of go-phprs.
//
// go-phprs is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

package lexer

import (
	"errors"
	"fmt"
)

var (
	// ErrUnexpectedEOF is returned when lookahead is requested beyond the
	// remaining input.
	ErrUnexpectedEOF = errors.New("unexpected end of input")

	// ErrUnterminatedComment is returned when a block comment is opened but
	// never closed before the end of input.
	ErrUnterminatedComment = errors.New("unterminated block comment")

	// ErrUnterminatedString is returned when a quoted literal is opened but
	// its closing quote is never found.
	ErrUnterminatedString = errors.New("unterminated string literal")

	// ErrUnrecognizedChar is returned when no recognizer matches the input.
	ErrUnrecognizedChar = errors.New("unrecognized character")
)

// Error is a lexical error bound to a byte offset in the source. The lexer
// performs no recovery or resynchronization; it reports the failure and
// leaves error handling policy to the caller.
type Error struct {
	Err    error // one of the sentinel errors above
	Offset int   // byte offset of the failure
	Ch     rune  // offending rune, only set for ErrUnrecognizedChar
}

func (e *Error) Error() string {
	if errors.Is(e.Err, ErrUnrecognizedChar) {
		return fmt.Sprintf("%v %q at offset %d", e.Err, e.Ch, e.Offset)
	}
	return fmt.Sprintf("%v at offset %d", e.Err, e.Offset)
}

func (e *Error) Unwrap() error { return e.Err }
