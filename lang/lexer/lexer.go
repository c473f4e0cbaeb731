// Copyright 2025 The go-phprs Authors
// This file is part of go-phprs.
//
// go-phprs is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

// Package lexer implements the lexical front-end for the PHP-RS language: a
// cursor over the source buffer and a pull-based tokenizer on top of it.
//
// Recognizers run in a fixed priority order (whitespace, comment, operator,
// word, number, string, accessor, punctuation); the first one whose character
// class matches the lookahead claims the token. The ordering matters where
// character sets overlap: '/' opens both comments and the division operator,
// and the word recognizer owns the keyword/boolean/identifier split.
//
// The lexer is a pure function of cursor state; it keeps no token buffer and
// never backtracks. Whitespace and comments are produced as ordinary tokens
// so that the concatenated spans of the output always reconstruct the input.
package lexer

import (
	"math/big"
	"strconv"

	"github.com/phprs/go-phprs/lang/token"
)

// Lexer produces one token per call to Next, advancing its cursor as a side
// effect. A Lexer is exclusively owned by its caller and is not safe for
// concurrent use.
type Lexer struct {
	cur *Cursor
	src string
}

// New creates a Lexer over the given source text. The text must be fully
// materialized; the lexer performs no I/O.
func New(src string) *Lexer {
	return &Lexer{cur: NewCursor(src), src: src}
}

// Next produces the next token. It returns (nil, nil) at clean end of input
// and a non-nil error for malformed input. An unrecognized character is not
// consumed, so repeated calls keep reporting it.
func (l *Lexer) Next() (*token.Token, error) {
	if l.cur.AtEnd() {
		return nil, nil
	}
	start := l.cur.Offset()
	first, err := l.cur.First()
	if err != nil {
		return nil, nil
	}

	switch {
	case isWhitespace(first):
		return l.lexWhitespace(start), nil
	case first == '/' && l.commentAhead():
		return l.lexComment(start)
	case isOperatorChar(first):
		return l.lexOperator(start), nil
	case isIdentStart(first):
		return l.lexWord(start), nil
	case isDigit(first):
		return l.lexNumber(start), nil
	case first == '"' || first == '\'' || first == '`':
		return l.lexString(start, first)
	case first == ':':
		return l.lexAccessor(start), nil
	}

	if kind, ok := punctKinds[first]; ok {
		l.cur.Next()
		return &token.Token{Kind: kind, Span: l.span(start)}, nil
	}

	// Nothing matched. The cursor stays put; dropping the rune would hide
	// genuinely invalid input from the caller.
	return nil, &Error{Err: ErrUnrecognizedChar, Offset: start, Ch: first}
}

// Tokenize collects tokens until clean end of input or the first error.
func (l *Lexer) Tokenize() ([]token.Token, error) {
	var toks []token.Token
	for {
		tok, err := l.Next()
		if err != nil {
			return toks, err
		}
		if tok == nil {
			return toks, nil
		}
		toks = append(toks, *tok)
	}
}

func (l *Lexer) span(start int) token.Span {
	return token.Span{Start: start, End: l.cur.Offset()}
}

// commentAhead reports whether the cursor sits on "//" or "/*".
func (l *Lexer) commentAhead() bool {
	second, err := l.cur.Second()
	return err == nil && (second == '/' || second == '*')
}

func (l *Lexer) lexWhitespace(start int) *token.Token {
	text := l.cur.EatWhile(isWhitespace)
	return &token.Token{Kind: token.KindWhitespace, Span: l.span(start), Text: text}
}

func (l *Lexer) lexComment(start int) (*token.Token, error) {
	l.cur.Next() // '/'
	marker, _ := l.cur.Next()

	if marker == '/' {
		l.cur.EatWhile(func(r rune) bool { return r != '\n' })
		return &token.Token{
			Kind: token.KindComment,
			Span: l.span(start),
			Text: l.src[start:l.cur.Offset()],
		}, nil
	}

	// Block comment. The predicate consumes the closing '*' itself and stops
	// on the '/' after it; an exhausted cursor before that point means the
	// comment never closed. Block comments do not nest.
	closing := false
	l.cur.EatWhileCursor(func(c *Cursor, r rune) bool {
		if closing {
			return false
		}
		if r == '*' {
			if next, err := c.Second(); err == nil && next == '/' {
				closing = true
			}
		}
		return true
	})
	if !closing {
		return nil, &Error{Err: ErrUnterminatedComment, Offset: start}
	}
	l.cur.Next() // '/'
	return &token.Token{
		Kind: token.KindComment,
		Span: l.span(start),
		Text: l.src[start:l.cur.Offset()],
	}, nil
}

func (l *Lexer) lexOperator(start int) *token.Token {
	r, _ := l.cur.Next()
	return &token.Token{Kind: token.KindOperator, Span: l.span(start), Text: string(r)}
}

// lexWord consumes a maximal identifier run and classifies it. The maximal
// run is what makes the keyword boundary rule hold: "forest" never splits
// into the keyword "for" plus "est", because classification only happens
// after the full run is consumed. Any non-identifier character (or end of
// input) is a boundary, so "if(" still yields the keyword.
func (l *Lexer) lexWord(start int) *token.Token {
	text := l.cur.EatWhile(isIdentContinue)
	span := l.span(start)

	// 'and' and 'or' are binary infix logical operators; they are lexed as
	// operators even though the keyword table carries them for diagnostics.
	if text == "and" || text == "or" {
		return &token.Token{Kind: token.KindOperator, Span: span, Text: text}
	}
	if kw, ok := token.LookupKeyword(text); ok {
		return &token.Token{Kind: token.KindKeyword, Span: span, Keyword: kw}
	}
	if call, ok := token.LookupCall(text); ok {
		return &token.Token{Kind: token.KindReservedCall, Span: span, Call: call}
	}
	if id, ok := token.LookupIdent(text); ok {
		return &token.Token{Kind: token.KindReservedIdent, Span: span, Reserved: id}
	}
	if text == "true" || text == "false" {
		return &token.Token{Kind: token.KindBoolean, Span: span, Bool: text == "true"}
	}
	return &token.Token{Kind: token.KindIdentifier, Span: span, Text: text}
}

// lexNumber consumes a decimal run with an optional fraction and exponent.
// A dot is only consumed when a digit follows it, so "1." lexes as the
// integer 1 followed by a Dot token. Integers that do not fit in 32 bits are
// promoted to LargeInt instead of truncating.
func (l *Lexer) lexNumber(start int) *token.Token {
	l.cur.EatWhile(isDigit)
	isFloat := false

	if r, err := l.cur.First(); err == nil && r == '.' {
		if r2, err2 := l.cur.Second(); err2 == nil && isDigit(r2) {
			isFloat = true
			l.cur.Next() // '.'
			l.cur.EatWhile(isDigit)
		}
	}

	if r, err := l.cur.First(); err == nil && (r == 'e' || r == 'E') {
		// The exponent marker only belongs to the number when digits follow
		// it (optionally signed); otherwise it starts the next word.
		ahead := 1
		r2, err2 := l.cur.Second()
		if err2 == nil && (r2 == '+' || r2 == '-') {
			ahead = 2
			r2, err2 = l.cur.Nth(2)
		}
		if err2 == nil && isDigit(r2) {
			isFloat = true
			for i := 0; i < ahead; i++ {
				l.cur.Next()
			}
			l.cur.EatWhile(isDigit)
		}
	}

	span := l.span(start)
	text := l.src[span.Start:span.End]
	return &token.Token{
		Kind:   token.KindNumber,
		Span:   span,
		Text:   text,
		Number: parseNumber(text, isFloat),
	}
}

func parseNumber(text string, isFloat bool) token.Number {
	if isFloat {
		// The scan guarantees a well-formed mantissa/exponent; out-of-range
		// values saturate to ±Inf, which ParseFloat already returns.
		f, _ := strconv.ParseFloat(text, 64)
		return token.Number{Class: token.NumFloat, Float: f}
	}
	if i, err := strconv.ParseInt(text, 10, 32); err == nil {
		return token.Number{Class: token.NumInt, Int: int32(i)}
	}
	n, _ := new(big.Int).SetString(text, 10)
	return token.Number{Class: token.NumLargeInt, Big: n}
}

// lexString consumes a quoted literal. A backslash shields the following
// rune from terminating the literal, but the body is kept verbatim; escape
// decoding happens downstream. The token's text excludes the quotes while
// its span includes them.
func (l *Lexer) lexString(start int, quote rune) (*token.Token, error) {
	l.cur.Next() // opening quote

	var kind token.StringKind
	switch quote {
	case '\'':
		kind = token.StringSingle
	case '"':
		kind = token.StringDouble
	default:
		kind = token.StringBacktick
	}

	escaped := false
	body := l.cur.EatWhile(func(r rune) bool {
		if escaped {
			escaped = false
			return true
		}
		switch r {
		case '\\':
			escaped = true
			return true
		case quote:
			return false
		}
		return true
	})
	if l.cur.AtEnd() {
		return nil, &Error{Err: ErrUnterminatedString, Offset: start}
	}
	l.cur.Next() // closing quote

	return &token.Token{
		Kind:    token.KindString,
		Span:    l.span(start),
		Text:    body,
		StrKind: kind,
	}, nil
}

// lexAccessor disambiguates ':' from '::' with one rune of lookahead.
func (l *Lexer) lexAccessor(start int) *token.Token {
	l.cur.Next() // ':'
	access := token.AccessColon
	text := ":"
	if r, err := l.cur.First(); err == nil && r == ':' {
		l.cur.Next()
		access = token.AccessStatic
		text = "::"
	}
	return &token.Token{
		Kind:   token.KindAccessor,
		Span:   l.span(start),
		Text:   text,
		Access: access,
	}
}

// punctKinds maps the fixed single-character tokens to their kinds. These
// carry no text; the kind alone determines the spelling.
var punctKinds = map[rune]token.Kind{
	';':  token.KindEndOfStatement,
	'[':  token.KindLeftBracket,
	']':  token.KindRightBracket,
	'(':  token.KindLeftParen,
	')':  token.KindRightParen,
	'{':  token.KindLeftBrace,
	'}':  token.KindRightBrace,
	',':  token.KindComma,
	'\\': token.KindBackslash,
	'.':  token.KindDot,
	'$':  token.KindVariable,
}

func isWhitespace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isIdentStart(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '_'
}

func isIdentContinue(r rune) bool {
	return isIdentStart(r) || isDigit(r)
}

func isOperatorChar(r rune) bool {
	switch r {
	case '+', '-', '*', '/', '%', '=', '<', '>', '&', '|', '^', '~':
		return true
	}
	return false
}
