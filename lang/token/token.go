// Copyright 2025 The go-phprs Authors
// This file is part of go-phprs.
//
// go-phprs is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

// Package token defines the lexical token types for the PHP-RS language.
//
// A token is produced once by the lexer and never mutated afterwards. Its
// classification lives in Kind; kinds that need a payload beyond the kind
// itself (keywords, reserved words, numbers, strings, accessors, booleans)
// carry it in a dedicated field that is only meaningful for that kind.
package token

import (
	"fmt"
	"math/big"
)

// Span is a half-open byte range [Start, End) locating a token in the source.
type Span struct {
	Start int
	End   int
}

// Len returns the number of source bytes the span covers.
func (s Span) Len() int { return s.End - s.Start }

func (s Span) String() string {
	return fmt.Sprintf("[%d,%d)", s.Start, s.End)
}

// Kind is the set of lexical token classifications.
type Kind int

const (
	KindKeyword Kind = iota
	KindReservedCall
	KindReservedIdent
	KindIdentifier
	KindNumber
	KindString
	KindOperator
	KindAccessor
	KindBoolean
	KindWhitespace
	KindComment
	KindEndOfStatement // ;
	KindLeftBracket    // [
	KindRightBracket   // ]
	KindLeftParen      // (
	KindRightParen     // )
	KindLeftBrace      // {
	KindRightBrace     // }
	KindComma          // ,
	KindBackslash      // \
	KindDot            // .
	KindVariable       // $
)

var kindNames = [...]string{
	KindKeyword:        "KEYWORD",
	KindReservedCall:   "RESERVED_CALL",
	KindReservedIdent:  "RESERVED_IDENT",
	KindIdentifier:     "IDENT",
	KindNumber:         "NUMBER",
	KindString:         "STRING",
	KindOperator:       "OPERATOR",
	KindAccessor:       "ACCESSOR",
	KindBoolean:        "BOOL",
	KindWhitespace:     "WHITESPACE",
	KindComment:        "COMMENT",
	KindEndOfStatement: ";",
	KindLeftBracket:    "[",
	KindRightBracket:   "]",
	KindLeftParen:      "(",
	KindRightParen:     ")",
	KindLeftBrace:      "{",
	KindRightBrace:     "}",
	KindComma:          ",",
	KindBackslash:      `\`,
	KindDot:            ".",
	KindVariable:       "$",
}

// String returns the display form of a token kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// NumberClass distinguishes the numeric literal representations.
//
// PHP itself collapses large integers into floats; this compiler keeps the
// integer/float distinction and promotes overflowing integers to LargeInt
// instead of losing precision.
type NumberClass int

const (
	NumInt NumberClass = iota
	NumFloat
	NumLargeInt
)

// Number is the payload of a numeric literal token.
type Number struct {
	Class NumberClass
	Int   int32    // valid when Class == NumInt
	Float float64  // valid when Class == NumFloat
	Big   *big.Int // valid when Class == NumLargeInt
}

func (n Number) String() string {
	switch n.Class {
	case NumFloat:
		return fmt.Sprintf("float(%g)", n.Float)
	case NumLargeInt:
		return fmt.Sprintf("lint(%s)", n.Big)
	default:
		return fmt.Sprintf("int(%d)", n.Int)
	}
}

// StringKind identifies the quoting style of a string literal.
// Heredoc and Nowdoc are modeled for the parser's benefit but the lexer does
// not yet produce them.
type StringKind int

const (
	StringSingle StringKind = iota // '...'
	StringDouble                   // "..."
	StringBacktick                 // `...`
	StringHeredoc                  // <<<ID ... ID
	StringNowdoc                   // <<<'ID' ... ID
)

// Quote returns the opening quote character for the quoted kinds and 0 for
// the heredoc forms.
func (k StringKind) Quote() rune {
	switch k {
	case StringSingle:
		return '\''
	case StringDouble:
		return '"'
	case StringBacktick:
		return '`'
	}
	return 0
}

// AccessKind distinguishes the colon-family accessor tokens.
type AccessKind int

const (
	AccessColon  AccessKind = iota // :
	AccessStatic                   // ::
)

// Token is a classified, positioned unit of lexical output.
type Token struct {
	Kind Kind
	Span Span

	// Text is the matched lexeme when the kind (plus payload) alone does not
	// determine it: identifiers, operators, comments, whitespace runs and
	// number lexemes carry the full matched text, string literals carry the
	// body without quotes, and fixed-spelling tokens carry nothing.
	Text string

	Keyword  Keyword       // valid when Kind == KindKeyword
	Call     ReservedCall  // valid when Kind == KindReservedCall
	Reserved ReservedIdent // valid when Kind == KindReservedIdent
	Number   Number        // valid when Kind == KindNumber
	StrKind  StringKind    // valid when Kind == KindString
	Access   AccessKind    // valid when Kind == KindAccessor
	Bool     bool          // valid when Kind == KindBoolean
}

// Lexeme returns the canonical source spelling of the token. For kinds whose
// spelling is fixed (punctuation, keywords, reserved words, booleans) the
// spelling is reconstructed from the tag; string literals are re-quoted.
func (t Token) Lexeme() string {
	switch t.Kind {
	case KindKeyword:
		return t.Keyword.String()
	case KindReservedCall:
		return t.Call.String()
	case KindReservedIdent:
		return t.Reserved.String()
	case KindBoolean:
		if t.Bool {
			return "true"
		}
		return "false"
	case KindString:
		if q := t.StrKind.Quote(); q != 0 {
			return string(q) + t.Text + string(q)
		}
		return t.Text
	case KindEndOfStatement:
		return ";"
	case KindLeftBracket:
		return "["
	case KindRightBracket:
		return "]"
	case KindLeftParen:
		return "("
	case KindRightParen:
		return ")"
	case KindLeftBrace:
		return "{"
	case KindRightBrace:
		return "}"
	case KindComma:
		return ","
	case KindBackslash:
		return `\`
	case KindDot:
		return "."
	case KindVariable:
		return "$"
	}
	return t.Text
}

func (t Token) String() string {
	return fmt.Sprintf("%s %q %s", t.Kind, t.Lexeme(), t.Span)
}
