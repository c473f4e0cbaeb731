// Copyright 2025 The go-phprs Authors
// This file is part of go-phprs.
//
// go-phprs is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

package token

import "fmt"

// Keyword enumerates the reserved words of the language. Each tag maps to
// exactly one canonical lowercase spelling and back; the tables below form a
// bijection that LookupKeyword and Keyword.String expose to the lexer and to
// the parser's diagnostics.
//
// Visibility modifiers are lexed as keywords and interpreted during parsing.
// The call-like constructs (isset, empty, ...) are not keywords; they live in
// the ReservedCall table.
//
// See https://www.php.net/manual/en/reserved.keywords.php
type Keyword int

const (
	Abstract Keyword = iota
	And
	As
	Break
	Case
	Catch
	Class
	Clone
	Const
	Continue
	Declare
	Default
	Do
	Else
	Elseif
	EndDeclare
	EndFor
	EndForEach
	EndIf
	EndSwitch
	EndWhile
	Extends
	Final
	Finally
	Fn
	For
	ForEach
	Function
	Global
	GoTo
	If
	Implements
	Include
	IncludeOnce
	InstanceOf
	InsteadOf
	Interface
	Match
	Namespace
	New
	Or
	Private
	Protected
	Public
	ReadOnly
	Require
	RequireOnce
	Return
	Static
	Switch
	Throw
	Trait
	Try
	Use
	Var
	While
	Yield
	// From only appears in `yield from` generator delegation.
	From

	numKeywords
)

var keywordSpellings = [...]string{
	Abstract:    "abstract",
	And:         "and",
	As:          "as",
	Break:       "break",
	Case:        "case",
	Catch:       "catch",
	Class:       "class",
	Clone:       "clone",
	Const:       "const",
	Continue:    "continue",
	Declare:     "declare",
	Default:     "default",
	Do:          "do",
	Else:        "else",
	Elseif:      "elseif",
	EndDeclare:  "enddeclare",
	EndFor:      "endfor",
	EndForEach:  "endforeach",
	EndIf:       "endif",
	EndSwitch:   "endswitch",
	EndWhile:    "endwhile",
	Extends:     "extends",
	Final:       "final",
	Finally:     "finally",
	Fn:          "fn",
	For:         "for",
	ForEach:     "foreach",
	Function:    "function",
	Global:      "global",
	GoTo:        "goto",
	If:          "if",
	Implements:  "implements",
	Include:     "include",
	IncludeOnce: "include_once",
	InstanceOf:  "instanceof",
	InsteadOf:   "insteadof",
	Interface:   "interface",
	Match:       "match",
	Namespace:   "namespace",
	New:         "new",
	Or:          "or",
	Private:     "private",
	Protected:   "protected",
	Public:      "public",
	ReadOnly:    "readonly",
	Require:     "require",
	RequireOnce: "require_once",
	Return:      "return",
	Static:      "static",
	Switch:      "switch",
	Throw:       "throw",
	Trait:       "trait",
	Try:         "try",
	Use:         "use",
	Var:         "var",
	While:       "while",
	Yield:       "yield",
	From:        "from",
}

// keywords maps canonical spellings back to their tags.
var keywords map[string]Keyword

func init() {
	keywords = make(map[string]Keyword, numKeywords)
	for kw := Keyword(0); kw < numKeywords; kw++ {
		keywords[keywordSpellings[kw]] = kw
	}
}

// String returns the canonical spelling of a keyword.
func (k Keyword) String() string {
	if k >= 0 && k < numKeywords {
		return keywordSpellings[k]
	}
	return fmt.Sprintf("keyword(%d)", int(k))
}

// LookupKeyword resolves a spelling to its keyword tag. The match is exact
// and case-sensitive; keywords are spelled lowercase.
func LookupKeyword(text string) (Keyword, bool) {
	kw, ok := keywords[text]
	return kw, ok
}
