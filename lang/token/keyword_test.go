// Copyright 2025 The go-phprs Authors
// This file is part of go-phprs.
//
// go-phprs is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

package token

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The spelling tables and lookup maps must form bijections: every tag has
// exactly one spelling and every spelling resolves back to its tag.

func TestKeywordBijection(t *testing.T) {
	require.Len(t, keywords, int(numKeywords), "duplicate or missing keyword spelling")
	for kw := Keyword(0); kw < numKeywords; kw++ {
		spelling := kw.String()
		require.NotEmpty(t, spelling, "keyword %d has no spelling", int(kw))
		assert.Equal(t, strings.ToLower(spelling), spelling,
			"keyword spellings are lowercase")

		got, ok := LookupKeyword(spelling)
		require.True(t, ok, "LookupKeyword(%q)", spelling)
		assert.Equal(t, kw, got)
	}
}

func TestReservedCallBijection(t *testing.T) {
	require.Len(t, reservedCalls, int(numReservedCalls))
	for c := ReservedCall(0); c < numReservedCalls; c++ {
		spelling := c.String()
		require.NotEmpty(t, spelling, "call %d has no spelling", int(c))

		got, ok := LookupCall(spelling)
		require.True(t, ok, "LookupCall(%q)", spelling)
		assert.Equal(t, c, got)
	}
}

func TestReservedIdentBijection(t *testing.T) {
	require.Len(t, reservedIdents, int(numReservedIdents))
	for id := ReservedIdent(0); id < numReservedIdents; id++ {
		spelling := id.String()
		require.NotEmpty(t, spelling, "ident %d has no spelling", int(id))
		assert.Equal(t, strings.ToUpper(spelling), spelling,
			"reserved identifiers keep their canonical uppercase spellings")

		got, ok := LookupIdent(spelling)
		require.True(t, ok, "LookupIdent(%q)", spelling)
		assert.Equal(t, id, got)
	}
}

func TestLookupIsCaseSensitive(t *testing.T) {
	_, ok := LookupKeyword("If")
	assert.False(t, ok)
	_, ok = LookupKeyword("WHILE")
	assert.False(t, ok)
	_, ok = LookupCall("ISSET")
	assert.False(t, ok)
	_, ok = LookupIdent("php_eol")
	assert.False(t, ok)
}

func TestLookupMisses(t *testing.T) {
	for _, text := range []string{"", "forest", "iff", "include_twice", "truthy"} {
		_, ok := LookupKeyword(text)
		assert.False(t, ok, "LookupKeyword(%q)", text)
	}
}

func TestOutOfRangeTagString(t *testing.T) {
	assert.Equal(t, "keyword(999)", Keyword(999).String())
	assert.Equal(t, "call(-1)", ReservedCall(-1).String())
	assert.Equal(t, "ident(999)", ReservedIdent(999).String())
}
