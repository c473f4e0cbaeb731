// Copyright 2025 The go-phprs Authors
// This file is part of go-phprs.
//
// go-phprs is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

// Package cache memoizes lexed token streams for drivers that feed the same
// sources through the front-end repeatedly. Entries are keyed by the
// Keccak-256 hash of the source text, so renamed or moved files still hit.
package cache

import (
	lru "github.com/hashicorp/golang-lru"
	"golang.org/x/crypto/sha3"

	"github.com/phprs/go-phprs/lang/lexer"
	"github.com/phprs/go-phprs/lang/token"
)

// DefaultSize is the stream capacity used by NewDefault.
const DefaultSize = 64

// Cache is an LRU of token streams. It is safe for concurrent use; the
// underlying ARC cache carries its own lock. Returned slices are shared and
// must not be mutated by callers.
type Cache struct {
	streams *lru.ARCCache
}

// New creates a cache holding up to size token streams.
func New(size int) (*Cache, error) {
	streams, err := lru.NewARC(size)
	if err != nil {
		return nil, err
	}
	return &Cache{streams: streams}, nil
}

// NewDefault creates a cache with DefaultSize capacity.
func NewDefault() *Cache {
	c, err := New(DefaultSize)
	if err != nil {
		panic(err) // DefaultSize is positive; NewARC cannot fail on it
	}
	return c
}

// Tokenize returns the token stream for src, lexing it at most once per
// distinct source. Lexical errors are returned to the caller and never
// cached, so a later call with corrected content relexes from scratch.
func (c *Cache) Tokenize(src string) ([]token.Token, error) {
	key := sourceKey(src)
	if cached, ok := c.streams.Get(key); ok {
		return cached.([]token.Token), nil
	}
	toks, err := lexer.New(src).Tokenize()
	if err != nil {
		return nil, err
	}
	c.streams.Add(key, toks)
	return toks, nil
}

// Len returns the number of cached streams.
func (c *Cache) Len() int { return c.streams.Len() }

func sourceKey(src string) [32]byte {
	hasher := sha3.NewLegacyKeccak256()
	hasher.Write([]byte(src))
	var key [32]byte
	hasher.Sum(key[:0])
	return key
}
