// Copyright 2025 The go-phprs Authors
// This file is part of go-phprs.
//
// go-phprs is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

// phpc is the PHP-RS compiler driver. Only the token-emission stage is wired
// up; later stages report themselves as unimplemented.
//
// Usage:
//
//	phpc tokens [--format plain|table] [--trivia] <file>...
//	phpc dumpconfig
package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"gopkg.in/urfave/cli.v1"

	"github.com/phprs/go-phprs/lang/cache"
	"github.com/phprs/go-phprs/lang/token"
)

const version = "0.1.0"

var (
	app = cli.NewApp()

	formatFlag = cli.StringFlag{
		Name:  "format",
		Usage: `token output format ("plain" or "table")`,
	}
	triviaFlag = cli.BoolFlag{
		Name:  "trivia",
		Usage: "include whitespace and comment tokens in the output",
	}

	tokensCommand = cli.Command{
		Action:    emitTokens,
		Name:      "tokens",
		Usage:     "Lex source files and print their token streams",
		ArgsUsage: "<file>...",
		Flags:     []cli.Flag{configFileFlag, formatFlag, triviaFlag},
		Category:  "COMPILER COMMANDS",
		Description: `Runs only the lexical stage of the compiler and prints one line (or table
row) per token. Whitespace and comment tokens are filtered unless --trivia
is given. Files repeated within one invocation are lexed once.`,
	}
)

func init() {
	app.Name = "phpc"
	app.Usage = "the PHP-RS compiler driver"
	app.Version = version
	app.Commands = []cli.Command{tokensCommand, dumpConfigCommand}
	sort.Sort(cli.CommandsByName(app.Commands))
}

func main() {
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var errColor = color.New(color.FgRed)

func emitTokens(ctx *cli.Context) error {
	if ctx.NArg() < 1 {
		return cli.NewExitError("tokens: no input files", 1)
	}
	cfg, err := makeConfig(ctx)
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}
	streams, err := cache.New(cfg.Tokens.CacheSize)
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}

	failed := false
	for _, name := range ctx.Args() {
		source, err := os.ReadFile(name)
		if err != nil {
			errColor.Fprintf(os.Stderr, "%s: %v\n", name, err)
			failed = true
			continue
		}
		toks, err := streams.Tokenize(string(source))
		if err != nil {
			errColor.Fprintf(os.Stderr, "%s: %v\n", name, err)
			failed = true
			continue
		}
		printTokens(toks, cfg.Tokens)
	}
	if failed {
		return cli.NewExitError("tokens: lexical errors", 1)
	}
	return nil
}

func printTokens(toks []token.Token, cfg tokensConfig) {
	var table *tablewriter.Table
	if cfg.Format == "table" {
		table = tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"Span", "Kind", "Lexeme"})
	}
	for _, tok := range toks {
		if !cfg.Trivia && (tok.Kind == token.KindWhitespace || tok.Kind == token.KindComment) {
			continue
		}
		if table != nil {
			table.Append([]string{tok.Span.String(), tok.Kind.String(), tok.Lexeme()})
		} else {
			fmt.Printf("%s\t%s\t%q\n", tok.Span, tok.Kind, tok.Lexeme())
		}
	}
	if table != nil {
		table.Render()
	}
}
