// Copyright 2025 The go-phprs Authors
// This file is part of go-phprs.
//
// go-phprs is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"reflect"
	"unicode"

	"github.com/naoina/toml"
	"gopkg.in/urfave/cli.v1"

	"github.com/phprs/go-phprs/lang/cache"
)

var (
	dumpConfigCommand = cli.Command{
		Action:      dumpConfig,
		Name:        "dumpconfig",
		Usage:       "Show configuration values",
		ArgsUsage:   "",
		Flags:       []cli.Flag{configFileFlag, formatFlag, triviaFlag},
		Category:    "MISCELLANEOUS COMMANDS",
		Description: `The dumpconfig command shows configuration values.`,
	}

	configFileFlag = cli.StringFlag{
		Name:  "config",
		Usage: "TOML configuration file",
	}
)

// These settings ensure that TOML keys use the same names as Go struct fields.
var tomlSettings = toml.Config{
	NormFieldName: func(rt reflect.Type, key string) string {
		return key
	},
	FieldToKey: func(rt reflect.Type, field string) string {
		return field
	},
	MissingField: func(rt reflect.Type, field string) error {
		var link string
		if unicode.IsUpper(rune(rt.Name()[0])) && rt.PkgPath() != "main" {
			link = fmt.Sprintf(", see https://godoc.org/%s#%s for available fields", rt.PkgPath(), rt.Name())
		}
		return fmt.Errorf("field '%s' is not defined in %s%s", field, rt.String(), link)
	},
}

type tokensConfig struct {
	Format    string `toml:",omitempty"` // "plain" or "table"
	Trivia    bool   `toml:",omitempty"` // include whitespace/comment tokens
	CacheSize int    `toml:",omitempty"` // token stream cache capacity
}

type phpcConfig struct {
	Tokens tokensConfig
}

func defaultConfig() phpcConfig {
	return phpcConfig{
		Tokens: tokensConfig{
			Format:    "plain",
			CacheSize: cache.DefaultSize,
		},
	}
}

func loadConfig(file string, cfg *phpcConfig) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	err = tomlSettings.NewDecoder(bufio.NewReader(f)).Decode(cfg)
	// Add file name to errors that have a line number.
	if _, ok := err.(*toml.LineError); ok {
		err = errors.New(file + ", " + err.Error())
	}
	return err
}

// makeConfig builds the effective configuration: defaults, then the config
// file if one was given, then command-line flag overrides.
func makeConfig(ctx *cli.Context) (phpcConfig, error) {
	cfg := defaultConfig()
	if file := ctx.String(configFileFlag.Name); file != "" {
		if err := loadConfig(file, &cfg); err != nil {
			return cfg, err
		}
	}
	if ctx.IsSet(formatFlag.Name) {
		cfg.Tokens.Format = ctx.String(formatFlag.Name)
	}
	if ctx.IsSet(triviaFlag.Name) {
		cfg.Tokens.Trivia = ctx.Bool(triviaFlag.Name)
	}
	switch cfg.Tokens.Format {
	case "plain", "table":
	default:
		return cfg, fmt.Errorf("unknown token format %q", cfg.Tokens.Format)
	}
	if cfg.Tokens.CacheSize <= 0 {
		return cfg, fmt.Errorf("cache size must be positive, got %d", cfg.Tokens.CacheSize)
	}
	return cfg, nil
}

func dumpConfig(ctx *cli.Context) error {
	cfg, err := makeConfig(ctx)
	if err != nil {
		return err
	}
	out, err := tomlSettings.Marshal(&cfg)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(out)
	return err
}
