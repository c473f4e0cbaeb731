// Copyright 2025 The go-phprs Authors
// This file is part of go-phprs.
//
// go-phprs is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

package token

import "fmt"

// ReservedCall enumerates the call-like language constructs that look like
// functions but are implemented by the compiler itself (echo-style constructs
// included). They are lexed as their own token so the parser never confuses
// them with user-defined functions.
type ReservedCall int

const (
	HaltCompiler ReservedCall = iota // __halt_compiler()
	Array                            // array()
	Die
	Empty
	Eval
	Exit
	IsSet
	List
	Unset

	numReservedCalls
)

var callSpellings = [...]string{
	HaltCompiler: "__halt_compiler",
	Array:        "array",
	Die:          "die",
	Empty:        "empty",
	Eval:         "eval",
	Exit:         "exit",
	IsSet:        "isset",
	List:         "list",
	Unset:        "unset",
}

var reservedCalls map[string]ReservedCall

// String returns the canonical spelling of a reserved call.
func (c ReservedCall) String() string {
	if c >= 0 && c < numReservedCalls {
		return callSpellings[c]
	}
	return fmt.Sprintf("call(%d)", int(c))
}

// LookupCall resolves a spelling to its reserved-call tag.
func LookupCall(text string) (ReservedCall, bool) {
	c, ok := reservedCalls[text]
	return c, ok
}

// ReservedIdent enumerates the identifiers the language reserves for itself:
// the predefined PHP_* constants and the magic __*__ constants. None of the
// E_* error-level constants are carried here.
//
// Unlike keywords these keep PHP's canonical uppercase spellings.
type ReservedIdent int

const (
	PhpVersion ReservedIdent = iota
	PhpMajorVersion
	PhpMinorVersion
	PhpReleaseVersion
	PhpVersionId
	PhpExtraVersion
	PhpZts
	PhpDebug
	PhpMaxPathLen
	PhpOs
	PhpOsFamily
	PhpSapi
	PhpEol
	PhpIntMax
	PhpIntMin
	PhpFloatDig
	PhpFloatEpsilon
	PhpFloatMin
	PhpFloatMax
	DefaultIncludePath
	PearInstallDir
	PearExtensionDir
	PhpExtensionDir
	PhpPrefix
	PhpBinDir
	PhpBinary
	PhpManDir
	PhpLibDir
	PhpDataDir
	PhpLocaleStateDir
	PhpConfigFilePath
	PhpConfigFileScanDir
	PhpShLibSuffix
	PhpFdSetSize
	MagicClass     // __CLASS__, the enclosing class name
	MagicDir       // __DIR__, directory of the running file
	MagicFile      // __FILE__, path of the running file
	MagicFunction  // __FUNCTION__
	MagicLine      // __LINE__
	MagicMethod    // __METHOD__
	MagicNamespace // __NAMESPACE__
	MagicTrait     // __TRAIT__

	numReservedIdents
)

var identSpellings = [...]string{
	PhpVersion:           "PHP_VERSION",
	PhpMajorVersion:      "PHP_MAJOR_VERSION",
	PhpMinorVersion:      "PHP_MINOR_VERSION",
	PhpReleaseVersion:    "PHP_RELEASE_VERSION",
	PhpVersionId:         "PHP_VERSION_ID",
	PhpExtraVersion:      "PHP_EXTRA_VERSION",
	PhpZts:               "PHP_ZTS",
	PhpDebug:             "PHP_DEBUG",
	PhpMaxPathLen:        "PHP_MAXPATHLEN",
	PhpOs:                "PHP_OS",
	PhpOsFamily:          "PHP_OS_FAMILY",
	PhpSapi:              "PHP_SAPI",
	PhpEol:               "PHP_EOL",
	PhpIntMax:            "PHP_INT_MAX",
	PhpIntMin:            "PHP_INT_MIN",
	PhpFloatDig:          "PHP_FLOAT_DIG",
	PhpFloatEpsilon:      "PHP_FLOAT_EPSILON",
	PhpFloatMin:          "PHP_FLOAT_MIN",
	PhpFloatMax:          "PHP_FLOAT_MAX",
	DefaultIncludePath:   "DEFAULT_INCLUDE_PATH",
	PearInstallDir:       "PEAR_INSTALL_DIR",
	PearExtensionDir:     "PEAR_EXTENSION_DIR",
	PhpExtensionDir:      "PHP_EXTENSION_DIR",
	PhpPrefix:            "PHP_PREFIX",
	PhpBinDir:            "PHP_BINDIR",
	PhpBinary:            "PHP_BINARY",
	PhpManDir:            "PHP_MANDIR",
	PhpLibDir:            "PHP_LIBDIR",
	PhpDataDir:           "PHP_DATADIR",
	PhpLocaleStateDir:    "PHP_LOCALSTATEDIR",
	PhpConfigFilePath:    "PHP_CONFIG_FILE_PATH",
	PhpConfigFileScanDir: "PHP_CONFIG_FILE_SCAN_DIR",
	PhpShLibSuffix:       "PHP_SHLIB_SUFFIX",
	PhpFdSetSize:         "PHP_FD_SETSIZE",
	MagicClass:           "__CLASS__",
	MagicDir:             "__DIR__",
	MagicFile:            "__FILE__",
	MagicFunction:        "__FUNCTION__",
	MagicLine:            "__LINE__",
	MagicMethod:          "__METHOD__",
	MagicNamespace:       "__NAMESPACE__",
	MagicTrait:           "__TRAIT__",
}

var reservedIdents map[string]ReservedIdent

func init() {
	reservedCalls = make(map[string]ReservedCall, numReservedCalls)
	for c := ReservedCall(0); c < numReservedCalls; c++ {
		reservedCalls[callSpellings[c]] = c
	}
	reservedIdents = make(map[string]ReservedIdent, numReservedIdents)
	for id := ReservedIdent(0); id < numReservedIdents; id++ {
		reservedIdents[identSpellings[id]] = id
	}
}

// String returns the canonical spelling of a reserved identifier.
func (id ReservedIdent) String() string {
	if id >= 0 && id < numReservedIdents {
		return identSpellings[id]
	}
	return fmt.Sprintf("ident(%d)", int(id))
}

// LookupIdent resolves a spelling to its reserved-identifier tag.
func LookupIdent(text string) (ReservedIdent, bool) {
	id, ok := reservedIdents[text]
	return id, ok
}
