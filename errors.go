// Copyright (c) 2026 Nlaak Studios (https://nlaak.com)
// Author: Andrew Donelson (https://www.linkedin.com/in/andrew-donelson/)
//
// errors.go — sentinel error variables returned by the public pgtext API,
// covering text grammar violations, null conversion, buffer capacity, and
// codec registration.

// Package pgtext converts native Go values to and from the textual wire
// representation used by PostgreSQL's text protocol, with explicit,
// type-safe null handling.
package pgtext

import (
	"errors"
	"fmt"
)

// Conversion errors
var (
	// ErrParse is returned when input text does not conform to the target
	// type's grammar: a malformed literal or an out-of-range magnitude.
	ErrParse = errors.New("pgtext: malformed text for target type")

	// ErrNullConversion is returned when a null value is formatted into a
	// representation with no textual null form, or when null text is parsed
	// into a type with no null state.
	ErrNullConversion = errors.New("pgtext: cannot convert null")

	// ErrBufferOverrun is returned when caller-provided storage is
	// (conservatively) too small for the formatted output.
	ErrBufferOverrun = errors.New("pgtext: buffer too small for formatted value")

	// ErrNullRead is returned when an absent cell reaches a codec that
	// expected present text. It is distinct from ErrParse so a null cell is
	// never confused with an empty-but-present one.
	ErrNullRead = errors.New("pgtext: attempt to read null text")
)

// Registry errors
var (
	ErrNoCodec        = errors.New("pgtext: no codec registered for type")
	ErrDuplicateCodec = errors.New("pgtext: codec already registered for type")
	ErrNotOptional    = errors.New("pgtext: type is not an optional-like wrapper")
)

// parseError wraps ErrParse with the offending text and target type name.
func parseError(typeName, text string, cause error) error {
	return fmt.Errorf("%w: could not convert %q to %s: %v", ErrParse, text, typeName, cause)
}

// nullConversionError wraps ErrNullConversion with the target type name.
func nullConversionError(typeName string) error {
	return fmt.Errorf("%w to %s", ErrNullConversion, typeName)
}

// bufferOverrunError wraps ErrBufferOverrun with capacity diagnostics.
func bufferOverrunError(typeName string, need, have int) error {
	return fmt.Errorf("%w: %s needs %d bytes, buffer holds %d", ErrBufferOverrun, typeName, need, have)
}

// nullReadError wraps ErrNullRead with the target type name.
func nullReadError(typeName string) error {
	return fmt.Errorf("%w into %s", ErrNullRead, typeName)
}
