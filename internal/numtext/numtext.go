// Copyright (c) 2026 Nlaak Studios (https://nlaak.com)
// Author: Andrew Donelson (https://www.linkedin.com/in/andrew-donelson/)
//
// numtext.go — strict base-10 text grammar for the scalar codecs: boolean
// literal set, sign/digit-only integers with range checking, and float
// parsing with nan/infinity handling and hex input rejected.

// Package numtext implements the PostgreSQL-compatible text grammar for
// scalar values. Only the kinds of strings PostgreSQL emits (and the
// formatters here produce) are accepted: no whitespace, no thousands
// separators, no hex or octal prefixes, no digit-group underscores.
package numtext

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Conservative per-value buffer bounds, including one terminator byte.
const (
	// BoolSize covers the longest boolean literal, "false".
	BoolSize = len("false") + 1

	// FloatSize covers shortest-round-trip output for float64 with slack:
	// the widest case is 24 characters ("-2.2250738585072014e-308").
	FloatSize = 32
)

// IntSize returns the maximum text width of a signed integer of the given
// bit size, including sign and terminator.
func IntSize(bits int) int {
	switch bits {
	case 8:
		return len("-128") + 1
	case 16:
		return len("-32768") + 1
	case 32:
		return len("-2147483648") + 1
	default:
		return len("-9223372036854775808") + 1
	}
}

// UintSize returns the maximum text width of an unsigned integer of the
// given bit size, including terminator.
func UintSize(bits int) int {
	switch bits {
	case 8:
		return len("255") + 1
	case 16:
		return len("65535") + 1
	case 32:
		return len("4294967295") + 1
	default:
		return len("18446744073709551615") + 1
	}
}

// ParseSigned parses s as a signed base-10 integer of the given bit size.
// One optional leading sign is accepted; anything else must be a digit.
func ParseSigned(s string, bits int) (int64, error) {
	n, err := strconv.ParseInt(s, 10, bits)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, fmt.Errorf("value out of range")
		}
		return 0, fmt.Errorf("malformed integer")
	}
	return n, nil
}

// ParseUnsigned parses s as an unsigned base-10 integer of the given bit
// size. No sign is accepted, not even "+".
func ParseUnsigned(s string, bits int) (uint64, error) {
	n, err := strconv.ParseUint(s, 10, bits)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, fmt.Errorf("value out of range")
		}
		return 0, fmt.Errorf("malformed unsigned integer")
	}
	return n, nil
}

// ParseFloat parses s as a decimal floating-point number of the given bit
// size. PostgreSQL's special spellings (nan, infinity, inf, any case) are
// accepted; Go's hex float syntax and digit-group underscores are not.
func ParseFloat(s string, bits int) (float64, error) {
	if strings.ContainsRune(s, '_') {
		return 0, fmt.Errorf("malformed number")
	}
	body := s
	if len(body) > 0 && (body[0] == '+' || body[0] == '-') {
		body = body[1:]
	}
	if len(body) > 1 && body[0] == '0' && (body[1] == 'x' || body[1] == 'X') {
		return 0, fmt.Errorf("hexadecimal input not accepted")
	}
	f, err := strconv.ParseFloat(s, bits)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, fmt.Errorf("value out of range")
		}
		return 0, fmt.Errorf("malformed number")
	}
	return f, nil
}

// FormatFloat renders f using the shortest representation that parses back
// to the same value, with PostgreSQL's spellings for the special values.
func FormatFloat(f float64, bits int) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "infinity"
	case math.IsInf(f, -1):
		return "-infinity"
	}
	return strconv.FormatFloat(f, 'g', -1, bits)
}

// ParseBool parses exactly the boolean literal set PostgreSQL emits and
// accepts: true/TRUE/t/T/1 and false/FALSE/f/F/0. Anything else, including
// the empty string, is an error.
func ParseBool(s string) (bool, error) {
	switch s {
	case "true", "TRUE", "t", "T", "1":
		return true, nil
	case "false", "FALSE", "f", "F", "0":
		return false, nil
	}
	return false, fmt.Errorf("not a boolean literal")
}

// FormatBool renders b as "true" or "false".
func FormatBool(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
