package pgtext

import (
	"reflect"
	"strconv"

	"github.com/AndrewDonelson/pgtext/internal/numtext"
)

// ────────────────────────────────────────────────────────────────────────────
// bool
// ────────────────────────────────────────────────────────────────────────────

type boolCodec struct{}

// BoolCodec returns the codec for bool. The accepted literal set is exactly
// true/TRUE/t/T/1 and false/FALSE/f/F/0; output is "true"/"false".
func BoolCodec() Codec[bool] { return boolCodec{} }

func (boolCodec) HasNull() bool        { return false }
func (boolCodec) IsNull(bool) bool     { return false }
func (boolCodec) Null() (bool, error)  { return false, nullConversionError("bool") }
func (boolCodec) SizeHint(bool) int    { return numtext.BoolSize }
func (boolCodec) Format(v bool) (string, error) {
	return numtext.FormatBool(v), nil
}

func (boolCodec) Parse(in Text, dst *bool) error {
	if in.Null() {
		return nullReadError("bool")
	}
	v, err := numtext.ParseBool(in.String())
	if err != nil {
		return parseError("bool", in.String(), err)
	}
	*dst = v
	return nil
}

// ────────────────────────────────────────────────────────────────────────────
// integers
// ────────────────────────────────────────────────────────────────────────────

type intCodec[T Signed] struct {
	bits int
	name string
}

// IntCodecOf returns the codec for a signed integer type. The grammar is
// base-10 digits with one optional leading sign; magnitude beyond T's range
// is a parse failure, never wrapped or clamped.
func IntCodecOf[T Signed]() Codec[T] {
	t := reflect.TypeFor[T]()
	return intCodec[T]{bits: t.Bits(), name: typeNameOf(t)}
}

func (c intCodec[T]) HasNull() bool    { return false }
func (c intCodec[T]) IsNull(T) bool    { return false }
func (c intCodec[T]) SizeHint(T) int   { return numtext.IntSize(c.bits) }
func (c intCodec[T]) Null() (T, error) {
	var zero T
	return zero, nullConversionError(c.name)
}

func (c intCodec[T]) Parse(in Text, dst *T) error {
	if in.Null() {
		return nullReadError(c.name)
	}
	n, err := numtext.ParseSigned(in.String(), c.bits)
	if err != nil {
		return parseError(c.name, in.String(), err)
	}
	*dst = T(n)
	return nil
}

func (c intCodec[T]) Format(v T) (string, error) {
	return strconv.FormatInt(int64(v), 10), nil
}

type uintCodec[T Unsigned] struct {
	bits int
	name string
}

// UintCodecOf returns the codec for an unsigned integer type. No sign is
// accepted at all, matching PostgreSQL's non-negative column domains.
func UintCodecOf[T Unsigned]() Codec[T] {
	t := reflect.TypeFor[T]()
	return uintCodec[T]{bits: t.Bits(), name: typeNameOf(t)}
}

func (c uintCodec[T]) HasNull() bool    { return false }
func (c uintCodec[T]) IsNull(T) bool    { return false }
func (c uintCodec[T]) SizeHint(T) int   { return numtext.UintSize(c.bits) }
func (c uintCodec[T]) Null() (T, error) {
	var zero T
	return zero, nullConversionError(c.name)
}

func (c uintCodec[T]) Parse(in Text, dst *T) error {
	if in.Null() {
		return nullReadError(c.name)
	}
	n, err := numtext.ParseUnsigned(in.String(), c.bits)
	if err != nil {
		return parseError(c.name, in.String(), err)
	}
	*dst = T(n)
	return nil
}

func (c uintCodec[T]) Format(v T) (string, error) {
	return strconv.FormatUint(uint64(v), 10), nil
}

// ────────────────────────────────────────────────────────────────────────────
// floats
// ────────────────────────────────────────────────────────────────────────────

type floatCodec[T Float] struct {
	bits int
	name string
}

// FloatCodecOf returns the codec for a floating-point type. Output is the
// shortest text that parses back to the same value; nan, infinity, and
// -infinity use PostgreSQL's spellings.
func FloatCodecOf[T Float]() Codec[T] {
	t := reflect.TypeFor[T]()
	return floatCodec[T]{bits: t.Bits(), name: typeNameOf(t)}
}

func (c floatCodec[T]) HasNull() bool    { return false }
func (c floatCodec[T]) IsNull(T) bool    { return false }
func (c floatCodec[T]) SizeHint(T) int   { return numtext.FloatSize }
func (c floatCodec[T]) Null() (T, error) {
	var zero T
	return zero, nullConversionError(c.name)
}

func (c floatCodec[T]) Parse(in Text, dst *T) error {
	if in.Null() {
		return nullReadError(c.name)
	}
	f, err := numtext.ParseFloat(in.String(), c.bits)
	if err != nil {
		return parseError(c.name, in.String(), err)
	}
	*dst = T(f)
	return nil
}

func (c floatCodec[T]) Format(v T) (string, error) {
	return numtext.FormatFloat(float64(v), c.bits), nil
}

// ────────────────────────────────────────────────────────────────────────────
// string
// ────────────────────────────────────────────────────────────────────────────

type stringCodec struct{}

// StringCodec returns the identity codec for string. Strings have no null
// state of their own; use a wrapper for nullable text columns.
func StringCodec() Codec[string] { return stringCodec{} }

func (stringCodec) HasNull() bool          { return false }
func (stringCodec) IsNull(string) bool     { return false }
func (stringCodec) Null() (string, error)  { return "", nullConversionError("string") }
func (stringCodec) SizeHint(v string) int  { return len(v) + 1 }
func (stringCodec) Format(v string) (string, error) { return v, nil }

func (stringCodec) Parse(in Text, dst *string) error {
	if in.Null() {
		return nullReadError("string")
	}
	*dst = in.String()
	return nil
}
