package pgtext

import (
	"fmt"
	"reflect"
)

// Top-level conversion entry points. These resolve the target type's codec
// through the registry; code holding a codec already can call it directly
// and skip the lookup.

// ToString renders v as PostgreSQL wire text. A null v fails with
// ErrNullConversion: null has no textual form, so callers that may hold
// nulls must check IsNull first and emit SQL NULL themselves.
func ToString[T any](v T) (string, error) {
	c, err := For[T]()
	if err != nil {
		return "", err
	}
	return c.Format(v)
}

// FromString parses present wire text into *dst. The text cannot be null by
// construction; use FromText for cells that may be SQL NULL.
func FromString[T any](s string, dst *T) error {
	c, err := For[T]()
	if err != nil {
		return err
	}
	return c.Parse(NewText(s), dst)
}

// FromText parses one wire cell into *dst. A NULL cell becomes T's null
// value when T has one and fails with ErrNullConversion when it does not;
// this guard runs before any grammar is consulted, so an absent cell is
// never mistaken for a present empty string.
func FromText[T any](in Text, dst *T) error {
	c, err := For[T]()
	if err != nil {
		return err
	}
	if in.Null() && !c.HasNull() {
		return nullConversionError(TypeName[T]())
	}
	return c.Parse(in, dst)
}

// FormatValue is the any-typed form of ToString, dispatching on v's dynamic
// type. It exists for callers that meet values through interfaces, e.g. the
// database/sql bridge.
func FormatValue(v any) (string, error) {
	e, err := registry.resolve(reflect.TypeOf(v))
	if err != nil {
		return "", err
	}
	return e.erased.format(v)
}

// ParseValue is the any-typed form of FromText; dst must be a non-nil
// pointer to the target type.
func ParseValue(in Text, dst any) error {
	rv := reflect.ValueOf(dst)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("pgtext: parse destination must be a non-nil pointer, got %T", dst)
	}
	e, err := registry.resolve(rv.Type().Elem())
	if err != nil {
		return err
	}
	if in.Null() && !e.erased.hasNull() {
		return nullConversionError(typeNameOf(rv.Type().Elem()))
	}
	return e.erased.parse(in, dst)
}

// IsNullValue reports whether v is a null state of its own type, using the
// same descriptor FormatValue would.
func IsNullValue(v any) (bool, error) {
	e, err := registry.resolve(reflect.TypeOf(v))
	if err != nil {
		return false, err
	}
	return e.erased.isNull(v), nil
}
