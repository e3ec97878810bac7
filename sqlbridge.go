// Copyright (c) 2026 Nlaak Studios (https://nlaak.com)
// Author: Andrew Donelson (https://www.linkedin.com/in/andrew-donelson/)
//
// sqlbridge.go — database/sql interop: Value/Scan helpers built on the
// codec registry, plus driver.Valuer and sql.Scanner on Option so nullable
// fields plug straight into Go's SQL ecosystem.

package pgtext

import (
	"database/sql/driver"
	"fmt"
	"strconv"
)

// Value renders v for a database driver: SQL NULL for a null value, wire
// text otherwise.
func Value[T any](v T) (driver.Value, error) {
	c, err := For[T]()
	if err != nil {
		return nil, err
	}
	if c.HasNull() && c.IsNull(v) {
		return nil, nil
	}
	s, err := c.Format(v)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Scan converts a value received from a database driver into *dst. Textual
// sources go through the wire grammar; the native numeric and boolean types
// drivers hand back are rendered to text first so one grammar governs all
// paths.
func Scan[T any](src any, dst *T) error {
	in, err := driverText(src)
	if err != nil {
		return err
	}
	return FromText(in, dst)
}

// driverText normalizes the driver.Value vocabulary to a wire cell.
func driverText(src any) (Text, error) {
	switch s := src.(type) {
	case nil:
		return NullText(), nil
	case string:
		return NewText(s), nil
	case []byte:
		return NewText(string(s)), nil
	case int64:
		return NewText(strconv.FormatInt(s, 10)), nil
	case float64:
		return NewText(strconv.FormatFloat(s, 'g', -1, 64)), nil
	case bool:
		if s {
			return NewText("true"), nil
		}
		return NewText("false"), nil
	default:
		return Text{}, fmt.Errorf("%w: unsupported driver value %T", ErrParse, src)
	}
}

// Value implements driver.Valuer: SQL NULL while absent, the contained
// value's wire text otherwise.
func (o Option[V]) Value() (driver.Value, error) {
	if !o.ok {
		return nil, nil
	}
	return Value[V](o.val)
}

// Scan implements sql.Scanner.
func (o *Option[V]) Scan(src any) error {
	in, err := driverText(src)
	if err != nil {
		return err
	}
	if in.Null() {
		o.SetNone(None{})
		return nil
	}
	var v V
	if err := FromText(in, &v); err != nil {
		return err
	}
	o.Set(v)
	return nil
}
