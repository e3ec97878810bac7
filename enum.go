package pgtext

import (
	"reflect"
	"strconv"

	"github.com/AndrewDonelson/pgtext/internal/numtext"
)

// enumCodec converts an enumeration through its underlying integer type.
// Parsing validates the integer grammar and range but not enum membership:
// out-of-range enum values are constructible on purpose.
type enumCodec[E Integer] struct {
	bits     int
	signed   bool
	name     string
	nullable bool
	null     E
}

// EnumCodecOf returns a codec for an enumeration type: values format as the
// underlying integer's text and parse back the same way. Enumerations have
// no intrinsic null; Null fails with ErrNullConversion.
//
// Plain and method-bearing named integer types behave identically; only the
// underlying integer representation matters.
func EnumCodecOf[E Integer]() Codec[E] {
	return newEnumCodec[E](false, *new(E))
}

// EnumCodecWithNull returns an enumeration codec whose null state is the
// given dedicated sentinel member: parsing a NULL cell yields the sentinel,
// and formatting the sentinel fails with ErrNullConversion.
func EnumCodecWithNull[E Integer](sentinel E) Codec[E] {
	return newEnumCodec[E](true, sentinel)
}

func newEnumCodec[E Integer](nullable bool, sentinel E) Codec[E] {
	t := reflect.TypeFor[E]()
	signed := false
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		signed = true
	}
	return enumCodec[E]{
		bits:     t.Bits(),
		signed:   signed,
		name:     typeNameOf(t),
		nullable: nullable,
		null:     sentinel,
	}
}

func (c enumCodec[E]) HasNull() bool { return c.nullable }

func (c enumCodec[E]) IsNull(v E) bool { return c.nullable && v == c.null }

func (c enumCodec[E]) Null() (E, error) {
	if !c.nullable {
		var zero E
		return zero, nullConversionError(c.name)
	}
	return c.null, nil
}

func (c enumCodec[E]) Parse(in Text, dst *E) error {
	if in.Null() {
		if c.nullable {
			*dst = c.null
			return nil
		}
		return nullReadError(c.name)
	}
	if c.signed {
		n, err := numtext.ParseSigned(in.String(), c.bits)
		if err != nil {
			return parseError(c.name, in.String(), err)
		}
		*dst = E(n)
		return nil
	}
	n, err := numtext.ParseUnsigned(in.String(), c.bits)
	if err != nil {
		return parseError(c.name, in.String(), err)
	}
	*dst = E(n)
	return nil
}

func (c enumCodec[E]) Format(v E) (string, error) {
	if c.IsNull(v) {
		return "", nullConversionError(c.name)
	}
	if c.signed {
		return strconv.FormatInt(int64(v), 10), nil
	}
	return strconv.FormatUint(uint64(v), 10), nil
}

func (c enumCodec[E]) SizeHint(E) int {
	if c.signed {
		return numtext.IntSize(c.bits)
	}
	return numtext.UintSize(c.bits)
}
