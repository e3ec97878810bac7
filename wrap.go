package pgtext

import "reflect"

// Option is a marker-null wrapper: V plus an explicit presence flag. Its
// zero value is absent. It implements the Getter, Presence, NoneAcceptor,
// and Setter capabilities, so codecs for Option[V] derive automatically
// from V's codec.
type Option[V any] struct {
	val V
	ok  bool
}

// Some returns a present Option holding v.
func Some[V any](v V) Option[V] { return Option[V]{val: v, ok: true} }

// Get returns the contained value. It is V's zero value while absent.
func (o Option[V]) Get() V { return o.val }

// Present reports whether a value is held.
func (o Option[V]) Present() bool { return o.ok }

// Set assigns v, making the Option present.
func (o *Option[V]) Set(v V) {
	o.val = v
	o.ok = true
}

// SetNone accepts the empty marker, clearing the Option.
func (o *Option[V]) SetNone(None) {
	var zero V
	o.val = zero
	o.ok = false
}

// ────────────────────────────────────────────────────────────────────────────
// Derived wrapper codecs
// ────────────────────────────────────────────────────────────────────────────

// PtrCodecOf derives the codec for *V from V's codec. Null is the nil
// pointer. Parsing into a non-nil destination reuses the existing pointee
// instead of allocating a fresh one.
func PtrCodecOf[V any](inner Codec[V]) Codec[*V] {
	return ptrCodec[V]{inner: inner, name: typeNameOf(reflect.TypeFor[*V]())}
}

type ptrCodec[V any] struct {
	inner Codec[V]
	name  string
}

func (c ptrCodec[V]) HasNull() bool { return true }

func (c ptrCodec[V]) IsNull(v *V) bool {
	return v == nil || c.inner.IsNull(*v)
}

func (c ptrCodec[V]) Null() (*V, error) { return nil, nil }

func (c ptrCodec[V]) Parse(in Text, dst **V) error {
	if in.Null() {
		*dst = nil
		return nil
	}
	if *dst != nil {
		// Reuse the held instance in place.
		return c.inner.Parse(in, *dst)
	}
	p := new(V)
	if err := c.inner.Parse(in, p); err != nil {
		return err
	}
	*dst = p
	return nil
}

func (c ptrCodec[V]) Format(v *V) (string, error) {
	if c.IsNull(v) {
		return "", nullConversionError(c.name)
	}
	return c.inner.Format(*v)
}

func (c ptrCodec[V]) SizeHint(v *V) int {
	if v == nil {
		return 1
	}
	return c.inner.SizeHint(*v)
}

// OptionCodecOf derives the codec for Option[V] from V's codec. Null is the
// absent marker state. Parsing into a present destination writes through to
// the contained instance rather than rebuilding the wrapper.
func OptionCodecOf[V any](inner Codec[V]) Codec[Option[V]] {
	return optionCodec[V]{inner: inner, name: typeNameOf(reflect.TypeFor[Option[V]]())}
}

type optionCodec[V any] struct {
	inner Codec[V]
	name  string
}

func (c optionCodec[V]) HasNull() bool { return true }

func (c optionCodec[V]) IsNull(o Option[V]) bool {
	return !o.ok || c.inner.IsNull(o.val)
}

func (c optionCodec[V]) Null() (Option[V], error) { return Option[V]{}, nil }

func (c optionCodec[V]) Parse(in Text, dst *Option[V]) error {
	if in.Null() {
		dst.SetNone(None{})
		return nil
	}
	if dst.ok {
		// Reuse the held instance in place.
		return c.inner.Parse(in, &dst.val)
	}
	var v V
	if err := c.inner.Parse(in, &v); err != nil {
		return err
	}
	dst.Set(v)
	return nil
}

func (c optionCodec[V]) Format(o Option[V]) (string, error) {
	if c.IsNull(o) {
		return "", nullConversionError(c.name)
	}
	return c.inner.Format(o.val)
}

func (c optionCodec[V]) SizeHint(o Option[V]) int {
	if !o.ok {
		return 1
	}
	return c.inner.SizeHint(o.val)
}
