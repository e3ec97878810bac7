package pgtext

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/AndrewDonelson/pgtext/internal/typecap"
)

// codecRegistry maps Go types to conversion descriptors. Built-in codecs are
// installed at package init; user types join through Register. Wrapper types
// never need registration: their descriptors are derived on first lookup
// from the contained type's descriptor and memoized.
type codecRegistry struct {
	mu     sync.RWMutex
	codecs map[reflect.Type]*codecEntry
	names  map[reflect.Type]string
	log    Logger
}

// codecEntry pairs the original typed Codec[T] (for For) with its erased
// form (for any-typed dispatch). Derived wrapper entries carry only the
// erased form.
type codecEntry struct {
	typed  any
	erased anyCodec
}

var registry = newCodecRegistry()

func newCodecRegistry() *codecRegistry {
	return &codecRegistry{
		codecs: make(map[reflect.Type]*codecEntry),
		names:  make(map[reflect.Type]string),
		log:    noopLogger{},
	}
}

// SetLogger routes registry diagnostics to a custom Logger. The default
// discards everything.
func SetLogger(l Logger) {
	if l == nil {
		l = noopLogger{}
	}
	registry.mu.Lock()
	registry.log = l
	registry.mu.Unlock()
}

// Register installs c as the codec for T. Each type gets exactly one codec;
// a second registration fails with ErrDuplicateCodec.
func Register[T any](c Codec[T]) error {
	t := reflect.TypeFor[T]()
	entry := &codecEntry{typed: c, erased: erasedCodec[T]{c: c, t: t}}

	registry.mu.Lock()
	defer registry.mu.Unlock()
	if _, exists := registry.codecs[t]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateCodec, typeNameLocked(registry, t))
	}
	registry.codecs[t] = entry
	registry.log.Debug("codec registered", "type", t.String())
	return nil
}

// MustRegister is Register but panics on error; intended for package init.
func MustRegister[T any](c Codec[T]) {
	if err := Register[T](c); err != nil {
		panic(err)
	}
}

// For resolves the one codec for T: a registered codec for T itself, or a
// descriptor derived from the contained type's codec when T is an
// optional-like wrapper. Unknown non-wrapper types fail with ErrNoCodec.
func For[T any]() (Codec[T], error) {
	e, err := registry.resolve(reflect.TypeFor[T]())
	if err != nil {
		return nil, err
	}
	if c, ok := e.typed.(Codec[T]); ok {
		return c, nil
	}
	return typedView[T]{ac: e.erased}, nil
}

// MustFor is For but panics on error; useful for package-level variables.
func MustFor[T any]() Codec[T] {
	c, err := For[T]()
	if err != nil {
		panic(err)
	}
	return c
}

// resolve returns the entry for t, deriving and memoizing wrapper
// descriptors as needed.
func (r *codecRegistry) resolve(t reflect.Type) (*codecEntry, error) {
	if t == nil {
		return nil, fmt.Errorf("%w: untyped nil", ErrNoCodec)
	}

	r.mu.RLock()
	e, ok := r.codecs[t]
	r.mu.RUnlock()
	if ok {
		return e, nil
	}

	strategy, err := typecap.Classify(t)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotOptional, err)
	}

	var derived anyCodec
	switch strategy {
	case typecap.StrategyPointerNull:
		inner, err := r.resolve(t.Elem())
		if err != nil {
			return nil, err
		}
		derived = &reflectPtrCodec{t: t, inner: inner.erased, name: typeNameOf(t)}

	case typecap.StrategyMarkerNull:
		innerType, _ := typecap.Inner(t)
		inner, err := r.resolve(innerType)
		if err != nil {
			return nil, err
		}
		if _, ok := typecap.SetterFor(t); !ok {
			return nil, fmt.Errorf("%w: %s accepts the empty marker but has no Set(%s) method",
				ErrNotOptional, typeNameOf(t), innerType)
		}
		derived = &reflectMarkerCodec{t: t, innerType: innerType, inner: inner.erased, name: typeNameOf(t)}

	default:
		return nil, fmt.Errorf("%w: %s", ErrNoCodec, typeNameOf(t))
	}

	entry := &codecEntry{erased: derived}
	r.mu.Lock()
	// Lost a race with another goroutine deriving the same type? Keep theirs.
	if existing, ok := r.codecs[t]; ok {
		entry = existing
	} else {
		r.codecs[t] = entry
		r.log.Debug("codec derived", "type", t.String(), "strategy", strategy.String())
	}
	r.mu.Unlock()
	return entry, nil
}

// ────────────────────────────────────────────────────────────────────────────
// Type names
// ────────────────────────────────────────────────────────────────────────────

// RegisterTypeName overrides the human-readable name used for T in error
// messages. Intended for package init; names never change after startup.
func RegisterTypeName[T any](name string) {
	t := reflect.TypeFor[T]()
	registry.mu.Lock()
	registry.names[t] = name
	registry.mu.Unlock()
}

// TypeName returns the human-readable name for T used in diagnostics.
func TypeName[T any]() string {
	return typeNameOf(reflect.TypeFor[T]())
}

func typeNameOf(t reflect.Type) string {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	return typeNameLocked(registry, t)
}

func typeNameLocked(r *codecRegistry, t reflect.Type) string {
	if name, ok := r.names[t]; ok {
		return name
	}
	return t.String()
}

// ────────────────────────────────────────────────────────────────────────────
// Erased dispatch
// ────────────────────────────────────────────────────────────────────────────

// anyCodec mirrors Codec[T] with the type erased, for registry dispatch.
// parse takes dst as *T; format and isNull take a T.
type anyCodec interface {
	hasNull() bool
	isNull(v any) bool
	null() (any, error)
	parse(in Text, dst any) error
	format(v any) (string, error)
	sizeHint(v any) int
	goType() reflect.Type
}

// erasedCodec adapts a typed Codec[T] to anyCodec.
type erasedCodec[T any] struct {
	c Codec[T]
	t reflect.Type
}

func (e erasedCodec[T]) hasNull() bool        { return e.c.HasNull() }
func (e erasedCodec[T]) isNull(v any) bool    { return e.c.IsNull(v.(T)) }
func (e erasedCodec[T]) goType() reflect.Type { return e.t }
func (e erasedCodec[T]) sizeHint(v any) int   { return e.c.SizeHint(v.(T)) }

func (e erasedCodec[T]) null() (any, error) {
	v, err := e.c.Null()
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (e erasedCodec[T]) parse(in Text, dst any) error {
	p, ok := dst.(*T)
	if !ok {
		return fmt.Errorf("%w: destination is %T, want *%s", ErrNoCodec, dst, e.t)
	}
	return e.c.Parse(in, p)
}

func (e erasedCodec[T]) format(v any) (string, error) {
	return e.c.Format(v.(T))
}

// typedView adapts an erased descriptor back to Codec[T], used when For
// resolves a derived wrapper descriptor.
type typedView[T any] struct {
	ac anyCodec
}

func (tv typedView[T]) HasNull() bool      { return tv.ac.hasNull() }
func (tv typedView[T]) IsNull(v T) bool    { return tv.ac.isNull(v) }
func (tv typedView[T]) SizeHint(v T) int   { return tv.ac.sizeHint(v) }

func (tv typedView[T]) Null() (T, error) {
	var zero T
	v, err := tv.ac.null()
	if err != nil {
		return zero, err
	}
	return v.(T), nil
}

func (tv typedView[T]) Parse(in Text, dst *T) error {
	return tv.ac.parse(in, dst)
}

func (tv typedView[T]) Format(v T) (string, error) {
	return tv.ac.format(v)
}

// ────────────────────────────────────────────────────────────────────────────
// Derived wrapper descriptors (reflect-driven)
// ────────────────────────────────────────────────────────────────────────────

// reflectPtrCodec is the pointer-null derivation: null is the nil pointer,
// everything else delegates to the pointee's descriptor.
type reflectPtrCodec struct {
	t     reflect.Type // *V
	inner anyCodec     // descriptor for V
	name  string
}

func (c *reflectPtrCodec) hasNull() bool        { return true }
func (c *reflectPtrCodec) goType() reflect.Type { return c.t }

func (c *reflectPtrCodec) isNull(v any) bool {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() || rv.IsNil() {
		return true
	}
	return c.inner.isNull(rv.Elem().Interface())
}

func (c *reflectPtrCodec) null() (any, error) {
	return reflect.Zero(c.t).Interface(), nil
}

func (c *reflectPtrCodec) parse(in Text, dst any) error {
	slot := reflect.ValueOf(dst)
	if slot.Kind() != reflect.Pointer || slot.IsNil() || slot.Type().Elem() != c.t {
		return fmt.Errorf("%w: destination is %T, want *%s", ErrNoCodec, dst, c.t)
	}
	slot = slot.Elem() // the *V cell

	if in.Null() {
		slot.Set(reflect.Zero(c.t))
		return nil
	}
	if !slot.IsNil() {
		// Reuse the held pointee in place.
		return c.inner.parse(in, slot.Interface())
	}
	p := reflect.New(c.t.Elem())
	if err := c.inner.parse(in, p.Interface()); err != nil {
		return err
	}
	slot.Set(p)
	return nil
}

func (c *reflectPtrCodec) format(v any) (string, error) {
	if c.isNull(v) {
		return "", nullConversionError(c.name)
	}
	return c.inner.format(reflect.ValueOf(v).Elem().Interface())
}

func (c *reflectPtrCodec) sizeHint(v any) int {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() || rv.IsNil() {
		return 1
	}
	return c.inner.sizeHint(rv.Elem().Interface())
}

// reflectMarkerCodec is the marker-null derivation: null is the accepted
// empty marker, constructed by calling SetNone on a fresh wrapper; values
// are read through Get/Present and written through Set.
type reflectMarkerCodec struct {
	t         reflect.Type // wrapper W
	innerType reflect.Type // contained V
	inner     anyCodec     // descriptor for V
	name      string
}

func (c *reflectMarkerCodec) hasNull() bool        { return true }
func (c *reflectMarkerCodec) goType() reflect.Type { return c.t }

// methodOn resolves a method on v, falling back to an addressable copy for
// wrappers that declare Get or Present on the pointer receiver.
func methodOn(rv reflect.Value, name string) reflect.Value {
	if m := rv.MethodByName(name); m.IsValid() {
		return m
	}
	p := reflect.New(rv.Type())
	p.Elem().Set(rv)
	return p.MethodByName(name)
}

func (c *reflectMarkerCodec) isNull(v any) bool {
	rv := reflect.ValueOf(v)
	if !methodOn(rv, "Present").Call(nil)[0].Bool() {
		return true
	}
	return c.inner.isNull(methodOn(rv, "Get").Call(nil)[0].Interface())
}

func (c *reflectMarkerCodec) null() (any, error) {
	w := reflect.New(c.t)
	w.MethodByName("SetNone").Call([]reflect.Value{reflect.ValueOf(None{})})
	return w.Elem().Interface(), nil
}

func (c *reflectMarkerCodec) parse(in Text, dst any) error {
	pw := reflect.ValueOf(dst)
	if pw.Kind() != reflect.Pointer || pw.IsNil() || pw.Type().Elem() != c.t {
		return fmt.Errorf("%w: destination is %T, want *%s", ErrNoCodec, dst, c.t)
	}
	if in.Null() {
		pw.MethodByName("SetNone").Call([]reflect.Value{reflect.ValueOf(None{})})
		return nil
	}
	v := reflect.New(c.innerType)
	if err := c.inner.parse(in, v.Interface()); err != nil {
		return err
	}
	// Set writes into the existing wrapper storage; the wrapper itself is
	// never reconstructed.
	pw.MethodByName("Set").Call([]reflect.Value{v.Elem()})
	return nil
}

func (c *reflectMarkerCodec) format(v any) (string, error) {
	if c.isNull(v) {
		return "", nullConversionError(c.name)
	}
	inner := methodOn(reflect.ValueOf(v), "Get").Call(nil)[0].Interface()
	return c.inner.format(inner)
}

func (c *reflectMarkerCodec) sizeHint(v any) int {
	rv := reflect.ValueOf(v)
	if !methodOn(rv, "Present").Call(nil)[0].Bool() {
		return 1
	}
	return c.inner.sizeHint(methodOn(rv, "Get").Call(nil)[0].Interface())
}

// ────────────────────────────────────────────────────────────────────────────
// Built-in registrations
// ────────────────────────────────────────────────────────────────────────────

func init() {
	MustRegister[bool](BoolCodec())
	MustRegister[string](StringCodec())

	MustRegister[int](IntCodecOf[int]())
	MustRegister[int8](IntCodecOf[int8]())
	MustRegister[int16](IntCodecOf[int16]())
	MustRegister[int32](IntCodecOf[int32]())
	MustRegister[int64](IntCodecOf[int64]())

	MustRegister[uint](UintCodecOf[uint]())
	MustRegister[uint8](UintCodecOf[uint8]())
	MustRegister[uint16](UintCodecOf[uint16]())
	MustRegister[uint32](UintCodecOf[uint32]())
	MustRegister[uint64](UintCodecOf[uint64]())

	MustRegister[float32](FloatCodecOf[float32]())
	MustRegister[float64](FloatCodecOf[float64]())
}
