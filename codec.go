package pgtext

import (
	"github.com/AndrewDonelson/pgtext/internal/typecap"
)

// Text is one wire-protocol cell: either SQL NULL or a present string. A
// present-but-empty string and NULL are distinct states and are never
// conflated.
type Text struct {
	s       string
	present bool
}

// NewText returns a present cell holding s.
func NewText(s string) Text { return Text{s: s, present: true} }

// NullText returns the absent cell.
func NullText() Text { return Text{} }

// Null reports whether the cell is SQL NULL.
func (t Text) Null() bool { return !t.present }

// String returns the cell's text. It is "" both for NULL and for a present
// empty string; check Null to tell them apart.
func (t Text) String() string { return t.s }

// Codec is the conversion descriptor for one Go type T. Exactly one codec
// resolves for any given type through For; wrapper codecs are derived from
// their contained type's codec, never hand-written per wrapper.
//
// Codecs are stateless and reentrant: every method is a pure function of its
// inputs, so concurrent use from multiple goroutines needs no locking.
type Codec[T any] interface {
	// HasNull reports whether T has a representable null state.
	HasNull() bool

	// IsNull reports whether v is a null state of T. It is false for every
	// value of a type without null.
	IsNull(v T) bool

	// Null constructs the canonical null value. For types without null it
	// fails with ErrNullConversion.
	Null() (T, error)

	// Parse converts one wire cell into *dst. Value codecs fail with
	// ErrNullRead on a NULL cell and ErrParse on grammar violations; wrapper
	// codecs turn a NULL cell into their null value and reuse an existing
	// contained instance when one is present.
	Parse(in Text, dst *T) error

	// Format renders v as wire text. It fails with ErrNullConversion when
	// IsNull(v); callers needing a textual null must check first.
	Format(v T) (string, error)

	// SizeHint returns a conservative upper bound, including one terminator
	// byte, on the storage Format's output needs for v. FormatInto uses it
	// for its overrun check, so overestimating is safe and truncation is
	// impossible.
	SizeHint(v T) int
}

// None is the generic empty marker. Assigning it to a wrapper (via SetNone)
// puts the wrapper into its absent state, distinct from any contained value.
type None = typecap.None

// Capability interfaces. Wrapper types participate in codec derivation by
// implementing these; no existing code needs modification.
type (
	// Getter unwraps the contained value. Undefined while absent.
	Getter[V any] interface{ Get() V }

	// Presence is the explicit conversion to a presence boolean.
	Presence interface{ Present() bool }

	// NoneAcceptor accepts the generic empty marker.
	NoneAcceptor interface{ SetNone(None) }

	// Setter assigns a contained value, making the wrapper present.
	Setter[V any] interface{ Set(V) }
)

// Numeric constraint sets for the generic codec constructors.
type (
	// Signed is any type whose underlying type is a signed integer.
	Signed interface {
		~int | ~int8 | ~int16 | ~int32 | ~int64
	}

	// Unsigned is any type whose underlying type is an unsigned integer.
	Unsigned interface {
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
	}

	// Integer is any type whose underlying type is an integer; enumerations
	// declared as named integer types satisfy it.
	Integer interface{ Signed | Unsigned }

	// Float is any type whose underlying type is a floating-point number.
	Float interface{ ~float32 | ~float64 }
)
