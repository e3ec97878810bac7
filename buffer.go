// Copyright (c) 2026 Nlaak Studios (https://nlaak.com)
// Author: Andrew Donelson (https://www.linkedin.com/in/andrew-donelson/)
//
// buffer.go — buffer-based encoder: FormatInto writes a value's text into
// caller-supplied storage and returns a borrowed, NUL-terminated View; Str
// is the owning convenience wrapper around its own storage.

package pgtext

// View is a borrowed window over a caller-owned buffer holding one
// formatted value. A null View (for a null value) is distinguishable from a
// present empty one. The View stays valid only while the underlying buffer
// is accessible and unmodified; it never owns storage.
type View struct {
	b       []byte // formatted bytes, terminator excluded
	present bool
}

// Null reports whether the View represents a null value.
func (v View) Null() bool { return !v.present }

// Len returns the number of formatted bytes, excluding the terminator.
func (v View) Len() int { return len(v.b) }

// String copies the viewed bytes into a string; "" for a null View.
func (v View) String() string { return string(v.b) }

// Bytes returns the viewed bytes without copying, terminator excluded. The
// slice aliases the caller's buffer. It is nil for a null View.
func (v View) Bytes() []byte {
	if !v.present {
		return nil
	}
	return v.b
}

// CBytes returns the viewed bytes including the trailing NUL terminator,
// usable as a C-style string. It is nil for a null View.
func (v View) CBytes() []byte {
	if !v.present {
		return nil
	}
	return v.b[:len(v.b)+1]
}

// FormatInto writes v's text representation into buf and returns a View over
// the written bytes, followed by one guaranteed NUL terminator inside buf.
// A null v yields a null View and leaves buf untouched.
//
// The capacity check uses the codec's conservative SizeHint: a buffer that
// is in fact large enough may still be rejected with ErrBufferOverrun, but a
// truncated result is never exposed as a valid View.
func FormatInto[T any](c Codec[T], buf []byte, v T) (View, error) {
	if c.HasNull() && c.IsNull(v) {
		return View{}, nil
	}
	need := c.SizeHint(v)
	if len(buf) < need {
		return View{}, bufferOverrunError(TypeName[T](), need, len(buf))
	}
	s, err := c.Format(v)
	if err != nil {
		return View{}, err
	}
	if len(s)+1 > len(buf) {
		// A codec under-reported its SizeHint; the partial state of buf is
		// not exposed.
		return View{}, bufferOverrunError(TypeName[T](), len(s)+1, len(buf))
	}
	n := copy(buf, s)
	buf[n] = 0
	// Capacity includes the terminator so CBytes can reach it.
	return View{b: buf[:n : n+1], present: true}, nil
}

// Str owns the storage for one formatted value. It allocates exactly what
// the codec's SizeHint asks for, formats into it, and keeps the resulting
// View alive for its own lifetime.
//
// The View (and anything returned by Bytes/CBytes) borrows the Str's
// internal buffer: do not use it after discarding the Str, and do not
// mutate the buffer through a retained slice.
type Str struct {
	buf  []byte
	view View
}

// NewStr formats v into freshly allocated owned storage. A null v yields a
// Str holding a null View, not an error.
func NewStr[T any](c Codec[T], v T) (*Str, error) {
	size := c.SizeHint(v)
	if size < 1 {
		size = 1
	}
	s := &Str{buf: make([]byte, size)}
	view, err := FormatInto(c, s.buf, v)
	if err != nil {
		return nil, err
	}
	s.view = view
	return s, nil
}

// View returns the borrowed view over the Str's storage.
func (s *Str) View() View { return s.view }

// Null reports whether the formatted value was null.
func (s *Str) Null() bool { return s.view.Null() }

// String copies the formatted text; "" when null.
func (s *Str) String() string { return s.view.String() }

// CBytes returns the formatted text including the NUL terminator, borrowed
// from the Str's storage; nil when null.
func (s *Str) CBytes() []byte { return s.view.CBytes() }
