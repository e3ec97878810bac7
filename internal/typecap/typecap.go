// Copyright (c) 2026 Nlaak Studios (https://nlaak.com)
// Author: Andrew Donelson (https://www.linkedin.com/in/andrew-donelson/)
//
// typecap.go — capability introspection over reflect.Type: the three
// predicates (dereferenceable, optional-like, accepts-empty-marker) and the
// ordered classification that picks a null strategy for wrapper types.

// Package typecap classifies Go types by their wrapper capabilities.
//
// A type participates by shape, not by registration: pointers are
// dereferenceable by construction, and any type exposing
//
//	Get() V            — unwrap the contained value
//	Present() bool     — explicit presence test
//	SetNone(None)      — accept the generic empty marker (pointer receiver)
//	Set(V)             — assign a contained value (pointer receiver)
//
// is picked up by the predicates below. All predicates are pure functions of
// the type; nothing here allocates or mutates shared state.
package typecap

import (
	"fmt"
	"reflect"
)

// None is the generic "no value" marker. It is distinct from every valid
// contained value; wrapper types accept it via SetNone.
type None struct{}

// Strategy is the null representation chosen for a type.
type Strategy int

//go:generate go tool stringer -type=Strategy -trimprefix=Strategy

const (
	// StrategyFallback delegates null handling to the type's own codec.
	StrategyFallback Strategy = iota

	// StrategyPointerNull represents null as the nil pointer.
	StrategyPointerNull

	// StrategyMarkerNull represents null as the accepted empty marker.
	StrategyMarkerNull
)

var noneType = reflect.TypeOf(None{})

// Dereferenceable reports whether t supports a single-value unwrap. Array
// types never count, so they cannot be mistaken for pointer-like values.
func Dereferenceable(t reflect.Type) bool {
	if t == nil || t.Kind() == reflect.Array || t.Kind() == reflect.Interface {
		return false
	}
	if t.Kind() == reflect.Pointer {
		return true
	}
	_, ok := getMethod(t)
	return ok
}

// OptionalLike reports whether t is dereferenceable and additionally exposes
// an explicit presence test. Pointers qualify through their nil test.
func OptionalLike(t reflect.Type) bool {
	if !Dereferenceable(t) {
		return false
	}
	return t.Kind() == reflect.Pointer || hasPresent(t)
}

// AcceptsNone reports whether the generic empty marker is assignable into t,
// i.e. t (or its pointer type) has a SetNone(None) method.
func AcceptsNone(t reflect.Type) bool {
	if t == nil || t.Kind() == reflect.Interface {
		return false
	}
	_, ok := setNoneMethod(t)
	return ok
}

// Inner returns the contained type of a dereferenceable t.
func Inner(t reflect.Type) (reflect.Type, bool) {
	if t == nil {
		return nil, false
	}
	if t.Kind() == reflect.Pointer {
		return t.Elem(), true
	}
	if m, ok := getMethod(t); ok {
		return m.Type.Out(0), true
	}
	return nil, false
}

// Classify resolves the null strategy for t by one ordered rule evaluation:
//
//  1. a type that is not optional-like falls back to its own codec;
//  2. an optional-like type assignable from nil uses the nil pointer as
//     null — even when the pointee accepts the empty marker, since SetNone
//     found through a pointer clears the pointee, never the pointer itself;
//  3. an optional-like non-pointer type that accepts the empty marker uses
//     the marker.
//
// The rules are mutually exclusive by construction. An optional-like type
// matching none of them has no null representation at all, which is an
// error rather than a silent fallback.
func Classify(t reflect.Type) (Strategy, error) {
	if !OptionalLike(t) {
		return StrategyFallback, nil
	}
	switch {
	case t.Kind() == reflect.Pointer:
		return StrategyPointerNull, nil
	case AcceptsNone(t):
		return StrategyMarkerNull, nil
	default:
		return StrategyFallback, fmt.Errorf(
			"typecap: optional-like type %s has no null representation", t)
	}
}

// SetterFor returns the Set method used to construct the wrapper from a
// contained value of the type Get returns. The receiver is *t.
func SetterFor(t reflect.Type) (reflect.Method, bool) {
	inner, ok := Inner(t)
	if !ok {
		return reflect.Method{}, false
	}
	m, ok := lookupMethod(t, "Set")
	if !ok {
		return reflect.Method{}, false
	}
	if m.Type.NumIn() != 2 || m.Type.NumOut() != 0 || m.Type.In(1) != inner {
		return reflect.Method{}, false
	}
	return m, true
}

// getMethod finds Get() V on t or *t.
func getMethod(t reflect.Type) (reflect.Method, bool) {
	m, ok := lookupMethod(t, "Get")
	if !ok || m.Type.NumIn() != 1 || m.Type.NumOut() != 1 {
		return reflect.Method{}, false
	}
	return m, true
}

// hasPresent reports whether t or *t has Present() bool.
func hasPresent(t reflect.Type) bool {
	m, ok := lookupMethod(t, "Present")
	return ok && m.Type.NumIn() == 1 && m.Type.NumOut() == 1 &&
		m.Type.Out(0).Kind() == reflect.Bool
}

// setNoneMethod finds SetNone(None) on t or *t.
func setNoneMethod(t reflect.Type) (reflect.Method, bool) {
	m, ok := lookupMethod(t, "SetNone")
	if !ok || m.Type.NumIn() != 2 || m.Type.NumOut() != 0 || m.Type.In(1) != noneType {
		return reflect.Method{}, false
	}
	return m, true
}

// lookupMethod checks t's method set, then *t's for mutators declared on the
// pointer receiver. Method.Type includes the receiver as the first argument.
func lookupMethod(t reflect.Type, name string) (reflect.Method, bool) {
	if m, ok := t.MethodByName(name); ok {
		return m, true
	}
	if t.Kind() != reflect.Pointer {
		if m, ok := reflect.PointerTo(t).MethodByName(name); ok {
			return m, true
		}
	}
	return reflect.Method{}, false
}
