package confloat

import "github.com/dmitrymomot/confloat/pkg/floatx"

// Value holds a floating-point payload guaranteed to satisfy policy P.
// The guarantee is established at construction and preserved by every
// operation except SetUnchecked. Instances are plain comparable values:
// copy them freely, share them read-only without synchronization, and let
// the owner serialize access around checked mutation.
type Value[F floatx.Float, P Policy[F]] struct {
	value F
}

// New validates raw against P and wraps it on success. This is the single
// construction routine: conversion sugar and every deserialization path
// funnel through it. The payload is stored verbatim — validity is binary,
// never corrective, so no clamping or rounding happens here.
func New[F floatx.Float, P Policy[F]](raw F) (Value[F, P], error) {
	var p P
	if !p.IsValid(raw) {
		return Value[F, P]{}, p.EmitError(raw)
	}
	return Value[F, P]{value: raw}, nil
}

// FromFloat64 converts raw to F at F's width and validates it under P.
func FromFloat64[F floatx.Float, P Policy[F]](raw float64) (Value[F, P], error) {
	return New[F, P](F(raw))
}

// FromFloat32 converts raw to F and validates it under P.
func FromFloat32[F floatx.Float, P Policy[F]](raw float32) (Value[F, P], error) {
	return New[F, P](F(raw))
}

// Default produces a Value holding P's default payload: the policy's
// Default() when P implements Defaulter, otherwise zero.
func Default[F floatx.Float, P Policy[F]]() Value[F, P] {
	var p P
	if d, ok := any(p).(Defaulter[F]); ok {
		return Value[F, P]{value: d.Default()}
	}
	return Value[F, P]{value: floatx.Zero[F]()}
}

// Get returns the payload.
func (v Value[F, P]) Get() F {
	return v.value
}

// Set replaces the payload with raw if raw satisfies P. On failure the
// existing payload is left untouched and the policy's error is returned,
// so a failed Set never leaves a partially updated value behind.
func (v *Value[F, P]) Set(raw F) error {
	var p P
	if !p.IsValid(raw) {
		return p.EmitError(raw)
	}
	v.value = raw
	return nil
}

// SetUnchecked stores raw without consulting the policy. It exists for call
// sites that have already established validity by other means and cannot
// afford a second predicate evaluation. Storing an invalid value breaks the
// wrapper's invariant on the caller's authority; the distinct name is
// deliberate so reviews can grep for it.
func (v *Value[F, P]) SetUnchecked(raw F) {
	v.value = raw
}

// Equal reports whether both values hold the same payload.
func (v Value[F, P]) Equal(other Value[F, P]) bool {
	return v.value == other.value
}

// Compare orders two values by payload: -1 if v is smaller, +1 if larger,
// 0 otherwise. NaN payloads, which can only exist after SetUnchecked,
// compare as 0 against everything.
func (v Value[F, P]) Compare(other Value[F, P]) int {
	switch {
	case v.value < other.value:
		return -1
	case v.value > other.value:
		return 1
	default:
		return 0
	}
}

// String renders the payload in the shortest decimal form that round-trips
// at F's width.
func (v Value[F, P]) String() string {
	return floatx.Format(v.value)
}
