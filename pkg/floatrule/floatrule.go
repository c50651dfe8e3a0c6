package floatrule

import "github.com/dmitrymomot/confloat/pkg/floatx"

// Predicate reports whether a floating-point value satisfies a constraint.
// Predicates must be pure: the same input always yields the same answer.
type Predicate[F floatx.Float] func(F) bool

// Positive accepts values strictly greater than zero.
func Positive[F floatx.Float]() Predicate[F] {
	return func(f F) bool { return f > 0 }
}

// Negative accepts values strictly less than zero.
func Negative[F floatx.Float]() Predicate[F] {
	return func(f F) bool { return f < 0 }
}

// NonZero accepts any value except positive and negative zero.
func NonZero[F floatx.Float]() Predicate[F] {
	return func(f F) bool { return f != 0 }
}

// Finite accepts values that are neither NaN nor an infinity.
func Finite[F floatx.Float]() Predicate[F] {
	return floatx.IsFinite[F]
}

// Normal accepts finite nonzero values that are not subnormal at F's width.
func Normal[F floatx.Float]() Predicate[F] {
	return floatx.IsNormal[F]
}

// GreaterThan accepts values strictly greater than bound.
func GreaterThan[F floatx.Float](bound F) Predicate[F] {
	return func(f F) bool { return f > bound }
}

// AtLeast accepts values greater than or equal to bound.
func AtLeast[F floatx.Float](bound F) Predicate[F] {
	return func(f F) bool { return f >= bound }
}

// LessThan accepts values strictly less than bound.
func LessThan[F floatx.Float](bound F) Predicate[F] {
	return func(f F) bool { return f < bound }
}

// AtMost accepts values less than or equal to bound.
func AtMost[F floatx.Float](bound F) Predicate[F] {
	return func(f F) bool { return f <= bound }
}

// Between accepts values in the closed interval [lo, hi].
func Between[F floatx.Float](lo, hi F) Predicate[F] {
	return func(f F) bool { return f >= lo && f <= hi }
}

// OneOf accepts values exactly equal to one of the listed values.
func OneOf[F floatx.Float](values ...F) Predicate[F] {
	return func(f F) bool {
		for _, v := range values {
			if f == v {
				return true
			}
		}
		return false
	}
}

// And accepts values satisfying every listed predicate. With no predicates
// it accepts everything.
func And[F floatx.Float](predicates ...Predicate[F]) Predicate[F] {
	return func(f F) bool {
		for _, p := range predicates {
			if !p(f) {
				return false
			}
		}
		return true
	}
}

// Or accepts values satisfying at least one listed predicate. With no
// predicates it rejects everything.
func Or[F floatx.Float](predicates ...Predicate[F]) Predicate[F] {
	return func(f F) bool {
		for _, p := range predicates {
			if p(f) {
				return true
			}
		}
		return false
	}
}

// Not inverts a predicate.
func Not[F floatx.Float](p Predicate[F]) Predicate[F] {
	return func(f F) bool { return !p(f) }
}
