// Package confloat provides a generic wrapper type for floating-point values
// that can only hold payloads satisfying a caller-supplied validation policy.
//
// The point is to push range and shape validation to the boundary of a
// program — construction, deserialization, mutation — so that once a value
// exists, every consumer can assume it is valid without re-checking. Instead
// of hand-writing a wrapper per constraint (probability, angle, percentage),
// you write a small stateless policy type and bind it at the type level:
//
//	type Probability struct{}
//
//	func (Probability) IsValid(v float64) bool { return v >= 0 && v <= 1 }
//	func (Probability) EmitError(v float64) error {
//	    return confloat.NewViolation(v, "must be within [0, 1]")
//	}
//
//	p, err := confloat.New[float64, Probability](0.75)
//
// A Value[float64, Probability] and a Value[float64, Angle] are distinct
// types; the compiler will not let one flow where the other is expected.
//
// # Architecture
//
// Two cooperating pieces. Policy is a capability interface (predicate, error
// constructor, optional default) implemented by zero-size struct types;
// Value binds one payload to one policy type parameter and funnels every way
// a payload can enter — New, FromFloat32/FromFloat64, JSON, YAML, and text
// unmarshaling — through the same fallible construction routine. The only
// bypass is the explicitly named SetUnchecked.
//
// Supporting packages: pkg/floatx is the width-aware numeric backend the
// core and policies query (zero, normality, formatting); pkg/floatrule
// offers predicate combinators for assembling IsValid bodies; pkg/config
// loads env configuration structs whose fields are constrained values.
//
// # Error Handling
//
// The core raises no errors of its own: every failure path forwards the
// policy's EmitError result unchanged. ViolationError is a ready-made error
// type for policies that don't need a custom one; all ViolationError values
// match the ErrViolation sentinel via errors.Is regardless of float width.
//
// # Concurrency
//
// A Value is a plain comparable struct with no internal locking. Read it
// from any number of goroutines; give checked mutation the same exclusive
// access discipline you would give any shared variable.
package confloat
