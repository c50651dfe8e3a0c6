// Package floatrule provides small, composable predicate constructors for
// building validation policies over floating-point values.
//
// A confloat policy's IsValid method is just a boolean function; this package
// supplies the usual building blocks (sign, range, classification) and the
// And/Or/Not combinators so a policy body reads as a declaration instead of
// a chain of comparisons:
//
//	var accepts = floatrule.And(
//	    floatrule.Normal[float64](),
//	    floatrule.Between(0.0, 1.0),
//	)
//
//	type Probability struct{}
//
//	func (Probability) IsValid(v float64) bool { return accepts(v) }
//
// # Architecture
//
// Every constructor returns a Predicate closure capturing only its bounds.
// Nothing in the package holds state, so predicates are pure, reusable, and
// safe for concurrent use — which is exactly the contract confloat requires
// of a policy's IsValid.
//
// # Performance Considerations
//
// Combinators evaluate left to right and short-circuit. Composing predicates
// costs one closure call per layer; build the composed predicate once at
// package level rather than inside IsValid.
package floatrule
