// Package algebra implements finite algebraic structures over Cayley tables.
//
// A Structure holds a label and an ordered list of named operations over a
// shared finite carrier. Every structure belongs to exactly one Variant.
// Each variant is described by a Definition: the operations it requires,
// an ordered axiom pipeline (parent axioms first), the infix symbols used
// in proof text and where the TOP/BOT sentinels sit in the symbol order.
//
// Construction is the only fallible transition. New validates the tables,
// copies them and runs the axiom pipeline, stopping at the first failing
// law. A structure that fails never exists:
//
//	s, err := algebra.New("t1", ops, algebra.Lattice)
//	if errors.Is(err, algebra.ErrAxiomViolation) {
//	    // discard the candidate model
//	}
//
// After construction the only mutation is RemapSymbols, a bijective
// relabeling. The map is validated before anything changes; axioms are
// not checked again.
// RemapSymbols is not safe for concurrent use on the same Structure.
package algebra
