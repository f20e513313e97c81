// Package tables provides pure predicates over finite operation tables:
// associativity, commutativity, idempotence, identities, zeros, inverses,
// distributivity and absorption.
//
// Every predicate enumerates the full Cartesian product of the carrier
// (the key set of the first table argument) and returns false on the
// first violating tuple. A lookup that falls outside a table counts as a
// violation.
//
// Complexity is O(n^k) for a law with k variables over a carrier of size
// n; k is at most 3.
package tables
