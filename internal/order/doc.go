// Package order derives the partial order induced by meet and join and
// uses it to rename elements canonically and to compute Hasse diagrams.
//
// x is above y when meet(x, y) = y and x != y. Elements are ranked by the
// number of elements below them, ties broken by name. Canonical names are
// assigned in rank order: BOT, a, b, ..., z, za, zb, ..., TOP.
//
// The ranking is only as canonical as its tie-break: two elements at equal
// depth keep the relative order of their input names, so isomorphic
// lattices whose automorphisms swap such elements may canonicalize to
// different presentations.
package order
