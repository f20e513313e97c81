// Package ir provides the data model shared by every rbin package:
// carrier symbols, Cayley tables, ordered operation lists, indexed tables
// and the canonical JSON used for content-addressed structure identity.
//
// This package contains types and serialization only. All other internal
// packages import ir; ir imports nothing internal.
//
// Key design constraints:
//   - Operations keep their declared order (Go maps do not)
//   - TOP and BOT are ordinary symbols with reserved spellings
//   - Indexed tables use 0-based positions in a structure's symbol order
//   - Structure IDs are SHA-256 over RFC 8785 canonical JSON
package ir
