package algebra

import (
	"github.com/roach88/rbin/internal/ir"
	"github.com/roach88/rbin/internal/tables"
)

// latticeAxioms checks join before meet so that a broken join is reported
// ahead of anything else.
func latticeAxioms() []Axiom {
	return []Axiom{
		{
			Name:    "join_commutative",
			Message: "join is not commutative",
			Holds:   func(s *Structure) bool { return tables.Commutative(s.binary("join")) },
		},
		{
			Name:    "meet_commutative",
			Message: "meet is not commutative",
			Holds:   func(s *Structure) bool { return tables.Commutative(s.binary("meet")) },
		},
		{
			Name:    "join_associative",
			Message: "join is not associative",
			Holds:   func(s *Structure) bool { return tables.Associative(s.binary("join")) },
		},
		{
			Name:    "meet_associative",
			Message: "meet is not associative",
			Holds:   func(s *Structure) bool { return tables.Associative(s.binary("meet")) },
		},
		{
			Name:    "absorption",
			Message: "absorption laws fail",
			Holds: func(s *Structure) bool {
				meet, join := s.binary("meet"), s.binary("join")
				return tables.Absorbs(meet, join) && tables.Absorbs(join, meet)
			},
		},
	}
}

func boundedAxioms() []Axiom {
	return []Axiom{
		{
			Name:    "meet_identity",
			Message: ir.TOP + " is not an identity of meet",
			Holds: func(s *Structure) bool {
				meet := s.binary("meet")
				return tables.IsLeftIdentity(meet, ir.TOP) && tables.IsRightIdentity(meet, ir.TOP)
			},
		},
		{
			Name:    "join_identity",
			Message: ir.BOT + " is not an identity of join",
			Holds: func(s *Structure) bool {
				join := s.binary("join")
				return tables.IsLeftIdentity(join, ir.BOT) && tables.IsRightIdentity(join, ir.BOT)
			},
		},
		{
			Name:    "join_zero",
			Message: ir.TOP + " is not a zero of join",
			Holds: func(s *Structure) bool {
				join := s.binary("join")
				return tables.IsLeftZero(join, ir.TOP) && tables.IsRightZero(join, ir.TOP)
			},
		},
		{
			Name:    "meet_zero",
			Message: ir.BOT + " is not a zero of meet",
			Holds: func(s *Structure) bool {
				meet := s.binary("meet")
				return tables.IsLeftZero(meet, ir.BOT) && tables.IsRightZero(meet, ir.BOT)
			},
		},
	}
}
