package algebra

import "github.com/roach88/rbin/internal/tables"

func groupAxioms() []Axiom {
	return []Axiom{
		{
			Name:    "add_associative",
			Message: "add is not associative",
			Holds:   func(s *Structure) bool { return tables.Associative(s.binary("add")) },
		},
		{
			Name:    "add_commutative",
			Message: "add is not commutative",
			Holds:   func(s *Structure) bool { return tables.Commutative(s.binary("add")) },
		},
		{
			Name:    "add_identity",
			Message: "0 is not an identity of add",
			Holds: func(s *Structure) bool {
				add := s.binary("add")
				return tables.IsLeftIdentity(add, "0") && tables.IsRightIdentity(add, "0")
			},
		},
		{
			Name:    "add_inverse",
			Message: "neg is not an inverse for add",
			Holds: func(s *Structure) bool {
				add, neg := s.binary("add"), s.unary("neg")
				return tables.IsLeftInverse(add, neg, "0") && tables.IsRightInverse(add, neg, "0")
			},
		},
	}
}

func ringAxioms() []Axiom {
	return []Axiom{
		{
			Name:    "mult_associative",
			Message: "mult is not associative",
			Holds:   func(s *Structure) bool { return tables.Associative(s.binary("mult")) },
		},
		{
			Name:    "mult_identity",
			Message: "1 is not an identity of mult",
			Holds: func(s *Structure) bool {
				mult := s.binary("mult")
				return tables.IsLeftIdentity(mult, "1") && tables.IsRightIdentity(mult, "1")
			},
		},
		{
			Name:    "mult_left_distributive",
			Message: "mult is not left distributive over add",
			Holds: func(s *Structure) bool {
				return tables.LeftDistributive(s.binary("mult"), s.binary("add"))
			},
		},
		{
			Name:    "mult_right_distributive",
			Message: "mult is not right distributive over add",
			Holds: func(s *Structure) bool {
				return tables.RightDistributive(s.binary("mult"), s.binary("add"))
			},
		},
		{
			Name:    "mult_idempotent",
			Message: "mult is not idempotent",
			Holds:   func(s *Structure) bool { return tables.Idempotent(s.binary("mult")) },
		},
	}
}
