package algebra

import "github.com/roach88/rbin/internal/tables"

func binarAxioms() []Axiom {
	return []Axiom{
		{
			Name:    "mult_left_distributive",
			Message: "mult is not left distributive over join",
			Holds: func(s *Structure) bool {
				return tables.LeftDistributive(s.binary("mult"), s.binary("join"))
			},
		},
		{
			Name:    "mult_right_distributive",
			Message: "mult is not right distributive over join",
			Holds: func(s *Structure) bool {
				return tables.RightDistributive(s.binary("mult"), s.binary("join"))
			},
		},
		{
			Name:    "residuation",
			Message: "check residuated binars axioms!",
			Holds:   residuated,
		},
	}
}

// residuated checks that over and undr are the right and left residuals
// of mult with respect to the join order:
//
//	join(mult(over(x,y),y),x) = x      join(mult(y,undr(y,x)),x) = x
//	meet(x, over(join(mult(x,y),z),y)) = x
//	meet(y, undr(x, join(mult(x,y),z))) = y
func residuated(s *Structure) bool {
	meet, join := s.binary("meet"), s.binary("join")
	mult, over, undr := s.binary("mult"), s.binary("over"), s.binary("undr")
	carrier := s.carrier()
	for _, x := range carrier {
		for _, y := range carrier {
			if join[mult[over[x][y]][y]][x] != x {
				return false
			}
			if join[mult[y][undr[y][x]]][x] != x {
				return false
			}
			for _, z := range carrier {
				upper := join[mult[x][y]][z]
				if meet[x][over[upper][y]] != x {
					return false
				}
				if meet[y][undr[x][upper]] != y {
					return false
				}
			}
		}
	}
	return true
}
