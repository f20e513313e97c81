package algebra

import (
	"github.com/roach88/rbin/internal/ir"
	"github.com/roach88/rbin/internal/tables"
)

// pseudoWeakAxioms follow the pseudo-weak-R0 axiomatisation of
// https://doi.org/10.1155/2014/854168.
func pseudoWeakAxioms() []Axiom {
	return []Axiom{
		{Name: "pseudo_inverse", Message: "Pseudo-inverse axioms don't hold", Holds: pseudoInverse},
		{Name: "P1", Message: "P1 axiom doesn't hold", Holds: p1},
		{Name: "P2", Message: "P2 axiom doesn't hold", Holds: p2},
		{Name: "P3", Message: "P3 axiom doesn't hold", Holds: p3},
		{Name: "P4", Message: "P4 axiom doesn't hold", Holds: p4},
	}
}

func pseudoR0Axioms() []Axiom {
	return []Axiom{
		{Name: "P5", Message: "P5 axiom doesn't hold", Holds: p5},
	}
}

// pseudoInverse: inv1 and inv2 are mutually inverse at TOP and BOT.
func pseudoInverse(s *Structure) bool {
	if !s.has(ir.TOP) || !s.has(ir.BOT) {
		return false
	}
	inv1, inv2 := s.unary("inv1"), s.unary("inv2")
	for _, bound := range []string{ir.BOT, ir.TOP} {
		if inv1[inv2[bound]] != bound || inv2[inv1[bound]] != bound {
			return false
		}
	}
	return true
}

// p1: imp1(x,y) = imp2(inv1(y), inv1(x)) and imp2(x,y) = imp1(inv2(y), inv2(x)).
func p1(s *Structure) bool {
	imp1, imp2 := s.binary("imp1"), s.binary("imp2")
	inv1, inv2 := s.unary("inv1"), s.unary("inv2")
	carrier := s.carrier()
	for _, x := range carrier {
		for _, y := range carrier {
			if imp1[x][y] != imp2[inv1[y]][inv1[x]] {
				return false
			}
			if imp2[x][y] != imp1[inv2[y]][inv2[x]] {
				return false
			}
		}
	}
	return true
}

// p2: TOP is a left identity of both implications.
func p2(s *Structure) bool {
	return tables.IsLeftIdentity(s.binary("imp1"), ir.TOP) &&
		tables.IsLeftIdentity(s.binary("imp2"), ir.TOP)
}

// p3: imp(x,y) <= imp(imp(z,x), imp(z,y)) for both implications.
func p3(s *Structure) bool {
	carrier := s.carrier()
	for _, name := range []string{"imp1", "imp2"} {
		imp := s.binary(name)
		for _, x := range carrier {
			for _, y := range carrier {
				for _, z := range carrier {
					if !s.leq(imp[x][y], imp[imp[z][x]][imp[z][y]]) {
						return false
					}
				}
			}
		}
	}
	return true
}

// p4: both implications are left distributive over join.
func p4(s *Structure) bool {
	join := s.binary("join")
	return tables.LeftDistributive(s.binary("imp1"), join) &&
		tables.LeftDistributive(s.binary("imp2"), join)
}

// p5: join(imp1(x,y), imp2(imp1(x,y), join(inv1(x), y))) = TOP and the
// mirror image with imp1, imp2 and inv1, inv2 swapped.
func p5(s *Structure) bool {
	join := s.binary("join")
	carrier := s.carrier()
	mirrors := [][3]string{{"imp1", "imp2", "inv1"}, {"imp2", "imp1", "inv2"}}
	for _, m := range mirrors {
		first, second, inv := s.binary(m[0]), s.binary(m[1]), s.unary(m[2])
		for _, x := range carrier {
			for _, y := range carrier {
				xy := first[x][y]
				if join[xy][second[xy][join[inv[x]][y]]] != ir.TOP {
					return false
				}
			}
		}
	}
	return true
}
