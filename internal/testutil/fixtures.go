// Package testutil provides shared fixtures for tests: small operation
// tables with known properties and deterministic generators.
//
// Every fixture function returns freshly allocated tables so callers may
// mutate them.
package testutil

import "github.com/roach88/rbin/internal/ir"

// TwoElementJoin is the join of the two-element chain 0 < 1.
func TwoElementJoin() ir.CayleyTable {
	return ir.CayleyTable{"0": {"0": "0", "1": "1"}, "1": {"0": "1", "1": "1"}}
}

// TwoElementMeet is the meet of the two-element chain 0 < 1.
func TwoElementMeet() ir.CayleyTable {
	return ir.CayleyTable{"0": {"0": "0", "1": "0"}, "1": {"0": "0", "1": "1"}}
}

// TwoElementLattice returns join and meet of the chain 0 < 1, join first.
func TwoElementLattice() ir.Operations {
	return ir.Operations{
		ir.Binary("join", TwoElementJoin()),
		ir.Binary("meet", TwoElementMeet()),
	}
}

// BrokenJoinLattice is TwoElementLattice with join(0, 1) = 0, which breaks
// commutativity of join.
func BrokenJoinLattice() ir.Operations {
	ops := TwoElementLattice()
	ops[0].Binary["0"]["1"] = "0"
	return ops
}

// Chain returns join and meet of the total order symbols[0] < symbols[1] < ...
func Chain(symbols ...string) ir.Operations {
	pos := make(map[string]int, len(symbols))
	for i, x := range symbols {
		pos[x] = i
	}
	join := make(ir.CayleyTable, len(symbols))
	meet := make(ir.CayleyTable, len(symbols))
	for _, x := range symbols {
		join[x] = make(map[string]string, len(symbols))
		meet[x] = make(map[string]string, len(symbols))
		for _, y := range symbols {
			if pos[x] <= pos[y] {
				join[x][y], meet[x][y] = y, x
			} else {
				join[x][y], meet[x][y] = x, y
			}
		}
	}
	return ir.Operations{ir.Binary("join", join), ir.Binary("meet", meet)}
}

// Diamond returns join and meet of the four-element Boolean lattice with
// bottom "0", top "1" and incomparable atoms "a" and "b".
func Diamond() ir.Operations {
	return DiamondNamed("0", "a", "b", "1")
}

// DiamondNamed is Diamond with caller-chosen names for bottom, the two
// atoms and top.
func DiamondNamed(bot, a, b, top string) ir.Operations {
	symbols := []string{bot, a, b, top}
	leq := func(x, y string) bool {
		return x == y || x == bot || y == top
	}
	join := make(ir.CayleyTable, 4)
	meet := make(ir.CayleyTable, 4)
	for _, x := range symbols {
		join[x] = make(map[string]string, 4)
		meet[x] = make(map[string]string, 4)
		for _, y := range symbols {
			switch {
			case leq(x, y):
				join[x][y], meet[x][y] = y, x
			case leq(y, x):
				join[x][y], meet[x][y] = x, y
			default:
				join[x][y], meet[x][y] = top, bot
			}
		}
	}
	return ir.Operations{ir.Binary("join", join), ir.Binary("meet", meet)}
}

// ResiduatedBinar returns a valid two-element residuated binar with
// involution: mult is constantly 0, over and undr constantly 1.
func ResiduatedBinar() ir.Operations {
	return ir.Operations{
		ir.Binary("join", TwoElementJoin()),
		ir.Binary("meet", TwoElementMeet()),
		ir.Binary("mult", ir.CayleyTable{"0": {"0": "0", "1": "0"}, "1": {"0": "0", "1": "0"}}),
		ir.Binary("over", ir.CayleyTable{"0": {"0": "1", "1": "1"}, "1": {"0": "1", "1": "1"}}),
		ir.Binary("undr", ir.CayleyTable{"0": {"0": "1", "1": "1"}, "1": {"0": "1", "1": "1"}}),
		ir.Unary("invo", ir.UnaryTable{"0": "1", "1": "0"}),
	}
}

// NonDistributiveBinar is ResiduatedBinar with mult(0, 0) = 1, so mult no
// longer distributes over join from the left.
func NonDistributiveBinar() ir.Operations {
	ops := ResiduatedBinar()
	ops[2].Binary["0"]["0"] = "1"
	return ops
}

// NonResiduatedBinar is ResiduatedBinar with over constantly 0. mult still
// distributes over join but over is no longer a residual.
func NonResiduatedBinar() ir.Operations {
	ops := ResiduatedBinar()
	ops[3] = ir.Binary("over", ir.CayleyTable{"0": {"0": "0", "1": "0"}, "1": {"0": "0", "1": "0"}})
	return ops
}

// BooleanRing returns add, neg and mult of the two-element Boolean ring.
func BooleanRing() ir.Operations {
	return ir.Operations{
		ir.Binary("add", ir.CayleyTable{"0": {"0": "0", "1": "1"}, "1": {"0": "1", "1": "0"}}),
		ir.Unary("neg", ir.UnaryTable{"0": "0", "1": "1"}),
		ir.Binary("mult", ir.CayleyTable{"0": {"0": "0", "1": "0"}, "1": {"0": "0", "1": "1"}}),
	}
}

// BooleanRingProofText is the proof text of BooleanRing.
const BooleanRingProofText = `0 + 0 = 0.
0 + 1 = 1.
1 + 0 = 1.
1 + 1 = 0.
neg(0) = 0.
neg(1) = 1.
0 * 0 = 0.
0 * 1 = 0.
1 * 0 = 0.
1 * 1 = 1.
`

// BoundedJoin and BoundedMeet are the two-element lattice on the sentinels.
func BoundedJoin() ir.CayleyTable {
	return ir.CayleyTable{
		ir.BOT: {ir.BOT: ir.BOT, ir.TOP: ir.TOP},
		ir.TOP: {ir.BOT: ir.TOP, ir.TOP: ir.TOP},
	}
}

func BoundedMeet() ir.CayleyTable {
	return ir.CayleyTable{
		ir.BOT: {ir.BOT: ir.BOT, ir.TOP: ir.BOT},
		ir.TOP: {ir.BOT: ir.BOT, ir.TOP: ir.TOP},
	}
}

// PseudoR0 returns the two-element pseudo-R0 algebra on the sentinels:
// classical implication for imp1 and imp2, negation for inv1 and inv2.
func PseudoR0() ir.Operations {
	imp := func() ir.CayleyTable {
		return ir.CayleyTable{
			ir.BOT: {ir.BOT: ir.TOP, ir.TOP: ir.TOP},
			ir.TOP: {ir.BOT: ir.BOT, ir.TOP: ir.TOP},
		}
	}
	neg := func() ir.UnaryTable {
		return ir.UnaryTable{ir.BOT: ir.TOP, ir.TOP: ir.BOT}
	}
	return ir.Operations{
		ir.Binary("imp1", imp()),
		ir.Binary("imp2", imp()),
		ir.Unary("inv1", neg()),
		ir.Unary("inv2", neg()),
		ir.Binary("join", BoundedJoin()),
		ir.Binary("meet", BoundedMeet()),
	}
}

// NoP1 replaces inv1 and inv2 of PseudoR0 by the identity, which breaks P1.
func NoP1() ir.Operations {
	ops := PseudoR0()
	ops[2] = ir.Unary("inv1", ir.UnaryTable{ir.BOT: ir.BOT, ir.TOP: ir.TOP})
	ops[3] = ir.Unary("inv2", ir.UnaryTable{ir.BOT: ir.BOT, ir.TOP: ir.TOP})
	return ops
}

// NoP2 is NoP1 with both implications constantly TOP: P1 holds, P2 fails.
func NoP2() ir.Operations {
	ops := NoP1()
	top := func() ir.CayleyTable {
		return ir.CayleyTable{
			ir.BOT: {ir.BOT: ir.TOP, ir.TOP: ir.TOP},
			ir.TOP: {ir.BOT: ir.TOP, ir.TOP: ir.TOP},
		}
	}
	ops[0] = ir.Binary("imp1", top())
	ops[1] = ir.Binary("imp2", top())
	return ops
}
