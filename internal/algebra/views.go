package algebra

import (
	"fmt"
	"strings"

	"github.com/roach88/rbin/internal/ir"
)

// ProofText renders the structure in Prover9/Mace4 syntax, one equation
// per line. Binary operations with an infix symbol print as "x op y = r.",
// others as "op(x, y) = r." and unary ones as "op(x) = r.". Rows follow
// Symbols(); operations follow declaration order.
func (s *Structure) ProofText() string {
	symbols := s.Symbols()
	var b strings.Builder
	for _, op := range s.ops {
		if op.Unary != nil {
			for _, x := range symbols {
				fmt.Fprintf(&b, "%s(%s) = %s.\n", op.Name, x, op.Unary[x])
			}
			continue
		}
		infix, isInfix := s.def.Infix[op.Name]
		for _, x := range symbols {
			for _, y := range symbols {
				if isInfix {
					fmt.Fprintf(&b, "%s %s %s = %s.\n", x, infix, y, op.Binary[x][y])
				} else {
					fmt.Fprintf(&b, "%s(%s, %s) = %s.\n", op.Name, x, y, op.Binary[x][y])
				}
			}
		}
	}
	return b.String()
}

// IndexedTables replaces every symbol by its 0-based index in Symbols().
// Two structures with equal indexed tables and equal symbols are the same
// model up to presentation.
func (s *Structure) IndexedTables() ir.IndexedTables {
	symbols := s.Symbols()
	index := make(map[string]int, len(symbols))
	for i, x := range symbols {
		index[x] = i
	}

	out := make(ir.IndexedTables, 0, len(s.ops))
	for _, op := range s.ops {
		var table ir.IndexedTable
		if op.Unary != nil {
			table.Unary = make([]int, len(symbols))
			for _, x := range symbols {
				table.Unary[index[x]] = index[op.Unary[x]]
			}
		} else {
			table.Binary = make([][]int, len(symbols))
			for _, x := range symbols {
				row := make([]int, len(symbols))
				for _, y := range symbols {
					row[index[y]] = index[op.Binary[x][y]]
				}
				table.Binary[index[x]] = row
			}
		}
		out = append(out, ir.NamedTable{Name: op.Name, Table: table})
	}
	return out
}

// ID returns the content address of the current presentation.
func (s *Structure) ID() (string, error) {
	return ir.StructureID(s.def.Variant.String(), s.Symbols(), s.IndexedTables())
}
