package algebra

import (
	"fmt"

	"github.com/hashicorp/go-set/v3"

	"github.com/roach88/rbin/internal/ir"
)

// RemapSymbols renames every symbol through mapping, which must be a
// bijection over the current carrier. It is a relabeling: axioms are not
// checked again, even those that name fixed elements such as "0" or TOP.
// All tables are rebuilt before any is replaced, so on error the structure
// is unchanged.
func (s *Structure) RemapSymbols(mapping map[string]string) error {
	carrier := s.carrier()
	if len(mapping) != len(carrier) {
		return fmt.Errorf("%w: map has %d entries, carrier has %d symbols",
			ErrNotBijection, len(mapping), len(carrier))
	}
	images := set.New[string](len(carrier))
	for _, x := range carrier {
		y, ok := mapping[x]
		if !ok {
			return fmt.Errorf("%w: symbol %q is not mapped", ErrNotBijection, x)
		}
		if !images.Insert(y) {
			return fmt.Errorf("%w: symbol %q is the image of more than one symbol", ErrNotBijection, y)
		}
	}

	remapped := make(ir.Operations, len(s.ops))
	for i, op := range s.ops {
		remapped[i] = remapOperation(op, mapping)
	}
	s.ops = remapped
	return nil
}

func remapOperation(op ir.Operation, mapping map[string]string) ir.Operation {
	if op.Unary != nil {
		table := make(ir.UnaryTable, len(op.Unary))
		for x, v := range op.Unary {
			table[mapping[x]] = mapping[v]
		}
		return ir.Unary(op.Name, table)
	}
	table := make(ir.CayleyTable, len(op.Binary))
	for x, row := range op.Binary {
		newRow := make(map[string]string, len(row))
		for y, v := range row {
			newRow[mapping[y]] = mapping[v]
		}
		table[mapping[x]] = newRow
	}
	return ir.Binary(op.Name, table)
}
