package algebra

import (
	"fmt"
	"sort"

	"github.com/hashicorp/go-set/v3"

	"github.com/roach88/rbin/internal/ir"
)

// validate enforces the carrier contract: at least one operation, unique
// names, every table total over one shared non-empty carrier with values
// inside it, and the variant's operations present with the right arity.
func validate(ops ir.Operations, def *Definition) error {
	if len(ops) == 0 {
		return &InputError{Field: "operations", Message: "at least one operation is required"}
	}

	seen := set.New[string](len(ops))
	for _, op := range ops {
		if op.Name == "" {
			return &InputError{Field: "operations", Message: "operation name is empty"}
		}
		if !seen.Insert(op.Name) {
			return &InputError{Field: op.Name, Message: "duplicate operation"}
		}
		if op.Arity() == 0 {
			return &InputError{Field: op.Name, Message: "operation has no table"}
		}
		if op.Binary != nil && op.Unary != nil {
			return &InputError{Field: op.Name, Message: "operation has both a binary and a unary table"}
		}
	}

	carrier := set.From(ops[0].Keys())
	if carrier.Size() == 0 {
		return &InputError{Field: ops[0].Name, Message: "carrier is empty"}
	}
	for _, op := range ops {
		if err := checkTable(op, carrier); err != nil {
			return err
		}
	}

	for _, req := range def.Required {
		op, ok := ops.Get(req.Name)
		if !ok {
			return &InputError{
				Field:   req.Name,
				Message: fmt.Sprintf("%s requires operation %q", def.Variant, req.Name),
			}
		}
		if op.Arity() != req.Arity {
			return arityError(def, req, op)
		}
	}
	for _, opt := range def.Optional {
		if op, ok := ops.Get(opt.Name); ok && op.Arity() != opt.Arity {
			return arityError(def, opt, op)
		}
	}
	return nil
}

func arityError(def *Definition, req Requirement, op ir.Operation) error {
	return &InputError{
		Field:   req.Name,
		Message: fmt.Sprintf("%s expects arity %d, got %d", def.Variant, req.Arity, op.Arity()),
	}
}

func checkTable(op ir.Operation, carrier *set.Set[string]) error {
	keys := op.Keys()
	if !sameCarrier(carrier, keys) {
		return &InputError{Field: op.Name, Message: "table keys differ from the shared carrier"}
	}
	for _, x := range keys {
		if op.Unary != nil {
			if v := op.Unary[x]; !carrier.Contains(v) {
				return &InputError{
					Field:   op.Name,
					Message: fmt.Sprintf("value %q at (%s) is outside the carrier", v, x),
				}
			}
			continue
		}
		row := op.Binary[x]
		cols := make([]string, 0, len(row))
		for y := range row {
			cols = append(cols, y)
		}
		sort.Strings(cols)
		if !sameCarrier(carrier, cols) {
			return &InputError{
				Field:   op.Name,
				Message: fmt.Sprintf("row %q is not total over the carrier", x),
			}
		}
		for _, y := range cols {
			if v := row[y]; !carrier.Contains(v) {
				return &InputError{
					Field:   op.Name,
					Message: fmt.Sprintf("value %q at (%s, %s) is outside the carrier", v, x, y),
				}
			}
		}
	}
	return nil
}

func sameCarrier(carrier *set.Set[string], keys []string) bool {
	if carrier.Size() != len(keys) {
		return false
	}
	for _, k := range keys {
		if !carrier.Contains(k) {
			return false
		}
	}
	return true
}
