// Package compiler turns CUE model definitions into raw models.
//
// A model file declares one or more finite models under the "model" key:
//
//	model: T30: {
//	    variant: "residuated_binar" // optional; classified by operation names otherwise
//	    operations: {
//	        join: {"0": {"0": "0", "1": "1"}, "1": {"0": "1", "1": "1"}}
//	        invo: {"0": "1", "1": "0"}
//	    }
//	}
//
// Rows that are structs make a binary operation, rows that are strings a
// unary one. Operations keep their declaration order.
package compiler

import (
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/token"

	"github.com/roach88/rbin/internal/ir"
)

// ModelSpec is a model definition compiled from CUE.
type ModelSpec struct {
	Name       string        `json:"name"`
	Variant    string        `json:"variant,omitempty"`
	Operations ir.Operations `json:"operations"`
	Line       int           `json:"line,omitempty"`
}

// RawModel returns the model as an input tuple for structure construction.
func (m *ModelSpec) RawModel() ir.RawModel {
	return ir.RawModel{Label: m.Name, Operations: m.Operations.Clone()}
}

// CompileModels compiles every model declared under the "model" key of v,
// in declaration order. A value without models yields an empty slice.
func CompileModels(v cue.Value) ([]*ModelSpec, error) {
	if err := v.Err(); err != nil {
		return nil, formatCUEError(err)
	}

	models := []*ModelSpec{}
	modelsVal := v.LookupPath(cue.ParsePath("model"))
	if !modelsVal.Exists() {
		return models, nil
	}

	iter, err := modelsVal.Fields()
	if err != nil {
		return nil, formatCUEError(err)
	}
	for iter.Next() {
		spec, err := CompileModel(iter.Value())
		if err != nil {
			return nil, err
		}
		models = append(models, spec)
	}
	return models, nil
}

// CompileModel parses one model struct. The model name is the last path
// selector of v:
//
//	ctx := cuecontext.New()
//	v := ctx.CompileString(`model: T1: { operations: { ... } }`)
//	spec, err := CompileModel(v.LookupPath(cue.ParsePath("model.T1")))
func CompileModel(v cue.Value) (*ModelSpec, error) {
	if err := v.Err(); err != nil {
		return nil, formatCUEError(err)
	}

	spec := &ModelSpec{Line: v.Pos().Line()}
	labels := v.Path().Selectors()
	if len(labels) > 0 {
		spec.Name = selectorName(labels[len(labels)-1])
	}

	variantVal := v.LookupPath(cue.ParsePath("variant"))
	if variantVal.Exists() {
		variant, err := variantVal.String()
		if err != nil {
			return nil, &CompileError{Field: "variant", Message: "must be a string", Pos: variantVal.Pos()}
		}
		spec.Variant = variant
	}

	opsVal := v.LookupPath(cue.ParsePath("operations"))
	if !opsVal.Exists() {
		return nil, &CompileError{
			Field:   "operations",
			Message: "operations are required",
			Pos:     v.Pos(),
		}
	}

	iter, err := opsVal.Fields()
	if err != nil {
		return nil, formatCUEError(err)
	}
	for iter.Next() {
		op, err := parseOperation(iter.Label(), iter.Value())
		if err != nil {
			return nil, err
		}
		spec.Operations = append(spec.Operations, op)
	}
	if len(spec.Operations) == 0 {
		return nil, &CompileError{
			Field:   "operations",
			Message: "at least one operation is required",
			Pos:     opsVal.Pos(),
		}
	}

	return spec, nil
}

func selectorName(sel cue.Selector) string {
	if sel.LabelType() == cue.StringLabel {
		return sel.Unquoted()
	}
	return sel.String()
}

// parseOperation reads a binary table (struct rows) or a unary table
// (string rows).
func parseOperation(name string, v cue.Value) (ir.Operation, error) {
	iter, err := v.Fields()
	if err != nil {
		return ir.Operation{}, &CompileError{
			Field:   name,
			Message: "operation table must be a struct",
			Pos:     v.Pos(),
		}
	}

	var binary ir.CayleyTable
	var unary ir.UnaryTable
	for iter.Next() {
		key, row := iter.Label(), iter.Value()
		switch row.IncompleteKind() {
		case cue.StructKind:
			if unary != nil {
				return ir.Operation{}, mixedRows(name, row)
			}
			if binary == nil {
				binary = ir.CayleyTable{}
			}
			cells, err := parseRow(name, row)
			if err != nil {
				return ir.Operation{}, err
			}
			binary[key] = cells
		case cue.StringKind:
			if binary != nil {
				return ir.Operation{}, mixedRows(name, row)
			}
			if unary == nil {
				unary = ir.UnaryTable{}
			}
			value, err := row.String()
			if err != nil {
				return ir.Operation{}, formatCUEError(err)
			}
			unary[key] = value
		default:
			return ir.Operation{}, &CompileError{
				Field:   fmt.Sprintf("%s.%s", name, key),
				Message: fmt.Sprintf("unsupported row kind: %v", row.IncompleteKind()),
				Pos:     row.Pos(),
			}
		}
	}

	if unary != nil {
		return ir.Unary(name, unary), nil
	}
	if binary == nil {
		binary = ir.CayleyTable{}
	}
	return ir.Binary(name, binary), nil
}

func parseRow(name string, row cue.Value) (map[string]string, error) {
	cells := map[string]string{}
	iter, err := row.Fields()
	if err != nil {
		return nil, formatCUEError(err)
	}
	for iter.Next() {
		value, err := iter.Value().String()
		if err != nil {
			return nil, &CompileError{
				Field:   name,
				Message: fmt.Sprintf("cell %q must be a string symbol", iter.Label()),
				Pos:     iter.Value().Pos(),
			}
		}
		cells[iter.Label()] = value
	}
	return cells, nil
}

func mixedRows(name string, row cue.Value) error {
	return &CompileError{
		Field:   name,
		Message: "rows mix binary and unary entries",
		Pos:     row.Pos(),
	}
}

// CompileError represents a compilation error with source position.
type CompileError struct {
	Field   string
	Message string
	Pos     token.Pos
}

func (e *CompileError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s",
			e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(),
			e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// formatCUEError extracts position info from CUE errors.
func formatCUEError(err error) error {
	if err == nil {
		return nil
	}

	// CUE errors may contain multiple errors
	errs := errors.Errors(err)
	if len(errs) == 0 {
		return err
	}

	firstErr := errs[0]
	positions := errors.Positions(firstErr)
	if len(positions) > 0 {
		return &CompileError{
			Field:   "cue",
			Message: firstErr.Error(),
			Pos:     positions[0],
		}
	}

	return err
}
