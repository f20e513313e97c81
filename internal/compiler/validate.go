package compiler

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/roach88/rbin/internal/algebra"
	"github.com/roach88/rbin/internal/ir"
)

// Validation error codes (E200-E299)
const (
	ErrUnsupportedType = "E200" // unsupported type for validation

	// Model errors (E201-E204)
	ErrModelNameEmpty    = "E201" // model name is required
	ErrModelNoOperations = "E202" // at least one operation required
	ErrInvalidOpName     = "E203" // operation name is not an identifier
	ErrDuplicateOpName   = "E204" // operation declared twice

	// Table errors (E205-E208)
	ErrEmptyTable       = "E205" // table has no rows
	ErrCarrierMismatch  = "E206" // table keys differ from the first table's
	ErrRowNotTotal      = "E207" // row misses or adds columns
	ErrValueOutOfDomain = "E208" // cell value not in the carrier

	// Variant errors (E210-E212)
	ErrUnknownVariant   = "E210" // variant name not recognised
	ErrMissingOperation = "E211" // variant requires an absent operation
	ErrArityMismatch    = "E212" // operation has the wrong arity for the variant
)

var opNamePattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// ValidationError represents a schema validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code"`
	Line    int    `json:"line,omitempty"`
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("[%s] line %d: %s: %s", e.Code, e.Line, e.Field, e.Message)
	}
	return fmt.Sprintf("[%s] %s: %s", e.Code, e.Field, e.Message)
}

// Validate checks a compiled model against the schema rules.
// Returns all errors found (does not fail-fast).
func Validate(v any) []ValidationError {
	switch spec := v.(type) {
	case *ModelSpec:
		return validateModel(spec)
	case ModelSpec:
		return validateModel(&spec)
	default:
		return []ValidationError{{
			Field:   "type",
			Message: fmt.Sprintf("unsupported type: %T", v),
			Code:    ErrUnsupportedType,
		}}
	}
}

func validateModel(spec *ModelSpec) []ValidationError {
	var errs []ValidationError
	add := func(field, code, format string, args ...any) {
		errs = append(errs, ValidationError{
			Field:   field,
			Message: fmt.Sprintf(format, args...),
			Code:    code,
			Line:    spec.Line,
		})
	}

	if strings.TrimSpace(spec.Name) == "" {
		add("name", ErrModelNameEmpty, "model name is required")
	}
	if len(spec.Operations) == 0 {
		add("operations", ErrModelNoOperations, "at least one operation is required")
		return errs
	}

	names := make(map[string]bool)
	var carrier map[string]bool
	for i, op := range spec.Operations {
		field := fmt.Sprintf("operations[%d]", i)
		if !opNamePattern.MatchString(op.Name) {
			add(field+".name", ErrInvalidOpName, "invalid operation name %q", op.Name)
		}
		if names[op.Name] {
			add(field+".name", ErrDuplicateOpName, "duplicate operation name: %q", op.Name)
		}
		names[op.Name] = true

		keys := op.Keys()
		if len(keys) == 0 {
			add(field, ErrEmptyTable, "operation %q has an empty table", op.Name)
			continue
		}
		if carrier == nil {
			carrier = make(map[string]bool, len(keys))
			for _, k := range keys {
				carrier[k] = true
			}
		} else if !sameKeys(carrier, keys) {
			add(field, ErrCarrierMismatch, "operation %q is defined on %v, expected %v",
				op.Name, keys, sortedKeys(carrier))
		}
		errs = append(errs, validateCells(spec.Line, field, op, carrier)...)
	}

	if spec.Variant == "" {
		return errs
	}
	variant, err := algebra.ParseVariant(spec.Variant)
	if err != nil {
		add("variant", ErrUnknownVariant, "unknown variant %q", spec.Variant)
		return errs
	}
	def := variant.Definition()
	for _, req := range def.Required {
		op, ok := spec.Operations.Get(req.Name)
		if !ok {
			add("operations", ErrMissingOperation, "%s requires operation %q", variant, req.Name)
			continue
		}
		if op.Arity() != req.Arity {
			add("operations."+req.Name, ErrArityMismatch,
				"%s expects %q to have arity %d, got %d", variant, req.Name, req.Arity, op.Arity())
		}
	}
	for _, opt := range def.Optional {
		if op, ok := spec.Operations.Get(opt.Name); ok && op.Arity() != opt.Arity {
			add("operations."+opt.Name, ErrArityMismatch,
				"%s expects %q to have arity %d, got %d", variant, opt.Name, opt.Arity, op.Arity())
		}
	}
	return errs
}

// validateCells reports rows that are not total and values outside the
// carrier.
func validateCells(line int, field string, op ir.Operation, carrier map[string]bool) []ValidationError {
	var errs []ValidationError
	for _, x := range op.Keys() {
		if op.Unary != nil {
			if v := op.Unary[x]; !carrier[v] {
				errs = append(errs, ValidationError{
					Field:   fmt.Sprintf("%s.%s", field, x),
					Message: fmt.Sprintf("value %q is outside the carrier", v),
					Code:    ErrValueOutOfDomain,
					Line:    line,
				})
			}
			continue
		}

		row := op.Binary[x]
		cols := make([]string, 0, len(row))
		for y := range row {
			cols = append(cols, y)
		}
		sort.Strings(cols)
		if !sameKeys(carrier, cols) {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("%s.%s", field, x),
				Message: fmt.Sprintf("row %q is defined on %v, expected %v", x, cols, sortedKeys(carrier)),
				Code:    ErrRowNotTotal,
				Line:    line,
			})
		}
		for _, y := range cols {
			if v := row[y]; !carrier[v] {
				errs = append(errs, ValidationError{
					Field:   fmt.Sprintf("%s.%s.%s", field, x, y),
					Message: fmt.Sprintf("value %q is outside the carrier", v),
					Code:    ErrValueOutOfDomain,
					Line:    line,
				})
			}
		}
	}
	return errs
}

func sameKeys(carrier map[string]bool, keys []string) bool {
	if len(carrier) != len(keys) {
		return false
	}
	for _, k := range keys {
		if !carrier[k] {
			return false
		}
	}
	return true
}

func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
