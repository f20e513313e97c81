package algebra

import (
	"sort"

	"github.com/roach88/rbin/internal/ir"
)

// Structure is a validated finite algebraic structure. It exclusively owns
// its operation tables; accessors hand out copies.
type Structure struct {
	label string
	def   *Definition
	ops   ir.Operations
}

// New validates the operations against the carrier contract and the
// variant's requirements, copies them and runs the variant's axiom
// pipeline. It returns an *InputError for malformed tables and an
// *AxiomError naming the first law that fails.
func New(label string, ops ir.Operations, variant Variant) (*Structure, error) {
	def := variant.Definition()
	if err := validate(ops, def); err != nil {
		return nil, err
	}
	s := &Structure{label: label, def: def, ops: ops.Clone()}
	if err := s.checkAxioms(); err != nil {
		return nil, err
	}
	return s, nil
}

// Build classifies the operations by name and constructs the structure.
func Build(label string, ops ir.Operations) (*Structure, error) {
	return New(label, ops, Classify(ops.Names()))
}

// Diagnose evaluates every axiom of the variant's pipeline without
// stopping and returns all failures in pipeline order. Malformed tables
// are reported as an error; no axioms run in that case.
func Diagnose(label string, ops ir.Operations, variant Variant) ([]*AxiomError, error) {
	def := variant.Definition()
	if err := validate(ops, def); err != nil {
		return nil, err
	}
	s := &Structure{label: label, def: def, ops: ops.Clone()}
	failures := []*AxiomError{}
	for _, axiom := range def.Axioms {
		if !axiom.Holds(s) {
			failures = append(failures, s.violation(axiom))
		}
	}
	return failures, nil
}

func (s *Structure) checkAxioms() error {
	for _, axiom := range s.def.Axioms {
		if !axiom.Holds(s) {
			return s.violation(axiom)
		}
	}
	return nil
}

func (s *Structure) violation(axiom Axiom) *AxiomError {
	return &AxiomError{Variant: s.def.Variant, Law: axiom.Name, Message: axiom.Message}
}

// Label returns the structure's label.
func (s *Structure) Label() string { return s.label }

// Variant returns the structure's variant.
func (s *Structure) Variant() Variant { return s.def.Variant }

// Definition returns the definition of the structure's variant.
func (s *Structure) Definition() *Definition { return s.def }

// Cardinality returns the size of the carrier.
func (s *Structure) Cardinality() int {
	return len(s.carrier())
}

// carrier returns the keys of the first operation in map order.
func (s *Structure) carrier() []string {
	op := s.ops[0]
	keys := make([]string, 0, len(op.Binary)+len(op.Unary))
	for k := range op.Binary {
		keys = append(keys, k)
	}
	for k := range op.Unary {
		keys = append(keys, k)
	}
	return keys
}

// has reports whether x belongs to the carrier.
func (s *Structure) has(x string) bool {
	op := s.ops[0]
	if op.Binary != nil {
		_, ok := op.Binary[x]
		return ok
	}
	_, ok := op.Unary[x]
	return ok
}

// Symbols returns the carrier in canonical order: sentinels pinned to the
// ends given by the variant's placement, the rest sorted lexicographically.
func (s *Structure) Symbols() []string {
	return orderSymbols(s.carrier(), s.def.Placement)
}

func orderSymbols(carrier []string, placement Placement) []string {
	var hasTop, hasBot bool
	rest := make([]string, 0, len(carrier))
	for _, x := range carrier {
		switch x {
		case ir.TOP:
			hasTop = true
		case ir.BOT:
			hasBot = true
		default:
			rest = append(rest, x)
		}
	}
	sort.Strings(rest)

	first, last := ir.TOP, ir.BOT
	hasFirst, hasLast := hasTop, hasBot
	if placement == BotFirst {
		first, last = ir.BOT, ir.TOP
		hasFirst, hasLast = hasBot, hasTop
	}

	symbols := make([]string, 0, len(carrier))
	if hasFirst {
		symbols = append(symbols, first)
	}
	symbols = append(symbols, rest...)
	if hasLast {
		symbols = append(symbols, last)
	}
	return symbols
}

// Operations returns a deep copy of the operations in declaration order.
func (s *Structure) Operations() ir.Operations {
	return s.ops.Clone()
}

// Operation returns a copy of the named operation.
func (s *Structure) Operation(name string) (ir.Operation, bool) {
	op, ok := s.ops.Get(name)
	if !ok {
		return ir.Operation{}, false
	}
	return op.Clone(), true
}

// Has reports whether the structure owns the named operation.
func (s *Structure) Has(name string) bool {
	_, ok := s.ops.Get(name)
	return ok
}

// Apply2 evaluates a binary operation.
func (s *Structure) Apply2(name, x, y string) (string, bool) {
	op, ok := s.ops.Get(name)
	if !ok || op.Binary == nil {
		return "", false
	}
	v, ok := op.Binary[x][y]
	return v, ok
}

// Apply1 evaluates a unary operation.
func (s *Structure) Apply1(name, x string) (string, bool) {
	op, ok := s.ops.Get(name)
	if !ok || op.Unary == nil {
		return "", false
	}
	v, ok := op.Unary[x]
	return v, ok
}

// Clone returns an independent copy of the structure.
func (s *Structure) Clone() *Structure {
	return &Structure{label: s.label, def: s.def, ops: s.ops.Clone()}
}

// binary returns the named binary table. Callers rely on validation
// having established that it exists.
func (s *Structure) binary(name string) ir.CayleyTable {
	op, _ := s.ops.Get(name)
	return op.Binary
}

func (s *Structure) unary(name string) ir.UnaryTable {
	op, _ := s.ops.Get(name)
	return op.Unary
}

// leq is the lattice order: a <= b iff meet(b, a) = a.
func (s *Structure) leq(a, b string) bool {
	return s.binary("meet")[b][a] == a
}
