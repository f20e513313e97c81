package algebra

import (
	"fmt"
	"maps"
	"slices"

	"github.com/hashicorp/go-set/v3"
)

// Variant identifies one case of the structure taxonomy.
type Variant int

const (
	// Unconstrained is the base structure: any operations, no axioms.
	Unconstrained Variant = iota
	Lattice
	BoundedLattice
	ResiduatedBinar
	PseudoWeakR0Algebra
	PseudoR0Algebra
	AbelianGroup
	BooleanRing
)

var variantNames = map[Variant]string{
	Unconstrained:       "unconstrained",
	Lattice:             "lattice",
	BoundedLattice:      "bounded_lattice",
	ResiduatedBinar:     "residuated_binar",
	PseudoWeakR0Algebra: "pseudo_weak_r0_algebra",
	PseudoR0Algebra:     "pseudo_r0_algebra",
	AbelianGroup:        "abelian_group",
	BooleanRing:         "boolean_ring",
}

// Variants returns every variant in declaration order.
func Variants() []Variant {
	return []Variant{
		Unconstrained, Lattice, BoundedLattice, ResiduatedBinar,
		PseudoWeakR0Algebra, PseudoR0Algebra, AbelianGroup, BooleanRing,
	}
}

// String returns the snake_case name of the variant.
func (v Variant) String() string {
	if name, ok := variantNames[v]; ok {
		return name
	}
	return fmt.Sprintf("variant(%d)", int(v))
}

// ParseVariant returns the variant with the given snake_case name.
func ParseVariant(name string) (Variant, error) {
	for _, v := range Variants() {
		if v.String() == name {
			return v, nil
		}
	}
	return Unconstrained, fmt.Errorf("%w: %q", ErrUnknownVariant, name)
}

// VariantNames lists the snake_case names ParseVariant accepts.
func VariantNames() []string {
	names := make([]string, 0, len(variantNames))
	for _, v := range Variants() {
		names = append(names, v.String())
	}
	return names
}

// MarshalText implements encoding.TextMarshaler.
func (v Variant) MarshalText() ([]byte, error) {
	if _, ok := variantNames[v]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownVariant, int(v))
	}
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Variant) UnmarshalText(text []byte) error {
	parsed, err := ParseVariant(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// IsLatticeFamily reports whether the variant requires meet and join.
func (v Variant) IsLatticeFamily() bool { return v.Refines(Lattice) }

// Refines reports whether v is ancestor or is derived from it.
func (v Variant) Refines(ancestor Variant) bool {
	if _, ok := variantNames[v]; !ok {
		return false
	}
	for d := v.Definition(); d != nil; d = d.Parent {
		if d.Variant == ancestor {
			return true
		}
	}
	return false
}

// Placement says where the TOP and BOT sentinels sit in the symbol order.
type Placement int

const (
	// TopFirst puts TOP first and BOT last.
	TopFirst Placement = iota
	// BotFirst puts BOT first and TOP last.
	BotFirst
)

// Requirement names an operation and its arity.
type Requirement struct {
	Name  string
	Arity int
}

// Axiom is one named law of a variant's pipeline.
type Axiom struct {
	// Name is the stable law identifier reported in AxiomError.Law.
	Name string

	// Message is reported when the law fails.
	Message string

	// Holds evaluates the law. Operations named by the variant's
	// requirements are guaranteed present and total when it runs.
	Holds func(s *Structure) bool
}

// Definition describes a variant.
type Definition struct {
	Variant   Variant
	Parent    *Definition
	Required  []Requirement
	Optional  []Requirement
	Axioms    []Axiom
	Infix     map[string]string
	Placement Placement
}

// extend derives a child definition: requirements and axioms are appended
// after the parent's, infix symbols are merged.
func extend(parent *Definition, child Definition) *Definition {
	child.Parent = parent
	if parent == nil {
		if child.Infix == nil {
			child.Infix = map[string]string{}
		}
		return &child
	}
	child.Required = append(slices.Clone(parent.Required), child.Required...)
	child.Optional = append(slices.Clone(parent.Optional), child.Optional...)
	child.Axioms = append(slices.Clone(parent.Axioms), child.Axioms...)
	infix := maps.Clone(parent.Infix)
	maps.Copy(infix, child.Infix)
	child.Infix = infix
	return &child
}

var definitions = buildDefinitions()

func buildDefinitions() map[Variant]*Definition {
	unconstrained := extend(nil, Definition{
		Variant:   Unconstrained,
		Placement: TopFirst,
	})
	lattice := extend(nil, Definition{
		Variant:   Lattice,
		Required:  []Requirement{{"meet", 2}, {"join", 2}},
		Axioms:    latticeAxioms(),
		Infix:     map[string]string{"meet": "^", "join": "v"},
		Placement: BotFirst,
	})
	bounded := extend(lattice, Definition{
		Variant:   BoundedLattice,
		Axioms:    boundedAxioms(),
		Placement: BotFirst,
	})
	binar := extend(lattice, Definition{
		Variant:   ResiduatedBinar,
		Required:  []Requirement{{"mult", 2}, {"over", 2}, {"undr", 2}},
		Optional:  []Requirement{{"invo", 1}},
		Axioms:    binarAxioms(),
		Infix:     map[string]string{"mult": "*", "undr": `\`, "over": "/"},
		Placement: BotFirst,
	})
	weak := extend(bounded, Definition{
		Variant:   PseudoWeakR0Algebra,
		Required:  []Requirement{{"imp1", 2}, {"imp2", 2}, {"inv1", 1}, {"inv2", 1}},
		Axioms:    pseudoWeakAxioms(),
		Placement: BotFirst,
	})
	r0 := extend(weak, Definition{
		Variant:   PseudoR0Algebra,
		Axioms:    pseudoR0Axioms(),
		Placement: BotFirst,
	})
	group := extend(nil, Definition{
		Variant:   AbelianGroup,
		Required:  []Requirement{{"add", 2}, {"neg", 1}},
		Axioms:    groupAxioms(),
		Infix:     map[string]string{"add": "+"},
		Placement: TopFirst,
	})
	ring := extend(group, Definition{
		Variant:   BooleanRing,
		Required:  []Requirement{{"mult", 2}},
		Axioms:    ringAxioms(),
		Infix:     map[string]string{"mult": "*"},
		Placement: TopFirst,
	})

	defs := make(map[Variant]*Definition)
	for _, d := range []*Definition{unconstrained, lattice, bounded, binar, weak, r0, group, ring} {
		defs[d.Variant] = d
	}
	return defs
}

// Definition returns the variant's definition. Unknown variants resolve
// to the unconstrained definition.
func (v Variant) Definition() *Definition {
	if d, ok := definitions[v]; ok {
		return d
	}
	return definitions[Unconstrained]
}

// Classify selects a variant from the set of operation names present.
// It never fails: unrecognised name sets are Unconstrained.
// BoundedLattice and PseudoR0Algebra are never selected; they must be
// requested explicitly.
func Classify(names []string) Variant {
	present := set.From(names)
	switch {
	case sameNames(present, "meet", "join"):
		return Lattice
	case sameNames(present, "meet", "join", "mult", "over", "undr"),
		sameNames(present, "meet", "join", "mult", "over", "undr", "invo"):
		return ResiduatedBinar
	case sameNames(present, "meet", "join", "imp1", "imp2", "inv1", "inv2"):
		return PseudoWeakR0Algebra
	case sameNames(present, "add", "neg"):
		return AbelianGroup
	case sameNames(present, "add", "neg", "mult"):
		return BooleanRing
	default:
		return Unconstrained
	}
}

func sameNames(present *set.Set[string], want ...string) bool {
	if present.Size() != len(want) {
		return false
	}
	for _, name := range want {
		if !present.Contains(name) {
			return false
		}
	}
	return true
}
