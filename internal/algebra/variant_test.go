package algebra

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		names []string
		want  Variant
	}{
		{"lattice", []string{"join", "meet"}, Lattice},
		{"lattice any order", []string{"meet", "join"}, Lattice},
		{"residuated binar", []string{"join", "meet", "mult", "over", "undr"}, ResiduatedBinar},
		{"residuated binar with involution", []string{"invo", "join", "meet", "mult", "over", "undr"}, ResiduatedBinar},
		{"pseudo weak r0", []string{"imp1", "imp2", "inv1", "inv2", "join", "meet"}, PseudoWeakR0Algebra},
		{"abelian group", []string{"add", "neg"}, AbelianGroup},
		{"boolean ring", []string{"add", "neg", "mult"}, BooleanRing},
		{"magma", []string{"mult"}, Unconstrained},
		{"magma with involution", []string{"mult", "invo"}, Unconstrained},
		{"lattice plus extra", []string{"join", "meet", "frob"}, Unconstrained},
		{"half a lattice", []string{"join"}, Unconstrained},
		{"nothing", nil, Unconstrained},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.names))
		})
	}
}

func TestParseVariant(t *testing.T) {
	for _, v := range Variants() {
		parsed, err := ParseVariant(v.String())
		require.NoError(t, err)
		assert.Equal(t, v, parsed)
	}

	_, err := ParseVariant("semiring")
	assert.True(t, errors.Is(err, ErrUnknownVariant))
}

func TestVariantText(t *testing.T) {
	text, err := PseudoR0Algebra.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "pseudo_r0_algebra", string(text))

	var v Variant
	require.NoError(t, v.UnmarshalText([]byte("bounded_lattice")))
	assert.Equal(t, BoundedLattice, v)

	assert.Error(t, v.UnmarshalText([]byte("ring")))
	_, err = Variant(99).MarshalText()
	assert.ErrorIs(t, err, ErrUnknownVariant)
	assert.Equal(t, "variant(99)", Variant(99).String())
}

func TestDefinitionsComposeParentFirst(t *testing.T) {
	lattice := Lattice.Definition()
	bounded := BoundedLattice.Definition()
	weak := PseudoWeakR0Algebra.Definition()
	r0 := PseudoR0Algebra.Definition()

	assert.Same(t, lattice, bounded.Parent)
	assert.Same(t, bounded, weak.Parent)
	assert.Same(t, weak, r0.Parent)

	names := func(d *Definition) []string {
		out := make([]string, len(d.Axioms))
		for i, a := range d.Axioms {
			out[i] = a.Name
		}
		return out
	}

	assert.Equal(t, []string{
		"join_commutative", "meet_commutative", "join_associative", "meet_associative", "absorption",
	}, names(lattice))
	assert.Equal(t, names(lattice), names(bounded)[:len(lattice.Axioms)])
	assert.Equal(t, names(weak), names(r0)[:len(weak.Axioms)])
	assert.Equal(t, "P5", names(r0)[len(r0.Axioms)-1])

	assert.Equal(t, []string{
		"add_associative", "add_commutative", "add_identity", "add_inverse",
		"mult_associative", "mult_identity", "mult_left_distributive", "mult_right_distributive", "mult_idempotent",
	}, names(BooleanRing.Definition()))
}

func TestDefinitionRequirements(t *testing.T) {
	binar := ResiduatedBinar.Definition()
	assert.Equal(t, []Requirement{{"meet", 2}, {"join", 2}, {"mult", 2}, {"over", 2}, {"undr", 2}}, binar.Required)
	assert.Equal(t, []Requirement{{"invo", 1}}, binar.Optional)

	weak := PseudoWeakR0Algebra.Definition()
	assert.Contains(t, weak.Required, Requirement{"inv1", 1})
	assert.Contains(t, weak.Required, Requirement{"meet", 2})

	assert.Empty(t, Unconstrained.Definition().Required)
	assert.Empty(t, Unconstrained.Definition().Axioms)
}

func TestDefinitionInfix(t *testing.T) {
	assert.Equal(t, map[string]string{"meet": "^", "join": "v"}, Lattice.Definition().Infix)
	assert.Equal(t, map[string]string{
		"meet": "^", "join": "v", "mult": "*", "undr": `\`, "over": "/",
	}, ResiduatedBinar.Definition().Infix)
	assert.Equal(t, map[string]string{"add": "+", "mult": "*"}, BooleanRing.Definition().Infix)
	assert.Empty(t, PseudoR0Algebra.Definition().Infix["imp1"])
	assert.Empty(t, Unconstrained.Definition().Infix)
}

func TestPlacement(t *testing.T) {
	for _, v := range Variants() {
		want := TopFirst
		if v.IsLatticeFamily() {
			want = BotFirst
		}
		assert.Equal(t, want, v.Definition().Placement, v.String())
	}
}

func TestUnknownVariantDefinition(t *testing.T) {
	assert.Same(t, Unconstrained.Definition(), Variant(42).Definition())
}

func TestRefines(t *testing.T) {
	tests := []struct {
		v, ancestor Variant
		want        bool
	}{
		{Lattice, Lattice, true},
		{PseudoR0Algebra, Lattice, true},
		{PseudoR0Algebra, BoundedLattice, true},
		{ResiduatedBinar, BoundedLattice, false},
		{BooleanRing, AbelianGroup, true},
		{AbelianGroup, BooleanRing, false},
		{AbelianGroup, Lattice, false},
		{Unconstrained, Lattice, false},
		{Variant(42), Unconstrained, false},
	}

	for _, tt := range tests {
		t.Run(tt.v.String()+"/"+tt.ancestor.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.v.Refines(tt.ancestor))
		})
	}
}

func TestVariantNames(t *testing.T) {
	names := VariantNames()
	require.Len(t, names, len(Variants()))
	assert.Contains(t, names, "pseudo_weak_r0_algebra")
	for _, name := range names {
		_, err := ParseVariant(name)
		assert.NoError(t, err, name)
	}
}
