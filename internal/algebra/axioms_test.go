package algebra

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/rbin/internal/ir"
	"github.com/roach88/rbin/internal/testutil"
)

func requireViolation(t *testing.T, err error, law, message string) {
	t.Helper()
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrAxiomViolation), "expected axiom violation, got %v", err)
	ae, ok := IsAxiomError(err)
	require.True(t, ok)
	assert.Equal(t, law, ae.Law)
	assert.Equal(t, message, ae.Message)
}

func TestLattice_BrokenJoinReportsCommutativityFirst(t *testing.T) {
	s, err := New("broken", testutil.BrokenJoinLattice(), Lattice)
	assert.Nil(t, s)
	requireViolation(t, err, "join_commutative", "join is not commutative")
}

func TestLattice_Absorption(t *testing.T) {
	// meet = join: commutative and associative, but not absorbing.
	ops := ir.Operations{
		ir.Binary("join", testutil.TwoElementJoin()),
		ir.Binary("meet", testutil.TwoElementJoin()),
	}
	_, err := New("t", ops, Lattice)
	requireViolation(t, err, "absorption", "absorption laws fail")
}

func TestLattice_MeetAssociativity(t *testing.T) {
	// NOR is commutative but not associative.
	nor := ir.CayleyTable{"0": {"0": "1", "1": "0"}, "1": {"0": "0", "1": "0"}}
	ops := ir.Operations{
		ir.Binary("join", testutil.TwoElementJoin()),
		ir.Binary("meet", nor),
	}
	_, err := New("t", ops, Lattice)
	requireViolation(t, err, "meet_associative", "meet is not associative")
}

func TestBoundedLattice(t *testing.T) {
	s, err := New("t", testutil.PseudoR0()[4:], BoundedLattice)
	require.NoError(t, err)
	assert.Equal(t, []string{ir.BOT, ir.TOP}, s.Symbols())

	_, err = New("t", testutil.TwoElementLattice(), BoundedLattice)
	requireViolation(t, err, "meet_identity", ir.TOP+" is not an identity of meet")
}

func TestBoundedLattice_DiagnoseWithoutSentinels(t *testing.T) {
	failures, err := Diagnose("t", testutil.TwoElementLattice(), BoundedLattice)
	require.NoError(t, err)

	laws := make([]string, len(failures))
	for i, f := range failures {
		laws[i] = f.Law
		assert.Equal(t, BoundedLattice, f.Variant)
	}
	assert.Equal(t, []string{"meet_identity", "join_identity", "join_zero", "meet_zero"}, laws)
}

func TestDiagnose_ValidAndMalformed(t *testing.T) {
	failures, err := Diagnose("t", testutil.PseudoR0(), PseudoR0Algebra)
	require.NoError(t, err)
	assert.Empty(t, failures)
	assert.NotNil(t, failures)

	_, err = Diagnose("t", ir.Operations{}, Lattice)
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestResiduatedBinar(t *testing.T) {
	s, err := New("t", testutil.ResiduatedBinar(), ResiduatedBinar)
	require.NoError(t, err)
	assert.True(t, s.Has("invo"))

	withoutInvolution := testutil.ResiduatedBinar()[:5]
	_, err = New("t", withoutInvolution, ResiduatedBinar)
	require.NoError(t, err)
}

func TestResiduatedBinar_DistributivityIsDistinctFromResiduation(t *testing.T) {
	_, err := New("t", testutil.NonDistributiveBinar(), ResiduatedBinar)
	requireViolation(t, err, "mult_left_distributive", "mult is not left distributive over join")

	_, err = New("t", testutil.NonResiduatedBinar(), ResiduatedBinar)
	requireViolation(t, err, "residuation", "check residuated binars axioms!")
}

func TestPseudoR0(t *testing.T) {
	s, err := New("t", testutil.PseudoR0(), PseudoR0Algebra)
	require.NoError(t, err)
	assert.Equal(t, PseudoR0Algebra, s.Variant())

	_, err = New("t", testutil.PseudoR0(), PseudoWeakR0Algebra)
	require.NoError(t, err)
}

func TestPseudoWeakR0_NamedLaws(t *testing.T) {
	_, err := New("no P1", testutil.NoP1(), PseudoWeakR0Algebra)
	requireViolation(t, err, "P1", "P1 axiom doesn't hold")

	_, err = New("no P2", testutil.NoP2(), PseudoWeakR0Algebra)
	requireViolation(t, err, "P2", "P2 axiom doesn't hold")
}

func TestPseudoWeakR0_PseudoInverse(t *testing.T) {
	ops := testutil.PseudoR0()
	ops[2] = ir.Unary("inv1", ir.UnaryTable{ir.BOT: ir.BOT, ir.TOP: ir.BOT})
	_, err := New("t", ops, PseudoWeakR0Algebra)
	requireViolation(t, err, "pseudo_inverse", "Pseudo-inverse axioms don't hold")
}

func TestPseudoWeakR0_RequiresBounds(t *testing.T) {
	_, err := New("t", testutil.NoP1(), PseudoR0Algebra)
	requireViolation(t, err, "P1", "P1 axiom doesn't hold")

	failures, err := Diagnose("t", testutil.NoP1(), PseudoR0Algebra)
	require.NoError(t, err)
	require.NotEmpty(t, failures)
	assert.Equal(t, "P1", failures[0].Law)
}

func TestAbelianGroup(t *testing.T) {
	_, err := New("t", testutil.BooleanRing()[:2], AbelianGroup)
	require.NoError(t, err)

	ops := testutil.BooleanRing()[:2]
	ops[1] = ir.Unary("neg", ir.UnaryTable{"0": "1", "1": "0"})
	_, err = New("t", ops, AbelianGroup)
	requireViolation(t, err, "add_inverse", "neg is not an inverse for add")

	ops = testutil.BooleanRing()[:2]
	ops[0] = ir.Binary("add", ir.CayleyTable{"0": {"0": "1", "1": "0"}, "1": {"0": "0", "1": "1"}})
	_, err = New("t", ops, AbelianGroup)
	requireViolation(t, err, "add_identity", "0 is not an identity of add")
}

func TestBooleanRing(t *testing.T) {
	_, err := New("t", testutil.BooleanRing(), BooleanRing)
	require.NoError(t, err)

	// mult = add is associative but has no identity 1.
	ops := testutil.BooleanRing()
	ops[2] = ir.Binary("mult", ops[0].Clone().Binary)
	_, err = New("t", ops, BooleanRing)
	requireViolation(t, err, "mult_identity", "1 is not an identity of mult")
}
