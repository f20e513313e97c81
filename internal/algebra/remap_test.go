package algebra

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/rbin/internal/ir"
	"github.com/roach88/rbin/internal/testutil"
)

func invert(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[v] = k
	}
	return out
}

func TestRemapSymbols_InverseRestoresTables(t *testing.T) {
	tests := []struct {
		name    string
		ops     ir.Operations
		variant Variant
		mapping map[string]string
	}{
		{"diamond", testutil.Diamond(), Lattice, map[string]string{"0": "p", "a": "s", "b": "q", "1": "r"}},
		{"binar", testutil.ResiduatedBinar(), ResiduatedBinar, map[string]string{"0": "1", "1": "0"}},
		{"ring", testutil.BooleanRing(), BooleanRing, map[string]string{"0": "x", "1": "y"}},
		{"bounded chain", testutil.Chain(ir.BOT, "m", ir.TOP), BoundedLattice, map[string]string{ir.BOT: "0", "m": "1", ir.TOP: "2"}},
		{"to sentinels", testutil.TwoElementLattice(), Lattice, map[string]string{"0": ir.BOT, "1": ir.TOP}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := New("t", tt.ops, tt.variant)
			require.NoError(t, err)
			before := s.IndexedTables()
			beforeID, err := s.ID()
			require.NoError(t, err)

			require.NoError(t, s.RemapSymbols(tt.mapping))
			require.NoError(t, s.RemapSymbols(invert(tt.mapping)))

			if diff := cmp.Diff(before, s.IndexedTables()); diff != "" {
				t.Errorf("indexed tables changed (-before +after):\n%s", diff)
			}
			afterID, err := s.ID()
			require.NoError(t, err)
			assert.Equal(t, beforeID, afterID)
		})
	}
}

func TestRemapSymbols_RewritesKeysAndValues(t *testing.T) {
	s, err := New("t", testutil.TwoElementLattice(), Lattice)
	require.NoError(t, err)

	require.NoError(t, s.RemapSymbols(map[string]string{"0": ir.BOT, "1": ir.TOP}))

	assert.Equal(t, []string{ir.BOT, ir.TOP}, s.Symbols())
	v, ok := s.Apply2("join", ir.BOT, ir.TOP)
	require.True(t, ok)
	assert.Equal(t, ir.TOP, v)
	v, _ = s.Apply2("meet", ir.BOT, ir.TOP)
	assert.Equal(t, ir.BOT, v)
}

func TestRemapSymbols_RejectsNonBijection(t *testing.T) {
	tests := []struct {
		name    string
		mapping map[string]string
	}{
		{"too short", map[string]string{"0": "x"}},
		{"too long", map[string]string{"0": "x", "1": "y", "2": "z"}},
		{"not injective", map[string]string{"0": "x", "1": "x"}},
		{"wrong domain", map[string]string{"0": "x", "2": "y"}},
		{"nil", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := New("t", testutil.TwoElementLattice(), Lattice)
			require.NoError(t, err)
			before := s.Operations()

			err = s.RemapSymbols(tt.mapping)
			assert.ErrorIs(t, err, ErrNotBijection)
			if diff := cmp.Diff(before, s.Operations()); diff != "" {
				t.Errorf("structure mutated on failure:\n%s", diff)
			}
		})
	}
}

func TestRemapSymbols_NamedElementsAreRelabeled(t *testing.T) {
	t.Run("ring identities", func(t *testing.T) {
		s, err := New("t", testutil.BooleanRing(), BooleanRing)
		require.NoError(t, err)

		require.NoError(t, s.RemapSymbols(map[string]string{"0": "x", "1": "y"}))
		assert.Equal(t, BooleanRing, s.Variant())

		// x is the old additive identity, y the old multiplicative one.
		v, _ := s.Apply2("add", "x", "y")
		assert.Equal(t, "y", v)
		v, _ = s.Apply2("mult", "y", "x")
		assert.Equal(t, "x", v)
	})

	t.Run("swapped sentinels", func(t *testing.T) {
		s, err := New("t", testutil.PseudoR0()[4:], BoundedLattice)
		require.NoError(t, err)

		require.NoError(t, s.RemapSymbols(map[string]string{ir.BOT: ir.TOP, ir.TOP: ir.BOT}))
		v, _ := s.Apply2("meet", ir.BOT, ir.TOP)
		assert.Equal(t, ir.TOP, v, "old bottom is now called TOP")
	})
}

func TestRemapSymbols_Unary(t *testing.T) {
	ops := ir.Operations{
		ir.Binary("mult", ir.CayleyTable{"0": {"0": "0", "1": "1"}, "1": {"0": "1", "1": "1"}}),
		ir.Unary("invo", ir.UnaryTable{"0": "1", "1": "0"}),
	}
	s, err := Build("test", ops)
	require.NoError(t, err)
	require.Equal(t, Unconstrained, s.Variant())

	require.NoError(t, s.RemapSymbols(map[string]string{"0": "c1", "1": "c2"}))
	assert.Equal(t, []string{"c1", "c2"}, s.Symbols())

	v, ok := s.Apply1("invo", "c1")
	require.True(t, ok)
	assert.Equal(t, "c2", v)
}
