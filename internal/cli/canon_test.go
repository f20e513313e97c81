package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/rbin/internal/ir"
	"github.com/roach88/rbin/internal/order"
)

func TestCanonLatticeModels(t *testing.T) {
	out, err := execute(t, NewCanonCommand(&RootOptions{Format: "json"}), modelsDir)
	require.NoError(t, err)

	var result CanonResult
	resp := decodeData(t, out, &result)
	assert.Equal(t, "ok", resp.Status)
	require.Len(t, result.Models, 2)
	assert.Equal(t, []string{"R2"}, result.Skipped)

	chain := result.Models[0]
	assert.Equal(t, "T1", chain.Name)
	assert.Equal(t, []string{ir.BOT, ir.TOP}, chain.Symbols)
	assert.Equal(t, []order.Edge{{Upper: ir.TOP, Lower: ir.BOT}}, chain.Hasse)

	diamond := result.Models[1]
	assert.Equal(t, "D4", diamond.Name)
	assert.Equal(t, []string{ir.BOT, "a", "b", ir.TOP}, diamond.Symbols)
	assert.Len(t, diamond.Hasse, 4)

	join, ok := diamond.Tables.Get("join")
	require.True(t, ok)
	assert.Equal(t, [][]int{{0, 1, 2, 3}, {1, 1, 3, 3}, {2, 3, 2, 3}, {3, 3, 3, 3}}, join.Binary)
}

func TestCanonText(t *testing.T) {
	out, err := execute(t, NewCanonCommand(&RootOptions{Format: "text"}), modelsDir)
	require.NoError(t, err)

	assert.Contains(t, out, "T1 (lattice)")
	assert.Contains(t, out, "symbols: ⟘ ⟙")
	assert.Contains(t, out, "⟙ > ⟘")
	assert.Contains(t, out, "- R2: not a lattice, skipped")
}

func TestCanonInvalidModel(t *testing.T) {
	out, err := execute(t, NewCanonCommand(&RootOptions{Format: "text"}), writeCUE(t, brokenJoinCUE))
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "Broken: join is not commutative")
}
