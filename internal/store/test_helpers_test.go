package store

import (
	"path/filepath"
	"testing"

	"github.com/roach88/rbin/internal/ir"
)

// createTestStore creates a new store in a temporary directory.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// createTestModel creates a two-element lattice record.
func createTestModel(id, variant string, seq int64) ir.ModelRecord {
	return ir.ModelRecord{
		ID:          id,
		Variant:     variant,
		Cardinality: 2,
		Symbols:     []string{ir.BOT, ir.TOP},
		Tables: ir.IndexedTables{
			{Name: "join", Table: ir.IndexedTable{Binary: [][]int{{0, 1}, {1, 1}}}},
			{Name: "meet", Table: ir.IndexedTable{Binary: [][]int{{0, 0}, {0, 1}}}},
		},
		ProofText: "⟘ v ⟘ = ⟘.\n",
		Seq:       seq,
	}
}

func createTestSighting(id, modelID, label, batch string, seq int64) ir.Sighting {
	return ir.Sighting{ID: id, ModelID: modelID, Label: label, Batch: batch, Seq: seq}
}

func ids(models []ir.ModelRecord) []string {
	out := make([]string, len(models))
	for i, m := range models {
		out[i] = m.ID
	}
	return out
}
