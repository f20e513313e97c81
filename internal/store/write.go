package store

import (
	"context"
	"fmt"

	"github.com/roach88/rbin/internal/ir"
)

// WriteModel inserts a model record into the catalogue.
// Uses ON CONFLICT(id) DO NOTHING for idempotency; inserted reports whether
// a new row was created. The first sighting of a structure keeps its seq.
func (s *Store) WriteModel(ctx context.Context, rec ir.ModelRecord) (inserted bool, err error) {
	symbolsJSON, err := marshalSymbols(rec.Symbols)
	if err != nil {
		return false, fmt.Errorf("write model: %w", err)
	}

	tablesJSON, err := marshalTables(rec.Tables)
	if err != nil {
		return false, fmt.Errorf("write model: %w", err)
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO models
		(id, variant, cardinality, symbols, tables, proof_text, seq)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`,
		rec.ID,
		rec.Variant,
		rec.Cardinality,
		symbolsJSON,
		tablesJSON,
		rec.ProofText,
		rec.Seq,
	)
	if err != nil {
		return false, fmt.Errorf("write model: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("write model: rows affected: %w", err)
	}
	return n > 0, nil
}

// WriteSighting inserts a sighting record.
// Duplicate (model, label, batch) triples are silently ignored.
//
// Note: The model referenced by ModelID must exist (foreign key constraint).
func (s *Store) WriteSighting(ctx context.Context, sg ir.Sighting) (inserted bool, err error) {
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO sightings
		(id, model_id, label, batch, seq)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT DO NOTHING
	`,
		sg.ID,
		sg.ModelID,
		sg.Label,
		sg.Batch,
		sg.Seq,
	)
	if err != nil {
		return false, fmt.Errorf("write sighting: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("write sighting: rows affected: %w", err)
	}
	return n > 0, nil
}
