package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/roach88/rbin/internal/ir"
)

// ReadModel retrieves a single model by ID.
// Returns sql.ErrNoRows if not found.
func (s *Store) ReadModel(ctx context.Context, id string) (ir.ModelRecord, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, variant, cardinality, symbols, tables, proof_text, seq
		FROM models
		WHERE id = ?
	`, id)

	return scanModel(row)
}

// ListModels returns every catalogued model of the given variant, or all
// models when variant is empty. Ordered by seq ASC, id COLLATE BINARY ASC.
//
// Returns an empty slice (not nil) if nothing matches.
func (s *Store) ListModels(ctx context.Context, variant string) ([]ir.ModelRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, variant, cardinality, symbols, tables, proof_text, seq
		FROM models
		WHERE ? = '' OR variant = ?
		ORDER BY seq ASC, id COLLATE BINARY ASC
	`, variant, variant)
	if err != nil {
		return nil, fmt.Errorf("query models: %w", err)
	}
	defer rows.Close()

	models := []ir.ModelRecord{}
	for rows.Next() {
		rec, err := scanModel(rows)
		if err != nil {
			return nil, err
		}
		models = append(models, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate models: %w", err)
	}

	return models, nil
}

// ReadSightings returns every sighting of a model in seq order.
func (s *Store) ReadSightings(ctx context.Context, modelID string) ([]ir.Sighting, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, model_id, label, batch, seq
		FROM sightings
		WHERE model_id = ?
		ORDER BY seq ASC, id COLLATE BINARY ASC
	`, modelID)
	if err != nil {
		return nil, fmt.Errorf("query sightings: %w", err)
	}
	return collectSightings(rows)
}

// ReadBatch returns every sighting recorded under a batch token in seq order.
func (s *Store) ReadBatch(ctx context.Context, batch string) ([]ir.Sighting, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, model_id, label, batch, seq
		FROM sightings
		WHERE batch = ?
		ORDER BY seq ASC, id COLLATE BINARY ASC
	`, batch)
	if err != nil {
		return nil, fmt.Errorf("query batch: %w", err)
	}
	return collectSightings(rows)
}

// MaxSeq returns the largest seq in the catalogue, or 0 when it is empty.
// The engine resumes its clock from here.
func (s *Store) MaxSeq(ctx context.Context) (int64, error) {
	var seq int64
	err := s.db.QueryRowContext(ctx, `
		SELECT COALESCE(MAX(seq), 0) FROM (
			SELECT seq FROM models
			UNION ALL
			SELECT seq FROM sightings
		)
	`).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("max seq: %w", err)
	}
	return seq, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanModel(row scanner) (ir.ModelRecord, error) {
	var (
		rec         ir.ModelRecord
		symbolsJSON string
		tablesJSON  string
	)
	err := row.Scan(&rec.ID, &rec.Variant, &rec.Cardinality, &symbolsJSON, &tablesJSON, &rec.ProofText, &rec.Seq)
	if err == sql.ErrNoRows {
		return ir.ModelRecord{}, err
	}
	if err != nil {
		return ir.ModelRecord{}, fmt.Errorf("scan model: %w", err)
	}

	if rec.Symbols, err = unmarshalSymbols(symbolsJSON); err != nil {
		return ir.ModelRecord{}, err
	}
	if rec.Tables, err = unmarshalTables(tablesJSON); err != nil {
		return ir.ModelRecord{}, err
	}
	return rec, nil
}

func collectSightings(rows *sql.Rows) ([]ir.Sighting, error) {
	defer rows.Close()

	sightings := []ir.Sighting{}
	for rows.Next() {
		var sg ir.Sighting
		if err := rows.Scan(&sg.ID, &sg.ModelID, &sg.Label, &sg.Batch, &sg.Seq); err != nil {
			return nil, fmt.Errorf("scan sighting: %w", err)
		}
		sightings = append(sightings, sg)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sightings: %w", err)
	}
	return sightings, nil
}
