package harness

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/roach88/rbin/internal/algebra"
	"github.com/roach88/rbin/internal/engine"
	"github.com/roach88/rbin/internal/ir"
	"github.com/roach88/rbin/internal/order"
	"github.com/roach88/rbin/internal/store"
	"github.com/roach88/rbin/internal/testutil"
)

// Run executes a scenario and returns the result.
//
// Execution flow:
//  1. Build the structure (forced variant or classification)
//  2. Apply remap, then canonise, if requested
//  3. Snapshot variant, symbols, indexed tables, Hasse edges, proof text
//  4. Check the expect clause and every assertion
//  5. If requested, ingest into a fresh in-memory catalogue and compare
//
// An axiom violation or malformed table is an outcome, not an error.
// Errors are returned for scenarios that cannot run at all.
func Run(scenario *Scenario) (*Result, error) {
	raw := scenario.RawModel()
	variant, err := scenarioVariant(scenario, raw)
	if err != nil {
		return nil, err
	}

	result := NewResult()
	s, err := algebra.New(raw.Label, raw.Operations, variant)
	switch {
	case err == nil:
		if err := prepare(scenario, s); err != nil {
			return nil, err
		}
		result.Snapshot, err = snapshot(scenario.Name, s)
		if err != nil {
			return nil, err
		}
		if result.ModelID, err = s.ID(); err != nil {
			return nil, err
		}
	case errors.Is(err, algebra.ErrAxiomViolation), errors.Is(err, algebra.ErrMalformed):
		result.Snapshot = violationSnapshot(scenario.Name, variant, err)
	default:
		return nil, err
	}

	checkExpect(scenario.Expect, result)

	for i, a := range scenario.Assertions {
		if err := runAssertion(a, s, raw, variant); err != nil {
			result.AddError(fmt.Sprintf("assertions[%d]: %v", i, err))
		}
	}

	if scenario.Ingest {
		if err := checkIngest(scenario, raw, result); err != nil {
			return nil, err
		}
	}

	return result, nil
}

func scenarioVariant(scenario *Scenario, raw ir.RawModel) (algebra.Variant, error) {
	if scenario.Variant == "" {
		return algebra.Classify(raw.Operations.Names()), nil
	}
	v, err := algebra.ParseVariant(scenario.Variant)
	if err != nil {
		return 0, fmt.Errorf("scenario %s: %w", scenario.Name, err)
	}
	return v, nil
}

// prepare applies the scenario's remap and canonisation.
func prepare(scenario *Scenario, s *algebra.Structure) error {
	if len(scenario.Remap) > 0 {
		if err := s.RemapSymbols(scenario.Remap); err != nil {
			return fmt.Errorf("scenario %s: remap: %w", scenario.Name, err)
		}
	}
	if scenario.Canonise {
		if err := order.Canonise(s); err != nil {
			return fmt.Errorf("scenario %s: canonise: %w", scenario.Name, err)
		}
	}
	return nil
}

func snapshot(name string, s *algebra.Structure) (*Snapshot, error) {
	snap := &Snapshot{
		Scenario:  name,
		Variant:   s.Variant().String(),
		Symbols:   s.Symbols(),
		Tables:    s.IndexedTables(),
		ProofText: s.ProofText(),
	}
	if s.Has("meet") && s.Has("join") {
		edges, err := order.Hasse(s)
		if err != nil {
			return nil, err
		}
		snap.Hasse = make([][]string, len(edges))
		for i, e := range edges {
			snap.Hasse[i] = []string{e.Upper, e.Lower}
		}
	}
	return snap, nil
}

func violationSnapshot(name string, variant algebra.Variant, err error) *Snapshot {
	snap := &Snapshot{Scenario: name, Variant: variant.String(), Violation: err.Error()}
	if ae, ok := algebra.IsAxiomError(err); ok {
		snap.Law = ae.Law
	}
	return snap
}

// checkIngest pushes the raw model through the engine and checks that the
// catalogue agrees with the direct build.
func checkIngest(scenario *Scenario, raw ir.RawModel, result *Result) error {
	st, err := store.Open(":memory:")
	if err != nil {
		return fmt.Errorf("failed to create in-memory store: %w", err)
	}
	defer st.Close()

	eng := engine.New(st, zap.NewNop(),
		engine.WithBatchGenerator(testutil.NewFixedBatchGenerator(scenario.Batch)),
		engine.WithCanonise(scenario.Canonise),
	)
	report, err := eng.Ingest(context.Background(), scenario.Name, []ir.RawModel{raw})
	if err != nil {
		return fmt.Errorf("scenario %s: ingest: %w", scenario.Name, err)
	}

	snap := result.Snapshot
	if !snap.Valid() {
		if len(report.Rejected) != 1 || report.Rejected[0].Message != snap.Violation {
			result.AddError(fmt.Sprintf("ingest: expected rejection %q, got %+v", snap.Violation, report))
		}
		return nil
	}

	if len(report.Accepted) != 1 {
		result.AddError(fmt.Sprintf("ingest: expected model to be catalogued, got %+v", report.Rejected))
		return nil
	}
	// The engine classifies instead of forcing a variant, and remapped names
	// can change rank tie-breaks, so IDs are only comparable without either.
	acc := report.Accepted[0]
	if len(scenario.Remap) == 0 && acc.Variant == snap.Variant && acc.ModelID != result.ModelID {
		result.AddError(fmt.Sprintf("ingest: catalogue ID %s, direct build ID %s",
			acc.ModelID, result.ModelID))
	}
	return nil
}
