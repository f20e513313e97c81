package engine

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/roach88/rbin/internal/algebra"
	"github.com/roach88/rbin/internal/ir"
	"github.com/roach88/rbin/internal/order"
	"github.com/roach88/rbin/internal/store"
)

// DefaultMaxCardinality is the largest carrier the engine catalogues.
// Hasse reduction is cubic in the carrier size.
const DefaultMaxCardinality = 64

// Engine turns raw models into catalogued structures.
//
// Ingest is sequential: models are built, canonised and written in input
// order, so the same input always yields the same seq assignment.
type Engine struct {
	store          *store.Store
	logger         *zap.Logger
	clock          *Clock
	batchGen       BatchTokenGenerator
	maxCardinality int
	canonise       bool
}

// EngineOption allows configuration of engine parameters.
type EngineOption func(*Engine)

// WithClock replaces the engine's logical clock.
func WithClock(c *Clock) EngineOption {
	return func(e *Engine) {
		e.clock = c
	}
}

// WithBatchGenerator sets the source of batch tokens.
// Default: UUIDv7Generator.
func WithBatchGenerator(g BatchTokenGenerator) EngineOption {
	return func(e *Engine) {
		e.batchGen = g
	}
}

// WithMaxCardinality sets the carrier size limit.
// Default: 64 (DefaultMaxCardinality).
func WithMaxCardinality(n int) EngineOption {
	return func(e *Engine) {
		e.maxCardinality = n
	}
}

// WithCanonise turns canonical renaming of lattice-family structures on or
// off. Default: on.
func WithCanonise(on bool) EngineOption {
	return func(e *Engine) {
		e.canonise = on
	}
}

// New creates an Engine writing to s. A nil logger discards output.
func New(s *store.Store, logger *zap.Logger, opts ...EngineOption) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}

	e := &Engine{
		store:          s,
		logger:         logger,
		clock:          NewClock(),
		batchGen:       UUIDv7Generator{},
		maxCardinality: DefaultMaxCardinality,
		canonise:       true,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Resume creates an Engine whose clock continues after the largest seq
// already in the catalogue. Later options override the resumed clock.
func Resume(ctx context.Context, s *store.Store, logger *zap.Logger, opts ...EngineOption) (*Engine, error) {
	seq, err := s.MaxSeq(ctx)
	if err != nil {
		return nil, fmt.Errorf("resume engine: %w", err)
	}
	opts = append([]EngineOption{WithClock(NewClockAt(seq))}, opts...)
	return New(s, logger, opts...), nil
}

// Accepted describes one raw model that was catalogued.
type Accepted struct {
	Label       string `json:"label"`
	ModelID     string `json:"model_id"`
	Variant     string `json:"variant"`
	Cardinality int    `json:"cardinality"`

	// New is false when an identical presentation was already catalogued.
	New bool `json:"new"`
}

// Report summarizes one Ingest call.
type Report struct {
	Source   string      `json:"source"`
	Batch    string      `json:"batch"`
	Accepted []Accepted  `json:"accepted"`
	Rejected []Rejection `json:"rejected"`
}

// NewModels counts accepted models that were not catalogued before.
func (r *Report) NewModels() int {
	n := 0
	for _, a := range r.Accepted {
		if a.New {
			n++
		}
	}
	return n
}

// Ingest builds every raw model, canonises lattice-family structures and
// records the result with a sighting under a fresh batch token.
//
// Invalid models become Rejections in the report and never abort the batch.
// Storage errors and context cancellation do abort it; the partial report
// is returned with the error.
func (e *Engine) Ingest(ctx context.Context, source string, models []ir.RawModel) (*Report, error) {
	report := &Report{
		Source:   source,
		Batch:    e.batchGen.Generate(),
		Accepted: []Accepted{},
		Rejected: []Rejection{},
	}
	log := e.logger.With(zap.String("source", source), zap.String("batch", report.Batch))
	log.Info("ingest starting", zap.Int("models", len(models)))

	for _, raw := range models {
		if err := ctx.Err(); err != nil {
			log.Info("ingest cancelled",
				zap.Int("accepted", len(report.Accepted)),
				zap.Int("rejected", len(report.Rejected)),
			)
			return report, fmt.Errorf("ingest %s: %w", source, err)
		}

		s, rej := e.build(raw)
		if rej != nil {
			log.Info("model rejected",
				zap.String("label", rej.Label),
				zap.String("code", string(rej.Code)),
				zap.String("reason", rej.Message),
			)
			report.Rejected = append(report.Rejected, *rej)
			continue
		}

		acc, err := e.catalogue(ctx, s, report.Batch)
		if err != nil {
			log.Error("catalogue write failed", zap.String("label", raw.Label), zap.Error(err))
			return report, fmt.Errorf("ingest %s: %w", source, err)
		}
		report.Accepted = append(report.Accepted, acc)
	}

	log.Info("ingest finished",
		zap.Int("accepted", len(report.Accepted)),
		zap.Int("new", report.NewModels()),
		zap.Int("rejected", len(report.Rejected)),
	)
	return report, nil
}

// build classifies and validates one raw model.
func (e *Engine) build(raw ir.RawModel) (*algebra.Structure, *Rejection) {
	variant := algebra.Classify(raw.Operations.Names())

	if n := carrierSize(raw.Operations); n > e.maxCardinality {
		return nil, &Rejection{
			Label:   raw.Label,
			Code:    RejectTooLarge,
			Variant: variant.String(),
			Message: fmt.Sprintf("carrier has %d elements, limit is %d", n, e.maxCardinality),
		}
	}

	s, err := algebra.Build(raw.Label, raw.Operations)
	if err != nil {
		r := reject(raw.Label, variant, err)
		return nil, &r
	}

	if e.canonise && s.Variant().IsLatticeFamily() {
		if err := order.Canonise(s); err != nil {
			r := reject(raw.Label, variant, err)
			return nil, &r
		}
	}
	return s, nil
}

// catalogue writes the model record and its sighting.
func (e *Engine) catalogue(ctx context.Context, s *algebra.Structure, batch string) (Accepted, error) {
	id, err := s.ID()
	if err != nil {
		return Accepted{}, err
	}

	rec := ir.ModelRecord{
		ID:          id,
		Variant:     s.Variant().String(),
		Cardinality: s.Cardinality(),
		Symbols:     s.Symbols(),
		Tables:      s.IndexedTables(),
		ProofText:   s.ProofText(),
		Seq:         e.clock.Next(),
	}
	inserted, err := e.store.WriteModel(ctx, rec)
	if err != nil {
		return Accepted{}, err
	}

	sightingID, err := ir.SightingID(id, s.Label(), batch)
	if err != nil {
		return Accepted{}, err
	}
	_, err = e.store.WriteSighting(ctx, ir.Sighting{
		ID:      sightingID,
		ModelID: id,
		Label:   s.Label(),
		Batch:   batch,
		Seq:     e.clock.Next(),
	})
	if err != nil {
		return Accepted{}, err
	}

	e.logger.Debug("model catalogued",
		zap.String("label", s.Label()),
		zap.String("id", id),
		zap.String("variant", rec.Variant),
		zap.Bool("new", inserted),
	)

	return Accepted{
		Label:       s.Label(),
		ModelID:     id,
		Variant:     rec.Variant,
		Cardinality: rec.Cardinality,
		New:         inserted,
	}, nil
}

func carrierSize(ops ir.Operations) int {
	if len(ops) == 0 {
		return 0
	}
	return len(ops[0].Keys())
}
