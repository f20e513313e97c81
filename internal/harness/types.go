package harness

import (
	"github.com/roach88/rbin/internal/ir"
)

// Snapshot is the observable outcome of a scenario, compared against
// golden files. Invalid scenarios only carry Violation, Law and Variant.
type Snapshot struct {
	Scenario  string
	Variant   string
	Symbols   []string
	Tables    ir.IndexedTables
	Hasse     [][]string
	ProofText string
	Violation string
	Law       string
}

// Valid reports whether the structure was built.
func (s *Snapshot) Valid() bool {
	return s.Violation == ""
}

// canonicalMap converts the snapshot to plain containers for
// ir.MarshalCanonical. Empty fields are left out.
func (s *Snapshot) canonicalMap() map[string]any {
	m := map[string]any{
		"scenario": s.Scenario,
		"valid":    s.Valid(),
	}
	if s.Variant != "" {
		m["variant"] = s.Variant
	}
	if s.Symbols != nil {
		m["symbols"] = s.Symbols
	}
	if s.Tables != nil {
		m["tables"] = s.Tables.Object()
	}
	if s.Hasse != nil {
		edges := make([]any, len(s.Hasse))
		for i, e := range s.Hasse {
			edges[i] = e
		}
		m["hasse"] = edges
	}
	if s.ProofText != "" {
		m["proof_text"] = s.ProofText
	}
	if s.Violation != "" {
		m["violation"] = s.Violation
	}
	if s.Law != "" {
		m["law"] = s.Law
	}
	return m
}

// Result is the outcome of a scenario execution.
type Result struct {
	// Pass is true if every expectation and assertion held.
	Pass bool `json:"pass"`

	// Errors contains one message per failed expectation or assertion.
	Errors []string `json:"errors,omitempty"`

	// Snapshot is what the scenario produced.
	Snapshot *Snapshot `json:"-"`

	// ModelID is the structure ID of a valid scenario.
	ModelID string `json:"model_id,omitempty"`
}

// NewResult creates a new passing result.
func NewResult() *Result {
	return &Result{
		Pass:   true,
		Errors: []string{},
	}
}

// AddError records a failure and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}
