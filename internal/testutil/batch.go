package testutil

// FixedBatchGenerator returns the same batch token on every call, so that
// repeated ingestion of a scenario produces identical sighting IDs.
//
// Thread-safety: stateless and safe for concurrent use.
type FixedBatchGenerator struct {
	token string
}

// NewFixedBatchGenerator creates a fixed batch token generator.
// An empty token becomes "test-batch-default".
func NewFixedBatchGenerator(token string) *FixedBatchGenerator {
	if token == "" {
		token = "test-batch-default"
	}
	return &FixedBatchGenerator{token: token}
}

// Generate returns the fixed token.
func (g *FixedBatchGenerator) Generate() string {
	return g.token
}
