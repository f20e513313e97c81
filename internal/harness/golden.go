package harness

import (
	"fmt"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/roach88/rbin/internal/ir"
)

// GoldenDir holds one <scenario>.golden file per scenario, relative to the
// test's package directory. Refresh with: go test ./internal/harness -update
const GoldenDir = "testdata/golden"

// MarshalSnapshot encodes a snapshot as canonical JSON, the byte format of
// golden files.
func MarshalSnapshot(s *Snapshot) ([]byte, error) {
	data, err := ir.MarshalCanonical(s.canonicalMap())
	if err != nil {
		return nil, fmt.Errorf("marshal snapshot %s: %w", s.Scenario, err)
	}
	return data, nil
}

// RunWithGolden runs scenario and fails t if its snapshot differs from the
// golden file. The returned error covers run and encoding failures only.
func RunWithGolden(t *testing.T, scenario *Scenario) (*Result, error) {
	t.Helper()

	result, err := Run(scenario)
	if err != nil {
		return nil, err
	}
	data, err := MarshalSnapshot(result.Snapshot)
	if err != nil {
		return nil, err
	}

	goldie.New(t, goldie.WithFixtureDir(GoldenDir), goldie.WithNameSuffix(".golden")).
		Assert(t, scenario.Name, data)
	return result, nil
}
