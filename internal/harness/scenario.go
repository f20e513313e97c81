package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/roach88/rbin/internal/ir"
)

// Scenario defines a conformance test scenario: one finite model, what
// should happen to it, and what it should look like afterwards.
type Scenario struct {
	// Name uniquely identifies this scenario. It is also the model label
	// and the golden file name.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Variant forces a variant by name. If empty the variant is
	// classified from the operation names.
	Variant string `yaml:"variant,omitempty"`

	// Operations lists the tables in declaration order.
	Operations []OperationStep `yaml:"operations"`

	// Remap renames symbols before canonisation.
	Remap map[string]string `yaml:"remap,omitempty"`

	// Canonise renames a lattice-family structure to canonical symbols.
	Canonise bool `yaml:"canonise,omitempty"`

	// Ingest also pushes the model through the engine into an in-memory
	// catalogue and checks the engine agrees with the direct build.
	Ingest bool `yaml:"ingest,omitempty"`

	// Batch is the fixed batch token used when ingesting.
	// If empty, defaults to "test-batch-default".
	Batch string `yaml:"batch,omitempty"`

	Expect Expectation `yaml:"expect"`

	Assertions []Assertion `yaml:"assertions,omitempty"`
}

// OperationStep is one operation table. Exactly one of Binary and Unary
// must be set.
type OperationStep struct {
	Name   string                       `yaml:"name"`
	Binary map[string]map[string]string `yaml:"binary,omitempty"`
	Unary  map[string]string            `yaml:"unary,omitempty"`
}

// Expectation lists the expected outcome. Unset fields are not checked.
type Expectation struct {
	Valid     *bool      `yaml:"valid,omitempty"`
	Violation string     `yaml:"violation,omitempty"`
	Law       string     `yaml:"law,omitempty"`
	Variant   string     `yaml:"variant,omitempty"`
	Symbols   []string   `yaml:"symbols,omitempty"`
	Hasse     [][]string `yaml:"hasse,omitempty"`
	ProofText string     `yaml:"proof_text,omitempty"`
}

// Assertion checks one fact about the built structure.
type Assertion struct {
	// Type selects the check: apply, above, below, rank or diagnose.
	Type string `yaml:"type"`

	// Op and Args name the operation application (apply).
	Op   string   `yaml:"op,omitempty"`
	Args []string `yaml:"args,omitempty"`

	// Result is the expected application result (apply).
	Result string `yaml:"result,omitempty"`

	// Element is the element whose neighbours are checked (above, below).
	Element string `yaml:"element,omitempty"`

	// Expect is the expected list (above, below, rank, diagnose).
	Expect []string `yaml:"expect,omitempty"`
}

// Assertion type constants.
const (
	AssertApply    = "apply"
	AssertAbove    = "above"
	AssertBelow    = "below"
	AssertRank     = "rank"
	AssertDiagnose = "diagnose"
)

// RawModel converts the scenario's tables to the input contract.
func (s *Scenario) RawModel() ir.RawModel {
	ops := make(ir.Operations, 0, len(s.Operations))
	for _, step := range s.Operations {
		if step.Unary != nil {
			ops = append(ops, ir.Unary(step.Name, ir.UnaryTable(step.Unary)))
		} else {
			ops = append(ops, ir.Binary(step.Name, ir.CayleyTable(step.Binary)))
		}
	}
	return ir.RawModel{Label: s.Name, Operations: ops}
}

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario %s: %w", path, err)
	}

	return &scenario, nil
}

// LoadScenarios loads every *.yaml and *.yml file in dir, sorted by path.
// Scenario names must be unique.
func LoadScenarios(dir string) ([]*Scenario, error) {
	var paths []string
	for _, pattern := range []string{"*.yaml", "*.yml"} {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return nil, fmt.Errorf("glob scenarios: %w", err)
		}
		paths = append(paths, matches...)
	}
	sort.Strings(paths)

	scenarios := make([]*Scenario, 0, len(paths))
	seen := make(map[string]string, len(paths))
	for _, path := range paths {
		s, err := LoadScenario(path)
		if err != nil {
			return nil, err
		}
		if prev, dup := seen[s.Name]; dup {
			return nil, fmt.Errorf("duplicate scenario name %q in %s and %s", s.Name, prev, path)
		}
		seen[s.Name] = path
		scenarios = append(scenarios, s)
	}
	return scenarios, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if len(s.Operations) == 0 {
		return fmt.Errorf("operations list is required and must be non-empty")
	}

	for i, step := range s.Operations {
		if step.Name == "" {
			return fmt.Errorf("operations[%d]: name is required", i)
		}
		if (step.Binary == nil) == (step.Unary == nil) {
			return fmt.Errorf("operations[%d] (%s): exactly one of binary and unary is required", i, step.Name)
		}
	}

	if v := s.Expect.Valid; v != nil && *v && s.Expect.Violation != "" {
		return fmt.Errorf("expect: valid and violation are mutually exclusive")
	}

	for i, a := range s.Assertions {
		if err := validateAssertion(i, &a); err != nil {
			return err
		}
	}

	return nil
}

// validateAssertion validates a single assertion based on its type.
func validateAssertion(index int, a *Assertion) error {
	switch a.Type {
	case "":
		return fmt.Errorf("assertions[%d]: type is required", index)
	case AssertApply:
		if a.Op == "" {
			return fmt.Errorf("assertions[%d]: op is required for apply", index)
		}
		if len(a.Args) != 1 && len(a.Args) != 2 {
			return fmt.Errorf("assertions[%d]: apply takes one or two args, got %d", index, len(a.Args))
		}
		if a.Result == "" {
			return fmt.Errorf("assertions[%d]: result is required for apply", index)
		}
	case AssertAbove, AssertBelow:
		if a.Element == "" {
			return fmt.Errorf("assertions[%d]: element is required for %s", index, a.Type)
		}
	case AssertRank, AssertDiagnose:
	default:
		return fmt.Errorf("assertions[%d]: unknown assertion type %q", index, a.Type)
	}
	return nil
}
