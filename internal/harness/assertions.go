package harness

import (
	"fmt"
	"slices"
	"strings"

	"github.com/roach88/rbin/internal/algebra"
	"github.com/roach88/rbin/internal/ir"
	"github.com/roach88/rbin/internal/order"
)

// AssertionError is returned when an expectation or assertion fails.
type AssertionError struct {
	Type     string // Expectation field or assertion type
	Expected string
	Actual   string
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	return fmt.Sprintf("%s: expected %s, got %s", e.Type, e.Expected, e.Actual)
}

func mismatch(kind string, expected, actual any) *AssertionError {
	return &AssertionError{
		Type:     kind,
		Expected: fmt.Sprintf("%q", expected),
		Actual:   fmt.Sprintf("%q", actual),
	}
}

// checkExpect compares the snapshot with the expect clause.
func checkExpect(exp Expectation, result *Result) {
	snap := result.Snapshot
	fail := func(err *AssertionError) { result.AddError(err.Error()) }

	if exp.Valid != nil && *exp.Valid != snap.Valid() {
		actual := "valid structure"
		if !snap.Valid() {
			actual = "violation " + snap.Violation
		}
		fail(&AssertionError{Type: "valid", Expected: fmt.Sprint(*exp.Valid), Actual: actual})
	}
	if exp.Violation != "" && exp.Violation != snap.Violation {
		fail(mismatch("violation", exp.Violation, snap.Violation))
	}
	if exp.Law != "" && exp.Law != snap.Law {
		fail(mismatch("law", exp.Law, snap.Law))
	}
	if exp.Variant != "" && exp.Variant != snap.Variant {
		fail(mismatch("variant", exp.Variant, snap.Variant))
	}
	if exp.Symbols != nil && !slices.Equal(exp.Symbols, snap.Symbols) {
		fail(mismatch("symbols", exp.Symbols, snap.Symbols))
	}
	if exp.Hasse != nil && !sameEdges(exp.Hasse, snap.Hasse) {
		fail(mismatch("hasse", exp.Hasse, snap.Hasse))
	}
	if exp.ProofText != "" && exp.ProofText != snap.ProofText {
		fail(mismatch("proof_text", exp.ProofText, snap.ProofText))
	}
}

func sameEdges(a, b [][]string) bool {
	return slices.EqualFunc(a, b, func(x, y []string) bool { return slices.Equal(x, y) })
}

// runAssertion evaluates one assertion. Only diagnose runs on invalid
// structures; the others need s.
func runAssertion(a Assertion, s *algebra.Structure, raw ir.RawModel, variant algebra.Variant) error {
	if a.Type == AssertDiagnose {
		return assertDiagnose(a, raw, variant)
	}
	if s == nil {
		return &AssertionError{Type: a.Type, Expected: "a valid structure", Actual: "a violation"}
	}

	switch a.Type {
	case AssertApply:
		return assertApply(a, s)
	case AssertAbove:
		return assertRelation(a, s, order.More)
	case AssertBelow:
		return assertRelation(a, s, order.Less)
	case AssertRank:
		return assertRank(a, s)
	default:
		return fmt.Errorf("unknown assertion type %q", a.Type)
	}
}

func assertApply(a Assertion, s *algebra.Structure) error {
	var (
		got string
		ok  bool
	)
	if len(a.Args) == 1 {
		got, ok = s.Apply1(a.Op, a.Args[0])
	} else {
		got, ok = s.Apply2(a.Op, a.Args[0], a.Args[1])
	}
	if !ok {
		return &AssertionError{
			Type:     AssertApply,
			Expected: fmt.Sprintf("%s(%s) = %s", a.Op, strings.Join(a.Args, ", "), a.Result),
			Actual:   "undefined",
		}
	}
	if got != a.Result {
		return &AssertionError{
			Type:     AssertApply,
			Expected: fmt.Sprintf("%s(%s) = %s", a.Op, strings.Join(a.Args, ", "), a.Result),
			Actual:   got,
		}
	}
	return nil
}

func assertRelation(a Assertion, s *algebra.Structure, rel func(*algebra.Structure) (map[string][]string, error)) error {
	m, err := rel(s)
	if err != nil {
		return err
	}
	got, ok := m[a.Element]
	if !ok {
		return &AssertionError{Type: a.Type, Expected: "element " + a.Element, Actual: "not in carrier"}
	}
	if !slices.Equal(got, a.Expect) {
		return mismatch(a.Type, a.Expect, got)
	}
	return nil
}

func assertRank(a Assertion, s *algebra.Structure) error {
	got, err := order.Rank(s)
	if err != nil {
		return err
	}
	if !slices.Equal(got, a.Expect) {
		return mismatch(AssertRank, a.Expect, got)
	}
	return nil
}

func assertDiagnose(a Assertion, raw ir.RawModel, variant algebra.Variant) error {
	violations, err := algebra.Diagnose(raw.Label, raw.Operations, variant)
	if err != nil {
		return err
	}
	laws := make([]string, len(violations))
	for i, v := range violations {
		laws[i] = v.Law
	}
	if !slices.Equal(laws, a.Expect) {
		return mismatch(AssertDiagnose, a.Expect, laws)
	}
	return nil
}
