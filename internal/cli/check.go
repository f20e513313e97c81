package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/roach88/rbin/internal/algebra"
	"github.com/roach88/rbin/internal/compiler"
)

// CheckOptions holds flags for the check command.
type CheckOptions struct {
	*RootOptions
	All bool // report every failing law instead of the first
}

// Violation is one failing law of a checked model.
type Violation struct {
	Law     string `json:"law,omitempty"`
	Message string `json:"message"`
}

// ModelCheck is the outcome of checking one model.
type ModelCheck struct {
	Name        string      `json:"name"`
	Variant     string      `json:"variant"`
	Valid       bool        `json:"valid"`
	Cardinality int         `json:"cardinality,omitempty"`
	ID          string      `json:"id,omitempty"`
	Violations  []Violation `json:"violations,omitempty"`
}

// CheckResult holds the outcome of a check run.
type CheckResult struct {
	Models     []ModelCheck `json:"models"`
	LoadErrors []string     `json:"load_errors,omitempty"`
	Valid      int          `json:"valid"`
	Invalid    int          `json:"invalid"`
}

// WriteText prints one line per model and a summary.
func (r *CheckResult) WriteText(w io.Writer) error {
	for _, e := range r.LoadErrors {
		fmt.Fprintf(w, "✗ %s\n", e)
	}
	for _, m := range r.Models {
		if m.Valid {
			fmt.Fprintf(w, "✓ %s: %s, %d elements, %s\n", m.Name, m.Variant, m.Cardinality, shortID(m.ID))
			continue
		}
		fmt.Fprintf(w, "✗ %s: %s\n", m.Name, m.Variant)
		for _, v := range m.Violations {
			if v.Law != "" {
				fmt.Fprintf(w, "  %s [%s]\n", v.Message, v.Law)
			} else {
				fmt.Fprintf(w, "  %s\n", v.Message)
			}
		}
	}
	fmt.Fprintf(w, "\n%d valid, %d invalid\n", r.Valid, r.Invalid+len(r.LoadErrors))
	return nil
}

func (r *CheckResult) failed() bool {
	return r.Invalid > 0 || len(r.LoadErrors) > 0
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CheckOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "check <models-dir>",
		Short: "Validate models against the axioms of their variant",
		Long: `Compile every CUE model in a directory, classify it by its operation
names (or its declared variant) and check the variant's axioms.

By default each model reports the first failing law. With --all every
failing law is reported.

Exit codes:
  0 - All models valid
  1 - One or more models invalid
  2 - Command error (directory not found, CUE errors, etc.)`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(opts, args[0], cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.All, "all", false, "report every failing law")

	return cmd
}

func runCheck(opts *CheckOptions, modelsDir string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)
	logger := opts.logger()

	mode := LoadModeFailFast
	if opts.All {
		mode = LoadModeCollectAll
	}
	loaded, loadErrs := LoadModels(modelsDir, mode)
	if loaded == nil {
		return outputLoadFailure(formatter, loadErrs)
	}
	logger.Debug("loaded models", zap.String("dir", modelsDir), zap.Int("files", loaded.FileCount), zap.Int("models", len(loaded.Models)))

	result := &CheckResult{Models: make([]ModelCheck, 0, len(loaded.Models))}
	for _, err := range loadErrs {
		result.LoadErrors = append(result.LoadErrors, err.Error())
	}

	for _, spec := range loaded.Models {
		check, err := checkModel(spec, opts.All)
		if err != nil {
			return WrapExitError(ExitCommandError, fmt.Sprintf("check %s", spec.Name), err)
		}
		logger.Debug("model checked",
			zap.String("model", check.Name),
			zap.String("variant", check.Variant),
			zap.Bool("valid", check.Valid))
		result.Models = append(result.Models, check)
		if check.Valid {
			result.Valid++
		} else {
			result.Invalid++
		}
	}

	if result.failed() {
		return formatter.Failure(result, ErrCodeInvalidModel,
			fmt.Sprintf("%d model(s) invalid", result.Invalid+len(result.LoadErrors)))
	}
	return formatter.Success(result)
}

// checkModel builds one model. Axiom and table errors make the model
// invalid; any other error is returned.
func checkModel(spec *compiler.ModelSpec, all bool) (ModelCheck, error) {
	check := ModelCheck{Name: spec.Name}
	variant, err := modelVariant(spec)
	if err != nil {
		return check, err
	}
	check.Variant = variant.String()
	raw := spec.RawModel()

	if all {
		found, err := algebra.Diagnose(raw.Label, raw.Operations, variant)
		if err != nil && !errors.Is(err, algebra.ErrMalformed) {
			return check, err
		}
		if err != nil {
			check.Violations = []Violation{{Message: err.Error()}}
			return check, nil
		}
		for _, v := range found {
			check.Violations = append(check.Violations, Violation{Law: v.Law, Message: v.Message})
		}
		if len(found) > 0 {
			return check, nil
		}
	}

	s, err := algebra.New(raw.Label, raw.Operations, variant)
	switch {
	case err == nil:
	case errors.Is(err, algebra.ErrAxiomViolation), errors.Is(err, algebra.ErrMalformed):
		v := Violation{Message: err.Error()}
		if ae, ok := algebra.IsAxiomError(err); ok {
			v.Law = ae.Law
		}
		check.Violations = []Violation{v}
		return check, nil
	default:
		return check, err
	}

	check.Valid = true
	check.Cardinality = s.Cardinality()
	check.ID, err = s.ID()
	return check, err
}

// modelVariant returns the declared variant of spec, or the variant its
// operation names classify as.
func modelVariant(spec *compiler.ModelSpec) (algebra.Variant, error) {
	if spec.Variant == "" {
		return algebra.Classify(spec.Operations.Names()), nil
	}
	return algebra.ParseVariant(spec.Variant)
}

// buildModel builds a structure from a compiled model.
func buildModel(spec *compiler.ModelSpec) (*algebra.Structure, error) {
	variant, err := modelVariant(spec)
	if err != nil {
		return nil, err
	}
	raw := spec.RawModel()
	return algebra.New(raw.Label, raw.Operations, variant)
}

// outputLoadFailure reports a directory that could not be loaded.
func outputLoadFailure(formatter *OutputFormatter, errs []error) error {
	code, message := ErrCodeGeneric, "load failed"
	if len(errs) > 0 {
		message = errs[0].Error()
		var loadErr *LoadError
		if errors.As(errs[0], &loadErr) {
			code, message = loadErr.Code, loadErr.Message
		}
	}
	if err := formatter.Error(code, message, nil); err != nil {
		return err
	}
	return NewExitError(ExitCommandError, message)
}

func shortID(id string) string {
	if len(id) > 12 {
		return id[:12]
	}
	return id
}
