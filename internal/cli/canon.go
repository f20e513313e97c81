package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/rbin/internal/ir"
	"github.com/roach88/rbin/internal/order"
)

// CanonModel is the canonical form of one lattice-family model.
type CanonModel struct {
	Name    string           `json:"name"`
	Variant string           `json:"variant"`
	ID      string           `json:"id"`
	Symbols []string         `json:"symbols"`
	Tables  ir.IndexedTables `json:"tables"`
	Hasse   []order.Edge     `json:"hasse"`
}

// CanonResult holds the output of a canon run. Models outside the lattice
// family are listed under Skipped.
type CanonResult struct {
	Models  []CanonModel `json:"models"`
	Skipped []string     `json:"skipped,omitempty"`
}

// WriteText prints each canonical model with its indexed tables and
// covering pairs.
func (r *CanonResult) WriteText(w io.Writer) error {
	for i, m := range r.Models {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s (%s) %s\n", m.Name, m.Variant, shortID(m.ID))
		fmt.Fprintf(w, "  symbols: %s\n", strings.Join(m.Symbols, " "))
		for _, t := range m.Tables {
			if t.Table.Unary != nil {
				fmt.Fprintf(w, "  %s: %v\n", t.Name, t.Table.Unary)
				continue
			}
			fmt.Fprintf(w, "  %s: %v\n", t.Name, t.Table.Binary)
		}
		for _, e := range m.Hasse {
			fmt.Fprintf(w, "  %s > %s\n", e.Upper, e.Lower)
		}
	}
	for _, name := range r.Skipped {
		fmt.Fprintf(w, "- %s: not a lattice, skipped\n", name)
	}
	return nil
}

// NewCanonCommand creates the canon command.
func NewCanonCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "canon <models-dir>",
		Short: "Print the canonical form of lattice-family models",
		Long: `Rename the elements of every lattice-family model in canonical order
(⟘, a, b, ..., ⟙) and print its indexed tables and Hasse diagram.

Models of other variants are skipped. An invalid model is a failure.

Exit codes:
  0 - All models canonised or skipped
  1 - One or more models invalid
  2 - Command error`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCanon(rootOpts, args[0], cmd)
		},
	}
	return cmd
}

func runCanon(opts *RootOptions, modelsDir string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	loaded, loadErrs := LoadModels(modelsDir, LoadModeFailFast)
	if loaded == nil || len(loadErrs) > 0 {
		return outputLoadFailure(formatter, loadErrs)
	}

	result := &CanonResult{Models: []CanonModel{}}
	for _, spec := range loaded.Models {
		s, err := buildModel(spec)
		if err != nil {
			if err := formatter.Error(ErrCodeInvalidModel, fmt.Sprintf("%s: %v", spec.Name, err), nil); err != nil {
				return err
			}
			return WrapExitError(ExitFailure, "invalid model "+spec.Name, err)
		}
		if !s.Variant().IsLatticeFamily() {
			result.Skipped = append(result.Skipped, spec.Name)
			continue
		}

		if err := order.Canonise(s); err != nil {
			return WrapExitError(ExitCommandError, "canonise "+spec.Name, err)
		}
		edges, err := order.Hasse(s)
		if err != nil {
			return WrapExitError(ExitCommandError, "hasse "+spec.Name, err)
		}
		id, err := s.ID()
		if err != nil {
			return WrapExitError(ExitCommandError, "id "+spec.Name, err)
		}
		result.Models = append(result.Models, CanonModel{
			Name:    spec.Name,
			Variant: s.Variant().String(),
			ID:      id,
			Symbols: s.Symbols(),
			Tables:  s.IndexedTables(),
			Hasse:   edges,
		})
	}

	return formatter.Success(result)
}
