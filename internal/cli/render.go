package cli

import (
	"fmt"
	"io"
	"slices"

	"github.com/spf13/cobra"

	"github.com/roach88/rbin/internal/algebra"
	"github.com/roach88/rbin/internal/order"
	"github.com/roach88/rbin/internal/render"
)

// Render targets accepted by --as.
const (
	AsProver9  = "prover9"
	AsDOT      = "dot"
	AsLaTeX    = "latex"
	AsMarkdown = "markdown"
	AsJSON     = "json"
)

// ValidTargets lists the accepted --as values.
var ValidTargets = []string{AsProver9, AsDOT, AsLaTeX, AsMarkdown, AsJSON}

// RenderOptions holds flags for the render command.
type RenderOptions struct {
	*RootOptions
	As     string
	Op     string // operation for latex and markdown
	Symbol string // LaTeX operator symbol
	Model  string // render only this model
	Canon  bool   // canonise lattice-family models first
}

// NewRenderCommand creates the render command.
func NewRenderCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RenderOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "render <models-dir>",
		Short: "Render models as proof text, Hasse diagrams or tables",
		Long: `Render valid models in one of several text formats:

  prover9   one "x op y = z." line per table cell
  dot       Graphviz graph of the Hasse diagram (lattice family only)
  latex     LaTeX Cayley table of --op (default mult)
  markdown  Markdown table of --op (default: first operation)
  json      structure document with symbols, indexed tables and ID

Output is written as-is; --format does not apply.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.As, "as", AsProver9, "output target (prover9|dot|latex|markdown|json)")
	cmd.Flags().StringVar(&opts.Op, "op", "", "operation to tabulate")
	cmd.Flags().StringVar(&opts.Symbol, "symbol", render.DefaultMultSymbol, "LaTeX operator symbol")
	cmd.Flags().StringVar(&opts.Model, "model", "", "render only the named model")
	cmd.Flags().BoolVar(&opts.Canon, "canon", false, "canonise lattice-family models first")

	return cmd
}

func runRender(opts *RenderOptions, modelsDir string, cmd *cobra.Command) error {
	if !slices.Contains(ValidTargets, opts.As) {
		return NewExitError(ExitCommandError, fmt.Sprintf("invalid target %q: must be one of %v", opts.As, ValidTargets))
	}

	loaded, loadErrs := LoadModels(modelsDir, LoadModeFailFast)
	if loaded == nil || len(loadErrs) > 0 {
		return outputLoadFailure(opts.formatter(cmd), loadErrs)
	}

	w := cmd.OutOrStdout()
	rendered := 0
	for _, spec := range loaded.Models {
		if opts.Model != "" && spec.Name != opts.Model {
			continue
		}
		s, err := buildModel(spec)
		if err != nil {
			return WrapExitError(ExitFailure, "invalid model "+spec.Name, err)
		}
		if opts.Canon && s.Variant().IsLatticeFamily() {
			if err := order.Canonise(s); err != nil {
				return WrapExitError(ExitCommandError, "canonise "+spec.Name, err)
			}
		}
		if rendered > 0 && opts.As != AsJSON {
			fmt.Fprintln(w)
		}
		if err := renderOne(w, s, opts); err != nil {
			return WrapExitError(ExitCommandError, "render "+spec.Name, err)
		}
		rendered++
	}

	if rendered == 0 && opts.Model != "" {
		return NewExitError(ExitCommandError, fmt.Sprintf("model not found: %s", opts.Model))
	}
	return nil
}

func renderOne(w io.Writer, s *algebra.Structure, opts *RenderOptions) error {
	switch opts.As {
	case AsProver9:
		_, err := io.WriteString(w, s.ProofText())
		return err
	case AsDOT:
		edges, err := order.Hasse(s)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, render.DOT(edges))
		return err
	case AsLaTeX:
		op := opts.Op
		if op == "" {
			op = "mult"
		}
		out, err := render.LaTeXTable(s, op, opts.Symbol)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, out)
		return err
	case AsMarkdown:
		op := opts.Op
		if op == "" {
			op = s.Operations().Names()[0]
		}
		out, err := render.Markdown(s, op)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, out)
		return err
	case AsJSON:
		out, err := render.JSON(s, s.Has("meet") && s.Has("join"))
		if err != nil {
			return err
		}
		_, err = w.Write(out)
		return err
	}
	return fmt.Errorf("unknown target %q", opts.As)
}
