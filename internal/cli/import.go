package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/roach88/rbin/internal/engine"
	"github.com/roach88/rbin/internal/parser"
	"github.com/roach88/rbin/internal/store"
)

// ImportOptions holds flags for the import command.
type ImportOptions struct {
	*RootOptions
	DBPath string
}

// ImportResult wraps an ingest report for text output.
type ImportResult struct {
	*engine.Report
}

// WriteText prints the batch summary and every rejection.
func (r ImportResult) WriteText(w io.Writer) error {
	fmt.Fprintf(w, "Imported %s as batch %s\n", r.Source, r.Batch)
	fmt.Fprintf(w, "  %d accepted (%d new), %d rejected\n", len(r.Accepted), r.NewModels(), len(r.Rejected))
	for _, a := range r.Accepted {
		mark := "="
		if a.New {
			mark = "+"
		}
		fmt.Fprintf(w, "  %s %s: %s, %d elements, %s\n", mark, a.Label, a.Variant, a.Cardinality, shortID(a.ModelID))
	}
	for _, rej := range r.Rejected {
		fmt.Fprintf(w, "  ✗ %s: %s: %s\n", rej.Label, rej.Code, rej.Message)
	}
	return nil
}

// NewImportCommand creates the import command.
func NewImportCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ImportOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "import <reply-file>",
		Short: "Catalogue the models found in a reasoner reply",
		Long: `Parse the models out of a reasoner server log and catalogue them.

Every model is classified, validated and, for the lattice family,
canonised before it is stored. Invalid models are reported as
rejections and do not stop the import. Importing the same model twice
records a second sighting of the existing entry.

Exit codes:
  0 - Reply imported (rejections included)
  1 - The reply holds no model
  2 - Command error (file not found, database errors, etc.)`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.DBPath, "db", "", "path to the catalogue database (default from config)")

	return cmd
}

func runImport(opts *ImportOptions, replyPath string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)
	logger := opts.logger()
	cfg := opts.config()

	f, err := os.Open(replyPath)
	if err != nil {
		if os.IsNotExist(err) {
			return NewExitError(ExitCommandError, fmt.Sprintf("reply file not found: %s", replyPath))
		}
		return WrapExitError(ExitCommandError, "open reply", err)
	}
	defer f.Close()

	models, err := parser.ParseReply(f)
	if errors.Is(err, parser.ErrNoReply) {
		if err := formatter.Error(ErrCodeNoReply, fmt.Sprintf("no model in %s", replyPath), nil); err != nil {
			return err
		}
		return WrapExitError(ExitFailure, "no model in reply", err)
	}
	if err != nil {
		return WrapExitError(ExitCommandError, "parse reply", err)
	}
	logger.Debug("parsed reply", zap.String("reply", replyPath), zap.Int("models", len(models)))

	dbPath := opts.dbPath(opts.DBPath)
	st, err := store.Open(dbPath)
	if err != nil {
		if err := formatter.Error(ErrCodeStore, fmt.Sprintf("open catalogue %s: %v", dbPath, err), nil); err != nil {
			return err
		}
		return WrapExitError(ExitCommandError, "open catalogue", err)
	}
	defer st.Close()

	eng, err := engine.Resume(cmd.Context(), st, logger,
		engine.WithMaxCardinality(cfg.Engine.MaxCardinality),
		engine.WithCanonise(cfg.Engine.Canonise),
	)
	if err != nil {
		return WrapExitError(ExitCommandError, "resume engine", err)
	}

	report, err := eng.Ingest(cmd.Context(), filepath.Base(replyPath), models)
	if err != nil {
		logger.Error("import aborted", zap.String("reply", replyPath), zap.Error(err))
		return WrapExitError(ExitCommandError, "import", err)
	}

	return formatter.Success(ImportResult{Report: report})
}
