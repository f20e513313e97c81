package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/hashicorp/go-set/v3"
	"github.com/spf13/cobra"

	"github.com/roach88/rbin/internal/algebra"
	"github.com/roach88/rbin/internal/ir"
	"github.com/roach88/rbin/internal/store"
)

// CatalogOptions holds flags for the catalog command.
type CatalogOptions struct {
	*RootOptions
	DBPath  string
	Variant string
	Batch   string
}

// CatalogEntry is one catalogued model with the labels it was seen under.
type CatalogEntry struct {
	ID          string   `json:"id"`
	Variant     string   `json:"variant"`
	Cardinality int      `json:"cardinality"`
	Symbols     []string `json:"symbols"`
	Labels      []string `json:"labels"`
	Sightings   int      `json:"sightings"`
}

// CatalogResult lists catalogued models in catalogue order.
type CatalogResult struct {
	Models []CatalogEntry `json:"models"`
}

// WriteText prints one line per model.
func (r *CatalogResult) WriteText(w io.Writer) error {
	if len(r.Models) == 0 {
		fmt.Fprintln(w, "No models catalogued.")
		return nil
	}
	for _, m := range r.Models {
		fmt.Fprintf(w, "%s  %-22s %3d  %s  (%d sighting(s): %s)\n",
			shortID(m.ID), m.Variant, m.Cardinality,
			strings.Join(m.Symbols, " "), m.Sightings, strings.Join(m.Labels, ", "))
	}
	return nil
}

// NewCatalogCommand creates the catalog command.
func NewCatalogCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CatalogOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List catalogued models",
		Long: `List the models in the catalogue in the order they were first seen,
optionally restricted to one variant or to the models sighted in one
import batch (the token printed by "rbin import").`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCatalog(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.DBPath, "db", "", "path to the catalogue database (default from config)")
	cmd.Flags().StringVar(&opts.Variant, "variant", "",
		"only list models of this variant ("+strings.Join(algebra.VariantNames(), ", ")+")")
	cmd.Flags().StringVar(&opts.Batch, "batch", "", "only list models sighted in this import batch")

	return cmd
}

func runCatalog(opts *CatalogOptions, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	if opts.Variant != "" {
		if _, err := algebra.ParseVariant(opts.Variant); err != nil {
			return WrapExitError(ExitCommandError, "invalid --variant", err)
		}
	}

	dbPath := opts.dbPath(opts.DBPath)
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		if err := formatter.Error(ErrCodeNotFound, fmt.Sprintf("database not found: %s", dbPath), nil); err != nil {
			return err
		}
		return NewExitError(ExitCommandError, fmt.Sprintf("database not found: %s", dbPath))
	}

	st, err := store.Open(dbPath)
	if err != nil {
		return WrapExitError(ExitCommandError, "open catalogue", err)
	}
	defer st.Close()

	ctx := cmd.Context()
	records, err := st.ListModels(ctx, opts.Variant)
	if err != nil {
		return WrapExitError(ExitCommandError, "list models", err)
	}

	if opts.Batch != "" {
		records, err = inBatch(ctx, st, opts.Batch, records)
		if err != nil {
			return WrapExitError(ExitCommandError, "read batch", err)
		}
	}

	result := &CatalogResult{Models: make([]CatalogEntry, 0, len(records))}
	for _, rec := range records {
		sightings, err := st.ReadSightings(ctx, rec.ID)
		if err != nil {
			return WrapExitError(ExitCommandError, "read sightings", err)
		}
		labels := make([]string, 0, len(sightings))
		for _, s := range sightings {
			labels = append(labels, s.Label)
		}
		result.Models = append(result.Models, CatalogEntry{
			ID:          rec.ID,
			Variant:     rec.Variant,
			Cardinality: rec.Cardinality,
			Symbols:     rec.Symbols,
			Labels:      labels,
			Sightings:   len(sightings),
		})
	}

	return formatter.Success(result)
}

// inBatch keeps the records sighted under batch, in their original order.
func inBatch(ctx context.Context, st *store.Store, batch string, records []ir.ModelRecord) ([]ir.ModelRecord, error) {
	sightings, err := st.ReadBatch(ctx, batch)
	if err != nil {
		return nil, err
	}
	seen := set.New[string](len(sightings))
	for _, sg := range sightings {
		seen.Insert(sg.ModelID)
	}
	return slices.DeleteFunc(records, func(rec ir.ModelRecord) bool {
		return !seen.Contains(rec.ID)
	}), nil
}
