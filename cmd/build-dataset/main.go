// Command build-dataset regenerates a dataset file from a JSON export.
//
// Usage:
//
//	go run ./cmd/build-dataset --in zipcodes.json --out ~/.uszipcode/simple_db.sqlite
//
// The input is a JSON array of records keyed by column name, the format
// printed by the uszipcode search commands. The new file is validated
// before the command reports success.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/andreiashu/uszipcode"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		in, out       string
		comprehensive bool
		minRecords    int
		skipKnown     bool
	)
	cmd := &cobra.Command{
		Use:          "build-dataset",
		Short:        "Regenerate a uszipcode dataset file from a JSON export",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			variant := uszipcode.SimpleDataset
			if comprehensive {
				variant = uszipcode.ComprehensiveDataset
			}
			if out == "" {
				path, err := uszipcode.DefaultDBFilePath(variant)
				if err != nil {
					return err
				}
				out = path
			}
			return build(cmd, in, out, variant, minRecords, skipKnown)
		},
	}
	cmd.Flags().StringVar(&in, "in", "", "JSON export to read (required)")
	cmd.Flags().StringVar(&out, "out", "", "dataset file to write (default ~/.uszipcode/<variant>_db.sqlite)")
	cmd.Flags().BoolVar(&comprehensive, "comprehensive", false, "write the comprehensive table")
	cmd.Flags().IntVar(&minRecords, "min-records", uszipcode.MinDatasetRecords, "fail when fewer records are written")
	cmd.Flags().BoolVar(&skipKnown, "skip-known", false, "skip the well-known zipcode checks")
	_ = cmd.MarkFlagRequired("in")
	return cmd
}

func build(cmd *cobra.Command, in, out string, variant uszipcode.Variant, minRecords int, skipKnown bool) error {
	w := cmd.OutOrStdout()
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelWarn}))

	f, err := os.Open(in)
	if err != nil {
		return err
	}
	defer f.Close()
	records, err := uszipcode.ReadRecords(f)
	if err != nil {
		return fmt.Errorf("reading %s: %w", in, err)
	}
	fmt.Fprintf(w, "Read %d records from %s\n", len(records), in)

	if err := uszipcode.BuildDataset(out, variant, records); err != nil {
		return err
	}
	fmt.Fprintf(w, "Wrote %s\n", out)

	known := uszipcode.KnownZipcodes
	if skipKnown {
		known = nil
	}
	err = uszipcode.WithSearchEngine(func(e *uszipcode.SearchEngine) error {
		return e.ValidateDataset(minRecords, known)
	}, uszipcode.WithDBFilePath(out), uszipcode.WithLogger(logger), withVariant(variant))
	if err != nil {
		return fmt.Errorf("validating %s: %w", out, err)
	}
	fmt.Fprintln(w, "Dataset validated.")
	return nil
}

func withVariant(v uszipcode.Variant) uszipcode.Option {
	if v == uszipcode.ComprehensiveDataset {
		return uszipcode.WithComprehensive()
	}
	return func(*uszipcode.Config) {}
}
