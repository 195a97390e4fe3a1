// Command uszipcode searches the US zipcode dataset from the command line.
//
// Usage:
//
//	uszipcode zipcode 10001
//	uszipcode city "new yrok" --state NY
//	uszipcode near --lat 38.8977 --lng -77.0365 --radius 5
//	uszipcode range population --lower 50000 --returns 10
//
// Results are printed as a JSON array of records.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "uszipcode",
		Short: "Search US zipcodes by code, name, location and demographics",
		Long: `uszipcode answers zipcode queries against a local SQLite copy of the
uszipcode dataset. The dataset is downloaded on first use.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringP("config", "c", "", "config file path")
	rootCmd.PersistentFlags().String("db", "", "dataset file path (overrides config)")
	rootCmd.PersistentFlags().Bool("comprehensive", false, "use the comprehensive dataset")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "debug logging")

	rootCmd.AddCommand(
		zipcodeCmd(),
		prefixCmd(),
		patternCmd(),
		cityCmd(),
		stateCmd(),
		nearCmd(),
		rangeCmd(),
		fetchCmd(),
		versionCmd(),
	)
	return rootCmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "uszipcode %s\n", version)
			fmt.Fprintf(out, "  commit: %s\n", commit)
			fmt.Fprintf(out, "  built:  %s\n", date)
		},
	}
}
