// Command museumctl runs offline maintenance against the PostgreSQL store:
// schema migrations and loading the sample catalog.
//
// Usage:
//
//	museumctl migrate up
//	museumctl migrate status
//	museumctl seed [--phase=veterans,stories] [--dry-run] [--seeder-config=path]
//	museumctl version
//
// Every command accepts --config to point at a YAML file other than
// $CONFIG_PATH.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "museumctl",
	Short:        "Memória Viva maintenance tool",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file (default: $CONFIG_PATH or ./config.yaml)")
	rootCmd.AddCommand(migrateCmd, seedCmd, versionCmd)
	migrateCmd.AddCommand(migrateUpCmd, migrateStatusCmd)

	seedCmd.Flags().StringSlice("phase", nil, "phases to run (default: all)")
	seedCmd.Flags().Bool("dry-run", false, "parse the dataset without writing")
	seedCmd.Flags().String("seeder-config", "", "path to seeder YAML config file")
}
