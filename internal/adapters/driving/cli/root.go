// Package cli provides the cobra command surface for the database
// expert server.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/OlegQm/database-expert-bot/internal/logger"
)

// version is the CLI version, overridable at build time with -ldflags.
var version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:   "dbexpert",
	Short: "Expose MongoDB knowledge and PostgreSQL schema tools over MCP",
	Long: `dbexpert serves two database introspection tools over the Model
Context Protocol: a query executor for the MongoDB knowledge collection
and a schema extractor for the PostgreSQL store.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		verbose, _ := cmd.Flags().GetBool("verbose")
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose logging to stderr")
	rootCmd.PersistentFlags().StringP("config", "c", "", "path to TOML config file (env vars override)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
