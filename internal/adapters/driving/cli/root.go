// Package cli provides the command-line interface for the Stylist CLI.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/atelier-labs/stylist-cli/internal/core/ports/driven"
	"github.com/atelier-labs/stylist-cli/internal/logger"
)

// version is set at build time via ldflags, or by main.
var version = "dev"

// verbose enables debug logging across all commands.
var verbose bool

// Services injected by main before Execute.
var (
	catalogStore driven.CatalogStore
	configStore  driven.ConfigStore
)

var rootCmd = &cobra.Command{
	Use:   "stylist",
	Short: "A personal fashion stylist in your terminal",
	Long: `Stylist is a conversational shopping assistant for the terminal.

Describe an occasion or a style and the stylist curates a selection of
pieces, walks you through budget, colour and size preferences, and
manages your bag through checkout.

Run 'stylist tui' to start a styling session.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string reported by the version command.
func SetVersion(v string) {
	version = v
}

// SetCatalogStore injects the catalog used by non-interactive commands.
func SetCatalogStore(store driven.CatalogStore) {
	catalogStore = store
}

// SetConfigStore injects the configuration store used by the config
// commands.
func SetConfigStore(store driven.ConfigStore) {
	configStore = store
}
