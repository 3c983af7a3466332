package cmd

import (
	"context"
	"os"
	"path/filepath"

	dbm "github.com/cosmos/cosmos-db"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/desamtralized/mantra-escrow/app"
)

// DefaultHome is where escrowd keeps its database unless --home is given
var DefaultHome = func() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "." + app.AppName
	}
	return filepath.Join(home, "."+app.AppName)
}()

// NewRootCmd creates a new root command for escrowd. It is called once in the
// main function.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          app.AppName,
		Short:        "Escrow state machine",
		Long:         "Escrow state machine.\n\nRecords seller/buyer agreements, each conditioned on an exact set of\nassets the seller must deposit before a block height deadline.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return interceptConfigs(cmd)
		},
	}

	rootCmd.PersistentFlags().String(FlagHome, DefaultHome, "directory for the escrow database")
	rootCmd.PersistentFlags().String(FlagChainID, app.DefaultChainID, "chain id recorded in block headers")
	rootCmd.PersistentFlags().String(FlagDBBackend, string(dbm.GoLevelDBBackend), "database backend (goleveldb|memdb)")
	rootCmd.PersistentFlags().String(FlagLogLevel, zerolog.InfoLevel.String(), "The logging level (trace|debug|info|warn|error|fatal|panic)")
	rootCmd.PersistentFlags().String(FlagLogFormat, LogFormatPlain, "The logging format (json|plain)")
	rootCmd.PersistentFlags().Bool(FlagLogColor, false, "Pretty logging output. Applied only when log_format=plain")

	rootCmd.AddCommand(
		InitCmd(),
		TxCmd(),
		QueryCmd(),
		ExportCmd(),
	)

	return rootCmd
}

// Execute executes the root command.
func Execute(rootCmd *cobra.Command) error {
	return rootCmd.ExecuteContext(context.Background())
}
