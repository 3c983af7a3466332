package cmd

import (
	"github.com/spf13/cobra"
)

// ExportCmd dumps the committed escrow state as JSON accepted by init --genesis
func ExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export escrow state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer func() {
				_ = a.Close()
			}()

			genesis, err := a.ExportGenesis()
			if err != nil {
				return err
			}

			return printOutput(cmd, genesis)
		},
	}

	addOutputFlag(cmd)

	return cmd
}
