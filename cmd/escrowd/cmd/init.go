package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/desamtralized/mantra-escrow/x/escrow/types"
)

var errNothingToInit = errors.New("either a config file or --genesis must be provided")

// InitCmd stores the module config and optionally imports exported state
func InitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [config-file]",
		Short: "Initialize escrow state from a YAML config and/or a JSON genesis export",
		Long: `Initialize escrow state. The YAML config file has the form:

admin: mantra1...
escrow_fee: 100
min_escrow_duration: 120
max_escrow_duration: 172800
allowed_denoms: [uom, uatom]

A config file overrides the config carried by --genesis.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			genesis := types.DefaultGenesisState()

			if path, _ := cmd.Flags().GetString(FlagGenesis); path != "" {
				gs, err := readGenesis(path)
				if err != nil {
					return err
				}
				genesis = gs
			}

			if len(args) == 1 {
				config, err := readConfig(args[0])
				if err != nil {
					return err
				}
				genesis.Config = &config
			}

			if genesis.Config == nil && len(genesis.Escrows) == 0 {
				return errNothingToInit
			}

			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer func() {
				_ = a.Close()
			}()

			if err := a.InitChain(genesis); err != nil {
				return err
			}

			return printOutput(cmd, genesis)
		},
	}

	cmd.Flags().String(FlagGenesis, "", "JSON file produced by the export command")
	addOutputFlag(cmd)

	return cmd
}

func readConfig(path string) (types.Config, error) {
	var config types.Config

	bz, err := os.ReadFile(path)
	if err != nil {
		return config, err
	}

	if err := yaml.Unmarshal(bz, &config); err != nil {
		return config, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	return config, nil
}

func readGenesis(path string) (*types.GenesisState, error) {
	bz, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	gs := types.DefaultGenesisState()
	if err := json.Unmarshal(bz, gs); err != nil {
		return nil, fmt.Errorf("failed to parse genesis %s: %w", path, err)
	}

	return gs, nil
}
