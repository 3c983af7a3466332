package main

import (
	"os"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/desamtralized/mantra-escrow/cmd/escrowd/cmd"
)

const (
	Bech32PrefixAccAddr = "mantra"
	Bech32PrefixAccPub  = "mantrapub"
)

// In main we call the rootCmd
func main() {
	config := sdk.GetConfig()
	config.SetBech32PrefixForAccount(Bech32PrefixAccAddr, Bech32PrefixAccPub)
	config.Seal()

	rootCmd := cmd.NewRootCmd()

	if err := cmd.Execute(rootCmd); err != nil {
		os.Exit(1)
	}
}
