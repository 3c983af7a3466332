package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/spf13/cobra"

	"github.com/desamtralized/mantra-escrow/x/escrow/types"
)

type txResult struct {
	Height   int64           `json:"height"`
	Response json.RawMessage `json:"response"`
}

// TxCmd returns the escrow transaction commands
func TxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:                        "tx",
		Short:                      "Escrow transaction subcommands",
		DisableFlagParsing:         false,
		SuggestionsMinimumDistance: 2,
		RunE:                       validateCmd,
	}

	cmd.AddCommand(
		cmdCreate(),
		cmdDeposit(),
	)

	return cmd
}

func cmdCreate() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a pending escrow between seller and buyer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			from, _ := cmd.Flags().GetString(FlagFrom)
			seller, _ := cmd.Flags().GetString(FlagSeller)
			buyer, _ := cmd.Flags().GetString(FlagBuyer)
			timeout, _ := cmd.Flags().GetUint64(FlagTimeout)
			conditionStr, _ := cmd.Flags().GetString(FlagCondition)

			condition, err := sdk.ParseCoinsNormalized(conditionStr)
			if err != nil {
				return fmt.Errorf("invalid condition: %w", err)
			}

			msg := &types.MsgCreateEscrow{
				Sender: from,
				Escrow: types.Escrow{
					Seller:    seller,
					Buyer:     buyer,
					Condition: condition,
					Timeout:   timeout,
				},
			}

			return deliver(cmd, msg)
		},
	}

	cmd.Flags().String(FlagFrom, "", "address of the caller")
	cmd.Flags().String(FlagSeller, "", "seller address")
	cmd.Flags().String(FlagBuyer, "", "buyer address")
	cmd.Flags().String(FlagCondition, "", "coins the seller must deposit, e.g. 100uom,100uatom")
	cmd.Flags().Uint64(FlagTimeout, 0, "blocks from now until funding closes")
	addOutputFlag(cmd)

	for _, flag := range []string{FlagFrom, FlagSeller, FlagBuyer, FlagCondition, FlagTimeout} {
		_ = cmd.MarkFlagRequired(flag)
	}

	return cmd
}

func cmdDeposit() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deposit [id]",
		Short: "Fund a pending escrow with exactly its condition",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid escrow id %q: %w", args[0], err)
			}

			from, _ := cmd.Flags().GetString(FlagFrom)
			amountStr, _ := cmd.Flags().GetString(FlagAmount)

			funds, err := sdk.ParseCoinsNormalized(amountStr)
			if err != nil {
				return fmt.Errorf("invalid amount: %w", err)
			}

			msg := &types.MsgDeposit{
				Sender: from,
				ID:     id,
				Funds:  funds,
			}

			return deliver(cmd, msg)
		},
	}

	cmd.Flags().String(FlagFrom, "", "address of the caller")
	cmd.Flags().String(FlagAmount, "", "attached coins, e.g. 100uom,100uatom")
	addOutputFlag(cmd)

	for _, flag := range []string{FlagFrom, FlagAmount} {
		_ = cmd.MarkFlagRequired(flag)
	}

	return cmd
}

func deliver(cmd *cobra.Command, msg types.Msg) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer func() {
		_ = a.Close()
	}()

	res, err := a.Deliver(msg)
	if err != nil {
		return err
	}

	return printOutput(cmd, txResult{
		Height:   a.Height(),
		Response: res.Data,
	})
}

func validateCmd(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return cmd.Help()
	}

	return fmt.Errorf("unknown subcommand %q for %q", args[0], cmd.CommandPath()) // nolint: goerr113
}
