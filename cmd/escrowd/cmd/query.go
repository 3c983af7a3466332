package cmd

import (
	"fmt"
	"strconv"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/spf13/cobra"

	"github.com/desamtralized/mantra-escrow/x/escrow/keeper"
)

// QueryCmd returns the escrow query commands
func QueryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:                        "query",
		Aliases:                    []string{"q"},
		Short:                      "Escrow query subcommands",
		SuggestionsMinimumDistance: 2,
		RunE:                       validateCmd,
	}

	cmd.AddCommand(
		cmdGetEscrow(),
		cmdGetEscrows(),
		cmdGetEscrowsBySeller(),
		cmdGetEscrowsByBuyer(),
		cmdGetConfig(),
		cmdGetCount(),
	)

	return cmd
}

func queryCmd(use, short string, args cobra.PositionalArgs, run func(ctx sdk.Context, q keeper.Querier, args []string) (interface{}, error)) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  args,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer func() {
				_ = a.Close()
			}()

			var res interface{}
			err = a.Query(func(ctx sdk.Context, q keeper.Querier) error {
				var err error
				res, err = run(ctx, q, args)
				return err
			})
			if err != nil {
				return err
			}

			return printOutput(cmd, res)
		},
	}

	addOutputFlag(cmd)

	return cmd
}

func cmdGetEscrow() *cobra.Command {
	return queryCmd("escrow [id]", "Query escrow by id", cobra.ExactArgs(1),
		func(ctx sdk.Context, q keeper.Querier, args []string) (interface{}, error) {
			id, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid escrow id %q: %w", args[0], err)
			}
			return q.Escrow(ctx, id)
		})
}

func cmdGetEscrows() *cobra.Command {
	return queryCmd("escrows", "Query all escrows in id order", cobra.NoArgs,
		func(ctx sdk.Context, q keeper.Querier, _ []string) (interface{}, error) {
			return q.Escrows(ctx)
		})
}

func cmdGetEscrowsBySeller() *cobra.Command {
	return queryCmd("seller [address]", "Query escrows of a seller, newest first", cobra.ExactArgs(1),
		func(ctx sdk.Context, q keeper.Querier, args []string) (interface{}, error) {
			return q.EscrowsBySeller(ctx, args[0])
		})
}

func cmdGetEscrowsByBuyer() *cobra.Command {
	return queryCmd("buyer [address]", "Query escrows of a buyer, newest first", cobra.ExactArgs(1),
		func(ctx sdk.Context, q keeper.Querier, args []string) (interface{}, error) {
			return q.EscrowsByBuyer(ctx, args[0])
		})
}

func cmdGetConfig() *cobra.Command {
	return queryCmd("config", "Query the module config", cobra.NoArgs,
		func(ctx sdk.Context, q keeper.Querier, _ []string) (interface{}, error) {
			return q.Config(ctx)
		})
}

type countResponse struct {
	Count uint64 `json:"count"`
}

func cmdGetCount() *cobra.Command {
	return queryCmd("count", "Query the number of stored escrows", cobra.NoArgs,
		func(ctx sdk.Context, q keeper.Querier, _ []string) (interface{}, error) {
			count, err := q.EscrowCount(ctx)
			if err != nil {
				return nil, err
			}
			return countResponse{Count: count}, nil
		})
}

