package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/desamtralized/mantra-escrow/x/escrow/types"
)

// Querier serves read-only escrow queries. It never goes through the
// lifecycle checks.
type Querier struct {
	Keeper
}

// Escrow returns the escrow with the given id
func (q Querier) Escrow(c context.Context, id uint64) (types.Escrow, error) {
	ctx := sdk.UnwrapSDKContext(c)
	return q.GetEscrow(ctx, id)
}

// Escrows returns every escrow in ascending id order
func (q Querier) Escrows(c context.Context) ([]types.Escrow, error) {
	ctx := sdk.UnwrapSDKContext(c)

	res := make([]types.Escrow, 0)
	err := q.WithEscrows(ctx, func(escrow types.Escrow) bool {
		res = append(res, escrow)
		return false
	})
	if err != nil {
		return nil, err
	}

	return res, nil
}

// EscrowsBySeller returns escrows sold by seller, newest first
func (q Querier) EscrowsBySeller(c context.Context, seller string) ([]types.Escrow, error) {
	ctx := sdk.UnwrapSDKContext(c)

	res := make([]types.Escrow, 0)
	// malformed identities own no escrows
	if _, err := sdk.AccAddressFromBech32(seller); err != nil {
		return res, nil
	}

	err := q.WithEscrowsBySeller(ctx, seller, func(escrow types.Escrow) bool {
		res = append(res, escrow)
		return false
	})
	if err != nil {
		return nil, err
	}

	return res, nil
}

// EscrowsByBuyer returns escrows bought by buyer, newest first
func (q Querier) EscrowsByBuyer(c context.Context, buyer string) ([]types.Escrow, error) {
	ctx := sdk.UnwrapSDKContext(c)

	res := make([]types.Escrow, 0)
	// malformed identities own no escrows
	if _, err := sdk.AccAddressFromBech32(buyer); err != nil {
		return res, nil
	}

	err := q.WithEscrowsByBuyer(ctx, buyer, func(escrow types.Escrow) bool {
		res = append(res, escrow)
		return false
	})
	if err != nil {
		return nil, err
	}

	return res, nil
}

// Config returns the module config
func (q Querier) Config(c context.Context) (types.Config, error) {
	ctx := sdk.UnwrapSDKContext(c)
	return q.GetConfig(ctx)
}

// EscrowCount returns the number of stored escrows
func (q Querier) EscrowCount(c context.Context) (uint64, error) {
	ctx := sdk.UnwrapSDKContext(c)
	return q.Keeper.EscrowCount(ctx)
}
