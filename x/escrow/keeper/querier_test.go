package keeper_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/desamtralized/mantra-escrow/testutil"
	"github.com/desamtralized/mantra-escrow/testutil/state"
	"github.com/desamtralized/mantra-escrow/x/escrow/keeper"
	"github.com/desamtralized/mantra-escrow/x/escrow/types"
)

func TestQuerier(t *testing.T) {
	suite := state.SetupConfiguredTestSuite(t)
	ctx := suite.Context()
	q := suite.Keeper().NewQuerier()

	seller := testutil.Address(t)
	buyer := testutil.Address(t)

	first := createEscrow(t, ctx, suite.Keeper(), seller, buyer, 120)
	second := createEscrow(t, ctx, suite.Keeper(), seller, buyer, 240)

	t.Run("escrow", func(t *testing.T) {
		res, err := q.Escrow(ctx, first.ID)
		require.NoError(t, err)
		require.Equal(t, first, res)

		_, err = q.Escrow(ctx, 99)
		require.ErrorIs(t, err, types.ErrEscrowNotFound)
	})

	t.Run("escrows", func(t *testing.T) {
		res, err := q.Escrows(ctx)
		require.NoError(t, err)
		require.Equal(t, []types.Escrow{first, second}, res)
	})

	t.Run("by seller", func(t *testing.T) {
		res, err := q.EscrowsBySeller(ctx, seller)
		require.NoError(t, err)
		require.Equal(t, []types.Escrow{second, first}, res)

		res, err = q.EscrowsBySeller(ctx, buyer)
		require.NoError(t, err)
		require.NotNil(t, res)
		require.Empty(t, res)

		res, err = q.EscrowsBySeller(ctx, "seller")
		require.NoError(t, err)
		require.NotNil(t, res)
		require.Empty(t, res)
	})

	t.Run("by buyer", func(t *testing.T) {
		res, err := q.EscrowsByBuyer(ctx, buyer)
		require.NoError(t, err)
		require.Equal(t, []types.Escrow{second, first}, res)

		res, err = q.EscrowsByBuyer(ctx, "")
		require.NoError(t, err)
		require.NotNil(t, res)
		require.Empty(t, res)
	})

	t.Run("count", func(t *testing.T) {
		count, err := q.EscrowCount(ctx)
		require.NoError(t, err)
		require.Equal(t, uint64(2), count)
	})

	t.Run("config", func(t *testing.T) {
		config, err := q.Config(ctx)
		require.NoError(t, err)
		require.Equal(t, testutil.EscrowFee, config.EscrowFee)
	})
}

func TestQuerier_unconfigured(t *testing.T) {
	suite := state.SetupTestSuite(t)
	q := keeper.Querier{Keeper: suite.Keeper()}

	_, err := q.Config(suite.Context())
	require.ErrorIs(t, err, types.ErrConfigNotFound)

	res, err := q.Escrows(suite.Context())
	require.NoError(t, err)
	require.Empty(t, res)
}
