package handler_test

import (
	"encoding/json"
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/stretchr/testify/require"

	"github.com/desamtralized/mantra-escrow/testutil"
	"github.com/desamtralized/mantra-escrow/testutil/state"
	"github.com/desamtralized/mantra-escrow/x/escrow/handler"
	"github.com/desamtralized/mantra-escrow/x/escrow/types"
)

type testSuite struct {
	*state.TestSuite
	t       testing.TB
	handler handler.Handler
}

func setupTestSuite(t *testing.T) *testSuite {
	ssuite := state.SetupConfiguredTestSuite(t)

	return &testSuite{
		TestSuite: ssuite,
		t:         t,
		handler:   handler.NewHandler(ssuite.Keeper()),
	}
}

func (st *testSuite) deliver(ctx sdk.Context, msg types.Msg) (*sdk.Result, error) {
	st.t.Helper()
	return st.handler(ctx.WithEventManager(sdk.NewEventManager()), msg)
}

func (st *testSuite) createEscrow(seller, buyer string) types.MsgCreateEscrowResponse {
	st.t.Helper()

	res, err := st.deliver(st.Context(), &types.MsgCreateEscrow{
		Sender: seller,
		Escrow: testutil.DraftEscrow(st.t, seller, buyer, 120),
	})
	require.NoError(st.t, err)
	require.NotNil(st.t, res)

	var resp types.MsgCreateEscrowResponse
	require.NoError(st.t, json.Unmarshal(res.Data, &resp))
	return resp
}

func TestHandler_scenario(t *testing.T) {
	suite := setupTestSuite(t)
	k := suite.Keeper()

	seller := testutil.Address(t)
	buyer := testutil.Address(t)

	for i := uint64(1); i <= 3; i++ {
		resp := suite.createEscrow(seller, buyer)
		require.Equal(t, i, resp.ID)
		require.Equal(t, uint64(120), resp.Timeout)
		require.Equal(t, seller, resp.Seller)
		require.Equal(t, buyer, resp.Buyer)
	}

	ctx := suite.SetBlockHeight(1)
	condition := testutil.Coins(t, 100, testutil.Denoms()...)

	_, err := suite.deliver(ctx, &types.MsgDeposit{Sender: buyer, ID: 1, Funds: condition})
	require.ErrorIs(t, err, types.ErrUnauthorized)

	short := sdk.Coins{testutil.Coin(t, 99), sdk.NewInt64Coin(testutil.AltCoinDenom, 100)}
	_, err = suite.deliver(ctx, &types.MsgDeposit{Sender: seller, ID: 1, Funds: short})
	require.ErrorIs(t, err, types.ErrInvalidFunds)

	res, err := suite.deliver(ctx, &types.MsgDeposit{Sender: seller, ID: 1, Funds: condition})
	require.NoError(t, err)

	var resp types.MsgDepositResponse
	require.NoError(t, json.Unmarshal(res.Data, &resp))
	require.Equal(t, uint64(1), resp.ID)

	escrow, err := k.GetEscrow(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, types.EscrowFunded, escrow.State)

	_, err = suite.deliver(ctx, &types.MsgDeposit{Sender: seller, ID: 1, Funds: condition})
	require.ErrorIs(t, err, types.ErrInvalidEscrowState)

	for _, id := range []uint64{2, 3} {
		escrow, err := k.GetEscrow(ctx, id)
		require.NoError(t, err)
		require.Equal(t, types.EscrowPending, escrow.State)
	}
}

func TestHandler_events(t *testing.T) {
	suite := setupTestSuite(t)

	seller := testutil.Address(t)
	buyer := testutil.Address(t)

	res, err := suite.deliver(suite.Context(), &types.MsgCreateEscrow{
		Sender: buyer,
		Escrow: testutil.DraftEscrow(t, seller, buyer, 120),
	})
	require.NoError(t, err)

	var found bool
	for _, ev := range res.Events {
		if ev.Type != types.EventTypeCreateEscrow {
			continue
		}
		found = true
		attrs := make(map[string]string)
		for _, attr := range ev.Attributes {
			attrs[attr.Key] = attr.Value
		}
		require.Equal(t, buyer, attrs[types.AttributeKeySender])
		require.Equal(t, "1", attrs[types.AttributeKeyID])
	}
	require.True(t, found)
}

func TestHandler_failedMessageLeavesNoTrace(t *testing.T) {
	suite := setupTestSuite(t)
	k := suite.Keeper()

	seller := testutil.Address(t)
	buyer := testutil.Address(t)

	suite.createEscrow(seller, buyer)

	ctx := suite.Context().WithEventManager(sdk.NewEventManager())

	_, err := suite.handler(ctx, &types.MsgCreateEscrow{
		Sender: testutil.Address(t),
		Escrow: testutil.DraftEscrow(t, seller, buyer, 120),
	})
	require.ErrorIs(t, err, types.ErrUnauthorized)

	_, err = suite.handler(ctx, &types.MsgDeposit{
		Sender: seller,
		ID:     1,
		Funds:  testutil.Coins(t, 1, testutil.CoinDenom),
	})
	require.ErrorIs(t, err, types.ErrInvalidFunds)

	require.Empty(t, ctx.EventManager().Events())

	count, err := k.EscrowCount(ctx)
	require.NoError(t, err)
	require.Equal(t, uint64(1), count)

	last, err := k.LastEscrowID(ctx)
	require.NoError(t, err)
	require.Equal(t, uint64(1), last)

	escrow, err := k.GetEscrow(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, types.EscrowPending, escrow.State)

	// the rejected create consumed no id
	require.Equal(t, uint64(2), suite.createEscrow(seller, buyer).ID)
}

func TestHandler_validateBasic(t *testing.T) {
	suite := setupTestSuite(t)

	seller := testutil.Address(t)
	buyer := testutil.Address(t)
	draft := testutil.DraftEscrow(t, seller, buyer, 120)

	// malformed senders are never a party
	_, err := suite.deliver(suite.Context(), &types.MsgCreateEscrow{Sender: "invalid", Escrow: draft})
	require.ErrorIs(t, err, types.ErrUnauthorized)

	draft.ID = 7
	draft.State = types.EscrowFunded
	_, err = suite.deliver(suite.Context(), &types.MsgCreateEscrow{Sender: testutil.Address(t), Escrow: draft})
	require.ErrorIs(t, err, types.ErrUnauthorized)

	res, err := suite.deliver(suite.Context(), &types.MsgCreateEscrow{Sender: seller, Escrow: draft})
	require.NoError(t, err)

	var resp types.MsgCreateEscrowResponse
	require.NoError(t, json.Unmarshal(res.Data, &resp))
	require.Equal(t, uint64(1), resp.ID)

	created, err := suite.Keeper().GetEscrow(suite.Context(), 1)
	require.NoError(t, err)
	require.Equal(t, types.EscrowPending, created.State)

	_, err = suite.Keeper().GetEscrow(suite.Context(), 7)
	require.ErrorIs(t, err, types.ErrEscrowNotFound)

	_, err = suite.deliver(suite.Context(), &types.MsgDeposit{Sender: seller})
	require.ErrorIs(t, err, types.ErrEscrowNotFound)

	_, err = suite.deliver(suite.Context(), &types.MsgDeposit{Sender: "", ID: 1, Funds: draft.Condition})
	require.ErrorIs(t, err, types.ErrUnauthorized)
}

type unknownMsg struct {
	types.MsgDeposit
}

func TestHandler_unknownMessage(t *testing.T) {
	suite := setupTestSuite(t)

	msg := &unknownMsg{types.MsgDeposit{Sender: testutil.Address(t), ID: 1}}

	_, err := suite.deliver(suite.Context(), msg)
	require.ErrorIs(t, err, sdkerrors.ErrUnknownRequest)
}
