package types_test

import (
	"encoding/json"
	"errors"
	"testing"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/desamtralized/mantra-escrow/testutil"
	"github.com/desamtralized/mantra-escrow/x/escrow/types"
)

func TestCoinsMatch(t *testing.T) {
	condition := testutil.Coins(t, 100, testutil.Denoms()...)

	tests := []struct {
		name     string
		attached sdk.Coins
		match    bool
	}{
		{"exact", testutil.Coins(t, 100, testutil.Denoms()...), true},
		{"reordered", testutil.Coins(t, 100, testutil.AltCoinDenom, testutil.CoinDenom), true},
		{"empty", sdk.Coins{}, false},
		{"missing denom", testutil.Coins(t, 100, testutil.CoinDenom), false},
		{"extra denom", testutil.Coins(t, 100, testutil.CoinDenom, testutil.AltCoinDenom, "uusd"), false},
		{"lower amount", sdk.Coins{testutil.Coin(t, 99), sdk.NewInt64Coin(testutil.AltCoinDenom, 100)}, false},
		{"higher amount", sdk.Coins{testutil.Coin(t, 100), sdk.NewInt64Coin(testutil.AltCoinDenom, 101)}, false},
		{"other denom", testutil.Coins(t, 100, testutil.CoinDenom, "uusd"), false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.match, types.CoinsMatch(test.attached, condition))
		})
	}

	t.Run("does not reorder arguments", func(t *testing.T) {
		attached := testutil.Coins(t, 100, testutil.CoinDenom, testutil.AltCoinDenom)
		require.True(t, types.CoinsMatch(attached, condition))
		require.Equal(t, testutil.CoinDenom, attached[0].Denom)
	})
}

func TestValidateCondition(t *testing.T) {
	require.NoError(t, types.ValidateCondition(testutil.Coins(t, 1, testutil.AltCoinDenom, testutil.CoinDenom)))

	err := types.ValidateCondition(nil)
	require.ErrorIs(t, err, types.ErrInvalidCondition)

	err = types.ValidateCondition(sdk.Coins{testutil.Coin(t, 1), testutil.Coin(t, 2)})
	require.ErrorIs(t, err, types.ErrInvalidCondition)

	err = types.ValidateCondition(sdk.Coins{testutil.Coin(t, 0)})
	require.ErrorIs(t, err, types.ErrInvalidCondition)

	// denoms must match the sdk denom format
	err = types.ValidateCondition(sdk.Coins{sdk.Coin{Denom: "ab", Amount: sdkmath.NewInt(1)}})
	require.ErrorIs(t, err, types.ErrInvalidCondition)

	err = types.ValidateCondition(sdk.Coins{sdk.Coin{Denom: "1abc", Amount: sdkmath.NewInt(1)}})
	require.ErrorIs(t, err, types.ErrInvalidCondition)
}

func TestEscrowExpired(t *testing.T) {
	escrow := types.Escrow{Timeout: 120}

	require.Equal(t, uint64(120), escrow.Deadline())
	require.False(t, escrow.Expired(0))
	require.False(t, escrow.Expired(119))
	require.True(t, escrow.Expired(120))
	require.True(t, escrow.Expired(121))
}

func TestEscrowValidateBasic(t *testing.T) {
	valid := func(t *testing.T) types.Escrow {
		escrow := testutil.DraftEscrow(t, testutil.Address(t), testutil.Address(t), 120)
		escrow.ID = 1
		escrow.State = types.EscrowPending
		return escrow
	}

	require.NoError(t, valid(t).ValidateBasic())

	escrow := valid(t)
	escrow.ID = 0
	require.ErrorIs(t, escrow.ValidateBasic(), types.ErrEscrowIntegrity)

	escrow = valid(t)
	escrow.Buyer = "buyer"
	require.ErrorIs(t, escrow.ValidateBasic(), types.ErrInvalidAddress)

	escrow = valid(t)
	escrow.Condition = nil
	require.ErrorIs(t, escrow.ValidateBasic(), types.ErrInvalidCondition)

	escrow = valid(t)
	escrow.State = types.EscrowStateUnspecified
	require.ErrorIs(t, escrow.ValidateBasic(), types.ErrInvalidEscrowState)
}

func TestEscrowStateEncoding(t *testing.T) {
	bz, err := json.Marshal(types.EscrowFunded)
	require.NoError(t, err)
	require.Equal(t, `"Funded"`, string(bz))

	var state types.EscrowState
	require.NoError(t, json.Unmarshal([]byte(`"pending"`), &state))
	require.Equal(t, types.EscrowPending, state)

	require.Error(t, json.Unmarshal([]byte(`"Settled"`), &state))
	require.Error(t, json.Unmarshal([]byte(`2`), &state))

	out, err := yaml.Marshal(map[string]types.EscrowState{"state": types.EscrowCompleted})
	require.NoError(t, err)
	require.Equal(t, "state: Completed\n", string(out))

	require.Equal(t, "EscrowState(9)", types.EscrowState(9).String())
}

func TestInvalidStateError(t *testing.T) {
	var err error = &types.InvalidStateError{Expected: types.EscrowPending, Got: types.EscrowFunded}

	require.ErrorIs(t, err, types.ErrInvalidEscrowState)
	require.Equal(t, "invalid escrow state, expected Pending, got Funded", err.Error())

	var serr *types.InvalidStateError
	require.True(t, errors.As(err, &serr))
	require.Equal(t, types.EscrowFunded, serr.Got)
}
