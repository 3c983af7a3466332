package testutil

import (
	"math/rand"
	"testing"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	CoinDenom    = "uom"
	AltCoinDenom = "uatom"
)

// Denoms returns the denominations the test config allows.
func Denoms() []string {
	return []string{CoinDenom, AltCoinDenom}
}

// Coin provides a coin of the primary test denomination.
func Coin(t testing.TB, amount int64) sdk.Coin {
	t.Helper()
	return sdk.NewCoin(CoinDenom, sdkmath.NewInt(amount))
}

// CoinRandom provides a coin of the primary test denomination with a random
// positive amount.
func CoinRandom(t testing.TB) sdk.Coin {
	t.Helper()
	return Coin(t, int64(RandRangeInt(1, 1000)))
}

// Coins builds one coin of amount for each denom, in the given order and
// without sorting.
func Coins(t testing.TB, amount int64, denoms ...string) sdk.Coins {
	t.Helper()
	res := make(sdk.Coins, 0, len(denoms))
	for _, denom := range denoms {
		res = append(res, sdk.NewCoin(denom, sdkmath.NewInt(amount)))
	}
	return res
}

// RandRangeInt returns a random int in [min, max).
func RandRangeInt(min, max int) int {
	return rand.Intn(max-min) + min // nolint: gosec
}
