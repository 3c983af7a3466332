package testutil

import (
	"testing"

	"github.com/desamtralized/mantra-escrow/x/escrow/types"
)

const (
	EscrowFee         uint64 = 100
	MinEscrowDuration uint64 = 120
	MaxEscrowDuration uint64 = 172800
)

// Config returns a valid escrow config administered by a fresh address.
func Config(t testing.TB) types.Config {
	t.Helper()
	return types.Config{
		Admin:             Address(t),
		EscrowFee:         EscrowFee,
		MinEscrowDuration: MinEscrowDuration,
		MaxEscrowDuration: MaxEscrowDuration,
		AllowedDenoms:     Denoms(),
	}
}

// DraftEscrow returns a draft between seller and buyer conditioned on 100 of
// every test denomination.
func DraftEscrow(t testing.TB, seller, buyer string, timeout uint64) types.Escrow {
	t.Helper()
	return types.Escrow{
		Seller:    seller,
		Buyer:     buyer,
		Condition: Coins(t, 100, Denoms()...),
		Timeout:   timeout,
	}
}
