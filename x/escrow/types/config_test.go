package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/desamtralized/mantra-escrow/testutil"
	"github.com/desamtralized/mantra-escrow/x/escrow/types"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*types.Config)
		msg    string
	}{
		{
			name:   "valid",
			mutate: func(*types.Config) {},
		},
		{
			name:   "fee at maximum",
			mutate: func(c *types.Config) { c.EscrowFee = types.MaxEscrowFee },
		},
		{
			name:   "fee above maximum",
			mutate: func(c *types.Config) { c.EscrowFee = types.MaxEscrowFee + 1 },
			msg:    "escrow fee cannot exceed 100%",
		},
		{
			name:   "max equals min",
			mutate: func(c *types.Config) { c.MaxEscrowDuration = c.MinEscrowDuration },
			msg:    "max duration must be greater than min duration",
		},
		{
			name:   "max below min",
			mutate: func(c *types.Config) { c.MaxEscrowDuration = c.MinEscrowDuration - 1 },
			msg:    "max duration must be greater than min duration",
		},
		{
			name:   "max one above min",
			mutate: func(c *types.Config) { c.MaxEscrowDuration = c.MinEscrowDuration + 1 },
		},
		{
			name:   "no denoms",
			mutate: func(c *types.Config) { c.AllowedDenoms = nil },
			msg:    "at least one denomination must be allowed",
		},
		{
			name:   "bad admin",
			mutate: func(c *types.Config) { c.Admin = "admin" },
			msg:    "admin must be a valid address",
		},
		{
			name: "first failure wins",
			mutate: func(c *types.Config) {
				c.EscrowFee = types.MaxEscrowFee + 1
				c.AllowedDenoms = nil
				c.Admin = ""
			},
			msg: "escrow fee cannot exceed 100%",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			config := testutil.Config(t)
			test.mutate(&config)

			err := config.Validate()
			if test.msg == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, types.ErrInvalidConfig)
			require.ErrorContains(t, err, test.msg)
		})
	}
}

func TestConfigIsDenomAllowed(t *testing.T) {
	config := testutil.Config(t)

	require.True(t, config.IsDenomAllowed(testutil.CoinDenom))
	require.True(t, config.IsDenomAllowed(testutil.AltCoinDenom))
	require.False(t, config.IsDenomAllowed("uusd"))
}
