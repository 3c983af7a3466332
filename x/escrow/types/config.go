package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// MaxEscrowFee is 100% expressed in basis points.
const MaxEscrowFee uint64 = 10000

// Config is the module-wide configuration, written once at setup.
type Config struct {
	Admin string `json:"admin" yaml:"admin"`
	// EscrowFee is charged in basis points, 10000 = 100%.
	EscrowFee uint64 `json:"escrow_fee" yaml:"escrow_fee"`
	// MinEscrowDuration and MaxEscrowDuration are measured in blocks.
	MinEscrowDuration uint64   `json:"min_escrow_duration" yaml:"min_escrow_duration"`
	MaxEscrowDuration uint64   `json:"max_escrow_duration" yaml:"max_escrow_duration"`
	AllowedDenoms     []string `json:"allowed_denoms" yaml:"allowed_denoms"`
}

// Validate runs every config check in a fixed order and returns the first
// failure.
func (c Config) Validate() error {
	if c.EscrowFee > MaxEscrowFee {
		return ErrInvalidConfig.Wrap("escrow fee cannot exceed 100%")
	}
	if c.MaxEscrowDuration <= c.MinEscrowDuration {
		return ErrInvalidConfig.Wrap("max duration must be greater than min duration")
	}
	if len(c.AllowedDenoms) == 0 {
		return ErrInvalidConfig.Wrap("at least one denomination must be allowed")
	}
	if _, err := sdk.AccAddressFromBech32(c.Admin); err != nil {
		return ErrInvalidConfig.Wrap("admin must be a valid address")
	}
	return nil
}

// IsDenomAllowed reports whether denom is listed in AllowedDenoms.
func (c Config) IsDenomAllowed(denom string) bool {
	for _, d := range c.AllowedDenoms {
		if d == denom {
			return true
		}
	}
	return false
}
