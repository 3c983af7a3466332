package types

import (
	"fmt"

	errorsmod "cosmossdk.io/errors"
)

const (
	errInvalidConfig uint32 = iota + 1
	errUnauthorized
	errInvalidFunds
	errEscrowNotFound
	errEscrowTimeout
	errInvalidEscrowState
	errInvalidAddress
	errConfigNotFound
	errEscrowIntegrity
	errInvalidCondition
	errInvalidTimeout
)

var (
	ErrInvalidConfig      = errorsmod.Register(ModuleName, errInvalidConfig, "invalid config")
	ErrUnauthorized       = errorsmod.Register(ModuleName, errUnauthorized, "unauthorized")
	ErrInvalidFunds       = errorsmod.Register(ModuleName, errInvalidFunds, "invalid funds")
	ErrEscrowNotFound     = errorsmod.Register(ModuleName, errEscrowNotFound, "escrow not found")
	ErrEscrowTimeout      = errorsmod.Register(ModuleName, errEscrowTimeout, "escrow timeout")
	ErrInvalidEscrowState = errorsmod.Register(ModuleName, errInvalidEscrowState, "invalid escrow state")
	ErrInvalidAddress     = errorsmod.Register(ModuleName, errInvalidAddress, "invalid address")
	ErrConfigNotFound     = errorsmod.Register(ModuleName, errConfigNotFound, "config not found")
	ErrEscrowIntegrity    = errorsmod.Register(ModuleName, errEscrowIntegrity, "escrow must have an id")
	ErrInvalidCondition   = errorsmod.Register(ModuleName, errInvalidCondition, "invalid escrow condition")
	ErrInvalidTimeout     = errorsmod.Register(ModuleName, errInvalidTimeout, "invalid escrow timeout")
)

// InvalidStateError reports a transition attempted from the wrong state.
// It matches ErrInvalidEscrowState with errors.Is.
type InvalidStateError struct {
	Expected EscrowState
	Got      EscrowState
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("%s, expected %s, got %s", ErrInvalidEscrowState.Error(), e.Expected, e.Got)
}

func (e *InvalidStateError) Unwrap() error {
	return ErrInvalidEscrowState
}
