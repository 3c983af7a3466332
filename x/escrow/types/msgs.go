package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	MsgTypeCreateEscrow = "create-escrow"
	MsgTypeDeposit      = "deposit"
)

// Msg is an inbound escrow operation. The host supplies the caller identity
// as Sender and any attached funds on the message itself.
type Msg interface {
	Route() string
	Type() string
	ValidateBasic() error
	GetSender() string
}

var (
	_ Msg = &MsgCreateEscrow{}
	_ Msg = &MsgDeposit{}
)

// MsgCreateEscrow registers a draft escrow on behalf of Sender.
type MsgCreateEscrow struct {
	Sender string `json:"sender" yaml:"sender"`
	Escrow Escrow `json:"escrow" yaml:"escrow"`
}

// MsgCreateEscrowResponse echoes the finalized escrow identity.
type MsgCreateEscrowResponse struct {
	ID      uint64 `json:"id" yaml:"id"`
	Seller  string `json:"seller" yaml:"seller"`
	Buyer   string `json:"buyer" yaml:"buyer"`
	Timeout uint64 `json:"timeout" yaml:"timeout"`
}

// MsgDeposit funds escrow ID with the attached Funds.
type MsgDeposit struct {
	Sender string    `json:"sender" yaml:"sender"`
	ID     uint64    `json:"id" yaml:"id"`
	Funds  sdk.Coins `json:"funds" yaml:"funds"`
}

// MsgDepositResponse echoes the funded escrow id.
type MsgDepositResponse struct {
	ID uint64 `json:"id" yaml:"id"`
}

// ====MsgCreateEscrow====
// Route implements the Msg interface
func (m MsgCreateEscrow) Route() string {
	return RouterKey
}

// Type implements the Msg interface
func (m MsgCreateEscrow) Type() string {
	return MsgTypeCreateEscrow
}

// GetSender returns the caller identity
func (m MsgCreateEscrow) GetSender() string {
	return m.Sender
}

// ValidateBasic does basic validation. Sender, parties and condition are
// checked by the keeper so that authorization is always reported first.
// Id and state are reassigned on creation.
func (m MsgCreateEscrow) ValidateBasic() error {
	return nil
}

// ====MsgDeposit====
// Route implements the Msg interface
func (m MsgDeposit) Route() string {
	return RouterKey
}

// Type implements the Msg interface
func (m MsgDeposit) Type() string {
	return MsgTypeDeposit
}

// GetSender returns the caller identity
func (m MsgDeposit) GetSender() string {
	return m.Sender
}

// ValidateBasic does basic validation. A malformed sender never matches a
// seller and is rejected by the keeper as unauthorized.
func (m MsgDeposit) ValidateBasic() error {
	if m.ID == 0 {
		return ErrEscrowNotFound.Wrap("MsgDeposit: id must be positive")
	}
	return nil
}
