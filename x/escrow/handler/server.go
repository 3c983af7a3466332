package handler

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/desamtralized/mantra-escrow/x/escrow/keeper"
	"github.com/desamtralized/mantra-escrow/x/escrow/types"
)

// MsgServer is the escrow message service
type MsgServer interface {
	CreateEscrow(context.Context, *types.MsgCreateEscrow) (*types.MsgCreateEscrowResponse, error)
	Deposit(context.Context, *types.MsgDeposit) (*types.MsgDepositResponse, error)
}

var _ MsgServer = msgServer{}

type msgServer struct {
	keeper keeper.Keeper
}

// NewServer returns an implementation of the escrow MsgServer interface
// for the provided Keeper.
func NewServer(k keeper.Keeper) MsgServer {
	return &msgServer{
		keeper: k,
	}
}

func (ms msgServer) CreateEscrow(goCtx context.Context, msg *types.MsgCreateEscrow) (*types.MsgCreateEscrowResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	escrow, err := ms.keeper.CreateEscrow(ctx, msg.Sender, msg.Escrow)
	if err != nil {
		return &types.MsgCreateEscrowResponse{}, err
	}

	return &types.MsgCreateEscrowResponse{
		ID:      escrow.ID,
		Seller:  escrow.Seller,
		Buyer:   escrow.Buyer,
		Timeout: escrow.Timeout,
	}, nil
}

func (ms msgServer) Deposit(goCtx context.Context, msg *types.MsgDeposit) (*types.MsgDepositResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	escrow, err := ms.keeper.Deposit(ctx, msg.ID, msg.Sender, msg.Funds)
	if err != nil {
		return &types.MsgDepositResponse{}, err
	}

	return &types.MsgDepositResponse{ID: escrow.ID}, nil
}
