package handler

import (
	"encoding/json"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/desamtralized/mantra-escrow/x/escrow/keeper"
	"github.com/desamtralized/mantra-escrow/x/escrow/types"
)

// Handler delivers a single escrow message against ctx
type Handler func(ctx sdk.Context, msg types.Msg) (*sdk.Result, error)

// NewHandler returns a handler for "escrow" type messages. Each message runs
// in a cached context that is only written back when it succeeds, so a
// rejected message leaves no state changes and emits no events.
func NewHandler(keeper keeper.Keeper) Handler {
	ms := NewServer(keeper)

	return func(ctx sdk.Context, msg types.Msg) (*sdk.Result, error) {
		if err := msg.ValidateBasic(); err != nil {
			return nil, err
		}

		cctx, writeCache := ctx.CacheContext()

		var res interface{}
		var err error

		switch msg := msg.(type) {
		case *types.MsgCreateEscrow:
			res, err = ms.CreateEscrow(cctx, msg)
		case *types.MsgDeposit:
			res, err = ms.Deposit(cctx, msg)
		default:
			return nil, sdkerrors.ErrUnknownRequest.Wrapf("unrecognized %s message type: %T", types.ModuleName, msg)
		}

		if err != nil {
			return nil, err
		}

		data, err := json.Marshal(res)
		if err != nil {
			return nil, sdkerrors.ErrJSONMarshal.Wrap(err.Error())
		}

		writeCache()

		return &sdk.Result{
			Data:   data,
			Events: cctx.EventManager().ABCIEvents(),
		}, nil
	}
}
