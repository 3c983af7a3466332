package escrow

import (
	"encoding/json"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/desamtralized/mantra-escrow/x/escrow/keeper"
	"github.com/desamtralized/mantra-escrow/x/escrow/types"
)

// ValidateGenesis does validation check of the Genesis and returns an error in case of failure
func ValidateGenesis(data *types.GenesisState) error {
	return data.Validate()
}

// InitGenesis loads the config and escrows and moves the id sequence past
// every imported escrow. The sequence never moves backward.
func InitGenesis(ctx sdk.Context, k keeper.Keeper, data *types.GenesisState) {
	if data.Config != nil {
		if err := k.SetConfig(ctx, *data.Config); err != nil {
			panic(fmt.Sprintf("error saving config: %s", err.Error()))
		}
	}

	lastID, err := k.LastEscrowID(ctx)
	if err != nil {
		panic(fmt.Sprintf("error reading escrow sequence: %s", err.Error()))
	}
	if data.LastID > lastID {
		lastID = data.LastID
	}

	for idx := range data.Escrows {
		escrow := data.Escrows[idx]
		if err := k.SaveEscrow(ctx, escrow); err != nil {
			panic(fmt.Sprintf("error saving escrow: %s", err.Error()))
		}
		if escrow.ID > lastID {
			lastID = escrow.ID
		}
	}

	if err := k.SetLastEscrowID(ctx, lastID); err != nil {
		panic(fmt.Sprintf("error setting escrow sequence: %s", err.Error()))
	}
}

// ExportGenesis returns the full escrow state
func ExportGenesis(ctx sdk.Context, k keeper.Keeper) *types.GenesisState {
	state := &types.GenesisState{
		Escrows: make([]types.Escrow, 0),
	}

	if config, err := k.GetConfig(ctx); err == nil {
		state.Config = &config
	}

	err := k.WithEscrows(ctx, func(obj types.Escrow) bool {
		state.Escrows = append(state.Escrows, obj)
		return false
	})
	if err != nil {
		panic(fmt.Sprintf("error exporting escrows: %s", err.Error()))
	}

	lastID, err := k.LastEscrowID(ctx)
	if err != nil {
		panic(fmt.Sprintf("error exporting escrow sequence: %s", err.Error()))
	}
	state.LastID = lastID

	return state
}

// DefaultGenesisState returns default genesis state for the escrow module.
func DefaultGenesisState() *types.GenesisState {
	return types.DefaultGenesisState()
}

// GetGenesisStateFromAppState returns x/escrow GenesisState given raw application
// genesis state.
func GetGenesisStateFromAppState(appState map[string]json.RawMessage) (*types.GenesisState, error) {
	genesisState := DefaultGenesisState()

	if appState[ModuleName] != nil {
		if err := json.Unmarshal(appState[ModuleName], genesisState); err != nil {
			return nil, fmt.Errorf("failed to unmarshal %s genesis state: %w", ModuleName, err)
		}
	}

	return genesisState, nil
}
