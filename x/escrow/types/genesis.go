package types

import (
	"fmt"
)

// GenesisState is the full exported escrow state.
type GenesisState struct {
	Config *Config `json:"config,omitempty" yaml:"config,omitempty"`
	// Escrows are listed in ascending id order.
	Escrows []Escrow `json:"escrows" yaml:"escrows"`
	// LastID is the last id handed out. Zero means "derive from escrows".
	LastID uint64 `json:"last_id" yaml:"last_id"`
}

// DefaultGenesisState returns an unconfigured, empty state.
func DefaultGenesisState() *GenesisState {
	return &GenesisState{}
}

// Validate checks the config and that every escrow is sound with a unique id
// not above LastID.
func (g GenesisState) Validate() error {
	if g.Config != nil {
		if err := g.Config.Validate(); err != nil {
			return err
		}
	}

	seen := make(map[uint64]struct{}, len(g.Escrows))
	for idx, escrow := range g.Escrows {
		if err := escrow.ValidateBasic(); err != nil {
			return fmt.Errorf("%w: error with escrow %d (idx %v)", err, escrow.ID, idx)
		}
		if _, found := seen[escrow.ID]; found {
			return fmt.Errorf("%w: duplicate escrow %d (idx %v)", ErrEscrowIntegrity, escrow.ID, idx)
		}
		if g.LastID != 0 && escrow.ID > g.LastID {
			return fmt.Errorf("%w: escrow %d beyond sequence %d (idx %v)", ErrEscrowIntegrity, escrow.ID, g.LastID, idx)
		}
		seen[escrow.ID] = struct{}{}
	}

	return nil
}
