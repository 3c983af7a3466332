package escrow

import (
	"github.com/desamtralized/mantra-escrow/x/escrow/types"
)

const (
	// StoreKey represents storekey of escrow module
	StoreKey = types.StoreKey
	// ModuleName represents current module name
	ModuleName = types.ModuleName
)
