package types

const (
	// ModuleName is the module name constant used in many places
	ModuleName = "escrow"

	// StoreKey is the store key string for escrow
	StoreKey = ModuleName

	// RouterKey is the message route for escrow
	RouterKey = ModuleName
)

// Store prefixes. Each collection in the escrow store owns exactly one.
const (
	ConfigPrefix byte = iota + 1
	EscrowPrefix
	EscrowSequencePrefix
	EscrowIndexSellerPrefix
	EscrowIndexBuyerPrefix
)
