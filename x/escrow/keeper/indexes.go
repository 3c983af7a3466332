package keeper

import (
	"cosmossdk.io/collections"
	"cosmossdk.io/collections/indexes"

	"github.com/desamtralized/mantra-escrow/x/escrow/types"
)

// EscrowIndexes defines the secondary indexes for the escrow IndexedMap
type EscrowIndexes struct {
	// Seller indexes escrows by seller address
	Seller *indexes.Multi[string, uint64, types.Escrow]

	// Buyer indexes escrows by buyer address
	Buyer *indexes.Multi[string, uint64, types.Escrow]
}

func (e EscrowIndexes) IndexesList() []collections.Index[uint64, types.Escrow] {
	return []collections.Index[uint64, types.Escrow]{
		e.Seller,
		e.Buyer,
	}
}

// NewEscrowIndexes creates all secondary indexes for the escrow IndexedMap
func NewEscrowIndexes(sb *collections.SchemaBuilder) EscrowIndexes {
	return EscrowIndexes{
		Seller: indexes.NewMulti(
			sb,
			collections.NewPrefix([]byte{types.EscrowIndexSellerPrefix}),
			"escrows_by_seller",
			collections.StringKey,
			collections.Uint64Key,
			func(_ uint64, escrow types.Escrow) (string, error) {
				return escrow.Seller, nil
			},
		),
		Buyer: indexes.NewMulti(
			sb,
			collections.NewPrefix([]byte{types.EscrowIndexBuyerPrefix}),
			"escrows_by_buyer",
			collections.StringKey,
			collections.Uint64Key,
			func(_ uint64, escrow types.Escrow) (string, error) {
				return escrow.Buyer, nil
			},
		),
	}
}
