package keeper

import (
	"errors"
	"fmt"
	"math"

	"cosmossdk.io/collections"
	"cosmossdk.io/collections/indexes"
	"cosmossdk.io/core/store"
	"cosmossdk.io/log"
	"github.com/cosmos/cosmos-sdk/telemetry"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/desamtralized/mantra-escrow/x/escrow/types"
)

type Keeper interface {
	Schema() collections.Schema
	Logger(ctx sdk.Context) log.Logger

	SetConfig(ctx sdk.Context, config types.Config) error
	GetConfig(ctx sdk.Context) (types.Config, error)

	CreateEscrow(ctx sdk.Context, caller string, draft types.Escrow) (types.Escrow, error)
	Deposit(ctx sdk.Context, id uint64, caller string, funds sdk.Coins) (types.Escrow, error)

	GetEscrow(ctx sdk.Context, id uint64) (types.Escrow, error)
	SaveEscrow(ctx sdk.Context, escrow types.Escrow) error
	WithEscrows(ctx sdk.Context, fn func(types.Escrow) bool) error
	WithEscrowsBySeller(ctx sdk.Context, seller string, fn func(types.Escrow) bool) error
	WithEscrowsByBuyer(ctx sdk.Context, buyer string, fn func(types.Escrow) bool) error
	EscrowCount(ctx sdk.Context) (uint64, error)
	LastEscrowID(ctx sdk.Context) (uint64, error)
	SetLastEscrowID(ctx sdk.Context, id uint64) error

	NewQuerier() Querier
}

// keeper of the escrow store
type keeper struct {
	storeService store.KVStoreService

	schema    collections.Schema
	config    collections.Item[types.Config]
	escrows   *collections.IndexedMap[uint64, types.Escrow, EscrowIndexes]
	escrowSeq collections.Sequence
}

var _ Keeper = (*keeper)(nil)

// NewKeeper creates and returns an instance for escrow keeper
func NewKeeper(storeService store.KVStoreService) Keeper {
	sb := collections.NewSchemaBuilder(storeService)

	k := &keeper{
		storeService: storeService,
		config:       collections.NewItem(sb, collections.NewPrefix([]byte{types.ConfigPrefix}), "config", types.ConfigValue),
		escrows:      collections.NewIndexedMap(sb, collections.NewPrefix([]byte{types.EscrowPrefix}), "escrows", collections.Uint64Key, types.EscrowValue, NewEscrowIndexes(sb)),
		escrowSeq:    collections.NewSequence(sb, collections.NewPrefix([]byte{types.EscrowSequencePrefix}), "escrow_sequence"),
	}

	schema, err := sb.Build()
	if err != nil {
		panic(err)
	}
	k.schema = schema

	return k
}

func (k *keeper) Schema() collections.Schema {
	return k.schema
}

func (k *keeper) Logger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", "x/"+types.ModuleName)
}

func (k *keeper) NewQuerier() Querier {
	return Querier{k}
}

// SetConfig validates and stores the module config, replacing any previous
// value. Nothing is written when validation fails.
func (k *keeper) SetConfig(ctx sdk.Context, config types.Config) error {
	if err := config.Validate(); err != nil {
		return err
	}

	if err := k.config.Set(ctx, config); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	return nil
}

// GetConfig returns the stored config or ErrConfigNotFound
func (k *keeper) GetConfig(ctx sdk.Context) (types.Config, error) {
	config, err := k.config.Get(ctx)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return types.Config{}, types.ErrConfigNotFound
		}
		return types.Config{}, err
	}
	return config, nil
}

// CreateEscrow validates a draft on behalf of caller, assigns its id, makes its
// timeout absolute against the current block height and stores it as Pending.
func (k *keeper) CreateEscrow(ctx sdk.Context, caller string, draft types.Escrow) (types.Escrow, error) {
	if caller != draft.Seller && caller != draft.Buyer {
		return types.Escrow{}, types.ErrUnauthorized.Wrap("sender must be seller or buyer")
	}

	_, serr := sdk.AccAddressFromBech32(draft.Seller)
	_, berr := sdk.AccAddressFromBech32(draft.Buyer)
	if serr != nil || berr != nil {
		return types.Escrow{}, types.ErrInvalidAddress
	}

	if err := types.ValidateCondition(draft.Condition); err != nil {
		return types.Escrow{}, err
	}

	height := uint64(ctx.BlockHeight()) // nolint: gosec
	if draft.Timeout > math.MaxUint64-height {
		return types.Escrow{}, types.ErrInvalidTimeout.Wrapf("timeout %d overflows at height %d", draft.Timeout, height)
	}

	seq, err := k.escrowSeq.Next(ctx)
	if err != nil {
		return types.Escrow{}, fmt.Errorf("failed to allocate escrow id: %w", err)
	}

	escrow := draft
	escrow.ID = seq + 1
	escrow.State = types.EscrowPending
	escrow.Condition = types.SortedCoins(draft.Condition)
	escrow.Timeout = draft.Timeout + height

	if err := k.SaveEscrow(ctx, escrow); err != nil {
		return types.Escrow{}, err
	}

	ctx.EventManager().EmitEvent(types.NewEventEscrowCreated(caller, escrow).ToSDKEvent())

	telemetry.IncrCounter(1.0, types.ModuleName, "created")

	k.Logger(ctx).Info("escrow created", "id", escrow.ID, "seller", escrow.Seller, "buyer", escrow.Buyer, "deadline", escrow.Timeout)

	return escrow, nil
}

// Deposit funds a pending escrow. Checks run in a fixed order: caller is the
// seller, funds match the condition exactly, the deadline has not passed, and
// the escrow is still pending.
func (k *keeper) Deposit(ctx sdk.Context, id uint64, caller string, funds sdk.Coins) (types.Escrow, error) {
	escrow, err := k.GetEscrow(ctx, id)
	if err != nil {
		return types.Escrow{}, err
	}

	if caller != escrow.Seller {
		return types.Escrow{}, types.ErrUnauthorized.Wrap("only the seller can deposit")
	}

	if !types.CoinsMatch(funds, escrow.Condition) {
		return types.Escrow{}, types.ErrInvalidFunds.Wrapf("expected %s, got %s", escrow.Condition, types.SortedCoins(funds))
	}

	height := uint64(ctx.BlockHeight()) // nolint: gosec
	if escrow.Expired(height) {
		return types.Escrow{}, types.ErrEscrowTimeout.Wrapf("deadline %d reached at height %d", escrow.Timeout, height)
	}

	if escrow.State != types.EscrowPending {
		return types.Escrow{}, &types.InvalidStateError{
			Expected: types.EscrowPending,
			Got:      escrow.State,
		}
	}

	escrow.State = types.EscrowFunded

	if err := k.SaveEscrow(ctx, escrow); err != nil {
		return types.Escrow{}, err
	}

	ctx.EventManager().EmitEvent(types.NewEventEscrowFunded(caller, escrow).ToSDKEvent())

	telemetry.IncrCounter(1.0, types.ModuleName, "funded")

	k.Logger(ctx).Info("escrow funded", "id", escrow.ID, "seller", escrow.Seller)

	return escrow, nil
}

// GetEscrow returns the escrow with the given id or ErrEscrowNotFound
func (k *keeper) GetEscrow(ctx sdk.Context, id uint64) (types.Escrow, error) {
	escrow, err := k.escrows.Get(ctx, id)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return types.Escrow{}, types.ErrEscrowNotFound.Wrapf("id %d", id)
		}
		return types.Escrow{}, fmt.Errorf("failed to get escrow %d: %w", id, err)
	}
	return escrow, nil
}

// SaveEscrow writes escrow under its id. The IndexedMap drops the index
// entries of the previous value before adding the new ones.
func (k *keeper) SaveEscrow(ctx sdk.Context, escrow types.Escrow) error {
	if escrow.ID == 0 {
		return types.ErrEscrowIntegrity
	}

	if err := k.escrows.Set(ctx, escrow.ID, escrow); err != nil {
		return fmt.Errorf("failed to save escrow %d: %w", escrow.ID, err)
	}

	return nil
}

// WithEscrows iterates all escrows in ascending id order
func (k *keeper) WithEscrows(ctx sdk.Context, fn func(types.Escrow) bool) error {
	err := k.escrows.Walk(ctx, nil, func(_ uint64, escrow types.Escrow) (bool, error) {
		return fn(escrow), nil
	})
	if err != nil {
		return fmt.Errorf("WithEscrows iteration failed: %w", err)
	}
	return nil
}

// WithEscrowsBySeller iterates escrows of seller, newest first
func (k *keeper) WithEscrowsBySeller(ctx sdk.Context, seller string, fn func(types.Escrow) bool) error {
	iter, err := k.escrows.Indexes.Seller.Iterate(ctx, collections.NewPrefixedPairRange[string, uint64](seller).Descending())
	if err != nil {
		return fmt.Errorf("WithEscrowsBySeller iteration failed: %w", err)
	}

	if err := indexes.ScanValues(ctx, k.escrows, iter, fn); err != nil {
		return fmt.Errorf("WithEscrowsBySeller scan failed: %w", err)
	}

	return nil
}

// WithEscrowsByBuyer iterates escrows of buyer, newest first
func (k *keeper) WithEscrowsByBuyer(ctx sdk.Context, buyer string, fn func(types.Escrow) bool) error {
	iter, err := k.escrows.Indexes.Buyer.Iterate(ctx, collections.NewPrefixedPairRange[string, uint64](buyer).Descending())
	if err != nil {
		return fmt.Errorf("WithEscrowsByBuyer iteration failed: %w", err)
	}

	if err := indexes.ScanValues(ctx, k.escrows, iter, fn); err != nil {
		return fmt.Errorf("WithEscrowsByBuyer scan failed: %w", err)
	}

	return nil
}

// EscrowCount returns the number of stored escrows
func (k *keeper) EscrowCount(ctx sdk.Context) (uint64, error) {
	iter, err := k.escrows.Iterate(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("EscrowCount iteration failed: %w", err)
	}

	defer func() {
		_ = iter.Close()
	}()

	var count uint64
	for ; iter.Valid(); iter.Next() {
		count++
	}

	return count, nil
}

// LastEscrowID returns the most recently assigned id, zero if none
func (k *keeper) LastEscrowID(ctx sdk.Context) (uint64, error) {
	return k.escrowSeq.Peek(ctx)
}

// SetLastEscrowID moves the id sequence. Used when importing state.
func (k *keeper) SetLastEscrowID(ctx sdk.Context, id uint64) error {
	return k.escrowSeq.Set(ctx, id)
}
