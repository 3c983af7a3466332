package app

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"cosmossdk.io/log"
	"cosmossdk.io/store"
	storemetrics "cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	abci "github.com/cometbft/cometbft/abci/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/runtime"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/desamtralized/mantra-escrow/pubsub"
	"github.com/desamtralized/mantra-escrow/x/escrow"
	"github.com/desamtralized/mantra-escrow/x/escrow/handler"
	"github.com/desamtralized/mantra-escrow/x/escrow/keeper"
	"github.com/desamtralized/mantra-escrow/x/escrow/types"
)

const (
	AppName = "escrowd"

	DefaultChainID = "mantra-escrow-1"
)

var ErrAlreadyInitialized = errors.New("escrow state already initialized")

// App hosts the escrow module over a committed multistore. Every delivered
// message is its own block: the height advances only when a message
// succeeds and its writes are committed.
type App struct {
	mtx sync.Mutex

	db      dbm.DB
	cms     storetypes.CommitMultiStore
	key     *storetypes.KVStoreKey
	logger  log.Logger
	ctxLog  log.Logger
	chainID string
	bus     pubsub.Bus
	metrics *appMetrics

	keeper  keeper.Keeper
	handler handler.Handler
}

// New loads the latest committed escrow state from db
func New(db dbm.DB, logger log.Logger, opts ...Option) (*App, error) {
	cfg := &appOptions{
		chainID: DefaultChainID,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	key := storetypes.NewKVStoreKey(types.StoreKey)

	cms := store.NewCommitMultiStore(db, logger, storemetrics.NewNoOpMetrics())
	cms.MountStoreWithDB(key, storetypes.StoreTypeIAVL, nil)

	if err := cms.LoadLatestVersion(); err != nil {
		return nil, fmt.Errorf("failed to load escrow store: %w", err)
	}

	k := keeper.NewKeeper(runtime.NewKVStoreService(key))

	app := &App{
		db:      db,
		cms:     cms,
		key:     key,
		logger:  logger.With("module", "app"),
		ctxLog:  logger,
		chainID: cfg.chainID,
		bus:     cfg.bus,
		metrics: newMetrics(cfg.reg),
		keeper:  k,
		handler: handler.NewHandler(k),
	}

	app.metrics.height.Set(float64(app.Height()))

	app.logger.Info("escrow store loaded", "height", app.Height())

	return app, nil
}

// Height returns the last committed height
func (app *App) Height() int64 {
	return app.cms.LastCommitID().Version
}

func (app *App) Keeper() keeper.Keeper {
	return app.keeper
}

// InitChain imports genesis and commits it. It fails once anything has been
// committed, so imported records can never replace live ones.
func (app *App) InitChain(genesis *types.GenesisState) (err error) {
	app.mtx.Lock()
	defer app.mtx.Unlock()

	if app.Height() > 0 {
		return ErrAlreadyInitialized
	}

	if err := escrow.ValidateGenesis(genesis); err != nil {
		return err
	}

	msCache := app.cms.CacheMultiStore()
	ctx := app.newContext(msCache, app.Height()+1)

	if lastID, err := app.keeper.LastEscrowID(ctx); err != nil {
		return err
	} else if lastID > 0 {
		return ErrAlreadyInitialized
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("failed to import genesis: %v", r)
		}
	}()

	escrow.InitGenesis(ctx, app.keeper, genesis)

	msCache.Write()
	cid := app.cms.Commit()

	app.metrics.height.Set(float64(cid.Version))

	app.logger.Info("genesis imported", "height", cid.Version, "escrows", len(genesis.Escrows))

	return nil
}

// Deliver runs msg at the next height and commits it on success. A failed
// message leaves the store and height untouched.
func (app *App) Deliver(msg types.Msg) (*sdk.Result, error) {
	app.mtx.Lock()
	defer app.mtx.Unlock()

	height := app.Height() + 1

	msCache := app.cms.CacheMultiStore()
	ctx := app.newContext(msCache, height)

	res, err := app.handler(ctx, msg)
	app.metrics.observeMessage(msg.Type(), err)
	if err != nil {
		app.logger.Debug("message rejected", "type", msg.Type(), "sender", msg.GetSender(), "err", err)
		return nil, err
	}

	msCache.Write()
	cid := app.cms.Commit()

	app.metrics.height.Set(float64(cid.Version))

	app.logger.Debug("message committed", "type", msg.Type(), "height", cid.Version)

	app.publish(res.Events)

	return res, nil
}

func (app *App) publish(events []abci.Event) {
	if app.bus == nil {
		return
	}

	for _, sev := range events {
		ev, err := types.ParseEvent(sev)
		if err != nil {
			continue
		}

		if err := app.bus.Publish(ev); err != nil {
			app.logger.Error("failed to publish event", "type", sev.Type, "err", err)
			return
		}
	}
}

// Query runs fn against a read-only snapshot of the committed state
func (app *App) Query(fn func(ctx sdk.Context, q keeper.Querier) error) error {
	app.mtx.Lock()
	defer app.mtx.Unlock()

	ctx := app.newContext(app.cms.CacheMultiStore(), app.Height())

	return fn(ctx, app.keeper.NewQuerier())
}

// ExportGenesis returns the committed escrow state
func (app *App) ExportGenesis() (*types.GenesisState, error) {
	var gs *types.GenesisState

	err := app.Query(func(ctx sdk.Context, _ keeper.Querier) (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("failed to export genesis: %v", r)
			}
		}()
		gs = escrow.ExportGenesis(ctx, app.keeper)
		return nil
	})

	return gs, err
}

// Close releases the underlying database
func (app *App) Close() error {
	return app.db.Close()
}

func (app *App) newContext(ms storetypes.MultiStore, height int64) sdk.Context {
	header := cmtproto.Header{
		ChainID: app.chainID,
		Height:  height,
		Time:    time.Now().UTC(),
	}

	return sdk.NewContext(ms, header, false, app.ctxLog)
}
