package state

import (
	"testing"

	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	"github.com/stretchr/testify/require"

	"cosmossdk.io/store"
	storemetrics "cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/runtime"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/desamtralized/mantra-escrow/testutil"
	"github.com/desamtralized/mantra-escrow/x/escrow/keeper"
	"github.com/desamtralized/mantra-escrow/x/escrow/types"
)

// TestSuite encapsulates an in-memory escrow store for ephemeral testing.
type TestSuite struct {
	t      testing.TB
	ms     storetypes.CommitMultiStore
	ctx    sdk.Context
	keeper keeper.Keeper
}

// SetupTestSuite mounts the escrow store on a fresh MemDB and returns a
// context at height zero.
func SetupTestSuite(t testing.TB) *TestSuite {
	t.Helper()

	key := storetypes.NewKVStoreKey(types.StoreKey)

	db := dbm.NewMemDB()
	ms := store.NewCommitMultiStore(db, testutil.Logger(t), storemetrics.NewNoOpMetrics())
	ms.MountStoreWithDB(key, storetypes.StoreTypeIAVL, db)

	err := ms.LoadLatestVersion()
	require.NoError(t, err)

	return &TestSuite{
		t:      t,
		ms:     ms,
		ctx:    sdk.NewContext(ms, cmtproto.Header{}, false, testutil.Logger(t)),
		keeper: keeper.NewKeeper(runtime.NewKVStoreService(key)),
	}
}

// SetupConfiguredTestSuite is SetupTestSuite with a valid config stored.
func SetupConfiguredTestSuite(t testing.TB) *TestSuite {
	t.Helper()

	suite := SetupTestSuite(t)
	require.NoError(t, suite.keeper.SetConfig(suite.ctx, testutil.Config(t)))

	return suite
}

func (ts *TestSuite) Context() sdk.Context {
	return ts.ctx
}

// SetBlockHeight moves the suite context to height.
func (ts *TestSuite) SetBlockHeight(height int64) sdk.Context {
	ts.ctx = ts.ctx.WithBlockHeight(height)
	return ts.ctx
}

func (ts *TestSuite) Keeper() keeper.Keeper {
	return ts.keeper
}

func (ts *TestSuite) MultiStore() storetypes.CommitMultiStore {
	return ts.ms
}
