package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cosmossdk.io/log"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/rs/zerolog"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/desamtralized/mantra-escrow/app"
)

type contextKey struct{}

var errNoContext = errors.New("command context not initialized")

// cmdContext carries the resolved configuration of a single invocation
type cmdContext struct {
	viper  *viper.Viper
	logger log.Logger
}

// interceptConfigs binds flags and ESCROW_* environment variables into a
// fresh viper instance and builds the process logger from the result.
func interceptConfigs(cmd *cobra.Command) error {
	v := viper.New()

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := bindFlags(cmd, v); err != nil {
		return err
	}

	logger, err := newLogger(cmd, v)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cmd.SetContext(context.WithValue(ctx, contextKey{}, &cmdContext{
		viper:  v,
		logger: logger,
	}))

	return nil
}

func bindFlags(cmd *cobra.Command, v *viper.Viper) error {
	var err error

	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if err != nil {
			return
		}

		// Environment variables can't have dashes in them, so bind them to their equivalent
		// keys with underscores, e.g. --chain-id to ESCROW_CHAIN_ID
		envBody := strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_"))
		if err = v.BindEnv(f.Name, fmt.Sprintf("%s_%s", EnvPrefix, envBody)); err != nil {
			return
		}

		if err = v.BindPFlag(f.Name, f); err != nil {
			return
		}

		// Apply the viper config value to the flag when the flag is not set and viper has a value
		if !f.Changed && v.IsSet(f.Name) {
			err = cmd.Flags().Set(f.Name, cast.ToString(v.Get(f.Name)))
		}
	})

	return err
}

func newLogger(cmd *cobra.Command, v *viper.Viper) (log.Logger, error) {
	lvlStr := v.GetString(FlagLogLevel)

	lvl, err := zerolog.ParseLevel(lvlStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse log level (%s): %w", lvlStr, err)
	}

	opts := []log.Option{
		log.LevelOption(lvl),
	}

	switch format := strings.ToLower(v.GetString(FlagLogFormat)); format {
	case LogFormatJSON:
		opts = append(opts, log.OutputJSONOption())
	case LogFormatPlain:
		opts = append(opts, log.ColorOption(v.GetBool(FlagLogColor)))
	default:
		return nil, fmt.Errorf("invalid log format (%s)", format) // nolint: goerr113
	}

	return log.NewLogger(cmd.ErrOrStderr(), opts...), nil
}

func getCmdContext(cmd *cobra.Command) (*cmdContext, error) {
	if ctx := cmd.Context(); ctx != nil {
		if cctx, ok := ctx.Value(contextKey{}).(*cmdContext); ok {
			return cctx, nil
		}
	}

	return nil, errNoContext
}

// openApp opens the escrow database under <home>/data. The caller must
// close the returned app.
func openApp(cmd *cobra.Command) (*app.App, error) {
	cctx, err := getCmdContext(cmd)
	if err != nil {
		return nil, err
	}

	dataDir := filepath.Join(cctx.viper.GetString(FlagHome), "data")
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, err
	}

	backend := dbm.BackendType(cctx.viper.GetString(FlagDBBackend))

	db, err := dbm.NewDB("escrow", backend, dataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", backend, err)
	}

	a, err := app.New(db, cctx.logger, app.WithChainID(cctx.viper.GetString(FlagChainID)))
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return a, nil
}
