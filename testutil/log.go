package testutil

import (
	"testing"

	"cosmossdk.io/log"
)

// Logger returns a logger that writes through t.Log.
func Logger(t testing.TB) log.Logger {
	return log.NewTestLogger(t)
}
