package testutil

import (
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"
)

// EventAttributes returns the attributes of the last event of type typ.
func EventAttributes(t testing.TB, events sdk.Events, typ string) map[string]string {
	t.Helper()

	var found *sdk.Event
	for idx := range events {
		if events[idx].Type == typ {
			found = &events[idx]
		}
	}
	require.NotNil(t, found, "no %q event emitted", typ)

	attrs := make(map[string]string, len(found.Attributes))
	for _, attr := range found.Attributes {
		attrs[attr.Key] = attr.Value
	}

	return attrs
}
