package app

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/desamtralized/mantra-escrow/pubsub"
)

type appOptions struct {
	chainID string
	bus     pubsub.Bus
	reg     prometheus.Registerer
}

type Option func(*appOptions)

// WithChainID sets the chain id reported in block headers
func WithChainID(val string) Option {
	return func(t *appOptions) {
		t.chainID = val
	}
}

// WithEventBus publishes the escrow events of every committed message to bus
func WithEventBus(val pubsub.Bus) Option {
	return func(t *appOptions) {
		t.bus = val
	}
}

// WithRegisterer registers the app metrics with reg
func WithRegisterer(val prometheus.Registerer) Option {
	return func(t *appOptions) {
		t.reg = val
	}
}
