package app

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	SuccessLabel = "success"
	FailLabel    = "fail"
)

type appMetrics struct {
	messages *prometheus.CounterVec
	height   prometheus.Gauge
}

// newMetrics creates the app collectors and registers them with reg. A nil
// reg leaves them unregistered.
func newMetrics(reg prometheus.Registerer) *appMetrics {
	factory := promauto.With(reg)

	return &appMetrics{
		messages: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "escrow_messages_total",
			Help: "Delivered escrow messages by type and result",
		}, []string{"type", "result"}),
		height: factory.NewGauge(prometheus.GaugeOpts{
			Name: "escrow_height",
			Help: "Last committed escrow height",
		}),
	}
}

func (m *appMetrics) observeMessage(msgType string, err error) {
	label := SuccessLabel
	if err != nil {
		label = FailLabel
	}
	m.messages.WithLabelValues(msgType, label).Inc()
}
