package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Stream holds the collectors for the subscription layer. A nil *Stream is
// valid and records nothing, so components can run unmetered in tests.
type Stream struct {
	updatesTotal         *prometheus.CounterVec
	decodeErrorsTotal    prometheus.Counter
	connectFailuresTotal prometheus.Counter
	activeSubscriptions  prometheus.Gauge
}

// NewStream creates and registers the stream collectors.
func NewStream(reg prometheus.Registerer) *Stream {
	s := &Stream{
		updatesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "oddsview_updates_total",
			Help: "Inbound updates delivered to the sink, by subscription kind.",
		}, []string{"kind"}),
		decodeErrorsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "oddsview_decode_errors_total",
			Help: "Inbound frames dropped because they could not be decoded.",
		}),
		connectFailuresTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "oddsview_connect_failures_total",
			Help: "Subscription connections that failed to establish.",
		}),
		activeSubscriptions: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "oddsview_active_subscriptions",
			Help: "Currently open subscription connections.",
		}),
	}

	reg.MustRegister(
		s.updatesTotal,
		s.decodeErrorsTotal,
		s.connectFailuresTotal,
		s.activeSubscriptions,
	)

	return s
}

// UpdateDelivered records one update handed to the sink.
func (s *Stream) UpdateDelivered(kind string) {
	if s == nil {
		return
	}
	s.updatesTotal.WithLabelValues(kind).Inc()
}

// DecodeError records one skipped inbound frame.
func (s *Stream) DecodeError() {
	if s == nil {
		return
	}
	s.decodeErrorsTotal.Inc()
}

// ConnectFailure records one failed connection attempt.
func (s *Stream) ConnectFailure() {
	if s == nil {
		return
	}
	s.connectFailuresTotal.Inc()
}

// SubscriptionStarted marks a connection as open.
func (s *Stream) SubscriptionStarted() {
	if s == nil {
		return
	}
	s.activeSubscriptions.Inc()
}

// SubscriptionEnded marks a connection as closed.
func (s *Stream) SubscriptionEnded() {
	if s == nil {
		return
	}
	s.activeSubscriptions.Dec()
}
