package stream

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/gorilla/websocket"

	"github.com/behrendco/odds-scraper/internal/metrics"
)

// Runner drives a single subscription over its own WebSocket connection.
// One Runner is shared by all subscriptions of a session; Run carries the
// per-subscription state.
type Runner struct {
	cfg     Config
	sink    Sink
	logger  *slog.Logger
	metrics *metrics.Stream
}

// NewRunner creates a Runner.
func NewRunner(cfg Config, sink Sink, logger *slog.Logger, m *metrics.Stream) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{
		cfg:     cfg,
		sink:    sink,
		logger:  logger,
		metrics: m,
	}
}

// Run connects, sends the subscription frame, then receives until the
// connection closes or ctx is canceled. A clean close and cancellation both
// return nil. A transport error returns that error; it affects no other
// subscription. Malformed inbound frames are logged and skipped.
func (r *Runner) Run(ctx context.Context, sub Subscription) error {
	logger := r.logger.With(
		"task_id", sub.ID,
		"kind", sub.Task.Kind,
		"channel", sub.Task.Channel,
	)

	dialer := websocket.Dialer{
		HandshakeTimeout: r.cfg.HandshakeTimeout,
	}

	conn, _, err := dialer.DialContext(ctx, r.cfg.URL, nil)
	if err != nil {
		r.metrics.ConnectFailure()
		return fmt.Errorf("dial %s: %w", r.cfg.URL, err)
	}

	r.metrics.SubscriptionStarted()
	defer r.metrics.SubscriptionEnded()
	defer conn.Close()

	// Unblock ReadMessage when ctx ends by closing the connection.
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			conn.WriteControl(
				websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(time.Second),
			)
			conn.Close()
		case <-done:
		}
	}()

	// Server pings keep the connection alive; answer them.
	conn.SetPingHandler(func(data string) error {
		return conn.WriteControl(
			websocket.PongMessage,
			[]byte(data),
			time.Now().Add(r.cfg.WriteTimeout),
		)
	})

	payload, err := json.Marshal(sub.Message)
	if err != nil {
		return fmt.Errorf("marshal subscription: %w", err)
	}

	conn.SetWriteDeadline(time.Now().Add(r.cfg.WriteTimeout))
	if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
		return fmt.Errorf("send subscription: %w", err)
	}

	logger.Debug("subscribed")

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil || isNormalClosure(err) {
				logger.Debug("subscription closed")
				return nil
			}
			return fmt.Errorf("receive: %w", err)
		}

		if err := r.deliver(data); err != nil {
			r.metrics.DecodeError()
			logger.Warn("dropping frame", "error", err)
			continue
		}
		r.metrics.UpdateDelivered(string(sub.Task.Kind))
	}
}

// deliver decodes one inbound frame and hands it to the sink.
func (r *Runner) deliver(data []byte) error {
	var f frame
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("decode frame: %w", err)
	}
	if f.Channel == nil {
		return ErrMissingChannel
	}
	if f.Payload == nil {
		return ErrMissingPayload
	}
	return r.sink.Update(*f.Channel, *f.Payload)
}

func isNormalClosure(err error) bool {
	return websocket.IsCloseError(err,
		websocket.CloseNormalClosure,
		websocket.CloseGoingAway,
	)
}
