package stream

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/behrendco/odds-scraper/internal/channels"
)

// Errors
var (
	ErrMissingChannel = errors.New("frame missing channel field")
	ErrMissingPayload = errors.New("frame missing payload field")
)

// FilterMessage narrows all received updates to a set of sportsbooks. Sent
// as the first frame on the global filter connection.
type FilterMessage struct {
	FilteredSportsbooks []string `json:"filtered_sportsbooks"`
	Action              string   `json:"action"`
}

// SubscribeMessage subscribes a connection to a single channel.
type SubscribeMessage struct {
	Channel string `json:"channel"`
	Action  string `json:"action"`
}

// frame is the inbound wire shape. Pointer fields distinguish a missing key
// from an empty value.
type frame struct {
	Channel *string          `json:"channel"`
	Payload *json.RawMessage `json:"payload"`
}

// Sink receives the decoded output of a run: the catalog once at start, then
// every inbound update. Implementations must be safe for concurrent use.
type Sink interface {
	Catalog(raw json.RawMessage) error
	Update(channel string, payload json.RawMessage) error
}

// Config holds per-connection settings shared by all runners.
type Config struct {
	URL              string
	HandshakeTimeout time.Duration
	WriteTimeout     time.Duration
}

// Subscription pairs a derived task with the frame announcing it. ID exists
// only for log correlation; it is assigned at launch so derivation stays
// deterministic.
type Subscription struct {
	ID      uuid.UUID
	Task    channels.Task
	Message any
}

// NewSubscription builds the outbound message for a task. Sportsbooks apply
// only to the global filter task.
func NewSubscription(task channels.Task, sportsbooks []string) Subscription {
	sub := Subscription{ID: uuid.New(), Task: task}
	if task.Kind == channels.KindGlobalFilter {
		sub.Message = FilterMessage{
			FilteredSportsbooks: sportsbooks,
			Action:              "filter",
		}
	} else {
		sub.Message = SubscribeMessage{
			Channel: task.Channel,
			Action:  "subscribe",
		}
	}
	return sub
}
