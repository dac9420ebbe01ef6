package api

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Game is a single live game from the catalog.
type Game struct {
	GameID  string    `json:"game_id"`
	Sport   string    `json:"sport,omitempty"`
	League  string    `json:"league,omitempty"`
	Markets MarketSet `json:"markets"`
}

// Market is a bettable proposition on a game.
type Market struct {
	MarketType string     `json:"market_type"`
	Outcomes   OutcomeSet `json:"outcomes"`
}

// MarketSet is a collection of markets keyed by market ID. Unlike a plain
// map it remembers the key order of the JSON document it was decoded from.
type MarketSet struct {
	order []string
	items map[string]Market
}

// IDs returns the market IDs in document order.
func (s MarketSet) IDs() []string { return s.order }

// Get returns the market with the given ID.
func (s MarketSet) Get(id string) (Market, bool) {
	m, ok := s.items[id]
	return m, ok
}

// Len returns the number of markets.
func (s MarketSet) Len() int { return len(s.order) }

// UnmarshalJSON decodes a JSON object of market ID -> Market, preserving
// key order.
func (s *MarketSet) UnmarshalJSON(data []byte) error {
	s.order = nil
	s.items = make(map[string]Market)
	return unmarshalOrderedObject(data, "markets", func(id string, dec *json.Decoder) error {
		var m Market
		if err := dec.Decode(&m); err != nil {
			return fmt.Errorf("market %q: %w", id, err)
		}
		s.order = append(s.order, id)
		s.items[id] = m
		return nil
	})
}

// MarshalJSON encodes the markets as a JSON object in document order.
func (s MarketSet) MarshalJSON() ([]byte, error) {
	return marshalOrderedObject(s.order, func(id string) (any, bool) {
		m, ok := s.items[id]
		return m, ok
	})
}

// OutcomeSet is a collection of outcomes keyed by outcome ID, in document
// order. Outcome bodies carry odds fields the client does not interpret, so
// they are kept as raw JSON.
type OutcomeSet struct {
	order []string
	items map[string]json.RawMessage
}

// IDs returns the outcome IDs in document order.
func (s OutcomeSet) IDs() []string { return s.order }

// Get returns the raw outcome body for the given ID.
func (s OutcomeSet) Get(id string) (json.RawMessage, bool) {
	o, ok := s.items[id]
	return o, ok
}

// Len returns the number of outcomes.
func (s OutcomeSet) Len() int { return len(s.order) }

// UnmarshalJSON decodes a JSON object of outcome ID -> outcome body,
// preserving key order.
func (s *OutcomeSet) UnmarshalJSON(data []byte) error {
	s.order = nil
	s.items = make(map[string]json.RawMessage)
	return unmarshalOrderedObject(data, "outcomes", func(id string, dec *json.Decoder) error {
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("outcome %q: %w", id, err)
		}
		s.order = append(s.order, id)
		s.items[id] = raw
		return nil
	})
}

// MarshalJSON encodes the outcomes as a JSON object in document order.
func (s OutcomeSet) MarshalJSON() ([]byte, error) {
	return marshalOrderedObject(s.order, func(id string) (any, bool) {
		o, ok := s.items[id]
		return o, ok
	})
}

// unmarshalOrderedObject walks a JSON object token by token, calling visit
// for each key with the decoder positioned at the value. A JSON null is
// treated as an empty object.
func unmarshalOrderedObject(data []byte, what string, visit func(key string, dec *json.Decoder) error) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("%s: %w", what, err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("%s: expected JSON object, got %v", what, tok)
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("%s: %w", what, err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("%s: non-string key %v", what, keyTok)
		}
		if err := visit(key, dec); err != nil {
			return err
		}
	}

	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("%s: %w", what, err)
	}
	return nil
}

// marshalOrderedObject encodes keys in the given order as a JSON object.
func marshalOrderedObject(order []string, value func(key string) (any, bool)) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	for _, key := range order {
		v, ok := value(key)
		if !ok {
			continue
		}
		if !first {
			buf.WriteByte(',')
		}
		first = false
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		b, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		buf.Write(b)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
