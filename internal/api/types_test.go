package api

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestMarketSet_UnmarshalOrder(t *testing.T) {
	// Key order deliberately not lexicographic.
	data := []byte(`{
		"m3": {"market_type": "SPREAD", "outcomes": {"z": {}, "a": {}}},
		"m1": {"market_type": "MONEYLINE", "outcomes": {"o2": {}, "o1": {}}},
		"m2": {"market_type": "TOTAL", "outcomes": {}}
	}`)

	var set MarketSet
	if err := json.Unmarshal(data, &set); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	wantIDs := []string{"m3", "m1", "m2"}
	if got := set.IDs(); !reflect.DeepEqual(got, wantIDs) {
		t.Errorf("IDs() = %v, want %v", got, wantIDs)
	}
	if set.Len() != 3 {
		t.Errorf("Len() = %d, want 3", set.Len())
	}

	m, ok := set.Get("m1")
	if !ok {
		t.Fatal("Get(m1) not found")
	}
	if m.MarketType != "MONEYLINE" {
		t.Errorf("m1 MarketType = %q, want MONEYLINE", m.MarketType)
	}
	if got := m.Outcomes.IDs(); !reflect.DeepEqual(got, []string{"o2", "o1"}) {
		t.Errorf("m1 outcome IDs = %v, want [o2 o1]", got)
	}
}

func TestMarketSet_MarshalRoundTrip(t *testing.T) {
	data := []byte(`{"b":{"market_type":"SPREAD","outcomes":{"y":{},"x":{}}},"a":{"market_type":"MONEYLINE","outcomes":{}}}`)

	var set MarketSet
	if err := json.Unmarshal(data, &set); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	out, err := json.Marshal(set)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var again MarketSet
	if err := json.Unmarshal(out, &again); err != nil {
		t.Fatalf("re-Unmarshal failed: %v", err)
	}

	if !reflect.DeepEqual(again.IDs(), set.IDs()) {
		t.Errorf("round-trip IDs = %v, want %v", again.IDs(), set.IDs())
	}

	b, _ := again.Get("b")
	if got := b.Outcomes.IDs(); !reflect.DeepEqual(got, []string{"y", "x"}) {
		t.Errorf("round-trip outcome IDs = %v, want [y x]", got)
	}
}

func TestMarketSet_Null(t *testing.T) {
	var set MarketSet
	if err := json.Unmarshal([]byte(`null`), &set); err != nil {
		t.Fatalf("Unmarshal null failed: %v", err)
	}
	if set.Len() != 0 {
		t.Errorf("Len() = %d, want 0", set.Len())
	}
}

func TestMarketSet_NotAnObject(t *testing.T) {
	var set MarketSet
	if err := json.Unmarshal([]byte(`[1,2]`), &set); err == nil {
		t.Error("expected error for non-object markets")
	}
}

func TestOutcomeSet_RawBodies(t *testing.T) {
	data := []byte(`{"o1": {"odds": 1.91, "line": -3.5}, "o2": {"odds": 2.05}}`)

	var set OutcomeSet
	if err := json.Unmarshal(data, &set); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	raw, ok := set.Get("o1")
	if !ok {
		t.Fatal("Get(o1) not found")
	}

	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("decode outcome body: %v", err)
	}
	if body["line"] != -3.5 {
		t.Errorf("o1 line = %v, want -3.5", body["line"])
	}
}

func TestGame_Unmarshal(t *testing.T) {
	data := []byte(`{
		"game_id": "g1",
		"sport": "basketball",
		"league": "NBA",
		"markets": {
			"m1": {"market_type": "MONEYLINE", "outcomes": {"o1": {}}}
		}
	}`)

	var game Game
	if err := json.Unmarshal(data, &game); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if game.GameID != "g1" {
		t.Errorf("GameID = %q, want g1", game.GameID)
	}
	if game.Sport != "basketball" {
		t.Errorf("Sport = %q, want basketball", game.Sport)
	}
	if game.Markets.Len() != 1 {
		t.Errorf("Markets.Len() = %d, want 1", game.Markets.Len())
	}
}
