package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGetLiveGames(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"body": {
				"live_games": [
					{
						"game_id": "g1",
						"sport": "basketball",
						"markets": {
							"m1": {"market_type": "MONEYLINE", "outcomes": {"o1": {}, "o2": {}}}
						}
					},
					{"game_id": "g2", "sport": "tennis", "markets": {}}
				]
			}
		}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)

	catalog, err := client.GetLiveGames(context.Background(), GetLiveGamesOptions{})
	if err != nil {
		t.Fatalf("GetLiveGames failed: %v", err)
	}

	if len(catalog.Games) != 2 {
		t.Fatalf("len(Games) = %d, want 2", len(catalog.Games))
	}
	if catalog.Games[0].GameID != "g1" {
		t.Errorf("Games[0].GameID = %q, want g1", catalog.Games[0].GameID)
	}
	if catalog.Games[1].Markets.Len() != 0 {
		t.Errorf("Games[1].Markets.Len() = %d, want 0", catalog.Games[1].Markets.Len())
	}

	// Raw must be the live_games array itself.
	var raw []json.RawMessage
	if err := json.Unmarshal(catalog.Raw, &raw); err != nil {
		t.Fatalf("Raw is not a JSON array: %v", err)
	}
	if len(raw) != 2 {
		t.Errorf("len(Raw) = %d, want 2", len(raw))
	}
}

func TestGetLiveGames_QueryParams(t *testing.T) {
	t.Run("omitted when empty", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Query().Has("sport") || r.URL.Query().Has("live") {
				t.Errorf("unexpected query params: %s", r.URL.RawQuery)
			}
			w.Write([]byte(`{"body": {"live_games": []}}`))
		}))
		defer server.Close()

		client := NewClient(server.URL)
		if _, err := client.GetLiveGames(context.Background(), GetLiveGamesOptions{}); err != nil {
			t.Fatalf("GetLiveGames failed: %v", err)
		}
	})

	t.Run("included when set", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if got := r.URL.Query().Get("sport"); got != "basketball" {
				t.Errorf("sport = %q, want basketball", got)
			}
			if got := r.URL.Query().Get("live"); got != "true" {
				t.Errorf("live = %q, want true", got)
			}
			w.Write([]byte(`{"body": {"live_games": []}}`))
		}))
		defer server.Close()

		client := NewClient(server.URL)
		opts := GetLiveGamesOptions{Sport: "basketball", Live: "true"}
		if _, err := client.GetLiveGames(context.Background(), opts); err != nil {
			t.Fatalf("GetLiveGames failed: %v", err)
		}
	})
}

func TestGetLiveGames_MissingLiveGames(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"empty object", `{}`},
		{"empty body", `{"body": {}}`},
		{"null live_games", `{"body": {"live_games": null}}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tc.body))
			}))
			defer server.Close()

			client := NewClient(server.URL)
			_, err := client.GetLiveGames(context.Background(), GetLiveGamesOptions{})
			if !errors.Is(err, ErrMissingLiveGames) {
				t.Errorf("err = %v, want ErrMissingLiveGames", err)
			}
		})
	}
}

func TestGetLiveGames_InvalidJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	if _, err := client.GetLiveGames(context.Background(), GetLiveGamesOptions{}); err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestGetLiveGames_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.GetLiveGames(context.Background(), GetLiveGamesOptions{})

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %v, want *APIError", err)
	}
	if apiErr.StatusCode != http.StatusInternalServerError {
		t.Errorf("StatusCode = %d, want 500", apiErr.StatusCode)
	}
}
