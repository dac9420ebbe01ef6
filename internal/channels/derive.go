package channels

import (
	"github.com/behrendco/odds-scraper/internal/api"
)

// Kind classifies a subscription task.
type Kind string

const (
	KindGlobalFilter  Kind = "global_filter"
	KindGameState     Kind = "game_state"
	KindMarketChannel Kind = "market_channel"
)

// Task is one derived subscription unit. Channel is empty for the global
// filter task, which subscribes to nothing and only narrows sportsbooks.
type Task struct {
	Kind    Kind
	Channel string
}

// Map associates a market type with the channel prefixes it contributes.
// Callers pass it in explicitly; derivation holds no global state.
type Map map[string][]string

// DefaultMap returns the recognized market types and their prefixes.
func DefaultMap() Map {
	return Map{
		"MONEYLINE": {"best_ml", "moneyline"},
		"SPREAD":    {"best_ms", "spread"},
	}
}

// GlobalFilter returns the sportsbook filter task injected at the head of
// every run.
func GlobalFilter() Task {
	return Task{Kind: KindGlobalFilter}
}

// Derive computes the subscription tasks for a catalog. Per game, in catalog
// order: one game_state task, then one task per (outcome, prefix) pair of
// every market whose type appears in m. Markets outside m contribute nothing.
// Duplicate channel strings are deliberately not deduplicated.
func Derive(games []api.Game, m Map) []Task {
	var tasks []Task
	for _, game := range games {
		tasks = append(tasks, Task{
			Kind:    KindGameState,
			Channel: "game_state." + game.GameID,
		})

		for _, marketID := range game.Markets.IDs() {
			market, ok := game.Markets.Get(marketID)
			if !ok {
				continue
			}
			prefixes, recognized := m[market.MarketType]
			if !recognized {
				continue
			}
			for _, outcomeID := range market.Outcomes.IDs() {
				for _, prefix := range prefixes {
					tasks = append(tasks, Task{
						Kind:    KindMarketChannel,
						Channel: prefix + "." + outcomeID,
					})
				}
			}
		}
	}
	return tasks
}
