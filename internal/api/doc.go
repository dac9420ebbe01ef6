// Package api provides the client for the OddsView REST API.
//
// Live-games endpoint:
//   - https://49pzwry2rc.execute-api.us-east-1.amazonaws.com/prod/getLiveGames
//
// Responses arrive wrapped in an API Gateway envelope:
//
//	{"body": {"live_games": [Game, ...]}}
//
// Markets and outcomes are JSON objects keyed by ID; MarketSet and OutcomeSet
// preserve the document order of those keys so channel derivation downstream
// follows catalog order.
package api
