// Package channels turns the live-games catalog into the flat set of
// subscription tasks the push transport understands.
//
// Channel naming:
//   - game_state.{game_id} for every game
//   - {prefix}.{outcome_id} for every outcome of a recognized market,
//     e.g. best_ml.123 / moneyline.123 for a MONEYLINE market
//
// Derivation is pure: the same catalog and map always produce the same task
// sequence, in catalog order. Duplicate channel strings are not filtered.
package channels
