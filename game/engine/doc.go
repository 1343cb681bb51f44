// Package engine provides the core game logic for same-color tile
// elimination puzzles.
//
// The engine package implements the game mechanics including:
//   - Grid storage with connected-group selection, removal and compaction
//   - Score accounting with a pending increment for the cached selection
//   - Lifecycle management (prestart, ongoing, won, lost)
//   - Greedy single-move best-move search for hints
//   - A typed event vocabulary with synchronous listener fan-out
//   - Variant configuration loading and validation
//
// Core Types:
//
// The Rules interface defines the extension points a concrete game variant
// supplies: grid generation by difficulty, the scoring rule, the win and
// lose predicates and the player-facing texts. SameGame is the shipped
// variant. Engine drives a Grid through the move protocol and notifies its
// listeners of every observable transition.
//
// Usage:
//
//	rules, err := engine.NewSameGame(engine.DefaultConfig(), nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	game := engine.New(rules)
//	game.AddListener(myObserver)
//	game.NewGame()
//
//	game.SelectAt(3, 4)
//	game.ValidateSelection()
//
// Game Rules:
//
// Players repeatedly pick a connected group of two or more equal-valued
// tiles. Validating a selection removes the group, compacts the grid and
// awards points. Clearing the grid wins the round; running out of playable
// groups while tiles remain loses it.
package engine
