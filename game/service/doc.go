// Package service provides the business logic layer for the SameGame server.
//
// The service package implements:
//   - Multi-session game management
//   - Variant configuration management and loading
//   - Selection, validation and hint processing
//   - Session lifecycle management
//   - Scoreboard access
//
// Core Interfaces:
//
// GameService is the main service interface providing high-level game operations.
// SessionManager handles session creation, retrieval, and lifecycle.
// ConfigManager manages variant configuration loading and validation.
// ScoreKeeper manages the persistent high-score list.
//
// Architecture:
//
// The service layer sits between the transport layer (HTTP/WebSocket/MCP) and
// the game engine, providing session isolation, configuration management, and
// business logic orchestration. Each session maintains its own game engine
// instance with independent state. Engine events published during an operation
// are collected per session and returned in the operation's result.
//
// Usage:
//
//	sessionMgr := session.NewManager()
//	configMgr := config.NewManager("configs")
//	gameService := service.NewGameService(sessionMgr, configMgr, nil)
//
//	// Create a new session
//	sessionInfo, err := gameService.CreateSession(ctx, "classic")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Preview and commit a move
//	preview, err := gameService.Select(ctx, sessionInfo.ID, 3, 4)
//	result, err := gameService.Validate(ctx, sessionInfo.ID)
//
// Session Management:
//
// Sessions are identified by unique 4-character IDs and maintain independent
// game state. Multiple sessions can run concurrently with different
// configurations. Sessions track creation time and last access time, and are
// saved through the session manager's persistence layer as the game advances.
package service
