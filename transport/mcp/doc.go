// Package mcp provides a Model Context Protocol server for the SameGame engine.
//
// The mcp package implements:
//   - MCP server for AI agent integration
//   - Tool definitions for game operations
//   - Session-aware command execution
//   - Stdio transport via the REST proxy client
//
// MCP Tools:
//
// The package exposes the following tools for AI agents:
//   - game_state: Get current grid state with score and selection
//   - select_tiles: Preview a group selection at (row, col)
//   - validate_move: Commit the cached selection
//   - hint: Find the highest-scoring move on the grid
//   - new_game: Start a fresh round, optionally switching difficulty
//   - reset_game: Reset the current round
//   - scoreboard / clear_scoreboard: Read and wipe the high score table
//   - create_session: Create new game session with config selection
//   - get_session: Get specific session details
//   - list_sessions: List all active sessions
//   - list_configs: List available game configurations
//   - game_rules: Get the variant rules text
//   - game_instructions: Get comprehensive instructions and strategy
//   - describe_tile: Inspect a single tile and its connected group
//
// Architecture:
//
// The Client is a thin proxy: every tool call becomes a REST request
// against the game server, so the MCP process carries no game state of
// its own and can restart freely. Responses are rendered as text with a
// digit-grid visualization of the board.
//
// Usage:
//
//	client := mcp.NewClient("http://localhost:8080")
//	server.ServeStdio(client.GetMCPServer())
//
// AI Integration:
//
// The MCP interface enables AI agents to:
//   - Autonomously play rounds via the select/validate protocol
//   - Develop and test clearing strategies
//   - Analyze grid states and group structure
//   - Manage multiple game sessions
//   - Compete on the shared scoreboard
package mcp
