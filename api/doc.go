// Package api provides HTTP REST API handlers for the SameGame server.
//
// The api package implements:
//   - RESTful endpoints for game operations
//   - Session management endpoints
//   - Configuration listing and creation
//   - Scoreboard access
//   - WebSocket upgrade handling
//   - Static file serving
//
// Endpoints:
//
// Session Management:
//   - POST /api/sessions - Create new session
//   - GET /api/sessions - List all sessions (sort, order, limit)
//   - GET /api/sessions/unified - Multi-board overview
//   - GET /api/sessions/{id} - Get specific session
//   - DELETE /api/sessions/{id} - Delete session
//
// Game Operations:
//   - GET /api/sessions/{id}/state - Get current grid state
//   - POST /api/sessions/{id}/select - Preview a group selection {row, col}
//   - POST /api/sessions/{id}/validate - Commit the cached selection
//   - POST /api/sessions/{id}/hint - Find the highest-scoring move
//   - POST /api/sessions/{id}/new-game - Start a fresh round {difficulty?}
//   - POST /api/sessions/{id}/reset - Reset the round {difficulty?}
//   - GET /api/sessions/{id}/rules - Get the variant rules text
//
// Scoreboard:
//   - GET /api/scoreboard - List recorded wins, best first
//   - DELETE /api/scoreboard - Clear all entries
//
// Configuration:
//   - GET /api/configs - List available configurations
//   - POST /api/configs - Save a new configuration
//   - GET /api/configs/{name} - Get a specific configuration
//
// Request/Response Format:
//
// All endpoints accept and return JSON. Move operations return a MoveResult
// carrying the full grid state, the engine events the operation produced,
// and the score delta. Selecting is a two-step protocol: /select caches a
// group and previews its pending score, /validate removes the tiles and
// settles the outcome.
//
//	POST /api/sessions/{id}/select
//	{
//	  "row": 2,
//	  "col": 3
//	}
//
// Error Handling:
//
// Errors are returned as JSON with appropriate HTTP status codes:
//
//	{
//	  "error": "error message"
//	}
package api
