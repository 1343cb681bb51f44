// Package websocket provides WebSocket transport for the SameGame engine.
//
// The websocket package implements:
//   - Real-time grid state push after each committed move
//   - Session-aware WebSocket connections
//   - Engine event fan-out (next_move, win, lose, hint, ...)
//   - Connection lifecycle management
//
// Architecture:
//
// The package uses a hub-and-spoke model where a central Hub manages all
// WebSocket connections. Each client connection is handled by a dedicated
// goroutine that manages reading, writing, and cleanup.
//
// Message Protocol:
//
// Messages are JSON-encoded and flow server-to-client only. Each message
// carries the session ID, an event name ("state_update", "move", or a
// custom event), and optionally the full GameState plus the engine events
// the triggering operation produced.
//
// Session Integration:
//
// WebSocket connections are session-aware. Clients specify their session ID
// via query parameter (?sessionId=ab12) when establishing the connection.
// State updates are broadcast only to clients connected to the same session,
// so two browser tabs watching the same board stay in sync while other
// sessions see nothing.
//
// Usage:
//
//	hub := websocket.NewHub()
//	go hub.Run()
//
//	router.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
//		hub.ServeWS(w, r, r.URL.Query().Get("sessionId"))
//	})
//
// Connection Lifecycle:
//
// 1. Client connects with session ID
// 2. Connection registered with hub
// 3. Server pushes a state update on every committed move
// 4. Disconnection triggers cleanup
//
// Concurrency:
//
// The hub and client handlers are designed for concurrent operation.
// Multiple clients can connect, disconnect, and receive broadcasts
// simultaneously without blocking each other.
package websocket
