package service

import (
	"sync"
	"time"

	"github.com/gridgames/samegame/game/engine"
)

// SessionInfo provides information about a game session
type SessionInfo struct {
	ID             string             `json:"id"`
	ConfigName     string             `json:"config_name"`
	CreatedAt      time.Time          `json:"created_at"`
	LastAccessedAt time.Time          `json:"last_accessed_at"`
	GameState      *GameState         `json:"game_state"`
	GameConfig     *engine.GameConfig `json:"game_config"`
}

// GameState is the wire representation of a session's engine state
type GameState struct {
	State            engine.State      `json:"state"`
	Difficulty       engine.Difficulty `json:"difficulty"`
	Score            int               `json:"score"`
	PendingIncrement int               `json:"pending_increment"`
	GridHeight       int               `json:"grid_height"`
	GridWidth        int               `json:"grid_width"`
	SelectedCount    int               `json:"selected_count"`
	Grid             [][]engine.Tile   `json:"grid"`
	BestMove         *engine.Position  `json:"best_move,omitempty"`
}

// MoveResult contains the result of a select or validate operation
type MoveResult struct {
	Success          bool        `json:"success"`
	GameState        *GameState  `json:"game_state"`
	Message          string      `json:"message,omitempty"`
	Events           []GameEvent `json:"events,omitempty"`
	SelectedCount    int         `json:"selected_count"`
	PendingIncrement int         `json:"pending_increment"`
	ScoreDelta       int         `json:"score_delta"`
}

// HintResult contains the result of a best-move search
type HintResult struct {
	Found            bool             `json:"found"`
	Move             *engine.Position `json:"move,omitempty"`
	PendingIncrement int              `json:"pending_increment"`
	GameState        *GameState       `json:"game_state"`
	Events           []GameEvent      `json:"events,omitempty"`
}

// GameEvent represents an engine event that occurred during an operation
type GameEvent struct {
	Type      string    `json:"type"` // engine event vocabulary: "begin", "pre_valid", "next_move", "win", "lose", ...
	Message   string    `json:"message,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// ScoreEntry is a single scoreboard record
type ScoreEntry struct {
	Name       string    `json:"name"`
	Score      int       `json:"score"`
	Difficulty string    `json:"difficulty"`
	AchievedAt time.Time `json:"achieved_at"`
}

// ConfigInfo provides information about a variant configuration
type ConfigInfo struct {
	Filename    string `json:"filename"`
	ConfigID    string `json:"config_id"` // The identifier to use for session creation
	Name        string `json:"name"`      // Display name
	Description string `json:"description"`
	GridHeight  int    `json:"grid_height"`
	GridWidth   int    `json:"grid_width"`
}

// EventCollector buffers engine events so service operations can return
// the events published while they held the session.
type EventCollector struct {
	mu     sync.Mutex
	events []GameEvent
}

// NewEventCollector creates an empty collector
func NewEventCollector() *EventCollector {
	return &EventCollector{}
}

// OnGameEvent implements engine.Listener
func (c *EventCollector) OnGameEvent(event engine.Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, GameEvent{
		Type:      string(event.Type),
		Message:   event.Arg,
		Timestamp: time.Now(),
	})
}

// Drain returns the buffered events and clears the buffer
func (c *EventCollector) Drain() []GameEvent {
	c.mu.Lock()
	defer c.mu.Unlock()
	events := c.events
	c.events = nil
	return events
}
