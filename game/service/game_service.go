package service

import (
	"context"
	"time"

	"github.com/gridgames/samegame/game/engine"
)

// GameService defines all game-related operations
type GameService interface {
	// Session Management
	CreateSession(ctx context.Context, configName string) (*SessionInfo, error)
	GetSession(ctx context.Context, sessionID string) (*SessionInfo, error)
	ListSessions(ctx context.Context) ([]*SessionInfo, error)
	DeleteSession(ctx context.Context, sessionID string) error

	// Game Operations
	Select(ctx context.Context, sessionID string, row, col int) (*MoveResult, error)
	Validate(ctx context.Context, sessionID string) (*MoveResult, error)
	Hint(ctx context.Context, sessionID string) (*HintResult, error)
	NewGame(ctx context.Context, sessionID, difficulty string) (*GameState, error)
	Reset(ctx context.Context, sessionID, difficulty string) (*GameState, error)

	// Game State
	GetGameState(ctx context.Context, sessionID string) (*GameState, error)
	GetRules(ctx context.Context, sessionID string) (string, error)

	// Scoreboard
	GetScoreboard(ctx context.Context) ([]ScoreEntry, error)
	ClearScoreboard(ctx context.Context) error

	// Configuration
	ListConfigs(ctx context.Context) ([]*ConfigInfo, error)
	LoadConfig(ctx context.Context, configName string) (*engine.GameConfig, error)
	SaveConfig(ctx context.Context, configName string, config *engine.GameConfig) error
}

// SessionManager defines session storage operations
type SessionManager interface {
	Create(id string, config *engine.GameConfig) (*Session, error)
	Get(id string) (*Session, error)
	GetOrCreate(id string, config *engine.GameConfig) (*Session, error)
	List() []*Session
	Delete(id string) error
	UpdateLastAccessed(id string) error
	Save(id string) error
}

// ConfigManager handles variant configuration loading
type ConfigManager interface {
	LoadConfig(name string) (*engine.GameConfig, error)
	ListConfigs() ([]*ConfigInfo, error)
	GetDefault() *engine.GameConfig
	SaveConfig(name string, config *engine.GameConfig) error
}

// ScoreKeeper handles scoreboard storage
type ScoreKeeper interface {
	Add(entry ScoreEntry) error
	Scores() ([]ScoreEntry, error)
	Clear() error
}

// Session represents an active game session
type Session struct {
	ID             string
	Engine         *engine.Engine
	Config         *engine.GameConfig
	Events         *EventCollector
	CreatedAt      time.Time
	LastAccessedAt time.Time
}
