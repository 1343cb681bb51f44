package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/gridgames/samegame/game/engine"
)

// gameServiceImpl implements the GameService interface
type gameServiceImpl struct {
	sessions SessionManager
	configs  ConfigManager
	scores   ScoreKeeper
	mu       sync.RWMutex
}

// NewGameService creates a new game service instance
func NewGameService(sessions SessionManager, configs ConfigManager, scores ScoreKeeper) GameService {
	return &gameServiceImpl{
		sessions: sessions,
		configs:  configs,
		scores:   scores,
	}
}

// getConfigID returns the config_id for a given config name, used for consistent API responses
func (s *gameServiceImpl) getConfigID(configName string) string {
	availableConfigs, err := s.configs.ListConfigs()
	if err == nil {
		for _, cfg := range availableConfigs {
			if cfg.Name == configName {
				return cfg.ConfigID
			}
		}
	}
	// Fallback: return as-is or "default"
	if configName == "" {
		return "default"
	}
	return configName
}

// gameStateOf builds the wire representation of a session's engine state
func gameStateOf(e *engine.Engine) *GameState {
	var best *engine.Position
	if move, ok := e.BestMove(); ok {
		best = &move
	}
	return &GameState{
		State:            e.State(),
		Difficulty:       e.Difficulty(),
		Score:            e.Score(),
		PendingIncrement: e.PendingIncrement(),
		GridHeight:       e.GridHeight(),
		GridWidth:        e.GridWidth(),
		SelectedCount:    e.SelectedCount(),
		Grid:             e.Tiles(),
		BestMove:         best,
	}
}

// drainEvents empties a session's event buffer, tolerating sessions
// restored without a collector
func drainEvents(sess *Session) []GameEvent {
	if sess.Events == nil {
		return nil
	}
	return sess.Events.Drain()
}

// CreateSession creates a new game session
func (s *gameServiceImpl) CreateSession(ctx context.Context, configName string) (*SessionInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Load configuration
	var config *engine.GameConfig
	var err error
	if configName != "" {
		config, err = s.configs.LoadConfig(configName)
		if err != nil {
			// Provide helpful error message with available options
			if strings.Contains(err.Error(), "configuration not found") {
				availableConfigs, listErr := s.configs.ListConfigs()
				if listErr == nil && len(availableConfigs) > 0 {
					var configIDs []string
					for _, cfg := range availableConfigs {
						configIDs = append(configIDs, cfg.ConfigID)
					}
					return nil, fmt.Errorf("config '%s' not found. Available configs: %v", configName, configIDs)
				}
				return nil, fmt.Errorf("config '%s' not found. Use /api/configs to list available configurations", configName)
			}
			return nil, fmt.Errorf("failed to load config %s: %w", configName, err)
		}
	} else {
		config = s.configs.GetDefault()
	}

	// Let session manager generate a proper 4-character ID
	session, err := s.sessions.Create("", config)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	// The begin event from round start belongs to no caller
	drainEvents(session)

	// Determine the config identifier to return - prefer the input configName if provided,
	// otherwise look up the config_id by display name
	configID := configName
	if configID == "" {
		configID = s.getConfigID(config.Name)
	}

	return &SessionInfo{
		ID:             session.ID,
		ConfigName:     configID, // Return the config_id, not the display name
		CreatedAt:      session.CreatedAt,
		LastAccessedAt: session.LastAccessedAt,
		GameState:      gameStateOf(session.Engine),
		GameConfig:     session.Config,
	}, nil
}

// GetSession retrieves session information
func (s *gameServiceImpl) GetSession(ctx context.Context, sessionID string) (*SessionInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)

	return &SessionInfo{
		ID:             session.ID,
		ConfigName:     s.getConfigID(session.Config.Name), // Return config_id consistently
		CreatedAt:      session.CreatedAt,
		LastAccessedAt: session.LastAccessedAt,
		GameState:      gameStateOf(session.Engine),
		GameConfig:     session.Config,
	}, nil
}

// ListSessions returns all active sessions
func (s *gameServiceImpl) ListSessions(ctx context.Context) ([]*SessionInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sessions := s.sessions.List()
	result := make([]*SessionInfo, 0, len(sessions))

	for _, sess := range sessions {
		result = append(result, &SessionInfo{
			ID:             sess.ID,
			ConfigName:     s.getConfigID(sess.Config.Name), // Return config_id consistently
			CreatedAt:      sess.CreatedAt,
			LastAccessedAt: sess.LastAccessedAt,
			GameState:      gameStateOf(sess.Engine),
			GameConfig:     sess.Config,
		})
	}

	return result, nil
}

// DeleteSession removes a session
func (s *gameServiceImpl) DeleteSession(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.sessions.Delete(sessionID)
}

// Select previews a group selection at the given coordinates. Invalid
// coordinates and lone tiles are silent no-ops reported through the
// selected count.
func (s *gameServiceImpl) Select(ctx context.Context, sessionID string, row, col int) (*MoveResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}
	s.sessions.UpdateLastAccessed(sessionID)
	drainEvents(sess)

	sess.Engine.SelectAt(row, col)

	result := &MoveResult{
		Success:          sess.Engine.SelectedCount() >= 2,
		GameState:        gameStateOf(sess.Engine),
		Events:           drainEvents(sess),
		SelectedCount:    sess.Engine.SelectedCount(),
		PendingIncrement: sess.Engine.PendingIncrement(),
	}
	if !result.Success {
		result.Message = fmt.Sprintf("no removable group at (%d,%d)", row, col)
	}
	return result, nil
}

// Validate commits the pending selection: removes the tiles, applies the
// pending score increment and settles the round outcome.
func (s *gameServiceImpl) Validate(ctx context.Context, sessionID string) (*MoveResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}
	s.sessions.UpdateLastAccessed(sessionID)
	drainEvents(sess)

	scoreBefore := sess.Engine.Score()
	hadSelection := sess.Engine.SelectedCount() >= 2
	sess.Engine.ValidateSelection()

	events := drainEvents(sess)
	result := &MoveResult{
		Success:          hadSelection,
		GameState:        gameStateOf(sess.Engine),
		Events:           events,
		SelectedCount:    sess.Engine.SelectedCount(),
		PendingIncrement: sess.Engine.PendingIncrement(),
		ScoreDelta:       sess.Engine.Score() - scoreBefore,
	}
	if !hadSelection {
		result.Message = "nothing selected to validate"
	}
	for _, ev := range events {
		if ev.Type == string(engine.EventWin) || ev.Type == string(engine.EventLose) {
			result.Message = ev.Message
		}
	}
	return result, nil
}

// Hint searches for the highest-scoring move on the current grid
func (s *gameServiceImpl) Hint(ctx context.Context, sessionID string) (*HintResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}
	s.sessions.UpdateLastAccessed(sessionID)
	drainEvents(sess)

	sess.Engine.FindBestMove()

	var movePtr *engine.Position
	move, found := sess.Engine.BestMove()
	if found {
		movePtr = &move
	}
	return &HintResult{
		Found:            found,
		Move:             movePtr,
		PendingIncrement: sess.Engine.PendingIncrement(),
		GameState:        gameStateOf(sess.Engine),
		Events:           drainEvents(sess),
	}, nil
}

// NewGame starts a fresh round for the session, optionally switching difficulty
func (s *gameServiceImpl) NewGame(ctx context.Context, sessionID, difficulty string) (*GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}
	s.sessions.UpdateLastAccessed(sessionID)
	drainEvents(sess)

	if difficulty != "" {
		d, err := engine.ParseDifficulty(difficulty)
		if err != nil {
			return nil, err
		}
		sess.Engine.SetDifficulty(d)
	}
	sess.Engine.NewGame()
	drainEvents(sess)

	return gameStateOf(sess.Engine), nil
}

// Reset restarts the session's round at zero score, optionally switching difficulty
func (s *gameServiceImpl) Reset(ctx context.Context, sessionID, difficulty string) (*GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}
	s.sessions.UpdateLastAccessed(sessionID)
	drainEvents(sess)

	if difficulty != "" {
		d, err := engine.ParseDifficulty(difficulty)
		if err != nil {
			return nil, err
		}
		sess.Engine.ResetDifficulty(d)
	} else {
		sess.Engine.Reset()
	}
	drainEvents(sess)

	return gameStateOf(sess.Engine), nil
}

// GetGameState retrieves the current game state
func (s *gameServiceImpl) GetGameState(ctx context.Context, sessionID string) (*GameState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)
	return gameStateOf(sess.Engine), nil
}

// GetRules returns the rules text for the session's variant
func (s *gameServiceImpl) GetRules(ctx context.Context, sessionID string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return "", fmt.Errorf("session not found: %w", err)
	}

	return sess.Engine.RulesText(), nil
}

// GetScoreboard returns the recorded high scores, best first
func (s *gameServiceImpl) GetScoreboard(ctx context.Context) ([]ScoreEntry, error) {
	if s.scores == nil {
		return []ScoreEntry{}, nil
	}
	entries, err := s.scores.Scores()
	if err != nil {
		return nil, fmt.Errorf("failed to read scoreboard: %w", err)
	}
	if entries == nil {
		entries = []ScoreEntry{}
	}
	return entries, nil
}

// ClearScoreboard removes all recorded scores
func (s *gameServiceImpl) ClearScoreboard(ctx context.Context) error {
	if s.scores == nil {
		return nil
	}
	return s.scores.Clear()
}

// ListConfigs returns available variant configurations
func (s *gameServiceImpl) ListConfigs(ctx context.Context) ([]*ConfigInfo, error) {
	return s.configs.ListConfigs()
}

// LoadConfig loads a specific variant configuration
func (s *gameServiceImpl) LoadConfig(ctx context.Context, configName string) (*engine.GameConfig, error) {
	return s.configs.LoadConfig(configName)
}

// SaveConfig saves a variant configuration to disk
func (s *gameServiceImpl) SaveConfig(ctx context.Context, configName string, config *engine.GameConfig) error {
	return s.configs.SaveConfig(configName, config)
}
