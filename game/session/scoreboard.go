package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/gridgames/samegame/game/service"
)

// Scoreboard is a JSON file of high scores kept in descending order
type Scoreboard struct {
	path string
	mu   sync.Mutex
}

// NewScoreboard creates a scoreboard backed by the given file path
func NewScoreboard(path string) (*Scoreboard, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create scoreboard directory: %w", err)
	}
	return &Scoreboard{path: path}, nil
}

// Add records a score and rewrites the file, best score first
func (sb *Scoreboard) Add(entry service.ScoreEntry) error {
	sb.mu.Lock()
	defer sb.mu.Unlock()

	entries, err := sb.read()
	if err != nil {
		return err
	}
	entries = append(entries, entry)
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal scoreboard: %w", err)
	}
	if err := os.WriteFile(sb.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write scoreboard: %w", err)
	}
	return nil
}

// Scores returns the recorded entries, best score first
func (sb *Scoreboard) Scores() ([]service.ScoreEntry, error) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	return sb.read()
}

// Clear removes the scoreboard file
func (sb *Scoreboard) Clear() error {
	sb.mu.Lock()
	defer sb.mu.Unlock()

	if err := os.Remove(sb.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove scoreboard: %w", err)
	}
	return nil
}

// read loads the entries from disk; a missing file is an empty board
func (sb *Scoreboard) read() ([]service.ScoreEntry, error) {
	data, err := os.ReadFile(sb.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read scoreboard: %w", err)
	}

	var entries []service.ScoreEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse scoreboard: %w", err)
	}
	return entries, nil
}

// RenderScores formats scoreboard entries as display text
func RenderScores(entries []service.ScoreEntry) string {
	if len(entries) == 0 {
		return "No scores yet\n"
	}

	var b strings.Builder
	b.WriteString("High scores\n")
	for i, entry := range entries {
		fmt.Fprintf(&b, "%2d. %-12s %6d  (%s)\n", i+1, entry.Name, entry.Score, entry.Difficulty)
	}
	return b.String()
}
