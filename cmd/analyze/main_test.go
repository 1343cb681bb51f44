package main

import (
	"os"
	"testing"

	"github.com/gridgames/samegame/game/engine"
)

func TestPlayoutStats(t *testing.T) {
	stats := PlayoutStats{
		Games:      4,
		Wins:       1,
		TotalScore: 100,
		TotalMoves: 40,
		TotalLeft:  8,
		BestScore:  49,
	}

	if got := stats.WinRate(); got != 25.0 {
		t.Errorf("WinRate() = %.1f, expected 25.0", got)
	}
	if got := stats.AvgScore(); got != 25.0 {
		t.Errorf("AvgScore() = %.1f, expected 25.0", got)
	}
	if got := stats.AvgMoves(); got != 10.0 {
		t.Errorf("AvgMoves() = %.1f, expected 10.0", got)
	}
	if got := stats.AvgTilesLeft(); got != 2.0 {
		t.Errorf("AvgTilesLeft() = %.1f, expected 2.0", got)
	}
}

func TestPlayoutStats_NoGames(t *testing.T) {
	var stats PlayoutStats

	if got := stats.WinRate(); got != 0 {
		t.Errorf("WinRate() = %.1f, expected 0", got)
	}
	if got := stats.AvgScore(); got != 0 {
		t.Errorf("AvgScore() = %.1f, expected 0", got)
	}
}

func testConfig() *engine.GameConfig {
	config := &engine.GameConfig{
		Name:        "Analyze Test",
		Description: "Small grid for playout tests",
		GridHeight:  4,
		GridWidth:   5,
	}
	config.Colors.Easy = 2
	config.Colors.Medium = 3
	config.Colors.Hard = 4
	config.Colors.Default = 3
	config.Messages.Rules = "rules"
	config.Messages.Win = "win"
	config.Messages.Lose = "lose"
	return config
}

func TestRunPlayouts(t *testing.T) {
	stats := runPlayouts(testConfig(), engine.Easy, 20)

	if stats.Games != 20 {
		t.Errorf("Expected 20 games, got %d", stats.Games)
	}
	if stats.TotalMoves == 0 {
		t.Error("Expected greedy playouts to make at least one move")
	}
	if stats.TotalScore < 0 {
		t.Errorf("Expected non-negative total score, got %d", stats.TotalScore)
	}
	if stats.Wins > stats.Games {
		t.Errorf("Wins %d cannot exceed games %d", stats.Wins, stats.Games)
	}
	// A won playout leaves no tiles; a lost one leaves at least two
	if stats.Wins == stats.Games && stats.TotalLeft != 0 {
		t.Errorf("All games won but %d tiles left", stats.TotalLeft)
	}
}

func TestRunPlayouts_Deterministic(t *testing.T) {
	a := runPlayouts(testConfig(), engine.Medium, 10)
	b := runPlayouts(testConfig(), engine.Medium, 10)

	if a != b {
		t.Errorf("Expected seeded playouts to be deterministic: %+v vs %+v", a, b)
	}
}

func TestAnalyzeConfig_ValidFile(t *testing.T) {
	validConfig := `{
		"name": "Test Config",
		"description": "Test configuration",
		"grid_height": 4,
		"grid_width": 5,
		"colors": {
			"easy": 2,
			"medium": 3,
			"hard": 4,
			"default": 3
		},
		"messages": {
			"rules": "rules",
			"win": "win",
			"lose": "lose"
		}
	}`

	tmpfile, err := os.CreateTemp("", "test_config_*.json")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	defer os.Remove(tmpfile.Name())

	if _, err := tmpfile.Write([]byte(validConfig)); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	tmpfile.Close()

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("analyzeConfig panicked: %v", r)
		}
	}()

	analyzeConfig(tmpfile.Name())
}

func TestAnalyzeConfig_InvalidFile(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("analyzeConfig panicked with invalid file: %v", r)
		}
	}()

	analyzeConfig("/non/existent/file.json")
}

func TestAnalyzeConfig_InvalidJSON(t *testing.T) {
	invalidJSON := `{"name": "test", invalid json}`

	tmpfile, err := os.CreateTemp("", "test_config_*.json")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	defer os.Remove(tmpfile.Name())

	if _, err := tmpfile.Write([]byte(invalidJSON)); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	tmpfile.Close()

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("analyzeConfig panicked with invalid JSON: %v", r)
		}
	}()

	analyzeConfig(tmpfile.Name())
}

func TestAnalyzeConfig_InvalidDimensions(t *testing.T) {
	badConfig := `{
		"name": "Bad",
		"grid_height": 0,
		"grid_width": 5,
		"colors": {"easy": 2, "medium": 3, "hard": 4, "default": 3},
		"messages": {"rules": "r", "win": "w", "lose": "l"}
	}`

	tmpfile, err := os.CreateTemp("", "test_config_*.json")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	defer os.Remove(tmpfile.Name())

	if _, err := tmpfile.Write([]byte(badConfig)); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	tmpfile.Close()

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("analyzeConfig panicked with invalid dimensions: %v", r)
		}
	}()

	analyzeConfig(tmpfile.Name())
}
