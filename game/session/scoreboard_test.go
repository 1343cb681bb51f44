package session

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gridgames/samegame/game/service"
)

func TestScoreboard_AddKeepsDescendingOrder(t *testing.T) {
	board, err := NewScoreboard(filepath.Join(t.TempDir(), "scores.json"))
	if err != nil {
		t.Fatalf("Failed to create scoreboard: %v", err)
	}

	for _, entry := range []service.ScoreEntry{
		{Name: "ab12", Score: 36, Difficulty: "easy", AchievedAt: time.Now()},
		{Name: "cd34", Score: 144, Difficulty: "medium", AchievedAt: time.Now()},
		{Name: "ef56", Score: 81, Difficulty: "easy", AchievedAt: time.Now()},
	} {
		if err := board.Add(entry); err != nil {
			t.Fatalf("Failed to add entry: %v", err)
		}
	}

	entries, err := board.Scores()
	if err != nil {
		t.Fatalf("Failed to read scores: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("Expected 3 entries, got %d", len(entries))
	}
	if entries[0].Score != 144 || entries[1].Score != 81 || entries[2].Score != 36 {
		t.Errorf("Expected descending order, got %d/%d/%d",
			entries[0].Score, entries[1].Score, entries[2].Score)
	}
}

func TestScoreboard_TiesKeepInsertionOrder(t *testing.T) {
	board, err := NewScoreboard(filepath.Join(t.TempDir(), "scores.json"))
	if err != nil {
		t.Fatalf("Failed to create scoreboard: %v", err)
	}

	board.Add(service.ScoreEntry{Name: "first", Score: 50})
	board.Add(service.ScoreEntry{Name: "second", Score: 50})

	entries, err := board.Scores()
	if err != nil {
		t.Fatalf("Failed to read scores: %v", err)
	}
	if entries[0].Name != "first" || entries[1].Name != "second" {
		t.Errorf("Expected stable order for ties, got %s/%s", entries[0].Name, entries[1].Name)
	}
}

func TestScoreboard_EmptyBoard(t *testing.T) {
	board, err := NewScoreboard(filepath.Join(t.TempDir(), "scores.json"))
	if err != nil {
		t.Fatalf("Failed to create scoreboard: %v", err)
	}

	entries, err := board.Scores()
	if err != nil {
		t.Fatalf("Failed to read empty scoreboard: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Expected empty board, got %d entries", len(entries))
	}
}

func TestScoreboard_Clear(t *testing.T) {
	board, err := NewScoreboard(filepath.Join(t.TempDir(), "scores.json"))
	if err != nil {
		t.Fatalf("Failed to create scoreboard: %v", err)
	}

	board.Add(service.ScoreEntry{Name: "ab12", Score: 9})
	if err := board.Clear(); err != nil {
		t.Fatalf("Failed to clear scoreboard: %v", err)
	}

	entries, err := board.Scores()
	if err != nil {
		t.Fatalf("Failed to read cleared scoreboard: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Expected no entries after clear, got %d", len(entries))
	}

	// Clearing an already empty board is fine
	if err := board.Clear(); err != nil {
		t.Errorf("Clearing empty board failed: %v", err)
	}
}

func TestRenderScores(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		text := RenderScores(nil)
		if !strings.Contains(text, "No scores") {
			t.Errorf("Expected empty-board message, got %q", text)
		}
	})

	t.Run("entries", func(t *testing.T) {
		text := RenderScores([]service.ScoreEntry{
			{Name: "ab12", Score: 144, Difficulty: "hard"},
			{Name: "cd34", Score: 36, Difficulty: "easy"},
		})
		if !strings.Contains(text, "ab12") || !strings.Contains(text, "144") {
			t.Errorf("Expected top entry in output, got %q", text)
		}
		if strings.Index(text, "ab12") > strings.Index(text, "cd34") {
			t.Error("Expected best score rendered first")
		}
	})
}
