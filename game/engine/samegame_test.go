package engine

import (
	"math/rand"
	"testing"
)

func TestNewSameGame_DefaultsWhenNil(t *testing.T) {
	rules, err := NewSameGame(nil, nil)
	if err != nil {
		t.Fatalf("Failed to create rules with defaults: %v", err)
	}
	if rules.Config().Name != "classic" {
		t.Errorf("Expected classic config, got %q", rules.Config().Name)
	}
}

func TestNewSameGame_RejectsInvalidConfig(t *testing.T) {
	config := DefaultConfig()
	config.GridHeight = 0

	if _, err := NewSameGame(config, nil); err == nil {
		t.Error("Expected error for invalid config")
	}
}

func TestPaletteSize(t *testing.T) {
	rules, err := NewSameGame(nil, nil)
	if err != nil {
		t.Fatalf("Failed to create rules: %v", err)
	}

	tests := []struct {
		difficulty Difficulty
		want       int
	}{
		{Easy, 2},
		{Medium, 3},
		{Hard, 4},
		{Difficulty("nightmare"), 3}, // unrecognized tier uses the default
	}

	for _, tt := range tests {
		if got := rules.PaletteSize(tt.difficulty); got != tt.want {
			t.Errorf("PaletteSize(%q): expected %d, got %d", tt.difficulty, tt.want, got)
		}
	}
}

func TestGenerateGrid(t *testing.T) {
	rules, err := NewSameGame(nil, rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatalf("Failed to create rules: %v", err)
	}

	grid := rules.GenerateGrid(Easy)
	if grid.Height() != 10 || grid.Width() != 15 {
		t.Errorf("Expected 10x15 grid, got %dx%d", grid.Height(), grid.Width())
	}

	for i, row := range grid.Tiles() {
		for j, tile := range row {
			if tile.Value < 0 || tile.Value >= 2 {
				t.Errorf("Tile (%d,%d): value %d outside easy palette", i, j, tile.Value)
			}
		}
	}
}

func TestScoreIncrement(t *testing.T) {
	rules, err := NewSameGame(nil, nil)
	if err != nil {
		t.Fatalf("Failed to create rules: %v", err)
	}

	tests := []struct {
		n    int
		want int
	}{
		{0, 0},
		{1, 0},
		{2, 0}, // a pair is playable but scores nothing
		{3, 1},
		{5, 9},
		{10, 64},
		{150, 21904},
	}

	for _, tt := range tests {
		if got := rules.ScoreIncrement(tt.n); got != tt.want {
			t.Errorf("ScoreIncrement(%d): expected %d, got %d", tt.n, tt.want, got)
		}
	}
}

func TestCheckWin(t *testing.T) {
	rules, err := NewSameGame(nil, nil)
	if err != nil {
		t.Fatalf("Failed to create rules: %v", err)
	}

	grid := NewGridFromRows([][]int{{0, 0}})
	if rules.CheckWin(grid) {
		t.Error("Non-empty grid reported as won")
	}

	grid.SelectGroup(0, 0)
	grid.RemoveSelected()
	if !rules.CheckWin(grid) {
		t.Error("Empty grid not reported as won")
	}
}

func TestCheckLose_Checkerboard(t *testing.T) {
	rules, err := NewSameGame(nil, nil)
	if err != nil {
		t.Fatalf("Failed to create rules: %v", err)
	}

	grid := NewGridFromRows([][]int{
		{0, 1, 0},
		{1, 0, 1},
		{0, 1, 0},
	})

	if !rules.CheckLose(grid) {
		t.Error("Checkerboard with no adjacent pairs should be lost")
	}
	if grid.SelectedCount() != 0 {
		t.Errorf("CheckLose left %d tiles selected", grid.SelectedCount())
	}
}

func TestCheckLose_PlayableGroupRemains(t *testing.T) {
	rules, err := NewSameGame(nil, nil)
	if err != nil {
		t.Fatalf("Failed to create rules: %v", err)
	}

	grid := NewGridFromRows([][]int{
		{0, 1, 0},
		{1, 1, 0},
	})

	if rules.CheckLose(grid) {
		t.Error("Grid with a playable group reported as lost")
	}
	if grid.SelectedCount() != 0 {
		t.Errorf("CheckLose left %d tiles selected", grid.SelectedCount())
	}
}

func TestCheckLose_EmptyGridIsNotLost(t *testing.T) {
	rules, err := NewSameGame(nil, nil)
	if err != nil {
		t.Fatalf("Failed to create rules: %v", err)
	}

	grid := NewGridFromRows([][]int{{3, 3}})
	grid.SelectGroup(0, 0)
	grid.RemoveSelected()

	if rules.CheckLose(grid) {
		t.Error("Empty grid is a win, never a loss")
	}
}
