package engine

import (
	"encoding/json"
	"fmt"
	"os"
)

// GameConfig represents a variant configuration from JSON. It parameterizes
// grid generation and the player-facing texts of a SameGame variant.
type GameConfig struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	GridHeight  int    `json:"grid_height"`
	GridWidth   int    `json:"grid_width"`
	Colors      struct {
		Easy    int `json:"easy"`
		Medium  int `json:"medium"`
		Hard    int `json:"hard"`
		Default int `json:"default"`
	} `json:"colors"`
	Messages struct {
		Rules string `json:"rules"`
		Win   string `json:"win"`
		Lose  string `json:"lose"`
	} `json:"messages"`
}

// ValidateGameConfig validates a variant configuration for correctness and
// playability
func ValidateGameConfig(config *GameConfig) error {
	if config == nil {
		return fmt.Errorf("config validation: config is nil")
	}
	if config.Name == "" {
		return fmt.Errorf("config validation: name is required")
	}
	if config.Description == "" {
		return fmt.Errorf("config validation: description is required")
	}

	if config.GridHeight < MinGridSide || config.GridHeight > MaxGridSide {
		return fmt.Errorf("config validation: grid_height must be between %d and %d, got %d",
			MinGridSide, MaxGridSide, config.GridHeight)
	}
	if config.GridWidth < MinGridSide || config.GridWidth > MaxGridSide {
		return fmt.Errorf("config validation: grid_width must be between %d and %d, got %d",
			MinGridSide, MaxGridSide, config.GridWidth)
	}

	colors := map[string]int{
		"easy":    config.Colors.Easy,
		"medium":  config.Colors.Medium,
		"hard":    config.Colors.Hard,
		"default": config.Colors.Default,
	}
	for tier, n := range colors {
		if n < MinColors || n > MaxColors {
			return fmt.Errorf("config validation: colors.%s must be between %d and %d, got %d",
				tier, MinColors, MaxColors, n)
		}
	}

	if config.Messages.Rules == "" {
		return fmt.Errorf("config validation: messages.rules is required")
	}
	if config.Messages.Win == "" {
		return fmt.Errorf("config validation: messages.win is required")
	}
	if config.Messages.Lose == "" {
		return fmt.Errorf("config validation: messages.lose is required")
	}

	return nil
}

// LoadGameConfig loads a variant configuration from a JSON file
func LoadGameConfig(filename string) (*GameConfig, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var config GameConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	if err := ValidateGameConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// DefaultConfig returns the classic SameGame parameters: a 10x15 grid with
// a 2/3/4-color palette by difficulty tier.
func DefaultConfig() *GameConfig {
	config := &GameConfig{
		Name:        "classic",
		Description: "Classic SameGame on a 10x15 grid",
		GridHeight:  10,
		GridWidth:   15,
	}
	config.Colors.Easy = 2
	config.Colors.Medium = 3
	config.Colors.Hard = 4
	config.Colors.Default = 3
	config.Messages.Rules = "                SameGame Rules \n\n" +
		"   Click on groups of 2+ same-colored tiles   \n" +
		"   > Selected tiles will be removed   \n" +
		"   > Remaining tiles collapse left    \n" +
		"   > Remaining columns collapse up  \n" +
		"   > Game ends when no moves remain   \n"
	config.Messages.Win = "You won!\n"
	config.Messages.Lose = "You lost ...\n"
	return config
}
