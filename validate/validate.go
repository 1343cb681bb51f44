// Command validate provides a small CLI that validates game configuration JSON
// files in the ../configs directory. It checks:
//   - JSON structure and required fields
//   - Grid dimensions within the engine's allowed range
//   - Color palette sizes per difficulty tier
//   - Required message keys (rules, win, lose)
//   - Palette ordering: easy should not use more colors than hard
//   - Duplicate display names across files
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gridgames/samegame/game/engine"
)

// Config mirrors the JSON schema for a game configuration.
type Config struct {
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

// ValidationResult captures the outcome of validating a single file.
// If Valid is true, Errors contains informational messages; otherwise it
// accumulates the validation errors that were found.
type ValidationResult struct {
	File   string
	Name   string
	Valid  bool
	Errors []string
}

// validateConfig loads and validates a single configuration JSON file.
// It performs structural checks, grid and palette validation, and message
// presence checks.
func validateConfig(filePath string) ValidationResult {
	result := ValidationResult{
		File:   filepath.Base(filePath),
		Valid:  true,
		Errors: []string{},
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Failed to read file: %v", err))
		return result
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Invalid JSON: %v", err))
		return result
	}

	result.Name = config.Name

	if config.Name == "" {
		result.Valid = false
		result.Errors = append(result.Errors, "Missing required field: name")
	}
	if config.Description == "" {
		result.Valid = false
		result.Errors = append(result.Errors, "Missing required field: description")
	}

	// Validate grid dimensions
	if config.GridHeight < engine.MinGridSide || config.GridHeight > engine.MaxGridSide {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("grid_height must be between %d and %d, got %d",
			engine.MinGridSide, engine.MaxGridSide, config.GridHeight))
	}
	if config.GridWidth < engine.MinGridSide || config.GridWidth > engine.MaxGridSide {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("grid_width must be between %d and %d, got %d",
			engine.MinGridSide, engine.MaxGridSide, config.GridWidth))
	}

	// Validate color palette per tier
	tiers := []struct {
		name  string
		value int
	}{
		{"easy", config.Colors.Easy},
		{"medium", config.Colors.Medium},
		{"hard", config.Colors.Hard},
		{"default", config.Colors.Default},
	}
	for _, tier := range tiers {
		if tier.value < engine.MinColors || tier.value > engine.MaxColors {
			result.Valid = false
			result.Errors = append(result.Errors, fmt.Sprintf("colors.%s must be between %d and %d, got %d",
				tier.name, engine.MinColors, engine.MaxColors, tier.value))
		}
	}

	// Harder tiers should use more colors: more colors means smaller groups
	if config.Colors.Easy > config.Colors.Medium || config.Colors.Medium > config.Colors.Hard {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("color counts must not decrease with difficulty: easy=%d medium=%d hard=%d",
			config.Colors.Easy, config.Colors.Medium, config.Colors.Hard))
	}

	// Validate messages
	requiredMessages := map[string]string{
		"rules": config.Messages.Rules,
		"win":   config.Messages.Win,
		"lose":  config.Messages.Lose,
	}
	for _, key := range []string{"rules", "win", "lose"} {
		if requiredMessages[key] == "" {
			result.Valid = false
			result.Errors = append(result.Errors, fmt.Sprintf("Missing required message: %s", key))
		}
	}

	// Cross-check against the engine's own validator so the linter can never
	// pass a file the server would reject
	if result.Valid {
		var engineConfig engine.GameConfig
		if err := json.Unmarshal(data, &engineConfig); err == nil {
			if err := engine.ValidateGameConfig(&engineConfig); err != nil {
				result.Valid = false
				result.Errors = append(result.Errors, fmt.Sprintf("Engine validation: %v", err))
			}
		}
	}

	// Add informational data
	if result.Valid {
		totalTiles := config.GridHeight * config.GridWidth
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Name: %s", config.Name))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Grid: %dx%d (%d tiles)", config.GridHeight, config.GridWidth, totalTiles))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Colors: easy=%d medium=%d hard=%d default=%d",
			config.Colors.Easy, config.Colors.Medium, config.Colors.Hard, config.Colors.Default))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Max single-group score: %d", scoreIncrement(totalTiles)))
	}

	return result
}

// scoreIncrement mirrors the quadratic scoring rule for informational output.
func scoreIncrement(n int) int {
	if n < 2 {
		return 0
	}
	return (n - 2) * (n - 2)
}

// main scans ../configs for *.json files and validates each one, printing a
// concise report and exiting with non-zero status if any are invalid.
func main() {
	configDir := "../configs"
	if len(os.Args) > 1 {
		configDir = os.Args[1]
	}

	files, err := filepath.Glob(filepath.Join(configDir, "*.json"))
	if err != nil {
		fmt.Printf("Error finding config files: %v\n", err)
		os.Exit(1)
	}

	allValid := true
	seenNames := make(map[string]string)

	for _, file := range files {
		result := validateConfig(file)

		fmt.Printf("\n%s %s\n", strings.Repeat("=", 20), result.File)

		if result.Valid && result.Name != "" {
			if prev, dup := seenNames[result.Name]; dup {
				result.Valid = false
				result.Errors = append(result.Errors, fmt.Sprintf("Duplicate name %q (also used by %s)", result.Name, prev))
			} else {
				seenNames[result.Name] = result.File
			}
		}

		if result.Valid {
			fmt.Println("✅ VALID")
			for _, info := range result.Errors {
				fmt.Println("  " + info)
			}
		} else {
			fmt.Println("❌ INVALID")
			allValid = false
			for _, err := range result.Errors {
				if !strings.HasPrefix(err, "✓") {
					fmt.Println("  ❌ " + err)
				}
			}
		}
	}

	fmt.Printf("\n%s\n", strings.Repeat("=", 40))
	if allValid {
		fmt.Println("✅ All configurations are valid!")
	} else {
		fmt.Println("❌ Some configurations have errors")
		os.Exit(1)
	}
}
