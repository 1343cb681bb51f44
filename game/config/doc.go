// Package config provides variant configuration management for the SameGame server.
//
// The config package handles:
//   - Loading variant configurations from JSON files
//   - Configuration validation and verification
//   - Default configuration management
//   - Configuration discovery and listing
//
// Configuration Format:
//
// Variant configurations are stored as JSON files in the configs directory.
// Each configuration defines:
//   - Grid dimensions (height and width)
//   - Palette sizes per difficulty tier (easy, medium, hard, default)
//   - Player-facing texts (rules, win message, lose message)
//
// Available Configurations:
//
// The package ships with two variants:
//   - classic: the original 10x15 grid with 2/3/4-color palettes
//   - compact: quick rounds on a 6x8 grid
//
// Usage:
//
//	manager := config.NewManager("configs")
//
//	// Load specific configuration
//	gameConfig, err := manager.LoadConfig("compact")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Get default configuration
//	defaultConfig := manager.GetDefault()
//
//	// List available configurations
//	configs, err := manager.ListConfigs()
//
// Validation:
//
// All configurations are validated for:
//   - Grid dimensions within playable bounds
//   - Palette sizes within the supported color range
//   - Required message templates
package config
