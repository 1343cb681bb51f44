package engine

import "math/rand"

// SameGame implements the Rules interface with the classic same-color
// elimination rule set: the difficulty tier picks the palette size, a
// selection of n tiles scores (n-2)^2 with nothing for a bare pair, the
// round is won when the grid empties and lost when groups run out.
type SameGame struct {
	config *GameConfig
	rng    *rand.Rand
}

// NewSameGame creates the rule set from a variant configuration. A nil
// config selects DefaultConfig; a nil rng falls back to the global
// math/rand source (tests inject a seeded one for determinism).
func NewSameGame(config *GameConfig, rng *rand.Rand) (*SameGame, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if err := ValidateGameConfig(config); err != nil {
		return nil, err
	}
	return &SameGame{config: config, rng: rng}, nil
}

// Config returns the variant configuration this rule set was built from
func (s *SameGame) Config() *GameConfig {
	return s.config
}

// PaletteSize returns the number of distinct tile values for a difficulty
// tier, falling back to the configured default for unrecognized tiers.
func (s *SameGame) PaletteSize(difficulty Difficulty) int {
	switch difficulty {
	case Easy:
		return s.config.Colors.Easy
	case Medium:
		return s.config.Colors.Medium
	case Hard:
		return s.config.Colors.Hard
	default:
		return s.config.Colors.Default
	}
}

// GenerateGrid builds a fresh grid whose tile values are drawn uniformly
// from the palette selected by the difficulty tier
func (s *SameGame) GenerateGrid(difficulty Difficulty) *Grid {
	n := s.PaletteSize(difficulty)
	palette := make([]int, n)
	for i := range palette {
		palette[i] = i
	}
	return NewGrid(s.config.GridHeight, s.config.GridWidth, palette, s.rng)
}

// ScoreIncrement returns (n-2)^2 for a selection of n tiles. A bare pair
// is playable but scores nothing.
func (s *SameGame) ScoreIncrement(n int) int {
	if n < 3 {
		return 0
	}
	return (n - 2) * (n - 2)
}

// CheckWin reports a win exactly when no tiles remain
func (s *SameGame) CheckWin(g *Grid) bool {
	return g.IsEmpty()
}

// CheckLose reports a loss when tiles remain but no coordinate yields a
// playable group. The scan short-circuits on the first playable group.
func (s *SameGame) CheckLose(g *Grid) bool {
	if g.IsEmpty() {
		return false
	}

	for row := 0; row < g.Height(); row++ {
		for col := 0; col < g.Width(); col++ {
			if g.SelectGroup(row, col) > 1 {
				g.UnselectAll()
				return false
			}
		}
	}

	g.UnselectAll()
	return true
}

// RulesText returns the configured help text
func (s *SameGame) RulesText() string {
	return s.config.Messages.Rules
}

// WinMessage returns the configured winning message
func (s *SameGame) WinMessage() string {
	return s.config.Messages.Win
}

// LoseMessage returns the configured losing message
func (s *SameGame) LoseMessage() string {
	return s.config.Messages.Lose
}
