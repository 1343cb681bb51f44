package engine

import "fmt"

// State represents the coarse lifecycle of a round
type State string

const (
	// PreStart is the only initial state; the player cannot move yet.
	PreStart State = "prestart"
	// Ongoing means the round is live and the player may keep playing.
	Ongoing State = "ongoing"
	// Won and Lost are terminal until an explicit reset.
	Won  State = "won"
	Lost State = "lost"
)

// Difficulty selects the grid generation parameters of a variant
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"

	// Validation constants
	MinGridSide = 2
	MaxGridSide = 50
	MinColors   = 2
	MaxColors   = 8
)

// ParseDifficulty maps a user-supplied string to a Difficulty
func ParseDifficulty(s string) (Difficulty, error) {
	switch Difficulty(s) {
	case Easy, Medium, Hard:
		return Difficulty(s), nil
	}
	return "", fmt.Errorf("unknown difficulty %q (want easy, medium or hard)", s)
}

// Position represents row,col grid coordinates
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Tile is the atomic unit of grid state. Value identifies the color class
// and never changes after construction; Selected marks membership in the
// currently cached selection.
type Tile struct {
	Value    int  `json:"value"`
	Selected bool `json:"selected,omitempty"`
}

// SameValue reports whether two tiles belong to the same color class
func (t Tile) SameValue(o Tile) bool {
	return t.Value == o.Value
}
