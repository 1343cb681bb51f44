package engine

// Rules provides the extension points a concrete game variant supplies.
// The Engine owns the move protocol and lifecycle; the variant decides how
// grids are generated, how selections score and when a round ends.
type Rules interface {
	// GenerateGrid builds a fresh grid for the given difficulty.
	GenerateGrid(difficulty Difficulty) *Grid

	// ScoreIncrement computes the points awarded for validating a
	// selection of n tiles.
	ScoreIncrement(n int) int

	// CheckWin reports whether the grid is in a winning position. It must
	// leave the grid unselected.
	CheckWin(g *Grid) bool

	// CheckLose reports whether no further move is possible. It must
	// leave the grid unselected.
	CheckLose(g *Grid) bool

	// Player-facing texts.
	RulesText() string
	WinMessage() string
	LoseMessage() string
}
