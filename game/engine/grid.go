package engine

import "math/rand"

// Grid is the container for Tile values. It owns the low-level operations
// on tiles: selecting a connected group, unselecting everything and
// removing the current selection.
//
// Rows shrink as tiles are removed and rows left empty are dropped, so the
// live container is jagged. The declared height and width are fixed at
// construction and only bound coordinate scans; actual row lengths decide
// whether a tile exists at a coordinate.
type Grid struct {
	height int
	width  int
	rows   [][]Tile

	// Count of tiles currently marked selected, maintained so
	// SelectedCount stays O(1).
	selected int
}

// NewGrid creates a height x width grid whose tile values are drawn
// uniformly at random from palette. Dimensions are clamped so the grid
// always holds at least one tile. A nil rng falls back to the global
// math/rand source.
func NewGrid(height, width int, palette []int, rng *rand.Rand) *Grid {
	if height < 1 {
		height = 1
	}
	if width < 1 {
		width = 1
	}
	if len(palette) == 0 {
		palette = []int{0}
	}

	pick := rand.Intn
	if rng != nil {
		pick = rng.Intn
	}

	rows := make([][]Tile, height)
	for i := range rows {
		row := make([]Tile, width)
		for j := range row {
			row[j] = Tile{Value: palette[pick(len(palette))]}
		}
		rows[i] = row
	}

	return &Grid{height: height, width: width, rows: rows}
}

// NewGridFromRows creates a grid with the exact tile values given, row by
// row. Used to build deterministic grids for tests and restores.
func NewGridFromRows(values [][]int) *Grid {
	height := len(values)
	width := 0
	rows := make([][]Tile, 0, height)
	for _, vals := range values {
		if len(vals) > width {
			width = len(vals)
		}
		row := make([]Tile, len(vals))
		for j, v := range vals {
			row[j] = Tile{Value: v}
		}
		rows = append(rows, row)
	}
	if height < 1 {
		height = 1
	}
	if width < 1 {
		width = 1
	}
	return &Grid{height: height, width: width, rows: rows}
}

// tileAt returns a pointer to the live tile at (row, col), or nil when the
// coordinate is out of bounds or the tile has been removed.
func (g *Grid) tileAt(row, col int) *Tile {
	if row < 0 || row >= len(g.rows) {
		return nil
	}
	if col < 0 || col >= len(g.rows[row]) {
		return nil
	}
	return &g.rows[row][col]
}

// SelectGroup selects the connected group of equal-valued tiles containing
// (row, col) and returns the number of tiles selected.
//
// Any prior selection is cleared first. An out-of-bounds coordinate, or a
// coordinate whose tile has already been removed, yields an empty
// selection. A group of exactly one tile is unselected again: a lone tile
// is never a playable move.
func (g *Grid) SelectGroup(row, col int) int {
	g.UnselectAll()

	target := g.tileAt(row, col)
	if target == nil {
		return 0
	}

	// Iterative flood fill over 4-adjacent tiles. The stack is seeded and
	// grown in a fixed neighbor order so traversal is deterministic for a
	// fixed grid state.
	stack := []Position{{Row: row, Col: col}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		t := g.tileAt(p.Row, p.Col)
		if t == nil || t.Selected || !t.SameValue(*target) {
			continue
		}

		t.Selected = true
		g.selected++

		stack = append(stack,
			Position{Row: p.Row - 1, Col: p.Col},
			Position{Row: p.Row + 1, Col: p.Col},
			Position{Row: p.Row, Col: p.Col - 1},
			Position{Row: p.Row, Col: p.Col + 1},
		)
	}

	if g.selected == 1 {
		target.Selected = false
		g.selected = 0
	}

	return g.selected
}

// UnselectAll clears the selected flag on every tile. Idempotent.
func (g *Grid) UnselectAll() {
	for i := range g.rows {
		for j := range g.rows[i] {
			g.rows[i][j].Selected = false
		}
	}
	g.selected = 0
}

// RemoveSelected deletes every selected tile and compacts the grid:
// surviving tiles in a row shift toward column 0, and rows left empty are
// dropped so later rows shift up. Safe to call with nothing selected.
func (g *Grid) RemoveSelected() {
	kept := g.rows[:0]
	for _, row := range g.rows {
		keptRow := row[:0]
		for _, t := range row {
			if !t.Selected {
				keptRow = append(keptRow, t)
			}
		}
		if len(keptRow) > 0 {
			kept = append(kept, keptRow)
		}
	}
	g.rows = kept
	g.selected = 0
}

// IsEmpty reports whether the grid holds no tiles at all
func (g *Grid) IsEmpty() bool {
	return len(g.rows) == 0
}

// SelectedCount returns the number of currently selected tiles in O(1)
func (g *Grid) SelectedCount() int {
	return g.selected
}

// Height returns the declared height fixed at construction
func (g *Grid) Height() int {
	return g.height
}

// Width returns the declared width fixed at construction
func (g *Grid) Width() int {
	return g.width
}

// Tiles returns a deep copy of every remaining tile, row by row. Callers
// may mutate the copy freely; the live container is never handed out.
func (g *Grid) Tiles() [][]Tile {
	rows := make([][]Tile, len(g.rows))
	for i, row := range g.rows {
		rows[i] = make([]Tile, len(row))
		copy(rows[i], row)
	}
	return rows
}
