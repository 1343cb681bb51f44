package engine

import "fmt"

// Snapshot is a fully reconstructible copy of Engine and Grid state, used
// by the persistence layer. Listeners are explicitly not part of the
// snapshot: observers do not survive serialization and must be re-attached
// after a restore.
type Snapshot struct {
	Score      int        `json:"score"`
	ScoreInc   int        `json:"score_inc"`
	Difficulty Difficulty `json:"difficulty"`
	State      State      `json:"state"`
	GridHeight int        `json:"grid_height"`
	GridWidth  int        `json:"grid_width"`
	Rows       [][]Tile   `json:"rows"`
	BestMove   *Position  `json:"best_move,omitempty"`
}

// Snapshot captures the complete current state of the engine
func (e *Engine) Snapshot() *Snapshot {
	s := &Snapshot{
		Score:      e.score,
		ScoreInc:   e.scoreInc,
		Difficulty: e.difficulty,
		State:      e.state,
	}
	if e.bestMove != nil {
		bm := *e.bestMove
		s.BestMove = &bm
	}
	if e.grid != nil {
		s.GridHeight = e.grid.Height()
		s.GridWidth = e.grid.Width()
		s.Rows = e.grid.Tiles()
	}
	return s
}

// Restore replaces the engine's state with the snapshot's. Registered
// listeners are kept as they are; callers that restore into a fresh engine
// re-attach the observer set themselves.
func (e *Engine) Restore(s *Snapshot) error {
	if s == nil {
		return fmt.Errorf("snapshot cannot be nil")
	}
	switch s.State {
	case PreStart, Ongoing, Won, Lost:
	default:
		return fmt.Errorf("snapshot has unknown state %q", s.State)
	}

	var grid *Grid
	if s.Rows != nil || s.State != PreStart {
		height := s.GridHeight
		width := s.GridWidth
		if height < 1 {
			height = 1
		}
		if width < 1 {
			width = 1
		}
		rows := make([][]Tile, 0, len(s.Rows))
		selected := 0
		for _, snapRow := range s.Rows {
			if len(snapRow) == 0 {
				continue
			}
			row := make([]Tile, len(snapRow))
			copy(row, snapRow)
			for _, t := range row {
				if t.Selected {
					selected++
				}
			}
			rows = append(rows, row)
		}
		grid = &Grid{height: height, width: width, rows: rows, selected: selected}
	}

	e.score = s.Score
	e.scoreInc = s.ScoreInc
	e.difficulty = s.Difficulty
	e.state = s.State
	e.grid = grid
	e.bestMove = nil
	if s.BestMove != nil {
		bm := *s.BestMove
		e.bestMove = &bm
	}

	return nil
}
