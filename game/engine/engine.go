package engine

// Engine drives a Grid through the move protocol shared by every variant:
// select a group, preview the score, validate, detect the end of the
// round. It owns the score, the pending increment, the difficulty, the
// lifecycle state and the cached best move, and it notifies registered
// listeners of every observable transition.
//
// All operations are synchronous and single-threaded: an operation runs to
// completion, including listener fan-out, before control returns. Callers
// that share an Engine across goroutines must serialize access themselves
// (the service layer does).
type Engine struct {
	rules Rules
	grid  *Grid

	score      int
	scoreInc   int
	difficulty Difficulty
	state      State

	bestMove  *Position
	listeners []Listener
}

// New creates an Engine in the PreStart state with difficulty Easy. No
// grid exists until NewGame or Reset.
func New(rules Rules) *Engine {
	return &Engine{
		rules:      rules,
		difficulty: Easy,
		state:      PreStart,
	}
}

// AddListener registers an observer for the remainder of the Engine's
// life. Listeners are notified in registration order.
func (e *Engine) AddListener(l Listener) {
	e.listeners = append(e.listeners, l)
}

// Listeners returns the registered listeners in registration order. Used
// by the persistence layer to re-attach observers after a restore.
func (e *Engine) Listeners() []Listener {
	out := make([]Listener, len(e.listeners))
	copy(out, e.listeners)
	return out
}

// NewGame sets up a fresh playable round: score and pending increment go
// to zero, the best move is dropped, the variant generates a new grid for
// the current difficulty and the round begins. Valid from any state.
func (e *Engine) NewGame() {
	e.score = 0
	e.scoreInc = 0
	e.bestMove = nil
	e.grid = e.rules.GenerateGrid(e.difficulty)
	e.state = Ongoing
	e.publish(EventBegin, "")
}

// Reset regenerates the round like NewGame but publishes a reset event so
// observers (persistence, sound) can react differently.
func (e *Engine) Reset() {
	e.score = 0
	e.scoreInc = 0
	e.bestMove = nil
	e.grid = e.rules.GenerateGrid(e.difficulty)
	e.state = Ongoing
	e.publish(EventReset, "")
}

// ResetDifficulty changes the difficulty first, then resets
func (e *Engine) ResetDifficulty(difficulty Difficulty) {
	e.difficulty = difficulty
	e.Reset()
}

// SelectAt selects the connected group at (row, col) and caches the score
// it would award. A selection of fewer than two tiles, including
// out-of-range coordinates, is a silent no-op: nothing is published and
// the pending increment drops to zero. Callers detect the outcome through
// SelectedCount and PendingIncrement.
func (e *Engine) SelectAt(row, col int) {
	if e.grid == nil {
		return
	}

	e.grid.SelectGroup(row, col)

	if e.grid.SelectedCount() < 2 {
		e.scoreInc = 0
		return
	}

	e.scoreInc = e.rules.ScoreIncrement(e.grid.SelectedCount())
	e.publish(EventPreValid, "")
}

// ValidateSelection commits the cached selection: the pending increment is
// added to the score, the selected tiles are removed and the round outcome
// is evaluated. Exactly one of win, lose or next-move is published. A call
// with fewer than two tiles selected is a silent no-op.
func (e *Engine) ValidateSelection() {
	if e.grid == nil || e.grid.SelectedCount() < 2 {
		return
	}

	e.bestMove = nil
	e.score += e.scoreInc
	e.scoreInc = 0
	e.grid.RemoveSelected()

	switch {
	case e.rules.CheckWin(e.grid):
		e.state = Won
		e.publish(EventWin, e.rules.WinMessage())
	case e.rules.CheckLose(e.grid):
		e.state = Lost
		e.publish(EventLose, e.rules.LoseMessage())
	default:
		e.publish(EventNextMove, "")
	}
}

// FindBestMove scans every coordinate in row-major order, retrying the
// selection at each, and retains the coordinate with the strictly greatest
// score increment so the first-found coordinate wins ties. It leaves the
// grid unselected, caches the winning coordinate (or none) and always
// publishes a hint event: the absence of a move is itself meaningful to
// observers. When nothing is playable the pending increment is the -1
// sentinel.
func (e *Engine) FindBestMove() {
	if e.grid == nil {
		return
	}

	e.grid.UnselectAll()
	e.bestMove = nil

	best := -1
	for row := 0; row < e.grid.Height(); row++ {
		for col := 0; col < e.grid.Width(); col++ {
			if e.grid.SelectGroup(row, col) > 1 {
				inc := e.rules.ScoreIncrement(e.grid.SelectedCount())
				if inc > best {
					best = inc
					e.bestMove = &Position{Row: row, Col: col}
				}
			}
		}
	}

	e.grid.UnselectAll()
	e.scoreInc = best
	e.publish(EventHint, "")
}

// Init tells observers the player may start interacting, but not play yet
func (e *Engine) Init() {
	e.publish(EventInit, "")
}

// Begin re-announces the current round, e.g. after a load
func (e *Engine) Begin() {
	e.publish(EventBegin, "")
}

// Exit tells observers the player asked to quit
func (e *Engine) Exit() {
	e.publish(EventExit, "")
}

// Mute tells observers the player toggled sound effects
func (e *Engine) Mute() {
	e.publish(EventMute, "")
}

// SendText publishes a free-text message to every observer
func (e *Engine) SendText(text string) {
	e.publish(EventText, text)
}

// RequestInput asks the input layer to re-prompt with the given text
func (e *Engine) RequestInput(prompt string) {
	e.publish(EventInput, prompt)
}

// RequestLoad announces the player asked to load a saved game
func (e *Engine) RequestLoad() {
	e.publish(EventLoad, "")
}

// RequestScores announces the player asked to see the scoreboard
func (e *Engine) RequestScores() {
	e.publish(EventScoreboard, "")
}

// RequestClearScores announces the player asked to clear the scoreboard
func (e *Engine) RequestClearScores() {
	e.publish(EventClearScoreboard, "")
}

// Score returns the points accumulated during the current round
func (e *Engine) Score() int {
	return e.score
}

// PendingIncrement returns the points the cached selection would award, or
// -1 right after a best-move search that found nothing.
func (e *Engine) PendingIncrement() int {
	return e.scoreInc
}

// Difficulty returns the current difficulty tier
func (e *Engine) Difficulty() Difficulty {
	return e.difficulty
}

// SetDifficulty changes the difficulty tier without resetting; the next
// generated grid picks it up.
func (e *Engine) SetDifficulty(difficulty Difficulty) {
	e.difficulty = difficulty
}

// State returns the lifecycle state of the current round
func (e *Engine) State() State {
	return e.state
}

// SelectedCount returns the size of the cached selection, 0 when no grid
// exists yet
func (e *Engine) SelectedCount() int {
	if e.grid == nil {
		return 0
	}
	return e.grid.SelectedCount()
}

// GridHeight returns the declared grid height, 0 before the first round
func (e *Engine) GridHeight() int {
	if e.grid == nil {
		return 0
	}
	return e.grid.Height()
}

// GridWidth returns the declared grid width, 0 before the first round
func (e *Engine) GridWidth() int {
	if e.grid == nil {
		return 0
	}
	return e.grid.Width()
}

// Tiles returns a deep copy of the remaining tiles in row-major order, or
// nil before the first round. Observer-side mutation of the copy cannot
// corrupt engine state.
func (e *Engine) Tiles() [][]Tile {
	if e.grid == nil {
		return nil
	}
	return e.grid.Tiles()
}

// BestMove returns the cached best-move coordinate from the last hint
// request, and whether one exists.
func (e *Engine) BestMove() (Position, bool) {
	if e.bestMove == nil {
		return Position{}, false
	}
	return *e.bestMove, true
}

// RulesText returns the variant's static help text
func (e *Engine) RulesText() string {
	return e.rules.RulesText()
}

// publish delivers an event to every listener in registration order
func (e *Engine) publish(eventType EventType, arg string) {
	event := Event{Type: eventType, Arg: arg}
	for _, l := range e.listeners {
		l.OnGameEvent(event)
	}
}
