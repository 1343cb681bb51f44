package session

import (
	"fmt"
	"time"

	"github.com/gridgames/samegame/game/engine"
	"github.com/gridgames/samegame/game/service"
)

// Autosaver keeps a session's save file in step with its game. It saves
// after every committed move, drops the save when a round is lost, and
// on a win drops the save and records the score. Load, scoreboard and
// clear-scoreboard requests are answered through text events so that
// storage faults never reach the engine.
type Autosaver struct {
	session     *service.Session
	persistence SessionPersistence
	scores      service.ScoreKeeper
}

// NewAutosaver wires an autosaver to a session
func NewAutosaver(session *service.Session, persistence SessionPersistence, scores service.ScoreKeeper) *Autosaver {
	return &Autosaver{
		session:     session,
		persistence: persistence,
		scores:      scores,
	}
}

// OnGameEvent implements engine.Listener
func (a *Autosaver) OnGameEvent(event engine.Event) {
	switch event.Type {
	case engine.EventNextMove, engine.EventBegin, engine.EventReset:
		a.save()
	case engine.EventLose:
		a.dropSave()
	case engine.EventWin:
		a.dropSave()
		a.recordScore()
	case engine.EventLoad:
		a.loadSave()
	case engine.EventScoreboard:
		a.reportScores()
	case engine.EventClearScoreboard:
		a.clearScores()
	}
}

func (a *Autosaver) save() {
	if err := a.persistence.Save(a.session); err != nil {
		fmt.Printf("Warning: Failed to persist session %s: %v\n", a.session.ID, err)
	}
}

func (a *Autosaver) dropSave() {
	if !a.persistence.Exists(a.session.ID) {
		return
	}
	if err := a.persistence.Delete(a.session.ID); err != nil {
		fmt.Printf("Warning: Failed to delete save for session %s: %v\n", a.session.ID, err)
	}
}

func (a *Autosaver) recordScore() {
	if a.scores == nil {
		return
	}
	entry := service.ScoreEntry{
		Name:       a.session.ID,
		Score:      a.session.Engine.Score(),
		Difficulty: string(a.session.Engine.Difficulty()),
		AchievedAt: time.Now(),
	}
	if err := a.scores.Add(entry); err != nil {
		fmt.Printf("Warning: Failed to record score for session %s: %v\n", a.session.ID, err)
	}
}

func (a *Autosaver) loadSave() {
	loaded, err := a.persistence.Load(a.session.ID)
	if err != nil {
		a.session.Engine.SendText("no saved game to load\n")
		return
	}
	if err := a.session.Engine.Restore(loaded.Engine.Snapshot()); err != nil {
		a.session.Engine.SendText("saved game could not be restored\n")
		return
	}
	a.session.Engine.SendText("saved game loaded\n")
}

func (a *Autosaver) reportScores() {
	if a.scores == nil {
		return
	}
	entries, err := a.scores.Scores()
	if err != nil {
		a.session.Engine.SendText("scoreboard unavailable\n")
		return
	}
	a.session.Engine.SendText(RenderScores(entries))
}

func (a *Autosaver) clearScores() {
	if a.scores == nil {
		return
	}
	if err := a.scores.Clear(); err != nil {
		a.session.Engine.SendText("scoreboard could not be cleared\n")
		return
	}
	a.session.Engine.SendText("scoreboard cleared\n")
}
