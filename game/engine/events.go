package engine

// EventType enumerates everything an Engine can tell its listeners. The
// vocabulary is closed: observers dispatch with an exhaustive switch
// instead of type assertions.
type EventType string

const (
	// EventNextMove signals the player can play the next move.
	EventNextMove EventType = "next_move"
	// EventText carries a free-text payload to be shown or logged.
	EventText EventType = "text"
	// EventInit signals the player may start interacting, but not play yet.
	EventInit EventType = "init"
	// EventBegin signals a fresh round has begun.
	EventBegin EventType = "begin"
	// EventLoad signals the player asked to load a saved game.
	EventLoad EventType = "load"
	// EventScoreboard signals the player asked to see the scoreboard.
	EventScoreboard EventType = "scoreboard"
	// EventClearScoreboard signals the player asked to clear the scoreboard.
	EventClearScoreboard EventType = "clear_scoreboard"
	// EventReset signals the current round was reset.
	EventReset EventType = "reset"
	// EventInput asks the input layer to re-prompt, Arg carries the prompt.
	EventInput EventType = "input"
	// EventPreValid signals a selection is cached and ready to validate.
	EventPreValid EventType = "pre_valid"
	// EventHint signals a best-move search finished, found or not.
	EventHint EventType = "hint"
	// EventWin and EventLose are terminal, Arg carries the variant message.
	EventWin  EventType = "win"
	EventLose EventType = "lose"
	// EventExit signals the player asked to quit.
	EventExit EventType = "exit"
	// EventMute signals the player toggled sound effects.
	EventMute EventType = "mute"
)

// Event is what the Engine publishes to its listeners: a type plus an
// optional free-text argument.
type Event struct {
	Type EventType `json:"type"`
	Arg  string    `json:"arg,omitempty"`
}

// Listener receives every event an Engine publishes. Handlers run
// synchronously in registration order and must not re-enter the Engine in
// a way that mutates state while the fan-out is still being delivered.
type Listener interface {
	OnGameEvent(Event)
}

// ListenerFunc adapts a plain function to the Listener interface
type ListenerFunc func(Event)

// OnGameEvent calls f(event)
func (f ListenerFunc) OnGameEvent(event Event) {
	f(event)
}
