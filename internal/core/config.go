package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Phase is the high-level lifecycle state of a game session. Every game moves
// menu -> playing -> win|lose, with restart returning to playing.
type Phase int

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhaseWin
	PhaseLose
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "Menu"
	case PhasePlaying:
		return "Playing"
	case PhaseWin:
		return "Win"
	case PhaseLose:
		return "Lose"
	default:
		return "Unknown"
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Phase    Phase // Lifecycle phase; win and lose are mutually exclusive
	Score    int   // Correct answers this session
	Mistakes int   // Wrong answers this session
	Round    int   // Current round, 1-based once playing
	Paused   bool  // Whether the game is paused
}

// GameOver reports whether the session has reached a terminal phase.
func (s GameState) GameOver() bool {
	return s.Phase == PhaseWin || s.Phase == PhaseLose
}

// Won reports whether the session ended in victory.
func (s GameState) Won() bool {
	return s.Phase == PhaseWin
}

// Event is a notable occurrence during a simulation tick. Games emit events
// instead of producing side effects, so the platform decides what sounds to
// play and what to log while game logic stays pure.
type Event int

const (
	EventClick     Event = iota // Selection moved or a UI element was touched
	EventSelect                 // An answer was committed
	EventCorrect                // The committed answer was right
	EventIncorrect              // The committed answer was wrong
	EventRound                  // A new round began
	EventWin                    // The session was won this tick
	EventLose                   // The session was lost this tick
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventClick:
		return "Click"
	case EventSelect:
		return "Select"
	case EventCorrect:
		return "Correct"
	case EventIncorrect:
		return "Incorrect"
	case EventRound:
		return "Round"
	case EventWin:
		return "Win"
	case EventLose:
		return "Lose"
	default:
		return "Unknown"
	}
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
