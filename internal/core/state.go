package core

// Phase is the coarse session phase reported to the platform.
type Phase int

const (
	PhaseLoading Phase = iota
	PhaseReady
	PhaseWalking
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "Loading"
	case PhaseReady:
		return "Ready"
	case PhaseWalking:
		return "Walking"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// GameState represents the current state of a game.
// Returned by State() to communicate status to the platform.
type GameState struct {
	Phase    Phase
	Distance int   // World units scrolled during the current run
	Segments int   // Segments generated during the current run
	Ticks    int   // Simulation steps taken during the current run
	Seed     int64 // Seed the current run was generated from
}

// GameOver reports whether the run has ended.
func (s GameState) GameOver() bool {
	return s.Phase == PhaseGameOver
}
