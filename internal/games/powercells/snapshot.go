package powercells

// TokenSnap captures one cell for determinism testing.
type TokenSnap struct {
	Value    int
	Selected bool
}

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick         uint64
	Phase        string
	Score        int
	Mistakes     int
	Round        int
	Target       int
	Sum          int
	Cursor       int
	PendingRound bool
	Tokens       []TokenSnap
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:         g.tick,
		Phase:        g.phase.String(),
		Score:        g.score,
		Mistakes:     g.mistakes,
		Round:        g.round,
		Target:       g.target,
		Sum:          g.sum(),
		Cursor:       g.cursor,
		PendingRound: g.nextRoundAt != 0,
	}
	for _, tok := range g.tokens {
		snap.Tokens = append(snap.Tokens, TokenSnap{Value: tok.Value, Selected: tok.Selected})
	}
	return snap
}
