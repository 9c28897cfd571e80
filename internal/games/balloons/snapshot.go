package balloons

// BalloonSnap captures one balloon for determinism testing.
type BalloonSnap struct {
	Value   int
	Correct bool
	X       int
	Y       int
	Spent   bool
	Popped  bool
}

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick         uint64
	Phase        string
	Score        int
	Mistakes     int
	Round        int
	QuestionText string
	Answer       int
	Cursor       int
	PendingRound bool
	Balloons     []BalloonSnap
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:         g.tick,
		Phase:        g.phase.String(),
		Score:        g.score,
		Mistakes:     g.mistakes,
		Round:        g.round,
		QuestionText: g.question.Text(),
		Answer:       g.question.Answer,
		Cursor:       g.cursor,
		PendingRound: g.nextRoundAt != 0,
	}
	for _, b := range g.balloons {
		x, y := b.Pos.Cell()
		snap.Balloons = append(snap.Balloons, BalloonSnap{
			Value:   b.Value,
			Correct: b.Correct,
			X:       x,
			Y:       y,
			Spent:   b.Spent,
			Popped:  b.Popped,
		})
	}
	return snap
}
