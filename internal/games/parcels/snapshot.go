package parcels

// ParcelSnap captures one crate for determinism testing.
type ParcelSnap struct {
	Value   int
	Correct bool
	X       int
	Y       int
	Taken   bool
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
	DroneX       int
	DroneVX      float64
	PendingRound bool
	Parcels      []ParcelSnap
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
		DroneX:       int(g.drone.X),
		DroneVX:      g.drone.VX,
		PendingRound: g.nextRoundAt != 0,
	}
	for _, p := range g.parcels {
		x, y := p.Pos.Cell()
		snap.Parcels = append(snap.Parcels, ParcelSnap{
			Value:   p.Value,
			Correct: p.Correct,
			X:       x,
			Y:       y,
			Taken:   p.Taken,
		})
	}
	return snap
}
