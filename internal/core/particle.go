package core

import (
	"math"
	"math/rand"
)

// Particle is a short-lived decorative fragment (confetti, sparks, steam).
// Particles are pure simulation state; games integrate them each tick and
// draw the survivors.
type Particle struct {
	Pos     Vec
	Vel     Vec
	Gravity float64 // Cells per second squared, applied to Vel.Y
	Life    int     // Remaining ticks
	MaxLife int
	Rune    rune
	Color   Color
}

// Alive reports whether the particle should still be simulated and drawn.
func (p *Particle) Alive() bool {
	return p.Life > 0
}

// Step advances the particle by dt seconds using Euler integration.
func (p *Particle) Step(dt float64) {
	p.Vel.Y += p.Gravity * dt
	p.Pos = p.Pos.Add(p.Vel.Scale(dt))
	p.Life--
}

// UpdateParticles steps every particle and removes dead ones in place,
// returning the surviving slice.
func UpdateParticles(ps []Particle, dt float64) []Particle {
	out := ps[:0]
	for i := range ps {
		ps[i].Step(dt)
		if ps[i].Alive() {
			out = append(out, ps[i])
		}
	}
	return out
}

// Burst spawns n particles radiating from a point with randomized direction
// and speed. Runes and colors are picked round-robin with a random offset so
// small bursts still mix glyphs.
func Burst(rng *rand.Rand, at Vec, n int, speed float64, life int, runes []rune, colors []Color) []Particle {
	if n <= 0 || len(runes) == 0 || len(colors) == 0 {
		return nil
	}
	ps := make([]Particle, 0, n)
	off := rng.Intn(len(runes) * len(colors))
	for i := 0; i < n; i++ {
		ang := rng.Float64() * 2 * math.Pi
		sp := speed * (0.4 + rng.Float64()*0.6)
		ps = append(ps, Particle{
			Pos: at,
			// Vertical speed halved; terminal cells are about twice as
			// tall as they are wide.
			Vel:     Vec{X: math.Cos(ang) * sp, Y: math.Sin(ang) * sp * 0.5},
			Gravity: speed * 0.8,
			Life:    life - rng.Intn(life/3+1),
			MaxLife: life,
			Rune:    runes[(off+i)%len(runes)],
			Color:   colors[(off+i)%len(colors)],
		})
	}
	return ps
}
