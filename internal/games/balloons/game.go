package balloons

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/kbo4sho/mathday/internal/config"
	"github.com/kbo4sho/mathday/internal/core"
	"github.com/kbo4sho/mathday/internal/quiz"
	"github.com/kbo4sho/mathday/internal/registry"
)

// Layout constants
const (
	hudHeight     = 2 // Status line plus separator
	questionRows  = 3 // Boxed prompt under the HUD
	feedbackRow   = hudHeight + questionRows
	fieldTopRow   = feedbackRow + 1
	minScreenW    = 40
	minScreenH    = 16
	balloonWidth  = 7
	balloonHeight = 4
)

// balloonColors cycle across lanes.
var balloonColors = []core.Color{
	core.ColorBrightRed,
	core.ColorBrightYellow,
	core.ColorBrightGreen,
	core.ColorSky,
	core.ColorPink,
}

var praise = []string{"Great job!", "Nice one!", "You got it!", "Wonderful!"}
var encourage = []string{"Oops, try again!", "Almost!", "Keep going!"}

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	case "fixed":
		difficultyPreset = config.DifficultyFixed
	default:
		difficultyPreset = ""
	}
}

// Balloon is one floating answer.
type Balloon struct {
	Value       int
	Correct     bool
	Lane        int
	Pos         core.Vec // Lane center x, top row y
	WobblePhase float64
	Spent       bool // Picked wrong, deflated
	Popped      bool // Picked right, gone
}

// Game implements Balloon Pop: rising balloons carry candidate answers and
// the player pops the one matching the arithmetic prompt.
type Game struct {
	rng *rand.Rand
	gen *quiz.Generator

	runtime    core.RuntimeConfig
	cfg        config.BalloonsConfig
	difficulty *config.DifficultyManager
	ops        []quiz.Op
	dt         float64

	tick     uint64
	phase    core.Phase
	paused   bool
	tooSmall bool

	score       int
	mistakes    int
	round       int
	roundsToWin int
	maxMistakes int
	choiceCount int

	question quiz.Question
	balloons []*Balloon
	cursor   int

	// nextRoundAt is the tick deadline for spawning the next round after a
	// correct answer. Zero means the current round is live.
	nextRoundAt uint64

	feedback      string
	feedbackColor core.Color
	feedbackUntil uint64
	reveal        string

	particles []core.Particle
	events    []core.Event

	fieldBottom int
}

// New creates a new Balloon Pop game instance.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("balloons", func() registry.Game {
		return New()
	})
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "balloons"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Balloon Pop"
}

// Tagline returns the menu pitch.
func (g *Game) Tagline() string {
	return "Pop the balloon with the right answer!"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	// Load game config
	cfg, err := config.LoadBalloons(configPath)
	if err != nil {
		cfg = config.DefaultBalloonsConfig()
	}

	// Apply difficulty preset if set
	if difficultyPreset != "" {
		config.ApplyBalloonsPreset(&cfg, difficultyPreset)
	}

	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	g.ops = quiz.ParseOps(cfg.Quiz.Ops)

	// A broken config must never make the game unwinnable
	g.roundsToWin = core.Max(1, cfg.Quiz.RoundsToWin)
	g.maxMistakes = core.Max(1, cfg.Quiz.MaxMistakes)
	g.choiceCount = core.Clamp(cfg.Quiz.ChoiceCount, 2, 4)
	if cfg.Quiz.ChoiceCount == 0 {
		g.choiceCount = 4
	}

	tickRate := runtime.TickRate
	if tickRate <= 0 {
		tickRate = 60
	}
	g.dt = 1.0 / float64(tickRate)

	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.gen = quiz.NewGenerator(runtime.Seed)

	g.tooSmall = runtime.ScreenW < minScreenW || runtime.ScreenH < minScreenH
	g.fieldBottom = runtime.ScreenH - 3

	g.resetSession()
	g.phase = core.PhaseMenu
}

// resetSession clears per-session state without reloading config.
func (g *Game) resetSession() {
	g.tick = 0
	g.score = 0
	g.mistakes = 0
	g.round = 0
	g.paused = false
	g.cursor = 0
	g.balloons = nil
	g.nextRoundAt = 0
	g.feedback = ""
	g.feedbackUntil = 0
	g.reveal = ""
	g.particles = nil
}

func (g *Game) emit(e core.Event) {
	g.events = append(g.events, e)
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.events = g.events[:0]

	// Restart from a terminal screen jumps straight back into play
	if input.Has(core.ActionRestart) && (g.phase == core.PhaseWin || g.phase == core.PhaseLose) {
		g.resetSession()
		g.phase = core.PhasePlaying
		g.startRound()
		return g.result()
	}

	if input.Has(core.ActionPause) && g.phase == core.PhasePlaying {
		g.paused = !g.paused
		g.emit(core.EventClick)
	}
	if g.paused || g.tooSmall {
		return g.result()
	}

	g.tick++

	switch g.phase {
	case core.PhaseMenu:
		g.stepMenu(input)
	case core.PhasePlaying:
		g.stepPlaying(input)
	default:
		g.stepEnded()
	}

	return g.result()
}

func (g *Game) result() core.StepResult {
	res := core.StepResult{State: g.State()}
	if len(g.events) > 0 {
		res.Events = append([]core.Event(nil), g.events...)
	}
	return res
}

func (g *Game) stepMenu(input core.InputFrame) {
	if input.Has(core.ActionConfirm) || input.Digit() > 0 {
		g.phase = core.PhasePlaying
		g.emit(core.EventClick)
		g.startRound()
	}
}

func (g *Game) stepPlaying(input core.InputFrame) {
	// Round transitions are driven by a tick deadline, never by input
	if g.nextRoundAt != 0 && g.tick >= g.nextRoundAt {
		g.startRound()
	}

	g.updateBalloons()
	g.particles = core.UpdateParticles(g.particles, g.dt)

	if g.nextRoundAt == 0 {
		g.handleAnswerInput(input)
	}
}

func (g *Game) stepEnded() {
	g.particles = core.UpdateParticles(g.particles, g.dt)

	// Slow confetti rain on the win screen
	if g.phase == core.PhaseWin && g.tick%8 == 0 {
		x := 1 + g.rng.Float64()*float64(g.runtime.ScreenW-2)
		g.particles = append(g.particles, core.Particle{
			Pos:     core.Vec{X: x, Y: float64(hudHeight)},
			Vel:     core.Vec{X: g.rng.Float64()*2 - 1, Y: 2.5},
			Life:    240,
			MaxLife: 240,
			Rune:    []rune{'*', '+', '.'}[g.rng.Intn(3)],
			Color:   balloonColors[g.rng.Intn(len(balloonColors))],
		})
	}
}

// startRound draws a fresh question and floats a new set of balloons.
func (g *Game) startRound() {
	g.nextRoundAt = 0
	g.round++

	maxOp := g.difficulty.Operands(g.cfg.Quiz.OperandStart, g.cfg.Quiz.OperandEnd, g.score, int(g.tick))
	g.question = g.gen.Question(maxOp, g.ops)
	choices := g.gen.Choices(g.question, g.choiceCount)

	playW := g.runtime.ScreenW - 4
	laneW := float64(playW) / float64(len(choices))
	margin := float64(balloonWidth/2 + 1)
	g.balloons = make([]*Balloon, len(choices))
	for i, c := range choices {
		x := core.ClampF(2+laneW*(float64(i)+0.5), margin, float64(g.runtime.ScreenW)-margin)
		g.balloons[i] = &Balloon{
			Value:       c.Value,
			Correct:     c.Correct,
			Lane:        i,
			Pos:         core.Vec{X: x, Y: float64(g.fieldBottom) - g.rng.Float64()*3},
			WobblePhase: g.rng.Float64() * 2 * math.Pi,
		}
	}
	if g.cursor >= len(g.balloons) {
		g.cursor = len(g.balloons) - 1
	}
	g.emit(core.EventRound)
}

func (g *Game) updateBalloons() {
	speed := g.difficulty.Speed(g.cfg.Physics.RiseSpeed, g.score, int(g.tick))
	for _, b := range g.balloons {
		if b.Popped {
			continue
		}
		b.WobblePhase += 2 * math.Pi * g.cfg.Physics.WobbleFreq * g.dt
		b.Pos.Y -= speed * g.dt
		// Balloons that float off the top re-enter from the bottom so the
		// correct answer is never lost
		if b.Pos.Y < float64(fieldTopRow) {
			b.Pos.Y = float64(g.fieldBottom)
		}
	}
}

func (g *Game) handleAnswerInput(input core.InputFrame) {
	if len(g.balloons) == 0 {
		return
	}

	if d := input.Digit(); d > 0 && d <= len(g.balloons) {
		g.cursor = d - 1
		g.commit()
		return
	}

	moved := false
	if input.Has(core.ActionLeft) && g.cursor > 0 {
		g.cursor--
		moved = true
	}
	if input.Has(core.ActionRight) && g.cursor < len(g.balloons)-1 {
		g.cursor++
		moved = true
	}
	if moved {
		g.emit(core.EventClick)
	}

	if input.Has(core.ActionConfirm) {
		g.commit()
	}
}

// commit resolves the balloon under the cursor.
func (g *Game) commit() {
	b := g.balloons[g.cursor]
	if b.Popped || b.Spent {
		return
	}
	g.emit(core.EventSelect)

	if b.Correct {
		b.Popped = true
		g.score++
		g.emit(core.EventCorrect)
		g.setFeedback(fmt.Sprintf("%s  %s = %d", praise[g.rng.Intn(len(praise))], g.question.Text(), g.question.Answer), core.ColorBrightGreen)
		g.particles = append(g.particles, core.Burst(g.rng, g.balloonCenter(b), 14, 9, 40,
			[]rune{'*', '+', '.', '\''}, balloonColors)...)

		if g.score >= g.roundsToWin {
			g.enterWin()
			return
		}
		g.nextRoundAt = g.tick + g.seconds(g.cfg.Timing.RoundPause)
		return
	}

	b.Spent = true
	g.mistakes++
	g.emit(core.EventIncorrect)
	g.setFeedback(encourage[g.rng.Intn(len(encourage))], core.ColorOrange)

	if g.mistakes >= g.maxMistakes {
		g.enterLose()
	}
}

func (g *Game) enterWin() {
	g.phase = core.PhaseWin
	g.emit(core.EventWin)
	for i := 0; i < 3; i++ {
		at := core.Vec{
			X: float64(g.runtime.ScreenW) * (0.25 + 0.25*float64(i)),
			Y: float64(fieldTopRow + 2),
		}
		g.particles = append(g.particles, core.Burst(g.rng, at, 10, 8, 50,
			[]rune{'*', '+', '.'}, balloonColors)...)
	}
}

func (g *Game) enterLose() {
	g.phase = core.PhaseLose
	g.emit(core.EventLose)
	g.reveal = fmt.Sprintf("%s = %d", g.question.Text(), g.question.Answer)
}

func (g *Game) setFeedback(text string, c core.Color) {
	g.feedback = text
	g.feedbackColor = c
	g.feedbackUntil = g.tick + g.seconds(g.cfg.Timing.Feedback)
}

// seconds converts a duration in seconds to ticks, with a floor of one tick.
func (g *Game) seconds(s float64) uint64 {
	t := s / g.dt
	if t < 1 {
		return 1
	}
	return uint64(t)
}

func (g *Game) balloonCenter(b *Balloon) core.Vec {
	return core.Vec{X: b.Pos.X, Y: b.Pos.Y + balloonHeight/2}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Phase:    g.phase,
		Score:    g.score,
		Mistakes: g.mistakes,
		Round:    g.round,
		Paused:   g.paused,
	}
}
