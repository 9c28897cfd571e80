package powercells

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/kbo4sho/mathday/internal/config"
	"github.com/kbo4sho/mathday/internal/core"
	"github.com/kbo4sho/mathday/internal/quiz"
	"github.com/kbo4sho/mathday/internal/registry"
)

const (
	hudHeight   = 2
	targetRows  = 3 // Boxed target prompt under the HUD
	feedbackRow = hudHeight + targetRows
	fieldTopRow = feedbackRow + 1
	minScreenW  = 44
	minScreenH  = 18

	machineW = 24
	machineH = 4
	cellW    = 5
	cellH    = 3
	cellGap  = 1
)

var cellColors = []core.Color{
	core.ColorBrightCyan,
	core.ColorBrightYellow,
	core.ColorPink,
	core.ColorBrightGreen,
	core.ColorOrange,
	core.ColorSky,
}

var praise = []string{"Charged up!", "Perfect fit!", "Zap! Well done!", "You did it!"}
var encourage = []string{"Too much charge!", "Over the top!", "Try a smaller mix!"}

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

// Token is one selectable charge cell.
type Token struct {
	Value    int
	Selected bool
}

// Game implements Power Cells: pick cells whose values add up exactly to the
// machine's target charge. Undershooting keeps the round going, overshooting
// costs a life and clears the selection.
type Game struct {
	rng *rand.Rand
	gen *quiz.Generator

	runtime    core.RuntimeConfig
	cfg        config.PowercellsConfig
	difficulty *config.DifficultyManager
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

	target int
	tokens []Token
	cursor int

	// charge is the eased meter level; it trails the selected sum so the
	// machine appears to fill and drain smoothly
	charge float64

	// nextRoundAt is the tick deadline for the next round after a solve.
	// Zero means the current round is live.
	nextRoundAt uint64

	feedback      string
	feedbackColor core.Color
	feedbackUntil uint64
	reveal        string

	particles []core.Particle
	events    []core.Event

	cellsTop int
	floorRow int
}

// New creates a new Power Cells game instance.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("powercells", func() registry.Game {
		return New()
	})
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "powercells"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Power Cells"
}

// Tagline returns the menu pitch.
func (g *Game) Tagline() string {
	return "Add up cells to hit the target charge!"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	// Load game config
	cfg, err := config.LoadPowercells(configPath)
	if err != nil {
		cfg = config.DefaultPowercellsConfig()
	}

	// Apply difficulty preset if set
	if difficultyPreset != "" {
		config.ApplyPowercellsPreset(&cfg, difficultyPreset)
	}

	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	// A broken config must never make the game unwinnable
	g.roundsToWin = core.Max(1, cfg.Quiz.RoundsToWin)
	g.maxMistakes = core.Max(1, cfg.Quiz.MaxMistakes)

	tickRate := runtime.TickRate
	if tickRate <= 0 {
		tickRate = 60
	}
	g.dt = 1.0 / float64(tickRate)

	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.gen = quiz.NewGenerator(runtime.Seed)

	g.tooSmall = runtime.ScreenW < minScreenW || runtime.ScreenH < minScreenH
	g.cellsTop = runtime.ScreenH - 6
	g.floorRow = runtime.ScreenH - 2

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
	g.target = 0
	g.tokens = nil
	g.cursor = 0
	g.charge = 0
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
	if input.Has(core.ActionConfirm) {
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

	g.easeCharge()
	g.particles = core.UpdateParticles(g.particles, g.dt)

	if g.nextRoundAt == 0 {
		g.handleInput(input)
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
			Color:   cellColors[g.rng.Intn(len(cellColors))],
		})
	}
}

// startRound draws a fresh token puzzle.
func (g *Game) startRound() {
	g.nextRoundAt = 0
	g.round++

	// Addends grow with the difficulty level, which raises the targets
	maxAddend := g.cfg.Tokens.MaxAddend
	if maxAddend < 1 {
		maxAddend = 9
	}
	addend := g.difficulty.Operands(core.Max(3, maxAddend-3), maxAddend, g.score, int(g.tick))

	problem := g.gen.TokenSet(g.cfg.Tokens.Count, g.cfg.Tokens.MinParts, g.cfg.Tokens.MaxParts, addend)
	g.target = problem.Target
	g.tokens = make([]Token, len(problem.Values))
	for i, v := range problem.Values {
		g.tokens[i] = Token{Value: v}
	}
	if g.cursor >= len(g.tokens) {
		g.cursor = len(g.tokens) - 1
	}
	g.charge = 0
	g.emit(core.EventRound)
}

// easeCharge trails the meter toward the selected sum.
func (g *Game) easeCharge() {
	g.charge += (float64(g.sum()) - g.charge) * core.ClampF(8*g.dt, 0, 1)
}

// sum returns the total value of the selected tokens.
func (g *Game) sum() int {
	total := 0
	for _, tok := range g.tokens {
		if tok.Selected {
			total += tok.Value
		}
	}
	return total
}

func (g *Game) handleInput(input core.InputFrame) {
	if len(g.tokens) == 0 {
		return
	}

	moved := false
	if input.Has(core.ActionLeft) && g.cursor > 0 {
		g.cursor--
		moved = true
	}
	if input.Has(core.ActionRight) && g.cursor < len(g.tokens)-1 {
		g.cursor++
		moved = true
	}
	if moved {
		g.emit(core.EventClick)
	}

	if input.Has(core.ActionConfirm) {
		g.toggle()
	}
}

// toggle flips the token under the cursor and resolves the new sum.
func (g *Game) toggle() {
	tok := &g.tokens[g.cursor]
	if tok.Selected {
		tok.Selected = false
		g.emit(core.EventClick)
		return
	}

	tok.Selected = true
	g.spark(g.cursor)

	switch sum := g.sum(); {
	case sum == g.target:
		g.solve()
	case sum > g.target:
		g.overfill()
	default:
		g.emit(core.EventClick)
	}
}

// solve locks in a correct combination.
func (g *Game) solve() {
	g.emit(core.EventSelect)
	g.score++
	g.emit(core.EventCorrect)

	var parts []string
	for _, tok := range g.tokens {
		if tok.Selected {
			parts = append(parts, fmt.Sprintf("%d", tok.Value))
		}
	}
	g.setFeedback(fmt.Sprintf("%s  %s = %d", praise[g.rng.Intn(len(praise))],
		strings.Join(parts, " + "), g.target), core.ColorBrightGreen)

	at := core.Vec{X: float64(g.runtime.ScreenW) / 2, Y: float64(fieldTopRow + 2)}
	g.particles = append(g.particles, core.Burst(g.rng, at, 14, 9, 40,
		[]rune{'*', '+', '.', '\''}, cellColors)...)

	if g.score >= g.roundsToWin {
		g.enterWin()
		return
	}
	g.nextRoundAt = g.tick + g.seconds(g.cfg.Timing.RoundPause)
}

// overfill punishes an overshoot: the selection clears and a life is lost.
func (g *Game) overfill() {
	g.emit(core.EventSelect)
	g.mistakes++
	g.emit(core.EventIncorrect)

	for i := range g.tokens {
		g.tokens[i].Selected = false
	}
	g.steam()
	g.setFeedback(encourage[g.rng.Intn(len(encourage))], core.ColorOrange)

	if g.mistakes >= g.maxMistakes {
		g.enterLose()
	}
}

// spark launches an energy mote from a selected cell toward the machine.
func (g *Game) spark(idx int) {
	x, _ := g.cellOrigin(idx)
	g.particles = append(g.particles, core.Particle{
		Pos:     core.Vec{X: float64(x + cellW/2), Y: float64(g.cellsTop - 1)},
		Vel:     core.Vec{X: 0, Y: -14},
		Life:    40,
		MaxLife: 40,
		Rune:    '•',
		Color:   core.ColorBrightYellow,
	})
}

// steam vents the machine when the charge overshoots.
func (g *Game) steam() {
	left := (g.runtime.ScreenW - machineW) / 2
	for i := 0; i < 8; i++ {
		g.particles = append(g.particles, core.Particle{
			Pos:     core.Vec{X: float64(left + 2 + g.rng.Intn(machineW-4)), Y: float64(fieldTopRow)},
			Vel:     core.Vec{X: (g.rng.Float64() - 0.5) * 3, Y: -2 - g.rng.Float64()*2},
			Life:    30,
			MaxLife: 30,
			Rune:    []rune{'░', '▒'}[g.rng.Intn(2)],
			Color:   core.ColorGray,
		})
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
			[]rune{'*', '+', '.'}, cellColors)...)
	}
}

func (g *Game) enterLose() {
	g.phase = core.PhaseLose
	g.emit(core.EventLose)

	values := make([]int, len(g.tokens))
	for i, tok := range g.tokens {
		values[i] = tok.Value
	}
	if idx := quiz.Solution(values, g.target); len(idx) > 0 {
		parts := make([]string, len(idx))
		for i, j := range idx {
			parts[i] = fmt.Sprintf("%d", values[j])
		}
		g.reveal = fmt.Sprintf("%s = %d", strings.Join(parts, " + "), g.target)
	}
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

// cellOrigin returns the top-left corner of token idx's box.
func (g *Game) cellOrigin(idx int) (int, int) {
	rowW := len(g.tokens)*cellW + (len(g.tokens)-1)*cellGap
	left := (g.runtime.ScreenW - rowW) / 2
	return left + idx*(cellW+cellGap), g.cellsTop
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
