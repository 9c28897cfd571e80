package parcels

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/kbo4sho/mathday/internal/config"
	"github.com/kbo4sho/mathday/internal/core"
	"github.com/kbo4sho/mathday/internal/quiz"
	"github.com/kbo4sho/mathday/internal/registry"
)

const (
	hudHeight    = 2
	questionRows = 3
	feedbackRow  = hudHeight + questionRows
	fieldTopRow  = feedbackRow + 1
	minScreenW   = 40
	minScreenH   = 16

	parcelW = 4 // Box width including borders
	parcelH = 3
	droneW  = 5
)

var parcelColors = []core.Color{
	core.ColorOrange,
	core.ColorBrightCyan,
	core.ColorPink,
	core.ColorBrightGreen,
}

var praise = []string{"Delivered!", "Great catch!", "Nice flying!", "You got it!"}
var encourage = []string{"Wrong parcel!", "Not that one!", "Keep trying!"}

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

// Parcel is one falling answer crate. Pos.X is the sway center; the rendered
// and hittable column adds the sway offset.
type Parcel struct {
	Value     int
	Correct   bool
	Pos       core.Vec
	FallSpeed float64 // Cells per second before difficulty scaling
	SwayPhase float64
	SwaySpeed float64
	Taken     bool
}

// Drone is the player sprite. It accelerates while a key is held, coasts with
// damping otherwise, and is capped at a maximum speed.
type Drone struct {
	X  float64 // Center column
	VX float64 // Cells per second
}

// Game implements Parcel Drop: answer crates drift down from the sky and the
// player flies a delivery drone to catch the one matching the prompt.
type Game struct {
	rng *rand.Rand
	gen *quiz.Generator

	runtime    core.RuntimeConfig
	cfg        config.ParcelsConfig
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
	parcels  []*Parcel
	drone    Drone

	// nextRoundAt is the tick deadline for spawning the next round after a
	// correct catch. Zero means the current round is live.
	nextRoundAt uint64

	feedback      string
	feedbackColor core.Color
	feedbackUntil uint64
	reveal        string

	particles []core.Particle
	events    []core.Event

	droneRow  int
	groundRow int
}

// New creates a new Parcel Drop game instance.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("parcels", func() registry.Game {
		return New()
	})
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "parcels"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Parcel Drop"
}

// Tagline returns the menu pitch.
func (g *Game) Tagline() string {
	return "Catch the parcel with the right answer!"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	// Load game config
	cfg, err := config.LoadParcels(configPath)
	if err != nil {
		cfg = config.DefaultParcelsConfig()
	}

	// Apply difficulty preset if set
	if difficultyPreset != "" {
		config.ApplyParcelsPreset(&cfg, difficultyPreset)
	}

	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	g.ops = quiz.ParseOps(cfg.Quiz.Ops)

	// A broken config must never make the game unwinnable
	g.roundsToWin = core.Max(1, cfg.Quiz.RoundsToWin)
	g.maxMistakes = core.Max(1, cfg.Quiz.MaxMistakes)
	g.choiceCount = core.Clamp(cfg.Quiz.ChoiceCount, 2, 4)
	if cfg.Quiz.ChoiceCount == 0 {
		g.choiceCount = 3
	}

	tickRate := runtime.TickRate
	if tickRate <= 0 {
		tickRate = 60
	}
	g.dt = 1.0 / float64(tickRate)

	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.gen = quiz.NewGenerator(runtime.Seed)

	g.tooSmall = runtime.ScreenW < minScreenW || runtime.ScreenH < minScreenH
	g.droneRow = runtime.ScreenH - 4
	g.groundRow = runtime.ScreenH - 2

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
	g.parcels = nil
	g.drone = Drone{X: float64(g.runtime.ScreenW) / 2}
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

	g.updateDrone(input)
	g.updateParcels()
	g.particles = core.UpdateParticles(g.particles, g.dt)

	if g.nextRoundAt == 0 {
		g.handleCatches()
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
			Color:   parcelColors[g.rng.Intn(len(parcelColors))],
		})
	}
}

// startRound draws a fresh question and launches a new wave of parcels.
func (g *Game) startRound() {
	g.nextRoundAt = 0
	g.round++

	maxOp := g.difficulty.Operands(g.cfg.Quiz.OperandStart, g.cfg.Quiz.OperandEnd, g.score, int(g.tick))
	g.question = g.gen.Question(maxOp, g.ops)
	choices := g.gen.Choices(g.question, g.choiceCount)

	g.parcels = make([]*Parcel, len(choices))
	for i, c := range choices {
		g.parcels[i] = &Parcel{
			Value:     c.Value,
			Correct:   c.Correct,
			Pos:       core.Vec{X: g.spawnX(i, len(choices)), Y: g.spawnY()},
			FallSpeed: g.cfg.Physics.FallSpeedMin + g.rng.Float64()*(g.cfg.Physics.FallSpeedMax-g.cfg.Physics.FallSpeedMin),
			SwayPhase: g.rng.Float64() * 2 * math.Pi,
			SwaySpeed: 0.5 + g.rng.Float64(),
		}
	}
	g.emit(core.EventRound)
}

// spawnX spreads parcels across lanes with a little jitter so crates do not
// stack on top of each other.
func (g *Game) spawnX(lane, lanes int) float64 {
	margin := float64(parcelW)/2 + g.cfg.Physics.SwayAmp + 1
	playW := float64(g.runtime.ScreenW) - 2*margin
	laneW := playW / float64(lanes)
	jitter := (g.rng.Float64() - 0.5) * laneW * 0.4
	return core.ClampF(margin+laneW*(float64(lane)+0.5)+jitter, margin, float64(g.runtime.ScreenW)-margin)
}

// spawnY staggers entry so the wave trickles in instead of arriving at once.
func (g *Game) spawnY() float64 {
	return float64(fieldTopRow) - parcelH - g.rng.Float64()*8
}

func (g *Game) updateDrone(input core.InputFrame) {
	accel := 0.0
	if input.Has(core.ActionLeft) {
		accel -= g.cfg.Physics.DroneAccel
	}
	if input.Has(core.ActionRight) {
		accel += g.cfg.Physics.DroneAccel
	}

	g.drone.VX += accel * g.dt
	g.drone.VX *= g.cfg.Physics.DroneDamping

	maxSpeed := g.cfg.Physics.DroneMaxSpeed
	if maxSpeed > 0 {
		g.drone.VX = core.ClampF(g.drone.VX, -maxSpeed, maxSpeed)
	}

	g.drone.X += g.drone.VX * g.dt

	// Stop dead at the walls instead of bouncing
	margin := float64(droneW)/2 + 1
	limit := float64(g.runtime.ScreenW) - margin
	if g.drone.X < margin {
		g.drone.X = margin
		g.drone.VX = 0
	}
	if g.drone.X > limit {
		g.drone.X = limit
		g.drone.VX = 0
	}
}

func (g *Game) updateParcels() {
	speedMult := g.difficulty.Speed(1.0, g.score, int(g.tick))
	for _, p := range g.parcels {
		if p.Taken {
			continue
		}
		p.SwayPhase += p.SwaySpeed * g.dt
		p.Pos.Y += p.FallSpeed * speedMult * g.dt

		// A crate that reaches the ground re-enters from the sky with the
		// same value, so the correct answer is never lost
		if int(p.Pos.Y) > g.groundRow {
			g.puff(p)
			p.Pos.X = g.spawnX(g.rng.Intn(g.choiceCount), g.choiceCount)
			p.Pos.Y = g.spawnY()
		}
	}
}

// puff marks a ground touch with a little dust cloud.
func (g *Game) puff(p *Parcel) {
	x := g.parcelX(p)
	for i := 0; i < 3; i++ {
		g.particles = append(g.particles, core.Particle{
			Pos:     core.Vec{X: x + float64(i-1), Y: float64(g.groundRow - 1)},
			Vel:     core.Vec{X: float64(i-1) * 2, Y: -1.5},
			Gravity: 6,
			Life:    20,
			MaxLife: 20,
			Rune:    '░',
			Color:   core.ColorGray,
		})
	}
}

// parcelX returns the effective center column including sway.
func (g *Game) parcelX(p *Parcel) float64 {
	return p.Pos.X + math.Sin(p.SwayPhase)*g.cfg.Physics.SwayAmp
}

// parcelRect returns the crate's hitbox in cell coordinates.
func (g *Game) parcelRect(p *Parcel) core.Rect {
	x := int(math.Round(g.parcelX(p))) - parcelW/2
	y := int(math.Round(p.Pos.Y))
	return core.NewRect(x, y, parcelW, parcelH)
}

// droneRect returns the drone's catch box in cell coordinates.
func (g *Game) droneRect() core.Rect {
	x := int(math.Round(g.drone.X)) - droneW/2
	return core.NewRect(x, g.droneRow-1, droneW, 2)
}

func (g *Game) handleCatches() {
	box := g.droneRect()
	for _, p := range g.parcels {
		if p.Taken {
			continue
		}
		if g.parcelRect(p).Intersects(box) {
			g.catchParcel(p)
			return // One catch per tick
		}
	}
}

// catchParcel resolves a crate landing in the drone's basket.
func (g *Game) catchParcel(p *Parcel) {
	p.Taken = true
	g.emit(core.EventSelect)
	at := core.Vec{X: g.parcelX(p), Y: p.Pos.Y + 1}

	if p.Correct {
		g.score++
		g.emit(core.EventCorrect)
		g.setFeedback(fmt.Sprintf("%s  %s = %d", praise[g.rng.Intn(len(praise))], g.question.Text(), g.question.Answer), core.ColorBrightGreen)
		g.particles = append(g.particles, core.Burst(g.rng, at, 14, 9, 40,
			[]rune{'*', '+', '.', '\''}, parcelColors)...)

		if g.score >= g.roundsToWin {
			g.enterWin()
			return
		}
		g.nextRoundAt = g.tick + g.seconds(g.cfg.Timing.RoundPause)
		return
	}

	g.mistakes++
	g.emit(core.EventIncorrect)
	g.setFeedback(encourage[g.rng.Intn(len(encourage))], core.ColorOrange)
	g.particles = append(g.particles, core.Burst(g.rng, at, 6, 5, 25,
		[]rune{'░', '·'}, []core.Color{core.ColorGray})...)

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
			[]rune{'*', '+', '.'}, parcelColors)...)
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

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue", "")
		return
	}

	g.renderSky(dst)
	g.renderQuestion(dst)
	g.renderFeedback(dst)
	g.renderParcels(dst)
	g.renderDrone(dst)
	g.renderParticles(dst)
	g.renderGround(dst)

	switch {
	case g.phase == core.PhaseMenu:
		g.renderOverlay(dst, "PARCEL DROP", g.Tagline(), "Press Enter to start!")
	case g.phase == core.PhaseWin:
		g.renderOverlay(dst, "Delivery complete!", fmt.Sprintf("Final Score: %d", g.score), "R play again · B menu")
	case g.phase == core.PhaseLose:
		g.renderOverlay(dst, "Good try!", "The answer was "+g.reveal, "R try again · B menu")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue", "")
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Parcel Drop — Score: %d/%d  Round: %d", g.score, g.roundsToWin, g.round)
	dst.DrawTextColored(0, 0, hud, core.ColorBrightWhite)

	hearts := heartString(g.maxMistakes-g.mistakes, g.maxMistakes)
	dst.DrawTextColored(dst.Width()-core.TextWidth(hearts)-1, 0, hearts, core.ColorBrightRed)

	for x := 0; x < dst.Width(); x++ {
		dst.SetCell(x, 1, '─', core.ColorGray)
	}
}

func heartString(remaining, total int) string {
	out := make([]rune, 0, total*2)
	for i := 0; i < total; i++ {
		if i > 0 {
			out = append(out, ' ')
		}
		if i < remaining {
			out = append(out, '♥')
		} else {
			out = append(out, '♡')
		}
	}
	return string(out)
}

// renderSky draws a dusk backdrop: moon plus a fixed starfield that twinkles.
func (g *Game) renderSky(dst *core.Screen) {
	dst.SetCell(dst.Width()-5, fieldTopRow, '☽', core.ColorBrightYellow)

	for y := fieldTopRow; y < g.droneRow-1; y++ {
		for x := 2; x < dst.Width()-2; x++ {
			if (x*7+y*13)%41 != 0 {
				continue
			}
			star := '·'
			if (int(g.tick)/30+x)%3 == 0 {
				star = '✦'
			}
			dst.SetCell(x, y, star, core.ColorGray)
		}
	}
}

func (g *Game) renderQuestion(dst *core.Screen) {
	prompt := "Ready?"
	if g.round > 0 {
		prompt = g.question.Prompt()
	}

	boxW := core.TextWidth(prompt) + 4
	boxX := (dst.Width() - boxW) / 2
	box := core.NewRect(boxX, hudHeight, boxW, questionRows)
	dst.DrawBoxColored(box, core.ColorSky)
	dst.DrawTextCenteredColored(hudHeight+1, prompt, core.ColorBrightWhite)
}

func (g *Game) renderFeedback(dst *core.Screen) {
	if g.feedback == "" || g.tick > g.feedbackUntil {
		return
	}
	dst.DrawTextCenteredColored(feedbackRow, g.feedback, g.feedbackColor)
}

func (g *Game) renderParcels(dst *core.Screen) {
	for i, p := range g.parcels {
		if p.Taken {
			continue
		}
		x := int(math.Round(g.parcelX(p))) - parcelW/2
		y := int(math.Round(p.Pos.Y))
		color := parcelColors[i%len(parcelColors)]

		// Crates fade in from above the field and sink into the ground,
		// so each row is clipped to the playfield band
		rows := []string{"╭──╮", fmt.Sprintf("│%2d│", p.Value), "╰──╯"}
		for dy, row := range rows {
			if y+dy >= fieldTopRow && y+dy < g.groundRow {
				dst.DrawTextColored(x, y+dy, row, color)
			}
		}
	}
}

func (g *Game) renderDrone(dst *core.Screen) {
	x := int(math.Round(g.drone.X)) - droneW/2
	dst.DrawTextColored(x, g.droneRow-1, "o───o", core.ColorBrightCyan)
	dst.DrawTextColored(x, g.droneRow, `\___/`, core.ColorBrightWhite)
}

func (g *Game) renderParticles(dst *core.Screen) {
	for i := range g.particles {
		p := &g.particles[i]
		x, y := p.Pos.Cell()
		if y >= fieldTopRow-1 && y <= g.groundRow {
			dst.SetCell(x, y, p.Rune, p.Color)
		}
	}
}

func (g *Game) renderGround(dst *core.Screen) {
	for x := 0; x < dst.Width(); x++ {
		dst.SetCell(x, g.groundRow, '▄', core.ColorGray)
	}
	hint := "←/→ fly · catch the right parcel · P pause · M sound"
	dst.DrawTextCenteredColored(dst.Height()-1, hint, core.ColorGray)
}

// renderOverlay draws a centered message box sized to its longest line.
func (g *Game) renderOverlay(dst *core.Screen, lines ...string) {
	var kept []string
	for _, l := range lines {
		if l != "" {
			kept = append(kept, l)
		}
	}
	maxLen := 0
	for _, l := range kept {
		if w := core.TextWidth(l); w > maxLen {
			maxLen = w
		}
	}

	boxW := maxLen + 6
	boxH := len(kept)*2 + 1
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRectColored(box, ' ', core.ColorDefault)
	dst.DrawBoxColored(box, core.ColorBrightYellow)

	for i, l := range kept {
		color := core.ColorWhite
		if i == 0 {
			color = core.ColorBrightYellow
		}
		dst.DrawTextCenteredColored(boxY+1+i*2, l, color)
	}
}
