package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kbo4sho/mathday/internal/audio"
	"github.com/kbo4sho/mathday/internal/core"
	"github.com/kbo4sho/mathday/internal/registry"
	"github.com/kbo4sho/mathday/internal/storage"
)

// effectFor maps a game event to the sound effect the platform plays for it.
// Games never touch audio directly; they emit events and this table decides.
func effectFor(ev core.Event) (audio.Effect, bool) {
	switch ev {
	case core.EventClick:
		return audio.EffectClick, true
	case core.EventSelect:
		return audio.EffectSelect, true
	case core.EventCorrect:
		return audio.EffectCorrect, true
	case core.EventIncorrect:
		return audio.EffectIncorrect, true
	case core.EventRound:
		return audio.EffectRound, true
	case core.EventWin:
		return audio.EffectWin, true
	case core.EventLose:
		return audio.EffectLose, true
	}
	return 0, false
}

// padFadeSeconds is how long the ambient pad takes to fade out when a
// session ends.
const padFadeSeconds = 0.8

// GameModel is the Bubble Tea model that runs a single game: it owns the
// tick loop, translates keys to actions, dispatches events to the audio
// engine, and records scores. The same model serves local play and SSH
// sessions; only the surrounding wiring differs.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	engine     *audio.Engine
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	dailyDay   string // non-empty when this run counts toward the daily challenge
	quitOnBack bool   // standalone play exits on back instead of returning to a menu
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether results have been saved for the current game over
}

// NewGameModel creates a model for the given game. The engine may be a
// silent one; the model never checks whether sound actually comes out.
func NewGameModel(game registry.Game, store *storage.Store, engine *audio.Engine, cfg core.RuntimeConfig) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		engine:     engine,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
	}
}

// Init initializes the game and starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.stopPad()
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionMute:
		// Sound is platform state, not game state
		if m.engine != nil {
			m.engine.ToggleMuted()
		}
		return m, nil

	case core.ActionBack:
		if m.gameState.GameOver() || m.gameState.Paused {
			m.stopPad()
			if m.quitOnBack {
				m.quitting = true
				return m, tea.Quit
			}
			m.backToMenu = true
			return m, nil
		}
	}

	if action != core.ActionNone {
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleResize processes window resize events.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	// Mid-session resizes restart the game so entity layout matches the new
	// grid. A finished game keeps its end screen.
	if !m.gameState.GameOver() {
		m.game.Reset(m.config)
		m.gameState = m.game.State()
	}

	return m, nil
}

// handleTick processes simulation ticks. Restart is handled inside the game
// itself (Step sees ActionRestart); the platform only watches the phase
// transitions that come back out.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	prev := m.gameState

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	m.playEvents(result.Events)

	// The ambient pad runs only while a round is live.
	if m.engine != nil {
		if m.gameState.Phase == core.PhasePlaying && prev.Phase != core.PhasePlaying {
			m.engine.StartPad()
		}
		if m.gameState.GameOver() && !prev.GameOver() {
			m.engine.StopPad(padFadeSeconds)
		}
	}

	// Leaving a terminal phase (restart) re-arms the score save.
	if prev.GameOver() && !m.gameState.GameOver() {
		m.scoreSaved = false
	}

	// Save results on game over (once)
	if m.gameState.GameOver() && !m.scoreSaved {
		m.saveResults()
		m.scoreSaved = true
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// playEvents fires the sound effect for each event raised this tick.
func (m *GameModel) playEvents(events []core.Event) {
	if m.engine == nil {
		return
	}
	for _, ev := range events {
		if fx, ok := effectFor(ev); ok {
			m.engine.Play(fx)
		}
	}
}

// saveResults writes the finished session to storage. Failures are ignored:
// the arcade runs fine without a database.
func (m *GameModel) saveResults() {
	if m.store == nil {
		return
	}
	if m.gameState.Score > 0 {
		//nolint:errcheck // Best-effort save, game continues regardless
		m.store.SaveScore(m.game.ID(), m.gameState.Score)
	}
	// Daily attempts are recorded even at zero so the day counts as played.
	if m.dailyDay != "" {
		//nolint:errcheck // Best-effort save
		m.store.SaveDailyResult(m.dailyDay, m.game.ID(), m.gameState.Score)
	}
}

// stopPad fades the ambient pad out if the engine is running.
func (m *GameModel) stopPad() {
	if m.engine != nil {
		m.engine.StopPad(padFadeSeconds)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	// Render current state
	m.game.Render(m.screen)

	// Create screenshots directory
	dir := filepath.Join(os.Getenv("HOME"), ".mathday", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	// Save screenshot
	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	// Render game to screen buffer
	m.game.Render(m.screen)
	m.drawSoundNote()

	// Convert screen to string
	return RenderScreen(m.screen)
}

// drawSoundNote writes a small status into the bottom-right corner when
// sound is off, so kids know why the game went quiet.
func (m *GameModel) drawSoundNote() {
	if m.engine == nil {
		return
	}

	var note string
	switch {
	case m.engine.Muted():
		note = "sound off"
	case !m.engine.Available():
		note = "sound unavailable"
	default:
		return
	}

	x := m.screen.Width() - len(note) - 1
	if x < 0 {
		x = 0
	}
	m.screen.DrawTextColored(x, m.screen.Height()-1, note, core.ColorGray)
}

// IsQuitting returns true if the user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user requested to go back to the menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run starts a standalone Bubble Tea program for the given game and blocks
// until the player quits.
func Run(game registry.Game, store *storage.Store, engine *audio.Engine, cfg core.RuntimeConfig) error {
	model := NewGameModel(game, store, engine, cfg)
	model.quitOnBack = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}

// RunDaily runs a game as the daily challenge: the finished score is also
// recorded under the given day.
func RunDaily(game registry.Game, store *storage.Store, engine *audio.Engine, cfg core.RuntimeConfig, day string) error {
	model := NewGameModel(game, store, engine, cfg)
	model.quitOnBack = true
	model.dailyDay = day

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
