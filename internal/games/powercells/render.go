package powercells

import (
	"fmt"
	"math"
	"strings"

	"github.com/kbo4sho/mathday/internal/core"
)

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue", "")
		return
	}

	g.renderTarget(dst)
	g.renderFeedback(dst)
	g.renderMachine(dst)
	g.renderCable(dst)
	g.renderTokens(dst)
	g.renderParticles(dst)
	g.renderFloor(dst)

	switch {
	case g.phase == core.PhaseMenu:
		g.renderOverlay(dst, "POWER CELLS", g.Tagline(), "Press Enter to start!")
	case g.phase == core.PhaseWin:
		g.renderOverlay(dst, "MACHINE CHARGED!", fmt.Sprintf("Final Score: %d", g.score), "R play again · B menu")
	case g.phase == core.PhaseLose:
		g.renderOverlay(dst, "Good try!", "One way: "+g.reveal, "R try again · B menu")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue", "")
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Power Cells — Score: %d/%d  Round: %d", g.score, g.roundsToWin, g.round)
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

func (g *Game) renderTarget(dst *core.Screen) {
	prompt := "Ready?"
	if g.round > 0 {
		prompt = fmt.Sprintf("Charge the machine to %d", g.target)
	}

	boxW := core.TextWidth(prompt) + 4
	boxX := (dst.Width() - boxW) / 2
	box := core.NewRect(boxX, hudHeight, boxW, targetRows)
	dst.DrawBoxColored(box, core.ColorSky)
	dst.DrawTextCenteredColored(hudHeight+1, prompt, core.ColorBrightWhite)
}

func (g *Game) renderFeedback(dst *core.Screen) {
	if g.feedback == "" || g.tick > g.feedbackUntil {
		return
	}
	dst.DrawTextCenteredColored(feedbackRow, g.feedback, g.feedbackColor)
}

// renderMachine draws the machine cabinet with its eased charge meter.
func (g *Game) renderMachine(dst *core.Screen) {
	left := (dst.Width() - machineW) / 2
	top := fieldTopRow + 1

	frame := core.ColorSky
	if g.nextRoundAt != 0 {
		frame = core.ColorBrightGreen // Lit while a solved round celebrates
	}

	box := core.NewRect(left, top, machineW, machineH)
	dst.DrawRectColored(box, ' ', core.ColorDefault)
	dst.DrawBoxColored(box, frame)
	dst.SetCell(left+machineW/2, top, '⚡', core.ColorBrightYellow)

	label := fmt.Sprintf("Charge: %d / %d", g.sum(), g.target)
	dst.DrawTextColored(left+(machineW-core.TextWidth(label))/2, top+1, label, core.ColorBrightWhite)

	barW := machineW - 6
	fill := 0
	if g.target > 0 {
		fill = core.Clamp(int(math.Round(g.charge/float64(g.target)*float64(barW))), 0, barW)
	}
	meterColor := core.ColorBrightGreen
	if g.sum() > g.target {
		meterColor = core.ColorBrightRed
	}
	meter := strings.Repeat("█", fill) + strings.Repeat("░", barW-fill)
	dst.DrawTextColored(left+3, top+2, meter, meterColor)

	// Feet
	dst.SetCell(left+3, top+machineH, '▙', core.ColorGray)
	dst.SetCell(left+machineW-4, top+machineH, '▟', core.ColorGray)
}

// renderCable draws the energy line from the cells up into the machine.
func (g *Game) renderCable(dst *core.Screen) {
	x := dst.Width() / 2
	for y := fieldTopRow + 1 + machineH; y < g.cellsTop-1; y++ {
		dst.SetCell(x, y, '┊', core.ColorGray)
	}
}

func (g *Game) renderTokens(dst *core.Screen) {
	for i, tok := range g.tokens {
		x, y := g.cellOrigin(i)

		border := core.ColorGray
		valueColor := core.ColorWhite
		if tok.Selected {
			border = core.ColorBrightGreen
			valueColor = core.ColorBrightWhite
		}

		box := core.NewRect(x, y, cellW, cellH)
		dst.DrawBoxColored(box, border)
		dst.DrawTextColored(x+1, y+1, fmt.Sprintf("%2d ", tok.Value), valueColor)

		if i == g.cursor && g.phase == core.PhasePlaying && g.nextRoundAt == 0 {
			dst.SetCell(x+cellW/2, y-1, '▼', core.ColorBrightYellow)
		}
	}
}

func (g *Game) renderParticles(dst *core.Screen) {
	for i := range g.particles {
		p := &g.particles[i]
		x, y := p.Pos.Cell()
		if y >= hudHeight && y < g.floorRow {
			dst.SetCell(x, y, p.Rune, p.Color)
		}
	}
}

func (g *Game) renderFloor(dst *core.Screen) {
	for x := 0; x < dst.Width(); x++ {
		dst.SetCell(x, g.floorRow, '▄', core.ColorGray)
	}
	hint := "←/→ pick · Enter toggle · hit the target exactly · P pause · M sound"
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
