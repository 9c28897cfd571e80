package balloons

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

	g.renderSky(dst)
	g.renderQuestion(dst)
	g.renderFeedback(dst)
	g.renderBalloons(dst)
	g.renderParticles(dst)
	g.renderGround(dst)

	switch {
	case g.phase == core.PhaseMenu:
		g.renderOverlay(dst, "BALLOON POP", g.Tagline(), "Press Enter to start!")
	case g.phase == core.PhaseWin:
		g.renderOverlay(dst, "You did it!", fmt.Sprintf("Final Score: %d", g.score), "R play again · B menu")
	case g.phase == core.PhaseLose:
		g.renderOverlay(dst, "Good try!", "The answer was "+g.reveal, "R try again · B menu")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue", "")
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Balloon Pop — Score: %d/%d  Round: %d", g.score, g.roundsToWin, g.round)
	dst.DrawTextColored(0, 0, hud, core.ColorBrightWhite)

	hearts := heartString(g.maxMistakes-g.mistakes, g.maxMistakes)
	dst.DrawTextColored(dst.Width()-core.TextWidth(hearts)-1, 0, hearts, core.ColorBrightRed)

	for x := 0; x < dst.Width(); x++ {
		dst.SetCell(x, 1, '─', core.ColorGray)
	}
}

// heartString renders remaining lives as filled hearts, spent ones hollow.
func heartString(remaining, total int) string {
	var sb strings.Builder
	for i := 0; i < total; i++ {
		if i > 0 {
			sb.WriteRune(' ')
		}
		if i < remaining {
			sb.WriteRune('♥')
		} else {
			sb.WriteRune('♡')
		}
	}
	return sb.String()
}

func (g *Game) renderSky(dst *core.Screen) {
	// Sun in the top-right corner of the field
	dst.SetCell(dst.Width()-5, fieldTopRow, '☀', core.ColorBrightYellow)

	// Two clouds drifting right to left at different speeds
	span := dst.Width() + 10
	g.renderCloud(dst, span-int(g.tick/12)%span-5, fieldTopRow+1)
	g.renderCloud(dst, span-int(g.tick/18+30)%span-5, fieldTopRow+4)
}

func (g *Game) renderCloud(dst *core.Screen, x, y int) {
	dst.DrawTextColored(x, y, "░░░░", core.ColorWhite)
	dst.DrawTextColored(x-1, y+1, "░░░░░░", core.ColorWhite)
}

func (g *Game) renderQuestion(dst *core.Screen) {
	prompt := ""
	if g.round > 0 {
		prompt = g.question.Prompt()
	} else {
		prompt = "Ready?"
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

func (g *Game) renderBalloons(dst *core.Screen) {
	for _, b := range g.balloons {
		if b.Popped {
			continue
		}
		x := int(math.Round(b.Pos.X + math.Sin(b.WobblePhase)*g.cfg.Physics.WobbleAmp))
		y := int(math.Round(b.Pos.Y))

		if b.Spent {
			dst.SetCell(x, y+1, '×', core.ColorGray)
			dst.SetCell(x, y+2, '╎', core.ColorGray)
			continue
		}

		color := balloonColors[b.Lane%len(balloonColors)]
		value := fmt.Sprintf("%d", b.Value)
		pad := (5 - len(value)) / 2
		inner := strings.Repeat(" ", pad) + value + strings.Repeat(" ", 5-pad-len(value))

		dst.DrawTextColored(x-3, y, " .---.", color)
		dst.DrawTextColored(x-3, y+1, "("+inner+")", color)
		dst.DrawTextColored(x-3, y+2, " '---'", color)
		dst.SetCell(x, y+3, '╎', core.ColorGray)

		// Digit shortcut above each live balloon
		dst.SetCell(x, y-1, rune('1'+b.Lane), core.ColorGray)
	}

	// Aim marker under the cursor lane
	if g.phase == core.PhasePlaying && g.nextRoundAt == 0 && g.cursor < len(g.balloons) {
		cx := int(math.Round(g.balloons[g.cursor].Pos.X))
		dst.SetCell(cx, g.fieldBottom+1, '▲', core.ColorBrightWhite)
	}
}

func (g *Game) renderParticles(dst *core.Screen) {
	for i := range g.particles {
		p := &g.particles[i]
		x, y := p.Pos.Cell()
		if y >= fieldTopRow-1 && y <= g.fieldBottom+1 {
			dst.SetCell(x, y, p.Rune, p.Color)
		}
	}
}

func (g *Game) renderGround(dst *core.Screen) {
	for x := 0; x < dst.Width(); x++ {
		dst.SetCell(x, dst.Height()-2, '▒', core.ColorGreen)
	}
	hint := "←/→ aim · Enter pop · 1-4 quick pick · P pause · M sound"
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
