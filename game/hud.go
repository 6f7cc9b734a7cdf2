package game

import (
	"fmt"
	"image/color"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"sidescroller/sim"
)

var hudFace = text.NewGoXFace(basicfont.Face7x13)

const hudLineSpacing = 16

// Status is what the HUD shows, sampled once per frame
type Status struct {
	Score     int
	HighScore int
	HasHigh   bool
	Power     int
	MaxPower  int
	Elapsed   time.Duration
	Shields   int
	Force     bool
	GameOver  bool
}

// statusOf samples the simulation
func statusOf(s *sim.Simulation) Status {
	best, ok := s.HighScore()
	st := Status{
		Score:     s.Score(),
		HighScore: best,
		HasHigh:   ok,
		Power:     s.Power(),
		MaxPower:  s.Config().Power.Max,
		Elapsed:   time.Duration(s.Elapsed()) * time.Millisecond,
		GameOver:  s.GameOver(),
	}
	if state := s.State(); state != nil {
		for slot := sim.SlotTop; slot <= sim.SlotBottom; slot++ {
			if state.Equipment.Shield(slot) != nil {
				st.Shields++
			}
		}
		st.Force = state.Equipment.Force() != nil
	}
	return st
}

// statusLines formats the top-left HUD block
func statusLines(st Status) []string {
	lines := []string{fmt.Sprintf("Score: %d", st.Score)}
	if st.HasHigh {
		lines = append(lines, fmt.Sprintf("High score: %d", st.HighScore))
	}
	lines = append(lines,
		fmt.Sprintf("Power: [%s%s]", strings.Repeat("|", st.Power), strings.Repeat(".", max(st.MaxPower-st.Power, 0))),
		fmt.Sprintf("Time: %.1fs", st.Elapsed.Seconds()),
	)

	var equip []string
	if st.Shields > 0 {
		equip = append(equip, fmt.Sprintf("shield x%d", st.Shields))
	}
	if st.Force {
		equip = append(equip, "force")
	}
	if len(equip) > 0 {
		lines = append(lines, "Equipped: "+strings.Join(equip, ", "))
	}
	return lines
}

// gameOverLines is the centered message shown after the session ends
func gameOverLines(st Status) []string {
	lines := []string{"GAME OVER", fmt.Sprintf("Final score: %d", st.Score)}
	if st.HasHigh && st.Score >= st.HighScore && st.Score > 0 {
		lines = append(lines, "New high score!")
	}
	return append(lines, "Press R to restart, Esc to quit")
}

func drawLines(screen *ebiten.Image, lines []string, x, y float64, align text.Align) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(color.White)
	op.LineSpacing = hudLineSpacing
	op.PrimaryAlign = align
	text.Draw(screen, strings.Join(lines, "\n"), hudFace, op)
}

// DrawHUD draws the status block and, after game over, the centered message
func DrawHUD(screen *ebiten.Image, st Status) {
	drawLines(screen, statusLines(st), 8, 8, text.AlignStart)

	if st.GameOver {
		w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
		lines := gameOverLines(st)
		y := float64(h)/2 - float64(len(lines)*hudLineSpacing)/2
		drawLines(screen, lines, float64(w)/2, y, text.AlignCenter)
	}
}

// drawStats prints debug counters in the top-right corner
func drawStats(screen *ebiten.Image, s *sim.Simulation, tick time.Duration, tps float64) {
	st := s.State()
	if st == nil {
		return
	}
	lines := []string{
		fmt.Sprintf("TPS: %.0f", tps),
		fmt.Sprintf("tick: %v", tick.Round(time.Microsecond)),
		fmt.Sprintf("hostiles: %d", len(st.Hostiles)),
		fmt.Sprintf("projectiles: %d", len(st.Projectiles)),
		fmt.Sprintf("obstacles: %d", len(st.Obstacles)),
		fmt.Sprintf("pickups: %d", len(st.Pickups)),
	}
	drawLines(screen, lines, float64(screen.Bounds().Dx())-8, 8, text.AlignEnd)
}
