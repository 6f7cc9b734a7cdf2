package game

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"sidescroller/logging"
	"sidescroller/sim"
)

// TickObserver receives the wall time of every simulation tick
type TickObserver interface {
	ObserveTick(d time.Duration, st *sim.State)
}

// Game adapts a sim.Simulation to ebiten's run loop
type Game struct {
	sim        *sim.Simulation
	config     Config
	input      *KeyboardInput
	renderer   *Renderer
	background *Starfield
	effects    *Effects
	profiler   *Profiler
	debug      DebugState
	ticks      TickObserver
	log        *logging.Logger

	screenWidth  int
	screenHeight int

	// tick timing for the debug overlay
	lastTick       time.Duration
	tps            float64
	tpsCounter     int
	tpsTimer       float64
	lastUpdateTime time.Time
}

// NewGame wraps s, which must have been created with input as its InputSource.
// ticks may be nil.
func NewGame(config Config, s *sim.Simulation, input *KeyboardInput, ticks TickObserver, log *logging.Logger) *Game {
	field := s.Config().Field
	w, h := config.ScreenWidth, config.ScreenHeight
	if w <= 0 || h <= 0 {
		w, h = int(field.Width), int(field.Height)
	}

	g := &Game{
		sim:            s,
		config:         config,
		input:          input,
		renderer:       NewRenderer(LoadSprites(config.AssetsDir, s.Config(), log)),
		background:     NewStarfield(config.StarCount, field.Width, field.Height, sim.NewRand(time.Now().UnixNano())),
		effects:        NewEffects(sim.NewRand(time.Now().UnixNano())),
		profiler:       NewProfiler(config.ProfilesDir, config.SlowTick, log),
		ticks:          ticks,
		log:            log,
		screenWidth:    w,
		screenHeight:   h,
		lastUpdateTime: time.Now(),
	}
	if s.State() == nil {
		s.Start()
	}
	return g
}

// Size is the logical screen size
func (g *Game) Size() (int, int) { return g.screenWidth, g.screenHeight }

// Update implements ebiten.Game
func (g *Game) Update() error {
	now := time.Now()
	delta := now.Sub(g.lastUpdateTime)
	g.lastUpdateTime = now
	if delta > g.config.MaxDelta {
		delta = g.config.MaxDelta
	}

	switch PollCommand() {
	case CommandQuit:
		g.log.Infof("quit requested")
		return ebiten.Termination
	case CommandToggleDebug:
		g.debug.Toggle()
	case CommandToggleFullscreen:
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	case CommandRestart:
		if g.sim.GameOver() {
			g.sim.Start()
			g.effects.Reset()
			return nil
		}
	}

	g.background.Update(delta.Seconds())
	g.input.Update()
	g.advance(delta)
	g.effects.Update(delta.Seconds(), g.sim.State())
	return nil
}

func (g *Game) advance(delta time.Duration) {
	if g.sim.GameOver() {
		return
	}

	g.effects.BeforeTick(g.sim.State())
	start := time.Now()
	g.sim.Advance(float64(delta) / float64(time.Millisecond))
	g.lastTick = time.Since(start)
	g.effects.AfterTick(g.sim.State())

	if g.ticks != nil {
		g.ticks.ObserveTick(g.lastTick, g.sim.State())
	}

	g.tpsCounter++
	g.tpsTimer += delta.Seconds()
	if g.tpsTimer >= 0.5 {
		g.tps = float64(g.tpsCounter) / g.tpsTimer
		g.tpsCounter, g.tpsTimer = 0, 0
	}

	st := g.sim.State()
	reason := fmt.Sprintf("entities%d", st.Count())
	g.profiler.Observe(g.lastTick, reason)
}

// Draw implements ebiten.Game
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{10, 10, 30, 255})
	g.background.Draw(screen)
	g.renderer.Render(screen, g.sim)
	g.effects.Draw(screen)
	if g.debug.ShowHitboxes {
		RenderHitboxes(screen, g.sim)
	}
	DrawHUD(screen, statusOf(g.sim))
	if g.debug.ShowStats {
		drawStats(screen, g.sim, g.lastTick, g.tps)
	}
}

// Layout returns the game's screen size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenWidth, g.screenHeight
}
