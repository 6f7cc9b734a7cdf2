package game

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sidescroller/logging"
	"sidescroller/sim"
)

func TestKeySetBindings(t *testing.T) {
	held := keySet([]ebiten.Key{ebiten.KeyW, ebiten.KeyArrowRight, ebiten.KeySpace, ebiten.KeyF1})

	assert.True(t, held.Has(sim.KeyUp))
	assert.True(t, held.Has(sim.KeyRight))
	assert.True(t, held.Has(sim.KeyFire))
	assert.False(t, held.Has(sim.KeyDown))
	assert.False(t, held.Has(sim.KeyLeft))

	assert.Equal(t, sim.KeySet(0), keySet(nil))
	assert.Equal(t, sim.Keys(sim.KeyLeft), keySet([]ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft}))
}

func TestStatusLines(t *testing.T) {
	lines := statusLines(Status{Score: 12, Power: 3, MaxPower: 5, Elapsed: 1500 * time.Millisecond})
	assert.Equal(t, []string{
		"Score: 12",
		"Power: [|||..]",
		"Time: 1.5s",
	}, lines)

	lines = statusLines(Status{Score: 4, HighScore: 40, HasHigh: true, MaxPower: 1, Shields: 2, Force: true})
	assert.Contains(t, lines, "High score: 40")
	assert.Contains(t, lines, "Equipped: shield x2, force")
}

func TestGameOverLines(t *testing.T) {
	lines := gameOverLines(Status{Score: 50, HighScore: 50, HasHigh: true, GameOver: true})
	assert.Equal(t, "GAME OVER", lines[0])
	assert.Contains(t, lines, "New high score!")

	lines = gameOverLines(Status{Score: 5, HighScore: 50, HasHigh: true, GameOver: true})
	assert.NotContains(t, lines, "New high score!")
}

func TestStatusOf(t *testing.T) {
	s := sim.New(sim.DefaultConfig(), sim.WithRand(sim.NewRand(1)))
	s.Start()
	s.State().Spawners = nil
	s.Advance(1000)

	st := statusOf(s)
	assert.Equal(t, 1, st.Score)
	assert.True(t, st.HasHigh)
	assert.Equal(t, time.Second, st.Elapsed)
	assert.Equal(t, sim.DefaultConfig().Power.Max, st.MaxPower)
	assert.Zero(t, st.Shields)
	assert.False(t, st.GameOver)
}

func TestSpriteSpecsCoverEveryKind(t *testing.T) {
	cfg := sim.DefaultConfig()
	seen := map[sim.Kind]bool{}
	files := map[string]bool{}
	for _, spec := range spriteSpecs(cfg) {
		seen[spec.key.kind] = true
		assert.False(t, files[spec.file], "duplicate file %s", spec.file)
		files[spec.file] = true
		assert.Positive(t, spec.w)
		assert.Positive(t, spec.h)
	}
	for k := sim.KindPlayer; k <= sim.KindForcePod; k++ {
		assert.True(t, seen[k], k.String())
	}
	assert.True(t, files["player_3.png"])
	assert.True(t, files["hostile_sniper.png"])
}

func TestPlaceholderImage(t *testing.T) {
	clr := color.RGBA{80, 220, 255, 255}
	disc := placeholderImage(spriteSpec{key: spriteKey{kind: sim.KindPickup}, clr: clr, w: 24, h: 24, circle: true})
	assert.Equal(t, 24, disc.Bounds().Dx())
	assert.Equal(t, clr, disc.RGBAAt(12, 12))
	assert.Equal(t, color.RGBA{}, disc.RGBAAt(0, 0), "corners stay transparent")

	ship := placeholderImage(spriteSpec{key: spriteKey{kind: sim.KindPlayer}, clr: clr, w: 60, h: 40})
	assert.Equal(t, clr, ship.RGBAAt(5, 20), "player wedge is wide at the tail")
	assert.Equal(t, color.RGBA{}, ship.RGBAAt(58, 2))

	hostile := placeholderImage(spriteSpec{key: spriteKey{kind: sim.KindHostile}, clr: clr, w: 50, h: 40})
	assert.Equal(t, clr, hostile.RGBAAt(45, 20), "hostile wedge faces left")
}

func TestStarfieldWraps(t *testing.T) {
	sf := NewStarfield(50, 900, 550, sim.NewRand(3))
	for i := 0; i < 1000; i++ {
		sf.Update(0.1)
	}
	for _, st := range sf.stars {
		assert.GreaterOrEqual(t, st.x, 0.0)
		assert.Less(t, st.x, 900.0)
		assert.Less(t, st.y, 550.0)
	}
}

func TestDebugToggle(t *testing.T) {
	var d DebugState
	d.Toggle()
	assert.True(t, d.ShowHitboxes)
	assert.True(t, d.ShowStats)
	d.Toggle()
	assert.False(t, d.ShowHitboxes)
}

func TestProfilerCapturesSlowTicksWithCooldown(t *testing.T) {
	dir := t.TempDir()
	p := NewProfiler(dir, 10*time.Millisecond, logging.Discard())
	p.captureDuration = 20 * time.Millisecond

	assert.False(t, p.Observe(5*time.Millisecond, "fast"))
	require.True(t, p.Observe(50*time.Millisecond, "slow"))
	assert.False(t, p.Observe(50*time.Millisecond, "again"), "cooldown")

	require.Eventually(t, func() bool { return !p.IsProfiling() }, 5*time.Second, 10*time.Millisecond)

	matches, err := filepath.Glob(filepath.Join(dir, "slow-tick-*-slow.cpu.prof"))
	require.NoError(t, err)
	require.Len(t, matches, 1)
	info, err := os.Stat(matches[0])
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestProfilerDisabled(t *testing.T) {
	p := NewProfiler(t.TempDir(), 0, logging.Discard())
	assert.False(t, p.Observe(time.Hour, "never"))
}

func TestParticleBurstAgesOut(t *testing.T) {
	ps := NewExplosionParticleSystem(sim.NewRand(5))
	ps.Burst(sim.Vec2{X: 100, Y: 100}, 30)
	assert.Equal(t, 30, ps.Len())

	ps.Update(0.1, sim.Vec2{})
	assert.Equal(t, 30, ps.Len(), "no particle dies before the minimum lifetime")

	ps.Update(ps.lifetimeMax, sim.Vec2{})
	assert.Zero(t, ps.Len())
}

func TestExhaustEmitsAtRateUpToCap(t *testing.T) {
	ps := NewExhaustParticleSystem(sim.NewRand(5))
	ps.Update(0.1, sim.Vec2{X: 10, Y: 10})
	assert.Equal(t, 6, ps.Len())
	for _, p := range ps.particles {
		assert.Less(t, p.vel.X, 0.0, "exhaust flows backward")
	}

	ps.SetActive(false)
	ps.Update(0.01, sim.Vec2{})
	assert.Equal(t, 6, ps.Len())

	ps.maxParticles = 3
	ps.particles = ps.particles[:0]
	ps.Burst(sim.Vec2{}, 10)
	assert.Equal(t, 3, ps.Len())
}

func TestEffectsBurstOnKillOnly(t *testing.T) {
	cfg := sim.DefaultConfig()
	s := sim.New(cfg, sim.WithRand(sim.NewRand(1)))
	s.Start()
	st := s.State()

	killed := sim.NewHostile(&cfg, sim.HostileDrone, sim.Vec2{X: 400, Y: 100}, 3, 1e9)
	escaped := sim.NewHostile(&cfg, sim.HostileDrone, sim.Vec2{X: -60, Y: 300}, 3, 1e9)
	st.Hostiles = append(st.Hostiles, killed, escaped)

	e := NewEffects(sim.NewRand(2))
	e.BeforeTick(st)
	killed.MarkForDeletion()
	escaped.MarkForDeletion()
	e.AfterTick(st)
	assert.Equal(t, 24, e.explosions.Len())

	st.Status = sim.GameOver
	e.AfterTick(st)
	assert.Equal(t, 84, e.explosions.Len())
	assert.False(t, e.exhaust.active)
	e.AfterTick(st)
	assert.Equal(t, 84, e.explosions.Len(), "player burst happens once")

	e.Reset()
	assert.Zero(t, e.explosions.Len())
	assert.True(t, e.exhaust.active)
}
