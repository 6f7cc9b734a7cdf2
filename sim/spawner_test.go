package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countingFactory(n *int) Factory {
	return func(f *Frame) Entity {
		*n++
		return &Pickup{}
	}
}

func TestSpawnerAtMostOnePerTick(t *testing.T) {
	cfg := DefaultConfig()
	var built int
	sp := NewSpawner("test", SpawnTiming{Interval: 100}, &scriptedRand{}, countingFactory(&built), nil)

	f := testFrame(nil, &cfg, 10_000)
	assert.NotNil(t, sp.Advance(f), "100 intervals elapsed")
	assert.Equal(t, 1, built)
	assert.Zero(t, sp.Timer())

	f.Dt = 0
	assert.Nil(t, sp.Advance(f), "no catch-up burst")
	assert.Equal(t, 1, built)
}

func TestSpawnerFiresOnlyAfterIntervalPlusJitter(t *testing.T) {
	cfg := DefaultConfig()
	r := &scriptedRand{vals: []float64{0.5, 0.25}}
	var built int
	sp := NewSpawner("test", SpawnTiming{Interval: 100, JitterMin: 0, JitterMax: 100}, r, countingFactory(&built), nil)
	require.Equal(t, 50.0, sp.Jitter())

	f := testFrame(nil, &cfg, 50)
	f.Rand = r
	assert.Nil(t, sp.Advance(f))
	assert.Nil(t, sp.Advance(f))
	assert.Nil(t, sp.Advance(f), "150 is not past 150")
	assert.NotNil(t, sp.Advance(f))

	assert.Zero(t, sp.Timer())
	assert.Equal(t, 25.0, sp.Jitter(), "jitter re-rolled after the spawn")
}

func TestSpawnerGateKeepsTimerRunning(t *testing.T) {
	cfg := DefaultConfig()
	open := false
	var built int
	sp := NewSpawner("gated", SpawnTiming{Interval: 10}, &scriptedRand{}, countingFactory(&built),
		func(*Frame) bool { return open })

	f := testFrame(nil, &cfg, 30)
	assert.Nil(t, sp.Advance(f))
	assert.Nil(t, sp.Advance(f))
	assert.Equal(t, 60.0, sp.Timer())

	open = true
	f.Dt = 0
	assert.NotNil(t, sp.Advance(f), "fires as soon as the gate opens")
	assert.Nil(t, sp.Advance(f))
	assert.Equal(t, 1, built)
}

func TestSimulationSpawnsOncePerKindPerTick(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Spawn = SpawnConfig{}
	obs := newRecordingObserver()
	in := &StaticInput{Keys: Keys(KeyFire)}
	s := New(cfg, WithRand(&scriptedRand{vals: []float64{0.99}}), WithInput(in), WithObserver(obs))
	s.Start()

	s.Advance(60_000)

	for _, k := range []Kind{KindHostile, KindObstacle} {
		assert.Equal(t, 1, obs.spawned[k], k.String())
	}
	assert.Equal(t, 1, obs.spawned[KindProjectile], "one charge shot")
	assert.Equal(t, 2, obs.spawned[KindPickup], "one shield and one force pickup")
}

func TestChargeNeedsPower(t *testing.T) {
	s, in := quietSim(t)
	st := s.State()
	cfg := s.Config()
	st.Spawners = []*Spawner{NewSpawner("charge", SpawnTiming{}, &scriptedRand{}, spawnCharge, chargeReady)}
	in.Keys = Keys(KeyFire)

	for i := 0; i < cfg.Power.Start; i++ {
		s.Advance(1)
	}
	assert.Len(t, st.Projectiles, cfg.Power.Start)
	assert.Zero(t, s.Power())

	s.Advance(1)
	assert.Len(t, st.Projectiles, cfg.Power.Start, "empty meter blocks the shot")

	p := st.Projectiles[0]
	assert.Equal(t, SideFriendly, p.Side)
	assert.Greater(t, p.Vel.X, 0.0)
}

func TestSpawnYAvoidsObstacles(t *testing.T) {
	cfg := DefaultConfig()
	st := NewState(&cfg, &scriptedRand{}, 0, false)
	st.Obstacles = []*Obstacle{
		NewObstacle(&cfg, 2, EdgeTop, StyleWall, 300),
		NewObstacle(&cfg, 3, EdgeBottom, StyleLargeShip, 500),
	}

	f := testFrame(st, &cfg, 1)
	f.Rand = &scriptedRand{vals: []float64{0}}
	assert.Equal(t, cfg.Obstacle.Height, f.spawnY(40))

	f.Rand = &scriptedRand{vals: []float64{0.999999}}
	y := f.spawnY(40)
	assert.LessOrEqual(t, y+40, cfg.Field.Height-cfg.Obstacle.Height)
	assert.Greater(t, y, cfg.Field.Height-cfg.Obstacle.Height-41)
}

func TestObstacleSpanFixesWidth(t *testing.T) {
	cfg := DefaultConfig()
	st := NewState(&cfg, &scriptedRand{}, 0, false)
	f := testFrame(st, &cfg, 1)
	f.Rand = &scriptedRand{vals: []float64{0.99, 0.2, 0.9}}

	o, ok := spawnObstacle(f).(*Obstacle)
	require.True(t, ok)
	assert.Equal(t, cfg.Obstacle.MaxSpan, o.Span)
	assert.Equal(t, float64(o.Span)*cfg.Obstacle.SegmentWidth, o.Width)
	assert.Equal(t, EdgeTop, o.Edge)
	assert.Equal(t, StyleWall, o.Style)
	assert.Equal(t, cfg.Field.Width, o.Pos.X)
	assert.Equal(t, o.Bounds().Inset(cfg.Obstacle.HitboxInset, cfg.Obstacle.HitboxInset), o.Hitbox())
}
