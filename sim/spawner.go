package sim

// Factory builds one entity for a spawner
type Factory func(f *Frame) Entity

// Gate vetoes a due spawn; the timer keeps accumulating while it is closed
type Gate func(f *Frame) bool

// Spawner creates entities of one kind at randomized intervals
type Spawner struct {
	Name string

	timing SpawnTiming
	timer  float64
	jitter float64
	build  Factory
	gate   Gate
}

// NewSpawner returns a spawner with its first jitter already drawn. gate may be nil.
func NewSpawner(name string, timing SpawnTiming, r RandSource, build Factory, gate Gate) *Spawner {
	return &Spawner{
		Name:   name,
		timing: timing,
		jitter: uniform(r, timing.JitterMin, timing.JitterMax),
		build:  build,
		gate:   gate,
	}
}

// Timer is the time accumulated since the last spawn
func (s *Spawner) Timer() float64 { return s.timer }

// Jitter is the randomized delay added to the base interval for the next spawn
func (s *Spawner) Jitter() float64 { return s.jitter }

// Due reports whether the accumulated time exceeds interval plus jitter
func (s *Spawner) Due() bool { return s.timer > s.timing.Interval+s.jitter }

// Advance accumulates f.Dt and returns the new entity when one is due, nil
// otherwise. Never more than one per call, however long the tick was.
func (s *Spawner) Advance(f *Frame) Entity {
	s.timer += f.Dt
	if !s.Due() {
		return nil
	}
	if s.gate != nil && !s.gate(f) {
		return nil
	}

	e := s.build(f)
	s.timer = 0
	s.jitter = uniform(f.Rand, s.timing.JitterMin, s.timing.JitterMax)
	return e
}

// Reset clears the timer and draws a fresh jitter
func (s *Spawner) Reset(r RandSource) {
	s.timer = 0
	s.jitter = uniform(r, s.timing.JitterMin, s.timing.JitterMax)
}

// defaultSpawners returns one spawner per spawnable kind
func defaultSpawners(cfg *Config, r RandSource) []*Spawner {
	sp := cfg.Spawn
	return []*Spawner{
		NewSpawner("hostile", sp.Hostile, r, spawnHostile, nil),
		NewSpawner("charge", sp.Charge, r, spawnCharge, chargeReady),
		NewSpawner("shield_pickup", sp.ShieldPickup, r, pickupFactory(PickupShield), nil),
		NewSpawner("force_pickup", sp.ForcePickup, r, pickupFactory(PickupForce), nil),
		NewSpawner("obstacle", sp.Obstacle, r, spawnObstacle, nil),
	}
}

func spawnHostile(f *Frame) Entity {
	cfg := f.Config
	class := randomHostileClass(f.Rand, cfg.Hostile)
	speed := uniform(f.Rand, cfg.Hostile.MinSpeed, cfg.Hostile.MaxSpeed)
	interval := uniform(f.Rand, cfg.Hostile.FireIntervalMin, cfg.Hostile.FireIntervalMax)
	y := f.spawnY(cfg.Hostile.Height)
	return NewHostile(cfg, class, Vec2{X: cfg.Field.Width, Y: y}, speed, interval)
}

func chargeReady(f *Frame) bool {
	return f.Input.Has(KeyFire) && f.State.Score.Power() >= 1
}

// spawnCharge fires one friendly shot from the player's nose
func spawnCharge(f *Frame) Entity {
	f.State.Score.SpendCharge()
	p := f.State.Player
	nose := Vec2{X: p.Pos.X + p.Width, Y: p.Pos.Y + p.Height/2}
	return NewProjectile(f.Config, SideFriendly, nose, Vec2{X: 1}, f.Config.Projectile.FriendlySpeed)
}

func pickupFactory(kind PickupKind) Factory {
	return func(f *Frame) Entity {
		cfg := f.Config
		x := cfg.Field.Width
		if cfg.Pickup.Speed > 0 {
			x = -cfg.Pickup.Size
		}
		return NewPickup(cfg, kind, Vec2{X: x, Y: f.spawnY(cfg.Pickup.Size)})
	}
}

func spawnObstacle(f *Frame) Entity {
	cfg := f.Config
	span := uniformInt(f.Rand, cfg.Obstacle.MinSpan, cfg.Obstacle.MaxSpan)
	edge := EdgeBottom
	if chance(f.Rand, 0.5) {
		edge = EdgeTop
	}
	style := StyleWall
	if chance(f.Rand, cfg.Obstacle.LargeShipChance) {
		style = StyleLargeShip
	}
	return NewObstacle(cfg, span, edge, style, cfg.Field.Width)
}
