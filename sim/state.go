package sim

// Status is the simulation's lifecycle state
type Status int

const (
	Running Status = iota
	GameOver
)

func (s Status) String() string {
	if s == GameOver {
		return "game_over"
	}
	return "running"
}

// State owns every mutable collection of one session. Only the tick touches it.
type State struct {
	Player      *Player
	Hostiles    []*Hostile
	Projectiles []*Projectile
	Obstacles   []*Obstacle
	Pickups     []*Pickup
	Equipment   Equipment
	Spawners    []*Spawner
	Score       *Scoreboard
	Status      Status

	terminal bool
	pending  []Entity
}

// NewState builds the opening state: a centered player and empty collections
func NewState(cfg *Config, r RandSource, best int, hasBest bool) *State {
	return &State{
		Player:   NewPlayer(cfg),
		Spawners: defaultSpawners(cfg, r),
		Score:    NewScoreboard(cfg, best, hasBest),
	}
}

// Terminal reports whether a terminating collision happened
func (s *State) Terminal() bool { return s.terminal }

// Add appends e to the collection owning its kind. Attachments and the
// player are not collection members and are ignored.
func (s *State) Add(e Entity) {
	switch v := e.(type) {
	case *Hostile:
		s.Hostiles = append(s.Hostiles, v)
	case *Projectile:
		s.Projectiles = append(s.Projectiles, v)
	case *Obstacle:
		s.Obstacles = append(s.Obstacles, v)
	case *Pickup:
		s.Pickups = append(s.Pickups, v)
	}
}

// Count is the number of live members across all collections
func (s *State) Count() int {
	return len(s.Hostiles) + len(s.Projectiles) + len(s.Obstacles) + len(s.Pickups)
}

// Entities lists every drawable entity in back-to-front order
func (s *State) Entities() []Entity {
	out := make([]Entity, 0, s.Count()+4)
	for _, o := range s.Obstacles {
		out = append(out, o)
	}
	for _, p := range s.Pickups {
		out = append(out, p)
	}
	for _, h := range s.Hostiles {
		out = append(out, h)
	}
	for _, p := range s.Projectiles {
		out = append(out, p)
	}
	out = append(out, s.Player)
	return append(out, s.Equipment.Attachments()...)
}

// cull drops flagged entities in place and returns how many were removed
func cull[T Entity](items []T) ([]T, int) {
	kept := items[:0]
	for _, e := range items {
		if !e.Dead() {
			kept = append(kept, e)
		}
	}
	removed := len(items) - len(kept)
	var zero T
	for i := len(kept); i < len(items); i++ {
		items[i] = zero
	}
	return kept, removed
}

// filter culls every collection, reporting removals per kind
func (s *State) filter(obs Observer) {
	var n int
	s.Hostiles, n = cull(s.Hostiles)
	report(obs, KindHostile, n)
	s.Obstacles, n = cull(s.Obstacles)
	report(obs, KindObstacle, n)
	s.Pickups, n = cull(s.Pickups)
	report(obs, KindPickup, n)
	s.Projectiles, n = cull(s.Projectiles)
	report(obs, KindProjectile, n)
}

func report(obs Observer, kind Kind, n int) {
	if n > 0 {
		obs.Culled(kind, n)
	}
}

// flush moves entities queued during updates into their collections
func (s *State) flush() {
	for _, e := range s.pending {
		s.Add(e)
	}
	clear(s.pending)
	s.pending = s.pending[:0]
}

// freeBand is the vertical range not covered by live obstacles
func (s *State) freeBand(field FieldConfig) (lo, hi float64) {
	lo, hi = 0, field.Height
	for _, o := range s.Obstacles {
		if o.Dead() {
			continue
		}
		top, bottom := o.Band()
		if o.Edge == EdgeTop {
			lo = max(lo, bottom)
		} else {
			hi = min(hi, top)
		}
	}
	return lo, hi
}

// spawnY draws a top coordinate for an entity of height h inside the free band
func (f *Frame) spawnY(h float64) float64 {
	lo, hi := f.State.freeBand(f.Config.Field)
	return uniform(f.Rand, lo, hi-h)
}
