package sim

// Kind identifies an entity variant
type Kind int

const (
	KindPlayer Kind = iota
	KindHostile
	KindProjectile
	KindObstacle
	KindPickup
	KindShield
	KindForcePod
)

var kindNames = [...]string{
	KindPlayer:     "player",
	KindHostile:    "hostile",
	KindProjectile: "projectile",
	KindObstacle:   "obstacle",
	KindPickup:     "pickup",
	KindShield:     "shield",
	KindForcePod:   "force_pod",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Entity is the contract shared by every game object
type Entity interface {
	Kind() Kind

	// Bounds is the visual extent, top-left anchored
	Bounds() Rect

	// Update advances the entity by one tick: motion, then collision checks
	// against the collections it interacts with
	Update(f *Frame)

	// Draw hands the entity to the canvas
	Draw(c Canvas)

	// Dead reports whether the entity is marked for removal this frame
	Dead() bool
}

// body carries the attributes common to every entity with a deletion flag
type body struct {
	Pos    Vec2
	Width  float64
	Height float64
	marked bool
}

func (b *body) Bounds() Rect { return Rect{X: b.Pos.X, Y: b.Pos.Y, W: b.Width, H: b.Height} }

func (b *body) Dead() bool { return b.marked }

// MarkForDeletion requests removal at the next filter pass
func (b *body) MarkForDeletion() { b.marked = true }

// offField reports whether the box lies entirely outside the field
func offField(r Rect, field FieldConfig) bool {
	return r.X+r.W < 0 || r.X > field.Width || r.Y+r.H < 0 || r.Y > field.Height
}

// Frame is the context handed to every Update during one tick
type Frame struct {
	State  *State
	Config *Config
	Rand   RandSource

	// Dt is the elapsed real time since the previous tick in milliseconds
	Dt float64

	// Input is the key set sampled at the start of the tick
	Input KeySet

	observer Observer
}

// Spawn queues an entity created during updates; it joins its collection after the filter pass
func (f *Frame) Spawn(e Entity) {
	f.State.pending = append(f.State.pending, e)
	f.observer.Spawned(e.Kind())
}

// AwardKill scores a destroyed hostile
func (f *Frame) AwardKill(victim Kind) {
	f.State.Score.AddPoints(f.Config.Score.KillPoints)
	f.observer.Killed(victim)
}

// EndSession raises the terminal flag; the loop stops after this tick
func (f *Frame) EndSession() {
	f.State.terminal = true
}
