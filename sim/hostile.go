package sim

// Hostile flies leftward across the field. Gunships and snipers fire at the player.
type Hostile struct {
	body
	Class HostileClass

	// Speed is the leftward distance covered per tick
	Speed float64

	fireTimer    float64
	fireInterval float64
}

// NewHostile creates a hostile with its top-left corner at pos
func NewHostile(cfg *Config, class HostileClass, pos Vec2, speed, fireInterval float64) *Hostile {
	return &Hostile{
		body:         body{Pos: pos, Width: cfg.Hostile.Width, Height: cfg.Hostile.Height},
		Class:        class,
		Speed:        speed,
		fireInterval: fireInterval,
	}
}

func (h *Hostile) Kind() Kind { return KindHostile }

// Shape is the collision ellipse
func (h *Hostile) Shape() Shape { return EllipseOf(h.Bounds()) }

func (h *Hostile) Update(f *Frame) {
	h.Pos.X -= h.Speed
	if h.Pos.X < 0 {
		h.MarkForDeletion()
		return
	}

	player := f.State.Player
	if Overlaps(h.Shape(), player.Shape(f.Config)) {
		f.EndSession()
	}

	if h.Class.Fires() && h.Pos.X < f.Config.Field.Width {
		h.fireTimer += f.Dt
		if h.fireTimer > h.fireInterval {
			h.fireTimer = 0
			h.fire(f)
		}
	}
}

func (h *Hostile) fire(f *Frame) {
	player := f.State.Player
	muzzle := h.Bounds().Center()
	speed := f.Config.Projectile.HostileSpeed

	target := player.Center()
	if h.Class == HostileSniper {
		target = PredictiveAim(muzzle, target, player.Vel, speed)
	}
	f.Spawn(NewProjectile(f.Config, SideHostile, muzzle, aimDirection(muzzle, target), speed))
}

func (h *Hostile) Draw(c Canvas) {
	c.Sprite(KindHostile, int(h.Class), 0, h.Bounds())
}
