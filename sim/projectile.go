package sim

// Projectile travels in a straight line. Friendly shots hit hostiles,
// hostile shots hit the player; both are stopped by obstacles.
type Projectile struct {
	body
	Vel  Vec2
	Side Side
}

// NewProjectile centers a projectile on center, moving along dir at speed per tick
func NewProjectile(cfg *Config, side Side, center, dir Vec2, speed float64) *Projectile {
	w, h := cfg.Projectile.Width, cfg.Projectile.Height
	return &Projectile{
		body: body{Pos: Vec2{X: center.X - w/2, Y: center.Y - h/2}, Width: w, Height: h},
		Vel:  dir.Normalize().Scale(speed),
		Side: side,
	}
}

func (p *Projectile) Kind() Kind { return KindProjectile }

func (p *Projectile) Shape() Shape { return EllipseOf(p.Bounds()) }

func (p *Projectile) Update(f *Frame) {
	p.Pos = p.Pos.Add(p.Vel)
	if offField(p.Bounds(), f.Config.Field) {
		p.MarkForDeletion()
		return
	}

	switch p.Side {
	case SideFriendly:
		for _, h := range f.State.Hostiles {
			if h.Dead() {
				continue
			}
			if Overlaps(p.Shape(), h.Shape()) {
				h.MarkForDeletion()
				p.MarkForDeletion()
				f.AwardKill(KindHostile)
				return
			}
		}
	case SideHostile:
		if Overlaps(p.Shape(), f.State.Player.Shape(f.Config)) {
			p.MarkForDeletion()
			f.EndSession()
			return
		}
	}

	for _, o := range f.State.Obstacles {
		if p.Bounds().Intersects(o.Hitbox()) {
			p.MarkForDeletion()
			return
		}
	}
}

func (p *Projectile) Draw(c Canvas) {
	c.Sprite(KindProjectile, int(p.Side), 0, p.Bounds())
}
