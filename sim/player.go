package sim

// Player is the singleton craft steered by the input provider. It has no
// deletion flag and lives for the whole session.
type Player struct {
	Pos    Vec2
	Vel    Vec2
	Width  float64
	Height float64

	// Frame is the animation frame index; visual only
	Frame      int
	frameTimer float64
}

// NewPlayer places the player at the left edge, vertically centered
func NewPlayer(cfg *Config) *Player {
	return &Player{
		Pos:    Vec2{X: 0, Y: (cfg.Field.Height - cfg.Player.Height) / 2},
		Width:  cfg.Player.Width,
		Height: cfg.Player.Height,
	}
}

func (p *Player) Kind() Kind { return KindPlayer }

func (p *Player) Bounds() Rect { return Rect{X: p.Pos.X, Y: p.Pos.Y, W: p.Width, H: p.Height} }

func (p *Player) Dead() bool { return false }

// Center is the middle of the sprite
func (p *Player) Center() Vec2 { return p.Bounds().Center() }

// Hitbox is the box used against obstacles
func (p *Player) Hitbox(cfg *Config) Rect {
	return p.Bounds().Inset(cfg.Player.HitboxInset, cfg.Player.HitboxInset)
}

// Shape is the ellipse used against hostiles, projectiles and pickups
func (p *Player) Shape(cfg *Config) Shape {
	return EllipseOf(p.Hitbox(cfg))
}

// Update applies the held keys: a fixed speed per axis while a key is held, no
// acceleration curve, clamped to the field.
func (p *Player) Update(f *Frame) {
	cfg := f.Config
	speed := cfg.Player.Speed

	p.Vel = Vec2{}
	if f.Input.Has(KeyRight) {
		p.Vel.X += speed
	}
	if f.Input.Has(KeyLeft) {
		p.Vel.X -= speed
	}
	if f.Input.Has(KeyDown) {
		p.Vel.Y += speed
	}
	if f.Input.Has(KeyUp) {
		p.Vel.Y -= speed
	}

	p.Pos = p.Pos.Add(p.Vel)
	p.Pos.X = clamp(p.Pos.X, 0, cfg.Field.Width-p.Width)
	p.Pos.Y = clamp(p.Pos.Y, 0, cfg.Field.Height-p.Height)

	if cfg.Player.FrameCount > 1 && cfg.Player.FrameInterval > 0 {
		p.frameTimer += f.Dt
		if p.frameTimer > cfg.Player.FrameInterval {
			p.frameTimer = 0
			p.Frame = (p.Frame + 1) % cfg.Player.FrameCount
		}
	}
}

func (p *Player) Draw(c Canvas) {
	c.Sprite(KindPlayer, 0, p.Frame, p.Bounds())
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
