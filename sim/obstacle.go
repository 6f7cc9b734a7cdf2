package sim

// Edge is the field border an obstacle is anchored to
type Edge int

const (
	EdgeTop Edge = iota
	EdgeBottom
)

// ObstacleStyle selects how an obstacle is drawn
type ObstacleStyle int

const (
	StyleWall ObstacleStyle = iota
	StyleLargeShip
)

// Obstacle is a wall or large ship hugging the top or bottom of the field.
// Its span is fixed at creation and sets both its width and its hitbox.
type Obstacle struct {
	body
	Span  int
	Edge  Edge
	Style ObstacleStyle
	Speed float64

	inset float64
}

// NewObstacle builds an obstacle of span segments whose left edge sits at x
func NewObstacle(cfg *Config, span int, edge Edge, style ObstacleStyle, x float64) *Obstacle {
	if span < 1 {
		span = 1
	}
	h := cfg.Obstacle.Height
	y := 0.0
	if edge == EdgeBottom {
		y = cfg.Field.Height - h
	}
	return &Obstacle{
		body:  body{Pos: Vec2{X: x, Y: y}, Width: float64(span) * cfg.Obstacle.SegmentWidth, Height: h},
		Span:  span,
		Edge:  edge,
		Style: style,
		Speed: cfg.Obstacle.Speed,
		inset: cfg.Obstacle.HitboxInset,
	}
}

func (o *Obstacle) Kind() Kind { return KindObstacle }

// Hitbox is the collision region, smaller than the visual extent
func (o *Obstacle) Hitbox() Rect {
	return o.Bounds().Inset(o.inset, o.inset)
}

// Band returns the vertical range [top, bottom) the obstacle occupies
func (o *Obstacle) Band() (top, bottom float64) {
	return o.Pos.Y, o.Pos.Y + o.Height
}

func (o *Obstacle) Update(f *Frame) {
	o.Pos.X -= o.Speed
	if o.Pos.X+o.Width < 0 {
		o.MarkForDeletion()
		return
	}
	if f.State.Player.Hitbox(f.Config).Intersects(o.Hitbox()) {
		f.EndSession()
	}
}

func (o *Obstacle) Draw(c Canvas) {
	c.Sprite(KindObstacle, int(o.Style), o.Span, o.Bounds())
}
