package game

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"sidescroller/sim"
)

// fallbackColor is used for kinds without a sprite
func fallbackColor(kind sim.Kind) color.Color {
	switch kind {
	case sim.KindPlayer:
		return color.RGBA{0, 255, 0, 255}
	case sim.KindHostile:
		return color.RGBA{255, 0, 0, 255}
	case sim.KindProjectile:
		return color.RGBA{255, 255, 0, 255}
	default:
		return color.RGBA{255, 255, 255, 255}
	}
}

// Renderer draws the simulation onto a screen image. It implements sim.Canvas
// for the duration of one Draw call.
type Renderer struct {
	sprites *Sprites
	screen  *ebiten.Image
	op      ebiten.DrawImageOptions
}

func NewRenderer(sprites *Sprites) *Renderer {
	return &Renderer{sprites: sprites}
}

// Render hands every entity of s to the renderer, back to front
func (r *Renderer) Render(screen *ebiten.Image, s *sim.Simulation) {
	r.screen = screen
	s.Draw(r)
	r.screen = nil
}

func (r *Renderer) Sprite(kind sim.Kind, variant int, frame int, bounds sim.Rect) {
	if r.screen == nil || bounds.W <= 0 || bounds.H <= 0 {
		return
	}

	img := r.sprites.Image(kind, variant, frame)
	if img == nil {
		vector.DrawFilledRect(r.screen, float32(bounds.X), float32(bounds.Y),
			float32(bounds.W), float32(bounds.H), fallbackColor(kind), true)
		return
	}

	// obstacles repeat one segment sprite across their span
	tiles := 1
	if kind == sim.KindObstacle && frame > 1 {
		tiles = frame
	}
	tileW := bounds.W / float64(tiles)

	iw, ih := img.Bounds().Dx(), img.Bounds().Dy()
	for i := 0; i < tiles; i++ {
		r.op.GeoM.Reset()
		r.op.GeoM.Scale(tileW/float64(iw), bounds.H/float64(ih))
		if kind == sim.KindObstacle && variant == int(sim.StyleWall) && bounds.Y > 0 {
			// bottom walls are the top wall flipped vertically
			r.op.GeoM.Scale(1, -1)
			r.op.GeoM.Translate(0, bounds.H)
		}
		r.op.GeoM.Translate(bounds.X+float64(i)*tileW, bounds.Y)
		r.screen.DrawImage(img, &r.op)
	}
}

var (
	hitboxColor   = color.RGBA{0, 255, 120, 255}
	obstacleColor = color.RGBA{255, 160, 0, 255}
)

// RenderHitboxes outlines every collision footprint
func RenderHitboxes(screen *ebiten.Image, s *sim.Simulation) {
	st := s.State()
	if st == nil {
		return
	}
	cfg := s.Config()

	strokeShape(screen, st.Player.Shape(&cfg))
	for _, h := range st.Hostiles {
		strokeShape(screen, h.Shape())
	}
	for _, p := range st.Projectiles {
		strokeShape(screen, p.Shape())
	}
	for _, p := range st.Pickups {
		strokeShape(screen, p.Shape())
	}
	for _, o := range st.Obstacles {
		hb := o.Hitbox()
		vector.StrokeRect(screen, float32(hb.X), float32(hb.Y), float32(hb.W), float32(hb.H), 1, obstacleColor, false)
	}
	for slot := sim.SlotTop; slot <= sim.SlotBottom; slot++ {
		if sh := st.Equipment.Shield(slot); sh != nil {
			strokeShape(screen, sh.Shape())
		}
	}
	if pod := st.Equipment.Force(); pod != nil {
		strokeShape(screen, pod.Shape())
	}
}

func strokeShape(screen *ebiten.Image, s sim.Shape) {
	if s.Circle {
		vector.StrokeCircle(screen, float32(s.Center.X), float32(s.Center.Y), float32(s.Radii.X), 1, hitboxColor, true)
		return
	}
	// ellipses are approximated by a closed polyline
	const segments = 24
	px, py := s.Center.X+s.Radii.X, s.Center.Y
	for i := 1; i <= segments; i++ {
		a := 2 * math.Pi * float64(i) / segments
		x := s.Center.X + s.Radii.X*math.Cos(a)
		y := s.Center.Y + s.Radii.Y*math.Sin(a)
		vector.StrokeLine(screen, float32(px), float32(py), float32(x), float32(y), 1, hitboxColor, true)
		px, py = x, y
	}
}
