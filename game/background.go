package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"sidescroller/sim"
)

// starSpeed is the scroll speed of the nearest star layer in pixels per second
const starSpeed = 120.0

type star struct {
	x, y  float64
	speed float64 // parallax factor in (0, 1]
	size  float32
}

// Starfield is the scrolling parallax background
type Starfield struct {
	stars  []star
	width  float64
	height float64
}

// NewStarfield scatters n stars over a width x height field
func NewStarfield(n int, width, height float64, r sim.RandSource) *Starfield {
	s := &Starfield{stars: make([]star, n), width: width, height: height}
	for i := range s.stars {
		speed := 0.2 + 0.8*r.Float64()
		s.stars[i] = star{
			x:     r.Float64() * width,
			y:     r.Float64() * height,
			speed: speed,
			size:  float32(1 + speed*1.5),
		}
	}
	return s
}

// Update scrolls the stars left, wrapping them around the right edge
func (s *Starfield) Update(dt float64) {
	for i := range s.stars {
		st := &s.stars[i]
		st.x -= starSpeed * st.speed * dt
		for st.x < 0 {
			st.x += s.width
		}
	}
}

func (s *Starfield) Draw(screen *ebiten.Image) {
	for _, st := range s.stars {
		shade := uint8(90 + 165*st.speed)
		vector.DrawFilledRect(screen, float32(st.x), float32(st.y), st.size, st.size,
			color.RGBA{shade, shade, shade, 255}, false)
	}
}
