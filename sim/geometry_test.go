package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOverlapsIsSymmetric(t *testing.T) {
	r := NewRand(42)
	for i := 0; i < 2000; i++ {
		a := Shape{
			Center: Vec2{uniform(r, 0, 200), uniform(r, 0, 200)},
			Radii:  Vec2{uniform(r, 0, 40), uniform(r, 0, 40)},
			Circle: chance(r, 0.3),
		}
		b := Shape{
			Center: Vec2{uniform(r, 0, 200), uniform(r, 0, 200)},
			Radii:  Vec2{uniform(r, 0, 40), uniform(r, 0, 40)},
			Circle: chance(r, 0.3),
		}
		assert.Equal(t, Overlaps(a, b), Overlaps(b, a), "a=%+v b=%+v", a, b)
	}
}

func TestOverlapsCoincidentCenters(t *testing.T) {
	a := EllipseOf(Rect{X: 10, Y: 10, W: 40, H: 20})
	b := CircleAt(a.Center, 3)
	assert.True(t, Overlaps(a, b))
	assert.True(t, Overlaps(a, a))
}

func TestOverlapsSeparated(t *testing.T) {
	a := EllipseOf(Rect{X: 0, Y: 0, W: 40, H: 20})
	b := EllipseOf(Rect{X: 500, Y: 500, W: 40, H: 20})
	assert.False(t, Overlaps(a, b))
	assert.False(t, Overlaps(b, a))
}

func TestOverlapsUsesDirectionalRadius(t *testing.T) {
	// ellipse half-extents 20 x 10
	e := Shape{Center: Vec2{0, 0}, Radii: Vec2{20, 10}}

	assert.True(t, Overlaps(e, CircleAt(Vec2{24, 0}, 5)), "20+5 > 24 along x")
	assert.False(t, Overlaps(e, CircleAt(Vec2{0, 16}, 5)), "10+5 < 16 along y")
	assert.True(t, Overlaps(e, CircleAt(Vec2{0, 14}, 5)))
	assert.False(t, Overlaps(e, CircleAt(Vec2{25, 0}, 5)), "touching is not overlapping")
}

func TestRadiusAlongZeroDirection(t *testing.T) {
	e := Shape{Radii: Vec2{20, 10}}
	assert.Equal(t, 20.0, e.radiusAlong(Vec2{}))
	assert.Equal(t, 7.0, CircleAt(Vec2{}, 7).radiusAlong(Vec2{}))

	degenerate := Shape{Radii: Vec2{0, 4}}
	assert.Equal(t, 4.0, degenerate.radiusAlong(Vec2{1, 0}))
}

func TestRectIntersects(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}

	assert.True(t, a.Intersects(Rect{X: 5, Y: 5, W: 10, H: 10}))
	assert.False(t, a.Intersects(Rect{X: 10, Y: 0, W: 10, H: 10}), "shared edge")
	assert.False(t, a.Intersects(Rect{X: 0, Y: 20, W: 10, H: 10}))
	assert.True(t, a.Intersects(Rect{X: 2, Y: 2, W: 2, H: 2}), "contained")
}

func TestRectInset(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 30, H: 8}
	assert.Equal(t, Rect{X: 14, Y: 24, W: 22, H: 0}, r.Inset(4, 4))
	assert.Equal(t, r.Center(), r.Inset(2, 1).Center())
}

func TestNormalizeZero(t *testing.T) {
	assert.Equal(t, Vec2{}, Vec2{}.Normalize())
	assert.InDelta(t, 1.0, Vec2{3, 4}.Normalize().Len(), 1e-12)
}
