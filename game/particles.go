package game

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"sidescroller/sim"
)

// Particle is a single spark
type Particle struct {
	pos      sim.Vec2
	vel      sim.Vec2 // pixels per second
	age      float64  // seconds
	lifetime float64
	color    color.NRGBA
	size     float64
}

// IsAlive returns true if the particle is still alive
func (p *Particle) IsAlive() bool {
	return p.age < p.lifetime
}

// ParticleSystem is an emitter plus the particles it has produced. A system
// can emit continuously while active and also in one-off bursts.
type ParticleSystem struct {
	particles     []Particle
	maxParticles  int
	emissionRate  float64 // particles per second
	emissionTimer float64
	emitterPos    sim.Vec2
	direction     float64 // emission angle in radians, 0 points right
	velocityMin   float64
	velocityMax   float64
	spreadAngle   float64 // half-angle in radians
	lifetimeMin   float64
	lifetimeMax   float64
	sizeMin       float64
	sizeMax       float64
	colorBase     color.NRGBA
	colorJitter   color.NRGBA
	active        bool
	rand          sim.RandSource
}

// Update moves the emitter to pos, emits while active and ages particles
func (ps *ParticleSystem) Update(dt float64, pos sim.Vec2) {
	ps.emitterPos = pos

	if ps.active && ps.emissionRate > 0 {
		ps.emissionTimer += dt
		n := int(ps.emissionRate * ps.emissionTimer)
		if n > 0 {
			ps.emissionTimer -= float64(n) / ps.emissionRate
			for i := 0; i < n; i++ {
				ps.emit(ps.emitterPos, ps.direction, ps.spreadAngle)
			}
		}
	}

	alive := ps.particles[:0]
	for _, p := range ps.particles {
		p.age += dt
		p.pos = p.pos.Add(p.vel.Scale(dt))
		if p.IsAlive() {
			alive = append(alive, p)
		}
	}
	ps.particles = alive
}

// Burst emits n particles from pos in every direction
func (ps *ParticleSystem) Burst(pos sim.Vec2, n int) {
	for i := 0; i < n; i++ {
		ps.emit(pos, 0, math.Pi)
	}
}

func (ps *ParticleSystem) emit(pos sim.Vec2, direction, spread float64) {
	if len(ps.particles) >= ps.maxParticles {
		return
	}
	r := ps.rand
	angle := direction + (r.Float64()-0.5)*spread*2
	speed := ps.velocityMin + r.Float64()*(ps.velocityMax-ps.velocityMin)

	jitter := func(base, v uint8) uint8 {
		return uint8(min(max(float64(base)+(r.Float64()*2-1)*float64(v), 0), 255))
	}
	ps.particles = append(ps.particles, Particle{
		pos:      pos,
		vel:      sim.Vec2{X: math.Cos(angle) * speed, Y: math.Sin(angle) * speed},
		lifetime: ps.lifetimeMin + r.Float64()*(ps.lifetimeMax-ps.lifetimeMin),
		size:     ps.sizeMin + r.Float64()*(ps.sizeMax-ps.sizeMin),
		color: color.NRGBA{
			R: jitter(ps.colorBase.R, ps.colorJitter.R),
			G: jitter(ps.colorBase.G, ps.colorJitter.G),
			B: jitter(ps.colorBase.B, ps.colorJitter.B),
			A: ps.colorBase.A,
		},
	})
}

// Draw renders particles fading out with age
func (ps *ParticleSystem) Draw(screen *ebiten.Image) {
	for _, p := range ps.particles {
		fade := min(max(1-p.age/p.lifetime, 0), 1)
		clr := p.color
		clr.A = uint8(float64(clr.A) * 0.6 * fade)
		vector.DrawFilledCircle(screen, float32(p.pos.X), float32(p.pos.Y), float32(p.size), clr, true)
	}
}

// SetActive sets whether the system is continuously emitting
func (ps *ParticleSystem) SetActive(active bool) {
	ps.active = active
	if !active {
		ps.emissionTimer = 0
	}
}

// Len is the number of live particles
func (ps *ParticleSystem) Len() int { return len(ps.particles) }

// NewExhaustParticleSystem trails behind the player's engine
func NewExhaustParticleSystem(r sim.RandSource) *ParticleSystem {
	return &ParticleSystem{
		maxParticles: 60,
		emissionRate: 60,
		direction:    math.Pi, // backward
		velocityMin:  80,
		velocityMax:  150,
		spreadAngle:  math.Pi / 8,
		lifetimeMin:  0.2,
		lifetimeMax:  0.45,
		sizeMin:      1.5,
		sizeMax:      3,
		colorBase:    color.NRGBA{R: 255, G: 200, B: 0, A: 255},
		colorJitter:  color.NRGBA{R: 0, G: 60, B: 0},
		active:       true,
		rand:         r,
	}
}

// NewExplosionParticleSystem only emits through Burst
func NewExplosionParticleSystem(r sim.RandSource) *ParticleSystem {
	return &ParticleSystem{
		maxParticles: 400,
		velocityMin:  40,
		velocityMax:  220,
		lifetimeMin:  0.3,
		lifetimeMax:  0.8,
		sizeMin:      1.5,
		sizeMax:      3.5,
		colorBase:    color.NRGBA{R: 255, G: 140, B: 40, A: 255},
		colorJitter:  color.NRGBA{R: 0, G: 80, B: 40},
		rand:         r,
	}
}

// Effects owns the host-side particle systems and detects kills between ticks
type Effects struct {
	exhaust    *ParticleSystem
	explosions *ParticleSystem
	watched    []*sim.Hostile
	ended      bool
}

// NewEffects creates the exhaust and explosion systems
func NewEffects(r sim.RandSource) *Effects {
	return &Effects{
		exhaust:    NewExhaustParticleSystem(r),
		explosions: NewExplosionParticleSystem(r),
	}
}

// BeforeTick remembers the live hostiles so kills can be found afterwards
func (e *Effects) BeforeTick(st *sim.State) {
	e.watched = e.watched[:0]
	if st == nil {
		return
	}
	for _, h := range st.Hostiles {
		if !h.Dead() {
			e.watched = append(e.watched, h)
		}
	}
}

// AfterTick bursts at every watched hostile that was destroyed inside the field
// and at the player when the session ended
func (e *Effects) AfterTick(st *sim.State) {
	if st == nil {
		return
	}
	for _, h := range e.watched {
		if h.Dead() && h.Pos.X >= 0 {
			e.explosions.Burst(h.Bounds().Center(), 24)
		}
	}
	e.watched = e.watched[:0]

	over := st.Status == sim.GameOver
	if over && !e.ended {
		e.explosions.Burst(st.Player.Center(), 60)
	}
	e.ended = over
	e.exhaust.SetActive(!over)
}

// Update ages particles and keeps the exhaust at the player's tail
func (e *Effects) Update(dt float64, st *sim.State) {
	tail := sim.Vec2{}
	if st != nil {
		b := st.Player.Bounds()
		tail = sim.Vec2{X: b.X + 4, Y: b.Y + b.H/2}
	}
	e.exhaust.Update(dt, tail)
	e.explosions.Update(dt, tail)
}

// Reset clears every particle, used on restart
func (e *Effects) Reset() {
	e.exhaust.particles = e.exhaust.particles[:0]
	e.explosions.particles = e.explosions.particles[:0]
	e.watched = e.watched[:0]
	e.ended = false
	e.exhaust.SetActive(true)
}

func (e *Effects) Draw(screen *ebiten.Image) {
	e.exhaust.Draw(screen)
	e.explosions.Draw(screen)
}
