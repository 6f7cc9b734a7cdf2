package main

import (
	"math"

	"sidescroller/sim"
)

// Autopilot is an InputSource that flies the player without a keyboard.
// It holds fire, steers out of the path of hostiles and hostile shots
// ahead of it and keeps clear of obstacles.
type Autopilot struct {
	state  func() *sim.State
	height float64

	// MinX and MaxX bound the horizontal cruising range
	MinX, MaxX float64

	// Lookahead is how far ahead threats are considered
	Lookahead float64

	// Clearance is the vertical gap kept around a threat
	Clearance float64

	// Deadzone stops jitter around the target row
	Deadzone float64
}

// NewAutopilot reads the world through state, which may return nil before
// the simulation starts
func NewAutopilot(field sim.FieldConfig, state func() *sim.State) *Autopilot {
	return &Autopilot{
		state:     state,
		height:    field.Height,
		MinX:      80,
		MaxX:      140,
		Lookahead: 260,
		Clearance: 12,
		Deadzone:  2,
	}
}

// Held implements sim.InputSource
func (a *Autopilot) Held() sim.KeySet {
	keys := sim.Keys(sim.KeyFire)
	st := a.state()
	if st == nil || st.Player == nil {
		return keys
	}
	p := st.Player
	box := p.Bounds()
	center := box.Center()

	switch {
	case box.X < a.MinX:
		keys |= sim.Keys(sim.KeyRight)
	case box.X > a.MaxX:
		keys |= sim.Keys(sim.KeyLeft)
	}

	lo, hi := a.band(st, box)
	target := (lo + hi) / 2
	if threat, ok := a.nearestThreat(st, box); ok {
		tc := threat.Center()
		reach := (box.H+threat.H)/2 + a.Clearance
		above := tc.Y - reach
		below := tc.Y + reach
		// prefer the side with more room, then the shorter move
		roomAbove := above - box.H/2 - lo
		roomBelow := hi - below - box.H/2
		switch {
		case roomAbove < 0 && roomBelow >= 0:
			target = below
		case roomBelow < 0 && roomAbove >= 0:
			target = above
		case math.Abs(above-center.Y) <= math.Abs(below-center.Y):
			target = above
		default:
			target = below
		}
	}

	target = clamp(target, lo+box.H/2, hi-box.H/2)
	switch {
	case target < center.Y-a.Deadzone:
		keys |= sim.Keys(sim.KeyUp)
	case target > center.Y+a.Deadzone:
		keys |= sim.Keys(sim.KeyDown)
	}
	return keys
}

// band is the vertical gap left by obstacles overlapping the stretch ahead
func (a *Autopilot) band(st *sim.State, box sim.Rect) (lo, hi float64) {
	lo, hi = 0, a.height
	for _, o := range st.Obstacles {
		if o.Dead() {
			continue
		}
		r := o.Bounds()
		if r.X > box.X+box.W+a.Lookahead || r.X+r.W < box.X {
			continue
		}
		top, bottom := o.Band()
		if o.Edge == sim.EdgeTop {
			lo = max(lo, bottom)
		} else {
			hi = min(hi, top)
		}
	}
	return lo, hi
}

// nearestThreat is the closest hostile or hostile shot ahead whose row
// overlaps the player's
func (a *Autopilot) nearestThreat(st *sim.State, box sim.Rect) (sim.Rect, bool) {
	var best sim.Rect
	bestDist := math.Inf(1)
	consider := func(r sim.Rect) {
		if r.X+r.W < box.X || r.X > box.X+box.W+a.Lookahead {
			return
		}
		if r.Y > box.Y+box.H+a.Clearance || r.Y+r.H < box.Y-a.Clearance {
			return
		}
		if d := r.X - box.X; d < bestDist {
			best, bestDist = r, d
		}
	}
	for _, h := range st.Hostiles {
		if !h.Dead() {
			consider(h.Bounds())
		}
	}
	for _, pr := range st.Projectiles {
		if !pr.Dead() && pr.Side == sim.SideHostile {
			consider(pr.Bounds())
		}
	}
	return best, !math.IsInf(bestDist, 1)
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		return (lo + hi) / 2
	}
	return min(max(v, lo), hi)
}
