package sim

// Slot is the position a shield occupies around the player
type Slot int

const (
	SlotTop Slot = iota
	SlotBottom
	slotCount
)

func (s Slot) String() string {
	if s == SlotBottom {
		return "bottom"
	}
	return "top"
}

// Shield trails the player through a lag buffer of past positions and destroys
// any hostile it touches. It is never consumed.
type Shield struct {
	Slot   Slot
	Radius float64

	offset      float64
	lagInterval float64
	lagTimer    float64
	history     *Ring[Vec2]
	anchor      Vec2
	playerSize  Vec2
}

func newShield(cfg *Config, slot Slot, player *Player) *Shield {
	return &Shield{
		Slot:        slot,
		Radius:      cfg.Shield.Radius,
		offset:      cfg.Shield.Offset,
		lagInterval: cfg.Shield.LagInterval,
		history:     NewRing[Vec2](cfg.Shield.LagSamples),
		anchor:      player.Pos,
		playerSize:  Vec2{X: player.Width, Y: player.Height},
	}
}

func (s *Shield) Kind() Kind { return KindShield }

// Anchor is the player position the shield currently follows
func (s *Shield) Anchor() Vec2 { return s.anchor }

// Center is the anchor's center shifted up or down by the slot offset
func (s *Shield) Center() Vec2 {
	c := s.anchor.Add(s.playerSize.Scale(0.5))
	if s.Slot == SlotTop {
		c.Y -= s.offset
	} else {
		c.Y += s.offset
	}
	return c
}

func (s *Shield) Shape() Shape { return CircleAt(s.Center(), s.Radius) }

func (s *Shield) Bounds() Rect { return circleBounds(s.Center(), s.Radius) }

func (s *Shield) Dead() bool { return false }

// Update samples the player position once per lag interval. Until the buffer
// is full the shield tracks the current position; afterwards it follows the
// oldest sample.
func (s *Shield) Update(f *Frame) {
	pos := f.State.Player.Pos
	if !s.history.Full() {
		s.anchor = pos
	}

	s.lagTimer += f.Dt
	if s.lagTimer >= s.lagInterval {
		s.lagTimer -= s.lagInterval
		if s.history.Full() {
			s.anchor, _ = s.history.Pop()
		}
		s.history.Push(pos)
	}

	ram(f, s.Shape())
}

func (s *Shield) Draw(c Canvas) {
	c.Sprite(KindShield, int(s.Slot), 0, s.Bounds())
}

// ForcePod is rigidly attached to the player's nose
type ForcePod struct {
	Radius float64
	Offset Vec2

	center Vec2
}

func newForcePod(cfg *Config, player *Player) *ForcePod {
	offset := Vec2{X: cfg.Force.OffsetX, Y: cfg.Force.OffsetY}
	return &ForcePod{
		Radius: cfg.Force.Radius,
		Offset: offset,
		center: player.Center().Add(offset),
	}
}

func (p *ForcePod) Kind() Kind { return KindForcePod }

func (p *ForcePod) Center() Vec2 { return p.center }

func (p *ForcePod) Shape() Shape { return CircleAt(p.center, p.Radius) }

func (p *ForcePod) Bounds() Rect { return circleBounds(p.center, p.Radius) }

func (p *ForcePod) Dead() bool { return false }

func (p *ForcePod) Update(f *Frame) {
	p.center = f.State.Player.Center().Add(p.Offset)
	ram(f, p.Shape())
}

func (p *ForcePod) Draw(c Canvas) {
	c.Sprite(KindForcePod, 0, 0, p.Bounds())
}

// ram destroys every live hostile overlapping shape
func ram(f *Frame, shape Shape) {
	for _, h := range f.State.Hostiles {
		if h.Dead() {
			continue
		}
		if Overlaps(shape, h.Shape()) {
			h.MarkForDeletion()
			f.AwardKill(KindHostile)
		}
	}
}

func circleBounds(center Vec2, r float64) Rect {
	return Rect{X: center.X - r, Y: center.Y - r, W: 2 * r, H: 2 * r}
}

// Equipment holds the player's attachments: two shield slots and one force pod
type Equipment struct {
	shields [slotCount]*Shield
	force   *ForcePod
}

// Equip turns a collected pickup into an attachment. It reports false when no
// slot is left for that kind.
func (e *Equipment) Equip(f *Frame, kind PickupKind) bool {
	player := f.State.Player
	switch kind {
	case PickupShield:
		for slot := SlotTop; slot < slotCount; slot++ {
			if e.shields[slot] == nil {
				e.shields[slot] = newShield(f.Config, slot, player)
				f.observer.Equipped(KindShield)
				return true
			}
		}
	case PickupForce:
		if e.force == nil {
			e.force = newForcePod(f.Config, player)
			f.observer.Equipped(KindForcePod)
			return true
		}
	}
	return false
}

// Shield returns the shield in slot, or nil
func (e *Equipment) Shield(slot Slot) *Shield {
	if slot < 0 || slot >= slotCount {
		return nil
	}
	return e.shields[slot]
}

// Force returns the force pod, or nil
func (e *Equipment) Force() *ForcePod { return e.force }

// Attachments lists equipped attachments, shields first
func (e *Equipment) Attachments() []Entity {
	var out []Entity
	for _, s := range e.shields {
		if s != nil {
			out = append(out, s)
		}
	}
	if e.force != nil {
		out = append(out, e.force)
	}
	return out
}

// Update moves every attachment relative to the player
func (e *Equipment) Update(f *Frame) {
	for _, a := range e.Attachments() {
		a.Update(f)
	}
}
