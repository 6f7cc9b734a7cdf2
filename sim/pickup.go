package sim

// PickupKind is the power-up a pickup grants
type PickupKind int

const (
	PickupShield PickupKind = iota
	PickupForce
)

func (k PickupKind) String() string {
	if k == PickupForce {
		return "force"
	}
	return "shield"
}

// EquipState tracks a power-up from pickup to attachment
type EquipState int

const (
	Free     EquipState = iota // drifting, not collected
	Equipped                   // attached to the player
	Gone                       // deleted
)

func (s EquipState) String() string {
	switch s {
	case Free:
		return "free"
	case Equipped:
		return "equipped"
	default:
		return "gone"
	}
}

// Pickup drifts across the field until the player collects it or it leaves the field
type Pickup struct {
	body
	Grants PickupKind

	// Speed is the horizontal drift per tick; negative drifts left
	Speed float64

	state EquipState
}

// NewPickup creates a free pickup with its top-left corner at pos
func NewPickup(cfg *Config, kind PickupKind, pos Vec2) *Pickup {
	return &Pickup{
		body:   body{Pos: pos, Width: cfg.Pickup.Size, Height: cfg.Pickup.Size},
		Grants: kind,
		Speed:  cfg.Pickup.Speed,
		state:  Free,
	}
}

func (p *Pickup) Kind() Kind { return KindPickup }

// State is the pickup's position in the equip state machine
func (p *Pickup) State() EquipState { return p.state }

func (p *Pickup) Shape() Shape {
	return CircleAt(p.Bounds().Center(), p.Width/2)
}

func (p *Pickup) Update(f *Frame) {
	if p.state != Free {
		return
	}

	p.Pos.X += p.Speed
	if offField(p.Bounds(), f.Config.Field) {
		p.state = Gone
		p.MarkForDeletion()
		return
	}

	if Overlaps(p.Shape(), f.State.Player.Shape(f.Config)) {
		p.MarkForDeletion()
		if f.State.Equipment.Equip(f, p.Grants) {
			p.state = Equipped
		} else {
			p.state = Gone
		}
	}
}

func (p *Pickup) Draw(c Canvas) {
	c.Sprite(KindPickup, int(p.Grants), 0, p.Bounds())
}
