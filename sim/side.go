package sim

// Side identifies which team fired a projectile
type Side int

const (
	SideFriendly Side = iota
	SideHostile
)

func (s Side) String() string {
	switch s {
	case SideFriendly:
		return "friendly"
	case SideHostile:
		return "hostile"
	default:
		return "unknown"
	}
}

// Opposite returns the side a projectile of s is allowed to damage
func (s Side) Opposite() Side {
	if s == SideFriendly {
		return SideHostile
	}
	return SideFriendly
}
