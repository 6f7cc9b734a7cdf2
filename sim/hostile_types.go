package sim

// HostileClass defines different types of hostiles
type HostileClass int

const (
	HostileDrone   HostileClass = iota // Flies straight, never fires
	HostileGunship                     // Fires straight at the player
	HostileSniper                      // Fires at where the player is heading
)

func (c HostileClass) String() string {
	switch c {
	case HostileDrone:
		return "drone"
	case HostileGunship:
		return "gunship"
	case HostileSniper:
		return "sniper"
	default:
		return "unknown"
	}
}

// Fires reports whether the class carries a gun
func (c HostileClass) Fires() bool {
	return c == HostileGunship || c == HostileSniper
}

// randomHostileClass picks a class using the configured odds
func randomHostileClass(r RandSource, cfg HostileConfig) HostileClass {
	roll := r.Float64()
	switch {
	case roll < cfg.SniperChance:
		return HostileSniper
	case roll < cfg.SniperChance+cfg.GunshipChance:
		return HostileGunship
	default:
		return HostileDrone
	}
}
