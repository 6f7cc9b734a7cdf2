package game

// DebugState holds debug flags that persist across restarts
type DebugState struct {
	ShowHitboxes bool // outline collision footprints
	ShowStats    bool // tick time and entity counts in the HUD
}

// Toggle flips every overlay together
func (d *DebugState) Toggle() {
	d.ShowHitboxes = !d.ShowHitboxes
	d.ShowStats = d.ShowHitboxes
}
