package sim

// Key is one directional or action key the player can hold
type Key uint8

const (
	KeyUp Key = 1 << iota
	KeyDown
	KeyLeft
	KeyRight
	KeyFire
)

// KeySet is the set of keys currently held
type KeySet uint8

// Keys builds a set from individual keys
func Keys(keys ...Key) KeySet {
	var s KeySet
	for _, k := range keys {
		s |= KeySet(k)
	}
	return s
}

// Has reports whether k is held
func (s KeySet) Has(k Key) bool { return s&KeySet(k) != 0 }

// InputSource exposes the keys held by the player
type InputSource interface {
	Held() KeySet
}

// StaticInput is an InputSource holding a fixed set of keys. Tests and the
// headless runner mutate it between ticks.
type StaticInput struct {
	Keys KeySet
}

func (s *StaticInput) Held() KeySet { return s.Keys }

// HighScoreStore persists the best score across sessions.
// Get reports false when nothing (or nothing readable) is stored.
type HighScoreStore interface {
	Get() (int, bool)
	Set(score int) error
}

// Canvas receives the draw pass. Sprite is called once per live entity in
// back-to-front order; variant distinguishes sub-kinds (hostile class, pickup
// kind, obstacle style) and frame is the animation frame.
type Canvas interface {
	Sprite(kind Kind, variant int, frame int, bounds Rect)
}

// Observer is notified of lifecycle events. Calls happen on the tick goroutine.
type Observer interface {
	Spawned(kind Kind)
	Killed(kind Kind)
	Equipped(kind Kind)
	Culled(kind Kind, n int)
	Ended(score int, elapsedMs float64)
}

// NopObserver ignores every event
type NopObserver struct{}

func (NopObserver) Spawned(Kind)       {}
func (NopObserver) Killed(Kind)        {}
func (NopObserver) Equipped(Kind)      {}
func (NopObserver) Culled(Kind, int)   {}
func (NopObserver) Ended(int, float64) {}
