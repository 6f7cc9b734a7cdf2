package game

import "time"

// Config holds host settings that do not affect the simulation
type Config struct {
	// Title is the window title
	Title string

	// ScreenWidth and ScreenHeight are the logical screen size in pixels.
	// Zero means the size of the playing field.
	ScreenWidth  int
	ScreenHeight int

	// AssetsDir is searched for sprite PNGs; missing files get generated placeholders
	AssetsDir string

	// StarCount is the number of background stars
	StarCount int

	// MaxDelta clamps the elapsed time fed to one tick
	MaxDelta time.Duration

	// SlowTick is the tick duration that triggers a CPU profile capture; zero disables profiling
	SlowTick time.Duration

	// ProfilesDir receives captured profiles
	ProfilesDir string
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return Config{
		Title:       "Side Scroller",
		AssetsDir:   "assets",
		StarCount:   120,
		MaxDelta:    100 * time.Millisecond,
		SlowTick:    0,
		ProfilesDir: "profiles",
	}
}
