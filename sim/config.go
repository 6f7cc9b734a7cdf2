package sim

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ConfigEnv names the environment variable consulted by LoadConfig when no path is given
const ConfigEnv = "SIDESCROLLER_CONFIG"

// Config holds every gameplay tunable.
// Distances are pixels, speeds are pixels per tick, durations are milliseconds.
type Config struct {
	Field      FieldConfig      `yaml:"field"`
	Player     PlayerConfig     `yaml:"player"`
	Hostile    HostileConfig    `yaml:"hostile"`
	Projectile ProjectileConfig `yaml:"projectile"`
	Obstacle   ObstacleConfig   `yaml:"obstacle"`
	Pickup     PickupConfig     `yaml:"pickup"`
	Shield     ShieldConfig     `yaml:"shield"`
	Force      ForceConfig      `yaml:"force"`
	Score      ScoreConfig      `yaml:"score"`
	Power      PowerConfig      `yaml:"power"`
	Spawn      SpawnConfig      `yaml:"spawn"`
}

// FieldConfig is the playable area
type FieldConfig struct {
	// Width of the field in pixels
	Width float64 `yaml:"width"`

	// Height of the field in pixels
	Height float64 `yaml:"height"`
}

// PlayerConfig describes the player craft
type PlayerConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	// Speed is applied per tick on each axis while the key is held
	Speed float64 `yaml:"speed"`

	// HitboxInset shrinks the collision ellipse relative to the sprite
	HitboxInset float64 `yaml:"hitbox_inset"`

	// FrameInterval is the time between animation frames
	FrameInterval float64 `yaml:"frame_interval"`
	FrameCount    int     `yaml:"frame_count"`
}

// HostileConfig describes enemy craft
type HostileConfig struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	MinSpeed float64 `yaml:"min_speed"`
	MaxSpeed float64 `yaml:"max_speed"`

	// GunshipChance and SniperChance are the odds a spawned hostile fires at the
	// player; the rest are drones
	GunshipChance float64 `yaml:"gunship_chance"`
	SniperChance  float64 `yaml:"sniper_chance"`

	FireIntervalMin float64 `yaml:"fire_interval_min"`
	FireIntervalMax float64 `yaml:"fire_interval_max"`
}

// ProjectileConfig describes shots from both sides
type ProjectileConfig struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	FriendlySpeed float64 `yaml:"friendly_speed"`
	HostileSpeed  float64 `yaml:"hostile_speed"`
}

// ObstacleConfig describes walls and large ships
type ObstacleConfig struct {
	SegmentWidth float64 `yaml:"segment_width"`
	Height       float64 `yaml:"height"`
	MinSpan      int     `yaml:"min_span"`
	MaxSpan      int     `yaml:"max_span"`
	Speed        float64 `yaml:"speed"`
	HitboxInset  float64 `yaml:"hitbox_inset"`

	// LargeShipChance is the odds an obstacle is drawn as a large ship instead of a wall
	LargeShipChance float64 `yaml:"large_ship_chance"`
}

// PickupConfig describes free-floating power-ups
type PickupConfig struct {
	Size float64 `yaml:"size"`

	// Speed is the horizontal drift per tick; negative drifts left
	Speed float64 `yaml:"speed"`
}

// ShieldConfig describes trailing shield attachments
type ShieldConfig struct {
	Radius float64 `yaml:"radius"`

	// Offset is the vertical distance between the player and each shield slot
	Offset float64 `yaml:"offset"`

	// LagSamples is the capacity of the trailing position FIFO
	LagSamples int `yaml:"lag_samples"`

	// LagInterval is the time between two position samples
	LagInterval float64 `yaml:"lag_interval"`
}

// ForceConfig describes the rigidly attached force pod
type ForceConfig struct {
	Radius float64 `yaml:"radius"`

	// OffsetX, OffsetY place the pod center relative to the player center
	OffsetX float64 `yaml:"offset_x"`
	OffsetY float64 `yaml:"offset_y"`
}

// ScoreConfig controls scoring
type ScoreConfig struct {
	// TickInterval is the survival time worth one point
	TickInterval float64 `yaml:"tick_interval"`

	// KillPoints is awarded per destroyed hostile
	KillPoints int `yaml:"kill_points"`
}

// PowerConfig controls the shot charge meter
type PowerConfig struct {
	ChargeInterval float64 `yaml:"charge_interval"`
	Max            int     `yaml:"max"`
	Start          int     `yaml:"start"`
}

// SpawnTiming is the base interval plus the jitter range of one spawner
type SpawnTiming struct {
	Interval  float64 `yaml:"interval"`
	JitterMin float64 `yaml:"jitter_min"`
	JitterMax float64 `yaml:"jitter_max"`
}

// SpawnConfig holds one timing per spawnable kind
type SpawnConfig struct {
	Hostile      SpawnTiming `yaml:"hostile"`
	Charge       SpawnTiming `yaml:"charge"`
	ShieldPickup SpawnTiming `yaml:"shield_pickup"`
	ForcePickup  SpawnTiming `yaml:"force_pickup"`
	Obstacle     SpawnTiming `yaml:"obstacle"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return Config{
		Field: FieldConfig{
			Width:  900,
			Height: 550,
		},
		Player: PlayerConfig{
			Width:         60,
			Height:        40,
			Speed:         3.5,
			HitboxInset:   4,
			FrameInterval: 100,
			FrameCount:    4,
		},
		Hostile: HostileConfig{
			Width:           50,
			Height:          40,
			MinSpeed:        3,
			MaxSpeed:        6,
			GunshipChance:   0.25,
			SniperChance:    0.1,
			FireIntervalMin: 1000,
			FireIntervalMax: 2500, // 1-2.5 seconds
		},
		Projectile: ProjectileConfig{
			Width:         12,
			Height:        6,
			FriendlySpeed: 10,
			HostileSpeed:  5,
		},
		Obstacle: ObstacleConfig{
			SegmentWidth:    60,
			Height:          160,
			MinSpan:         2,
			MaxSpan:         5,
			Speed:           2,
			HitboxInset:     6,
			LargeShipChance: 0.3,
		},
		Pickup: PickupConfig{
			Size:  24,
			Speed: -2,
		},
		Shield: ShieldConfig{
			Radius:      14,
			Offset:      50,
			LagSamples:  10,
			LagInterval: 20,
		},
		Force: ForceConfig{
			Radius:  12,
			OffsetX: 48,
			OffsetY: 0,
		},
		Score: ScoreConfig{
			TickInterval: 1000,
			KillPoints:   10,
		},
		Power: PowerConfig{
			ChargeInterval: 250,
			Max:            10,
			Start:          5,
		},
		Spawn: SpawnConfig{
			Hostile:      SpawnTiming{Interval: 1000, JitterMin: 0, JitterMax: 1000},
			Charge:       SpawnTiming{Interval: 150, JitterMin: 0, JitterMax: 50},
			ShieldPickup: SpawnTiming{Interval: 9000, JitterMin: 0, JitterMax: 6000},
			ForcePickup:  SpawnTiming{Interval: 12000, JitterMin: 0, JitterMax: 8000},
			Obstacle:     SpawnTiming{Interval: 6000, JitterMin: 0, JitterMax: 5000},
		},
	}
}

// LoadConfig reads a YAML file on top of DefaultConfig. An empty path falls back
// to $SIDESCROLLER_CONFIG; when that is unset too the defaults are returned.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		path = os.Getenv(ConfigEnv)
		if path == "" {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects configurations the simulation cannot run with
func (c Config) Validate() error {
	switch {
	case c.Field.Width <= 0 || c.Field.Height <= 0:
		return fmt.Errorf("field must have a positive size, got %vx%v", c.Field.Width, c.Field.Height)
	case c.Player.Width <= 0 || c.Player.Height <= 0:
		return fmt.Errorf("player must have a positive size")
	case c.Player.Width > c.Field.Width || c.Player.Height > c.Field.Height:
		return fmt.Errorf("player does not fit in the field")
	case c.Hostile.MinSpeed > c.Hostile.MaxSpeed:
		return fmt.Errorf("hostile speed range is inverted: %v > %v", c.Hostile.MinSpeed, c.Hostile.MaxSpeed)
	case c.Hostile.FireIntervalMin > c.Hostile.FireIntervalMax:
		return fmt.Errorf("hostile fire interval range is inverted")
	case c.Obstacle.MinSpan < 1 || c.Obstacle.MinSpan > c.Obstacle.MaxSpan:
		return fmt.Errorf("obstacle span range [%d, %d] is invalid", c.Obstacle.MinSpan, c.Obstacle.MaxSpan)
	case c.Obstacle.Height >= c.Field.Height/2:
		return fmt.Errorf("obstacle height %v leaves no room between top and bottom walls", c.Obstacle.Height)
	case c.Pickup.Speed == 0:
		return fmt.Errorf("pickup drift speed must be non-zero")
	case c.Shield.LagSamples < 1 || c.Shield.LagInterval <= 0:
		return fmt.Errorf("shield lag buffer needs at least one sample and a positive interval")
	case c.Score.TickInterval <= 0:
		return fmt.Errorf("score tick interval must be positive")
	case c.Power.ChargeInterval <= 0 || c.Power.Max < 1:
		return fmt.Errorf("power meter needs a positive charge interval and capacity")
	}

	timings := map[string]SpawnTiming{
		"hostile":       c.Spawn.Hostile,
		"charge":        c.Spawn.Charge,
		"shield_pickup": c.Spawn.ShieldPickup,
		"force_pickup":  c.Spawn.ForcePickup,
		"obstacle":      c.Spawn.Obstacle,
	}
	for name, t := range timings {
		if t.Interval < 0 || t.JitterMin < 0 || t.JitterMin > t.JitterMax {
			return fmt.Errorf("spawn timing %s is invalid: %+v", name, t)
		}
	}
	return nil
}
