package game

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/png" // decoder for asset files
	"io/fs"
	"math"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"sidescroller/logging"
	"sidescroller/sim"
)

type spriteKey struct {
	kind    sim.Kind
	variant int
	frame   int
}

// spriteSpec describes one sprite: its file, placeholder color and size
type spriteSpec struct {
	key    spriteKey
	file   string
	clr    color.RGBA
	w, h   int
	circle bool
}

// spriteSpecs lists every sprite the renderer asks for
func spriteSpecs(cfg sim.Config) []spriteSpec {
	size := func(w, h float64) (int, int) { return int(math.Ceil(w)), int(math.Ceil(h)) }

	var specs []spriteSpec
	pw, ph := size(cfg.Player.Width, cfg.Player.Height)
	frames := max(cfg.Player.FrameCount, 1)
	for f := 0; f < frames; f++ {
		// engine flicker: every other frame is slightly brighter
		clr := color.RGBA{100, 150, 255, 255}
		if f%2 == 1 {
			clr = color.RGBA{130, 180, 255, 255}
		}
		specs = append(specs, spriteSpec{key: spriteKey{sim.KindPlayer, 0, f}, file: fmt.Sprintf("player_%d.png", f), clr: clr, w: pw, h: ph})
	}

	hw, hh := size(cfg.Hostile.Width, cfg.Hostile.Height)
	for class, clr := range map[sim.HostileClass]color.RGBA{
		sim.HostileDrone:   {255, 100, 100, 255},
		sim.HostileGunship: {255, 60, 60, 255},
		sim.HostileSniper:  {200, 80, 255, 255},
	} {
		specs = append(specs, spriteSpec{key: spriteKey{sim.KindHostile, int(class), 0}, file: "hostile_" + class.String() + ".png", clr: clr, w: hw, h: hh})
	}

	bw, bh := size(cfg.Projectile.Width, cfg.Projectile.Height)
	specs = append(specs,
		spriteSpec{key: spriteKey{sim.KindProjectile, int(sim.SideFriendly), 0}, file: "projectile_friendly.png", clr: color.RGBA{255, 200, 0, 255}, w: bw, h: bh, circle: true},
		spriteSpec{key: spriteKey{sim.KindProjectile, int(sim.SideHostile), 0}, file: "projectile_hostile.png", clr: color.RGBA{255, 80, 40, 255}, w: bw, h: bh, circle: true},
	)

	sw, sh := size(cfg.Obstacle.SegmentWidth, cfg.Obstacle.Height)
	specs = append(specs,
		spriteSpec{key: spriteKey{sim.KindObstacle, int(sim.StyleWall), 0}, file: "obstacle_wall.png", clr: color.RGBA{120, 100, 80, 255}, w: sw, h: sh},
		spriteSpec{key: spriteKey{sim.KindObstacle, int(sim.StyleLargeShip), 0}, file: "obstacle_ship.png", clr: color.RGBA{90, 110, 130, 255}, w: sw, h: sh},
	)

	ps, _ := size(cfg.Pickup.Size, cfg.Pickup.Size)
	specs = append(specs,
		spriteSpec{key: spriteKey{sim.KindPickup, int(sim.PickupShield), 0}, file: "pickup_shield.png", clr: color.RGBA{80, 220, 255, 255}, w: ps, h: ps, circle: true},
		spriteSpec{key: spriteKey{sim.KindPickup, int(sim.PickupForce), 0}, file: "pickup_force.png", clr: color.RGBA{255, 140, 220, 255}, w: ps, h: ps, circle: true},
	)

	sd := int(math.Ceil(2 * cfg.Shield.Radius))
	fd := int(math.Ceil(2 * cfg.Force.Radius))
	specs = append(specs,
		spriteSpec{key: spriteKey{sim.KindShield, 0, 0}, file: "shield.png", clr: color.RGBA{80, 220, 255, 200}, w: sd, h: sd, circle: true},
		spriteSpec{key: spriteKey{sim.KindForcePod, 0, 0}, file: "force_pod.png", clr: color.RGBA{255, 140, 220, 230}, w: fd, h: fd, circle: true},
	)
	return specs
}

// placeholderImage draws a stand-in sprite: a ship silhouette or a disc
func placeholderImage(spec spriteSpec) *image.RGBA {
	w, h := max(spec.w, 1), max(spec.h, 1)
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	dark := color.RGBA{0, 0, 0, 255}
	cx, cy := float64(w)/2, float64(h)/2

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			relX := float64(x) + 0.5 - cx
			relY := float64(y) + 0.5 - cy

			if spec.circle {
				d := (relX*relX)/(cx*cx) + (relY*relY)/(cy*cy)
				if d <= 1 {
					img.Set(x, y, spec.clr)
				}
				continue
			}

			switch spec.key.kind {
			case sim.KindPlayer, sim.KindHostile:
				// wedge pointing right for the player and left for hostiles
				t := (relX + cx) / float64(w)
				if spec.key.kind == sim.KindHostile {
					t = 1 - t
				}
				edge := cy * (1 - t)
				if math.Abs(relY) < edge {
					img.Set(x, y, spec.clr)
				} else if math.Abs(relY) < edge+1 {
					img.Set(x, y, dark)
				}
			default:
				img.Set(x, y, spec.clr)
				if x == 0 || x == w-1 || y == 0 || y == h-1 {
					img.Set(x, y, dark)
				}
			}
		}
	}
	return img
}

// Sprites serves images keyed by entity kind, variant and animation frame
type Sprites struct {
	images map[spriteKey]*ebiten.Image
}

// LoadSprites reads PNGs from dir and generates placeholders for missing ones
func LoadSprites(dir string, cfg sim.Config, log *logging.Logger) *Sprites {
	s := &Sprites{images: make(map[spriteKey]*ebiten.Image)}
	loaded := 0
	for _, spec := range spriteSpecs(cfg) {
		img, _, err := ebitenutil.NewImageFromFile(filepath.Join(dir, spec.file))
		if err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				log.Warnf("load sprite %s: %v", spec.file, err)
			}
			img = ebiten.NewImageFromImage(placeholderImage(spec))
		} else {
			loaded++
		}
		s.images[spec.key] = img
	}
	log.Debugf("sprites: %d loaded from %s, %d generated", loaded, dir, len(s.images)-loaded)
	return s
}

// Image returns the sprite for the key, falling back to frame 0 and then to
// variant 0. It returns nil when the kind has no sprite at all.
func (s *Sprites) Image(kind sim.Kind, variant, frame int) *ebiten.Image {
	for _, k := range []spriteKey{{kind, variant, frame}, {kind, variant, 0}, {kind, 0, 0}} {
		if img, ok := s.images[k]; ok {
			return img
		}
	}
	return nil
}
