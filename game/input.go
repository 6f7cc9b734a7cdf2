package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"sidescroller/sim"
)

// bindings maps physical keys to simulation keys: arrows or WASD to move,
// Space or J to fire
var bindings = map[ebiten.Key]sim.Key{
	ebiten.KeyArrowUp:    sim.KeyUp,
	ebiten.KeyW:          sim.KeyUp,
	ebiten.KeyArrowDown:  sim.KeyDown,
	ebiten.KeyS:          sim.KeyDown,
	ebiten.KeyArrowLeft:  sim.KeyLeft,
	ebiten.KeyA:          sim.KeyLeft,
	ebiten.KeyArrowRight: sim.KeyRight,
	ebiten.KeyD:          sim.KeyRight,
	ebiten.KeySpace:      sim.KeyFire,
	ebiten.KeyJ:          sim.KeyFire,
}

// keySet translates pressed keys into the simulation's held set
func keySet(pressed []ebiten.Key) sim.KeySet {
	var held sim.KeySet
	for _, k := range pressed {
		if b, ok := bindings[k]; ok {
			held |= sim.Keys(b)
		}
	}
	return held
}

// KeyboardInput provides the held keys from the keyboard. It implements sim.InputSource.
type KeyboardInput struct {
	keys []ebiten.Key
	held sim.KeySet
}

func NewKeyboardInput() *KeyboardInput {
	return &KeyboardInput{keys: make([]ebiten.Key, 0, 10)}
}

// Update samples the keyboard; call once per frame before advancing the simulation
func (k *KeyboardInput) Update() {
	k.keys = inpututil.AppendPressedKeys(k.keys[:0])
	k.held = keySet(k.keys)
}

func (k *KeyboardInput) Held() sim.KeySet { return k.held }

// Command is a host action triggered by a key press
type Command int

const (
	CommandNone Command = iota
	CommandRestart
	CommandQuit
	CommandToggleDebug
	CommandToggleFullscreen
)

// PollCommand returns the host command pressed this frame, if any
func PollCommand() Command {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return CommandQuit
	case inpututil.IsKeyJustPressed(ebiten.KeyF1):
		return CommandToggleDebug
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter) && ebiten.IsKeyPressed(ebiten.KeyAlt):
		return CommandToggleFullscreen
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		return CommandRestart
	}
	return CommandNone
}
