package main

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/tetra/game"
)

// Binding maps every action to the keys that trigger it.
type Binding map[game.Action][]ebiten.Key

var defaultBinding = Binding{
	game.MoveRight: {ebiten.KeyArrowRight},
	game.MoveLeft:  {ebiten.KeyArrowLeft},
	game.SoftDrop:  {ebiten.KeyArrowDown},
	game.HardDrop:  {ebiten.KeySpace},
	game.RotateCW:  {ebiten.KeyX, ebiten.KeyArrowUp},
	game.RotateCCW: {ebiten.KeyZ},
	game.Rotate180: {ebiten.KeyA},
	game.Hold:      {ebiten.KeyC},
}

// The arcade cabinet wires both joysticks and button rows to keys.
var arcadeBindings = [2]Binding{
	{
		game.MoveRight: {ebiten.KeyArrowRight},
		game.MoveLeft:  {ebiten.KeyArrowLeft},
		game.SoftDrop:  {ebiten.KeyArrowDown},
		game.HardDrop:  {ebiten.KeyAltLeft},
		game.RotateCW:  {ebiten.KeyShiftLeft},
		game.RotateCCW: {ebiten.KeySpace},
		game.Rotate180: {ebiten.KeyZ},
		game.Hold:      {ebiten.KeyControlLeft},
	},
	{
		game.MoveRight: {ebiten.KeyG},
		game.MoveLeft:  {ebiten.KeyD},
		game.SoftDrop:  {ebiten.KeyF},
		game.HardDrop:  {ebiten.KeyS},
		game.RotateCW:  {ebiten.KeyQ},
		game.RotateCCW: {ebiten.KeyW},
		game.Rotate180: {ebiten.KeyI},
		game.Hold:      {ebiten.KeyA},
	},
}

// bindingFor picks the keys of a human seat. Two humans always get the
// arcade layout since the default one overlaps with the second seat.
func bindingFor(arcade bool, seat, humans int) Binding {
	if arcade || humans > 1 {
		return arcadeBindings[seat]
	}
	return defaultBinding
}

// keyboard is a match controller reading the ebiten keyboard.
type keyboard struct {
	binding Binding
	keys    game.Keys
	// muted is checked every poll. While it returns true all keys read
	// as released.
	muted func() bool
}

func (k *keyboard) Poll(_ *game.Session, _ time.Duration) game.Snapshot {
	k.keys.Advance()
	mute := k.muted != nil && k.muted()
	for _, a := range game.Actions {
		down := false
		if !mute {
			for _, key := range k.binding[a] {
				if ebiten.IsKeyPressed(key) {
					down = true
					break
				}
			}
		}
		k.keys.Set(a, down)
	}
	return k.keys
}
