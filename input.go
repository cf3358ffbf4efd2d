package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

func (g *Game) handleInput() {
	// p pauses the game
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.paused = !g.paused
	}

	// escape exits the game
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		exit(0)
	}

	if g.paused {
		// dont process movement or toggles when paused
		return
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyX) {
		g.showMinimap = !g.showMinimap
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.showRays = !g.showRays
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		g.textured = !g.textured
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.respawn()
	}

	if ebiten.IsKeyPressed(ebiten.KeyLeft) {
		g.player.rotate(-1)
	}
	if ebiten.IsKeyPressed(ebiten.KeyRight) {
		g.player.rotate(1)
	}
	if ebiten.IsKeyPressed(ebiten.KeyUp) {
		g.player.step(1, g.grid)
	}
	if ebiten.IsKeyPressed(ebiten.KeyDown) {
		g.player.step(-1, g.grid)
	}
}
