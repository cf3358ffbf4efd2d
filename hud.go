package main

import (
	"fmt"
	"os"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/harbdog/raycaster-go/geom"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// loadFace parses the configured TrueType file, or falls back to the
// built-in bitmap face when no font is configured.
func loadFace(path string, size float64) (font.Face, error) {
	if path == "" {
		return basicfont.Face7x13, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := truetype.Parse(data)
	if err != nil {
		return nil, err
	}
	return truetype.NewFace(f, &truetype.Options{Size: size}), nil
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %0.2f  TPS: %0.2f", ebiten.ActualFPS(), ebiten.ActualTPS()), 10, 10)
	ebitenutil.DebugPrintAt(screen, "arrows move, x minimap, r rays, t textures, enter respawn, p pause", 10, g.cfg.ScreenHeight-40)
	ebitenutil.DebugPrintAt(screen, "ESC to exit", 10, g.cfg.ScreenHeight-20)

	pos := g.player.Pose.Position
	status := fmt.Sprintf("pos (%.0f, %.0f)  heading %.0f", pos.X, pos.Y, geom.Degrees(g.player.Pose.Angle))
	text.Draw(screen, status, g.face, 10, 44, colornames.White)
}
