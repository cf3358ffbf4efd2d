// minimap.go
package main

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
)

// The minimap images are drawn at world scale (one pixel per world unit),
// so tiles, ray lines and the player marker all use world coordinates
// directly; scaling happens once at blit time.

func (g *Game) buildMinimap() {
	w, h := int(g.grid.Width()), int(g.grid.Height())
	g.minimapBase = ebiten.NewImage(w, h)
	g.minimapFrame = ebiten.NewImage(w, h)

	g.markerTile = ebiten.NewImage(1, 1)
	g.markerTile.Fill(colornames.Yellow)

	size := float32(g.grid.Size())
	g.minimapBase.Fill(color.RGBA{0, 0, 0, 255})
	for row := 0; row < g.grid.Rows(); row++ {
		for col := 0; col < g.grid.Cols(); col++ {
			x, y := float32(col)*size, float32(row)*size
			if g.grid.BlockedAt(col, row) {
				vector.DrawFilledRect(g.minimapBase, x, y, size, size, colornames.Gray, false)
			} else {
				vector.StrokeRect(g.minimapBase, x, y, size, size, 2, colornames.Gray, false)
			}
		}
	}
}

func (g *Game) drawMinimap(screen *ebiten.Image) {
	g.minimapFrame.Clear()
	g.minimapFrame.DrawImage(g.minimapBase, nil)

	if g.showRays {
		g.drawMinimapRays()
	}
	g.drawMinimapPlayer()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(g.cfg.MinimapScale, g.cfg.MinimapScale)
	op.GeoM.Translate(float64(g.cfg.ScreenWidth)-g.grid.Width()*g.cfg.MinimapScale, 0)
	op.ColorScale.ScaleAlpha(float32(g.cfg.MinimapAlpha))
	screen.DrawImage(g.minimapFrame, op)
}

// drawMinimapRays draws a line from the player to every hit point of the
// last fan, the classic raycaster debug view.
func (g *Game) drawMinimapRays() {
	pos := g.player.Pose.Position
	for _, ray := range g.rays {
		if ray == nil {
			continue
		}
		vector.StrokeLine(
			g.minimapFrame,
			float32(pos.X), float32(pos.Y),
			float32(ray.Hit.X), float32(ray.Hit.Y),
			1, colornames.Yellow, false,
		)
	}
}

// drawMinimapPlayer draws a heading triangle at the player position.
func (g *Game) drawMinimapPlayer() {
	const scale = 2.0
	local := [3][2]float64{{9, 0}, {-6, 6}, {-6, -6}}

	pos := g.player.Pose.Position
	sin, cos := math.Sincos(g.player.Pose.Angle)

	var vertices [3]ebiten.Vertex
	for i, p := range local {
		vertices[i] = ebiten.Vertex{
			DstX:   float32(pos.X + (p[0]*cos-p[1]*sin)*scale),
			DstY:   float32(pos.Y + (p[0]*sin+p[1]*cos)*scale),
			ColorR: 1, ColorG: 1, ColorB: 1, ColorA: 1,
		}
	}

	g.minimapFrame.DrawTriangles(vertices[:], []uint16{0, 1, 2}, g.markerTile, nil)
}
