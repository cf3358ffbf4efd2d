package main

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"tilecast/raycast"
)

var (
	ceilingColor = color.RGBA{54, 58, 74, 255}
	floorColor   = color.RGBA{30, 30, 30, 255}
	wallColor    = colornames.Pink
)

// drawScene paints the first-person view: a two-tone ceiling/floor fill and
// one vertical slice per drawable column. Miss columns simply stay
// background.
func (g *Game) drawScene(screen *ebiten.Image) {
	w := float32(g.cfg.ScreenWidth)
	h := float32(g.cfg.ScreenHeight)
	vector.DrawFilledRect(screen, 0, 0, w, h/2, ceilingColor, false)
	vector.DrawFilledRect(screen, 0, h/2, w, h/2, floorColor, false)

	for _, c := range g.cols {
		if g.textured {
			g.drawTexturedColumn(screen, c)
		} else {
			g.drawFlatColumn(screen, c)
		}
	}
}

func (g *Game) drawFlatColumn(screen *ebiten.Image, c raycast.Column) {
	shade := float64(c.Shade) / 255
	slice := color.RGBA{
		R: uint8(float64(wallColor.R) * shade),
		G: uint8(float64(wallColor.G) * shade),
		B: uint8(float64(wallColor.B) * shade),
		A: 255,
	}
	// +1 width overdraw hides seams between adjacent slices
	vector.DrawFilledRect(screen, float32(c.X), float32(c.Top), float32(c.Width)+1, float32(c.Height), slice, false)
}

func (g *Game) drawTexturedColumn(screen *ebiten.Image, c raycast.Column) {
	texH := g.wallTex.Bounds().Dy()
	src := g.wallTex.SubImage(image.Rect(c.TexColumn, 0, c.TexColumn+1, texH)).(*ebiten.Image)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(c.Width+1, c.Height/float64(texH))
	op.GeoM.Translate(c.X, c.Top)

	shade := float32(c.Shade) / 255
	op.ColorScale.Scale(shade, shade, shade, 1)

	screen.DrawImage(src, op)
}
