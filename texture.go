package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	brickColor  = color.RGBA{158, 74, 58, 255}
	mortarColor = color.RGBA{120, 110, 100, 255}
)

// newWallTexture generates the wall texture strip in code, a running-bond
// brick pattern. Keeping it procedural means no asset files and the strip
// width always matches the projector's TexWidth.
func newWallTexture(w, h int) *ebiten.Image {
	img := ebiten.NewImage(w, h)
	img.Fill(brickColor)

	const (
		brickH = 8
		brickW = 16
	)

	for y := 0; y < h; y += brickH {
		vector.DrawFilledRect(img, 0, float32(y), float32(w), 1, mortarColor, false)

		// offset every other course by half a brick
		offset := 0
		if (y/brickH)%2 == 1 {
			offset = brickW / 2
		}
		for x := offset; x < w; x += brickW {
			vector.DrawFilledRect(img, float32(x), float32(y), 1, brickH, mortarColor, false)
		}
	}

	return img
}
