// main.go
package main

import (
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
)

func exit(code int) {
	os.Exit(code)
}

func main() {
	cfg, err := loadSettings()
	if err != nil {
		log.Fatal(err)
	}

	game, err := NewGame(cfg)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(cfg.ScreenWidth, cfg.ScreenHeight)
	ebiten.SetWindowTitle("tilecast")
	ebiten.SetTPS(cfg.TPS)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
