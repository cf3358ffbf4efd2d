package main

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/harbdog/raycaster-go/geom"
	"github.com/jinzhu/copier"
	"golang.org/x/image/font"

	"tilecast/raycast"
	"tilecast/tilemap"
)

const wallTexSize = 64

// Game owns the window-facing state and drives the core once per tick:
// read the pose, cast the fan, project the columns, and let Draw paint
// whatever the last tick produced.
type Game struct {
	cfg  Settings
	grid *tilemap.Grid

	player Player
	spawn  Player // respawn snapshot

	proj raycast.Projector
	rays []*raycast.Ray
	cols []raycast.Column

	minimapBase  *ebiten.Image // static grid squares, built once
	minimapFrame *ebiten.Image // per-frame overlay: base + rays + marker
	markerTile   *ebiten.Image // 1x1 source for the player triangle
	wallTex      *ebiten.Image

	face font.Face
	menu *pauseMenu

	paused      bool
	showMinimap bool
	showRays    bool
	textured    bool
}

func NewGame(cfg Settings) (*Game, error) {
	cells, err := parseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	grid, err := tilemap.NewGrid(cells, cfg.TileSize)
	if err != nil {
		return nil, err
	}

	face, err := loadFace(cfg.FontPath, 16)
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}

	g := &Game{
		cfg:  cfg,
		grid: grid,
		player: Player{
			Pose: raycast.Pose{
				Position: grid.Point(cfg.SpawnX, cfg.SpawnY),
				Angle:    geom.Radians(cfg.SpawnDegrees),
			},
			Vel:    cfg.MoveSpeed,
			RVel:   geom.Radians(cfg.RotDegrees),
			Radius: cfg.CollisionRadius,
		},
		proj: raycast.Projector{
			SurfaceWidth:  float64(cfg.ScreenWidth),
			SurfaceHeight: float64(cfg.ScreenHeight),
			FOV:           geom.Radians(cfg.FOVDegrees),
			TileSize:      cfg.TileSize,
			ViewDist:      grid.MaxDist(),
			TexWidth:      wallTexSize,
			MaxHeight:     cfg.MaxColumnHeight,
		},
		wallTex:     newWallTexture(wallTexSize, wallTexSize),
		face:        face,
		showMinimap: cfg.ShowMinimap,
		showRays:    cfg.ShowRays,
		textured:    cfg.Textured,
	}
	g.spawn = g.player
	g.menu = newPauseMenu(face, g.resume, g.quit)
	g.buildMinimap()

	return g, nil
}

func (g *Game) resume() { g.paused = false }

func (g *Game) quit() { exit(0) }

// respawn restores the pose snapshot taken at startup.
func (g *Game) respawn() {
	if err := copier.Copy(&g.player, &g.spawn); err != nil {
		log.Printf("respawn: %v", err)
	}
}

func (g *Game) Update() error {
	g.handleInput()

	if g.paused {
		g.menu.update()
		return nil
	}

	// One raycast-and-project pass per tick, from a fresh pose snapshot.
	g.rays = raycast.CastRays(g.player.Pose, g.grid, g.proj.FOV, g.cfg.Rays)
	g.cols = g.proj.Project(g.rays, g.player.Pose)

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.drawScene(screen)
	if g.showMinimap {
		g.drawMinimap(screen)
	}
	g.drawHUD(screen)
	if g.paused {
		g.menu.draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.ScreenWidth, g.cfg.ScreenHeight
}
