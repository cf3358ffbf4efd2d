package main

import (
	"math"

	"github.com/harbdog/raycaster-go/geom"

	"tilecast/raycast"
	"tilecast/tilemap"
)

// Player is the presentation layer's mutable state. The core only ever sees
// the Pose snapshot, taken fresh each frame, which keeps the raycasting
// functions pure.
type Player struct {
	Pose   raycast.Pose
	Vel    float64 // world units per tick
	RVel   float64 // radians per tick
	Radius float64 // collision radius in world units
}

// step moves the player along (dir > 0) or against (dir < 0) the heading,
// refusing moves that would put the collision circle into a wall.
func (p *Player) step(dir float64, grid *tilemap.Grid) {
	move := geom.LineFromAngle(p.Pose.Position.X, p.Pose.Position.Y, p.Pose.Angle, p.Vel*dir)
	next := geom.Vector2{X: move.X2, Y: move.Y2}
	if grid.Collides(next, p.Radius) {
		return
	}
	p.Pose.Position = next
}

// rotate turns the heading by dir steps of the rotation speed and wraps it
// into [0, 2π).
func (p *Player) rotate(dir float64) {
	p.Pose.Angle += dir * p.RVel
	for p.Pose.Angle < 0 {
		p.Pose.Angle += 2 * math.Pi
	}
	for p.Pose.Angle >= 2*math.Pi {
		p.Pose.Angle -= 2 * math.Pi
	}
}
