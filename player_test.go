package main

import (
	"math"
	"testing"

	"github.com/harbdog/raycaster-go/geom"

	"tilecast/raycast"
	"tilecast/tilemap"
)

func testGrid(t *testing.T) *tilemap.Grid {
	t.Helper()
	cells, err := parseLevel([]string{"#####", "#...#", "#####"})
	if err != nil {
		t.Fatal(err)
	}
	grid, err := tilemap.NewGrid(cells, 10)
	if err != nil {
		t.Fatal(err)
	}
	return grid
}

func TestPlayerStep(t *testing.T) {
	grid := testGrid(t)
	p := Player{
		Pose:   raycast.Pose{Position: geom.Vector2{X: 15, Y: 15}, Angle: 0},
		Vel:    4,
		Radius: 2,
	}

	// open corridor to the east
	p.step(1, grid)
	if p.Pose.Position.X != 19 || p.Pose.Position.Y != 15 {
		t.Fatalf("after step east got (%v, %v), want (19, 15)", p.Pose.Position.X, p.Pose.Position.Y)
	}

	// stepping back goes west through the same corridor
	p.step(-1, grid)
	if p.Pose.Position.X != 15 {
		t.Fatalf("after step west got x=%v, want 15", p.Pose.Position.X)
	}
}

func TestPlayerStepBlockedByWall(t *testing.T) {
	grid := testGrid(t)
	p := Player{
		Pose:   raycast.Pose{Position: geom.Vector2{X: 35, Y: 15}, Angle: 0},
		Vel:    4,
		Radius: 2,
	}

	// the collision circle would cross into the east border wall
	p.step(1, grid)
	if p.Pose.Position.X != 35 {
		t.Errorf("blocked step moved the player to x=%v", p.Pose.Position.X)
	}
}

func TestPlayerRotateWraps(t *testing.T) {
	p := Player{RVel: math.Pi / 2}

	p.rotate(-1)
	if math.Abs(p.Pose.Angle-3*math.Pi/2) > 1e-12 {
		t.Errorf("after one left turn angle = %v, want 3π/2", p.Pose.Angle)
	}

	// a full loop of quarter turns comes back to the starting heading
	// without the angle ever leaving the canonical range
	for i := 0; i < 4; i++ {
		p.rotate(1)
		if p.Pose.Angle < 0 || p.Pose.Angle >= 2*math.Pi {
			t.Fatalf("angle %v left the [0, 2π) range", p.Pose.Angle)
		}
	}
	s, c := math.Sincos(p.Pose.Angle - 3*math.Pi/2)
	if math.Abs(s) > 1e-9 || math.Abs(c-1) > 1e-9 {
		t.Errorf("after a full loop heading drifted to %v", p.Pose.Angle)
	}
}
