package raycast

import (
	"math"
	"reflect"
	"testing"

	"github.com/harbdog/raycaster-go/geom"
)

func TestCastRaysCount(t *testing.T) {
	grid := borderGrid(t)
	pose := Pose{Position: geom.Vector2{X: 15, Y: 15}}
	fov := geom.Radians(60)

	for _, count := range []int{2, 5, 64} {
		rays := CastRays(pose, grid, fov, count)
		if len(rays) != count {
			t.Errorf("CastRays(count=%d) returned %d results", count, len(rays))
		}
		for i, ray := range rays {
			if ray == nil {
				t.Errorf("count=%d: ray %d missed inside a closed border", count, i)
			}
		}
	}
}

func TestCastRaysOrder(t *testing.T) {
	grid := borderGrid(t)
	pose := Pose{Position: geom.Vector2{X: 15, Y: 15}, Angle: 1.2}
	fov := geom.Radians(60)

	rays := CastRays(pose, grid, fov, 5)

	// inclusive endpoints: first ray at heading-fov/2, last at
	// heading+fov/2, strictly ascending between
	if math.Abs(rays[0].Angle-(pose.Angle-fov/2)) > 1e-12 {
		t.Errorf("first angle = %v, want %v", rays[0].Angle, pose.Angle-fov/2)
	}
	if math.Abs(rays[4].Angle-(pose.Angle+fov/2)) > 1e-12 {
		t.Errorf("last angle = %v, want %v", rays[4].Angle, pose.Angle+fov/2)
	}
	for i := 1; i < len(rays); i++ {
		if rays[i].Angle <= rays[i-1].Angle {
			t.Errorf("angles not ascending at %d: %v then %v", i, rays[i-1].Angle, rays[i].Angle)
		}
	}
}

func TestCastRaysMissesKeepTheirSlot(t *testing.T) {
	// open corridor: rays near the heading escape east out of the grid,
	// the steep edge rays still reach the wall rows
	grid := gridFrom(t, []string{"###", "...", "###"}, 10)
	pose := Pose{Position: geom.Vector2{X: 15, Y: 15}}

	rays := CastRays(pose, grid, geom.Radians(60), 5)

	if len(rays) != 5 {
		t.Fatalf("got %d results, want 5", len(rays))
	}
	if rays[0] == nil || rays[4] == nil {
		t.Error("edge rays should hit the corridor walls")
	}
	for _, i := range []int{1, 2, 3} {
		if rays[i] != nil {
			t.Errorf("ray %d = %+v, want a miss out the open east end", i, rays[i])
		}
	}
}

func TestCastRaysTinyFanPanics(t *testing.T) {
	grid := borderGrid(t)
	pose := Pose{Position: geom.Vector2{X: 15, Y: 15}}

	defer func() {
		if recover() == nil {
			t.Error("CastRays(count=1) did not panic")
		}
	}()
	CastRays(pose, grid, geom.Radians(60), 1)
}

func TestCastRaysPure(t *testing.T) {
	grid := borderGrid(t)
	pose := Pose{Position: geom.Vector2{X: 14.25, Y: 16.5}, Angle: 0.7}

	a := CastRays(pose, grid, geom.Radians(66), 33)
	b := CastRays(pose, grid, geom.Radians(66), 33)
	if !reflect.DeepEqual(a, b) {
		t.Error("identical pose and grid produced different fans")
	}
}
