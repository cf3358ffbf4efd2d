// Package raycast is the projection pipeline: a DDA grid traversal that
// finds wall intersections, a field-of-view fan that sweeps it across the
// screen, and a projector that turns hits into drawable wall slices. All of
// it is pure computation over a read-only tilemap.Grid, recomputed from the
// current pose every frame.
package raycast

import (
	"math"

	"github.com/harbdog/raycaster-go/geom"

	"tilecast/tilemap"
)

// Pose is the read-only player snapshot a frame renders from.
type Pose struct {
	Position geom.Vector2
	Angle    float64 // heading in radians
}

// Ray records where a single ray hit a wall.
type Ray struct {
	Hit   geom.Vector2 // exact intersection point in world units
	TileX int
	TileY int
	Side  Side
	Angle float64 // the angle this ray was cast at
}

// Cast walks the grid from origin along angle and returns the first wall
// hit, or nil when the ray leaves the grid or reaches the grid's maximum
// distance without one. Scanning starts from the first grid line past
// the origin, so the origin's own tile is never reported.
func Cast(origin geom.Vector2, angle float64, grid *tilemap.Grid) *Ray {
	dx := math.Cos(angle)
	dy := math.Sin(angle)

	tileX, tileY := grid.TileCoord(origin.X, origin.Y)

	stepX, stepY := 1, 1
	if dx < 0 {
		stepX = -1
	}
	if dy < 0 {
		stepY = -1
	}

	// Traversal parameter t to the next vertical/horizontal grid line, and
	// the constant increment per full tile crossing. An axis with a zero
	// direction component never crosses its line family: +Inf loses every
	// comparison below, degenerating to single-axis stepping with no extra
	// branches in the loop.
	tv, dtv := math.Inf(1), math.Inf(1)
	if dx != 0 {
		next := float64(tileX) * grid.Size()
		if dx > 0 {
			next += grid.Size()
		}
		tv = (next - origin.X) / dx
		dtv = grid.Size() / math.Abs(dx)
	}

	th, dth := math.Inf(1), math.Inf(1)
	if dy != 0 {
		next := float64(tileY) * grid.Size()
		if dy > 0 {
			next += grid.Size()
		}
		th = (next - origin.Y) / dy
		dth = grid.Size() / math.Abs(dy)
	}

	var side Side
	for t := 0.0; t < grid.MaxDist(); {
		if tv < th {
			t = tv
			tv += dtv
			tileX += stepX
			if dx > 0 {
				side = SideRight
			} else {
				side = SideLeft
			}
		} else {
			t = th
			th += dth
			tileY += stepY
			if dy > 0 {
				side = SideDown
			} else {
				side = SideUp
			}
		}

		if !grid.Inside(tileX, tileY) {
			// traversal stops at the map edge, it must not continue past it
			return nil
		}

		if grid.BlockedAt(tileX, tileY) {
			return &Ray{
				Hit:   geom.Vector2{X: origin.X + t*dx, Y: origin.Y + t*dy},
				TileX: tileX,
				TileY: tileY,
				Side:  side,
				Angle: angle,
			}
		}
	}

	return nil
}
