package raycast

import (
	"math"

	"github.com/harbdog/raycaster-go/geom"
)

// Projector converts hit records into drawable screen columns for a fixed
// viewport. Configure the fields once; Project is then a pure function of
// the frame's rays and pose.
type Projector struct {
	SurfaceWidth  float64
	SurfaceHeight float64
	FOV           float64 // radians, must match the fan the rays came from
	TileSize      float64
	ViewDist      float64 // distance at which the shade fades to black
	TexWidth      int     // columns in the wall texture strip, 0 when flat-shaded
	MaxHeight     float64 // clamp for degenerate close-up slices, 0 disables
}

// Column is one drawable vertical wall slice. Index is the screen column
// the source ray was cast for, so ordering survives even though misses
// produce no column at all.
type Column struct {
	Index     int
	X         float64
	Width     float64
	Top       float64
	Height    float64
	Shade     uint8 // 255 at the camera, 0 at ViewDist
	TexColumn int   // source column in the texture strip
}

// Project turns a ray fan into wall slices. Misses and degenerate hits
// (non-positive distances from grazing-angle edge cases) are skipped rather
// than drawn; an all-miss fan yields an empty slice.
func (pr *Projector) Project(rays []*Ray, pose Pose) []Column {
	if len(rays) == 0 {
		return nil
	}

	// Distance from the camera to the projection plane, derived from the
	// FOV and viewport width once per frame.
	planeDist := (pr.SurfaceWidth / 2) / math.Tan(pr.FOV/2)
	colWidth := pr.SurfaceWidth / float64(len(rays))

	cols := make([]Column, 0, len(rays))
	for i, ray := range rays {
		if ray == nil {
			continue
		}

		dist := geom.Distance(pose.Position.X, pose.Position.Y, ray.Hit.X, ray.Hit.Y)
		if dist <= 0 {
			continue
		}

		// Fisheye correction: rays at the edge of the fan travel farther
		// than the perpendicular distance to the wall plane, so scale by
		// the cosine of the angle off the heading.
		perp := dist * math.Cos(ray.Angle-pose.Angle)
		if perp <= 0 {
			continue
		}

		height := pr.TileSize / perp * planeDist
		if pr.MaxHeight > 0 && height > pr.MaxHeight {
			height = pr.MaxHeight
		}

		shade := 1 - math.Min(perp/pr.ViewDist, 1)

		col := Column{
			Index:  i,
			X:      float64(i) * colWidth,
			Width:  colWidth,
			Top:    (pr.SurfaceHeight - height) / 2,
			Height: height,
			Shade:  uint8(255 * shade),
		}
		if pr.TexWidth > 0 {
			col.TexColumn = pr.texColumn(ray)
		}
		cols = append(cols, col)
	}
	return cols
}

// texColumn picks the texture strip column from the fractional tile offset
// of the hit point. Left/Right crossings vary along y, Up/Down along x.
func (pr *Projector) texColumn(ray *Ray) int {
	offset := ray.Hit.X
	if ray.Side.Vertical() {
		offset = ray.Hit.Y
	}
	offset = math.Mod(offset, pr.TileSize)
	if offset < 0 {
		offset += pr.TileSize
	}

	idx := math.Floor(offset / pr.TileSize * float64(pr.TexWidth))
	return int(geom.Clamp(idx, 0, float64(pr.TexWidth-1)))
}
