package raycast

import "tilecast/tilemap"

// CastRays sweeps the field of view into count evenly spaced rays and casts
// each one, returning exactly count results ordered left to right across
// the screen. Misses keep their slot as nil so indices line up with screen
// columns.
//
// Sampling uses inclusive endpoints: the first ray is at pose.Angle-fov/2,
// the last at pose.Angle+fov/2, with step fov/(count-1). That requires
// count >= 2, which callers establish at configuration time.
func CastRays(pose Pose, grid *tilemap.Grid, fov float64, count int) []*Ray {
	if count < 2 {
		panic("raycast: ray fan needs at least two rays")
	}

	start := pose.Angle - fov/2
	step := fov / float64(count-1)

	rays := make([]*Ray, count)
	for i := range rays {
		rays[i] = Cast(pose.Position, start+float64(i)*step, grid)
	}
	return rays
}
