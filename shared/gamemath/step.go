package gamemath

import "math"

// DirectDelta returns the displacement for one frame of direct movement.
// ix and iy are the held axis directions (-1, 0 or 1). Diagonal movement is
// scaled by 1/sqrt(2) on both axes so its magnitude equals speed*dt.
func DirectDelta(ix, iy int, speed, dt float64) (dx, dy float64) {
	if ix == 0 && iy == 0 {
		return 0, 0
	}
	step := speed * dt
	if ix != 0 && iy != 0 {
		step /= math.Sqrt2
	}
	return float64(sign(ix)) * step, float64(sign(iy)) * step
}

// WaypointDelta returns the displacement for one frame of straight-line
// movement from (x, y) towards (tx, ty). arrived is true once the target is
// within tolerance, in which case the delta is zero.
//
// The step always has length speed*dt, so a step longer than the remaining
// distance passes the target. When both components of the step are non-zero
// each is divided by sqrt(2) a second time, so NPCs walk diagonals slower
// than cardinals.
func WaypointDelta(x, y, tx, ty, speed, dt, tolerance float64) (dx, dy float64, arrived bool) {
	ddx := tx - x
	ddy := ty - y
	dist := math.Hypot(ddx, ddy)
	if dist <= tolerance {
		return 0, 0, true
	}

	step := speed * dt
	dx = ddx / dist * step
	dy = ddy / dist * step
	if dx != 0 && dy != 0 {
		dx /= math.Sqrt2
		dy /= math.Sqrt2
	}
	return dx, dy, false
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
