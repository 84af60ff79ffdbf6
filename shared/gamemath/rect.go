// Package gamemath holds the pure geometry and stepping math used by the
// motion core. It has no dependencies on ebitengine or the ECS so it can be
// tested headless.
package gamemath

// Rect is an axis-aligned rectangle anchored at its minimum corner.
type Rect struct {
	X, Y, W, H float64
}

// Right returns the maximum X edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Top returns the maximum Y edge.
func (r Rect) Top() float64 { return r.Y + r.H }

// Empty reports whether r has no area. Empty rectangles never overlap.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Overlaps reports whether r and o share interior area. Rectangles that only
// touch along an edge do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	if r.Empty() || o.Empty() {
		return false
	}
	return r.X < o.Right() &&
		r.Right() > o.X &&
		r.Y < o.Top() &&
		r.Top() > o.Y
}

// Center returns the midpoint of r.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// ClampFloat constrains a value to the range [min, max]
func ClampFloat(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
