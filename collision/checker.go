package collision

import (
	"github.com/automoto/hallpass/config"
	"github.com/automoto/hallpass/shared/gamemath"
	"github.com/solarlune/resolv"
)

// Query describes one actor's proposed footprint.
type Query struct {
	Box     gamemath.Rect     // Proposed collision box
	Polygon *gamemath.Polygon // Proposed collision polygon, tested against polygon obstacles
	Object  *resolv.Object    // Collision object for the broad phase; optional

	// Other is the full bounds of at most one other actor. Only its feet
	// region blocks.
	Other *gamemath.Rect
}

// Hit describes what blocked a query.
type Hit struct {
	Obstacle *Obstacle // nil when the other actor blocked
	Actor    bool
}

// FeetBox narrows an actor's bounds to the region around its feet.
func FeetBox(bounds gamemath.Rect) gamemath.Rect {
	return gamemath.Rect{
		X: bounds.X,
		Y: bounds.Y + config.Collision.FeetLift,
		W: bounds.W,
		H: bounds.H - config.Collision.FeetShrink,
	}
}

// Blocked reports whether the query overlaps any obstacle or the other
// actor's feet. A nil set has no obstacles.
func (s *Set) Blocked(q Query) bool {
	_, hit := s.FirstHit(q)
	return hit
}

// FirstHit returns the first thing found blocking the query. Because the
// verdict is a plain OR, which hit is reported carries no meaning beyond
// diagnostics.
func (s *Set) FirstHit(q Query) (Hit, bool) {
	if q.Box.Empty() {
		return Hit{}, false
	}

	if q.Other != nil && q.Box.Overlaps(FeetBox(*q.Other)) {
		return Hit{Actor: true}, true
	}

	if s == nil {
		return Hit{}, false
	}

	for _, o := range s.candidates(q.Object) {
		if o.overlaps(q) {
			return Hit{Obstacle: o}, true
		}
	}
	return Hit{}, false
}

func (o *Obstacle) overlaps(q Query) bool {
	switch o.Shape {
	case ShapeRect:
		return q.Box.Overlaps(o.Rect)
	case ShapePolygon:
		return q.Polygon.Intersects(o.Polygon)
	}
	return false
}
