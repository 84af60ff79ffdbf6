// Package collision holds the static obstacle set of a loaded map and the
// per-frame blocked test run against it.
package collision

import (
	"math"

	"github.com/automoto/hallpass/config"
	"github.com/automoto/hallpass/shared/gamemath"
	"github.com/automoto/hallpass/tags"
	"github.com/solarlune/resolv"
)

// Shape identifies the geometry an obstacle carries.
type Shape int

const (
	ShapeRect Shape = iota
	ShapePolygon
)

func (s Shape) String() string {
	switch s {
	case ShapeRect:
		return "rectangle"
	case ShapePolygon:
		return "polygon"
	}
	return "unknown"
}

// Obstacle is an immutable piece of level geometry.
type Obstacle struct {
	ID      uint32
	Shape   Shape
	Rect    gamemath.Rect     // Set for ShapeRect
	Polygon *gamemath.Polygon // Set for ShapePolygon
}

// NewRectObstacle creates a rectangle obstacle.
func NewRectObstacle(id uint32, r gamemath.Rect) Obstacle {
	return Obstacle{ID: id, Shape: ShapeRect, Rect: r}
}

// NewPolygonObstacle creates a convex polygon obstacle. The polygon must
// already be validated by the caller.
func NewPolygonObstacle(id uint32, p *gamemath.Polygon) Obstacle {
	return Obstacle{ID: id, Shape: ShapePolygon, Polygon: p}
}

// Bounds returns the obstacle's axis-aligned bounds.
func (o *Obstacle) Bounds() gamemath.Rect {
	if o.Shape == ShapePolygon && o.Polygon != nil {
		return o.Polygon.Bounds()
	}
	return o.Rect
}

// Set is the read-only obstacle list for one loaded map. When every obstacle
// lies in non-negative space a resolv.Space indexes them so actors only test
// obstacles in nearby cells.
type Set struct {
	obstacles []*Obstacle
	space     *resolv.Space
}

// NewSet builds the obstacle set for a map of the given size.
func NewSet(mapWidth, mapHeight int, obstacles []Obstacle) *Set {
	s := &Set{obstacles: make([]*Obstacle, 0, len(obstacles))}
	for i := range obstacles {
		o := obstacles[i]
		s.obstacles = append(s.obstacles, &o)
	}

	w, h, ok := spaceExtent(mapWidth, mapHeight, s.obstacles)
	if !ok {
		return s
	}

	cell := config.Collision.CellSize
	s.space = resolv.NewSpace(w, h, cell, cell)
	for _, o := range s.obstacles {
		b := o.Bounds()
		tag := tags.ResolvSolid
		if o.Shape == ShapePolygon {
			tag = tags.ResolvPolygon
		}
		// Padded by one unit so cell rounding can only add candidates.
		obj := resolv.NewObject(b.X-1, b.Y-1, b.W+2, b.H+2, tag)
		obj.SetShape(resolv.NewRectangle(0, 0, b.W+2, b.H+2))
		obj.Data = o
		s.space.Add(obj)
	}

	return s
}

// spaceExtent sizes the broad phase to cover the map and every obstacle,
// padded by one cell. ok is false when an obstacle reaches into negative
// coordinates, which the cell grid cannot represent.
func spaceExtent(mapWidth, mapHeight int, obstacles []*Obstacle) (w, h int, ok bool) {
	cell := config.Collision.CellSize
	if cell <= 0 {
		return 0, 0, false
	}

	maxX := float64(mapWidth)
	maxY := float64(mapHeight)
	for _, o := range obstacles {
		b := o.Bounds()
		if b.X < 0 || b.Y < 0 {
			return 0, 0, false
		}
		maxX = math.Max(maxX, b.Right())
		maxY = math.Max(maxY, b.Top())
	}

	w = (int(math.Ceil(maxX))/cell + 2) * cell
	h = (int(math.Ceil(maxY))/cell + 2) * cell
	return w, h, true
}

// Len returns the number of obstacles.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.obstacles)
}

// Obstacles returns the obstacles in load order.
func (s *Set) Obstacles() []*Obstacle {
	if s == nil {
		return nil
	}
	return s.obstacles
}

// Space returns the broad phase space, or nil when the set has none.
func (s *Set) Space() *resolv.Space {
	if s == nil {
		return nil
	}
	return s.space
}

// Track adds an actor's collision object to the broad phase.
func (s *Set) Track(obj *resolv.Object) {
	if s == nil || s.space == nil || obj == nil || obj.Space != nil {
		return
	}
	s.space.Add(obj)
}

// Untrack removes an actor's collision object from the broad phase.
func (s *Set) Untrack(obj *resolv.Object) {
	if s == nil || s.space == nil || obj == nil || obj.Space != s.space {
		return
	}
	s.space.Remove(obj)
}

// candidates returns the obstacles that may overlap obj. Without a broad
// phase, for an untracked object, or for an object smaller than one unit,
// every obstacle is a candidate. So is an object starting less than one unit
// from the origin: resolv rounds its far edge down into a negative cell,
// which the space does not have.
func (s *Set) candidates(obj *resolv.Object) []*Obstacle {
	if s.space == nil || obj == nil || obj.Space != s.space || obj.W < 1 || obj.H < 1 {
		return s.obstacles
	}
	if obj.X < 1 || obj.Y < 1 {
		return s.obstacles
	}

	check := obj.Check(0, 0, tags.ResolvSolid, tags.ResolvPolygon)
	if check == nil {
		return nil
	}

	found := make([]*Obstacle, 0, len(check.Objects))
	for _, o := range check.Objects {
		if ob, ok := o.Data.(*Obstacle); ok {
			found = append(found, ob)
		}
	}
	return found
}
