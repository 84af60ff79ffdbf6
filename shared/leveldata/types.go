// Package leveldata provides TMX level parsing. It has no dependencies on
// ebitengine, donburi ECS, or resolv: pure data only.
//
// Tiled maps are y-down. Everything returned here is already converted to the
// y-up world used by the motion core, with a rectangle's (X, Y) at its
// bottom-left corner.
package leveldata

import (
	"errors"

	"github.com/yohamta/donburi/features/math"
)

var (
	// ErrInvalidGeometry is returned for collision objects the core cannot
	// test against: polylines, ellipses, points, and non-convex or
	// degenerate polygons.
	ErrInvalidGeometry = errors.New("invalid obstacle geometry")

	// ErrNoLevels is returned when a level directory has no .tmx files.
	ErrNoLevels = errors.New("no levels found")
)

// CollisionData holds everything the motion core needs from a TMX level file.
type CollisionData struct {
	Name      string
	MapWidth  int
	MapHeight int

	// HasCollisionLayer is false when the map has no designated collision
	// layer. Solids is empty in that case.
	HasCollisionLayer bool
	Solids            []Solid

	SpawnPoints []SpawnPoint
	NPCSpawns   []NPCSpawn
	Paths       map[string][]math.Vec2
}

// Solid is one static obstacle. Rectangles leave Points nil.
type Solid struct {
	ID         uint32
	X, Y, W, H float64
	Points     []math.Vec2 // Absolute world vertices for polygons
}

// IsPolygon reports whether the solid carries polygon vertices.
func (s Solid) IsPolygon() bool {
	return len(s.Points) > 0
}

// SpawnPoint represents a player spawn location.
type SpawnPoint struct {
	X, Y  float64
	Index int
}

// NPCSpawn places an NPC of a named kind, optionally on a named path.
type NPCSpawn struct {
	X, Y float64
	Name string
	Kind string
	Path string
}
