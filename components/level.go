package components

import (
	"github.com/automoto/hallpass/collision"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// LevelData is the active map. Obstacles is nil when the map has no
// collision layer, which makes every move clear.
type LevelData struct {
	Name      string
	Width     int
	Height    int
	Obstacles *collision.Set
	Paths     map[string][]math.Vec2
}

var Level = donburi.NewComponentType[LevelData]()
