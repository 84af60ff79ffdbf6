package factory

import (
	"github.com/automoto/hallpass/collision"
	"github.com/automoto/hallpass/shared/gamemath"
	"github.com/automoto/hallpass/shared/leveldata"
)

// CreateObstacles builds the static obstacle set for a map's collision layer.
func CreateObstacles(data *leveldata.CollisionData) *collision.Set {
	obstacles := make([]collision.Obstacle, 0, len(data.Solids))
	for _, s := range data.Solids {
		obstacles = append(obstacles, obstacleFromSolid(s))
	}
	return collision.NewSet(data.MapWidth, data.MapHeight, obstacles)
}

func obstacleFromSolid(s leveldata.Solid) collision.Obstacle {
	if s.IsPolygon() {
		return collision.NewPolygonObstacle(s.ID, gamemath.NewPolygon(0, 0, s.Points))
	}
	return collision.NewRectObstacle(s.ID, gamemath.Rect{X: s.X, Y: s.Y, W: s.W, H: s.H})
}
