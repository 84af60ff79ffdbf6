package leveldata

import (
	"fmt"
	"io/fs"
	stdmath "math"
	"path"
	"sort"
	"strings"

	"github.com/automoto/hallpass/config"
	"github.com/automoto/hallpass/shared/gamemath"
	"github.com/lafriks/go-tiled"
	"github.com/yohamta/donburi/features/math"
)

// LoadCollisionData parses a TMX file and returns its obstacles, spawns and
// paths. It takes an fs.FS so callers can pass embed.FS or os.DirFS.
func LoadCollisionData(fsys fs.FS, tmxPath string) (*CollisionData, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	data := &CollisionData{
		Name:      strings.TrimSuffix(path.Base(tmxPath), ".tmx"),
		MapWidth:  levelMap.Width * levelMap.TileWidth,
		MapHeight: levelMap.Height * levelMap.TileHeight,
		Paths:     make(map[string][]math.Vec2),
	}
	flip := float64(data.MapHeight)

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case config.Level.CollisionLayer:
			data.HasCollisionLayer = true
			for _, o := range og.Objects {
				solid, err := solidFromObject(o, flip)
				if err != nil {
					return nil, fmt.Errorf("%s: %w", tmxPath, err)
				}
				data.Solids = append(data.Solids, solid)
			}
		case config.Level.PlayerSpawn:
			for _, o := range og.Objects {
				x, y := toWorld(o.X, o.Y+o.Height, flip)
				data.SpawnPoints = append(data.SpawnPoints, SpawnPoint{
					X:     x,
					Y:     y,
					Index: o.Properties.GetInt("spawnIndex"),
				})
			}
		case config.Level.NPCSpawn:
			for _, o := range og.Objects {
				x, y := toWorld(o.X, o.Y+o.Height, flip)
				data.NPCSpawns = append(data.NPCSpawns, NPCSpawn{
					X:    x,
					Y:    y,
					Name: o.Name,
					Kind: o.Properties.GetString("kind"),
					Path: o.Properties.GetString("path"),
				})
			}
		case config.Level.Paths:
			for _, o := range og.Objects {
				if len(o.PolyLines) == 0 {
					continue
				}
				// Use the first polyline if multiple polylines exist
				polyline := o.PolyLines[0]
				if polyline.Points == nil || len(*polyline.Points) < 2 {
					continue
				}
				points := make([]math.Vec2, 0, len(*polyline.Points))
				for _, point := range *polyline.Points {
					x, y := toWorld(o.X+point.X, o.Y+point.Y, flip)
					points = append(points, math.Vec2{X: x, Y: y})
				}
				data.Paths[o.Name] = points
			}
		}
	}

	// Sort spawns left-to-right for consistent assignment
	sort.Slice(data.SpawnPoints, func(i, j int) bool {
		return data.SpawnPoints[i].X < data.SpawnPoints[j].X
	})

	return data, nil
}

// solidFromObject converts one collision layer object. Plain rectangles stay
// rectangles; rotated rectangles and polygons become polygons.
func solidFromObject(o *tiled.Object, flip float64) (Solid, error) {
	switch {
	case len(o.PolyLines) > 0:
		return Solid{}, fmt.Errorf("object %d is a polyline: %w", o.ID, ErrInvalidGeometry)
	case len(o.Ellipses) > 0:
		return Solid{}, fmt.Errorf("object %d is an ellipse: %w", o.ID, ErrInvalidGeometry)
	case len(o.Polygons) > 0:
		return polygonSolid(o, flip)
	}

	if o.Width <= 0 || o.Height <= 0 {
		return Solid{}, fmt.Errorf("object %d has no area: %w", o.ID, ErrInvalidGeometry)
	}

	if o.Rotation != 0 {
		corners := []math.Vec2{
			{X: 0, Y: 0},
			{X: o.Width, Y: 0},
			{X: o.Width, Y: o.Height},
			{X: 0, Y: o.Height},
		}
		return buildPolygon(o.ID, o.X, o.Y, o.Rotation, corners, flip)
	}

	x, y := toWorld(o.X, o.Y+o.Height, flip)
	return Solid{ID: o.ID, X: x, Y: y, W: o.Width, H: o.Height}, nil
}

func polygonSolid(o *tiled.Object, flip float64) (Solid, error) {
	polygon := o.Polygons[0]
	if polygon.Points == nil {
		return Solid{}, fmt.Errorf("object %d has no vertices: %w", o.ID, ErrInvalidGeometry)
	}
	pts := make([]math.Vec2, 0, len(*polygon.Points))
	for _, point := range *polygon.Points {
		pts = append(pts, math.Vec2{X: point.X, Y: point.Y})
	}
	return buildPolygon(o.ID, o.X, o.Y, o.Rotation, pts, flip)
}

// buildPolygon rotates map-space vertices around the object's anchor (Tiled
// rotates clockwise, in degrees), flips them into world space and validates
// the result.
func buildPolygon(id uint32, ox, oy, degrees float64, local []math.Vec2, flip float64) (Solid, error) {
	rad := degrees * stdmath.Pi / 180
	sin, cos := stdmath.Sincos(rad)

	world := make([]math.Vec2, len(local))
	for i, p := range local {
		rx, ry := p.X, p.Y
		if degrees != 0 {
			rx = p.X*cos - p.Y*sin
			ry = p.X*sin + p.Y*cos
		}
		x, y := toWorld(ox+rx, oy+ry, flip)
		world[i] = math.Vec2{X: x, Y: y}
	}

	poly := gamemath.NewPolygon(0, 0, world)
	if len(world) < 3 || poly.Bounds().Empty() {
		return Solid{}, fmt.Errorf("object %d is degenerate: %w", id, ErrInvalidGeometry)
	}
	if !poly.IsConvex() {
		return Solid{}, fmt.Errorf("object %d is not convex: %w", id, ErrInvalidGeometry)
	}

	b := poly.Bounds()
	return Solid{ID: id, X: b.X, Y: b.Y, W: b.W, H: b.H, Points: world}, nil
}

// toWorld converts a y-down map coordinate to the y-up world.
func toWorld(x, y, mapHeight float64) (float64, float64) {
	return x, mapHeight - y
}

// LoadAllLevels discovers all .tmx files in levelsDir within fsys, loads
// collision data for each, and returns a map keyed by stem name plus a
// sorted list of names.
func LoadAllLevels(fsys fs.FS, levelsDir string) (map[string]*CollisionData, []string, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("%s: %w", levelsDir, ErrNoLevels)
	}

	levels := make(map[string]*CollisionData, len(matches))
	names := make([]string, 0, len(matches))

	for _, p := range matches {
		data, err := LoadCollisionData(fsys, p)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", p, err)
		}
		levels[data.Name] = data
		names = append(names, data.Name)
	}

	sort.Strings(names)
	return levels, names, nil
}
