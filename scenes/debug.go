package scenes

import (
	"image/color"

	"github.com/automoto/hallpass/collision"
	"github.com/automoto/hallpass/components"
	"github.com/automoto/hallpass/config"
	"github.com/automoto/hallpass/shared/gamemath"
	"github.com/automoto/hallpass/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	obstacleColor = color.RGBA{100, 100, 100, 255} // Grey
	playerColor   = color.RGBA{0, 0, 255, 255}     // Blue
	npcColor      = color.RGBA{255, 0, 0, 255}     // Red
	boxColor      = color.RGBA{255, 255, 0, 255}   // Yellow
)

// view converts y-up world coordinates to screen pixels, centred on the
// camera.
type view struct {
	camX, camY float64
	mapHeight  float64
}

func newView(w donburi.World, screen *ebiten.Image, mapHeight float64) view {
	v := view{mapHeight: mapHeight}
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	if entry, ok := components.Camera.First(w); ok {
		camera := components.Camera.Get(entry)
		v.camX = float64(width)/2 - camera.Position.X
		v.camY = float64(height)/2 - (mapHeight - camera.Position.Y)
	}
	return v
}

func (v view) point(x, y float64) (float32, float32) {
	return float32(x + v.camX), float32(v.mapHeight - y + v.camY)
}

func (v view) rect(screen *ebiten.Image, r gamemath.Rect, c color.Color) {
	x, y := v.point(r.X, r.Top())
	w, h := float32(r.W), float32(r.H)
	vector.FillRect(screen, x, y, w, 1, c, false)     // Top
	vector.FillRect(screen, x, y+h-1, w, 1, c, false) // Bottom
	vector.FillRect(screen, x, y, 1, h, c, false)     // Left
	vector.FillRect(screen, x+w-1, y, 1, h, c, false) // Right
}

func (v view) polygon(screen *ebiten.Image, p *gamemath.Polygon, c color.Color) {
	verts := p.Vertices()
	for i := range verts {
		j := (i + 1) % len(verts)
		x0, y0 := v.point(verts[i].X, verts[i].Y)
		x1, y1 := v.point(verts[j].X, verts[j].Y)
		vector.StrokeLine(screen, x0, y0, x1, y1, 1, c, false)
	}
}

// drawDebug outlines obstacles, actor bounds and collision boxes.
func drawDebug(e *ecs.ECS, screen *ebiten.Image) {
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)
	v := newView(e.World, screen, float64(level.Height))

	for _, o := range level.Obstacles.Obstacles() {
		if o.Shape == collision.ShapePolygon {
			v.polygon(screen, o.Polygon, obstacleColor)
			continue
		}
		v.rect(screen, o.Rect, obstacleColor)
	}

	drawActor := func(entry *donburi.Entry, c color.Color) {
		fp := components.Footprint.Get(entry)
		v.rect(screen, fp.Bounds(), c)
		if config.Debug.DrawFootprints {
			v.rect(screen, fp.CollisionBox(), boxColor)
		}
	}
	tags.NPC.Each(e.World, func(entry *donburi.Entry) { drawActor(entry, npcColor) })
	tags.Player.Each(e.World, func(entry *donburi.Entry) { drawActor(entry, playerColor) })
}
