package components

import (
	"github.com/automoto/hallpass/config"
	"github.com/automoto/hallpass/shared/gamemath"
	"github.com/automoto/hallpass/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// FootprintData is an actor's position, size and the collision shapes
// derived from them. The collision box and polygon are only ever moved by the
// position setters, together.
type FootprintData struct {
	x, y          float64
	width, height float64

	box     *resolv.Object
	polygon *gamemath.Polygon
}

var Footprint = donburi.NewComponentType[FootprintData]()

// NewFootprint creates a footprint at (x, y) for an actor of the given size.
// The collision polygon is built here rather than on first use.
func NewFootprint(x, y, width, height float64) FootprintData {
	cw, ch := collisionSize(width, height)
	f := FootprintData{
		width:   width,
		height:  height,
		box:     resolv.NewObject(0, 0, cw, ch, tags.ResolvActor),
		polygon: gamemath.NewQuad(cw, ch),
	}
	f.box.SetShape(resolv.NewRectangle(0, 0, cw, ch))
	f.SetPosition(x, y)
	return f
}

func collisionSize(width, height float64) (float64, float64) {
	return width * config.Footprint.BoxWidthRatio, height * config.Footprint.BoxHeightRatio
}

// SetX moves the actor horizontally.
func (f *FootprintData) SetX(x float64) {
	f.x = x
	f.sync()
}

// SetY moves the actor vertically.
func (f *FootprintData) SetY(y float64) {
	f.y = y
	f.sync()
}

// SetPosition moves the actor.
func (f *FootprintData) SetPosition(x, y float64) {
	f.x = x
	f.y = y
	f.sync()
}

// Translate moves the actor by (dx, dy).
func (f *FootprintData) Translate(dx, dy float64) {
	f.SetPosition(f.x+dx, f.y+dy)
}

// sync recomputes the collision box and polygon positions from (x, y).
func (f *FootprintData) sync() {
	cw, ch := collisionSize(f.width, f.height)
	cx := f.x + f.width/2 - cw/2
	cy := f.y + f.height/2 - ch/2 - config.Footprint.YOffset

	if f.box != nil {
		f.box.X = cx
		f.box.Y = cy
		if f.box.Space != nil {
			f.box.Update()
		}
	}
	if f.polygon != nil {
		f.polygon.SetPosition(cx, cy)
	}
}

// Position returns the actor's position.
func (f *FootprintData) Position() (float64, float64) {
	return f.x, f.y
}

// X returns the actor's horizontal position.
func (f *FootprintData) X() float64 { return f.x }

// Y returns the actor's vertical position.
func (f *FootprintData) Y() float64 { return f.y }

// Size returns the actor's nominal width and height.
func (f *FootprintData) Size() (float64, float64) {
	return f.width, f.height
}

// Bounds returns the actor's full sprite rectangle.
func (f *FootprintData) Bounds() gamemath.Rect {
	return gamemath.Rect{X: f.x, Y: f.y, W: f.width, H: f.height}
}

// CollisionBox returns the collision box at the current position.
func (f *FootprintData) CollisionBox() gamemath.Rect {
	if f.box == nil {
		return gamemath.Rect{}
	}
	return gamemath.Rect{X: f.box.X, Y: f.box.Y, W: f.box.W, H: f.box.H}
}

// CollisionPolygon returns the collision polygon at the current position.
// Callers must not move it.
func (f *FootprintData) CollisionPolygon() *gamemath.Polygon {
	return f.polygon
}

// Object returns the resolv object backing the collision box.
func (f *FootprintData) Object() *resolv.Object {
	return f.box
}
