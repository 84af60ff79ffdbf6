package gamemath

import (
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

// Polygon is a convex polygon whose vertices are stored relative to its
// position. Rotation is applied around Origin, which is also relative to the
// position.
type Polygon struct {
	X, Y     float64
	Points   []dmath.Vec2
	Origin   dmath.Vec2
	Rotation float64 // radians
}

// NewQuad builds the w x h quad (0,0) (w,0) (w,h) (0,h) with its rotation
// origin at the quad's centre.
func NewQuad(w, h float64) *Polygon {
	return &Polygon{
		Points: []dmath.Vec2{
			{X: 0, Y: 0},
			{X: w, Y: 0},
			{X: w, Y: h},
			{X: 0, Y: h},
		},
		Origin: dmath.Vec2{X: w / 2, Y: h / 2},
	}
}

// NewPolygon builds a polygon at (x, y) from relative vertices. The rotation
// origin is placed at the vertices' centroid.
func NewPolygon(x, y float64, points []dmath.Vec2) *Polygon {
	pts := make([]dmath.Vec2, len(points))
	copy(pts, points)
	p := &Polygon{X: x, Y: y, Points: pts}
	if len(pts) > 0 {
		var cx, cy float64
		for _, pt := range pts {
			cx += pt.X
			cy += pt.Y
		}
		p.Origin = dmath.Vec2{X: cx / float64(len(pts)), Y: cy / float64(len(pts))}
	}
	return p
}

// SetPosition moves the polygon without changing its vertices.
func (p *Polygon) SetPosition(x, y float64) {
	p.X = x
	p.Y = y
}

// Position returns the polygon's position.
func (p *Polygon) Position() (float64, float64) {
	return p.X, p.Y
}

// Vertices returns the polygon's vertices in world space.
func (p *Polygon) Vertices() []dmath.Vec2 {
	out := make([]dmath.Vec2, len(p.Points))
	if p.Rotation == 0 {
		for i, pt := range p.Points {
			out[i] = dmath.Vec2{X: p.X + pt.X, Y: p.Y + pt.Y}
		}
		return out
	}

	sin, cos := math.Sincos(p.Rotation)
	for i, pt := range p.Points {
		rx := pt.X - p.Origin.X
		ry := pt.Y - p.Origin.Y
		out[i] = dmath.Vec2{
			X: p.X + p.Origin.X + rx*cos - ry*sin,
			Y: p.Y + p.Origin.Y + rx*sin + ry*cos,
		}
	}
	return out
}

// Bounds returns the axis-aligned bounding rectangle of the world vertices.
func (p *Polygon) Bounds() Rect {
	verts := p.Vertices()
	if len(verts) == 0 {
		return Rect{X: p.X, Y: p.Y}
	}
	minX, minY := verts[0].X, verts[0].Y
	maxX, maxY := minX, minY
	for _, v := range verts[1:] {
		minX = math.Min(minX, v.X)
		minY = math.Min(minY, v.Y)
		maxX = math.Max(maxX, v.X)
		maxY = math.Max(maxY, v.Y)
	}
	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// IsConvex reports whether the polygon has at least three vertices, non-zero
// area, and turns the same way at every vertex. Collinear vertices are
// allowed.
func (p *Polygon) IsConvex() bool {
	n := len(p.Points)
	if n < 3 {
		return false
	}

	sign := 0
	var area float64
	for i := 0; i < n; i++ {
		a := p.Points[i]
		b := p.Points[(i+1)%n]
		c := p.Points[(i+2)%n]
		cross := (b.X-a.X)*(c.Y-b.Y) - (b.Y-a.Y)*(c.X-b.X)
		area += a.X*b.Y - b.X*a.Y
		switch {
		case cross > 0:
			if sign < 0 {
				return false
			}
			sign = 1
		case cross < 0:
			if sign > 0 {
				return false
			}
			sign = -1
		}
	}
	return sign != 0 && area != 0
}

// Intersects reports whether two convex polygons share interior area using
// the separating axis test. Polygons that only touch do not intersect, and
// degenerate polygons never intersect anything.
func (p *Polygon) Intersects(o *Polygon) bool {
	if p == nil || o == nil {
		return false
	}
	a := p.Vertices()
	b := o.Vertices()
	if len(a) < 3 || len(b) < 3 {
		return false
	}
	if p.Bounds().Empty() || o.Bounds().Empty() {
		return false
	}

	for _, poly := range [][]dmath.Vec2{a, b} {
		for i := range poly {
			j := (i + 1) % len(poly)
			axis := dmath.Vec2{X: poly[i].Y - poly[j].Y, Y: poly[j].X - poly[i].X}
			if axis.X == 0 && axis.Y == 0 {
				continue
			}
			minA, maxA := project(a, axis)
			minB, maxB := project(b, axis)
			if maxA <= minB || maxB <= minA {
				return false
			}
		}
	}
	return true
}

func project(verts []dmath.Vec2, axis dmath.Vec2) (min, max float64) {
	min = verts[0].X*axis.X + verts[0].Y*axis.Y
	max = min
	for _, v := range verts[1:] {
		d := v.X*axis.X + v.Y*axis.Y
		if d < min {
			min = d
		}
		if d > max {
			max = d
		}
	}
	return min, max
}
