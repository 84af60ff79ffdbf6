package collision

import (
	"testing"

	"github.com/automoto/hallpass/shared/gamemath"
	"github.com/automoto/hallpass/tags"
	"github.com/solarlune/resolv"
	dmath "github.com/yohamta/donburi/features/math"
)

func boxQuery(x, y, w, h float64) Query {
	poly := gamemath.NewQuad(w, h)
	poly.SetPosition(x, y)
	return Query{
		Box:     gamemath.Rect{X: x, Y: y, W: w, H: h},
		Polygon: poly,
	}
}

func TestBlockedRectangle(t *testing.T) {
	set := NewSet(320, 240, []Obstacle{
		NewRectObstacle(1, gamemath.Rect{X: 170, Y: 95, W: 20, H: 20}),
	})

	if !set.Blocked(boxQuery(179, 109, 8, 8)) {
		t.Error("expected box inside obstacle to be blocked")
	}
	if set.Blocked(boxQuery(104, 109, 8, 8)) {
		t.Error("expected box left of obstacle to be clear")
	}
	if set.Blocked(boxQuery(162, 100, 8, 8)) {
		t.Error("expected box touching obstacle edge to be clear")
	}
}

func TestBlockedPolygon(t *testing.T) {
	ramp := gamemath.NewPolygon(100, 100, []dmath.Vec2{{X: 0, Y: 0}, {X: 40, Y: 0}, {X: 0, Y: 40}})
	set := NewSet(320, 240, []Obstacle{NewPolygonObstacle(7, ramp)})

	if !set.Blocked(boxQuery(104, 104, 8, 8)) {
		t.Error("expected box inside triangle to be blocked")
	}

	// Inside the triangle's bounding box but past the hypotenuse.
	if set.Blocked(boxQuery(125, 125, 8, 8)) {
		t.Error("expected box beyond hypotenuse to be clear")
	}
}

func TestBlockedOtherActorFeet(t *testing.T) {
	var set *Set
	other := gamemath.Rect{X: 100, Y: 100, W: 16, H: 32}

	// Feet region of other is y in [108, 116).
	q := boxQuery(104, 110, 8, 4)
	q.Other = &other
	if !set.Blocked(q) {
		t.Error("expected box over other actor's feet to be blocked")
	}

	// Overlaps the other actor's head but not its feet.
	q = boxQuery(104, 124, 8, 4)
	q.Other = &other
	if set.Blocked(q) {
		t.Error("expected box over other actor's head to be clear")
	}

	hit, ok := set.FirstHit(boxQuery(104, 110, 8, 4))
	if ok || hit.Actor {
		t.Error("expected no hit without another actor")
	}
}

func TestBlockedMissingLayer(t *testing.T) {
	var set *Set
	if set.Blocked(boxQuery(0, 0, 8, 8)) {
		t.Error("expected nil set to never block")
	}
	if set.Len() != 0 {
		t.Errorf("expected nil set to be empty, got %d", set.Len())
	}
}

func TestBlockedDegenerateBox(t *testing.T) {
	set := NewSet(320, 240, []Obstacle{
		NewRectObstacle(1, gamemath.Rect{X: 0, Y: 0, W: 320, H: 240}),
	})

	if set.Blocked(boxQuery(50, 50, 0, 8)) {
		t.Error("expected zero-width box to never block")
	}
	if set.Blocked(boxQuery(50, 50, -4, -8)) {
		t.Error("expected negative-size box to never block")
	}
}

func TestBlockedOrderIndependent(t *testing.T) {
	a := NewRectObstacle(1, gamemath.Rect{X: 0, Y: 0, W: 10, H: 10})
	b := NewRectObstacle(2, gamemath.Rect{X: 50, Y: 50, W: 10, H: 10})

	forward := NewSet(100, 100, []Obstacle{a, b})
	backward := NewSet(100, 100, []Obstacle{b, a})

	for _, q := range []Query{boxQuery(5, 5, 2, 2), boxQuery(55, 55, 2, 2), boxQuery(30, 30, 2, 2)} {
		if forward.Blocked(q) != backward.Blocked(q) {
			t.Errorf("verdict for %+v depends on obstacle order", q.Box)
		}
	}
}

func TestBroadPhaseMatchesExhaustive(t *testing.T) {
	obstacles := []Obstacle{
		NewRectObstacle(1, gamemath.Rect{X: 170, Y: 95, W: 20, H: 20}),
		NewRectObstacle(2, gamemath.Rect{X: 16, Y: 16, W: 16, H: 16}),
		NewPolygonObstacle(3, gamemath.NewPolygon(200, 40, []dmath.Vec2{{X: 0, Y: 0}, {X: 30, Y: 0}, {X: 15, Y: 30}})),
		NewRectObstacle(4, gamemath.Rect{X: 0, Y: 0, W: 12, H: 12}),
	}
	set := NewSet(320, 240, obstacles)
	if set.Space() == nil {
		t.Fatal("expected broad phase for obstacles in positive space")
	}

	obj := resolv.NewObject(0, 0, 8, 8, tags.ResolvActor)
	set.Track(obj)
	defer set.Untrack(obj)

	positions := [][2]float64{
		{179, 109}, {162, 100}, {20, 20}, {31.5, 20}, {32, 20},
		{210, 45}, {228, 65}, {100, 100}, {300, 200},
		{-7.5, -0.5}, {-7.5, 4}, {4, -7.5}, {-1.05, -0.5}, {0.5, 0.5}, {-8, 4},
	}
	for _, p := range positions {
		obj.X, obj.Y = p[0], p[1]
		obj.Update()

		q := boxQuery(p[0], p[1], 8, 8)
		exhaustive := set.Blocked(q)
		q.Object = obj
		broad := set.Blocked(q)
		if broad != exhaustive {
			t.Errorf("at %v: broad phase verdict %v, exhaustive %v", p, broad, exhaustive)
		}
	}
}

func TestNegativeObstacleDisablesBroadPhase(t *testing.T) {
	set := NewSet(320, 240, []Obstacle{
		NewRectObstacle(1, gamemath.Rect{X: -10, Y: 0, W: 20, H: 20}),
	})
	if set.Space() != nil {
		t.Error("expected no broad phase when an obstacle lies in negative space")
	}
	if !set.Blocked(boxQuery(-4, 4, 8, 8)) {
		t.Error("expected exhaustive check to still block")
	}
}
