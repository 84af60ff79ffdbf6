package config

// Direction is a set of held logical directions. At most two are meaningful
// at once; opposite directions cancel each other out.
type Direction uint8

const (
	DirNone  Direction = 0
	DirUp    Direction = 1 << 0
	DirDown  Direction = 1 << 1
	DirLeft  Direction = 1 << 2
	DirRight Direction = 1 << 3
)

// Has reports whether every direction in d2 is held in d.
func (d Direction) Has(d2 Direction) bool {
	return d2 != DirNone && d&d2 == d2
}

// Axis resolves the held directions to a unit step per axis (-1, 0, 1).
// Up is positive y.
func (d Direction) Axis() (x, y int) {
	if d.Has(DirRight) {
		x++
	}
	if d.Has(DirLeft) {
		x--
	}
	if d.Has(DirUp) {
		y++
	}
	if d.Has(DirDown) {
		y--
	}
	return x, y
}

// Facing returns the facing implied by the held directions.
func (d Direction) Facing() (Facing, bool) {
	return FacingFromSigns(d.Axis())
}

func (d Direction) String() string {
	if d == DirNone {
		return "none"
	}
	s := ""
	for _, n := range []struct {
		dir  Direction
		name string
	}{
		{DirUp, "up"},
		{DirDown, "down"},
		{DirLeft, "left"},
		{DirRight, "right"},
	} {
		if d.Has(n.dir) {
			if s != "" {
				s += "+"
			}
			s += n.name
		}
	}
	return s
}
