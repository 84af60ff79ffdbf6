package config

// Facing is the discrete eight-way direction an actor looks towards. It only
// drives animation selection.
type Facing int

const (
	FacingFront Facing = iota
	FacingBack
	FacingLeft
	FacingRight
	FacingFrontLeft
	FacingFrontRight
	FacingBackLeft
	FacingBackRight
)

// FacingToName maps Facing to the sprite sheet row name used by the renderer.
var FacingToName = map[Facing]string{
	FacingFront:      "front",
	FacingBack:       "back",
	FacingLeft:       "left",
	FacingRight:      "right",
	FacingFrontLeft:  "front_left",
	FacingFrontRight: "front_right",
	FacingBackLeft:   "back_left",
	FacingBackRight:  "back_right",
}

func (f Facing) String() string {
	if name, ok := FacingToName[f]; ok {
		return name
	}
	return "unknown"
}

// FacingFromSigns maps the sign of a horizontal and vertical component to a
// facing. World space is y-up, so a positive sy faces the back. ok is false
// when both signs are zero.
func FacingFromSigns(sx, sy int) (f Facing, ok bool) {
	switch {
	case sx > 0 && sy > 0:
		return FacingBackRight, true
	case sx < 0 && sy > 0:
		return FacingBackLeft, true
	case sx > 0 && sy < 0:
		return FacingFrontRight, true
	case sx < 0 && sy < 0:
		return FacingFrontLeft, true
	case sx > 0:
		return FacingRight, true
	case sx < 0:
		return FacingLeft, true
	case sy > 0:
		return FacingBack, true
	case sy < 0:
		return FacingFront, true
	}
	return FacingFront, false
}
