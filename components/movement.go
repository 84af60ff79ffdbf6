package components

import (
	"github.com/automoto/hallpass/config"
	"github.com/yohamta/donburi"
)

type MovementData struct {
	Type   config.MovementType
	Speed  float64 // World units per second
	Moving bool

	// Last committed displacement, for animation and debugging
	LastDX float64
	LastDY float64
}

var Movement = donburi.NewComponentType[MovementData]()

// IntentData is the directional intent supplied by the input collaborator
// each frame.
type IntentData struct {
	Held config.Direction
}

var Intent = donburi.NewComponentType[IntentData]()
