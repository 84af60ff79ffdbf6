package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	NPC    = donburi.NewTag().SetName("NPC")
	Level  = donburi.NewTag().SetName("Level")
)

// Resolv tags for the collision broad phase
const (
	ResolvSolid   = "solid"
	ResolvPolygon = "polygon"
	ResolvActor   = "actor"
)
