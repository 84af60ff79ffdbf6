package components

import (
	"github.com/automoto/hallpass/config"
	"github.com/yohamta/donburi"
)

// ActorData identifies what an actor is. Behaviour differences between kinds
// come from the cached KindConfig, never from the kind itself.
type ActorData struct {
	Name   string
	Kind   config.ActorKind
	Config *config.KindConfig
}

var Actor = donburi.NewComponentType[ActorData]()
