package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownKind is returned when a map or save file names an actor kind
// that has no entry in Kinds.
var ErrUnknownKind = errors.New("unknown actor kind")

// ActorKind identifies what an actor is. Kinds differ only by configuration.
type ActorKind int

const (
	KindPlayer ActorKind = iota
	KindGuard
	KindJanitor
	KindStudent
	KindTeacher
	KindPet
)

// MovementType selects how an actor's per-frame delta is produced.
type MovementType int

const (
	MovementStatic   MovementType = iota // Never moves
	MovementDirect                       // Driven by held directional intent
	MovementWaypoint                     // Walks straight towards a target
)

// KindConfig contains the per-kind values an actor is created with
type KindConfig struct {
	Name         string
	SpritePath   string
	DialogueKey  string
	MovementType MovementType

	// Dimensions
	Width  float64
	Height float64

	// Movement
	Speed   float64 // World units per second
	CanWalk bool    // Whether waypoint motion is processed at all
}

// Kinds is the lookup table from actor kind to its configuration.
var Kinds map[ActorKind]KindConfig

func init() {
	Kinds = map[ActorKind]KindConfig{
		KindPlayer: {
			Name:         "player",
			SpritePath:   "images/spritesheets/player",
			MovementType: MovementDirect,
			Width:        16,
			Height:       32,
			Speed:        75,
			CanWalk:      true,
		},
		KindGuard: {
			Name:         "guard",
			SpritePath:   "images/spritesheets/guard",
			DialogueKey:  "guard_hall_pass",
			MovementType: MovementWaypoint,
			Width:        16,
			Height:       32,
			Speed:        50,
			CanWalk:      true,
		},
		KindJanitor: {
			Name:         "janitor",
			SpritePath:   "images/spritesheets/janitor",
			DialogueKey:  "janitor_mop",
			MovementType: MovementWaypoint,
			Width:        16,
			Height:       32,
			Speed:        35,
			CanWalk:      true,
		},
		KindStudent: {
			Name:         "student",
			SpritePath:   "images/spritesheets/student",
			DialogueKey:  "student_gossip",
			MovementType: MovementWaypoint,
			Width:        16,
			Height:       28,
			Speed:        60,
			CanWalk:      true,
		},
		KindTeacher: {
			Name:         "teacher",
			SpritePath:   "images/spritesheets/teacher",
			DialogueKey:  "teacher_detention",
			MovementType: MovementStatic,
			Width:        16,
			Height:       32,
			Speed:        0,
			CanWalk:      false,
		},
		KindPet: {
			Name:         "pet",
			SpritePath:   "images/spritesheets/pet",
			DialogueKey:  "pet_bark",
			MovementType: MovementWaypoint,
			Width:        12,
			Height:       12,
			Speed:        90,
			CanWalk:      true,
		},
	}
}

func (k ActorKind) String() string {
	if c, ok := Kinds[k]; ok {
		return c.Name
	}
	return "unknown"
}

// KindByName resolves a kind from its configured name (as written in map
// properties). Matching is case-insensitive.
func KindByName(name string) (ActorKind, error) {
	for kind, c := range Kinds {
		if strings.EqualFold(c.Name, name) {
			return kind, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// KindConfigFor returns the configuration for kind.
func KindConfigFor(kind ActorKind) (KindConfig, error) {
	c, ok := Kinds[kind]
	if !ok {
		return KindConfig{}, fmt.Errorf("%w: %d", ErrUnknownKind, int(kind))
	}
	return c, nil
}
