package config

import (
	"os"
)

// FootprintConfig controls how an actor's collision box is derived from its
// sprite bounds.
type FootprintConfig struct {
	BoxWidthRatio  float64 // Collision box width as a fraction of actor width
	BoxHeightRatio float64 // Collision box height as a fraction of actor height
	YOffset        float64 // Subtracted from the box's vertical centre to sit it at the feet
}

// MovementConfig contains movement-related configuration values
type MovementConfig struct {
	WaypointTolerance float64 // Distance at which an NPC counts as arrived
	FacingDeadZone    float64 // Per-axis deltas below this leave facing unchanged
	PatrolDwell       float64 // Seconds an NPC waits at each patrol point
	MaxFrameDelta     float64 // Upper clamp for a single frame's elapsed time (seconds)
}

// CollisionConfig contains collision-related configuration values
type CollisionConfig struct {
	// Feet hitbox applied to the other actor's bounds
	FeetShrink float64 // Height removed from the other actor's bounds
	FeetLift   float64 // Upward shift of the other actor's bounds

	// Broad phase
	CellSize int // resolv.Space cell size in world units
}

// LevelConfig contains map loading configuration
type LevelConfig struct {
	CollisionLayer string // Object layer queried for gameplay collision
	PlayerSpawn    string // Object layer holding the player spawn point
	NPCSpawn       string // Object layer holding NPC spawns
	Paths          string // Object layer holding NPC waypoint polylines
	Directory      string // Directory of .tmx files inside the asset filesystem
}

// CameraConfig contains camera follow configuration
type CameraConfig struct {
	FollowSmoothing float64 // Fraction of the remaining distance covered per frame (1 = locked)
}

// DebugConfig contains debug/testing options
type DebugConfig struct {
	DrawFootprints bool // Draw collision boxes and obstacles in the demo scene
	LogCollisions  bool // Log every reverted move at debug level
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	TPS    int
}

// Global configuration instances
var C *Config
var Footprint FootprintConfig
var Movement MovementConfig
var Collision CollisionConfig
var Level LevelConfig
var Camera CameraConfig
var Debug DebugConfig

func init() {
	C = &Config{
		Width:  480,
		Height: 320,
		TPS:    60,
	}

	Footprint = FootprintConfig{
		BoxWidthRatio:  0.5,
		BoxHeightRatio: 0.25,
		YOffset:        5,
	}

	Movement = MovementConfig{
		WaypointTolerance: 1,
		FacingDeadZone:    0.01,
		PatrolDwell:       1.5,
		MaxFrameDelta:     0.25,
	}

	Collision = CollisionConfig{
		FeetShrink: 24,
		FeetLift:   8,
		CellSize:   16,
	}

	Level = LevelConfig{
		CollisionLayer: "Collision",
		PlayerSpawn:    "PlayerSpawn",
		NPCSpawn:       "NPCSpawn",
		Paths:          "Paths",
		Directory:      "levels",
	}

	Camera = CameraConfig{
		FollowSmoothing: 0.1,
	}

	Debug = DebugConfig{
		DrawFootprints: os.Getenv("HALLPASS_DEBUG") != "",
		LogCollisions:  os.Getenv("HALLPASS_LOG_COLLISIONS") != "",
	}
}
