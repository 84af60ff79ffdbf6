package main

import (
	"image"

	"github.com/automoto/hallpass/assets"
	"github.com/automoto/hallpass/config"
	"github.com/automoto/hallpass/scenes"
	"github.com/automoto/hallpass/shared/leveldata"
	"github.com/automoto/hallpass/systems"
	"github.com/hajimehoshi/ebiten/v2"
	log "github.com/sirupsen/logrus"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(level *leveldata.CollisionData, saves *systems.SaveStore) *Game {
	return &Game{
		bounds: image.Rectangle{},
		scene:  scenes.NewHallwayScene(level, saves),
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	if config.Debug.LogCollisions {
		log.SetLevel(log.DebugLevel)
	}

	levels, names, err := leveldata.LoadAllLevels(assets.Levels(), config.Level.Directory)
	if err != nil {
		log.Fatalf("Failed to load levels: %v", err)
	}
	level := levels[names[0]]
	log.WithFields(log.Fields{
		"level":     level.Name,
		"obstacles": len(level.Solids),
		"npcs":      len(level.NPCSpawns),
	}).Info("level loaded")

	// A nil save store disables saving
	saves, _ := systems.OpenSaveStore("hallpass")

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle("hallpass")
	ebiten.SetTPS(config.C.TPS)

	if err := ebiten.RunGame(NewGame(level, saves)); err != nil {
		log.Fatal(err)
	}
}
