package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/hallpass/input"
	"github.com/automoto/hallpass/shared/leveldata"
	"github.com/automoto/hallpass/systems"
	"github.com/automoto/hallpass/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// LayerDebug is the only render layer; it draws outlines over a black screen.
const LayerDebug ecs.LayerID = iota

var log = logrus.WithField("pkg", "scenes")

type HallwayScene struct {
	ecs      *ecs.ECS
	level    *leveldata.CollisionData
	saves    *systems.SaveStore
	counters map[string]int
	once     sync.Once
}

// NewHallwayScene creates the scene for a loaded level. saves may be nil,
// which disables saving.
func NewHallwayScene(level *leveldata.CollisionData, saves *systems.SaveStore) *HallwayScene {
	return &HallwayScene{
		level:    level,
		saves:    saves,
		counters: make(map[string]int),
	}
}

func (hs *HallwayScene) Update() {
	hs.once.Do(hs.configure)
	hs.ecs.Update()
	hs.handleSaveKeys()
}

func (hs *HallwayScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if hs.ecs == nil {
		return
	}
	hs.ecs.Draw(screen)
}

func (hs *HallwayScene) configure() {
	e := ecs.NewECS(donburi.NewWorld())

	// Input must run before motion
	e.AddSystem(updateInput)
	e.AddSystem(updateMotion)

	e.AddRenderer(LayerDebug, drawDebug)

	hs.ecs = e

	factory.SpawnLevel(e.World, hs.level)
	hs.restore()
}

// restore applies a save made on this level, if there is one.
func (hs *HallwayScene) restore() {
	saved, err := hs.saves.Load()
	if err != nil || saved == nil {
		return
	}
	if saved.Level != hs.level.Name {
		log.WithFields(logrus.Fields{
			"saved":  saved.Level,
			"loaded": hs.level.Name,
		}).Info("ignoring save for another level")
		return
	}
	if systems.ApplySaveState(hs.ecs.World, saved) {
		for k, v := range saved.Counters {
			hs.counters[k] = v
		}
	}
}

func (hs *HallwayScene) handleSaveKeys() {
	if hs.saves == nil {
		return
	}
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyF5):
		state := systems.CaptureSaveState(hs.ecs.World, hs.counters)
		if state == nil {
			return
		}
		state.Counters["saves"]++
		if err := hs.saves.Save(state); err == nil {
			hs.counters["saves"] = state.Counters["saves"]
			log.WithField("saves", hs.counters["saves"]).Info("game saved")
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyF9):
		hs.restore()
	case inpututil.IsKeyJustPressed(ebiten.KeyF12):
		_ = hs.saves.Clear()
	}
}

func updateInput(e *ecs.ECS) {
	input.UpdateIntents(e.World)
}

func updateMotion(e *ecs.ECS) {
	systems.Update(e.World, 1/float64(ebiten.TPS()))
	systems.UpdateCamera(e.World)
}
