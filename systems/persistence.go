package systems

import (
	"encoding/json"
	"math"

	"github.com/automoto/hallpass/components"
	"github.com/automoto/hallpass/tags"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi"
)

const saveKey = "progress"

// SaveState is the persisted game progress. Positions are stored as whole
// world units.
type SaveState struct {
	Level    string         `json:"level"`
	PlayerX  int            `json:"playerX"`
	PlayerY  int            `json:"playerY"`
	Counters map[string]int `json:"counters,omitempty"`
}

// itemStore is the part of *gdata.Manager the save store uses.
type itemStore interface {
	LoadItem(key string) ([]byte, error)
	SaveItem(key string, data []byte) error
}

// SaveStore reads and writes SaveState. The caller owns it; there is no
// package-level instance.
type SaveStore struct {
	items itemStore
}

// OpenSaveStore opens the gdata-backed store for appName.
func OpenSaveStore(appName string) (*SaveStore, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		log.WithError(err).Warn("Warning: Could not initialize persistence")
		return nil, err
	}
	return &SaveStore{items: m}, nil
}

// Load returns the saved state, or nil when nothing has been saved.
func (s *SaveStore) Load() (*SaveState, error) {
	if s == nil || s.items == nil {
		return nil, nil
	}

	data, err := s.items.LoadItem(saveKey)
	if err != nil {
		log.WithError(err).Warn("Warning: Could not load game progress")
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var state SaveState
	if err := json.Unmarshal(data, &state); err != nil {
		log.WithError(err).Warn("Warning: Could not parse saved progress")
		return nil, err
	}
	return &state, nil
}

// Save writes state, replacing any previous save.
func (s *SaveStore) Save(state *SaveState) error {
	if s == nil || s.items == nil || state == nil {
		return nil
	}

	data, err := json.Marshal(state)
	if err != nil {
		log.WithError(err).Warn("Warning: Could not serialize game progress")
		return err
	}

	if err := s.items.SaveItem(saveKey, data); err != nil {
		log.WithError(err).Warn("Warning: Could not save game progress")
		return err
	}
	return nil
}

// HasSave returns true if saved progress exists.
func (s *SaveStore) HasSave() bool {
	if s == nil || s.items == nil {
		return false
	}
	data, err := s.items.LoadItem(saveKey)
	return err == nil && len(data) > 0
}

// Clear removes any saved progress.
func (s *SaveStore) Clear() error {
	if s == nil || s.items == nil {
		return nil
	}

	// Save empty/nil data to clear the progress
	if err := s.items.SaveItem(saveKey, nil); err != nil {
		log.WithError(err).Warn("Warning: Could not clear game progress")
		return err
	}
	return nil
}

// CaptureSaveState snapshots the player's position and the loaded level.
// Returns nil when there is no player.
func CaptureSaveState(w donburi.World, counters map[string]int) *SaveState {
	entry, ok := tags.Player.First(w)
	if !ok {
		return nil
	}

	x, y := components.Footprint.Get(entry).Position()
	state := &SaveState{
		PlayerX:  int(math.Round(x)),
		PlayerY:  int(math.Round(y)),
		Counters: make(map[string]int, len(counters)),
	}
	for k, v := range counters {
		state.Counters[k] = v
	}
	if level, ok := components.Level.First(w); ok {
		state.Level = components.Level.Get(level).Name
	}
	return state
}

// ApplySaveState moves the player to the saved position. The move bypasses
// collision and becomes the player's committed position. Returns false when
// there is nothing to apply.
func ApplySaveState(w donburi.World, state *SaveState) bool {
	if state == nil {
		return false
	}
	entry, ok := tags.Player.First(w)
	if !ok {
		return false
	}

	fp := components.Footprint.Get(entry)
	fp.SetPosition(float64(state.PlayerX), float64(state.PlayerY))
	components.Corrector.Get(entry).Reset(fp)
	return true
}
