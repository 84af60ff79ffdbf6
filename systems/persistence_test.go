package systems

import (
	"errors"
	"testing"

	"github.com/automoto/hallpass/components"
	"github.com/automoto/hallpass/systems/factory"
)

type memoryStore struct {
	items   map[string][]byte
	failErr error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{items: make(map[string][]byte)}
}

func (m *memoryStore) LoadItem(key string) ([]byte, error) {
	if m.failErr != nil {
		return nil, m.failErr
	}
	return m.items[key], nil
}

func (m *memoryStore) SaveItem(key string, data []byte) error {
	if m.failErr != nil {
		return m.failErr
	}
	m.items[key] = data
	return nil
}

func TestSaveStoreRoundTrip(t *testing.T) {
	store := &SaveStore{items: newMemoryStore()}

	if state, err := store.Load(); err != nil || state != nil {
		t.Fatalf("expected empty store, got %+v, %v", state, err)
	}
	if store.HasSave() {
		t.Error("expected no save yet")
	}

	in := &SaveState{Level: "hallway", PlayerX: 12, PlayerY: -3, Counters: map[string]int{"passes": 2}}
	if err := store.Save(in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !store.HasSave() {
		t.Error("expected a save")
	}

	out, err := store.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Level != "hallway" || out.PlayerX != 12 || out.PlayerY != -3 || out.Counters["passes"] != 2 {
		t.Errorf("expected %+v, got %+v", in, out)
	}

	if err := store.Clear(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.HasSave() {
		t.Error("expected save to be cleared")
	}
}

func TestSaveStoreFailures(t *testing.T) {
	backend := newMemoryStore()
	backend.failErr = errors.New("disk full")
	store := &SaveStore{items: backend}

	if err := store.Save(&SaveState{}); !errors.Is(err, backend.failErr) {
		t.Errorf("expected disk full, got %v", err)
	}
	// A failed read is treated as no save.
	if state, err := store.Load(); state != nil || err != nil {
		t.Errorf("expected nil state and error, got %+v, %v", state, err)
	}

	var nilStore *SaveStore
	if err := nilStore.Save(&SaveState{}); err != nil {
		t.Errorf("expected nil store to ignore save, got %v", err)
	}
}

func TestCaptureAndApplySaveState(t *testing.T) {
	w := newWorld()
	player := factory.CreatePlayer(w, 10.6, 20.4)

	state := CaptureSaveState(w, map[string]int{"detentions": 1})
	if state == nil {
		t.Fatal("expected a state")
	}
	if state.PlayerX != 11 || state.PlayerY != 20 {
		t.Errorf("expected (11,20), got (%d,%d)", state.PlayerX, state.PlayerY)
	}
	if state.Level != "test" || state.Counters["detentions"] != 1 {
		t.Errorf("unexpected state %+v", state)
	}

	state.PlayerX, state.PlayerY = 40, 50
	if !ApplySaveState(w, state) {
		t.Fatal("expected state to apply")
	}
	if x, y := position(player); x != 40 || y != 50 {
		t.Errorf("expected player at (40,50), got (%v,%v)", x, y)
	}
	corrector := components.Corrector.Get(player)
	if corrector.PrevX != 40 || corrector.PrevY != 50 {
		t.Errorf("expected committed position (40,50), got (%v,%v)", corrector.PrevX, corrector.PrevY)
	}
}
