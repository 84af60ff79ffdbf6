package assets

import (
	"testing"

	"github.com/automoto/hallpass/config"
	"github.com/automoto/hallpass/shared/leveldata"
)

func TestEmbeddedLevelsLoad(t *testing.T) {
	levels, names, err := leveldata.LoadAllLevels(Levels(), config.Level.Directory)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(names) == 0 {
		t.Fatal("expected at least one level")
	}

	hallway, ok := levels["hallway"]
	if !ok {
		t.Fatalf("expected hallway level, got %v", names)
	}
	if !hallway.HasCollisionLayer || len(hallway.Solids) == 0 {
		t.Error("expected hallway to have obstacles")
	}
	if len(hallway.SpawnPoints) == 0 {
		t.Error("expected hallway to have a player spawn")
	}
	for _, spawn := range hallway.NPCSpawns {
		if _, err := config.KindByName(spawn.Kind); err != nil {
			t.Errorf("NPC %s: %v", spawn.Name, err)
		}
		if spawn.Path != "" {
			if _, ok := hallway.Paths[spawn.Path]; !ok {
				t.Errorf("NPC %s: path %q missing", spawn.Name, spawn.Path)
			}
		}
	}
}
