package leveldata

import (
	"errors"
	"math"
	"testing"
	"testing/fstest"
)

const mapHeader = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" tiledversion="1.10.2" orientation="orthogonal" renderorder="right-down" width="20" height="10" tilewidth="16" tileheight="16" infinite="0" nextlayerid="5" nextobjectid="10">
`

const hallwayTMX = mapHeader + `
 <objectgroup id="1" name="Collision">
  <object id="1" x="160" y="40" width="32" height="16"/>
  <object id="2" x="64" y="64">
   <polygon points="0,0 32,0 16,32"/>
  </object>
  <object id="3" x="100" y="20" width="20" height="10" rotation="90"/>
 </objectgroup>
 <objectgroup id="2" name="PlayerSpawn">
  <object id="4" x="200" y="120">
   <properties>
    <property name="spawnIndex" type="int" value="1"/>
   </properties>
   <point/>
  </object>
  <object id="5" x="48" y="120">
   <point/>
  </object>
 </objectgroup>
 <objectgroup id="3" name="NPCSpawn">
  <object id="6" name="hall-guard" x="200" y="100">
   <properties>
    <property name="kind" value="guard"/>
    <property name="path" value="loop"/>
   </properties>
   <point/>
  </object>
 </objectgroup>
 <objectgroup id="4" name="Paths">
  <object id="7" name="loop" x="200" y="100">
   <polyline points="0,0 64,0 64,32"/>
  </object>
 </objectgroup>
</map>
`

func loadString(t *testing.T, tmx string) (*CollisionData, error) {
	t.Helper()
	fsys := fstest.MapFS{
		"levels/test.tmx": &fstest.MapFile{Data: []byte(tmx)},
	}
	return LoadCollisionData(fsys, "levels/test.tmx")
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestLoadCollisionData(t *testing.T) {
	data, err := loadString(t, hallwayTMX)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if data.Name != "test" {
		t.Errorf("expected name test, got %q", data.Name)
	}
	if data.MapWidth != 320 || data.MapHeight != 160 {
		t.Errorf("expected map 320x160, got %dx%d", data.MapWidth, data.MapHeight)
	}
	if !data.HasCollisionLayer {
		t.Fatal("expected collision layer to be found")
	}
	if len(data.Solids) != 3 {
		t.Fatalf("expected 3 solids, got %d", len(data.Solids))
	}

	rect := data.Solids[0]
	if rect.IsPolygon() {
		t.Error("expected plain rectangle to stay a rectangle")
	}
	if rect.X != 160 || rect.Y != 104 || rect.W != 32 || rect.H != 16 {
		t.Errorf("expected rect (160,104,32,16), got (%v,%v,%v,%v)", rect.X, rect.Y, rect.W, rect.H)
	}

	tri := data.Solids[1]
	if !tri.IsPolygon() || len(tri.Points) != 3 {
		t.Fatalf("expected a 3-vertex polygon, got %+v", tri)
	}
	if tri.X != 64 || tri.Y != 64 || tri.W != 32 || tri.H != 32 {
		t.Errorf("expected polygon bounds (64,64,32,32), got (%v,%v,%v,%v)", tri.X, tri.Y, tri.W, tri.H)
	}
	if tri.Points[2].X != 80 || tri.Points[2].Y != 64 {
		t.Errorf("expected apex at (80,64), got (%v,%v)", tri.Points[2].X, tri.Points[2].Y)
	}

	rotated := data.Solids[2]
	if !rotated.IsPolygon() {
		t.Fatal("expected rotated rectangle to become a polygon")
	}
	if !near(rotated.X, 90) || !near(rotated.Y, 120) || !near(rotated.W, 10) || !near(rotated.H, 20) {
		t.Errorf("expected rotated bounds (90,120,10,20), got (%v,%v,%v,%v)", rotated.X, rotated.Y, rotated.W, rotated.H)
	}
}

func TestLoadSpawnsAndPaths(t *testing.T) {
	data, err := loadString(t, hallwayTMX)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(data.SpawnPoints) != 2 {
		t.Fatalf("expected 2 spawn points, got %d", len(data.SpawnPoints))
	}
	first := data.SpawnPoints[0]
	if first.X != 48 || first.Y != 40 {
		t.Errorf("expected leftmost spawn at (48,40), got (%v,%v)", first.X, first.Y)
	}
	if data.SpawnPoints[1].Index != 1 {
		t.Errorf("expected spawn index 1, got %d", data.SpawnPoints[1].Index)
	}

	if len(data.NPCSpawns) != 1 {
		t.Fatalf("expected 1 NPC spawn, got %d", len(data.NPCSpawns))
	}
	npc := data.NPCSpawns[0]
	if npc.Kind != "guard" || npc.Path != "loop" || npc.Name != "hall-guard" {
		t.Errorf("unexpected NPC spawn %+v", npc)
	}
	if npc.X != 200 || npc.Y != 60 {
		t.Errorf("expected NPC at (200,60), got (%v,%v)", npc.X, npc.Y)
	}

	path, ok := data.Paths["loop"]
	if !ok {
		t.Fatal("expected path loop")
	}
	want := [][2]float64{{200, 60}, {264, 60}, {264, 28}}
	if len(path) != len(want) {
		t.Fatalf("expected %d points, got %d", len(want), len(path))
	}
	for i, p := range path {
		if p.X != want[i][0] || p.Y != want[i][1] {
			t.Errorf("point %d: expected %v, got (%v,%v)", i, want[i], p.X, p.Y)
		}
	}
}

func TestLoadMissingCollisionLayer(t *testing.T) {
	tmx := mapHeader + `
 <objectgroup id="1" name="PlayerSpawn">
  <object id="1" x="10" y="10"><point/></object>
 </objectgroup>
</map>
`
	data, err := loadString(t, tmx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if data.HasCollisionLayer {
		t.Error("expected no collision layer")
	}
	if len(data.Solids) != 0 {
		t.Errorf("expected no solids, got %d", len(data.Solids))
	}
}

func TestLoadInvalidGeometry(t *testing.T) {
	tests := []struct {
		name   string
		object string
	}{
		{"polyline", `<object id="9" x="0" y="0"><polyline points="0,0 10,0"/></object>`},
		{"ellipse", `<object id="9" x="0" y="0" width="10" height="10"><ellipse/></object>`},
		{"point", `<object id="9" x="5" y="5"><point/></object>`},
		{"zero width", `<object id="9" x="5" y="5" width="0" height="10"/>`},
		{"non-convex", `<object id="9" x="0" y="0"><polygon points="0,0 32,0 16,8 32,32 0,32"/></object>`},
		{"collinear", `<object id="9" x="0" y="0"><polygon points="0,0 10,0 20,0"/></object>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmx := mapHeader + `<objectgroup id="1" name="Collision">` + tt.object + `</objectgroup></map>`
			_, err := loadString(t, tmx)
			if !errors.Is(err, ErrInvalidGeometry) {
				t.Errorf("expected ErrInvalidGeometry, got %v", err)
			}
		})
	}
}

func TestLoadAllLevels(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/b.tmx": &fstest.MapFile{Data: []byte(hallwayTMX)},
		"levels/a.tmx": &fstest.MapFile{Data: []byte(hallwayTMX)},
	}

	levels, names, err := LoadAllLevels(fsys, "levels")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(names) != 2 || names[0] != "a" || names[1] != "b" {
		t.Errorf("expected [a b], got %v", names)
	}
	if levels["a"] == nil || levels["b"] == nil {
		t.Error("expected both levels loaded")
	}
}

func TestLoadAllLevelsEmpty(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/readme.txt": &fstest.MapFile{Data: []byte("nothing here")},
	}

	_, _, err := LoadAllLevels(fsys, "levels")
	if !errors.Is(err, ErrNoLevels) {
		t.Errorf("expected ErrNoLevels, got %v", err)
	}
}
