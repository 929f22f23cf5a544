package assets

import (
	"image/color"
	"testing"

	"github.com/badlydrawnrod/boxkid/tmx"
)

func loadLevelMap(t *testing.T, path string) *tmx.Map {
	t.Helper()
	m, err := tmx.LoadFile(levelFS, path)
	if err != nil {
		t.Fatalf("Failed to parse %s: %v", path, err)
	}
	return m
}

func TestCollectSolidTiles(t *testing.T) {
	m := loadLevelMap(t, "levels/level1.tmx")
	tiles := collectSolidTiles(m)

	if len(tiles) == 0 {
		t.Fatal("No solid tiles collected from the ground layer")
	}

	var oneWay, solid int
	for _, tile := range tiles {
		if tile.Width != 16 || tile.Height != 16 {
			t.Fatalf("Tile size = %vx%v, want 16x16", tile.Width, tile.Height)
		}
		if tile.OneWay {
			oneWay++
		} else {
			solid++
		}
	}
	if oneWay == 0 {
		t.Error("No one-way platforms collected; one_way property not applied")
	}
	if solid == 0 {
		t.Error("No solid blocks collected")
	}

	// The bottom row of level1 is a full floor of solid blocks.
	floorY := float64((m.Height - 1) * m.TileHeight)
	floor := 0
	for _, tile := range tiles {
		if tile.Y == floorY && !tile.OneWay {
			floor++
		}
	}
	if floor != m.Width {
		t.Errorf("Floor tiles = %d, want %d", floor, m.Width)
	}
}

func TestCollectObjects(t *testing.T) {
	m := loadLevelMap(t, "levels/level1.tmx")
	objects := collectObjects(m)

	byType := map[string]LevelObject{}
	for _, o := range objects {
		byType[o.Type] = o
	}

	spawn, ok := byType["player_spawn"]
	if !ok {
		t.Fatal("No player_spawn object in level1")
	}
	if spawn.X != 24 || spawn.Y != 152 {
		t.Errorf("player_spawn at (%v,%v), want (24,152)", spawn.X, spawn.Y)
	}

	lift, ok := byType["moving_platform"]
	if !ok {
		t.Fatal("No moving_platform object in level1")
	}
	if lift.Width != 48 || lift.Height != 8 {
		t.Errorf("moving_platform size = %vx%v, want 48x8", lift.Width, lift.Height)
	}
}

func TestEveryShippedLevelParses(t *testing.T) {
	entries, err := levelFS.ReadDir("levels")
	if err != nil {
		t.Fatalf("Failed to read levels directory: %v", err)
	}

	checked := 0
	for _, entry := range entries {
		if entry.IsDir() || len(entry.Name()) < 4 || entry.Name()[len(entry.Name())-4:] != ".tmx" {
			continue
		}
		m := loadLevelMap(t, "levels/"+entry.Name())
		if m.LayerByName(collisionLayer) == nil {
			t.Errorf("%s has no %q layer", entry.Name(), collisionLayer)
		}
		if len(collectObjects(m)) == 0 {
			t.Errorf("%s has no objects", entry.Name())
		}
		checked++
	}
	if checked == 0 {
		t.Fatal("No shipped levels found")
	}
}

func TestParseHexColor(t *testing.T) {
	cases := []struct {
		in   string
		want color.Color
	}{
		{"#201e33", color.RGBA{R: 0x20, G: 0x1e, B: 0x33, A: 0xff}},
		{"", color.Black},
		{"#zzzzzz", color.Black},
		{"201e33", color.Black},
	}
	for _, c := range cases {
		if got := parseHexColor(c.in); got != c.want {
			t.Errorf("parseHexColor(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}
