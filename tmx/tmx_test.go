package tmx

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"
)

func parseDoc(t *testing.T, doc string) *Map {
	t.Helper()
	m, err := Parse(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	return m
}

const minimalDoc = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.0" orientation="orthogonal" renderorder="right-down" width="2" height="1" tilewidth="16" tileheight="16">
 <tileset firstgid="1" name="tiles" tilewidth="16" tileheight="16">
  <image source="tiles.png" width="64" height="16"/>
  <tile id="0">
   <properties>
    <property name="type" value="block"/>
   </properties>
  </tile>
 </tileset>
 <layer name="ground" width="2" height="1">
  <data encoding="csv">1,2</data>
 </layer>
</map>`

func TestParseMinimalDocument(t *testing.T) {
	m := parseDoc(t, minimalDoc)

	if m.Width != 2 || m.Height != 1 {
		t.Errorf("Map size = %dx%d, want 2x1", m.Width, m.Height)
	}
	if m.TileWidth != 16 || m.TileHeight != 16 {
		t.Errorf("Tile size = %dx%d, want 16x16", m.TileWidth, m.TileHeight)
	}
	if m.Orientation != "orthogonal" || m.RenderOrder != "right-down" {
		t.Errorf("Unexpected orientation %q / renderorder %q", m.Orientation, m.RenderOrder)
	}
	if len(m.Tilesets) != 1 || len(m.Layers) != 1 {
		t.Fatalf("Got %d tilesets, %d layers, want 1 and 1", len(m.Tilesets), len(m.Layers))
	}

	// gid 1 carries a property, gid 2 belongs to no declared tile.
	tile, ok := m.TileByGID(1)
	if !ok {
		t.Fatal("TileByGID(1) not found")
	}
	if v, ok := tile.Property("type"); !ok || v != "block" {
		t.Errorf("Property(type) = %q, %v, want \"block\", true", v, ok)
	}
	if _, ok := m.TileByGID(2); ok {
		t.Error("TileByGID(2) found, want absent")
	}

	layer := m.Layers[0]
	if layer.GIDAt(0, 0) != 1 || layer.GIDAt(1, 0) != 2 {
		t.Errorf("Layer data = %v, want [1 2]", layer.Data)
	}
}

func TestTilesetIndexForGid(t *testing.T) {
	m := parseDoc(t, `<map width="1" height="1" tilewidth="8" tileheight="8">
 <tileset firstgid="1" name="a" tilewidth="8" tileheight="8"/>
 <tileset firstgid="9" name="b" tilewidth="8" tileheight="8"/>
 <tileset firstgid="17" name="c" tilewidth="8" tileheight="8"/>
</map>`)

	cases := []struct {
		gid  int
		want int
	}{
		{0, -1},
		{1, 0},
		{8, 0},
		{9, 1},
		{16, 1},
		{17, 2},
		{1000, 2},
	}
	for _, c := range cases {
		if got := m.TilesetIndexForGid(c.gid); got != c.want {
			t.Errorf("TilesetIndexForGid(%d) = %d, want %d", c.gid, got, c.want)
		}
	}
}

func TestTilesetFirstGidMustAscend(t *testing.T) {
	_, err := Parse(strings.NewReader(`<map width="1" height="1" tilewidth="8" tileheight="8">
 <tileset firstgid="9" name="a" tilewidth="8" tileheight="8"/>
 <tileset firstgid="9" name="b" tilewidth="8" tileheight="8"/>
</map>`))
	if err == nil {
		t.Fatal("Parse accepted non-ascending firstgid values")
	}
}

func TestMissingRequiredAttribute(t *testing.T) {
	_, err := Parse(strings.NewReader(`<map width="2" tilewidth="16" tileheight="16"/>`))
	if !errors.Is(err, ErrMissingAttribute) {
		t.Fatalf("Parse error = %v, want ErrMissingAttribute", err)
	}
}

func TestMalformedNumberAttribute(t *testing.T) {
	_, err := Parse(strings.NewReader(`<map width="two" height="1" tilewidth="16" tileheight="16"/>`))
	if !errors.Is(err, ErrMalformedNumber) {
		t.Fatalf("Parse error = %v, want ErrMalformedNumber", err)
	}
}

func TestMalformedDocument(t *testing.T) {
	_, err := Parse(strings.NewReader(`<map width="1" height="1"`))
	if err == nil {
		t.Fatal("Parse accepted truncated XML")
	}
}

func TestRootMustBeMap(t *testing.T) {
	_, err := Parse(strings.NewReader(`<tileset firstgid="1"/>`))
	if err == nil {
		t.Fatal("Parse accepted a non-map root element")
	}
}

func TestLoadFile(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/one.tmx": &fstest.MapFile{Data: []byte(minimalDoc)},
	}

	m, err := LoadFile(fsys, "levels/one.tmx")
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if len(m.Tilesets) != 1 {
		t.Errorf("Got %d tilesets, want 1", len(m.Tilesets))
	}

	if _, err := LoadFile(fsys, "levels/missing.tmx"); err == nil {
		t.Error("LoadFile succeeded on a missing file")
	}
}

func TestLookupsByName(t *testing.T) {
	m := parseDoc(t, `<map width="1" height="1" tilewidth="8" tileheight="8">
 <layer name="bg" width="1" height="1"><data encoding="csv">0</data></layer>
 <layer name="fg" width="1" height="1"><data encoding="csv">0</data></layer>
 <objectgroup name="spawns"/>
</map>`)

	if l := m.LayerByName("fg"); l == nil || l.Name != "fg" {
		t.Errorf("LayerByName(fg) = %v", l)
	}
	if l := m.LayerByName("nope"); l != nil {
		t.Errorf("LayerByName(nope) = %v, want nil", l)
	}
	if og := m.ObjectGroupByName("spawns"); og == nil {
		t.Error("ObjectGroupByName(spawns) = nil")
	}
	if og := m.ObjectGroupByName("nope"); og != nil {
		t.Errorf("ObjectGroupByName(nope) = %v, want nil", og)
	}
}
