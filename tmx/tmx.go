// Package tmx parses the subset of the Tiled Map Editor's TMX format used by
// the game's levels: CSV-encoded tile layers, inline tilesets with a single
// image, object groups of axis-aligned objects, and flat name/value
// properties on tileset tiles.
//
// The package is pure data: it never loads images and has no dependency on
// the engine. Parsing is a single blocking call that materializes the whole
// document; two parses of two documents are fully independent and may run
// concurrently.
package tmx

import (
	"encoding/xml"
	"fmt"
	"io"
	"io/fs"
)

// Map is the root aggregate of a parsed TMX document. It owns every tileset,
// layer and object group, plus a derived index from global tile id to the
// tileset tile that declares properties for it.
type Map struct {
	Version         string
	Orientation     string
	RenderOrder     string
	BackgroundColor string

	// Map size in tiles, and the pixel size of one tile cell.
	Width      int
	Height     int
	TileWidth  int
	TileHeight int

	Tilesets     []*Tileset
	Layers       []*Layer
	ObjectGroups []*ObjectGroup

	tileIndex map[int]*Tile
}

// LoadFile parses a TMX document from fsys. Callers pass embed.FS for
// shipped levels or os.DirFS for tools.
func LoadFile(fsys fs.FS, path string) (*Map, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", path, err)
	}
	defer f.Close()

	m, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", path, err)
	}
	return m, nil
}

// Parse reads one TMX document and constructs a Map. Any failure, from
// malformed XML to a missing required attribute or a bad layer encoding,
// aborts the whole parse.
func Parse(r io.Reader) (*Map, error) {
	var root element
	if err := xml.NewDecoder(r).Decode(&root); err != nil {
		return nil, fmt.Errorf("tmx: decode document: %w", err)
	}
	if root.XMLName.Local != "map" {
		return nil, fmt.Errorf("tmx: root element is <%s>, want <map>", root.XMLName.Local)
	}
	return newMap(&root)
}

func newMap(el *element) (*Map, error) {
	m := &Map{
		Version:         attrString(el, "version", ""),
		Orientation:     attrString(el, "orientation", ""),
		RenderOrder:     attrString(el, "renderorder", ""),
		BackgroundColor: attrString(el, "backgroundColor", ""),
		tileIndex:       map[int]*Tile{},
	}

	var err error
	if m.Width, err = attrInt(el, "width"); err != nil {
		return nil, err
	}
	if m.Height, err = attrInt(el, "height"); err != nil {
		return nil, err
	}
	if m.TileWidth, err = attrInt(el, "tilewidth"); err != nil {
		return nil, err
	}
	if m.TileHeight, err = attrInt(el, "tileheight"); err != nil {
		return nil, err
	}
	if m.Width <= 0 || m.Height <= 0 || m.TileWidth <= 0 || m.TileHeight <= 0 {
		return nil, fmt.Errorf("tmx: non-positive map dimensions %dx%d (tile %dx%d)",
			m.Width, m.Height, m.TileWidth, m.TileHeight)
	}

	// Children are handled in document order so tileset, layer and object
	// group lists keep the order the editor wrote them in.
	lastFirstGID := 0
	for i := range el.Children {
		child := &el.Children[i]
		switch child.XMLName.Local {
		case "tileset":
			ts, err := newTileset(child)
			if err != nil {
				return nil, err
			}
			if ts.FirstGID <= lastFirstGID {
				return nil, fmt.Errorf("tmx: tileset %q firstgid %d not greater than previous %d",
					ts.Name, ts.FirstGID, lastFirstGID)
			}
			lastFirstGID = ts.FirstGID
			m.Tilesets = append(m.Tilesets, ts)
			for _, t := range ts.Tiles {
				if len(t.Properties) > 0 {
					m.tileIndex[ts.FirstGID+t.ID] = t
				}
			}
		case "layer":
			l, err := newLayer(child, m.Width, m.Height)
			if err != nil {
				return nil, err
			}
			m.Layers = append(m.Layers, l)
		case "objectgroup":
			og, err := newObjectGroup(child)
			if err != nil {
				return nil, err
			}
			m.ObjectGroups = append(m.ObjectGroups, og)
		}
	}

	return m, nil
}

// TilesetIndexForGid returns the index of the tileset owning gid: the last
// tileset in document order whose FirstGID does not exceed gid. Returns -1
// when gid is smaller than every tileset's FirstGID. Tilesets are validated
// to be ascending by FirstGID at parse time, so a reverse scan suffices.
func (m *Map) TilesetIndexForGid(gid int) int {
	for i := len(m.Tilesets) - 1; i >= 0; i-- {
		if m.Tilesets[i].FirstGID <= gid {
			return i
		}
	}
	return -1
}

// TileByGID looks up the tileset tile registered for a global id. Only tiles
// that declare at least one property have an entry.
func (m *Map) TileByGID(gid int) (*Tile, bool) {
	t, ok := m.tileIndex[gid]
	return t, ok
}

// LayerByName returns the first layer with the given name, or nil.
func (m *Map) LayerByName(name string) *Layer {
	for _, l := range m.Layers {
		if l.Name == name {
			return l
		}
	}
	return nil
}

// ObjectGroupByName returns the first object group with the given name, or nil.
func (m *Map) ObjectGroupByName(name string) *ObjectGroup {
	for _, og := range m.ObjectGroups {
		if og.Name == name {
			return og
		}
	}
	return nil
}
