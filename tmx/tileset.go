package tmx

import "image"

// Property is a single name/value pair declared on a tileset tile.
type Property struct {
	Name  string
	Value string
}

// Image is a tileset's backing picture: a path relative to the TMX file plus
// its pixel dimensions. The package only reports the path; loading the
// picture is the consumer's job.
type Image struct {
	Source string
	Width  int
	Height int
}

// Tile is one tile declaration inside a tileset. Only tiles that carry
// properties are interesting to gameplay, but every <tile> element present in
// the document is parsed, property-less or not.
type Tile struct {
	ID         int // local id within the owning tileset
	Properties []Property
}

// Property returns the value of the first property with the given name.
// Declaration order is preserved, so duplicates resolve first-match-wins.
func (t *Tile) Property(name string) (string, bool) {
	for _, p := range t.Properties {
		if p.Name == name {
			return p.Value, true
		}
	}
	return "", false
}

// Tileset is a contiguous range of global tile ids backed by one image.
type Tileset struct {
	FirstGID   int
	Source     string
	Name       string
	TileWidth  int
	TileHeight int
	Spacing    int
	Margin     int
	Image      *Image
	Tiles      []*Tile
}

func newTileset(el *element) (*Tileset, error) {
	ts := &Tileset{
		Source: attrString(el, "source", ""),
		Name:   attrString(el, "name", ""),
	}

	var err error
	if ts.FirstGID, err = attrInt(el, "firstgid"); err != nil {
		return nil, err
	}
	if ts.TileWidth, err = attrInt(el, "tilewidth"); err != nil {
		return nil, err
	}
	if ts.TileHeight, err = attrInt(el, "tileheight"); err != nil {
		return nil, err
	}
	if ts.Spacing, err = attrIntDefault(el, "spacing", 0); err != nil {
		return nil, err
	}
	if ts.Margin, err = attrIntDefault(el, "margin", 0); err != nil {
		return nil, err
	}

	// A tileset without an image is legal here; texture lookup downstream
	// will fail instead.
	if img := el.child("image"); img != nil {
		i := &Image{Source: attrString(img, "source", "")}
		if i.Width, err = attrIntDefault(img, "width", 0); err != nil {
			return nil, err
		}
		if i.Height, err = attrIntDefault(img, "height", 0); err != nil {
			return nil, err
		}
		ts.Image = i
	}

	for i := range el.Children {
		child := &el.Children[i]
		if child.XMLName.Local != "tile" {
			continue
		}
		t, err := newTile(child)
		if err != nil {
			return nil, err
		}
		ts.Tiles = append(ts.Tiles, t)
	}

	return ts, nil
}

func newTile(el *element) (*Tile, error) {
	t := &Tile{}

	var err error
	if t.ID, err = attrInt(el, "id"); err != nil {
		return nil, err
	}

	if props := el.child("properties"); props != nil {
		for i := range props.Children {
			p := &props.Children[i]
			if p.XMLName.Local != "property" {
				continue
			}
			t.Properties = append(t.Properties, Property{
				Name:  attrString(p, "name", ""),
				Value: attrString(p, "value", ""),
			})
		}
	}

	return t, nil
}

// Columns returns the number of tile columns in the tileset image, taking
// margin and spacing into account. Zero when the tileset has no image.
func (ts *Tileset) Columns() int {
	if ts.Image == nil || ts.TileWidth <= 0 {
		return 0
	}
	return (ts.Image.Width - 2*ts.Margin + ts.Spacing) / (ts.TileWidth + ts.Spacing)
}

// RectForID returns the pixel rectangle of a local tile id within the
// tileset image, so a renderer can sub-image the texture directly. The zero
// rectangle is returned when the tileset has no usable image.
func (ts *Tileset) RectForID(localID int) image.Rectangle {
	cols := ts.Columns()
	if cols <= 0 || localID < 0 {
		return image.Rectangle{}
	}
	x := ts.Margin + (localID%cols)*(ts.TileWidth+ts.Spacing)
	y := ts.Margin + (localID/cols)*(ts.TileHeight+ts.Spacing)
	return image.Rect(x, y, x+ts.TileWidth, y+ts.TileHeight)
}
