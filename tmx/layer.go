package tmx

import (
	"fmt"
	"strconv"
	"strings"
)

// Layer is a 2D grid of global tile ids. Data is row-major: the cell at
// (col, row) lives at index col + row*Width. A gid of 0 means an empty cell.
type Layer struct {
	Name    string
	Width   int
	Height  int
	Opacity float64
	Visible bool
	Data    []int
}

func newLayer(el *element, mapWidth, mapHeight int) (*Layer, error) {
	l := &Layer{Name: attrString(el, "name", "")}

	var err error
	if l.Width, err = attrInt(el, "width"); err != nil {
		return nil, err
	}
	if l.Height, err = attrInt(el, "height"); err != nil {
		return nil, err
	}
	if l.Width != mapWidth || l.Height != mapHeight {
		return nil, fmt.Errorf("tmx: layer %q size %dx%d does not match map size %dx%d",
			l.Name, l.Width, l.Height, mapWidth, mapHeight)
	}
	if l.Opacity, err = attrFloatDefault(el, "opacity", 1.0); err != nil {
		return nil, err
	}
	if l.Visible, err = attrVisible(el); err != nil {
		return nil, err
	}

	data := el.child("data")
	if data == nil {
		return nil, fmt.Errorf("tmx: layer %q has no <data> element", l.Name)
	}
	// Only CSV is supported. An absent encoding attribute means the default
	// base64 encoding, which is just as unsupported.
	if enc := attrString(data, "encoding", ""); enc != "csv" {
		return nil, fmt.Errorf("%w: layer %q encoding %q", ErrUnsupportedEncoding, l.Name, enc)
	}
	if l.Data, err = decodeCSV(data.Text, l.Width*l.Height); err != nil {
		return nil, fmt.Errorf("layer %q: %w", l.Name, err)
	}

	return l, nil
}

// decodeCSV splits a CSV tile-data body into gids. The token count must be
// exactly want; both deficient and excess data are errors.
func decodeCSV(body string, want int) ([]int, error) {
	tokens := strings.Split(body, ",")
	if len(tokens) != want {
		return nil, fmt.Errorf("tmx: csv data has %d cells, want %d", len(tokens), want)
	}
	gids := make([]int, want)
	for i, tok := range tokens {
		gid, err := strconv.Atoi(strings.TrimSpace(tok))
		if err != nil {
			return nil, fmt.Errorf("%w: csv cell %d = %q", ErrMalformedNumber, i, strings.TrimSpace(tok))
		}
		gids[i] = gid
	}
	return gids, nil
}

// GIDAt returns the global tile id at a cell, or 0 for out-of-range
// coordinates.
func (l *Layer) GIDAt(col, row int) int {
	if col < 0 || col >= l.Width || row < 0 || row >= l.Height {
		return 0
	}
	return l.Data[col+row*l.Width]
}
