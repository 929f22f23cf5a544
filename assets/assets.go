package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image/color"
	"path"
	"strconv"
	"strings"

	"github.com/badlydrawnrod/boxkid/tmx"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

//go:embed all:levels
var levelFS embed.FS

// SolidTile is one collidable cell from the ground layer. OneWay tiles only
// block movement from above so the player can jump up through them.
type SolidTile struct {
	X, Y, Width, Height float64
	OneWay              bool
}

// LevelObject is a placed entity from an object group, keyed by its Tiled
// type string. The scene maps types to spawn functions.
type LevelObject struct {
	Type   string
	Name   string
	X, Y   float64
	Width  float64
	Height float64
}

// Level is everything a scene needs from one TMX file: pixel dimensions,
// collision tiles, placed objects, and a pre-rendered background.
type Level struct {
	Name       string
	Width      int
	Height     int
	Background *ebiten.Image
	SolidTiles []SolidTile
	Objects    []LevelObject
}

// Tiles placed in the collision layer collide; everything else is decoration
// handled only by the background render.
const collisionLayer = "ground"

type LevelLoader struct{}

func NewLevelLoader() *LevelLoader {
	return &LevelLoader{}
}

// MustLoadLevels loads every .tmx file under levels/ in name order.
func (l *LevelLoader) MustLoadLevels() []Level {
	entries, err := levelFS.ReadDir("levels")
	if err != nil {
		panic(fmt.Sprintf("Failed to read levels directory: %v", err))
	}

	var levels []Level
	for _, entry := range entries {
		if !entry.IsDir() && path.Ext(entry.Name()) == ".tmx" {
			levels = append(levels, l.MustLoadLevel(path.Join("levels", entry.Name())))
		}
	}

	if len(levels) == 0 {
		panic("No level files found in assets/levels directory")
	}

	return levels
}

func (l *LevelLoader) MustLoadLevel(levelPath string) Level {
	m, err := tmx.LoadFile(levelFS, levelPath)
	if err != nil {
		panic(err)
	}

	level := Level{
		Name:   strings.TrimSuffix(path.Base(levelPath), ".tmx"),
		Width:  m.Width * m.TileWidth,
		Height: m.Height * m.TileHeight,
	}

	level.SolidTiles = collectSolidTiles(m)
	level.Objects = collectObjects(m)
	level.Background = renderBackground(m, path.Dir(levelPath))

	return level
}

// collectSolidTiles turns the collision layer into collider rects. A non-zero
// cell collides; the one_way tile property turns it into a drop-through
// platform.
func collectSolidTiles(m *tmx.Map) []SolidTile {
	ground := m.LayerByName(collisionLayer)
	if ground == nil {
		return nil
	}

	var tiles []SolidTile
	tileW := float64(m.TileWidth)
	tileH := float64(m.TileHeight)
	for row := 0; row < m.Height; row++ {
		for col := 0; col < m.Width; col++ {
			gid := ground.GIDAt(col, row)
			if gid == 0 {
				continue
			}

			oneWay := false
			if tile, ok := m.TileByGID(gid); ok {
				if v, ok := tile.Property("one_way"); ok && v == "true" {
					oneWay = true
				}
			}

			tiles = append(tiles, SolidTile{
				X:      float64(col) * tileW,
				Y:      float64(row) * tileH,
				Width:  tileW,
				Height: tileH,
				OneWay: oneWay,
			})
		}
	}
	return tiles
}

// collectObjects flattens every visible object group for the spawn registry.
func collectObjects(m *tmx.Map) []LevelObject {
	var objects []LevelObject
	for _, og := range m.ObjectGroups {
		if !og.Visible {
			continue
		}
		for _, o := range og.Objects {
			objects = append(objects, LevelObject{
				Type:   o.Type,
				Name:   o.Name,
				X:      float64(o.X),
				Y:      float64(o.Y),
				Width:  float64(o.Width),
				Height: float64(o.Height),
			})
		}
	}
	return objects
}

// renderBackground draws every visible tile layer into one image, resolving
// each cell's tileset by gid and sub-imaging the tileset texture.
func renderBackground(m *tmx.Map, baseDir string) *ebiten.Image {
	bg := ebiten.NewImage(m.Width*m.TileWidth, m.Height*m.TileHeight)
	bg.Fill(parseHexColor(m.BackgroundColor))

	for _, layer := range m.Layers {
		if !layer.Visible || layer.Opacity <= 0 {
			continue
		}
		for row := 0; row < m.Height; row++ {
			for col := 0; col < m.Width; col++ {
				gid := layer.GIDAt(col, row)
				if gid == 0 {
					continue
				}
				i := m.TilesetIndexForGid(gid)
				if i < 0 {
					continue
				}
				ts := m.Tilesets[i]
				if ts.Image == nil {
					continue
				}

				sheet := MustLoadImage(path.Join(baseDir, ts.Image.Source))
				src := sheet.SubImage(ts.RectForID(gid - ts.FirstGID)).(*ebiten.Image)

				opts := &ebiten.DrawImageOptions{}
				opts.GeoM.Translate(float64(col*m.TileWidth), float64(row*m.TileHeight))
				opts.ColorScale.ScaleAlpha(float32(layer.Opacity))
				bg.DrawImage(src, opts)
			}
		}
	}

	return bg
}

var imageCache = map[string]*ebiten.Image{}

// MustLoadImage loads an image from the embedded level filesystem, caching by
// path so tileset textures are only decoded once.
func MustLoadImage(imgPath string) *ebiten.Image {
	if img, ok := imageCache[imgPath]; ok {
		return img
	}

	imgBytes, err := levelFS.ReadFile(imgPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to read image file %s: %v", imgPath, err))
	}

	img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(imgBytes))
	if err != nil {
		panic(fmt.Sprintf("Failed to decode image %s: %v", imgPath, err))
	}

	imageCache[imgPath] = img
	return img
}

// parseHexColor parses "#rrggbb"; anything else falls back to black.
func parseHexColor(s string) color.Color {
	if len(s) != 7 || s[0] != '#' {
		return color.Black
	}
	n, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return color.Black
	}
	return color.RGBA{R: uint8(n >> 16), G: uint8(n >> 8), B: uint8(n), A: 0xff}
}
