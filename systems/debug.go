package systems

import (
	"image/color"

	"github.com/badlydrawnrod/boxkid/components"
	cfg "github.com/badlydrawnrod/boxkid/config"
	"github.com/badlydrawnrod/boxkid/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	debugSolidColor    = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	debugPlatformColor = color.RGBA{R: 0, G: 255, B: 60, A: 255}
)

// UpdateDebug handles the meta keys: the collision overlay toggle and the
// fullscreen toggle, which is persisted across runs.
func UpdateDebug(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	if GetAction(input, cfg.ActionDebug).JustPressed {
		cfg.Debug.DrawObjects = !cfg.Debug.DrawObjects
	}
	if GetAction(input, cfg.ActionFullscreen).JustPressed {
		full := !ebiten.IsFullscreen()
		ebiten.SetFullscreen(full)
		UpdateState(func(s *SavedState) { s.Fullscreen = full })
	}
}

// DrawDebug outlines every collision object when the overlay is enabled.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.DrawObjects {
		return
	}
	geom, ok := cameraGeoM(ecs, screen)
	if !ok {
		return
	}

	components.Object.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		c := debugSolidColor
		if obj.HasTags(tags.ResolvPlatform) {
			c = debugPlatformColor
		}
		x, y := geom.Apply(obj.X, obj.Y)
		w := float32(obj.W * cfg.C.Zoom)
		h := float32(obj.H * cfg.C.Zoom)
		vector.StrokeRect(screen, float32(x), float32(y), w, h, 1, c, false)
	})
}
