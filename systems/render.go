package systems

import (
	"github.com/badlydrawnrod/boxkid/components"
	cfg "github.com/badlydrawnrod/boxkid/config"
	"github.com/badlydrawnrod/boxkid/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawPlayer renders the player as a flat rectangle. Prototype art.
func DrawPlayer(ecs *ecs.ECS, screen *ebiten.Image) {
	geom, ok := cameraGeoM(ecs, screen)
	if !ok {
		return
	}

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		x, y := geom.Apply(obj.X, obj.Y)
		w := float32(obj.W * cfg.C.Zoom)
		h := float32(obj.H * cfg.C.Zoom)
		vector.DrawFilledRect(screen, float32(x), float32(y), w, h, cfg.Player.Color, false)
	})
}

// DrawFloatingPlatforms renders tween-driven platforms, which are not part
// of the pre-rendered background.
func DrawFloatingPlatforms(ecs *ecs.ECS, screen *ebiten.Image) {
	geom, ok := cameraGeoM(ecs, screen)
	if !ok {
		return
	}

	tags.FloatingPlatform.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		x, y := geom.Apply(obj.X, obj.Y)
		w := float32(obj.W * cfg.C.Zoom)
		h := float32(obj.H * cfg.C.Zoom)
		vector.DrawFilledRect(screen, float32(x), float32(y), w, h, cfg.Menu.UnselectedColor, false)
	})
}
