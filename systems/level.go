package systems

import (
	"github.com/badlydrawnrod/boxkid/components"
	cfg "github.com/badlydrawnrod/boxkid/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// cameraGeoM builds the world-to-screen transform for the current camera.
func cameraGeoM(ecs *ecs.ECS, screen *ebiten.Image) (ebiten.GeoM, bool) {
	var geom ebiten.GeoM

	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return geom, false
	}
	camera := components.Camera.Get(cameraEntry)

	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	geom.Translate(-camera.Position.X, -camera.Position.Y)
	geom.Scale(cfg.C.Zoom, cfg.C.Zoom)
	geom.Translate(float64(width)/2, float64(height)/2)
	return geom, true
}

func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	geom, ok := cameraGeoM(ecs, screen)
	if !ok {
		return
	}

	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	levelData := components.Level.Get(levelEntry)
	if levelData.CurrentLevel == nil || levelData.CurrentLevel.Background == nil {
		return
	}

	opts := &ebiten.DrawImageOptions{GeoM: geom}
	screen.DrawImage(levelData.CurrentLevel.Background, opts)
}
